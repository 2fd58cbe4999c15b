package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"schedulebuilder-backend/models"
	"schedulebuilder-backend/storage"

	"github.com/google/uuid"
)

// ExportStore is the persistence surface for export records
type ExportStore interface {
	Create(ctx context.Context, export *models.ScheduleExport) error
	GetByID(ctx context.Context, id uuid.UUID, userID int64) (*models.ScheduleExport, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.ScheduleExport, error)
}

// ExportService snapshots schedule documents into blob storage
type ExportService struct {
	schedules ScheduleStore
	exports   ExportStore
	blobs     storage.Storage
}

// ExportServiceOption is a functional option for ExportService
type ExportServiceOption func(*ExportService)

// ExportWithScheduleStore sets the schedule store
func ExportWithScheduleStore(store ScheduleStore) ExportServiceOption {
	return func(s *ExportService) {
		s.schedules = store
	}
}

// ExportWithExportStore sets the export record store
func ExportWithExportStore(store ExportStore) ExportServiceOption {
	return func(s *ExportService) {
		s.exports = store
	}
}

// ExportWithBlobStorage sets the blob storage backend
func ExportWithBlobStorage(blobs storage.Storage) ExportServiceOption {
	return func(s *ExportService) {
		s.blobs = blobs
	}
}

// NewExportService creates a new export service
func NewExportService(opts ...ExportServiceOption) *ExportService {
	s := &ExportService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExportSchedule writes a snapshot of an owned schedule to blob storage
// and records it. The snapshot is the full serialized schedule row.
func (s *ExportService) ExportSchedule(ctx context.Context, userID, scheduleID int64) (*models.ScheduleExport, error) {
	if s.schedules == nil || s.exports == nil || s.blobs == nil {
		return nil, errors.New("export service not fully configured")
	}

	schedule, err := s.schedules.GetByID(ctx, scheduleID, userID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(schedule)
	if err != nil {
		return nil, err
	}

	export := &models.ScheduleExport{
		ID:         uuid.New(),
		UserID:     userID,
		ScheduleID: schedule.ID,
	}
	export.ObjectKey = fmt.Sprintf("exports/%d/%s.json", userID, export.ID)

	if err := s.blobs.Save(ctx, export.ObjectKey, payload); err != nil {
		return nil, err
	}

	if err := s.exports.Create(ctx, export); err != nil {
		return nil, err
	}

	return export, nil
}

// DownloadExport returns the stored snapshot document, owner-scoped
func (s *ExportService) DownloadExport(ctx context.Context, userID int64, exportID uuid.UUID) ([]byte, error) {
	if s.exports == nil || s.blobs == nil {
		return nil, errors.New("export service not fully configured")
	}

	export, err := s.exports.GetByID(ctx, exportID, userID)
	if err != nil {
		return nil, err
	}

	return s.blobs.Load(ctx, export.ObjectKey)
}

// ListExports returns the user's export records, newest first
func (s *ExportService) ListExports(ctx context.Context, userID int64) ([]*models.ScheduleExport, error) {
	if s.exports == nil {
		return nil, errors.New("export service not fully configured")
	}

	return s.exports.ListByUserID(ctx, userID)
}

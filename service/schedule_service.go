package service

import (
	"context"
	"errors"

	"schedulebuilder-backend/models"
)

// ScheduleStore is the persistence surface the schedule service needs.
// Implementations must keep the at-most-one-default-per-user invariant:
// writing a row with IsDefault true clears the flag on the user's other
// schedules as part of the same write.
type ScheduleStore interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	ListByUserID(ctx context.Context, userID int64) ([]*models.Schedule, error)
	GetDefault(ctx context.Context, userID int64) (*models.Schedule, error)
	GetByID(ctx context.Context, id, userID int64) (*models.Schedule, error)
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id, userID int64) error
}

// ScheduleService handles business logic for schedules
type ScheduleService struct {
	store ScheduleStore
}

// ScheduleServiceOption is a functional option for ScheduleService
type ScheduleServiceOption func(*ScheduleService)

// WithScheduleStore sets the schedule store
func WithScheduleStore(store ScheduleStore) ScheduleServiceOption {
	return func(s *ScheduleService) {
		s.store = store
	}
}

// NewScheduleService creates a new schedule service
func NewScheduleService(opts ...ScheduleServiceOption) *ScheduleService {
	s := &ScheduleService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateScheduleRequest represents a request to create a schedule
type CreateScheduleRequest struct {
	UserID    int64
	Name      string
	Data      models.ScheduleData
	Version   string
	IsDefault bool
}

// CreateSchedule creates a new schedule owned by the requesting user
func (s *ScheduleService) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*models.Schedule, error) {
	if s.store == nil {
		return nil, errors.New("schedule store not set")
	}

	schedule := &models.Schedule{
		UserID:    req.UserID,
		Name:      req.Name,
		Data:      req.Data.Clone(),
		Version:   req.Version,
		IsDefault: req.IsDefault,
	}

	if err := s.store.Create(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// ListSchedules retrieves all schedules owned by the requesting user
func (s *ScheduleService) ListSchedules(ctx context.Context, userID int64) ([]*models.Schedule, error) {
	if s.store == nil {
		return nil, errors.New("schedule store not set")
	}

	return s.store.ListByUserID(ctx, userID)
}

// GetDefaultSchedule retrieves the user's default schedule
func (s *ScheduleService) GetDefaultSchedule(ctx context.Context, userID int64) (*models.Schedule, error) {
	if s.store == nil {
		return nil, errors.New("schedule store not set")
	}

	return s.store.GetDefault(ctx, userID)
}

// SchedulePatch carries the fields of a partial update. Nil means the
// field stays untouched; data, when present, replaces the whole document.
type SchedulePatch struct {
	Name      *string
	Data      *models.ScheduleData
	Version   *string
	IsDefault *bool
}

// UpdateSchedule applies a partial update to an owned schedule and
// returns the updated row
func (s *ScheduleService) UpdateSchedule(ctx context.Context, userID, scheduleID int64, patch SchedulePatch) (*models.Schedule, error) {
	if s.store == nil {
		return nil, errors.New("schedule store not set")
	}

	schedule, err := s.store.GetByID(ctx, scheduleID, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		schedule.Name = *patch.Name
	}
	if patch.Data != nil {
		schedule.Data = patch.Data.Clone()
	}
	if patch.Version != nil {
		schedule.Version = *patch.Version
	}
	if patch.IsDefault != nil {
		schedule.IsDefault = *patch.IsDefault
	}

	if err := s.store.Update(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

// DeleteSchedule permanently removes an owned schedule. Deleting the
// default leaves the user with no default; nothing is promoted.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, userID, scheduleID int64) error {
	if s.store == nil {
		return errors.New("schedule store not set")
	}

	return s.store.Delete(ctx, scheduleID, userID)
}

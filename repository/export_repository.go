package repository

import (
	"context"
	"errors"

	"schedulebuilder-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExportRepository handles database operations for schedule exports
type ExportRepository struct {
	db *pgxpool.Pool
}

// NewExportRepository creates a new export repository
func NewExportRepository(db *pgxpool.Pool) *ExportRepository {
	return &ExportRepository{db: db}
}

// Create inserts a new export record
func (r *ExportRepository) Create(ctx context.Context, export *models.ScheduleExport) error {
	query := `
		INSERT INTO schedule_exports (id, user_id, schedule_id, object_key)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		export.ID,
		export.UserID,
		export.ScheduleID,
		export.ObjectKey,
	).Scan(&export.CreatedAt)
}

// GetByID retrieves an export record, scoped to its owner
func (r *ExportRepository) GetByID(ctx context.Context, id uuid.UUID, userID int64) (*models.ScheduleExport, error) {
	export := &models.ScheduleExport{}
	query := `
		SELECT id, user_id, schedule_id, object_key, created_at
		FROM schedule_exports
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&export.ID,
		&export.UserID,
		&export.ScheduleID,
		&export.ObjectKey,
		&export.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return export, nil
}

// ListByUserID retrieves all export records for a user
func (r *ExportRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.ScheduleExport, error) {
	query := `
		SELECT id, user_id, schedule_id, object_key, created_at
		FROM schedule_exports
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exports []*models.ScheduleExport
	for rows.Next() {
		export := &models.ScheduleExport{}
		err := rows.Scan(
			&export.ID,
			&export.UserID,
			&export.ScheduleID,
			&export.ObjectKey,
			&export.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		exports = append(exports, export)
	}

	return exports, rows.Err()
}

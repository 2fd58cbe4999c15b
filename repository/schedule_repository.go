package repository

import (
	"context"
	"errors"

	"schedulebuilder-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScheduleRepository handles database operations for schedules. Every
// query is owner-scoped: rows belonging to other users are invisible.
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = `id, user_id, name, data, version, is_default, created_at, updated_at`

// Create inserts a new schedule. When the new row is flagged default,
// the existing default for the same user is cleared first, inside the
// same transaction, so the at-most-one-default invariant holds even
// under concurrent writers.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if schedule.IsDefault {
		if err := clearDefault(ctx, tx, schedule.UserID, 0); err != nil {
			return err
		}
	}

	query := `
		INSERT INTO schedules (user_id, name, data, version, is_default)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRow(
		ctx, query,
		schedule.UserID,
		schedule.Name,
		schedule.Data,
		schedule.Version,
		schedule.IsDefault,
	).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListByUserID retrieves all schedules owned by a user
func (r *ScheduleRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE user_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		schedule := &models.Schedule{}
		if err := scanSchedule(rows, schedule); err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	return schedules, rows.Err()
}

// GetDefault retrieves the schedule flagged default for a user. If the
// invariant were ever violated the first match wins.
func (r *ScheduleRepository) GetDefault(ctx context.Context, userID int64) (*models.Schedule, error) {
	schedule := &models.Schedule{}
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE user_id = $1 AND is_default = true
		LIMIT 1`

	err := scanSchedule(r.db.QueryRow(ctx, query, userID), schedule)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return schedule, nil
}

// GetByID retrieves a schedule by id, scoped to its owner
func (r *ScheduleRepository) GetByID(ctx context.Context, id, userID int64) (*models.Schedule, error) {
	schedule := &models.Schedule{}
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE id = $1 AND user_id = $2`

	err := scanSchedule(r.db.QueryRow(ctx, query, id, userID), schedule)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return schedule, nil
}

// Update writes the full row back, scoped to its owner. Clearing a
// sibling default happens in the same transaction as the write.
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if schedule.IsDefault {
		if err := clearDefault(ctx, tx, schedule.UserID, schedule.ID); err != nil {
			return err
		}
	}

	query := `
		UPDATE schedules SET
			name = $3,
			data = $4,
			version = $5,
			is_default = $6,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err = tx.QueryRow(
		ctx, query,
		schedule.ID,
		schedule.UserID,
		schedule.Name,
		schedule.Data,
		schedule.Version,
		schedule.IsDefault,
	).Scan(&schedule.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a schedule, scoped to its owner
func (r *ScheduleRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM schedules WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// clearDefault unsets is_default on every schedule of the user except
// the one being written (exceptID 0 means none).
func clearDefault(ctx context.Context, tx pgx.Tx, userID, exceptID int64) error {
	query := `
		UPDATE schedules SET is_default = false, updated_at = NOW()
		WHERE user_id = $1 AND is_default = true AND id <> $2`

	_, err := tx.Exec(ctx, query, userID, exceptID)
	return err
}

func scanSchedule(row pgx.Row, schedule *models.Schedule) error {
	return row.Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.Name,
		&schedule.Data,
		&schedule.Version,
		&schedule.IsDefault,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
}

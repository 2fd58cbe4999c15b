package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements are idempotent so they can run at every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		data JSONB NOT NULL,
		version TEXT NOT NULL DEFAULT '',
		is_default BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_user ON schedules(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_user_default ON schedules(user_id) WHERE is_default = true`,
	`CREATE TABLE IF NOT EXISTS schedule_exports (
		id UUID PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		schedule_id BIGINT NOT NULL,
		object_key TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_exports_user ON schedule_exports(user_id)`,
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
// Called once at server startup.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// DropSchema removes all tables. Used by the create-schema dev command.
func DropSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS schedule_exports CASCADE`,
		`DROP TABLE IF EXISTS schedules CASCADE`,
		`DROP TABLE IF EXISTS users CASCADE`,
	} {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

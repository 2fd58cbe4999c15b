package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleExport records a snapshot of a schedule document written to
// blob storage.
type ScheduleExport struct {
	ID         uuid.UUID `json:"id"`
	UserID     int64     `json:"user_id"`
	ScheduleID int64     `json:"schedule_id"`
	ObjectKey  string    `json:"object_key"`
	CreatedAt  time.Time `json:"created_at"`
}

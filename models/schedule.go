package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// SubTask is a single checklist item inside a project.
type SubTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Project groups subtasks under a display color.
type Project struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	SubTasks []SubTask `json:"subTasks"`
	Color    string    `json:"color"`
}

// ScheduledTask is a project placed into a time slot. The subtask list is
// a frozen copy taken at placement time: later edits to the live project
// must not change tasks already on the schedule.
type ScheduledTask struct {
	ID                      string    `json:"id"`
	ProjectID               string    `json:"projectId"`
	ProjectName             string    `json:"projectName"`
	ProjectColor            string    `json:"projectColor"`
	OriginalProjectSubTasks []SubTask `json:"originalProjectSubTasks"`
}

// TimeSlot describes one slot of the schedule grid.
type TimeSlot struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Section string `json:"section"`
}

// ScheduleData is the versioned schedule document. It is stored as a
// single JSONB column and deserialized on every read.
type ScheduleData struct {
	Version        string                     `json:"version"`
	Projects       []Project                  `json:"projects"`
	Schedule       map[string][]ScheduledTask `json:"schedule"`
	NextColorIndex int                        `json:"nextColorIndex"`
}

// Value implements driver.Valuer for JSONB
func (d ScheduleData) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB
func (d *ScheduleData) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		return nil
	}

	return json.Unmarshal(bytes, d)
}

// Clone returns a deep copy of the document. Nested slices and the slot
// map are copied, never aliased.
func (d ScheduleData) Clone() ScheduleData {
	out := ScheduleData{
		Version:        d.Version,
		NextColorIndex: d.NextColorIndex,
	}

	if d.Projects != nil {
		out.Projects = make([]Project, len(d.Projects))
		for i, p := range d.Projects {
			out.Projects[i] = p
			out.Projects[i].SubTasks = copySubTasks(p.SubTasks)
		}
	}

	if d.Schedule != nil {
		out.Schedule = make(map[string][]ScheduledTask, len(d.Schedule))
		for slot, tasks := range d.Schedule {
			copied := make([]ScheduledTask, len(tasks))
			for i, t := range tasks {
				copied[i] = t
				copied[i].OriginalProjectSubTasks = copySubTasks(t.OriginalProjectSubTasks)
			}
			out.Schedule[slot] = copied
		}
	}

	return out
}

// PlaceInSlot builds a ScheduledTask for a project, snapshotting its
// current subtasks by deep copy.
func (p Project) PlaceInSlot(taskID string) ScheduledTask {
	return ScheduledTask{
		ID:                      taskID,
		ProjectID:               p.ID,
		ProjectName:             p.Name,
		ProjectColor:            p.Color,
		OriginalProjectSubTasks: copySubTasks(p.SubTasks),
	}
}

func copySubTasks(in []SubTask) []SubTask {
	if in == nil {
		return nil
	}
	out := make([]SubTask, len(in))
	copy(out, in)
	return out
}

// Schedule represents a schedule entity
type Schedule struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"user_id"`
	Name      string       `json:"name"`
	Data      ScheduleData `json:"data"`
	Version   string       `json:"version"`
	IsDefault bool         `json:"is_default"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

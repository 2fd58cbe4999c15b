package service

import (
	"context"
	"sync"
	"time"

	"schedulebuilder-backend/models"
	"schedulebuilder-backend/repository"

	"github.com/google/uuid"
)

// fakeScheduleStore is an in-memory ScheduleStore. It mirrors the
// repository behavior: owner-scoped lookups and the clear-then-set
// default handling applied atomically under the mutex.
type fakeScheduleStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*models.Schedule
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{
		nextID: 1,
		rows:   make(map[int64]*models.Schedule),
	}
}

func cloneSchedule(s *models.Schedule) *models.Schedule {
	out := *s
	out.Data = s.Data.Clone()
	return &out
}

func (f *fakeScheduleStore) Create(_ context.Context, schedule *models.Schedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if schedule.IsDefault {
		f.clearDefaultLocked(schedule.UserID, 0)
	}

	now := time.Now()
	schedule.ID = f.nextID
	f.nextID++
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	f.rows[schedule.ID] = cloneSchedule(schedule)
	return nil
}

func (f *fakeScheduleStore) ListByUserID(_ context.Context, userID int64) ([]*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.Schedule
	for id := int64(1); id < f.nextID; id++ {
		if row, ok := f.rows[id]; ok && row.UserID == userID {
			out = append(out, cloneSchedule(row))
		}
	}
	return out, nil
}

func (f *fakeScheduleStore) GetDefault(_ context.Context, userID int64) (*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id := int64(1); id < f.nextID; id++ {
		if row, ok := f.rows[id]; ok && row.UserID == userID && row.IsDefault {
			return cloneSchedule(row), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeScheduleStore) GetByID(_ context.Context, id, userID int64) (*models.Schedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return cloneSchedule(row), nil
}

func (f *fakeScheduleStore) Update(_ context.Context, schedule *models.Schedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	row, ok := f.rows[schedule.ID]
	if !ok || row.UserID != schedule.UserID {
		return repository.ErrNotFound
	}

	if schedule.IsDefault {
		f.clearDefaultLocked(schedule.UserID, schedule.ID)
	}

	schedule.CreatedAt = row.CreatedAt
	schedule.UpdatedAt = time.Now()
	f.rows[schedule.ID] = cloneSchedule(schedule)
	return nil
}

func (f *fakeScheduleStore) Delete(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeScheduleStore) clearDefaultLocked(userID, exceptID int64) {
	for _, row := range f.rows {
		if row.UserID == userID && row.IsDefault && row.ID != exceptID {
			row.IsDefault = false
			row.UpdatedAt = time.Now()
		}
	}
}

// defaultCount reports how many of the user's rows carry the flag.
func (f *fakeScheduleStore) defaultCount(userID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, row := range f.rows {
		if row.UserID == userID && row.IsDefault {
			n++
		}
	}
	return n
}

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		nextID: 1,
		users:  make(map[int64]*models.User),
	}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}

	now := time.Now()
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = now
	user.UpdatedAt = now

	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

// fakeExportStore is an in-memory ExportStore.
type fakeExportStore struct {
	mu      sync.Mutex
	exports map[uuid.UUID]*models.ScheduleExport
}

func newFakeExportStore() *fakeExportStore {
	return &fakeExportStore{
		exports: make(map[uuid.UUID]*models.ScheduleExport),
	}
}

func (f *fakeExportStore) Create(_ context.Context, export *models.ScheduleExport) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	export.CreatedAt = time.Now()
	copied := *export
	f.exports[export.ID] = &copied
	return nil
}

func (f *fakeExportStore) GetByID(_ context.Context, id uuid.UUID, userID int64) (*models.ScheduleExport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.exports[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeExportStore) ListByUserID(_ context.Context, userID int64) ([]*models.ScheduleExport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.ScheduleExport
	for _, e := range f.exports {
		if e.UserID == userID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

package schedule

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/slot"
	consultantClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/consultantservice"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ConsultationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeConsultantClient struct {
	known map[int64]bool
}

func (c *fakeConsultantClient) GetConsultant(_ context.Context, id int64) (*consultantClient.Consultant, error) {
	if !c.known[id] {
		return nil, consultantClient.ErrConsultantNotFound
	}
	return &consultantClient.Consultant{ID: id, IsActive: true}, nil
}

type fakeSlotRepo struct {
	slots map[int64]*domain.Slot
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

type fakeScheduleRepo struct {
	entries map[string]*domain.ScheduleEntry
	nextID  int64
}

func entryKey(consultantID, slotID int64, day domain.DayOfWeek) string {
	return fmt.Sprintf("%d/%d/%s", consultantID, slotID, day)
}

func (r *fakeScheduleRepo) Create(_ context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	key := entryKey(entry.ConsultantID, entry.SlotID, entry.DayOfWeek)
	if _, ok := r.entries[key]; ok {
		return nil, scheduleRepo.ErrDuplicateEntry
	}
	r.nextID++
	created := *entry
	created.ID = r.nextID
	r.entries[key] = &created
	return &created, nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, consultantID, slotID int64, day domain.DayOfWeek) error {
	key := entryKey(consultantID, slotID, day)
	if _, ok := r.entries[key]; !ok {
		return scheduleRepo.ErrEntryNotFound
	}
	delete(r.entries, key)
	return nil
}

func (r *fakeScheduleRepo) DeleteByConsultant(_ context.Context, consultantID int64) (int64, error) {
	var removed int64
	for key, entry := range r.entries {
		if entry.ConsultantID == consultantID {
			delete(r.entries, key)
			removed++
		}
	}
	return removed, nil
}

func (r *fakeScheduleRepo) ListByConsultant(_ context.Context, consultantID int64, day *domain.DayOfWeek) ([]*domain.ScheduleEntry, error) {
	out := make([]*domain.ScheduleEntry, 0)
	for _, entry := range r.entries {
		if entry.ConsultantID != consultantID {
			continue
		}
		if day != nil && entry.DayOfWeek != *day {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *fakeScheduleRepo) ListAll(_ context.Context) ([]*domain.ScheduleEntry, error) {
	out := make([]*domain.ScheduleEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry)
	}
	return out, nil
}

type env struct {
	scheduleRepo *fakeScheduleRepo
	svc          *Service
}

func newEnv() *env {
	repo := &fakeScheduleRepo{entries: make(map[string]*domain.ScheduleEntry)}
	slots := &fakeSlotRepo{slots: map[int64]*domain.Slot{
		10: {ID: 10, StartTime: "10:00", EndTime: "11:00"},
		11: {ID: 11, StartTime: "11:00", EndTime: "12:00"},
	}}
	consultants := &fakeConsultantClient{known: map[int64]bool{1: true}}

	return &env{
		scheduleRepo: repo,
		svc:          NewService(repo, slots, consultants, nopLogger{}),
	}
}

func TestAddEntry_Success(t *testing.T) {
	e := newEnv()

	resp, err := e.svc.AddEntry(context.Background(), &models.AddEntryRequest{
		ConsultantID: 1,
		SlotID:       10,
		DayOfWeek:    "monday",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, int64(1), resp.ConsultantID)
	assert.Equal(t, int64(10), resp.SlotID)
	assert.Equal(t, "monday", resp.DayOfWeek)
}

func TestAddEntry_NormalizesDayOfWeek(t *testing.T) {
	e := newEnv()

	resp, err := e.svc.AddEntry(context.Background(), &models.AddEntryRequest{
		ConsultantID: 1,
		SlotID:       10,
		DayOfWeek:    "  Monday ",
	})
	require.NoError(t, err)
	assert.Equal(t, "monday", resp.DayOfWeek)
}

func TestAddEntry_InvalidDayOfWeek(t *testing.T) {
	e := newEnv()

	_, err := e.svc.AddEntry(context.Background(), &models.AddEntryRequest{
		ConsultantID: 1,
		SlotID:       10,
		DayOfWeek:    "someday",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddEntry_ConsultantNotFound(t *testing.T) {
	e := newEnv()

	_, err := e.svc.AddEntry(context.Background(), &models.AddEntryRequest{
		ConsultantID: 99,
		SlotID:       10,
		DayOfWeek:    "monday",
	})
	assert.ErrorIs(t, err, ErrConsultantNotFound)
}

func TestAddEntry_SlotNotFound(t *testing.T) {
	e := newEnv()

	_, err := e.svc.AddEntry(context.Background(), &models.AddEntryRequest{
		ConsultantID: 1,
		SlotID:       404,
		DayOfWeek:    "monday",
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestAddEntry_Duplicate(t *testing.T) {
	e := newEnv()
	req := &models.AddEntryRequest{ConsultantID: 1, SlotID: 10, DayOfWeek: "monday"}

	_, err := e.svc.AddEntry(context.Background(), req)
	require.NoError(t, err)

	_, err = e.svc.AddEntry(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestAddEntry_SameSlotDifferentDaysAllowed(t *testing.T) {
	e := newEnv()

	_, err := e.svc.AddEntry(context.Background(), &models.AddEntryRequest{
		ConsultantID: 1, SlotID: 10, DayOfWeek: "monday",
	})
	require.NoError(t, err)

	_, err = e.svc.AddEntry(context.Background(), &models.AddEntryRequest{
		ConsultantID: 1, SlotID: 10, DayOfWeek: "tuesday",
	})
	require.NoError(t, err)
	assert.Len(t, e.scheduleRepo.entries, 2)
}

func TestRemoveEntry_Success(t *testing.T) {
	e := newEnv()
	_, err := e.svc.AddEntry(context.Background(), &models.AddEntryRequest{
		ConsultantID: 1, SlotID: 10, DayOfWeek: "monday",
	})
	require.NoError(t, err)

	err = e.svc.RemoveEntry(context.Background(), &models.RemoveEntryRequest{
		ConsultantID: 1, SlotID: 10, DayOfWeek: "monday",
	})
	require.NoError(t, err)
	assert.Empty(t, e.scheduleRepo.entries)
}

func TestRemoveEntry_NotFound(t *testing.T) {
	e := newEnv()

	err := e.svc.RemoveEntry(context.Background(), &models.RemoveEntryRequest{
		ConsultantID: 1, SlotID: 10, DayOfWeek: "monday",
	})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRemoveEntry_InvalidDayOfWeek(t *testing.T) {
	e := newEnv()

	err := e.svc.RemoveEntry(context.Background(), &models.RemoveEntryRequest{
		ConsultantID: 1, SlotID: 10, DayOfWeek: "mon",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClearSchedule(t *testing.T) {
	e := newEnv()
	for _, day := range []string{"monday", "wednesday", "friday"} {
		_, err := e.svc.AddEntry(context.Background(), &models.AddEntryRequest{
			ConsultantID: 1, SlotID: 10, DayOfWeek: day,
		})
		require.NoError(t, err)
	}

	resp, err := e.svc.ClearSchedule(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Removed)
	assert.Empty(t, e.scheduleRepo.entries)
}

func TestClearSchedule_EmptyScheduleIdempotent(t *testing.T) {
	e := newEnv()

	resp, err := e.svc.ClearSchedule(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, resp.Removed)
}

func TestClearSchedule_ConsultantNotFound(t *testing.T) {
	e := newEnv()

	_, err := e.svc.ClearSchedule(context.Background(), 99)
	assert.ErrorIs(t, err, ErrConsultantNotFound)
}

func TestListByConsultant_FiltersByDay(t *testing.T) {
	e := newEnv()
	for _, entry := range []struct {
		slotID int64
		day    string
	}{
		{10, "monday"},
		{11, "monday"},
		{10, "friday"},
	} {
		_, err := e.svc.AddEntry(context.Background(), &models.AddEntryRequest{
			ConsultantID: 1, SlotID: entry.slotID, DayOfWeek: entry.day,
		})
		require.NoError(t, err)
	}

	resp, err := e.svc.ListByConsultant(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 3)

	resp, err = e.svc.ListByConsultant(context.Background(), 1, ptr.Ptr("monday"))
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 2)
}

func TestListByConsultant_InvalidDay(t *testing.T) {
	e := newEnv()

	_, err := e.svc.ListByConsultant(context.Background(), 1, ptr.Ptr("holiday"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

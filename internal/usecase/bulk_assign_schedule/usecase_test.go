package bulk_assign_schedule

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/slot"
	consultantClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/consultantservice"
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
	slot, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return slot, nil
}

// fakeScheduleRepo потокобезопасен: Create зовётся из нескольких воркеров
type fakeScheduleRepo struct {
	mu       sync.Mutex
	existing map[string]bool
	nextID   int64
	failAll  bool
}

func key(e *domain.ScheduleEntry) string {
	return fmt.Sprintf("%d/%d/%s", e.ConsultantID, e.SlotID, e.DayOfWeek)
}

func (r *fakeScheduleRepo) Create(_ context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failAll {
		return nil, scheduleRepo.ErrExecQuery
	}

	if r.existing == nil {
		r.existing = make(map[string]bool)
	}
	if r.existing[key(entry)] {
		return nil, scheduleRepo.ErrDuplicateEntry
	}
	r.existing[key(entry)] = true

	r.nextID++
	created := *entry
	created.ID = r.nextID
	return &created, nil
}

func newUseCase(schedule *fakeScheduleRepo) *UseCase {
	return NewUseCase(
		schedule,
		&fakeSlotRepo{slots: map[int64]*domain.Slot{
			10: {ID: 10, StartTime: "09:00", EndTime: "10:00"},
			11: {ID: 11, StartTime: "10:00", EndTime: "11:00"},
		}},
		&fakeConsultantClient{known: map[int64]bool{1: true}},
		nopLogger{},
	)
}

func TestExecute_AllEntriesSucceed(t *testing.T) {
	uc := newUseCase(&fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ConsultantID: 1,
		Entries: []EntryInput{
			{SlotID: 10, DayOfWeek: "monday"},
			{SlotID: 11, DayOfWeek: "monday"},
			{SlotID: 10, DayOfWeek: "friday"},
		},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Created, 3)
	assert.Empty(t, resp.Errors)
}

func TestExecute_PartialSuccess(t *testing.T) {
	uc := newUseCase(&fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ConsultantID: 1,
		Entries: []EntryInput{
			{SlotID: 10, DayOfWeek: "monday"},    // ok
			{SlotID: 99, DayOfWeek: "monday"},    // слот не существует
			{SlotID: 11, DayOfWeek: "someday"},   // некорректный день
			{SlotID: 11, DayOfWeek: "wednesday"}, // ok
		},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Created, 2)
	require.Len(t, resp.Errors, 2)

	// Отказы сохраняют исходные данные элемента
	assert.Equal(t, int64(99), resp.Errors[0].Input.SlotID)
	assert.Equal(t, reasonSlotNotFound, resp.Errors[0].Reason)
	assert.Equal(t, "someday", resp.Errors[1].Input.DayOfWeek)
	assert.Equal(t, reasonInvalidDayOfWeek, resp.Errors[1].Reason)
}

func TestExecute_DuplicateWithinBatch(t *testing.T) {
	uc := newUseCase(&fakeScheduleRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ConsultantID: 1,
		Entries: []EntryInput{
			{SlotID: 10, DayOfWeek: "monday"},
			{SlotID: 10, DayOfWeek: "monday"},
		},
	})
	require.NoError(t, err)

	// Ровно один из дубликатов выигрывает, второй получает конфликт
	assert.Len(t, resp.Created, 1)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, reasonDuplicateEntry, resp.Errors[0].Reason)
}

func TestExecute_DuplicateAgainstExisting(t *testing.T) {
	schedule := &fakeScheduleRepo{existing: map[string]bool{"1/10/monday": true}}
	uc := newUseCase(schedule)

	resp, err := uc.Execute(context.Background(), &Request{
		ConsultantID: 1,
		Entries:      []EntryInput{{SlotID: 10, DayOfWeek: "monday"}},
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Created)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, reasonDuplicateEntry, resp.Errors[0].Reason)
}

func TestExecute_StorageFailureIsolatedPerEntry(t *testing.T) {
	uc := newUseCase(&fakeScheduleRepo{failAll: true})

	resp, err := uc.Execute(context.Background(), &Request{
		ConsultantID: 1,
		Entries: []EntryInput{
			{SlotID: 10, DayOfWeek: "monday"},
			{SlotID: 11, DayOfWeek: "tuesday"},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Created)
	require.Len(t, resp.Errors, 2)
	for _, entryErr := range resp.Errors {
		assert.Equal(t, reasonStorageFailure, entryErr.Reason)
	}
}

func TestExecute_ConsultantNotFound(t *testing.T) {
	uc := newUseCase(&fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ConsultantID: 99,
		Entries:      []EntryInput{{SlotID: 10, DayOfWeek: "monday"}},
	})
	assert.ErrorIs(t, err, ErrConsultantNotFound)
}

func TestExecute_BatchValidation(t *testing.T) {
	uc := newUseCase(&fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{ConsultantID: 0,
		Entries: []EntryInput{{SlotID: 10, DayOfWeek: "monday"}}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ConsultantID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooMany := make([]EntryInput, domain.MaxBulkAssignEntries+1)
	for i := range tooMany {
		tooMany[i] = EntryInput{SlotID: 10, DayOfWeek: "monday"}
	}
	_, err = uc.Execute(context.Background(), &Request{ConsultantID: 1, Entries: tooMany})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_LargeBatchPreservesInputOrder(t *testing.T) {
	uc := newUseCase(&fakeScheduleRepo{})

	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	entries := make([]EntryInput, 0, len(days)*2)
	for _, day := range days {
		entries = append(entries, EntryInput{SlotID: 10, DayOfWeek: day})
		entries = append(entries, EntryInput{SlotID: 11, DayOfWeek: day})
	}

	resp, err := uc.Execute(context.Background(), &Request{ConsultantID: 1, Entries: entries})
	require.NoError(t, err)
	require.Len(t, resp.Created, len(entries))

	// Результат идёт в порядке входа независимо от порядка завершения воркеров
	for i, created := range resp.Created {
		assert.Equal(t, entries[i].SlotID, created.SlotID, "index %d", i)
		assert.Equal(t, domain.DayOfWeek(entries[i].DayOfWeek), created.DayOfWeek, "index %d", i)
	}
}

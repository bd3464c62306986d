package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/slot"
	consultantClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/consultantservice"
	memberClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/memberservice"
	"github.com/m04kA/SMC-ConsultationService/pkg/ptr"
)

// Фейки зависимостей

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

type fakeMemberClient struct {
	known map[int64]bool
}

func (c *fakeMemberClient) GetMember(_ context.Context, id int64) (*memberClient.Member, error) {
	if !c.known[id] {
		return nil, memberClient.ErrMemberNotFound
	}
	return &memberClient.Member{ID: id, IsActive: true}, nil
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

type fakeScheduleRepo struct {
	entries []*domain.ScheduleEntry
}

func (r *fakeScheduleRepo) ListByConsultant(_ context.Context, consultantID int64, day *domain.DayOfWeek) ([]*domain.ScheduleEntry, error) {
	out := make([]*domain.ScheduleEntry, 0)
	for _, e := range r.entries {
		if e.ConsultantID != consultantID {
			continue
		}
		if day != nil && e.DayOfWeek != *day {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   []*domain.Booking
	nextID    int64
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.existing {
		if filter.ConsultantID != nil && b.ConsultantID != *filter.ConsultantID {
			continue
		}
		if !filter.IncludeCancelled && !b.IsActive() {
			continue
		}
		if filter.StartDate != nil && b.BookingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && b.BookingDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	created := *booking
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.created = append(r.created, &created)
	return &created, nil
}

type fakeTxManager struct {
	mu    sync.Mutex
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return fn(ctx)
}

// indexedLedger фейк журнала, воспроизводящий поведение частичного
// уникального индекса: второй активный insert на (consultant, slot, date)
// отклоняется, как это сделала бы БД для проигравшей транзакции
type indexedLedger struct {
	mu     sync.Mutex
	rows   []*domain.Booking
	nextID int64
}

func (r *indexedLedger) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Booking, 0)
	for _, b := range r.rows {
		if filter.ConsultantID != nil && b.ConsultantID != *filter.ConsultantID {
			continue
		}
		if !filter.IncludeCancelled && !b.IsActive() {
			continue
		}
		if filter.StartDate != nil && b.BookingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && b.BookingDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *indexedLedger) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.rows {
		if b.IsActive() && b.ConsultantID == booking.ConsultantID &&
			b.SlotID == booking.SlotID && b.BookingDate.Equal(booking.BookingDate) {
			return nil, bookingRepo.ErrSlotTaken
		}
	}

	r.nextID++
	created := *booking
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.rows = append(r.rows, &created)
	return &created, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// Окружение по умолчанию: консультант 1 работает слот 10 по понедельникам,
// участник 2 существует, сегодня понедельник 2026-01-05.
type env struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	tx       *fakeTxManager
	monday   time.Time
}

func newEnv() *env {
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	bookings := &fakeBookingRepo{}
	tx := &fakeTxManager{}

	uc := NewUseCase(
		bookings,
		&fakeScheduleRepo{entries: []*domain.ScheduleEntry{
			{ID: 1, ConsultantID: 1, SlotID: 10, DayOfWeek: domain.Monday},
		}},
		&fakeSlotRepo{slots: map[int64]*domain.Slot{
			10: {ID: 10, StartTime: "10:00", EndTime: "11:00"},
		}},
		&fakeConsultantClient{known: map[int64]bool{1: true}},
		&fakeMemberClient{known: map[int64]bool{2: true}},
		tx,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: monday}

	return &env{uc: uc, bookings: bookings, tx: tx, monday: monday}
}

func validRequest(e *env) *Request {
	return &Request{
		ConsultantID: 1,
		MemberID:     2,
		SlotID:       10,
		Date:         e.monday,
	}
}

func TestExecute_Success(t *testing.T) {
	e := newEnv()

	resp, err := e.uc.Execute(context.Background(), validRequest(e))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(10), resp.SlotID)
	assert.Equal(t, "10:00", resp.SlotStartTime.String())
	assert.Equal(t, "11:00", resp.SlotEndTime.String())
	assert.Equal(t, 1, e.tx.calls, "insert must run inside a serializable transaction")

	require.Len(t, e.bookings.created, 1)
	assert.Equal(t, domain.StatusPending, e.bookings.created[0].Status)
	require.NotNil(t, e.bookings.created[0].MemberID)
	assert.Equal(t, int64(2), *e.bookings.created[0].MemberID)
}

func TestExecute_ValidationErrors(t *testing.T) {
	e := newEnv()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"non-positive consultant", func(r *Request) { r.ConsultantID = 0 }},
		{"non-positive member", func(r *Request) { r.MemberID = -1 }},
		{"non-positive slot", func(r *Request) { r.SlotID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(e)
			tt.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	e := newEnv()

	req := validRequest(e)
	req.Date = e.monday.AddDate(0, 0, -7)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, e.bookings.created)
}

func TestExecute_TodayIsBookable(t *testing.T) {
	e := newEnv()

	// Дата "сегодня" в прошлом не считается, даже если время суток уже позднее
	e.uc.timeProvider = &fixedTimeProvider{now: e.monday.Add(23 * time.Hour)}

	_, err := e.uc.Execute(context.Background(), validRequest(e))
	assert.NoError(t, err)
}

func TestExecute_ConsultantNotFound(t *testing.T) {
	e := newEnv()

	req := validRequest(e)
	req.ConsultantID = 99

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrConsultantNotFound)
}

func TestExecute_MemberNotFound(t *testing.T) {
	e := newEnv()

	req := validRequest(e)
	req.MemberID = 99

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestExecute_SlotNotFound(t *testing.T) {
	e := newEnv()

	req := validRequest(e)
	req.SlotID = 99

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotNotInSchedule(t *testing.T) {
	e := newEnv()

	// Вторник не входит в шаблон консультанта
	req := validRequest(e)
	req.Date = e.monday.AddDate(0, 0, 1)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotInSchedule)
	assert.Empty(t, e.bookings.created)
}

func TestExecute_SlotTaken(t *testing.T) {
	e := newEnv()

	e.bookings.existing = []*domain.Booking{
		{ID: 50, ConsultantID: 1, SlotID: 10, BookingDate: e.monday, Status: domain.StatusConfirmed},
	}

	_, err := e.uc.Execute(context.Background(), validRequest(e))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, e.bookings.created)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	e := newEnv()

	// Отменённое бронирование на тот же (слот, дату) не мешает новому
	e.bookings.existing = []*domain.Booking{
		{ID: 50, ConsultantID: 1, SlotID: 10, BookingDate: e.monday, Status: domain.StatusCancelled},
	}

	resp, err := e.uc.Execute(context.Background(), validRequest(e))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_SameSlotDifferentDatesAllowed(t *testing.T) {
	e := newEnv()

	// Бронирование на следующий понедельник не конфликтует с этим
	e.bookings.existing = []*domain.Booking{
		{ID: 50, ConsultantID: 1, SlotID: 10, BookingDate: e.monday.AddDate(0, 0, 7), Status: domain.StatusPending},
	}

	_, err := e.uc.Execute(context.Background(), validRequest(e))
	assert.NoError(t, err)
}

func TestExecute_UniqueIndexRaceMapsToSlotTaken(t *testing.T) {
	e := newEnv()

	// Обе транзакции прошли проверку, insert проигравшей отклонён индексом
	e.bookings.createErr = bookingRepo.ErrSlotTaken

	_, err := e.uc.Execute(context.Background(), validRequest(e))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ConcurrentRequestsExactlyOneWins(t *testing.T) {
	const workers = 8

	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	ledger := &indexedLedger{}

	uc := NewUseCase(
		ledger,
		&fakeScheduleRepo{entries: []*domain.ScheduleEntry{
			{ID: 1, ConsultantID: 1, SlotID: 10, DayOfWeek: domain.Monday},
		}},
		&fakeSlotRepo{slots: map[int64]*domain.Slot{
			10: {ID: 10, StartTime: "10:00", EndTime: "11:00"},
		}},
		&fakeConsultantClient{known: map[int64]bool{1: true}},
		&fakeMemberClient{known: map[int64]bool{2: true}},
		&fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: monday}

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{
				ConsultantID: 1,
				MemberID:     2,
				SlotID:       10,
				Date:         monday,
			})
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one concurrent request must win the slot")
	assert.Equal(t, workers-1, conflicts, "every loser must observe a conflict")
	assert.Len(t, ledger.rows, 1)
}

func TestExecute_NotesTooLong(t *testing.T) {
	e := newEnv()

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}

	req := validRequest(e)
	req.Notes = ptr.Ptr(string(long))

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

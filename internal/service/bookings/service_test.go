package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	memberClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/memberservice"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ConsultationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMemberClient struct {
	known map[int64]bool
}

func (c *fakeMemberClient) GetMember(_ context.Context, id int64) (*memberClient.Member, error) {
	if !c.known[id] {
		return nil, memberClient.ErrMemberNotFound
	}
	return &memberClient.Member{ID: id, IsActive: true}, nil
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if filter.MemberID != nil && (b.MemberID == nil || *b.MemberID != *filter.MemberID) {
			continue
		}
		if filter.ConsultantID != nil && b.ConsultantID != *filter.ConsultantID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeCancelled && !b.IsActive() {
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

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) UpdateNotes(_ context.Context, id int64, notes *string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Notes = notes
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	return nil
}

func newService(repo *fakeBookingRepo) *Service {
	return NewService(repo, &fakeMemberClient{known: map[int64]bool{2: true}}, nopLogger{})
}

func seedBooking(status domain.BookingStatus) *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID:           1,
			ConsultantID: 1,
			MemberID:     ptr.Ptr(int64(2)),
			SlotID:       10,
			BookingDate:  time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			Status:       status,
		},
	}}
}

func TestUpdate_AllowedTransition(t *testing.T) {
	repo := seedBooking(domain.StatusPending)
	svc := newService(repo)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
}

func TestUpdate_ForbiddenTransition(t *testing.T) {
	repo := seedBooking(domain.StatusPending)
	svc := newService(repo)

	// pending -> completed минует подтверждение
	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr("completed"),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, repo.bookings[1].Status)
}

func TestUpdate_TerminalStatusFrozen(t *testing.T) {
	repo := seedBooking(domain.StatusCompleted)
	svc := newService(repo)

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr("confirmed"),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdate_CancellationViaUpdateRejected(t *testing.T) {
	svc := newService(seedBooking(domain.StatusPending))

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr("cancelled"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_UnknownStatus(t *testing.T) {
	svc := newService(seedBooking(domain.StatusPending))

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdate_NotesOnly(t *testing.T) {
	repo := seedBooking(domain.StatusConfirmed)
	svc := newService(repo)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Notes: ptr.Ptr("перенести на онлайн"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "перенести на онлайн", *resp.Notes)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
}

func TestUpdate_EmptyRequest(t *testing.T) {
	svc := newService(seedBooking(domain.StatusPending))

	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}})

	_, err := svc.Update(context.Background(), 42, &models.UpdateBookingRequest{
		Status: ptr.Ptr("confirmed"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_PendingBooking(t *testing.T) {
	repo := seedBooking(domain.StatusPending)
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		CancellationReason: "участник заболел",
	})
	require.NoError(t, err)

	b := repo.bookings[1]
	assert.Equal(t, domain.StatusCancelled, b.Status)
	require.NotNil(t, b.CancellationReason)
	assert.Equal(t, "участник заболел", *b.CancellationReason)
	assert.NotNil(t, b.CancelledAt)
}

func TestCancel_CompletedBookingRejected(t *testing.T) {
	repo := seedBooking(domain.StatusCompleted)
	svc := newService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Equal(t, domain.StatusCompleted, repo.bookings[1].Status)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc := newService(seedBooking(domain.StatusCancelled))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetMemberBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, ConsultantID: 1, MemberID: ptr.Ptr(int64(2)), SlotID: 10, Status: domain.StatusPending},
		2: {ID: 2, ConsultantID: 1, MemberID: ptr.Ptr(int64(2)), SlotID: 11, Status: domain.StatusCancelled},
		3: {ID: 3, ConsultantID: 1, MemberID: ptr.Ptr(int64(5)), SlotID: 10, Status: domain.StatusPending},
	}}
	svc := newService(repo)

	// Без фильтра статуса история участника включает отменённые
	resp, err := svc.GetMemberBookings(context.Background(), &models.GetMemberBookingsRequest{MemberID: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	// С фильтром статуса
	resp, err = svc.GetMemberBookings(context.Background(), &models.GetMemberBookingsRequest{
		MemberID: 2,
		Status:   ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetMemberBookings_MemberNotFound(t *testing.T) {
	svc := newService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}})

	_, err := svc.GetMemberBookings(context.Background(), &models.GetMemberBookingsRequest{MemberID: 99})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestGetByDateRange_InvalidRange(t *testing.T) {
	svc := newService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}})

	_, err := svc.GetByDateRange(context.Background(), &models.GetBookingsRangeRequest{
		StartDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGetByDateRange_FiltersByConsultantAndPeriod(t *testing.T) {
	date := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }

	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, ConsultantID: 1, SlotID: 10, BookingDate: date(5), Status: domain.StatusPending},
		2: {ID: 2, ConsultantID: 1, SlotID: 10, BookingDate: date(20), Status: domain.StatusPending},
		3: {ID: 3, ConsultantID: 2, SlotID: 10, BookingDate: date(6), Status: domain.StatusPending},
	}}
	svc := newService(repo)

	resp, err := svc.GetByDateRange(context.Background(), &models.GetBookingsRangeRequest{
		ConsultantID: ptr.Ptr(int64(1)),
		StartDate:    date(1),
		EndDate:      date(10),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

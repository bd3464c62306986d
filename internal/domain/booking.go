package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// statusTransitions допустимые переходы статусов.
// Жизненный цикл строго вперёд: pending -> confirmed -> completed,
// отмена возможна из любого нетерминального статуса,
// терминальные статусы (completed, cancelled) не покидаются никогда.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Booking represents a member's dated reservation of a consultant's slot
type Booking struct {
	ID           int64
	ConsultantID int64
	MemberID     *int64 // nil until claimed by a member
	SlotID       int64
	BookingDate  time.Time // calendar date, time part is zero
	Status       BookingStatus
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot.
// Any non-cancelled booking counts as busy for availability purposes.
func (b *Booking) IsActive() bool {
	for _, status := range ActiveStatuses {
		if b.Status == status {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the booking can never change status again
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo returns true if the status change is allowed by the lifecycle
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	ConsultantID     *int64         // Фильтр по консультанту (опционально)
	MemberID         *int64         // Фильтр по участнику (опционально)
	SlotID           *int64         // Фильтр по слоту (опционально)
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}

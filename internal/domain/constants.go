package domain

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500

	// MaxBulkAssignEntries максимальный размер пакета при массовом назначении слотов
	MaxBulkAssignEntries = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование занимает слот.
// Предикат занятости Booking.IsActive построен на этом наборе;
// частичный уникальный индекс в БД выражает то же условие как
// WHERE status <> 'cancelled'.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// ValidStatuses полный набор допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

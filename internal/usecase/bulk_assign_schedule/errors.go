package bulk_assign_schedule

import "errors"

var (
	// ErrConsultantNotFound возвращается, когда консультант не найден
	ErrConsultantNotFound = errors.New("bulk_assign_schedule: consultant not found")

	// ErrInvalidInput возвращается при некорректных входных данных пакета в целом
	ErrInvalidInput = errors.New("bulk_assign_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("bulk_assign_schedule: internal error")
)

// Причины отказа по отдельным элементам пакета.
// Это не ошибки usecase: они попадают в поле reason частичного результата.
const (
	reasonInvalidDayOfWeek = "invalid day of week"
	reasonSlotNotFound     = "slot not found"
	reasonDuplicateEntry   = "schedule entry already exists"
	reasonStorageFailure   = "storage failure"
)

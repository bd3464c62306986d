package schedule

import "errors"

var (
	// ErrConsultantNotFound возвращается, когда консультант не найден
	ErrConsultantNotFound = errors.New("consultant not found")

	// ErrSlotNotFound возвращается, когда слот не найден в каталоге
	ErrSlotNotFound = errors.New("slot not found")

	// ErrEntryNotFound возвращается, когда запись расписания не найдена
	ErrEntryNotFound = errors.New("schedule entry not found")

	// ErrDuplicateEntry возвращается при попытке повторно назначить слот на тот же день
	ErrDuplicateEntry = errors.New("schedule entry already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package create_booking

import "errors"

var (
	// ErrConsultantNotFound возвращается, когда консультант не найден
	ErrConsultantNotFound = errors.New("create_booking: consultant not found")

	// ErrMemberNotFound возвращается, когда участник не найден
	ErrMemberNotFound = errors.New("create_booking: member not found")

	// ErrSlotNotFound возвращается, когда слот не найден в каталоге
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotNotInSchedule возвращается, когда слот не входит в еженедельное
	// расписание консультанта на этот день недели
	ErrSlotNotInSchedule = errors.New("create_booking: slot is not part of consultant's schedule")

	// ErrSlotTaken возвращается, когда слот на эту дату уже занят
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

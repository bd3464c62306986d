package bulk_assign_schedule

import "github.com/m04kA/SMC-ConsultationService/internal/domain"

// Request модель запроса на массовое назначение слотов одному консультанту
type Request struct {
	ConsultantID int64
	Entries      []EntryInput
}

// EntryInput один элемент пакета.
// DayOfWeek приходит строкой и валидируется независимо для каждого элемента.
type EntryInput struct {
	SlotID    int64
	DayOfWeek string
}

// Response частичный результат: созданные записи и отказы по элементам.
// Один некорректный элемент не отменяет остальные.
type Response struct {
	Created []*domain.ScheduleEntry
	Errors  []EntryError
}

// EntryError отказ по одному элементу пакета с его исходными данными
type EntryError struct {
	Input  EntryInput
	Reason string
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// Request модель запроса на разрешение доступности консультанта на дату
type Request struct {
	ConsultantID int64     // ID консультанта
	Date         time.Time // Календарная дата (без времени)
	OnlyFree     bool      // Вернуть только свободные слоты
}

// Response модель ответа резолвера
type Response struct {
	ConsultantID int64            // ID консультанта
	Date         time.Time        // Дата, на которую разрешалась доступность
	DayOfWeek    domain.DayOfWeek // День недели этой даты
	Slots        []Slot           // Слоты расписания с признаком занятости
}

// Slot слот расписания консультанта на конкретную дату
type Slot struct {
	SlotID    int64
	StartTime types.TimeString
	EndTime   types.TimeString
	IsFree    bool
}

// DayRequest модель обратного запроса: постоянная доступность по дню недели,
// без привязки к календарной дате (и, значит, без вычета бронирований)
type DayRequest struct {
	DayOfWeek    domain.DayOfWeek
	ConsultantID *int64 // Сузить до одного консультанта (опционально)
	SlotID       *int64 // Сузить до одного слота - "кто работает слот X" (опционально)
}

// DayResponse модель ответа обратного запроса
type DayResponse struct {
	DayOfWeek domain.DayOfWeek
	Entries   []DayEntry
}

// DayEntry запись постоянной доступности
type DayEntry struct {
	ConsultantID int64
	SlotID       int64
	StartTime    types.TimeString
	EndTime      types.TimeString
}

package get_available_slots

import (
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// resolveSlots вычисляет free/busy представление для записей расписания.
//
// Кандидаты - слоты из шаблона консультанта на день недели. Занятые -
// слоты с активным (не отменённым) бронированием на эту дату. Сравнение
// идёт по slot id: слот либо целиком свободен, либо целиком занят,
// интервальная арифметика не нужна - каталог слотов не пересекается.
//
// Порядок результата наследует порядок каталога (по времени начала).
func resolveSlots(
	entries []*domain.ScheduleEntry,
	bookings []*domain.Booking,
	catalog []*domain.Slot,
) []Slot {
	scheduled := make(map[int64]bool, len(entries))
	for _, entry := range entries {
		scheduled[entry.SlotID] = true
	}

	busy := make(map[int64]bool, len(bookings))
	for _, booking := range bookings {
		// Отменённые бронирования слот не занимают
		if !booking.IsActive() {
			continue
		}
		busy[booking.SlotID] = true
	}

	result := make([]Slot, 0, len(entries))
	for _, slot := range catalog {
		if !scheduled[slot.ID] {
			continue
		}
		result = append(result, Slot{
			SlotID:    slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsFree:    !busy[slot.ID],
		})
	}

	return result
}

// filterFree оставляет только свободные слоты
func filterFree(slots []Slot) []Slot {
	free := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.IsFree {
			free = append(free, slot)
		}
	}
	return free
}

// catalogByID строит индекс каталога слотов по id
func catalogByID(catalog []*domain.Slot) map[int64]*domain.Slot {
	index := make(map[int64]*domain.Slot, len(catalog))
	for _, slot := range catalog {
		index[slot.ID] = slot
	}
	return index
}

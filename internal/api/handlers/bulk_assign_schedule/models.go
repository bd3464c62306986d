package bulk_assign_schedule

import (
	"time"

	bulkAssign "github.com/m04kA/SMC-ConsultationService/internal/usecase/bulk_assign_schedule"
)

// BulkAssignRequest HTTP request model
type BulkAssignRequest struct {
	ConsultantID int64       `json:"consultantId"`
	Slots        []SlotInput `json:"slots"`
}

// SlotInput один элемент пакета
type SlotInput struct {
	SlotID    int64  `json:"slotId"`
	DayOfWeek string `json:"dayOfWeek"`
}

// BulkAssignResponse HTTP response model: частичный результат
type BulkAssignResponse struct {
	SavedSlots []SavedSlot `json:"savedSlots"`
	Errors     []SlotError `json:"errors"`
}

// SavedSlot успешно созданная запись расписания
type SavedSlot struct {
	ID           int64     `json:"id"`
	ConsultantID int64     `json:"consultantId"`
	SlotID       int64     `json:"slotId"`
	DayOfWeek    string    `json:"dayOfWeek"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SlotError отказ по одному элементу пакета
type SlotError struct {
	SlotID    int64  `json:"slotId"`
	DayOfWeek string `json:"dayOfWeek"`
	Reason    string `json:"reason"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BulkAssignRequest) ToUseCaseRequest() *bulkAssign.Request {
	entries := make([]bulkAssign.EntryInput, len(r.Slots))
	for i, slot := range r.Slots {
		entries[i] = bulkAssign.EntryInput{
			SlotID:    slot.SlotID,
			DayOfWeek: slot.DayOfWeek,
		}
	}

	return &bulkAssign.Request{
		ConsultantID: r.ConsultantID,
		Entries:      entries,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bulkAssign.Response) *BulkAssignResponse {
	out := &BulkAssignResponse{
		SavedSlots: make([]SavedSlot, len(resp.Created)),
		Errors:     make([]SlotError, len(resp.Errors)),
	}

	for i, entry := range resp.Created {
		out.SavedSlots[i] = SavedSlot{
			ID:           entry.ID,
			ConsultantID: entry.ConsultantID,
			SlotID:       entry.SlotID,
			DayOfWeek:    entry.DayOfWeek.String(),
			CreatedAt:    entry.CreatedAt,
		}
	}

	for i, entryErr := range resp.Errors {
		out.Errors[i] = SlotError{
			SlotID:    entryErr.Input.SlotID,
			DayOfWeek: entryErr.Input.DayOfWeek,
			Reason:    entryErr.Reason,
		}
	}

	return out
}

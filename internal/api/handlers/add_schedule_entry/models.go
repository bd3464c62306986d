package add_schedule_entry

import (
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule/models"
)

// AddEntryRequest HTTP request model
type AddEntryRequest struct {
	ConsultantID int64  `json:"consultantId"`
	SlotID       int64  `json:"slotId"`
	DayOfWeek    string `json:"dayOfWeek"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *AddEntryRequest) ToServiceRequest() *models.AddEntryRequest {
	return &models.AddEntryRequest{
		ConsultantID: r.ConsultantID,
		SlotID:       r.SlotID,
		DayOfWeek:    r.DayOfWeek,
	}
}

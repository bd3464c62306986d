package get_available_slots

import (
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ConsultationService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model для запроса по дате
type AvailableSlotsResponse struct {
	ConsultantID int64          `json:"consultantId"`
	Date         string         `json:"date"`
	DayOfWeek    string         `json:"dayOfWeek"`
	Slots        []SlotResponse `json:"slots"`
}

// SlotResponse слот расписания с признаком занятости
type SlotResponse struct {
	SlotID    int64  `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsFree    bool   `json:"isFree"`
}

// DayAvailabilityResponse HTTP response model для запроса по дню недели
type DayAvailabilityResponse struct {
	DayOfWeek string             `json:"dayOfWeek"`
	Entries   []DayEntryResponse `json:"entries"`
}

// DayEntryResponse запись постоянной доступности
type DayEntryResponse struct {
	ConsultantID int64  `json:"consultantId"`
	SlotID       int64  `json:"slotId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		ConsultantID: resp.ConsultantID,
		Date:         resp.Date.Format(domain.DateFormat),
		DayOfWeek:    resp.DayOfWeek.String(),
		Slots:        make([]SlotResponse, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		out.Slots[i] = SlotResponse{
			SlotID:    slot.SlotID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			IsFree:    slot.IsFree,
		}
	}

	return out
}

// FromDayResponse конвертирует ответ обратного запроса в HTTP response
func FromDayResponse(resp *getAvailableSlots.DayResponse) *DayAvailabilityResponse {
	out := &DayAvailabilityResponse{
		DayOfWeek: resp.DayOfWeek.String(),
		Entries:   make([]DayEntryResponse, len(resp.Entries)),
	}

	for i, entry := range resp.Entries {
		out.Entries[i] = DayEntryResponse{
			ConsultantID: entry.ConsultantID,
			SlotID:       entry.SlotID,
			StartTime:    entry.StartTime.String(),
			EndTime:      entry.EndTime.String(),
		}
	}

	return out
}

package models

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// Request модели

// AddEntryRequest запрос на добавление записи в шаблон расписания
type AddEntryRequest struct {
	ConsultantID int64  `json:"consultantId"`
	SlotID       int64  `json:"slotId"`
	DayOfWeek    string `json:"dayOfWeek"`
}

// RemoveEntryRequest запрос на удаление записи из шаблона расписания
type RemoveEntryRequest struct {
	ConsultantID int64  `json:"consultantId"`
	SlotID       int64  `json:"slotId"`
	DayOfWeek    string `json:"dayOfWeek"`
}

// Response модели

// ScheduleEntryResponse ответ с данными записи расписания
type ScheduleEntryResponse struct {
	ID           int64     `json:"id"`
	ConsultantID int64     `json:"consultantId"`
	SlotID       int64     `json:"slotId"`
	DayOfWeek    string    `json:"dayOfWeek"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ScheduleListResponse ответ со списком записей расписания
type ScheduleListResponse struct {
	Entries []ScheduleEntryResponse `json:"entries"`
}

// ClearScheduleResponse ответ на полную очистку расписания консультанта
type ClearScheduleResponse struct {
	ConsultantID int64 `json:"consultantId"`
	Removed      int64 `json:"removed"`
}

// Методы конвертации

// FromDomainEntry конвертирует domain модель в DTO
func FromDomainEntry(e *domain.ScheduleEntry) *ScheduleEntryResponse {
	if e == nil {
		return nil
	}

	return &ScheduleEntryResponse{
		ID:           e.ID,
		ConsultantID: e.ConsultantID,
		SlotID:       e.SlotID,
		DayOfWeek:    e.DayOfWeek.String(),
		CreatedAt:    e.CreatedAt,
	}
}

// FromDomainEntryList конвертирует список domain моделей в DTO
func FromDomainEntryList(entries []*domain.ScheduleEntry) *ScheduleListResponse {
	if entries == nil {
		return &ScheduleListResponse{
			Entries: []ScheduleEntryResponse{},
		}
	}

	resp := &ScheduleListResponse{
		Entries: make([]ScheduleEntryResponse, len(entries)),
	}

	for i, entry := range entries {
		if entryResp := FromDomainEntry(entry); entryResp != nil {
			resp.Entries[i] = *entryResp
		}
	}

	return resp
}

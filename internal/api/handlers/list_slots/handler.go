package list_slots

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

type Handler struct {
	slotRepo SlotRepository
	logger   Logger
}

func NewHandler(slotRepo SlotRepository, logger Logger) *Handler {
	return &Handler{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID              int64  `json:"id"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// SlotListResponse ответ со списком слотов каталога
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotRepo.List(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := SlotListResponse{
		Slots: make([]SlotResponse, len(slots)),
	}
	for i, slot := range slots {
		response.Slots[i] = fromDomainSlot(slot)
	}

	h.logger.Info("GET /slots - Listed %d slots", len(slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

func fromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:              s.ID,
		StartTime:       s.StartTime.String(),
		EndTime:         s.EndTime.String(),
		DurationMinutes: s.DurationMinutes(),
	}
}

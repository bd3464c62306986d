package add_schedule_entry

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgConsultantNotFound = "консультант не найден"
	msgSlotNotFound       = "слот не найден"
	msgDuplicateEntry     = "слот уже назначен на этот день"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/consultant-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /consultant-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	entry, err := h.service.AddEntry(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDuplicateEntry):
			h.logger.Warn("POST /consultant-slots - Duplicate entry: consultant_id=%d, slot_id=%d, day=%s",
				req.ConsultantID, req.SlotID, req.DayOfWeek)
			handlers.RespondConflict(w, msgDuplicateEntry)

		case errors.Is(err, schedule.ErrConsultantNotFound):
			h.logger.Warn("POST /consultant-slots - Consultant not found: consultant_id=%d", req.ConsultantID)
			handlers.RespondNotFound(w, msgConsultantNotFound)

		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("POST /consultant-slots - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /consultant-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /consultant-slots - Failed to add entry: consultant_id=%d, error=%v",
				req.ConsultantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /consultant-slots - Entry created: id=%d, consultant_id=%d, slot_id=%d, day=%s",
		entry.ID, req.ConsultantID, req.SlotID, req.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, entry)
}

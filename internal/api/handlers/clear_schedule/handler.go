package clear_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule"
)

const (
	msgInvalidConsultantID = "некорректный ID консультанта"
	msgConsultantNotFound  = "консультант не найден"
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

// Handle DELETE /api/v1/consultant-slots/consultant/{consultantId}/clear
//
// Идемпотентна: повторный вызов вернёт removed=0.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	consultantIDStr := vars["consultantId"]

	consultantID, err := strconv.ParseInt(consultantIDStr, 10, 64)
	if err != nil || consultantID <= 0 {
		h.logger.Warn("DELETE /consultant-slots/consultant/{id}/clear - Invalid consultant ID: %s", consultantIDStr)
		handlers.RespondBadRequest(w, msgInvalidConsultantID)
		return
	}

	result, err := h.service.ClearSchedule(r.Context(), consultantID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrConsultantNotFound):
			h.logger.Warn("DELETE /consultant-slots/consultant/{id}/clear - Consultant not found: consultant_id=%d",
				consultantID)
			handlers.RespondNotFound(w, msgConsultantNotFound)

		default:
			h.logger.Error("DELETE /consultant-slots/consultant/{id}/clear - Failed to clear schedule: consultant_id=%d, error=%v",
				consultantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /consultant-slots/consultant/{id}/clear - Cleared %d entries: consultant_id=%d",
		result.Removed, consultantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

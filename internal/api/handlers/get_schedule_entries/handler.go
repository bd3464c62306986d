package get_schedule_entries

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
	msgInvalidInput        = "некорректные входные данные"
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

// Handle GET /api/v1/consultant-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /consultant-slots - Failed to list entries: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /consultant-slots - Listed %d entries", len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleByConsultant GET /api/v1/consultant-slots/consultant/{consultantId}
//
// Опциональный параметр: dayOfWeek
func (h *Handler) HandleByConsultant(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	consultantIDStr := vars["consultantId"]

	consultantID, err := strconv.ParseInt(consultantIDStr, 10, 64)
	if err != nil || consultantID <= 0 {
		h.logger.Warn("GET /consultant-slots/consultant/{id} - Invalid consultant ID: %s", consultantIDStr)
		handlers.RespondBadRequest(w, msgInvalidConsultantID)
		return
	}

	var dayOfWeek *string
	if dayStr := r.URL.Query().Get("dayOfWeek"); dayStr != "" {
		dayOfWeek = &dayStr
	}

	result, err := h.service.ListByConsultant(r.Context(), consultantID, dayOfWeek)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrConsultantNotFound):
			h.logger.Warn("GET /consultant-slots/consultant/{id} - Consultant not found: consultant_id=%d",
				consultantID)
			handlers.RespondNotFound(w, msgConsultantNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /consultant-slots/consultant/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /consultant-slots/consultant/{id} - Failed to list entries: consultant_id=%d, error=%v",
				consultantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /consultant-slots/consultant/{id} - Listed %d entries: consultant_id=%d",
		len(result.Entries), consultantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

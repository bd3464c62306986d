package remove_schedule_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule/models"
)

const (
	msgInvalidConsultantID = "некорректный ID консультанта"
	msgInvalidSlotID       = "некорректный ID слота"
	msgInvalidDayOfWeek    = "некорректный день недели"
	msgEntryNotFound       = "запись расписания не найдена"
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

// Handle DELETE /api/v1/consultant-slots/{consultantId}/{slotId}/{dayOfWeek}
//
// Существующие бронирования удалённая запись не затрагивает.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	consultantID, err := strconv.ParseInt(vars["consultantId"], 10, 64)
	if err != nil || consultantID <= 0 {
		h.logger.Warn("DELETE /consultant-slots/{...} - Invalid consultant ID: %s", vars["consultantId"])
		handlers.RespondBadRequest(w, msgInvalidConsultantID)
		return
	}

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("DELETE /consultant-slots/{...} - Invalid slot ID: %s", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	req := &models.RemoveEntryRequest{
		ConsultantID: consultantID,
		SlotID:       slotID,
		DayOfWeek:    vars["dayOfWeek"],
	}

	err = h.service.RemoveEntry(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrEntryNotFound):
			h.logger.Warn("DELETE /consultant-slots/{...} - Entry not found: consultant_id=%d, slot_id=%d, day=%s",
				consultantID, slotID, req.DayOfWeek)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /consultant-slots/{...} - Invalid day of week: %s", req.DayOfWeek)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		default:
			h.logger.Error("DELETE /consultant-slots/{...} - Failed to remove entry: consultant_id=%d, error=%v",
				consultantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /consultant-slots/{...} - Entry removed: consultant_id=%d, slot_id=%d, day=%s",
		consultantID, slotID, req.DayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

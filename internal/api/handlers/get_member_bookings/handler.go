package get_member_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
)

const (
	msgInvalidMemberID = "некорректный ID участника"
	msgMemberNotFound  = "участник не найден"
	msgInvalidInput    = "некорректные входные данные"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/members/{memberId}/bookings
//
// Опциональный параметр: status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	memberIDStr := vars["memberId"]

	memberID, err := strconv.ParseInt(memberIDStr, 10, 64)
	if err != nil || memberID <= 0 {
		h.logger.Warn("GET /members/{id}/bookings - Invalid member ID: %s", memberIDStr)
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	req := &models.GetMemberBookingsRequest{
		MemberID: memberID,
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.GetMemberBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrMemberNotFound):
			h.logger.Warn("GET /members/{id}/bookings - Member not found: member_id=%d", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /members/{id}/bookings - Invalid input: member_id=%d, error=%v", memberID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /members/{id}/bookings - Failed to get bookings: member_id=%d, error=%v",
				memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /members/{id}/bookings - Retrieved %d bookings for member_id=%d",
		len(result.Bookings), memberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

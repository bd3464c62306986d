package get_bookings_date_range

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
)

const (
	msgMissingPeriod       = "требуются параметры startDate и endDate"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidConsultantID = "некорректный ID консультанта"
	msgInvalidDateRange    = "дата окончания раньше даты начала"
	msgInvalidInput        = "некорректные входные данные"
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

// Handle GET /api/v1/bookings/date-range?startDate=&endDate=
//
// Опциональные параметры: consultantId, status, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /bookings/date-range - Missing period parameters")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/date-range - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/date-range - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetBookingsRangeRequest{
		StartDate: startDate,
		EndDate:   endDate,
	}

	if consultantIDStr := query.Get("consultantId"); consultantIDStr != "" {
		consultantID, err := strconv.ParseInt(consultantIDStr, 10, 64)
		if err != nil || consultantID <= 0 {
			h.logger.Warn("GET /bookings/date-range - Invalid consultant ID: %s", consultantIDStr)
			handlers.RespondBadRequest(w, msgInvalidConsultantID)
			return
		}
		req.ConsultantID = &consultantID
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if query.Get("includeCancelled") == "true" {
		req.IncludeCancelled = true
	}

	result, err := h.service.GetByDateRange(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidDateRange):
			h.logger.Warn("GET /bookings/date-range - Invalid range: start=%s, end=%s", startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/date-range - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings/date-range - Failed to get bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/date-range - Retrieved %d bookings: period=%s to %s",
		len(result.Bookings), startDateStr, endDateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}

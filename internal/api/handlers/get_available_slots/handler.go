package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ConsultationService/internal/usecase/get_available_slots"
)

const (
	msgMissingQuery        = "требуется параметр date (с consultantId) или dayOfWeek"
	msgAmbiguousQuery      = "параметры date и dayOfWeek взаимоисключающие"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDayOfWeek    = "некорректный день недели"
	msgInvalidConsultantID = "некорректный ID консультанта"
	msgInvalidSlotID       = "некорректный ID слота"
	msgConsultantNotFound  = "консультант не найден"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/consultant-slots/available
//
// Два режима, параметры взаимоисключающие:
//   - ?consultantId=&date=      - расписание консультанта на дату с вычетом
//     занятых слотов (onlyFree=true оставляет только свободные)
//   - ?dayOfWeek=[&consultantId=][&slotId=] - постоянная доступность по дню
//     недели без привязки к дате
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	dayStr := query.Get("dayOfWeek")

	switch {
	case dateStr != "" && dayStr != "":
		h.logger.Warn("GET /consultant-slots/available - Both date and dayOfWeek provided")
		handlers.RespondBadRequest(w, msgAmbiguousQuery)

	case dateStr != "":
		h.handleByDate(w, r, dateStr)

	case dayStr != "":
		h.handleByDay(w, r, dayStr)

	default:
		h.logger.Warn("GET /consultant-slots/available - Missing date and dayOfWeek")
		handlers.RespondBadRequest(w, msgMissingQuery)
	}
}

// handleByDate разрешает доступность консультанта на календарную дату
func (h *Handler) handleByDate(w http.ResponseWriter, r *http.Request, dateStr string) {
	query := r.URL.Query()

	consultantIDStr := query.Get("consultantId")
	consultantID, err := strconv.ParseInt(consultantIDStr, 10, 64)
	if err != nil || consultantID <= 0 {
		h.logger.Warn("GET /consultant-slots/available - Invalid consultant ID: %s", consultantIDStr)
		handlers.RespondBadRequest(w, msgInvalidConsultantID)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /consultant-slots/available - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{
		ConsultantID: consultantID,
		Date:         date,
		OnlyFree:     query.Get("onlyFree") == "true",
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrConsultantNotFound):
			h.logger.Warn("GET /consultant-slots/available - Consultant not found: consultant_id=%d", consultantID)
			handlers.RespondNotFound(w, msgConsultantNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /consultant-slots/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /consultant-slots/available - Failed to resolve slots: consultant_id=%d, error=%v",
				consultantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /consultant-slots/available - Resolved %d slots: consultant_id=%d, date=%s",
		len(result.Slots), consultantID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// handleByDay возвращает постоянную доступность по дню недели
func (h *Handler) handleByDay(w http.ResponseWriter, r *http.Request, dayStr string) {
	query := r.URL.Query()

	day, err := domain.ParseDayOfWeek(dayStr)
	if err != nil {
		h.logger.Warn("GET /consultant-slots/available - Invalid day of week: %s", dayStr)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	req := &getAvailableSlots.DayRequest{
		DayOfWeek: day,
	}

	if consultantIDStr := query.Get("consultantId"); consultantIDStr != "" {
		consultantID, err := strconv.ParseInt(consultantIDStr, 10, 64)
		if err != nil || consultantID <= 0 {
			h.logger.Warn("GET /consultant-slots/available - Invalid consultant ID: %s", consultantIDStr)
			handlers.RespondBadRequest(w, msgInvalidConsultantID)
			return
		}
		req.ConsultantID = &consultantID
	}

	if slotIDStr := query.Get("slotId"); slotIDStr != "" {
		slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
		if err != nil || slotID <= 0 {
			h.logger.Warn("GET /consultant-slots/available - Invalid slot ID: %s", slotIDStr)
			handlers.RespondBadRequest(w, msgInvalidSlotID)
			return
		}
		req.SlotID = &slotID
	}

	result, err := h.useCase.ExecuteByDay(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /consultant-slots/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /consultant-slots/available - Failed to list day availability: day=%s, error=%v",
				day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /consultant-slots/available - Listed %d entries: day=%s", len(result.Entries), day)
	handlers.RespondJSON(w, http.StatusOK, FromDayResponse(result))
}

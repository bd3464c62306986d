package bulk_assign_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	bulkAssign "github.com/m04kA/SMC-ConsultationService/internal/usecase/bulk_assign_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgConsultantNotFound = "консультант не найден"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase BulkAssignScheduleUseCase
	logger  Logger
}

func NewHandler(useCase BulkAssignScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/consultant-slots/bulk
//
// Частичный успех это нормальный исход: ответ 201 с перечислением
// созданных записей и отказов по элементам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BulkAssignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /consultant-slots/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bulkAssign.ErrConsultantNotFound):
			h.logger.Warn("POST /consultant-slots/bulk - Consultant not found: consultant_id=%d", req.ConsultantID)
			handlers.RespondNotFound(w, msgConsultantNotFound)

		case errors.Is(err, bulkAssign.ErrInvalidInput):
			h.logger.Warn("POST /consultant-slots/bulk - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /consultant-slots/bulk - Failed to assign slots: consultant_id=%d, error=%v",
				req.ConsultantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /consultant-slots/bulk - Processed %d entries: consultant_id=%d, saved=%d, failed=%d",
		len(req.Slots), req.ConsultantID, len(result.Created), len(result.Errors))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package cancel_booking

import (
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model.
// Тело опционально: DELETE без body означает отмену без причины.
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelBookingRequest{
		CancellationReason: reason,
	}
}

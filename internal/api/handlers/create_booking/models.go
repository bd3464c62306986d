package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	createBooking "github.com/m04kA/SMC-ConsultationService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ConsultantID int64   `json:"consultantId"`
	MemberID     int64   `json:"memberId"`
	SlotID       int64   `json:"slotId"`
	BookingDate  string  `json:"bookingDate"` // "2025-10-15"
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	ConsultantID int64   `json:"consultantId"`
	MemberID     int64   `json:"memberId"`
	SlotID       int64   `json:"slotId"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ConsultantID: r.ConsultantID,
		MemberID:     r.MemberID,
		SlotID:       r.SlotID,
		Date:         bookingDate,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		ConsultantID: resp.ConsultantID,
		MemberID:     resp.MemberID,
		SlotID:       resp.SlotID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.SlotStartTime.String(),
		EndTime:      resp.SlotEndTime.String(),
		Status:       resp.Status,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

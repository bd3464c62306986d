package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	memberClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/memberservice"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	memberClient MemberServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	memberClient MemberServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		memberClient: memberClient,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetMemberBookings получает историю бронирований участника
// Опционально фильтрует по статусу
func (s *Service) GetMemberBookings(ctx context.Context, req *models.GetMemberBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetMemberBookings: fetching bookings for member=%d, status=%v", req.MemberID, req.Status)

	// Проверяем, что участник существует
	if _, err := s.memberClient.GetMember(ctx, req.MemberID); err != nil {
		if errors.Is(err, memberClient.ErrMemberNotFound) {
			s.logger.Warn("GetMemberBookings: member id=%d not found", req.MemberID)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("GetMemberBookings: failed to get member id=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: GetMemberBookings - failed to get member: %v", ErrInternal, err)
	}

	filter := domain.BookingsFilter{
		MemberID:         &req.MemberID,
		IncludeCancelled: true,
	}
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetMemberBookings: invalid status=%s for member=%d", *req.Status, req.MemberID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
		// Запрос конкретного статуса перекрывает общий фильтр активности
		filter.IncludeCancelled = status == domain.StatusCancelled
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetMemberBookings: repository error for member=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: GetMemberBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMemberBookings: successfully fetched %d bookings for member=%d", len(bookings), req.MemberID)
	return models.FromDomainBookingList(bookings), nil
}

// GetByDateRange получает бронирования за период с гибкой фильтрацией
//
// Примеры использования:
// - Все бронирования консультанта за неделю: указать ConsultantID, StartDate, EndDate
// - Бронирования на конкретную дату: StartDate и EndDate указывают на одну дату
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetByDateRange(ctx context.Context, req *models.GetBookingsRangeRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetByDateRange: fetching bookings period=%s to %s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.EndDate.Before(req.StartDate) {
		s.logger.Warn("GetByDateRange: end date before start date")
		return nil, ErrInvalidDateRange
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetByDateRange: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByDateRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByDateRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDateRange: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update обновляет бронирование: статус и/или заметки.
// Смена статуса проверяется против жизненного цикла, отмена через
// Update запрещена - для неё есть Cancel с причиной.
func (s *Service) Update(ctx context.Context, bookingID int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", bookingID)

	if req.Status == nil && req.Notes == nil {
		s.logger.Warn("Update: empty request for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		s.logger.Warn("Update: notes too long for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Status != nil {
		newStatus, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status=%s for booking id=%d", *req.Status, bookingID)
			return nil, ErrInvalidStatus
		}

		if newStatus == domain.StatusCancelled {
			s.logger.Warn("Update: cancellation attempted via update for booking id=%d", bookingID)
			return nil, fmt.Errorf("%w: use cancel endpoint to cancel a booking", ErrInvalidInput)
		}

		if !booking.CanTransitionTo(newStatus) {
			s.logger.Warn("Update: transition %s -> %s not allowed for booking id=%d",
				booking.Status, newStatus, bookingID)
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Update: failed to update status for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		booking.Status = newStatus
	}

	if req.Notes != nil {
		if err := s.bookingRepo.UpdateNotes(ctx, bookingID, req.Notes); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Update: failed to update notes for booking id=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		booking.Notes = req.Notes
	}

	s.logger.Info("Update: successfully updated booking id=%d, status=%s", bookingID, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование. Запись не удаляется, статус переводится
// в cancelled - слот при этом освобождается для новых бронирований.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

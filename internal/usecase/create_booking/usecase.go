package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/slot"
	consultantClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/consultantservice"
	memberClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/memberservice"
	"github.com/m04kA/SMC-ConsultationService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	scheduleRepo     ScheduleRepository
	slotRepo         SlotRepository
	consultantClient ConsultantServiceClient
	memberClient     MemberServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	scheduleRepository ScheduleRepository,
	slotRepository SlotRepository,
	consultantClient ConsultantServiceClient,
	memberClient MemberServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepository,
		scheduleRepo:     scheduleRepository,
		slotRepo:         slotRepository,
		consultantClient: consultantClient,
		memberClient:     memberClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Порядок проверок фиксирован: валидация входа, существование
// консультанта/участника/слота, затем - уже внутри сериализуемой
// транзакции - вхождение слота в расписание консультанта на день недели
// и занятость слота. Проверка занятости и insert образуют одну атомарную
// единицу: чтение берёт FOR UPDATE, а частичный уникальный индекс БД
// закрывает гонку check-then-insert, если две транзакции всё же
// проскочили проверку одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: consultant=%d, member=%d, slot=%d, date=%s",
		req.ConsultantID, req.MemberID, req.SlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование консультанта
	if _, err := uc.consultantClient.GetConsultant(ctx, req.ConsultantID); err != nil {
		if errors.Is(err, consultantClient.ErrConsultantNotFound) {
			uc.logger.Warn("CreateBooking: consultant id=%d not found", req.ConsultantID)
			return nil, ErrConsultantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get consultant id=%d: %v", req.ConsultantID, err)
		return nil, fmt.Errorf("%w: failed to get consultant: %v", ErrInternal, err)
	}

	// 4. Проверяем существование участника
	if _, err := uc.memberClient.GetMember(ctx, req.MemberID); err != nil {
		if errors.Is(err, memberClient.ErrMemberNotFound) {
			uc.logger.Warn("CreateBooking: member id=%d not found", req.MemberID)
			return nil, ErrMemberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get member id=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}

	// 5. Проверяем существование слота в каталоге
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	dayOfWeek := domain.DayOfWeekFromDate(req.Date)

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем проверку доступности и insert в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Слот должен входить в еженедельное расписание консультанта
		// на день недели даты бронирования. Расписание читается внутри
		// транзакции, а не из кеша: шаблон мог измениться между запросами.
		entries, err := uc.scheduleRepo.ListByConsultant(txCtx, req.ConsultantID, &dayOfWeek)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			// Внутри транзакции причина оборачивается через %w: менеджеру
			// нужен код 40001 в цепочке, чтобы повторить транзакцию
			return fmt.Errorf("%w: failed to get schedule: %w", ErrInternal, err)
		}

		if !scheduleContainsSlot(entries, req.SlotID) {
			uc.logger.Warn("CreateBooking: slot id=%d is not in consultant id=%d schedule for %s",
				req.SlotID, req.ConsultantID, dayOfWeek)
			return ErrSlotNotInSchedule
		}

		// 6.2. Получаем активные бронирования консультанта на эту дату
		// с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			ConsultantID:     ptr.Ptr(req.ConsultantID),
			StartDate:        &req.Date,
			EndDate:          &req.Date,
			IncludeCancelled: false, // Только активные бронирования
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		if slotIsTaken(bookings, req.SlotID) {
			uc.logger.Warn("CreateBooking: slot id=%d already taken for consultant=%d on %s",
				req.SlotID, req.ConsultantID, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 6.3. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			ConsultantID: req.ConsultantID,
			MemberID:     ptr.Ptr(req.MemberID),
			SlotID:       req.SlotID,
			BookingDate:  req.Date,
			Status:       domain.StatusPending,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Проигравшая гонку транзакция получает нарушение уникального
			// индекса - для вызывающего это тот же конфликт занятости
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected insert, slot id=%d taken concurrently", req.SlotID)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		ConsultantID:  result.ConsultantID,
		MemberID:      req.MemberID,
		SlotID:        result.SlotID,
		BookingDate:   result.BookingDate,
		Status:        string(result.Status),
		Notes:         result.Notes,
		SlotStartTime: slot.StartTime,
		SlotEndTime:   slot.EndTime,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

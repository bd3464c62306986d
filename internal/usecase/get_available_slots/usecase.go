package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	consultantClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/consultantservice"
	"github.com/m04kA/SMC-ConsultationService/pkg/ptr"
)

// UseCase use case разрешения доступности: шаблон расписания × календарная
// дата → free/busy представление. Результат никогда не кешируется -
// и шаблоны, и бронирования мутируют между запросами.
type UseCase struct {
	bookingRepo      BookingRepository
	scheduleRepo     ScheduleRepository
	slotRepo         SlotRepository
	consultantClient ConsultantServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	scheduleRepository ScheduleRepository,
	slotRepository SlotRepository,
	consultantClient ConsultantServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepository,
		scheduleRepo:     scheduleRepository,
		slotRepo:         slotRepository,
		consultantClient: consultantClient,
		logger:           logger,
	}
}

// Execute разрешает доступность консультанта на календарную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: consultant=%d, date=%s",
		req.ConsultantID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.ConsultantID <= 0 {
		return nil, fmt.Errorf("%w: consultantID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверяем существование консультанта
	if _, err := uc.consultantClient.GetConsultant(ctx, req.ConsultantID); err != nil {
		if errors.Is(err, consultantClient.ErrConsultantNotFound) {
			uc.logger.Warn("GetAvailableSlots: consultant id=%d not found", req.ConsultantID)
			return nil, ErrConsultantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get consultant id=%d: %v", req.ConsultantID, err)
		return nil, fmt.Errorf("%w: failed to get consultant: %v", ErrInternal, err)
	}

	// 3. День недели даты определяет кандидатов из шаблона
	dayOfWeek := domain.DayOfWeekFromDate(req.Date)

	entries, err := uc.scheduleRepo.ListByConsultant(ctx, req.ConsultantID, &dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// Пустой шаблон - консультант не работает в этот день недели,
	// независимо от даты и содержимого журнала бронирований
	if len(entries) == 0 {
		uc.logger.Info("GetAvailableSlots: consultant=%d has no schedule for %s", req.ConsultantID, dayOfWeek)
		return &Response{
			ConsultantID: req.ConsultantID,
			Date:         req.Date,
			DayOfWeek:    dayOfWeek,
			Slots:        []Slot{},
		}, nil
	}

	// 4. Busy-set: активные бронирования консультанта на эту дату
	filter := domain.BookingsFilter{
		ConsultantID:     ptr.Ptr(req.ConsultantID),
		StartDate:        &req.Date,
		EndDate:          &req.Date,
		IncludeCancelled: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Каталог даёт атрибуты слотов и стабильный временной порядок
	catalog, err := uc.slotRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slot catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to list slot catalog: %v", ErrInternal, err)
	}

	slots := resolveSlots(entries, bookings, catalog)
	if req.OnlyFree {
		slots = filterFree(slots)
	}

	uc.logger.Info("GetAvailableSlots: resolved %d slots for consultant=%d, date=%s",
		len(slots), req.ConsultantID, req.Date.Format(domain.DateFormat))

	return &Response{
		ConsultantID: req.ConsultantID,
		Date:         req.Date,
		DayOfWeek:    dayOfWeek,
		Slots:        slots,
	}, nil
}

// ExecuteByDay выполняет обратный запрос: постоянная доступность по дню
// недели, без календарной даты. Журнал бронирований не участвует -
// это представление самого шаблона ("кто работает слот X по понедельникам").
func (uc *UseCase) ExecuteByDay(ctx context.Context, req *DayRequest) (*DayResponse, error) {
	uc.logger.Info("GetAvailableSlotsByDay: day=%s", req.DayOfWeek)

	var entries []*domain.ScheduleEntry
	var err error

	if req.ConsultantID != nil {
		entries, err = uc.scheduleRepo.ListByConsultant(ctx, *req.ConsultantID, &req.DayOfWeek)
	} else {
		entries, err = uc.scheduleRepo.ListByDayAndSlot(ctx, req.DayOfWeek, req.SlotID)
	}
	if err != nil {
		uc.logger.Error("GetAvailableSlotsByDay: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	catalog, err := uc.slotRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlotsByDay: failed to list slot catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to list slot catalog: %v", ErrInternal, err)
	}
	index := catalogByID(catalog)

	result := make([]DayEntry, 0, len(entries))
	for _, entry := range entries {
		// Сужение до конкретного слота при запросе по консультанту
		if req.SlotID != nil && entry.SlotID != *req.SlotID {
			continue
		}

		slot, ok := index[entry.SlotID]
		if !ok {
			// Каталог и расписание связаны внешним ключом; расхождение
			// возможно только при рассинхроне миграций
			uc.logger.Warn("GetAvailableSlotsByDay: schedule entry id=%d references unknown slot id=%d",
				entry.ID, entry.SlotID)
			continue
		}

		result = append(result, DayEntry{
			ConsultantID: entry.ConsultantID,
			SlotID:       entry.SlotID,
			StartTime:    slot.StartTime,
			EndTime:      slot.EndTime,
		})
	}

	uc.logger.Info("GetAvailableSlotsByDay: found %d entries for day=%s", len(result), req.DayOfWeek)

	return &DayResponse{
		DayOfWeek: req.DayOfWeek,
		Entries:   result,
	}, nil
}

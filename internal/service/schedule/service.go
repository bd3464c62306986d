package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/slot"
	consultantClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/consultantservice"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule/models"
)

// Service сервис для работы с шаблоном расписания консультантов
type Service struct {
	scheduleRepo     ScheduleRepository
	slotRepo         SlotRepository
	consultantClient ConsultantServiceClient
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	slotRepo SlotRepository,
	consultantClient ConsultantServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:     scheduleRepo,
		slotRepo:         slotRepo,
		consultantClient: consultantClient,
		logger:           logger,
	}
}

// AddEntry добавляет запись в шаблон расписания консультанта
func (s *Service) AddEntry(ctx context.Context, req *models.AddEntryRequest) (*models.ScheduleEntryResponse, error) {
	s.logger.Info("AddEntry: consultant=%d, slot=%d, day=%s", req.ConsultantID, req.SlotID, req.DayOfWeek)

	day, err := domain.ParseDayOfWeek(req.DayOfWeek)
	if err != nil {
		s.logger.Warn("AddEntry: invalid day of week %q", req.DayOfWeek)
		return nil, fmt.Errorf("%w: invalid day of week %q", ErrInvalidInput, req.DayOfWeek)
	}

	if err := s.checkConsultantExists(ctx, req.ConsultantID); err != nil {
		return nil, err
	}

	if _, err := s.slotRepo.GetByID(ctx, req.SlotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("AddEntry: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("AddEntry: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: AddEntry - repository error: %v", ErrInternal, err)
	}

	entry := &domain.ScheduleEntry{
		ConsultantID: req.ConsultantID,
		SlotID:       req.SlotID,
		DayOfWeek:    day,
	}

	created, err := s.scheduleRepo.Create(ctx, entry)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDuplicateEntry) {
			s.logger.Warn("AddEntry: entry already exists consultant=%d, slot=%d, day=%s",
				req.ConsultantID, req.SlotID, day)
			return nil, ErrDuplicateEntry
		}
		s.logger.Error("AddEntry: repository error consultant=%d: %v", req.ConsultantID, err)
		return nil, fmt.Errorf("%w: AddEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddEntry: created entry id=%d", created.ID)
	return models.FromDomainEntry(created), nil
}

// RemoveEntry удаляет запись из шаблона расписания.
// Существующие бронирования на этот слот не затрагиваются - они остаются
// действительными, новые бронирования на освобождённый день стать невозможны.
func (s *Service) RemoveEntry(ctx context.Context, req *models.RemoveEntryRequest) error {
	s.logger.Info("RemoveEntry: consultant=%d, slot=%d, day=%s", req.ConsultantID, req.SlotID, req.DayOfWeek)

	day, err := domain.ParseDayOfWeek(req.DayOfWeek)
	if err != nil {
		s.logger.Warn("RemoveEntry: invalid day of week %q", req.DayOfWeek)
		return fmt.Errorf("%w: invalid day of week %q", ErrInvalidInput, req.DayOfWeek)
	}

	if err := s.scheduleRepo.Delete(ctx, req.ConsultantID, req.SlotID, day); err != nil {
		if errors.Is(err, scheduleRepo.ErrEntryNotFound) {
			s.logger.Warn("RemoveEntry: entry not found consultant=%d, slot=%d, day=%s",
				req.ConsultantID, req.SlotID, day)
			return ErrEntryNotFound
		}
		s.logger.Error("RemoveEntry: repository error consultant=%d: %v", req.ConsultantID, err)
		return fmt.Errorf("%w: RemoveEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveEntry: removed entry consultant=%d, slot=%d, day=%s", req.ConsultantID, req.SlotID, day)
	return nil
}

// ClearSchedule удаляет все записи расписания консультанта.
// Идемпотентна: пустое расписание не ошибка, вернётся removed=0.
func (s *Service) ClearSchedule(ctx context.Context, consultantID int64) (*models.ClearScheduleResponse, error) {
	s.logger.Info("ClearSchedule: consultant=%d", consultantID)

	if err := s.checkConsultantExists(ctx, consultantID); err != nil {
		return nil, err
	}

	removed, err := s.scheduleRepo.DeleteByConsultant(ctx, consultantID)
	if err != nil {
		s.logger.Error("ClearSchedule: repository error consultant=%d: %v", consultantID, err)
		return nil, fmt.Errorf("%w: ClearSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ClearSchedule: removed %d entries for consultant=%d", removed, consultantID)
	return &models.ClearScheduleResponse{
		ConsultantID: consultantID,
		Removed:      removed,
	}, nil
}

// ListByConsultant получает шаблон расписания консультанта.
// Опционально фильтрует по дню недели.
func (s *Service) ListByConsultant(ctx context.Context, consultantID int64, dayOfWeek *string) (*models.ScheduleListResponse, error) {
	s.logger.Info("ListByConsultant: consultant=%d, day=%v", consultantID, dayOfWeek)

	var day *domain.DayOfWeek
	if dayOfWeek != nil {
		parsed, err := domain.ParseDayOfWeek(*dayOfWeek)
		if err != nil {
			s.logger.Warn("ListByConsultant: invalid day of week %q", *dayOfWeek)
			return nil, fmt.Errorf("%w: invalid day of week %q", ErrInvalidInput, *dayOfWeek)
		}
		day = &parsed
	}

	if err := s.checkConsultantExists(ctx, consultantID); err != nil {
		return nil, err
	}

	entries, err := s.scheduleRepo.ListByConsultant(ctx, consultantID, day)
	if err != nil {
		s.logger.Error("ListByConsultant: repository error consultant=%d: %v", consultantID, err)
		return nil, fmt.Errorf("%w: ListByConsultant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByConsultant: fetched %d entries for consultant=%d", len(entries), consultantID)
	return models.FromDomainEntryList(entries), nil
}

// ListAll получает полный шаблон расписания всех консультантов
func (s *Service) ListAll(ctx context.Context) (*models.ScheduleListResponse, error) {
	s.logger.Info("ListAll: fetching full schedule template")

	entries, err := s.scheduleRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d entries", len(entries))
	return models.FromDomainEntryList(entries), nil
}

// checkConsultantExists проверяет существование консультанта через ConsultantService
func (s *Service) checkConsultantExists(ctx context.Context, consultantID int64) error {
	if _, err := s.consultantClient.GetConsultant(ctx, consultantID); err != nil {
		if errors.Is(err, consultantClient.ErrConsultantNotFound) {
			s.logger.Warn("checkConsultantExists: consultant id=%d not found", consultantID)
			return ErrConsultantNotFound
		}
		s.logger.Error("checkConsultantExists: failed to get consultant id=%d: %v", consultantID, err)
		return fmt.Errorf("%w: checkConsultantExists - failed to get consultant: %v", ErrInternal, err)
	}
	return nil
}

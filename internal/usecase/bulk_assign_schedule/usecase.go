package bulk_assign_schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/slot"
	consultantClient "github.com/m04kA/SMC-ConsultationService/internal/integrations/consultantservice"
)

// maxWorkers ограничение параллелизма при применении пакета.
// Каждый элемент - отдельный insert; без ограничения большой пакет
// выжирает connection pool.
const maxWorkers = 4

// UseCase use case массового назначения слотов расписания
type UseCase struct {
	scheduleRepo     ScheduleRepository
	slotRepo         SlotRepository
	consultantClient ConsultantServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepository ScheduleRepository,
	slotRepository SlotRepository,
	consultantClient ConsultantServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:     scheduleRepository,
		slotRepo:         slotRepository,
		consultantClient: consultantClient,
		logger:           logger,
	}
}

// itemResult результат обработки одного элемента пакета.
// Индекс сохраняется, чтобы итоговые списки шли в порядке входа.
type itemResult struct {
	index   int
	created *domain.ScheduleEntry
	failure *EntryError
}

// Execute применяет пакет назначений. Каждый элемент валидируется и
// применяется независимо: ошибка одного элемента не прерывает остальные,
// вызывающий получает точный список успехов и отказов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BulkAssignSchedule: consultant=%d, entries=%d", req.ConsultantID, len(req.Entries))

	// 1. Валидация пакета в целом
	if req.ConsultantID <= 0 {
		return nil, fmt.Errorf("%w: consultantID must be positive", ErrInvalidInput)
	}
	if len(req.Entries) == 0 {
		return nil, fmt.Errorf("%w: entries list is empty", ErrInvalidInput)
	}
	if len(req.Entries) > domain.MaxBulkAssignEntries {
		return nil, fmt.Errorf("%w: too many entries, max %d", ErrInvalidInput, domain.MaxBulkAssignEntries)
	}

	// 2. Консультант общий для всего пакета - проверяется один раз
	if _, err := uc.consultantClient.GetConsultant(ctx, req.ConsultantID); err != nil {
		if errors.Is(err, consultantClient.ErrConsultantNotFound) {
			uc.logger.Warn("BulkAssignSchedule: consultant id=%d not found", req.ConsultantID)
			return nil, ErrConsultantNotFound
		}
		uc.logger.Error("BulkAssignSchedule: failed to get consultant id=%d: %v", req.ConsultantID, err)
		return nil, fmt.Errorf("%w: failed to get consultant: %v", ErrInternal, err)
	}

	// 3. Обрабатываем элементы воркерами с ограниченным параллелизмом,
	// результаты собираем через канал
	jobs := make(chan int)
	results := make(chan itemResult)

	var wg sync.WaitGroup
	workers := maxWorkers
	if len(req.Entries) < workers {
		workers = len(req.Entries)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results <- uc.applyEntry(ctx, req.ConsultantID, i, req.Entries[i])
			}
		}()
	}

	go func() {
		for i := range req.Entries {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	collected := make([]itemResult, 0, len(req.Entries))
	for res := range results {
		collected = append(collected, res)
	}

	// 4. Восстанавливаем порядок входа
	byIndex := make([]itemResult, len(req.Entries))
	for _, res := range collected {
		byIndex[res.index] = res
	}

	response := &Response{
		Created: make([]*domain.ScheduleEntry, 0, len(req.Entries)),
		Errors:  make([]EntryError, 0),
	}
	for _, res := range byIndex {
		if res.created != nil {
			response.Created = append(response.Created, res.created)
		}
		if res.failure != nil {
			response.Errors = append(response.Errors, *res.failure)
		}
	}

	uc.logger.Info("BulkAssignSchedule: consultant=%d, created=%d, failed=%d",
		req.ConsultantID, len(response.Created), len(response.Errors))

	return response, nil
}

// applyEntry валидирует и применяет один элемент пакета
func (uc *UseCase) applyEntry(ctx context.Context, consultantID int64, index int, input EntryInput) itemResult {
	day, err := domain.ParseDayOfWeek(input.DayOfWeek)
	if err != nil {
		return itemResult{index: index, failure: &EntryError{Input: input, Reason: reasonInvalidDayOfWeek}}
	}

	if _, err := uc.slotRepo.GetByID(ctx, input.SlotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return itemResult{index: index, failure: &EntryError{Input: input, Reason: reasonSlotNotFound}}
		}
		uc.logger.Error("BulkAssignSchedule: failed to get slot id=%d: %v", input.SlotID, err)
		return itemResult{index: index, failure: &EntryError{Input: input, Reason: reasonStorageFailure}}
	}

	entry := &domain.ScheduleEntry{
		ConsultantID: consultantID,
		SlotID:       input.SlotID,
		DayOfWeek:    day,
	}

	created, err := uc.scheduleRepo.Create(ctx, entry)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDuplicateEntry) {
			return itemResult{index: index, failure: &EntryError{Input: input, Reason: reasonDuplicateEntry}}
		}
		uc.logger.Error("BulkAssignSchedule: failed to create entry slot=%d day=%s: %v", input.SlotID, day, err)
		return itemResult{index: index, failure: &EntryError{Input: input, Reason: reasonStorageFailure}}
	}

	return itemResult{index: index, created: created}
}

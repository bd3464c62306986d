package schedule

import (
	"context"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/integrations/consultantservice"
)

// ScheduleRepository интерфейс репозитория шаблона расписания
type ScheduleRepository interface {
	Create(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error)
	Delete(ctx context.Context, consultantID, slotID int64, day domain.DayOfWeek) error
	DeleteByConsultant(ctx context.Context, consultantID int64) (int64, error)
	ListByConsultant(ctx context.Context, consultantID int64, day *domain.DayOfWeek) ([]*domain.ScheduleEntry, error)
	ListAll(ctx context.Context) ([]*domain.ScheduleEntry, error)
}

// SlotRepository интерфейс репозитория каталога слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// ConsultantServiceClient интерфейс клиента для ConsultantService
type ConsultantServiceClient interface {
	GetConsultant(ctx context.Context, consultantID int64) (*consultantservice.Consultant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/integrations/consultantservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListByConsultant(ctx context.Context, consultantID int64, day *domain.DayOfWeek) ([]*domain.ScheduleEntry, error)
	ListByDayAndSlot(ctx context.Context, day domain.DayOfWeek, slotID *int64) ([]*domain.ScheduleEntry, error)
}

// SlotRepository интерфейс репозитория каталога слотов
type SlotRepository interface {
	List(ctx context.Context) ([]*domain.Slot, error)
}

// ConsultantServiceClient интерфейс клиента каталога консультантов
type ConsultantServiceClient interface {
	GetConsultant(ctx context.Context, consultantID int64) (*consultantservice.Consultant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

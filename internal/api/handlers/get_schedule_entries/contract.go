package get_schedule_entries

import (
	"context"

	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListAll(ctx context.Context) (*models.ScheduleListResponse, error)
	ListByConsultant(ctx context.Context, consultantID int64, dayOfWeek *string) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package bulk_assign_schedule

import (
	"context"

	bulkAssign "github.com/m04kA/SMC-ConsultationService/internal/usecase/bulk_assign_schedule"
)

type BulkAssignScheduleUseCase interface {
	Execute(ctx context.Context, req *bulkAssign.Request) (*bulkAssign.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

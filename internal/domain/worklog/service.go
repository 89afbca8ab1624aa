package worklog

import "context"

type WorkLogService interface {
	Create(ctx context.Context, req CreateWorkLogRequest) (WorkLogResponse, error)
	Get(ctx context.Context, id string) (WorkLogResponse, error)
	Update(ctx context.Context, req UpdateWorkLogRequest) (WorkLogResponse, error)
	Delete(ctx context.Context, id string) error
	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]WorkLogResponse, error)
	ListByDate(ctx context.Context, workDate string) ([]WorkLogResponse, error)
}

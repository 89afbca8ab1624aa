package transport

import "context"

type TransporterLogService interface {
	Create(ctx context.Context, req CreateTransporterLogRequest) (TransporterLogResponse, error)
	Get(ctx context.Context, id string) (TransporterLogResponse, error)
	Update(ctx context.Context, req UpdateTransporterLogRequest) (TransporterLogResponse, error)
	Delete(ctx context.Context, id string) error
	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]TransporterLogResponse, error)
	ListByDate(ctx context.Context, workDate string) ([]TransporterLogResponse, error)
}

package transport

import "context"

type TransporterLogRepository interface {
	Create(ctx context.Context, entry TransporterLogEntry) (TransporterLogEntry, error)
	GetByID(ctx context.Context, id string) (TransporterLogEntry, error)
	Update(ctx context.Context, req UpdateTransporterLogRequest) error
	Delete(ctx context.Context, id string) error
	ListByEmployeeDateRange(ctx context.Context, employeeID string, from, to string) ([]TransporterLogEntry, error)
	ListByDate(ctx context.Context, workDate string) ([]TransporterLogEntry, error)
}

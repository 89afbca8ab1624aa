package worklog

import "context"

type WorkLogRepository interface {
	Create(ctx context.Context, entry WorkLogEntry) (WorkLogEntry, error)
	GetByID(ctx context.Context, id string) (WorkLogEntry, error)
	Update(ctx context.Context, req UpdateWorkLogRequest) error
	Delete(ctx context.Context, id string) error
	// ListByEmployeeDateRange returns entries with from <= work_date <= to,
	// ordered by work date then creation order.
	ListByEmployeeDateRange(ctx context.Context, employeeID string, from, to string) ([]WorkLogEntry, error)
	ListByDate(ctx context.Context, workDate string) ([]WorkLogEntry, error)
}

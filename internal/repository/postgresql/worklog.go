package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/worklog"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workLogRepository struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) worklog.WorkLogRepository {
	return &workLogRepository{db: db}
}

const workLogColumns = `id, employee_id, work_date, part_type, job_name, product_key, total_parts, rejection, created_at, updated_at`

func scanWorkLog(row pgx.Row) (worklog.WorkLogEntry, error) {
	var e worklog.WorkLogEntry
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.WorkDate, &e.PartType, &e.JobName,
		&e.ProductKey, &e.TotalParts, &e.Rejection, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *workLogRepository) Create(ctx context.Context, entry worklog.WorkLogEntry) (worklog.WorkLogEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_logs (employee_id, work_date, part_type, job_name, product_key, total_parts, rejection)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + workLogColumns

	e, err := scanWorkLog(q.QueryRow(ctx, query,
		entry.EmployeeID, entry.WorkDate, entry.PartType, entry.JobName,
		entry.ProductKey, entry.TotalParts, entry.Rejection,
	))
	if err != nil {
		return worklog.WorkLogEntry{}, fmt.Errorf("failed to create work log: %w", err)
	}

	return e, nil
}

func (r *workLogRepository) GetByID(ctx context.Context, id string) (worklog.WorkLogEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workLogColumns + ` FROM work_logs WHERE id = $1`

	e, err := scanWorkLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.WorkLogEntry{}, worklog.ErrWorkLogNotFound
		}
		return worklog.WorkLogEntry{}, fmt.Errorf("failed to get work log: %w", err)
	}

	return e, nil
}

func (r *workLogRepository) Update(ctx context.Context, req worklog.UpdateWorkLogRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.JobName != nil {
		setParts = append(setParts, fmt.Sprintf("job_name = $%d", argIdx))
		args = append(args, *req.JobName)
		argIdx++
	}
	if req.ProductKey != nil {
		setParts = append(setParts, fmt.Sprintf("product_key = $%d", argIdx))
		args = append(args, *req.ProductKey)
		argIdx++
	}
	if req.TotalParts != nil {
		setParts = append(setParts, fmt.Sprintf("total_parts = $%d", argIdx))
		args = append(args, *req.TotalParts)
		argIdx++
	}
	if req.Rejection != nil {
		setParts = append(setParts, fmt.Sprintf("rejection = $%d", argIdx))
		args = append(args, *req.Rejection)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE work_logs
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.ErrWorkLogNotFound
		}
		return fmt.Errorf("failed to update work log: %w", err)
	}

	return nil
}

func (r *workLogRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM work_logs WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.ErrWorkLogNotFound
		}
		return fmt.Errorf("failed to delete work log: %w", err)
	}

	return nil
}

func (r *workLogRepository) ListByEmployeeDateRange(ctx context.Context, employeeID string, from, to string) ([]worklog.WorkLogEntry, error) {
	q := GetQuerier(ctx, r.db)

	// work_date is a date-only string; range comparison is lexical, which
	// matches calendar order for the fixed-width format.
	query := `
		SELECT ` + workLogColumns + `
		FROM work_logs
		WHERE employee_id = $1 AND work_date >= $2 AND work_date <= $3
		ORDER BY work_date, created_at
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}
	defer rows.Close()

	var entries []worklog.WorkLogEntry
	for rows.Next() {
		e, err := scanWorkLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work log: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *workLogRepository) ListByDate(ctx context.Context, workDate string) ([]worklog.WorkLogEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workLogColumns + `
		FROM work_logs
		WHERE work_date = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs by date: %w", err)
	}
	defer rows.Close()

	var entries []worklog.WorkLogEntry
	for rows.Next() {
		e, err := scanWorkLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work log: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

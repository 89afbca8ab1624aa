package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/transport"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type transporterLogRepository struct {
	db *database.DB
}

func NewTransporterLogRepository(db *database.DB) transport.TransporterLogRepository {
	return &transporterLogRepository{db: db}
}

const transporterLogColumns = `id, employee_id, work_date, vehicle_no, route, trips, notes, created_at, updated_at`

func scanTransporterLog(row pgx.Row) (transport.TransporterLogEntry, error) {
	var e transport.TransporterLogEntry
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.WorkDate, &e.VehicleNo, &e.Route,
		&e.Trips, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *transporterLogRepository) Create(ctx context.Context, entry transport.TransporterLogEntry) (transport.TransporterLogEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transporter_logs (employee_id, work_date, vehicle_no, route, trips, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transporterLogColumns

	e, err := scanTransporterLog(q.QueryRow(ctx, query,
		entry.EmployeeID, entry.WorkDate, entry.VehicleNo, entry.Route, entry.Trips, entry.Notes,
	))
	if err != nil {
		return transport.TransporterLogEntry{}, fmt.Errorf("failed to create transporter log: %w", err)
	}

	return e, nil
}

func (r *transporterLogRepository) GetByID(ctx context.Context, id string) (transport.TransporterLogEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + transporterLogColumns + ` FROM transporter_logs WHERE id = $1`

	e, err := scanTransporterLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return transport.TransporterLogEntry{}, transport.ErrTransporterLogNotFound
		}
		return transport.TransporterLogEntry{}, fmt.Errorf("failed to get transporter log: %w", err)
	}

	return e, nil
}

func (r *transporterLogRepository) Update(ctx context.Context, req transport.UpdateTransporterLogRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.VehicleNo != nil {
		setParts = append(setParts, fmt.Sprintf("vehicle_no = $%d", argIdx))
		args = append(args, *req.VehicleNo)
		argIdx++
	}
	if req.Route != nil {
		setParts = append(setParts, fmt.Sprintf("route = $%d", argIdx))
		args = append(args, *req.Route)
		argIdx++
	}
	if req.Trips != nil {
		setParts = append(setParts, fmt.Sprintf("trips = $%d", argIdx))
		args = append(args, *req.Trips)
		argIdx++
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *req.Notes)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE transporter_logs
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return transport.ErrTransporterLogNotFound
		}
		return fmt.Errorf("failed to update transporter log: %w", err)
	}

	return nil
}

func (r *transporterLogRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM transporter_logs WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return transport.ErrTransporterLogNotFound
		}
		return fmt.Errorf("failed to delete transporter log: %w", err)
	}

	return nil
}

func (r *transporterLogRepository) ListByEmployeeDateRange(ctx context.Context, employeeID string, from, to string) ([]transport.TransporterLogEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + transporterLogColumns + `
		FROM transporter_logs
		WHERE employee_id = $1 AND work_date >= $2 AND work_date <= $3
		ORDER BY work_date, created_at
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transporter logs: %w", err)
	}
	defer rows.Close()

	var entries []transport.TransporterLogEntry
	for rows.Next() {
		e, err := scanTransporterLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transporter log: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *transporterLogRepository) ListByDate(ctx context.Context, workDate string) ([]transport.TransporterLogEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + transporterLogColumns + `
		FROM transporter_logs
		WHERE work_date = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list transporter logs by date: %w", err)
	}
	defer rows.Close()

	var entries []transport.TransporterLogEntry
	for rows.Next() {
		e, err := scanTransporterLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transporter log: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

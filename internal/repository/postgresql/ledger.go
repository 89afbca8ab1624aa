package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/ledger"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepository{db: db}
}

// ========== UPAD ==========

func (r *ledgerRepository) CreateUpad(ctx context.Context, entry ledger.UpadEntry) (ledger.UpadEntry, error) {
	q := GetQuerier(ctx, r.db)

	// The unique index on (employee_id, year, month) is the sole arbiter
	// for concurrent creates; exactly one insert wins.
	query := `
		INSERT INTO upad_entries (employee_id, month, year, amount, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, month, year, amount, note, created_at, updated_at
	`

	var u ledger.UpadEntry
	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.Month, entry.Year, entry.Amount, entry.Note,
	).Scan(
		&u.ID, &u.EmployeeID, &u.Month, &u.Year, &u.Amount, &u.Note, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_upad_employee_period") {
			return ledger.UpadEntry{}, ledger.ErrUpadExists
		}
		return ledger.UpadEntry{}, fmt.Errorf("failed to create upad entry: %w", err)
	}

	return u, nil
}

func (r *ledgerRepository) GetUpad(ctx context.Context, employeeID string, month, year int) (ledger.UpadEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, amount, note, created_at, updated_at
		FROM upad_entries
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	var u ledger.UpadEntry
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&u.ID, &u.EmployeeID, &u.Month, &u.Year, &u.Amount, &u.Note, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.UpadEntry{}, ledger.ErrUpadNotFound
		}
		return ledger.UpadEntry{}, fmt.Errorf("failed to get upad entry: %w", err)
	}

	return u, nil
}

func (r *ledgerRepository) ListUpadsByEmployee(ctx context.Context, employeeID string, year *int) ([]ledger.UpadEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, year, amount, note, created_at, updated_at
		FROM upad_entries
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}
	if year != nil {
		query += ` AND year = $2`
		args = append(args, *year)
	}
	query += ` ORDER BY year, month`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list upad entries: %w", err)
	}
	defer rows.Close()

	var entries []ledger.UpadEntry
	for rows.Next() {
		var u ledger.UpadEntry
		if err := rows.Scan(&u.ID, &u.EmployeeID, &u.Month, &u.Year, &u.Amount, &u.Note, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan upad entry: %w", err)
		}
		entries = append(entries, u)
	}

	return entries, nil
}

func (r *ledgerRepository) DeleteUpad(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM upad_entries WHERE id = $1 RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.ErrUpadNotFound
		}
		return fmt.Errorf("failed to delete upad entry: %w", err)
	}

	return nil
}

// ========== LOANS ==========

func (r *ledgerRepository) CreateLoan(ctx context.Context, loan ledger.Loan) (ledger.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loans (employee_id, start_month, start_year, principal, default_installment, status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, start_month, start_year, principal, default_installment, status, note, created_at, updated_at
	`

	var l ledger.Loan
	err := q.QueryRow(ctx, query,
		loan.EmployeeID, loan.StartMonth, loan.StartYear, loan.Principal,
		loan.DefaultInstallment, loan.Status, loan.Note,
	).Scan(
		&l.ID, &l.EmployeeID, &l.StartMonth, &l.StartYear, &l.Principal,
		&l.DefaultInstallment, &l.Status, &l.Note, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return ledger.Loan{}, fmt.Errorf("failed to create loan: %w", err)
	}

	return l, nil
}

func (r *ledgerRepository) GetLoanByID(ctx context.Context, id string) (ledger.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_month, start_year, principal, default_installment, status, note, created_at, updated_at
		FROM loans
		WHERE id = $1
	`

	var l ledger.Loan
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.EmployeeID, &l.StartMonth, &l.StartYear, &l.Principal,
		&l.DefaultInstallment, &l.Status, &l.Note, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.Loan{}, ledger.ErrLoanNotFound
		}
		return ledger.Loan{}, fmt.Errorf("failed to get loan: %w", err)
	}

	return l, nil
}

func (r *ledgerRepository) ListLoansByEmployee(ctx context.Context, employeeID string, status *ledger.LoanStatus) ([]ledger.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_month, start_year, principal, default_installment, status, note, created_at, updated_at
		FROM loans
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY start_year, start_month, created_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []ledger.Loan
	for rows.Next() {
		var l ledger.Loan
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.StartMonth, &l.StartYear, &l.Principal,
			&l.DefaultInstallment, &l.Status, &l.Note, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}

	return loans, nil
}

func (r *ledgerRepository) UpdateLoanStatus(ctx context.Context, id string, status ledger.LoanStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.ErrLoanNotFound
		}
		return fmt.Errorf("failed to update loan status: %w", err)
	}

	return nil
}

// ========== LOAN TRANSACTIONS ==========

func (r *ledgerRepository) CreateLoanTransaction(ctx context.Context, txn ledger.LoanTransaction) (ledger.LoanTransaction, error) {
	q := GetQuerier(ctx, r.db)

	// A partial unique index on (loan_id, year, month) WHERE mode =
	// 'salary-deduction' blocks double-deducting a month while leaving
	// manual payments unrestricted.
	query := `
		INSERT INTO loan_transactions (loan_id, employee_id, month, year, amount, mode)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, loan_id, employee_id, month, year, amount, mode, created_at
	`

	var t ledger.LoanTransaction
	err := q.QueryRow(ctx, query,
		txn.LoanID, txn.EmployeeID, txn.Month, txn.Year, txn.Amount, txn.Mode,
	).Scan(
		&t.ID, &t.LoanID, &t.EmployeeID, &t.Month, &t.Year, &t.Amount, &t.Mode, &t.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_loan_txn_salary_period") {
			return ledger.LoanTransaction{}, ledger.ErrInstallmentAlreadyRecorded
		}
		return ledger.LoanTransaction{}, fmt.Errorf("failed to create loan transaction: %w", err)
	}

	return t, nil
}

func (r *ledgerRepository) ListLoanTransactions(ctx context.Context, loanID string) ([]ledger.LoanTransaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, loan_id, employee_id, month, year, amount, mode, created_at
		FROM loan_transactions
		WHERE loan_id = $1
		ORDER BY year, month, created_at
	`

	rows, err := q.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan transactions: %w", err)
	}
	defer rows.Close()

	var txns []ledger.LoanTransaction
	for rows.Next() {
		var t ledger.LoanTransaction
		if err := rows.Scan(&t.ID, &t.LoanID, &t.EmployeeID, &t.Month, &t.Year, &t.Amount, &t.Mode, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan loan transaction: %w", err)
		}
		txns = append(txns, t)
	}

	return txns, nil
}

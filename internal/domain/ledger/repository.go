package ledger

import "context"

// LedgerRepository is the read/write boundary for advances and loans.
// Uniqueness of (employee, month, year) for upads and of (loan, month,
// year) for salary deductions is enforced by database unique indexes;
// conflicting concurrent writes are serialized there. Exactly one
// insert succeeds, the loser surfaces ErrUpadExists or
// ErrInstallmentAlreadyRecorded.
type LedgerRepository interface {
	// Upad
	CreateUpad(ctx context.Context, entry UpadEntry) (UpadEntry, error)
	GetUpad(ctx context.Context, employeeID string, month, year int) (UpadEntry, error)
	ListUpadsByEmployee(ctx context.Context, employeeID string, year *int) ([]UpadEntry, error)
	DeleteUpad(ctx context.Context, id string) error

	// Loans
	CreateLoan(ctx context.Context, loan Loan) (Loan, error)
	GetLoanByID(ctx context.Context, id string) (Loan, error)
	ListLoansByEmployee(ctx context.Context, employeeID string, status *LoanStatus) ([]Loan, error)
	UpdateLoanStatus(ctx context.Context, id string, status LoanStatus) error

	// Loan transactions
	CreateLoanTransaction(ctx context.Context, txn LoanTransaction) (LoanTransaction, error)
	ListLoanTransactions(ctx context.Context, loanID string) ([]LoanTransaction, error)
}

package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

type LedgerService interface {
	// Upad
	CreateUpad(ctx context.Context, req CreateUpadRequest) (UpadResponse, error)
	GetUpadAmount(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, error)
	ListUpads(ctx context.Context, employeeID string, year *int) ([]UpadResponse, error)
	DeleteUpad(ctx context.Context, id string) error

	// Loans
	CreateLoan(ctx context.Context, req CreateLoanRequest) (LoanResponse, error)
	GetLoan(ctx context.Context, id string) (LoanResponse, error)
	ListLoans(ctx context.Context, employeeID string, status *LoanStatus) ([]LoanResponse, error)
	UpdateLoanStatus(ctx context.Context, id string, status LoanStatus) error
	CreateLoanTransaction(ctx context.Context, req CreateLoanTransactionRequest) (LoanTransactionResponse, error)
	ListLoanTransactions(ctx context.Context, loanID string) ([]LoanTransactionResponse, error)

	// LoanSummary previews the month's deduction without recording it.
	LoanSummary(ctx context.Context, employeeID string, month, year int) (LoanSummaryResponse, error)
}

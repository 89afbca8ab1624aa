package ledger

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/employee"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/ledger"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
)

type LedgerServiceImpl struct {
	ledgerRepo   ledger.LedgerRepository
	employeeRepo employee.EmployeeRepository
}

func NewLedgerService(ledgerRepo ledger.LedgerRepository, employeeRepo employee.EmployeeRepository) ledger.LedgerService {
	return &LedgerServiceImpl{
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
	}
}

// ========== UPAD ==========

func (s *LedgerServiceImpl) CreateUpad(ctx context.Context, req ledger.CreateUpadRequest) (ledger.UpadResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.UpadResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return ledger.UpadResponse{}, err
	}

	created, err := s.ledgerRepo.CreateUpad(ctx, ledger.UpadEntry{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
		Note:       req.Note,
	})
	if err != nil {
		return ledger.UpadResponse{}, err
	}

	return toUpadResponse(created), nil
}

// GetUpadAmount returns the advance for the period, or zero when no
// entry exists. An absent upad is the normal case, not an error.
func (s *LedgerServiceImpl) GetUpadAmount(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, error) {
	entry, err := s.ledgerRepo.GetUpad(ctx, employeeID, month, year)
	if err != nil {
		if errors.Is(err, ledger.ErrUpadNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return entry.Amount, nil
}

func (s *LedgerServiceImpl) ListUpads(ctx context.Context, employeeID string, year *int) ([]ledger.UpadResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListUpadsByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	result := make([]ledger.UpadResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, toUpadResponse(e))
	}

	return result, nil
}

func (s *LedgerServiceImpl) DeleteUpad(ctx context.Context, id string) error {
	return s.ledgerRepo.DeleteUpad(ctx, id)
}

// ========== LOANS ==========

func (s *LedgerServiceImpl) CreateLoan(ctx context.Context, req ledger.CreateLoanRequest) (ledger.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.LoanResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return ledger.LoanResponse{}, err
	}

	created, err := s.ledgerRepo.CreateLoan(ctx, ledger.Loan{
		EmployeeID:         req.EmployeeID,
		StartMonth:         req.StartMonth,
		StartYear:          req.StartYear,
		Principal:          req.Principal,
		DefaultInstallment: req.DefaultInstallment,
		Status:             ledger.LoanStatusActive,
		Note:               req.Note,
	})
	if err != nil {
		return ledger.LoanResponse{}, err
	}

	// A fresh loan has no transactions; remaining equals the principal.
	return toLoanResponse(created, created.Principal), nil
}

func (s *LedgerServiceImpl) GetLoan(ctx context.Context, id string) (ledger.LoanResponse, error) {
	loan, err := s.ledgerRepo.GetLoanByID(ctx, id)
	if err != nil {
		return ledger.LoanResponse{}, err
	}

	remaining, err := s.loanRemaining(ctx, loan)
	if err != nil {
		return ledger.LoanResponse{}, err
	}

	return toLoanResponse(loan, remaining), nil
}

func (s *LedgerServiceImpl) ListLoans(ctx context.Context, employeeID string, status *ledger.LoanStatus) ([]ledger.LoanResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	loans, err := s.ledgerRepo.ListLoansByEmployee(ctx, employeeID, status)
	if err != nil {
		return nil, err
	}

	result := make([]ledger.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		remaining, err := s.loanRemaining(ctx, loan)
		if err != nil {
			return nil, err
		}
		result = append(result, toLoanResponse(loan, remaining))
	}

	return result, nil
}

func (s *LedgerServiceImpl) UpdateLoanStatus(ctx context.Context, id string, status ledger.LoanStatus) error {
	if !status.Valid() {
		return validator.ValidationErrors{
			{Field: "status", Message: "must be active, closed or cancelled"},
		}
	}

	if _, err := s.ledgerRepo.GetLoanByID(ctx, id); err != nil {
		return err
	}

	return s.ledgerRepo.UpdateLoanStatus(ctx, id, status)
}

func (s *LedgerServiceImpl) CreateLoanTransaction(ctx context.Context, req ledger.CreateLoanTransactionRequest) (ledger.LoanTransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.LoanTransactionResponse{}, err
	}

	loan, err := s.ledgerRepo.GetLoanByID(ctx, req.LoanID)
	if err != nil {
		return ledger.LoanTransactionResponse{}, err
	}
	if loan.Status != ledger.LoanStatusActive {
		return ledger.LoanTransactionResponse{}, ledger.ErrLoanNotActive
	}

	created, err := s.ledgerRepo.CreateLoanTransaction(ctx, ledger.LoanTransaction{
		LoanID:     loan.ID,
		EmployeeID: loan.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
		Mode:       ledger.TransactionMode(req.Mode),
	})
	if err != nil {
		return ledger.LoanTransactionResponse{}, err
	}

	return toLoanTransactionResponse(created), nil
}

func (s *LedgerServiceImpl) ListLoanTransactions(ctx context.Context, loanID string) ([]ledger.LoanTransactionResponse, error) {
	if _, err := s.ledgerRepo.GetLoanByID(ctx, loanID); err != nil {
		return nil, err
	}

	txns, err := s.ledgerRepo.ListLoanTransactions(ctx, loanID)
	if err != nil {
		return nil, err
	}

	result := make([]ledger.LoanTransactionResponse, 0, len(txns))
	for _, txn := range txns {
		result = append(result, toLoanTransactionResponse(txn))
	}

	return result, nil
}

// LoanSummary previews the deduction for one employee-month across all
// active loans. Loans that have not started by the period contribute
// nothing; a loan repaid below its default installment contributes only
// its remaining balance.
func (s *LedgerServiceImpl) LoanSummary(ctx context.Context, employeeID string, month, year int) (ledger.LoanSummaryResponse, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if len(errs) > 0 {
		return ledger.LoanSummaryResponse{}, errs
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return ledger.LoanSummaryResponse{}, err
	}

	active := ledger.LoanStatusActive
	loans, err := s.ledgerRepo.ListLoansByEmployee(ctx, employeeID, &active)
	if err != nil {
		return ledger.LoanSummaryResponse{}, err
	}

	pendingTotal := decimal.Zero
	installment := decimal.Zero
	for _, loan := range loans {
		remaining, err := s.loanRemaining(ctx, loan)
		if err != nil {
			return ledger.LoanSummaryResponse{}, err
		}
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		pendingTotal = pendingTotal.Add(remaining)

		if !loan.StartedBy(month, year) {
			continue
		}
		installment = installment.Add(decimal.Min(loan.DefaultInstallment, remaining))
	}

	return ledger.LoanSummaryResponse{
		EmployeeID:          employeeID,
		Month:               month,
		Year:                year,
		PendingTotal:        pendingTotal,
		InstallmentForMonth: installment,
	}, nil
}

// ========== HELPERS ==========

func (s *LedgerServiceImpl) loanRemaining(ctx context.Context, loan ledger.Loan) (decimal.Decimal, error) {
	txns, err := s.ledgerRepo.ListLoanTransactions(ctx, loan.ID)
	if err != nil {
		return decimal.Zero, err
	}

	remaining := loan.Principal
	for _, txn := range txns {
		remaining = remaining.Sub(txn.Amount)
	}

	return remaining, nil
}

func toUpadResponse(e ledger.UpadEntry) ledger.UpadResponse {
	return ledger.UpadResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Month:      e.Month,
		Year:       e.Year,
		Amount:     e.Amount,
		Note:       e.Note,
	}
}

func toLoanResponse(l ledger.Loan, remaining decimal.Decimal) ledger.LoanResponse {
	return ledger.LoanResponse{
		ID:                 l.ID,
		EmployeeID:         l.EmployeeID,
		StartMonth:         l.StartMonth,
		StartYear:          l.StartYear,
		Principal:          l.Principal,
		DefaultInstallment: l.DefaultInstallment,
		Status:             string(l.Status),
		Note:               l.Note,
		Remaining:          remaining,
	}
}

func toLoanTransactionResponse(t ledger.LoanTransaction) ledger.LoanTransactionResponse {
	return ledger.LoanTransactionResponse{
		ID:         t.ID,
		LoanID:     t.LoanID,
		EmployeeID: t.EmployeeID,
		Month:      t.Month,
		Year:       t.Year,
		Amount:     t.Amount,
		Mode:       string(t.Mode),
	}
}

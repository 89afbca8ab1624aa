package ledger

import (
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateUpadRequest struct {
	EmployeeID string          `json:"employee_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note,omitempty"`
}

func (r *CreateUpadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpadResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note,omitempty"`
}

type CreateLoanRequest struct {
	EmployeeID         string          `json:"employee_id"`
	StartMonth         int             `json:"start_month"`
	StartYear          int             `json:"start_year"`
	Principal          decimal.Decimal `json:"principal"`
	DefaultInstallment decimal.Decimal `json:"default_installment"`
	Note               *string         `json:"note,omitempty"`
}

func (r *CreateLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.StartMonth) {
		errs = append(errs, validator.ValidationError{Field: "start_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.StartYear) {
		errs = append(errs, validator.ValidationError{Field: "start_year", Message: "must be between 2000 and 2100"})
	}
	if !r.Principal.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "principal", Message: "must be positive"})
	}
	if !r.DefaultInstallment.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "default_installment", Message: "must be positive"})
	}
	if r.DefaultInstallment.GreaterThan(r.Principal) {
		errs = append(errs, validator.ValidationError{Field: "default_installment", Message: "cannot exceed principal"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	StartMonth         int             `json:"start_month"`
	StartYear          int             `json:"start_year"`
	Principal          decimal.Decimal `json:"principal"`
	DefaultInstallment decimal.Decimal `json:"default_installment"`
	Status             string          `json:"status"`
	Note               *string         `json:"note,omitempty"`
	// Remaining is principal minus every transaction recorded so far.
	Remaining decimal.Decimal `json:"remaining"`
}

type CreateLoanTransactionRequest struct {
	LoanID string          `json:"-"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
	Mode   string          `json:"mode"`
}

func (r *CreateLoanTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !TransactionMode(r.Mode).Valid() {
		errs = append(errs, validator.ValidationError{Field: "mode", Message: "must be salary-deduction or manual-payment"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanTransactionResponse struct {
	ID         string          `json:"id"`
	LoanID     string          `json:"loan_id"`
	EmployeeID string          `json:"employee_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	Mode       string          `json:"mode"`
}

// LoanSummaryResponse is the side-effect-free installment preview for one
// employee-month. Nothing is recorded when it is computed.
type LoanSummaryResponse struct {
	EmployeeID          string          `json:"employee_id"`
	Month               int             `json:"month"`
	Year                int             `json:"year"`
	PendingTotal        decimal.Decimal `json:"pending_total"`
	InstallmentForMonth decimal.Decimal `json:"installment_for_month"`
}

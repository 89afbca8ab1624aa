package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpadEntry is a one-off cash advance against future wages. At most one
// entry exists per (employee, month, year); the storage layer's unique
// index arbitrates concurrent creates.
type UpadEntry struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int
	Amount     decimal.Decimal
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "active"
	LoanStatusClosed    LoanStatus = "closed"
	LoanStatusCancelled LoanStatus = "cancelled"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanStatusActive, LoanStatusClosed, LoanStatusCancelled:
		return true
	}
	return false
}

// Loan is a multi-month advance repaid through monthly salary deductions
// and optional manual payments. There is no persisted balance field; the
// remaining balance is always recomputed from transactions.
type Loan struct {
	ID                 string
	EmployeeID         string
	StartMonth         int
	StartYear          int
	Principal          decimal.Decimal
	DefaultInstallment decimal.Decimal
	Status             LoanStatus
	Note               *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// StartedBy reports whether the loan had started by the given period.
func (l Loan) StartedBy(month, year int) bool {
	if l.StartYear != year {
		return l.StartYear < year
	}
	return l.StartMonth <= month
}

type TransactionMode string

const (
	// ModeSalaryDeduction is applied automatically during monthly salary
	// processing; at most one per (loan, month, year).
	ModeSalaryDeduction TransactionMode = "salary-deduction"
	// ModeManualPayment is an out-of-band repayment; unrestricted in count.
	ModeManualPayment TransactionMode = "manual-payment"
)

func (m TransactionMode) Valid() bool {
	return m == ModeSalaryDeduction || m == ModeManualPayment
}

type LoanTransaction struct {
	ID         string
	LoanID     string
	EmployeeID string
	Month      int
	Year       int
	Amount     decimal.Decimal
	Mode       TransactionMode
	CreatedAt  time.Time
}

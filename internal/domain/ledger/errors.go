package ledger

import "errors"

var (
	ErrUpadNotFound = errors.New("upad entry not found")
	// ErrUpadExists guards the one-advance-per-month rule.
	ErrUpadExists = errors.New("upad entry already exists for this employee and month")

	ErrLoanNotFound  = errors.New("loan not found")
	ErrLoanNotActive = errors.New("loan is not active")
	// ErrInstallmentAlreadyRecorded guards against double-deducting the
	// same month's installment. Manual payments are never blocked by it.
	ErrInstallmentAlreadyRecorded = errors.New("salary deduction already recorded for this loan and month")
)

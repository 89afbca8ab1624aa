package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             string
	FullName       string
	Username       string
	Department     string
	EmploymentType EmploymentType
	// MonthlySalary applies to monthly employees, DailyWage to daily (roj)
	// employees. Contract employees are paid per okay part via the catalog.
	MonthlySalary *decimal.Decimal
	DailyWage     *decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type EmploymentType string

const (
	EmploymentTypeContract EmploymentType = "contract"
	EmploymentTypeMonthly  EmploymentType = "monthly"
	EmploymentTypeDaily    EmploymentType = "daily" // "roj" workers
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentTypeContract, EmploymentTypeMonthly, EmploymentTypeDaily:
		return true
	}
	return false
}

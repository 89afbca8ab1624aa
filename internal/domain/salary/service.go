package salary

import "context"

type SalaryService interface {
	// GetEmployeeSalary assembles the report for one employee-month. It is
	// a pure function of the stored work logs, catalog rates and ledger
	// entries: rerunning it against unchanged data yields the same totals.
	GetEmployeeSalary(ctx context.Context, employeeID string, month, year int) (Report, error)
}

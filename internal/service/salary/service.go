package salary

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/catalog"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/employee"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/ledger"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/salary"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/transport"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/worklog"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
)

type SalaryServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	workLogRepo   worklog.WorkLogRepository
	transportRepo transport.TransporterLogRepository
	catalogRepo   catalog.CatalogRepository
	ledgerSvc     ledger.LedgerService
}

func NewSalaryService(
	employeeRepo employee.EmployeeRepository,
	workLogRepo worklog.WorkLogRepository,
	transportRepo transport.TransporterLogRepository,
	catalogRepo catalog.CatalogRepository,
	ledgerSvc ledger.LedgerService,
) salary.SalaryService {
	return &SalaryServiceImpl{
		employeeRepo:  employeeRepo,
		workLogRepo:   workLogRepo,
		transportRepo: transportRepo,
		catalogRepo:   catalogRepo,
		ledgerSvc:     ledgerSvc,
	}
}

func (s *SalaryServiceImpl) GetEmployeeSalary(ctx context.Context, employeeID string, month, year int) (salary.Report, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if len(errs) > 0 {
		return salary.Report{}, errs
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return salary.Report{}, err
	}

	from, to := validator.MonthRange(month, year)
	entries, err := s.workLogRepo.ListByEmployeeDateRange(ctx, employeeID, from, to)
	if err != nil {
		return salary.Report{}, err
	}

	dailyLogs, err := s.aggregateDays(ctx, entries)
	if err != nil {
		return salary.Report{}, err
	}

	workedDays := len(dailyLogs)
	if emp.EmploymentType == employee.EmploymentTypeDaily {
		workedDays, err = s.countWorkedDays(ctx, employeeID, from, to, dailyLogs)
		if err != nil {
			return salary.Report{}, err
		}
	}

	monthTotal, err := s.monthTotal(emp, dailyLogs, workedDays)
	if err != nil {
		return salary.Report{}, err
	}

	upadAmount, err := s.ledgerSvc.GetUpadAmount(ctx, employeeID, month, year)
	if err != nil {
		return salary.Report{}, err
	}

	loanSummary, err := s.ledgerSvc.LoanSummary(ctx, employeeID, month, year)
	if err != nil {
		return salary.Report{}, err
	}
	loanDeduction := loanSummary.InstallmentForMonth

	return salary.Report{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.FullName,
		EmploymentType: string(emp.EmploymentType),
		Month:          month,
		Year:           year,
		DailyLogs:      dailyLogs,
		MonthTotal:     monthTotal,
		UpadAmount:     upadAmount,
		LoanDeduction:  loanDeduction,
		NetPayable:     monthTotal.Sub(upadAmount).Sub(loanDeduction),
	}, nil
}

// aggregateDays groups work-log entries by date, preserving the stored
// ordering (date, then creation order) so line items within a day appear
// in entry creation order.
func (s *SalaryServiceImpl) aggregateDays(ctx context.Context, entries []worklog.WorkLogEntry) ([]salary.DailyLog, error) {
	dailyLogs := make([]salary.DailyLog, 0)

	for _, entry := range entries {
		rate, err := s.resolveRate(ctx, entry)
		if err != nil {
			return nil, err
		}

		okParts := entry.OkParts()
		line := salary.Line{
			JobName:    entry.JobName,
			PartType:   string(entry.PartType),
			ProductKey: entry.ProductKey,
			TotalParts: entry.TotalParts,
			Rejection:  entry.Rejection,
			OkParts:    okParts,
			Rate:       rate,
			Amount:     rate.Mul(decimal.NewFromInt(int64(okParts))),
		}

		if n := len(dailyLogs); n > 0 && dailyLogs[n-1].Date == entry.WorkDate {
			day := &dailyLogs[n-1]
			day.Logs = append(day.Logs, line)
			day.DayTotal = day.DayTotal.Add(line.Amount)
			continue
		}

		dailyLogs = append(dailyLogs, salary.DailyLog{
			Date:     entry.WorkDate,
			Logs:     []salary.Line{line},
			DayTotal: line.Amount,
		})
	}

	return dailyLogs, nil
}

// resolveRate maps an entry to its per-part rate. Job-level rates take
// precedence when the entry carries a job name; otherwise the product
// catalog supplies a part-level rate. A missing catalog row resolves to
// rate 0 so a partially configured catalog still yields a report; only
// an unknown part type is treated as a configuration fault.
func (s *SalaryServiceImpl) resolveRate(ctx context.Context, entry worklog.WorkLogEntry) (decimal.Decimal, error) {
	if !entry.PartType.Valid() {
		return decimal.Zero, catalog.ErrUnknownPartType
	}

	if entry.JobName != "" {
		jobRate, err := s.catalogRepo.GetJobRate(ctx, entry.PartType, entry.JobName)
		if err != nil {
			if errors.Is(err, catalog.ErrJobRateNotFound) {
				return decimal.Zero, nil
			}
			return decimal.Zero, err
		}
		return jobRate.Rate, nil
	}

	product, err := s.catalogRepo.GetProductByKey(ctx, entry.PartType, entry.ProductKey)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return product.Rate, nil
}

// countWorkedDays counts the distinct dates in the month on which the
// employee logged anything at all. Transporter logs count as worked days
// so transporters on a daily wage are paid for trip days even though
// they never file part-count work logs.
func (s *SalaryServiceImpl) countWorkedDays(ctx context.Context, employeeID, from, to string, dailyLogs []salary.DailyLog) (int, error) {
	seen := make(map[string]struct{}, len(dailyLogs))
	for _, day := range dailyLogs {
		seen[day.Date] = struct{}{}
	}

	trips, err := s.transportRepo.ListByEmployeeDateRange(ctx, employeeID, from, to)
	if err != nil {
		return 0, err
	}
	for _, trip := range trips {
		seen[trip.WorkDate] = struct{}{}
	}

	return len(seen), nil
}

// monthTotal applies the employment-type branch. Contract employees are
// paid per okay part through the roll-up; monthly employees draw a fixed
// salary; daily (roj) employees are paid the daily wage for each worked
// day.
func (s *SalaryServiceImpl) monthTotal(emp employee.Employee, dailyLogs []salary.DailyLog, workedDays int) (decimal.Decimal, error) {
	switch emp.EmploymentType {
	case employee.EmploymentTypeContract:
		total := decimal.Zero
		for _, day := range dailyLogs {
			total = total.Add(day.DayTotal)
		}
		return total, nil

	case employee.EmploymentTypeMonthly:
		if emp.MonthlySalary == nil {
			return decimal.Zero, nil
		}
		return *emp.MonthlySalary, nil

	case employee.EmploymentTypeDaily:
		if emp.DailyWage == nil {
			return decimal.Zero, nil
		}
		return emp.DailyWage.Mul(decimal.NewFromInt(int64(workedDays))), nil

	default:
		return decimal.Zero, employee.ErrInvalidEmploymentType
	}
}

package salary

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/catalog"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/employee"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/ledger"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/transport"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/worklog"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByUsername(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeEmployeeRepo) List(_ context.Context, _ bool) ([]employee.Employee, error) {
	return nil, nil
}

// fakeWorkLogRepo returns its entries filtered and ordered the way the
// real store would: by work date, then insertion order.
type fakeWorkLogRepo struct {
	entries []worklog.WorkLogEntry
}

func (r *fakeWorkLogRepo) Create(_ context.Context, e worklog.WorkLogEntry) (worklog.WorkLogEntry, error) {
	return e, nil
}

func (r *fakeWorkLogRepo) GetByID(_ context.Context, _ string) (worklog.WorkLogEntry, error) {
	return worklog.WorkLogEntry{}, worklog.ErrWorkLogNotFound
}

func (r *fakeWorkLogRepo) Update(_ context.Context, _ worklog.UpdateWorkLogRequest) error {
	return nil
}

func (r *fakeWorkLogRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeWorkLogRepo) ListByEmployeeDateRange(_ context.Context, employeeID, from, to string) ([]worklog.WorkLogEntry, error) {
	var byDate []worklog.WorkLogEntry
	for _, e := range r.entries {
		if e.EmployeeID == employeeID && e.WorkDate >= from && e.WorkDate <= to {
			byDate = append(byDate, e)
		}
	}
	// Stable sort by date, keeping insertion order within a day.
	for i := 1; i < len(byDate); i++ {
		for j := i; j > 0 && byDate[j-1].WorkDate > byDate[j].WorkDate; j-- {
			byDate[j-1], byDate[j] = byDate[j], byDate[j-1]
		}
	}
	return byDate, nil
}

func (r *fakeWorkLogRepo) ListByDate(_ context.Context, _ string) ([]worklog.WorkLogEntry, error) {
	return nil, nil
}

type fakeTransporterLogRepo struct {
	entries []transport.TransporterLogEntry
}

func (r *fakeTransporterLogRepo) Create(_ context.Context, e transport.TransporterLogEntry) (transport.TransporterLogEntry, error) {
	return e, nil
}

func (r *fakeTransporterLogRepo) GetByID(_ context.Context, _ string) (transport.TransporterLogEntry, error) {
	return transport.TransporterLogEntry{}, transport.ErrTransporterLogNotFound
}

func (r *fakeTransporterLogRepo) Update(_ context.Context, _ transport.UpdateTransporterLogRequest) error {
	return nil
}

func (r *fakeTransporterLogRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeTransporterLogRepo) ListByEmployeeDateRange(_ context.Context, employeeID, from, to string) ([]transport.TransporterLogEntry, error) {
	var matched []transport.TransporterLogEntry
	for _, e := range r.entries {
		if e.EmployeeID == employeeID && e.WorkDate >= from && e.WorkDate <= to {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (r *fakeTransporterLogRepo) ListByDate(_ context.Context, _ string) ([]transport.TransporterLogEntry, error) {
	return nil, nil
}

type fakeCatalogRepo struct {
	jobRates map[string]decimal.Decimal // partType|jobName
	products map[string]decimal.Decimal // partType|key
}

func (r *fakeCatalogRepo) CreateProduct(_ context.Context, p catalog.Product) (catalog.Product, error) {
	return p, nil
}

func (r *fakeCatalogRepo) GetProductByID(_ context.Context, _ string) (catalog.Product, error) {
	return catalog.Product{}, catalog.ErrProductNotFound
}

func (r *fakeCatalogRepo) GetProductByKey(_ context.Context, partType catalog.PartType, key string) (catalog.Product, error) {
	rate, ok := r.products[string(partType)+"|"+key]
	if !ok {
		return catalog.Product{}, catalog.ErrProductNotFound
	}
	return catalog.Product{PartType: partType, Key: key, Rate: rate}, nil
}

func (r *fakeCatalogRepo) ListProducts(_ context.Context, _ *catalog.PartType) ([]catalog.Product, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) UpdateProduct(_ context.Context, _ catalog.UpdateProductRequest) error {
	return nil
}

func (r *fakeCatalogRepo) DeleteProduct(_ context.Context, _ string) error { return nil }

func (r *fakeCatalogRepo) CreateJobRate(_ context.Context, jr catalog.JobTypeRate) (catalog.JobTypeRate, error) {
	return jr, nil
}

func (r *fakeCatalogRepo) GetJobRate(_ context.Context, partType catalog.PartType, jobName string) (catalog.JobTypeRate, error) {
	rate, ok := r.jobRates[string(partType)+"|"+jobName]
	if !ok {
		return catalog.JobTypeRate{}, catalog.ErrJobRateNotFound
	}
	return catalog.JobTypeRate{PartType: partType, JobName: jobName, Rate: rate}, nil
}

func (r *fakeCatalogRepo) ListJobRates(_ context.Context, _ *catalog.PartType) ([]catalog.JobTypeRate, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) UpdateJobRate(_ context.Context, _ catalog.UpdateJobRateRequest) error {
	return nil
}

func (r *fakeCatalogRepo) DeleteJobRate(_ context.Context, _ string) error { return nil }

// fakeLedgerService serves fixed deduction figures; the arithmetic
// behind them is covered by the ledger service's own tests.
type fakeLedgerService struct {
	upadAmount  decimal.Decimal
	installment decimal.Decimal
}

func (s *fakeLedgerService) CreateUpad(_ context.Context, _ ledger.CreateUpadRequest) (ledger.UpadResponse, error) {
	return ledger.UpadResponse{}, nil
}

func (s *fakeLedgerService) GetUpadAmount(_ context.Context, _ string, _, _ int) (decimal.Decimal, error) {
	return s.upadAmount, nil
}

func (s *fakeLedgerService) ListUpads(_ context.Context, _ string, _ *int) ([]ledger.UpadResponse, error) {
	return nil, nil
}

func (s *fakeLedgerService) DeleteUpad(_ context.Context, _ string) error { return nil }

func (s *fakeLedgerService) CreateLoan(_ context.Context, _ ledger.CreateLoanRequest) (ledger.LoanResponse, error) {
	return ledger.LoanResponse{}, nil
}

func (s *fakeLedgerService) GetLoan(_ context.Context, _ string) (ledger.LoanResponse, error) {
	return ledger.LoanResponse{}, nil
}

func (s *fakeLedgerService) ListLoans(_ context.Context, _ string, _ *ledger.LoanStatus) ([]ledger.LoanResponse, error) {
	return nil, nil
}

func (s *fakeLedgerService) UpdateLoanStatus(_ context.Context, _ string, _ ledger.LoanStatus) error {
	return nil
}

func (s *fakeLedgerService) CreateLoanTransaction(_ context.Context, _ ledger.CreateLoanTransactionRequest) (ledger.LoanTransactionResponse, error) {
	return ledger.LoanTransactionResponse{}, nil
}

func (s *fakeLedgerService) ListLoanTransactions(_ context.Context, _ string) ([]ledger.LoanTransactionResponse, error) {
	return nil, nil
}

func (s *fakeLedgerService) LoanSummary(_ context.Context, employeeID string, month, year int) (ledger.LoanSummaryResponse, error) {
	return ledger.LoanSummaryResponse{
		EmployeeID:          employeeID,
		Month:               month,
		Year:                year,
		InstallmentForMonth: s.installment,
	}, nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	employees  *fakeEmployeeRepo
	workLogs   *fakeWorkLogRepo
	transports *fakeTransporterLogRepo
	catalog    *fakeCatalogRepo
	ledger     *fakeLedgerService
}

func newFixture() *fixture {
	return &fixture{
		employees: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", FullName: "Ramesh", EmploymentType: employee.EmploymentTypeContract, IsActive: true},
		}},
		workLogs:   &fakeWorkLogRepo{},
		transports: &fakeTransporterLogRepo{},
		catalog: &fakeCatalogRepo{
			jobRates: map[string]decimal.Decimal{},
			products: map[string]decimal.Decimal{},
		},
		ledger: &fakeLedgerService{upadAmount: decimal.Zero, installment: decimal.Zero},
	}
}

func (f *fixture) service() *SalaryServiceImpl {
	return NewSalaryService(f.employees, f.workLogs, f.transports, f.catalog, f.ledger).(*SalaryServiceImpl)
}

func TestGetEmployeeSalary_SingleEntry(t *testing.T) {
	f := newFixture()
	f.catalog.jobRates["rod|ASSEMBLY"] = dec("2.50")
	f.workLogs.entries = []worklog.WorkLogEntry{
		{EmployeeID: "emp-1", WorkDate: "2024-03-05", PartType: catalog.PartTypeRod, JobName: "ASSEMBLY", ProductKey: "ROD-12", TotalParts: 100, Rejection: 5},
	}

	report, err := f.service().GetEmployeeSalary(context.Background(), "emp-1", 3, 2024)
	require.NoError(t, err)

	require.Len(t, report.DailyLogs, 1)
	day := report.DailyLogs[0]
	assert.Equal(t, "2024-03-05", day.Date)
	require.Len(t, day.Logs, 1)
	assert.Equal(t, 95, day.Logs[0].OkParts)
	assert.True(t, day.Logs[0].Amount.Equal(dec("237.50")), "amount %s", day.Logs[0].Amount)
	assert.True(t, day.DayTotal.Equal(dec("237.50")))
	assert.True(t, report.MonthTotal.Equal(dec("237.50")))
	assert.True(t, report.NetPayable.Equal(dec("237.50")))
}

func TestGetEmployeeSalary_UpadAndLoanReduceNet(t *testing.T) {
	f := newFixture()
	f.catalog.jobRates["rod|ASSEMBLY"] = dec("2.50")
	f.workLogs.entries = []worklog.WorkLogEntry{
		{EmployeeID: "emp-1", WorkDate: "2024-03-05", PartType: catalog.PartTypeRod, JobName: "ASSEMBLY", ProductKey: "ROD-12", TotalParts: 100, Rejection: 5},
	}
	f.ledger.upadAmount = dec("50")
	f.ledger.installment = dec("100")

	report, err := f.service().GetEmployeeSalary(context.Background(), "emp-1", 3, 2024)
	require.NoError(t, err)

	assert.True(t, report.MonthTotal.Equal(dec("237.50")))
	assert.True(t, report.UpadAmount.Equal(dec("50")))
	assert.True(t, report.LoanDeduction.Equal(dec("100")))
	assert.True(t, report.NetPayable.Equal(dec("87.50")), "net %s", report.NetPayable)
}

func TestGetEmployeeSalary_GroupsByDayInInsertionOrder(t *testing.T) {
	f := newFixture()
	f.catalog.jobRates["rod|ASSEMBLY"] = dec("2")
	f.catalog.jobRates["rod|POLISH"] = dec("1")
	f.catalog.products["sleeve|SLV-7"] = dec("3")
	f.workLogs.entries = []worklog.WorkLogEntry{
		{EmployeeID: "emp-1", WorkDate: "2024-03-05", PartType: catalog.PartTypeRod, JobName: "ASSEMBLY", ProductKey: "ROD-12", TotalParts: 10, Rejection: 0},
		{EmployeeID: "emp-1", WorkDate: "2024-03-05", PartType: catalog.PartTypeRod, JobName: "POLISH", ProductKey: "ROD-12", TotalParts: 20, Rejection: 0},
		{EmployeeID: "emp-1", WorkDate: "2024-03-06", PartType: catalog.PartTypeSleeve, ProductKey: "SLV-7", TotalParts: 5, Rejection: 1},
	}

	report, err := f.service().GetEmployeeSalary(context.Background(), "emp-1", 3, 2024)
	require.NoError(t, err)

	require.Len(t, report.DailyLogs, 2)
	first := report.DailyLogs[0]
	require.Len(t, first.Logs, 2)
	assert.Equal(t, "ASSEMBLY", first.Logs[0].JobName)
	assert.Equal(t, "POLISH", first.Logs[1].JobName)
	assert.True(t, first.DayTotal.Equal(dec("40")), "day total %s", first.DayTotal)

	second := report.DailyLogs[1]
	assert.True(t, second.DayTotal.Equal(dec("12")), "day total %s", second.DayTotal)

	assert.True(t, report.MonthTotal.Equal(dec("52")))
}

func TestGetEmployeeSalary_MissingRateResolvesToZero(t *testing.T) {
	f := newFixture()
	f.workLogs.entries = []worklog.WorkLogEntry{
		{EmployeeID: "emp-1", WorkDate: "2024-03-05", PartType: catalog.PartTypeRod, JobName: "UNCONFIGURED", ProductKey: "ROD-12", TotalParts: 100, Rejection: 0},
		{EmployeeID: "emp-1", WorkDate: "2024-03-05", PartType: catalog.PartTypePin, ProductKey: "no-such-pin", TotalParts: 40, Rejection: 0},
	}

	report, err := f.service().GetEmployeeSalary(context.Background(), "emp-1", 3, 2024)
	require.NoError(t, err)

	require.Len(t, report.DailyLogs, 1)
	for _, line := range report.DailyLogs[0].Logs {
		assert.True(t, line.Rate.IsZero())
		assert.True(t, line.Amount.IsZero())
	}
	assert.True(t, report.MonthTotal.IsZero())
}

func TestGetEmployeeSalary_UnknownPartTypeFails(t *testing.T) {
	f := newFixture()
	f.workLogs.entries = []worklog.WorkLogEntry{
		{EmployeeID: "emp-1", WorkDate: "2024-03-05", PartType: catalog.PartType("gear"), ProductKey: "G-1", TotalParts: 10, Rejection: 0},
	}

	_, err := f.service().GetEmployeeSalary(context.Background(), "emp-1", 3, 2024)
	assert.ErrorIs(t, err, catalog.ErrUnknownPartType)
}

func TestGetEmployeeSalary_EmptyMonth(t *testing.T) {
	f := newFixture()

	report, err := f.service().GetEmployeeSalary(context.Background(), "emp-1", 3, 2024)
	require.NoError(t, err)

	assert.Empty(t, report.DailyLogs)
	assert.True(t, report.MonthTotal.IsZero())
	assert.True(t, report.NetPayable.IsZero())
}

func TestGetEmployeeSalary_InvalidMonth(t *testing.T) {
	f := newFixture()

	_, err := f.service().GetEmployeeSalary(context.Background(), "emp-1", 13, 2024)
	assert.Error(t, err)

	_, err = f.service().GetEmployeeSalary(context.Background(), "emp-1", 0, 2024)
	assert.Error(t, err)
}

func TestGetEmployeeSalary_UnknownEmployee(t *testing.T) {
	f := newFixture()

	_, err := f.service().GetEmployeeSalary(context.Background(), "ghost", 3, 2024)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetEmployeeSalary_Deterministic(t *testing.T) {
	f := newFixture()
	f.catalog.jobRates["rod|ASSEMBLY"] = dec("2.50")
	f.workLogs.entries = []worklog.WorkLogEntry{
		{EmployeeID: "emp-1", WorkDate: "2024-03-05", PartType: catalog.PartTypeRod, JobName: "ASSEMBLY", ProductKey: "ROD-12", TotalParts: 100, Rejection: 5},
		{EmployeeID: "emp-1", WorkDate: "2024-03-07", PartType: catalog.PartTypeRod, JobName: "ASSEMBLY", ProductKey: "ROD-12", TotalParts: 50, Rejection: 0},
	}

	svc := f.service()
	first, err := svc.GetEmployeeSalary(context.Background(), "emp-1", 3, 2024)
	require.NoError(t, err)
	second, err := svc.GetEmployeeSalary(context.Background(), "emp-1", 3, 2024)
	require.NoError(t, err)

	assert.True(t, first.MonthTotal.Equal(second.MonthTotal))
	assert.Equal(t, len(first.DailyLogs), len(second.DailyLogs))
}

func TestGetEmployeeSalary_MonthlyEmployee(t *testing.T) {
	f := newFixture()
	monthlySalary := dec("12000")
	f.employees.employees["emp-m"] = employee.Employee{
		ID: "emp-m", FullName: "Suresh", EmploymentType: employee.EmploymentTypeMonthly,
		MonthlySalary: &monthlySalary, IsActive: true,
	}

	report, err := f.service().GetEmployeeSalary(context.Background(), "emp-m", 3, 2024)
	require.NoError(t, err)

	assert.True(t, report.MonthTotal.Equal(dec("12000")))
	assert.Equal(t, "monthly", report.EmploymentType)
}

func TestGetEmployeeSalary_DailyEmployeePaidPerWorkedDay(t *testing.T) {
	f := newFixture()
	wage := dec("500")
	f.employees.employees["emp-d"] = employee.Employee{
		ID: "emp-d", FullName: "Mahesh", EmploymentType: employee.EmploymentTypeDaily,
		DailyWage: &wage, IsActive: true,
	}
	// Two entries on one day still count as a single worked day.
	f.workLogs.entries = []worklog.WorkLogEntry{
		{EmployeeID: "emp-d", WorkDate: "2024-03-05", PartType: catalog.PartTypeRod, JobName: "ASSEMBLY", ProductKey: "ROD-12", TotalParts: 10, Rejection: 0},
		{EmployeeID: "emp-d", WorkDate: "2024-03-05", PartType: catalog.PartTypeRod, JobName: "POLISH", ProductKey: "ROD-12", TotalParts: 10, Rejection: 0},
		{EmployeeID: "emp-d", WorkDate: "2024-03-08", PartType: catalog.PartTypeRod, JobName: "ASSEMBLY", ProductKey: "ROD-12", TotalParts: 10, Rejection: 0},
	}

	report, err := f.service().GetEmployeeSalary(context.Background(), "emp-d", 3, 2024)
	require.NoError(t, err)

	assert.True(t, report.MonthTotal.Equal(dec("1000")), "month total %s", report.MonthTotal)
}

func TestGetEmployeeSalary_TransporterDaysCountForDailyWage(t *testing.T) {
	f := newFixture()
	wage := dec("600")
	f.employees.employees["emp-t"] = employee.Employee{
		ID: "emp-t", FullName: "Suresh", EmploymentType: employee.EmploymentTypeDaily,
		DailyWage: &wage, IsActive: true,
	}
	// Transporters log trips, not part counts. Two trips on one day and a
	// work log on a second day make two worked days.
	f.transports.entries = []transport.TransporterLogEntry{
		{EmployeeID: "emp-t", WorkDate: "2024-03-04", VehicleNo: "GJ-01-1234", Route: "Rajkot", Trips: 2},
		{EmployeeID: "emp-t", WorkDate: "2024-03-04", VehicleNo: "GJ-01-1234", Route: "Morbi", Trips: 1},
	}
	f.workLogs.entries = []worklog.WorkLogEntry{
		{EmployeeID: "emp-t", WorkDate: "2024-03-06", PartType: catalog.PartTypeRod, JobName: "ASSEMBLY", ProductKey: "ROD-12", TotalParts: 5, Rejection: 0},
	}

	report, err := f.service().GetEmployeeSalary(context.Background(), "emp-t", 3, 2024)
	require.NoError(t, err)

	assert.True(t, report.MonthTotal.Equal(dec("1200")), "month total %s", report.MonthTotal)
}

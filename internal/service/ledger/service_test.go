package ledger

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/employee"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/ledger"
)

// fakeEmployeeRepo serves GetByID from a map; everything else is unused
// by the ledger service.
type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		repo.employees[id] = employee.Employee{
			ID:             id,
			FullName:       "Employee " + id,
			EmploymentType: employee.EmploymentTypeContract,
			IsActive:       true,
		}
	}
	return repo
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
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeEmployeeRepo) List(_ context.Context, _ bool) ([]employee.Employee, error) {
	return nil, nil
}

// fakeLedgerRepo mirrors the database's uniqueness rules in memory: one
// upad per (employee, month, year), one salary deduction per (loan,
// month, year).
type fakeLedgerRepo struct {
	upads  []ledger.UpadEntry
	loans  []ledger.Loan
	txns   []ledger.LoanTransaction
	nextID int
}

func (r *fakeLedgerRepo) id() string {
	r.nextID++
	return fmt.Sprintf("id-%d", r.nextID)
}

func (r *fakeLedgerRepo) CreateUpad(_ context.Context, entry ledger.UpadEntry) (ledger.UpadEntry, error) {
	for _, existing := range r.upads {
		if existing.EmployeeID == entry.EmployeeID && existing.Month == entry.Month && existing.Year == entry.Year {
			return ledger.UpadEntry{}, ledger.ErrUpadExists
		}
	}
	entry.ID = r.id()
	r.upads = append(r.upads, entry)
	return entry, nil
}

func (r *fakeLedgerRepo) GetUpad(_ context.Context, employeeID string, month, year int) (ledger.UpadEntry, error) {
	for _, entry := range r.upads {
		if entry.EmployeeID == employeeID && entry.Month == month && entry.Year == year {
			return entry, nil
		}
	}
	return ledger.UpadEntry{}, ledger.ErrUpadNotFound
}

func (r *fakeLedgerRepo) ListUpadsByEmployee(_ context.Context, employeeID string, year *int) ([]ledger.UpadEntry, error) {
	var result []ledger.UpadEntry
	for _, entry := range r.upads {
		if entry.EmployeeID != employeeID {
			continue
		}
		if year != nil && entry.Year != *year {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (r *fakeLedgerRepo) DeleteUpad(_ context.Context, id string) error {
	for i, entry := range r.upads {
		if entry.ID == id {
			r.upads = append(r.upads[:i], r.upads[i+1:]...)
			return nil
		}
	}
	return ledger.ErrUpadNotFound
}

func (r *fakeLedgerRepo) CreateLoan(_ context.Context, loan ledger.Loan) (ledger.Loan, error) {
	loan.ID = r.id()
	r.loans = append(r.loans, loan)
	return loan, nil
}

func (r *fakeLedgerRepo) GetLoanByID(_ context.Context, id string) (ledger.Loan, error) {
	for _, loan := range r.loans {
		if loan.ID == id {
			return loan, nil
		}
	}
	return ledger.Loan{}, ledger.ErrLoanNotFound
}

func (r *fakeLedgerRepo) ListLoansByEmployee(_ context.Context, employeeID string, status *ledger.LoanStatus) ([]ledger.Loan, error) {
	var result []ledger.Loan
	for _, loan := range r.loans {
		if loan.EmployeeID != employeeID {
			continue
		}
		if status != nil && loan.Status != *status {
			continue
		}
		result = append(result, loan)
	}
	return result, nil
}

func (r *fakeLedgerRepo) UpdateLoanStatus(_ context.Context, id string, status ledger.LoanStatus) error {
	for i, loan := range r.loans {
		if loan.ID == id {
			r.loans[i].Status = status
			return nil
		}
	}
	return ledger.ErrLoanNotFound
}

func (r *fakeLedgerRepo) CreateLoanTransaction(_ context.Context, txn ledger.LoanTransaction) (ledger.LoanTransaction, error) {
	if txn.Mode == ledger.ModeSalaryDeduction {
		for _, existing := range r.txns {
			if existing.LoanID == txn.LoanID && existing.Month == txn.Month && existing.Year == txn.Year &&
				existing.Mode == ledger.ModeSalaryDeduction {
				return ledger.LoanTransaction{}, ledger.ErrInstallmentAlreadyRecorded
			}
		}
	}
	txn.ID = r.id()
	r.txns = append(r.txns, txn)
	return txn, nil
}

func (r *fakeLedgerRepo) ListLoanTransactions(_ context.Context, loanID string) ([]ledger.LoanTransaction, error) {
	var result []ledger.LoanTransaction
	for _, txn := range r.txns {
		if txn.LoanID == loanID {
			result = append(result, txn)
		}
	}
	return result, nil
}

func newTestService() (ledger.LedgerService, *fakeLedgerRepo) {
	repo := &fakeLedgerRepo{}
	return NewLedgerService(repo, newFakeEmployeeRepo("emp-1", "emp-2")), repo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateUpad_DuplicatePeriodRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := ledger.CreateUpadRequest{EmployeeID: "emp-1", Month: 3, Year: 2024, Amount: dec("50")}
	_, err := svc.CreateUpad(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateUpad(ctx, req)
	assert.ErrorIs(t, err, ledger.ErrUpadExists)

	// A different month is fine.
	req.Month = 4
	_, err = svc.CreateUpad(ctx, req)
	assert.NoError(t, err)
}

func TestCreateUpad_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateUpad(context.Background(), ledger.CreateUpadRequest{
		EmployeeID: "ghost", Month: 3, Year: 2024, Amount: dec("50"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetUpadAmount_DefaultsToZero(t *testing.T) {
	svc, _ := newTestService()

	amount, err := svc.GetUpadAmount(context.Background(), "emp-1", 3, 2024)
	require.NoError(t, err)
	assert.True(t, amount.IsZero())
}

func TestCreateLoanTransaction_SalaryDeductionIdempotentPerMonth(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	loan, err := svc.CreateLoan(ctx, ledger.CreateLoanRequest{
		EmployeeID: "emp-1", StartMonth: 1, StartYear: 2024,
		Principal: dec("1000"), DefaultInstallment: dec("100"),
	})
	require.NoError(t, err)

	deduction := ledger.CreateLoanTransactionRequest{
		LoanID: loan.ID, Month: 3, Year: 2024, Amount: dec("100"), Mode: string(ledger.ModeSalaryDeduction),
	}
	_, err = svc.CreateLoanTransaction(ctx, deduction)
	require.NoError(t, err)

	_, err = svc.CreateLoanTransaction(ctx, deduction)
	assert.ErrorIs(t, err, ledger.ErrInstallmentAlreadyRecorded)

	// Manual payments in the same month stay unrestricted.
	manual := ledger.CreateLoanTransactionRequest{
		LoanID: loan.ID, Month: 3, Year: 2024, Amount: dec("25"), Mode: string(ledger.ModeManualPayment),
	}
	_, err = svc.CreateLoanTransaction(ctx, manual)
	require.NoError(t, err)
	_, err = svc.CreateLoanTransaction(ctx, manual)
	require.NoError(t, err)
}

func TestCreateLoanTransaction_InactiveLoanRejected(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	loan, err := svc.CreateLoan(ctx, ledger.CreateLoanRequest{
		EmployeeID: "emp-1", StartMonth: 1, StartYear: 2024,
		Principal: dec("500"), DefaultInstallment: dec("50"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateLoanStatus(ctx, loan.ID, ledger.LoanStatusClosed))

	_, err = svc.CreateLoanTransaction(ctx, ledger.CreateLoanTransactionRequest{
		LoanID: loan.ID, Month: 2, Year: 2024, Amount: dec("50"), Mode: string(ledger.ModeManualPayment),
	})
	assert.ErrorIs(t, err, ledger.ErrLoanNotActive)
}

func TestLoanSummary_InstallmentCappedByBalance(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	loan, err := svc.CreateLoan(ctx, ledger.CreateLoanRequest{
		EmployeeID: "emp-1", StartMonth: 1, StartYear: 2024,
		Principal: dec("250"), DefaultInstallment: dec("100"),
	})
	require.NoError(t, err)

	// Pay down 200, leaving 50 on the books.
	_, err = svc.CreateLoanTransaction(ctx, ledger.CreateLoanTransactionRequest{
		LoanID: loan.ID, Month: 1, Year: 2024, Amount: dec("100"), Mode: string(ledger.ModeSalaryDeduction),
	})
	require.NoError(t, err)
	_, err = svc.CreateLoanTransaction(ctx, ledger.CreateLoanTransactionRequest{
		LoanID: loan.ID, Month: 2, Year: 2024, Amount: dec("100"), Mode: string(ledger.ModeSalaryDeduction),
	})
	require.NoError(t, err)

	summary, err := svc.LoanSummary(ctx, "emp-1", 3, 2024)
	require.NoError(t, err)
	assert.True(t, summary.PendingTotal.Equal(dec("50")), "pending total %s", summary.PendingTotal)
	assert.True(t, summary.InstallmentForMonth.Equal(dec("50")), "installment %s", summary.InstallmentForMonth)
}

func TestLoanSummary_LoanNotYetStartedContributesNothing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateLoan(ctx, ledger.CreateLoanRequest{
		EmployeeID: "emp-1", StartMonth: 6, StartYear: 2024,
		Principal: dec("1000"), DefaultInstallment: dec("100"),
	})
	require.NoError(t, err)

	summary, err := svc.LoanSummary(ctx, "emp-1", 3, 2024)
	require.NoError(t, err)

	// Pending balance is visible but no installment falls due yet.
	assert.True(t, summary.PendingTotal.Equal(dec("1000")))
	assert.True(t, summary.InstallmentForMonth.IsZero())

	// From the start month onward the default installment applies.
	summary, err = svc.LoanSummary(ctx, "emp-1", 6, 2024)
	require.NoError(t, err)
	assert.True(t, summary.InstallmentForMonth.Equal(dec("100")))
}

func TestLoanSummary_SumsAcrossActiveLoans(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateLoan(ctx, ledger.CreateLoanRequest{
		EmployeeID: "emp-1", StartMonth: 1, StartYear: 2024,
		Principal: dec("1000"), DefaultInstallment: dec("100"),
	})
	require.NoError(t, err)

	_, err = svc.CreateLoan(ctx, ledger.CreateLoanRequest{
		EmployeeID: "emp-1", StartMonth: 2, StartYear: 2024,
		Principal: dec("600"), DefaultInstallment: dec("75"),
	})
	require.NoError(t, err)

	// Cancelled loans drop out entirely.
	cancelled, err := svc.CreateLoan(ctx, ledger.CreateLoanRequest{
		EmployeeID: "emp-1", StartMonth: 1, StartYear: 2024,
		Principal: dec("400"), DefaultInstallment: dec("40"),
	})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateLoanStatus(ctx, cancelled.ID, ledger.LoanStatusCancelled))

	summary, err := svc.LoanSummary(ctx, "emp-1", 3, 2024)
	require.NoError(t, err)
	assert.True(t, summary.PendingTotal.Equal(dec("1600")), "pending total %s", summary.PendingTotal)
	assert.True(t, summary.InstallmentForMonth.Equal(dec("175")), "installment %s", summary.InstallmentForMonth)
}

func TestLoanSummary_InvalidMonth(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.LoanSummary(context.Background(), "emp-1", 13, 2024)
	assert.Error(t, err)
}

func TestGetLoan_RemainingReflectsTransactions(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	loan, err := svc.CreateLoan(ctx, ledger.CreateLoanRequest{
		EmployeeID: "emp-2", StartMonth: 1, StartYear: 2024,
		Principal: dec("300"), DefaultInstallment: dec("100"),
	})
	require.NoError(t, err)
	assert.True(t, loan.Remaining.Equal(dec("300")))

	_, err = svc.CreateLoanTransaction(ctx, ledger.CreateLoanTransactionRequest{
		LoanID: loan.ID, Month: 1, Year: 2024, Amount: dec("120"), Mode: string(ledger.ModeManualPayment),
	})
	require.NoError(t, err)

	fetched, err := svc.GetLoan(ctx, loan.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Remaining.Equal(dec("180")), "remaining %s", fetched.Remaining)
}

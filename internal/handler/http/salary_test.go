package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/employee"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/salary"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
)

type fakeSalaryService struct {
	reports map[string]salary.Report
}

func (s *fakeSalaryService) GetEmployeeSalary(_ context.Context, employeeID string, month, year int) (salary.Report, error) {
	if !validator.IsValidMonth(month) || !validator.IsValidYear(year) {
		return salary.Report{}, validator.ValidationErrors{
			{Field: "month", Message: "must be between 1 and 12"},
		}
	}
	report, ok := s.reports[employeeID]
	if !ok {
		return salary.Report{}, employee.ErrEmployeeNotFound
	}
	return report, nil
}

func newSalaryTestRouter(svc salary.SalaryService) *chi.Mux {
	handler := NewSalaryHandler(svc)
	r := chi.NewRouter()
	r.Get("/employees/{employeeId}/salary", handler.GetEmployeeSalary)
	return r
}

func TestGetEmployeeSalary_OK(t *testing.T) {
	svc := &fakeSalaryService{reports: map[string]salary.Report{
		"emp-1": {
			EmployeeID:   "emp-1",
			EmployeeName: "Ramesh",
			Month:        3,
			Year:         2024,
			MonthTotal:   decimal.RequireFromString("237.50"),
			NetPayable:   decimal.RequireFromString("187.50"),
			UpadAmount:   decimal.RequireFromString("50"),
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/employees/emp-1/salary?month=3&year=2024", nil)
	rec := httptest.NewRecorder()
	newSalaryTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool          `json:"success"`
		Data    salary.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "emp-1", body.Data.EmployeeID)
	assert.True(t, body.Data.NetPayable.Equal(decimal.RequireFromString("187.50")))
}

func TestGetEmployeeSalary_UnknownEmployee(t *testing.T) {
	svc := &fakeSalaryService{reports: map[string]salary.Report{}}

	req := httptest.NewRequest(http.MethodGet, "/employees/ghost/salary?month=3&year=2024", nil)
	rec := httptest.NewRecorder()
	newSalaryTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetEmployeeSalary_InvalidMonth(t *testing.T) {
	svc := &fakeSalaryService{reports: map[string]salary.Report{}}

	req := httptest.NewRequest(http.MethodGet, "/employees/emp-1/salary?month=13&year=2024", nil)
	rec := httptest.NewRecorder()
	newSalaryTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetEmployeeSalary_MissingMonthParamsRejected(t *testing.T) {
	svc := &fakeSalaryService{reports: map[string]salary.Report{}}

	// Missing query parameters parse to zero and fail range validation.
	req := httptest.NewRequest(http.MethodGet, "/employees/emp-1/salary", nil)
	rec := httptest.NewRecorder()
	newSalaryTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

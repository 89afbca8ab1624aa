package http

import (
	"net/http"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/salary"
	"github.com/forgetrack/forgetrack-backend-go/internal/handler/http/response"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	GetEmployeeSalary(w http.ResponseWriter, r *http.Request)
	GetMySalary(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// GetEmployeeSalary implements SalaryHandler.
func (h *SalaryHandlerImpl) GetEmployeeSalary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	month, year := monthYearParams(r)

	report, err := h.salaryService.GetEmployeeSalary(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// GetMySalary implements SalaryHandler. Workers read their own report,
// resolved from the token.
func (h *SalaryHandlerImpl) GetMySalary(w http.ResponseWriter, r *http.Request) {
	employeeID := claimEmployeeID(r)
	if employeeID == "" {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "employee_id", Message: "no employee linked to this account"},
		})
		return
	}
	month, year := monthYearParams(r)

	report, err := h.salaryService.GetEmployeeSalary(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

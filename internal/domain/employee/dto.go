package employee

import (
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName       string           `json:"full_name"`
	Username       string           `json:"username"`
	Department     string           `json:"department"`
	EmploymentType string           `json:"employment_type"`
	MonthlySalary  *decimal.Decimal `json:"monthly_salary,omitempty"`
	DailyWage      *decimal.Decimal `json:"daily_wage,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-50 characters (letters, digits, . _ -)"})
	}
	if !EmploymentType(r.EmploymentType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "must be contract, monthly or daily"})
	}
	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if r.DailyWage != nil && r.DailyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_wage", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID             string           `json:"-"`
	FullName       *string          `json:"full_name,omitempty"`
	Department     *string          `json:"department,omitempty"`
	EmploymentType *string          `json:"employment_type,omitempty"`
	MonthlySalary  *decimal.Decimal `json:"monthly_salary,omitempty"`
	DailyWage      *decimal.Decimal `json:"daily_wage,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.EmploymentType != nil && !EmploymentType(*r.EmploymentType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "must be contract, monthly or daily"})
	}
	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if r.DailyWage != nil && r.DailyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_wage", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string           `json:"id"`
	FullName       string           `json:"full_name"`
	Username       string           `json:"username"`
	Department     string           `json:"department"`
	EmploymentType string           `json:"employment_type"`
	MonthlySalary  *decimal.Decimal `json:"monthly_salary,omitempty"`
	DailyWage      *decimal.Decimal `json:"daily_wage,omitempty"`
	IsActive       bool             `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		FullName:       e.FullName,
		Username:       e.Username,
		Department:     e.Department,
		EmploymentType: string(e.EmploymentType),
		MonthlySalary:  e.MonthlySalary,
		DailyWage:      e.DailyWage,
		IsActive:       e.IsActive,
	}
}

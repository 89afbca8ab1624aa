package worklog

import (
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
)

type CreateWorkLogRequest struct {
	EmployeeID string `json:"employee_id"`
	WorkDate   string `json:"work_date"`
	PartType   string `json:"part_type"`
	JobName    string `json:"job_name,omitempty"`
	ProductKey string `json:"product_key"`
	TotalParts int    `json:"total_parts"`
	Rejection  int    `json:"rejection"`
}

type UpdateWorkLogRequest struct {
	ID         string  `json:"-"`
	JobName    *string `json:"job_name,omitempty"`
	ProductKey *string `json:"product_key,omitempty"`
	TotalParts *int    `json:"total_parts,omitempty"`
	Rejection  *int    `json:"rejection,omitempty"`
}

func (r *UpdateWorkLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TotalParts != nil && *r.TotalParts < 0 {
		errs = append(errs, validator.ValidationError{Field: "total_parts", Message: "must be non-negative"})
	}
	if r.Rejection != nil && *r.Rejection < 0 {
		errs = append(errs, validator.ValidationError{Field: "rejection", Message: "must be non-negative"})
	}
	if r.ProductKey != nil && validator.IsEmpty(*r.ProductKey) {
		errs = append(errs, validator.ValidationError{Field: "product_key", Message: "cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkLogResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	WorkDate   string `json:"work_date"`
	PartType   string `json:"part_type"`
	JobName    string `json:"job_name,omitempty"`
	ProductKey string `json:"product_key"`
	TotalParts int    `json:"total_parts"`
	Rejection  int    `json:"rejection"`
	OkParts    int    `json:"ok_parts"`
}

func ToResponse(e WorkLogEntry) WorkLogResponse {
	return WorkLogResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		WorkDate:   e.WorkDate,
		PartType:   string(e.PartType),
		JobName:    e.JobName,
		ProductKey: e.ProductKey,
		TotalParts: e.TotalParts,
		Rejection:  e.Rejection,
		OkParts:    e.OkParts(),
	}
}

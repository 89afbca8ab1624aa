package catalog

import (
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	PartType string          `json:"part_type"`
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Rate     decimal.Decimal `json:"rate"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if !PartType(r.PartType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "part_type", Message: "must be sleeve, rod or pin"})
	}
	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{Field: "key", Message: "is required"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	ID   string           `json:"-"`
	Name *string          `json:"name,omitempty"`
	Rate *decimal.Decimal `json:"rate,omitempty"`
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProductResponse struct {
	ID       string          `json:"id"`
	PartType string          `json:"part_type"`
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Rate     decimal.Decimal `json:"rate"`
}

type CreateJobRateRequest struct {
	PartType string          `json:"part_type"`
	JobName  string          `json:"job_name"`
	Rate     decimal.Decimal `json:"rate"`
}

func (r *CreateJobRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !PartType(r.PartType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "part_type", Message: "must be sleeve, rod or pin"})
	}
	if validator.IsEmpty(r.JobName) {
		errs = append(errs, validator.ValidationError{Field: "job_name", Message: "is required"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJobRateRequest struct {
	ID   string           `json:"-"`
	Rate *decimal.Decimal `json:"rate,omitempty"`
}

func (r *UpdateJobRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobRateResponse struct {
	ID       string          `json:"id"`
	PartType string          `json:"part_type"`
	JobName  string          `json:"job_name"`
	Rate     decimal.Decimal `json:"rate"`
}

package transport

import (
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
)

type CreateTransporterLogRequest struct {
	EmployeeID string  `json:"employee_id"`
	WorkDate   string  `json:"work_date"`
	VehicleNo  string  `json:"vehicle_no"`
	Route      string  `json:"route"`
	Trips      int     `json:"trips"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateTransporterLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidWorkDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.VehicleNo) {
		errs = append(errs, validator.ValidationError{Field: "vehicle_no", Message: "is required"})
	}
	if r.Trips < 0 {
		errs = append(errs, validator.ValidationError{Field: "trips", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTransporterLogRequest struct {
	ID        string  `json:"-"`
	VehicleNo *string `json:"vehicle_no,omitempty"`
	Route     *string `json:"route,omitempty"`
	Trips     *int    `json:"trips,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *UpdateTransporterLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Trips != nil && *r.Trips < 0 {
		errs = append(errs, validator.ValidationError{Field: "trips", Message: "must be non-negative"})
	}
	if r.VehicleNo != nil && validator.IsEmpty(*r.VehicleNo) {
		errs = append(errs, validator.ValidationError{Field: "vehicle_no", Message: "cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransporterLogResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	WorkDate   string  `json:"work_date"`
	VehicleNo  string  `json:"vehicle_no"`
	Route      string  `json:"route"`
	Trips      int     `json:"trips"`
	Notes      *string `json:"notes,omitempty"`
}

func ToResponse(e TransporterLogEntry) TransporterLogResponse {
	return TransporterLogResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		WorkDate:   e.WorkDate,
		VehicleNo:  e.VehicleNo,
		Route:      e.Route,
		Trips:      e.Trips,
		Notes:      e.Notes,
	}
}

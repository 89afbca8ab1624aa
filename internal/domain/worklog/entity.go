package worklog

import (
	"time"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/catalog"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
)

// WorkLogEntry is one production record. Entries are created by worker
// submissions and only change through admin correction or deletion.
type WorkLogEntry struct {
	ID         string
	EmployeeID string
	// WorkDate is a date-only string ("YYYY-MM-DD"); no time component.
	WorkDate   string
	PartType   catalog.PartType
	JobName    string // empty for part types with no operation taxonomy
	ProductKey string // code for sleeve, part name for rod/pin
	TotalParts int
	Rejection  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OkParts is the only quantity that gets paid.
func (e WorkLogEntry) OkParts() int {
	return e.TotalParts - e.Rejection
}

// NewWorkLogEntry validates and builds an entry. Rejections can never
// exceed the produced count.
func NewWorkLogEntry(employeeID, workDate string, partType catalog.PartType, jobName, productKey string, totalParts, rejection int) (WorkLogEntry, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidWorkDate(workDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if !partType.Valid() {
		errs = append(errs, validator.ValidationError{Field: "part_type", Message: "must be sleeve, rod or pin"})
	}
	if validator.IsEmpty(productKey) {
		errs = append(errs, validator.ValidationError{Field: "product_key", Message: "is required"})
	}
	if totalParts < 0 {
		errs = append(errs, validator.ValidationError{Field: "total_parts", Message: "must be non-negative"})
	}
	if rejection < 0 {
		errs = append(errs, validator.ValidationError{Field: "rejection", Message: "must be non-negative"})
	}
	if rejection > totalParts && totalParts >= 0 && rejection >= 0 {
		errs = append(errs, validator.ValidationError{Field: "rejection", Message: "cannot exceed total parts"})
	}

	if len(errs) > 0 {
		return WorkLogEntry{}, errs
	}

	return WorkLogEntry{
		EmployeeID: employeeID,
		WorkDate:   workDate,
		PartType:   partType,
		JobName:    jobName,
		ProductKey: productKey,
		TotalParts: totalParts,
		Rejection:  rejection,
	}, nil
}

package worklog

import (
	"errors"
	"testing"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/catalog"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkLogEntry_Valid(t *testing.T) {
	entry, err := NewWorkLogEntry("emp-1", "2024-03-05", catalog.PartTypeRod, "ASSEMBLY", "ROD-12", 100, 5)
	require.NoError(t, err)

	assert.Equal(t, "emp-1", entry.EmployeeID)
	assert.Equal(t, "2024-03-05", entry.WorkDate)
	assert.Equal(t, 95, entry.OkParts())
}

func TestNewWorkLogEntry_RejectionExceedsTotal(t *testing.T) {
	_, err := NewWorkLogEntry("emp-1", "2024-03-05", catalog.PartTypeRod, "ASSEMBLY", "ROD-12", 10, 11)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "rejection")
}

func TestNewWorkLogEntry_RejectionEqualsTotal(t *testing.T) {
	entry, err := NewWorkLogEntry("emp-1", "2024-03-05", catalog.PartTypeSleeve, "", "SLV-7", 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, entry.OkParts())
}

func TestNewWorkLogEntry_CollectsAllFieldErrors(t *testing.T) {
	_, err := NewWorkLogEntry("", "not-a-date", catalog.PartType("gear"), "", "", -1, -2)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))

	details := errs.ToMap()
	assert.Contains(t, details, "employee_id")
	assert.Contains(t, details, "work_date")
	assert.Contains(t, details, "part_type")
	assert.Contains(t, details, "product_key")
	assert.Contains(t, details, "total_parts")
	assert.Contains(t, details, "rejection")
}

func TestNewWorkLogEntry_BadDateFormat(t *testing.T) {
	for _, date := range []string{"05-03-2024", "2024/03/05", "2024-3-5", "2024-03-05T00:00:00Z"} {
		_, err := NewWorkLogEntry("emp-1", date, catalog.PartTypePin, "", "PIN-1", 1, 0)
		assert.Error(t, err, "date %q should be rejected", date)
	}
}

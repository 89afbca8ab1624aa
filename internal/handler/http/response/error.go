package response

import (
	"errors"
	"net/http"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/auth"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/catalog"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/employee"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/ledger"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/transport"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/user"
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/worklog"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth and user domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrRoleNotAllowed):
		Forbidden(w, "Role not allowed for this operation")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Employee username already exists")
	case errors.Is(err, employee.ErrEmployeeHasLinkedRecords):
		Conflict(w, "Employee has linked records and cannot be deleted")

	// Catalog domain errors
	case errors.Is(err, catalog.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, catalog.ErrProductExists):
		Conflict(w, "Product already exists for this part type")
	case errors.Is(err, catalog.ErrJobRateNotFound):
		NotFound(w, "Job rate not found")
	case errors.Is(err, catalog.ErrJobRateExists):
		Conflict(w, "Job rate already exists for this part type and job name")

	// Work log and transporter log errors
	case errors.Is(err, worklog.ErrWorkLogNotFound):
		NotFound(w, "Work log entry not found")
	case errors.Is(err, transport.ErrTransporterLogNotFound):
		NotFound(w, "Transporter log entry not found")

	// Ledger domain errors
	case errors.Is(err, ledger.ErrUpadNotFound):
		NotFound(w, "Upad entry not found")
	case errors.Is(err, ledger.ErrUpadExists):
		Conflict(w, "Upad entry already exists for this employee and month")
	case errors.Is(err, ledger.ErrLoanNotFound):
		NotFound(w, "Loan not found")
	case errors.Is(err, ledger.ErrLoanNotActive):
		Conflict(w, "Loan is not active")
	case errors.Is(err, ledger.ErrInstallmentAlreadyRecorded):
		Conflict(w, "Salary deduction already recorded for this loan and month")

	// Default; ErrUnknownPartType lands here on purpose, a work log with
	// a part type the catalog does not know is a configuration fault.
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

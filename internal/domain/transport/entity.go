package transport

import "time"

// TransporterLogEntry records one day of material movement by a
// transporter employee.
type TransporterLogEntry struct {
	ID         string
	EmployeeID string
	WorkDate   string // date-only "YYYY-MM-DD"
	VehicleNo  string
	Route      string
	Trips      int
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package transport

import "errors"

var (
	ErrTransporterLogNotFound = errors.New("transporter log entry not found")
)

package worklog

import "errors"

var (
	ErrWorkLogNotFound = errors.New("work log entry not found")
)

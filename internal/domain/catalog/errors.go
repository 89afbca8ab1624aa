package catalog

import "errors"

var (
	// ErrUnknownPartType is a server-side misconfiguration signal, not a
	// user-correctable input error.
	ErrUnknownPartType = errors.New("unknown part type")

	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists for this part type")
	ErrJobRateNotFound = errors.New("job rate not found")
	ErrJobRateExists   = errors.New("job rate already exists for this part type and job name")
)

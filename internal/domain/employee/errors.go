package employee

import "errors"

var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrUsernameExists           = errors.New("employee username already exists")
	ErrInvalidEmploymentType    = errors.New("employment type must be contract, monthly or daily")
	ErrEmployeeAlreadyActive    = errors.New("employee is already active")
	ErrEmployeeAlreadyInactive  = errors.New("employee is already inactive")
	ErrEmployeeHasLinkedRecords = errors.New("employee has work logs or ledger entries and cannot be deleted")
)

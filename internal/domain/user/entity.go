package user

import "time"

// Role gates which portal a user can act through.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleWorker      Role = "worker"
	RoleTransporter Role = "transporter"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleWorker, RoleTransporter:
		return true
	}
	return false
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

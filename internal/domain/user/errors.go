package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already taken")
	ErrInvalidRole            = errors.New("role must be admin, worker or transporter")
	ErrUserInactive           = errors.New("user account is deactivated")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrRoleNotAllowed         = errors.New("role not allowed for this operation")
)

package auth

import (
	"github.com/forgetrack/forgetrack-backend-go/internal/domain/user"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken           string  `json:"access_token"`
	AccessTokenExpiresAt  int64   `json:"access_token_expires_at"`
	RefreshToken          string  `json:"refresh_token"`
	RefreshTokenExpiresAt int64   `json:"refresh_token_expires_at"`
	UserID                string  `json:"user_id"`
	Username              string  `json:"username"`
	Role                  string  `json:"role"`
	EmployeeID            *string `json:"employee_id,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RegisterUserRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *RegisterUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "must be 3-50 characters (letters, digits, . _ -)"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !user.Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be admin, worker or transporter"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	IsActive   bool    `json:"is_active"`
}

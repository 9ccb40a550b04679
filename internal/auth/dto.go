package auth

import (
	"github.com/anshumat/payroll-management/internal"
	"github.com/anshumat/payroll-management/internal/user"
)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupDTO registers a new account. Role defaults to employee when omitted.
type SignupDTO struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// AuthResponse is returned by login and signup: a bearer token plus the
// account it belongs to.
type AuthResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

func (d SignupDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	if len(d.Password) < 8 {
		return ValidationError{Msg: "password must be at least 8 characters"}
	}
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	if d.Role != "" && !internal.Role(d.Role).Valid() {
		return ValidationError{Msg: "role must be admin or employee"}
	}
	return nil
}

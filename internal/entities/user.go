package entities

import (
	"net/mail"

	"jetsetgo/internal/apperrors"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Age      *int   `json:"age"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Age is a pointer so a missing field can be told apart from a valid age of 0.
func (r *SignupRequest) Validate() error {
	if r.Name == "" {
		return apperrors.NewValidation("name", "Name is required")
	}
	if r.Age == nil {
		return apperrors.NewValidation("age", "Age is required")
	}
	if *r.Age < 0 {
		return apperrors.NewValidation("age", "Age must be a non-negative integer")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperrors.NewValidation("email", "Valid email is required")
	}
	if r.Phone == "" {
		return apperrors.NewValidation("phone", "Phone number is required")
	}
	if len(r.Password) < 6 {
		return apperrors.NewValidation("password", "Password must be at least 6 characters long")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperrors.NewValidation("email", "Valid email is required")
	}
	if r.Password == "" {
		return apperrors.NewValidation("password", "Password is required")
	}
	return nil
}

type SignupResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// LoginResponse is the profile returned on successful authentication. The
// token is optional: clients may keep identifying themselves by email alone.
type LoginResponse struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Token  string `json:"token,omitempty"`
}

type UserProfile struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

package apperrors

import (
	"errors"
	"fmt"
)

// Expected outcomes of the core services. Handlers map these onto HTTP
// status codes; anything else is treated as an internal store failure.
var (
	ErrUserExists         = errors.New("user already exists with this email")
	ErrEmailNotFound      = errors.New("email does not exist, please sign up")
	ErrInvalidCredentials = errors.New("incorrect password, please try again")
	ErrSlotTaken          = errors.New("slot already reserved for that date")
)

// ValidationError reports malformed or missing input, caught before the
// store is touched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

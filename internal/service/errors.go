package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmailExists      = errors.New("email already registered")
	ErrUsernameExists   = errors.New("username already taken")
	ErrInvalidCreds     = errors.New("invalid email or password")
	ErrForbidden        = errors.New("forbidden")
	ErrReportNotFound   = errors.New("report not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidStatus    = errors.New("invalid report status")
	ErrInvalidRole      = errors.New("invalid role")
	ErrSelfModification = errors.New("admins cannot modify their own account")
)

// ValidationError reports a missing or malformed input field. Handlers map it
// to a 400 with the field name in the body.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

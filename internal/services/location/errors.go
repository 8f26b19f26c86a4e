// File: internal/services/location/errors.go
package location

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypePermission ErrorType = "PERMISSION"
	ErrTypeGeocode    ErrorType = "GEOCODE"
)

type LocationError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *LocationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Location %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Location %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func NewValidationError(operation, msg string) *LocationError {
	return &LocationError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

// IsPermissionDenied reports whether err means the user must enter a ZIP
// manually.
func IsPermissionDenied(err error) bool {
	if errors.Is(err, ErrPermissionDenied) {
		return true
	}
	var le *LocationError
	if errors.As(err, &le) {
		return le.Type == ErrTypePermission
	}
	return false
}

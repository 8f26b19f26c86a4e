// File: internal/services/geocode/errors.go
package geocode

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeConfig   ErrorType = "CONFIG"
	ErrTypeNetwork  ErrorType = "NETWORK"
	ErrTypeNotFound ErrorType = "NOT_FOUND"
)

type GeocodeError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *GeocodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Geocode %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Geocode %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func NewNetworkError(operation, msg string, cause error) *GeocodeError {
	return &GeocodeError{Type: ErrTypeNetwork, Operation: operation, Message: msg, Cause: cause}
}

func NewNotFoundError(operation, msg string) *GeocodeError {
	return &GeocodeError{Type: ErrTypeNotFound, Operation: operation, Message: msg}
}

// IsNotFound reports whether err is a zero-results geocode outcome.
func IsNotFound(err error) bool {
	var ge *GeocodeError
	if errors.As(err, &ge) {
		return ge.Type == ErrTypeNotFound
	}
	return false
}

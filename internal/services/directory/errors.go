// File: internal/services/directory/errors.go
package directory

import "fmt"

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeValidation ErrorType = "VALIDATION"
)

type DirectoryError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *DirectoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Directory %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Directory %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func NewNetworkError(operation, msg string, cause error) *DirectoryError {
	return &DirectoryError{Type: ErrTypeNetwork, Operation: operation, Message: msg, Cause: cause}
}

func NewValidationError(operation, msg string) *DirectoryError {
	return &DirectoryError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

// File: internal/services/summary/errors.go
package summary

import "fmt"

type ErrorType string

const (
	ErrTypeConfig    ErrorType = "CONFIG"
	ErrTypeProvider  ErrorType = "PROVIDER"
	ErrTypeMalformed ErrorType = "MALFORMED"
)

type SummaryError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *SummaryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Summary %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Summary %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func NewMalformedError(operation, msg string, cause error) *SummaryError {
	return &SummaryError{Type: ErrTypeMalformed, Operation: operation, Message: msg, Cause: cause}
}

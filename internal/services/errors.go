// File: internal/services/errors.go
package services

import "fmt"

// ServiceError is the validation-level error returned by service
// constructors and entry points before any collaborator is touched.
type ServiceError struct {
	Operation string
	Message   string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error in %s: %s", e.Operation, e.Message)
}

func NewValidationError(operation, msg string) *ServiceError {
	return &ServiceError{Operation: operation, Message: msg}
}

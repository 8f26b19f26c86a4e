// File: internal/services/provider/errors.go
package provider

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	ErrTypeConfig    ErrorType = "CONFIG"
	ErrTypeDirectory ErrorType = "DIRECTORY"
	ErrTypeNoResults ErrorType = "NO_RESULTS"
)

type DiscoveryError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
}

func (e *DiscoveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Discovery %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("Discovery %s error in %s: %s", e.Type, e.Operation, e.Message)
}

// NewNoResultsError marks the visible "no providers found" outcome. Unlike
// per-record geocoding failures, it surfaces to the user so they can retry
// or broaden the search.
func NewNoResultsError(specialty string) *DiscoveryError {
	return &DiscoveryError{
		Type:      ErrTypeNoResults,
		Operation: "find_providers",
		Message:   fmt.Sprintf("no providers found for %q", specialty),
	}
}

// IsNoResults reports whether err is the empty-directory outcome.
func IsNoResults(err error) bool {
	var de *DiscoveryError
	if errors.As(err, &de) {
		return de.Type == ErrTypeNoResults
	}
	return false
}

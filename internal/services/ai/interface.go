// File: internal/services/ai/interface.go
package ai

import "context"

// ProviderStatus represents generative-text provider health.
type ProviderStatus struct {
	IsHealthy bool
	Message   string
}

// CompletionProvider is the generative text service collaborator: one prompt
// string in, one textual response out. The service enforces no structured
// output contract; all response validation happens downstream.
type CompletionProvider interface {
	GetCompletion(ctx context.Context, model, prompt string) (string, error)
	HealthCheck(ctx context.Context) error
}

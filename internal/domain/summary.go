// File: internal/domain/summary.go
package domain

import "strings"

// NotEnoughInformation is the sentinel value the generation prompt mandates
// for any summary field lacking sufficient basis in the conversation.
const NotEnoughInformation = "Not enough information"

// ConversationSummary is the structured clinical extraction derived from a
// conversation's assistant messages. It is replaced wholesale on every
// successful generation, never merged field by field.
type ConversationSummary struct {
	Diagnosis  string   `json:"diagnosis"`
	Symptoms   []string `json:"symptoms"`
	Causes     []string `json:"causes"`
	Treatments []string `json:"treatments"`
	Specialty  string   `json:"specialty"`
}

// DefaultSummary returns the summary substituted when no generation has
// succeeded yet or the last one degraded.
func DefaultSummary() ConversationSummary {
	return ConversationSummary{
		Diagnosis:  NotEnoughInformation,
		Symptoms:   []string{},
		Causes:     []string{},
		Treatments: []string{},
		Specialty:  NotEnoughInformation,
	}
}

// HasSpecialty reports whether the summary names a usable specialty.
func (s ConversationSummary) HasSpecialty() bool {
	sp := strings.TrimSpace(s.Specialty)
	return sp != "" && sp != NotEnoughInformation
}

// DiagnosisCandidates splits a comma-separated multi-diagnosis string for
// presentation. The stored diagnosis itself stays an opaque string.
func (s ConversationSummary) DiagnosisCandidates() []string {
	parts := strings.Split(s.Diagnosis, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// File: internal/services/summary/parser.go
package summary

import (
	"encoding/json"
	"strings"

	"github.com/visionary-ai/medassist/internal/domain"
)

// ParseResponse validates and decodes the raw text returned by the
// generative service. Any malformed reply degrades to the default summary;
// the returned error exists for logging only and never reaches callers of
// the engine.
func ParseResponse(raw string) (domain.ConversationSummary, error) {
	if !strings.Contains(raw, "{") || !strings.Contains(raw, "}") {
		return domain.DefaultSummary(), NewMalformedError("parse", "response contains no JSON object", nil)
	}

	cleaned := stripCodeFences(raw)

	// Tolerate prose around the object: decode from the first brace to the
	// last.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return domain.DefaultSummary(), NewMalformedError("parse", "response contains no JSON object after cleanup", nil)
	}

	var parsed domain.ConversationSummary
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &parsed); err != nil {
		return domain.DefaultSummary(), NewMalformedError("parse", "invalid summary JSON", err)
	}

	return normalize(parsed), nil
}

// stripCodeFences removes leading/trailing markdown triple-backtick segments
// that models frequently wrap JSON replies in.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// normalize fills missing fields with the sentinel defaults so a sparse but
// valid object still yields a fully-populated summary.
func normalize(s domain.ConversationSummary) domain.ConversationSummary {
	if strings.TrimSpace(s.Diagnosis) == "" {
		s.Diagnosis = domain.NotEnoughInformation
	}
	if strings.TrimSpace(s.Specialty) == "" {
		s.Specialty = domain.NotEnoughInformation
	}
	if s.Symptoms == nil {
		s.Symptoms = []string{}
	}
	if s.Causes == nil {
		s.Causes = []string{}
	}
	if s.Treatments == nil {
		s.Treatments = []string{}
	}
	return s
}

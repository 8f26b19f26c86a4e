// File: internal/services/summary/prompt.go
package summary

import (
	"fmt"
	"strings"

	"github.com/visionary-ai/medassist/internal/domain"
)

// BuildTranscript concatenates the text of all assistant-authored messages
// in sequence order, newline-joined. Image placeholder markers and empty
// messages carry no summarizable content and are skipped.
func BuildTranscript(messages []domain.Message) string {
	var b strings.Builder
	for _, msg := range messages {
		if !msg.IsAssistant() || msg.IsImageMarker() {
			continue
		}
		text := strings.TrimSpace(msg.Content)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}
	return b.String()
}

// BuildPrompt produces the generation request for the text service. The
// reply must be exactly one JSON object; any field without sufficient basis
// in the conversation is the literal sentinel string.
func BuildPrompt(transcript string) string {
	return fmt.Sprintf(`You are a medical assistant distilling a consultation into a structured clinical summary.
# Conversation
%s
# Instructions
- Return ONLY a JSON object. No extra text, no commentary.
- The object must have exactly these fields:
  "diagnosis" (string), "symptoms" (array of strings), "causes" (array of strings), "treatments" (array of strings), "specialty" (string).
- "diagnosis" may list multiple comma-separated candidate diagnoses.
- "specialty" names the kind of doctor the patient should visit.
- For any field the conversation gives insufficient basis for, use the literal string %q; for array fields use a single-element array containing it. Apply this rule to each field independently.
`, transcript, domain.NotEnoughInformation)
}

// File: internal/domain/message.go
package domain

import "time"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// ImagePlaceholder is the content marker stored for image-only messages.
// The summary pipeline skips messages carrying this marker.
const ImagePlaceholder = "[Image attached]"

// Message represents a single message within a chat. The message store owns
// these records; the summary pipeline only reads ordered snapshots of them.
// CreatedAt is the ordering key and may be nil for a just-sent message whose
// server timestamp has not resolved yet.
type Message struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	ChatID      string     `json:"chat_id" gorm:"not null;index"`
	Role        string     `json:"role" gorm:"not null"` // "user" or "assistant"
	AuthorLabel string     `json:"author_label"`
	Content     string     `json:"content"`
	ImageRef    string     `json:"image_ref,omitempty"`
	CreatedAt   *time.Time `json:"created_at"`
}

// IsAssistant reports whether the message was authored by the AI responder.
func (m Message) IsAssistant() bool { return m.Role == MessageRoleAssistant }

// IsImageMarker reports whether the message is an image placeholder rather
// than real conversational text.
func (m Message) IsImageMarker() bool { return m.Content == ImagePlaceholder }

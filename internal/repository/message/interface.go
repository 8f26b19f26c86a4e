// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/visionary-ai/medassist/internal/domain"
)

// MessageRepository persists chat messages and serves the ordered snapshots
// the summary pipeline reads.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	FindByChatID(ctx context.Context, chatID string) ([]domain.Message, error)
	CountByChatID(ctx context.Context, chatID string) (int64, error)
	DeleteByChatID(ctx context.Context, chatID string) error
}

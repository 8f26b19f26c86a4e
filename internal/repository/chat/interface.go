// File: internal/repository/chat/interface.go
package chat

import (
	"context"

	"github.com/visionary-ai/medassist/internal/domain"
)

// ChatRepository persists consultation threads.
type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	FindByID(ctx context.Context, chatID string) (*domain.Chat, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Chat, error)
	Delete(ctx context.Context, chatID string, userID uint) error
}

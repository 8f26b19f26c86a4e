// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/visionary-ai/medassist/internal/domain"
)

var ErrMessageNotFound = errors.New("message not found")

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

// Create appends a message, assigning an ID and server timestamp when the
// caller did not. The timestamp is the ordering key for snapshots.
func (r *gormMessageRepository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if err := r.validateMessageInput(message); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.CreatedAt == nil {
		now := time.Now().UTC()
		message.CreatedAt = &now
	}

	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		log.Printf("[MessageRepository] Database error during message creation for chat %s: %v", message.ChatID, err)
		return nil, errors.New("database error creating message")
	}

	return message, nil
}

// FindByChatID returns the full chat transcript ordered oldest first. Messages
// without a resolved timestamp sort last, matching their pending status.
func (r *gormMessageRepository) FindByChatID(ctx context.Context, chatID string) ([]domain.Message, error) {
	if chatID == "" {
		return nil, errors.New("invalid chat ID")
	}

	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at asc").
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error finding messages for chat %s: %v", chatID, err)
		return nil, errors.New("database error retrieving messages")
	}

	return messages, nil
}

func (r *gormMessageRepository) CountByChatID(ctx context.Context, chatID string) (int64, error) {
	if chatID == "" {
		return 0, errors.New("invalid chat ID")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("chat_id = ?", chatID).
		Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages for chat %s: %v", chatID, err)
		return 0, errors.New("database error counting messages")
	}

	return count, nil
}

func (r *gormMessageRepository) DeleteByChatID(ctx context.Context, chatID string) error {
	if chatID == "" {
		return errors.New("invalid chat ID")
	}

	if err := r.db.WithContext(ctx).Where("chat_id = ?", chatID).Delete(&domain.Message{}).Error; err != nil {
		log.Printf("[MessageRepository] Database error deleting messages for chat %s: %v", chatID, err)
		return errors.New("database error deleting messages")
	}

	return nil
}

func (r *gormMessageRepository) validateMessageInput(message *domain.Message) error {
	if message == nil {
		return errors.New("message cannot be nil")
	}
	if strings.TrimSpace(message.ChatID) == "" {
		return errors.New("chat ID is required")
	}
	if message.Role != domain.MessageRoleUser && message.Role != domain.MessageRoleAssistant {
		return fmt.Errorf("invalid message role: %q", message.Role)
	}
	if message.Content == "" && message.ImageRef == "" {
		return errors.New("message must carry content or an image reference")
	}
	return nil
}

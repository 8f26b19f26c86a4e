// File: internal/domain/chat.go
package domain

import "time"

const (
	ChatCategorySkin = "skin"
	ChatCategoryOral = "oral"
)

// Chat represents a single consultation thread between a user and the
// assistant. Category selects the consultation domain and drives the
// fallback specialty when the summary cannot name one.
type Chat struct {
	ID        string `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"user_id" gorm:"not null;index"`
	Category  string `json:"category" gorm:"not null"` // "skin" or "oral"
	Title     string `json:"title"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

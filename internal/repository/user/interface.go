// File: internal/repository/user/interface.go
package user

import (
	"context"

	"github.com/visionary-ai/medassist/internal/domain"
)

// UserRepository reads and writes the profile fields the assistant core
// touches. It doubles as the location resolver's profile store.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, userID uint) (*domain.User, error)
	GetPostalCode(ctx context.Context, userID uint) (string, error)
	SavePostalCode(ctx context.Context, userID uint, postalCode string) error
}

// File: internal/repository/user/gorm_user_repository.go
package user

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/visionary-ai/medassist/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if u == nil || strings.TrimSpace(u.Username) == "" {
		return nil, errors.New("username is required")
	}

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		log.Printf("[UserRepository] Database error during user creation: %v", err)
		return nil, errors.New("database error creating user")
	}

	return u, nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, userID uint) (*domain.User, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var u domain.User
	err := r.db.WithContext(ctx).First(&u, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("[UserRepository] Database error finding user ID %d: %v", userID, err)
		return nil, errors.New("database error fetching user")
	}

	return &u, nil
}

func (r *gormUserRepository) GetPostalCode(ctx context.Context, userID uint) (string, error) {
	u, err := r.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.PostalCode, nil
}

func (r *gormUserRepository) SavePostalCode(ctx context.Context, userID uint, postalCode string) error {
	if userID == 0 {
		return errors.New("invalid user ID")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Update("postal_code", postalCode)
	if result.Error != nil {
		log.Printf("[UserRepository] Database error saving postal code for user ID %d: %v", userID, result.Error)
		return errors.New("database error saving postal code")
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

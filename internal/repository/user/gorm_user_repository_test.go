package user

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/visionary-ai/medassist/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return db
}

func TestPostalCodeRoundTrip(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	u, err := repo.Create(ctx, &domain.User{Username: "pat"})
	require.NoError(t, err)

	code, err := repo.GetPostalCode(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, code, "new profile has no stored code")

	require.NoError(t, repo.SavePostalCode(ctx, u.ID, "60601"))
	code, err = repo.GetPostalCode(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "60601", code)
}

func TestSavePostalCodeUnknownUser(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	err := repo.SavePostalCode(context.Background(), 999, "60601")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

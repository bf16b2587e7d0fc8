package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"feedbackpulse/internal/model"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	conn := newTestDB(t)
	repo := NewUserRepository(conn)
	ctx := context.Background()

	user := seedUser(t, conn, "ada@example.com")

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	conn := newTestDB(t)
	seedUser(t, conn, "ada@example.com")

	err := NewUserRepository(conn).Create(context.Background(), &model.User{Email: "ada@example.com"})
	assert.Error(t, err)
}

func TestAccountRepository_FindByProvider(t *testing.T) {
	conn := newTestDB(t)
	repo := NewAccountRepository(conn)
	ctx := context.Background()

	user := seedUser(t, conn, "ada@example.com")
	require.NoError(t, repo.Create(ctx, &model.Account{
		UserID: user.ID, Type: "oauth", Provider: "github", ProviderAccountID: "42",
	}))

	found, err := repo.FindByProvider(ctx, "github", "42")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)

	_, err = repo.FindByProvider(ctx, "google", "42")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

package jsonfile

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tashu/studio/internal/domain/model"
)

func TestCredentialRepo_EnsureDefaultBootstraps(t *testing.T) {
	repo := NewCredentialRepo(newTestStore(t), slog.New(slog.DiscardHandler))
	ctx := context.Background()

	created, err := repo.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	cred, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", cred.Username)
	assert.NotEmpty(t, cred.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("admin123")))
}

func TestCredentialRepo_EnsureDefaultKeepsExistingCredential(t *testing.T) {
	repo := NewCredentialRepo(newTestStore(t), slog.New(slog.DiscardHandler))
	ctx := context.Background()

	existing := model.AdminCredential{Username: "tashu", PasswordHash: "$2a$10$fake", Email: "me@example.com"}
	require.NoError(t, repo.Save(ctx, existing))

	created, err := repo.EnsureDefault(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	cred, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, existing, cred)
}

func TestCredentialRepo_SaveReplaces(t *testing.T) {
	repo := NewCredentialRepo(newTestStore(t), slog.New(slog.DiscardHandler))
	ctx := context.Background()

	_, err := repo.EnsureDefault(ctx)
	require.NoError(t, err)

	cred, err := repo.Get(ctx)
	require.NoError(t, err)
	cred.Username = "renamed"
	require.NoError(t, repo.Save(ctx, cred))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Username)
}

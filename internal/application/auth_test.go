package application

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tashu/studio/internal/adapter/driven/jsonfile"
	"github.com/tashu/studio/internal/domain/model"
)

func newTestAuth(t *testing.T) (*AuthService, *jsonfile.CredentialRepo) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	store, err := jsonfile.NewStore(t.TempDir(), logger)
	require.NoError(t, err)

	creds := jsonfile.NewCredentialRepo(store, logger)
	_, err = creds.EnsureDefault(context.Background())
	require.NoError(t, err)

	return NewAuthService(creds, NewSessionStore(time.Hour), logger), creds
}

func TestAuthService_LoginWithDefaultCredential(t *testing.T) {
	auth, _ := newTestAuth(t)

	token, err := auth.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	username, ok := auth.Check(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestAuthService_LoginRejectsWrongPassword(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuthService_LoginRejectsWrongUsername(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.Login(context.Background(), "root", "admin123")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials,
		"the error must not reveal which field was wrong")
}

func TestAuthService_LoginAcceptsStoredEmail(t *testing.T) {
	auth, _ := newTestAuth(t)

	token, err := auth.Login(context.Background(), "admin@studio.local", "admin123")
	require.NoError(t, err)

	username, ok := auth.Check(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", username, "session binds to the stored username, not the email")
}

func TestAuthService_RequireRejectsAnonymous(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.Require("")
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	_, err = auth.Require("bogus-token")
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestAuthService_LogoutIsIdempotent(t *testing.T) {
	auth, _ := newTestAuth(t)

	token, err := auth.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	auth.Logout(token)
	_, err = auth.Require(token)
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	// A second logout of the same token is not an error.
	auth.Logout(token)
}

func TestAuthService_ChangePassword(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	token, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	require.NoError(t, auth.ChangePassword(ctx, token, "admin123", "s3cret-pass"))

	_, err = auth.Login(ctx, "admin", "admin123")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = auth.Login(ctx, "admin", "s3cret-pass")
	assert.NoError(t, err)
}

func TestAuthService_ChangePasswordRequiresCurrentPassword(t *testing.T) {
	auth, creds := newTestAuth(t)
	ctx := context.Background()

	token, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	before, err := creds.Get(ctx)
	require.NoError(t, err)

	err = auth.ChangePassword(ctx, token, "not-the-password", "whatever9")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	after, err := creds.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash, "stored hash must be untouched")
}

func TestAuthService_ChangePasswordRejectsShortPassword(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	token, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	err = auth.ChangePassword(ctx, token, "admin123", "short")
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAuthService_ChangePasswordRequiresSession(t *testing.T) {
	auth, _ := newTestAuth(t)

	err := auth.ChangePassword(context.Background(), "bogus", "admin123", "whatever9")
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestAuthService_ChangeUsernameRebindsSession(t *testing.T) {
	auth, creds := newTestAuth(t)
	ctx := context.Background()

	token, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	require.NoError(t, auth.ChangeUsername(ctx, token, "tashu", "admin123"))

	username, ok := auth.Check(token)
	require.True(t, ok)
	assert.Equal(t, "tashu", username)

	cred, err := creds.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tashu", cred.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("admin123")),
		"password is unchanged by a username change")
}

func TestAuthService_ChangeUsernameValidation(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	token, err := auth.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	err = auth.ChangeUsername(ctx, token, "ab", "admin123")
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)

	err = auth.ChangeUsername(ctx, token, "tashu", "wrong")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

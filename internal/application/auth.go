package application

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tashu/studio/internal/domain/model"
	"github.com/tashu/studio/internal/domain/port/driven"
)

const (
	minPasswordLength = 6
	minUsernameLength = 3
)

// AuthService is the session gate: it validates the admin credential, issues
// and checks session tokens, and is the single guard every mutating handler
// goes through.
type AuthService struct {
	creds    driven.CredentialStore
	sessions *SessionStore
	logger   *slog.Logger
}

// NewAuthService creates an AuthService over the credential and session
// stores.
func NewAuthService(creds driven.CredentialStore, sessions *SessionStore, logger *slog.Logger) *AuthService {
	return &AuthService{creds: creds, sessions: sessions, logger: logger}
}

// Login checks the supplied pair against the stored credential and issues a
// session token. The login name may be the stored username or the stored
// email. On failure it returns model.ErrInvalidCredentials without saying
// which half was wrong.
func (a *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	cred, err := a.creds.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load credential: %w", err)
	}

	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(cred.Username)) == 1 ||
		(cred.Email != "" && strings.EqualFold(username, cred.Email))
	passOK := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) == nil
	if !nameOK || !passOK {
		a.logger.Info("login rejected", "username", username)
		return "", model.ErrInvalidCredentials
	}

	token := a.sessions.Create(cred.Username)
	a.logger.Info("login accepted", "username", cred.Username)
	return token, nil
}

// Logout destroys the session unconditionally. Logging out an unknown or
// already-expired token is not an error.
func (a *AuthService) Logout(token string) {
	a.sessions.Delete(token)
}

// Check reports the session state without side effects.
func (a *AuthService) Check(token string) (username string, loggedIn bool) {
	sess, ok := a.sessions.Get(token)
	if !ok {
		return "", false
	}
	return sess.Username, true
}

// Require is the mutation guard: it resolves the token to its bound username
// or fails with model.ErrUnauthorized.
func (a *AuthService) Require(token string) (string, error) {
	sess, ok := a.sessions.Get(token)
	if !ok {
		return "", model.ErrUnauthorized
	}
	return sess.Username, nil
}

// ChangePassword re-verifies the current password before storing a new hash,
// so a hijacked-but-stale token alone cannot rotate the credential.
func (a *AuthService) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	if _, err := a.Require(token); err != nil {
		return err
	}
	if len(newPassword) < minPasswordLength {
		return &model.ValidationError{Field: "newPassword", Reason: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}

	cred, err := a.creds.Get(ctx)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(currentPassword)) != nil {
		return model.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}
	cred.PasswordHash = string(hash)
	if err := a.creds.Save(ctx, cred); err != nil {
		return fmt.Errorf("store new password: %w", err)
	}

	a.logger.Info("admin password changed")
	return nil
}

// ChangeUsername re-verifies the password, stores the new username, and
// rebinds the live session to it.
func (a *AuthService) ChangeUsername(ctx context.Context, token, newUsername, password string) error {
	if _, err := a.Require(token); err != nil {
		return err
	}
	if len(newUsername) < minUsernameLength {
		return &model.ValidationError{Field: "newUsername", Reason: fmt.Sprintf("must be at least %d characters", minUsernameLength)}
	}

	cred, err := a.creds.Get(ctx)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return model.ErrInvalidCredentials
	}

	cred.Username = newUsername
	if err := a.creds.Save(ctx, cred); err != nil {
		return fmt.Errorf("store new username: %w", err)
	}
	a.sessions.Rename(token, newUsername)

	a.logger.Info("admin username changed", "username", newUsername)
	return nil
}

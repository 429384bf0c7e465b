package jsonfile

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/tashu/studio/internal/domain/model"
	"github.com/tashu/studio/internal/domain/port/driven"
)

const credentialCollection = "admin"

// Development bootstrap credential, written on first run when no admin file
// exists. Nothing forces a rotation; production deployments are expected to
// change it out of band.
const (
	defaultUsername = "admin"
	defaultPassword = "admin123"
	defaultEmail    = "admin@studio.local"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo stores the single admin credential in its own JSON file.
type CredentialRepo struct {
	store  *Store
	logger *slog.Logger
}

// NewCredentialRepo creates a CredentialRepo over the given store.
func NewCredentialRepo(store *Store, logger *slog.Logger) *CredentialRepo {
	return &CredentialRepo{store: store, logger: logger}
}

// Get returns the stored admin credential.
func (r *CredentialRepo) Get(_ context.Context) (model.AdminCredential, error) {
	mu := r.store.lock(credentialCollection)
	mu.Lock()
	defer mu.Unlock()

	var cred model.AdminCredential
	r.store.read(credentialCollection, &cred)
	return cred, nil
}

// Save replaces the stored admin credential.
func (r *CredentialRepo) Save(_ context.Context, cred model.AdminCredential) error {
	mu := r.store.lock(credentialCollection)
	mu.Lock()
	defer mu.Unlock()

	if err := r.store.write(credentialCollection, cred); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

// EnsureDefault writes the development credential when none is stored yet.
func (r *CredentialRepo) EnsureDefault(_ context.Context) (bool, error) {
	mu := r.store.lock(credentialCollection)
	mu.Lock()
	defer mu.Unlock()

	var cred model.AdminCredential
	r.store.read(credentialCollection, &cred)
	if cred.Username != "" {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash default password: %w", err)
	}
	cred = model.AdminCredential{
		Username:     defaultUsername,
		PasswordHash: string(hash),
		Email:        defaultEmail,
	}
	if err := r.store.write(credentialCollection, cred); err != nil {
		return false, fmt.Errorf("write default credential: %w", err)
	}

	r.logger.Info("default admin credential created",
		"username", defaultUsername,
		"note", "change the development password before going to production",
	)
	return true, nil
}

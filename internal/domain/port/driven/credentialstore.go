package driven

import (
	"context"

	"github.com/tashu/studio/internal/domain/model"
)

// CredentialStore persists the single admin credential of a deployment.
type CredentialStore interface {
	// Get returns the stored credential. A deployment that has run
	// EnsureDefault always has one.
	Get(ctx context.Context) (model.AdminCredential, error)

	// Save replaces the stored credential.
	Save(ctx context.Context, cred model.AdminCredential) error

	// EnsureDefault bootstraps the development credential on first run and
	// reports whether it created one. Existing credentials are left alone.
	EnsureDefault(ctx context.Context) (created bool, err error)
}

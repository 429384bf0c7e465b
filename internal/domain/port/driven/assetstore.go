package driven

import (
	"context"
	"io"
)

// AssetStore persists uploaded binary assets (images) and hands back the web
// path recorded on the owning record. Deleting a record does not delete its
// asset; orphans are accepted.
type AssetStore interface {
	// Save stores the asset under a collision-free name derived from
	// filename and returns its public path. Rejects non-image extensions
	// with a model.ValidationError.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Package driven defines the store interfaces the application core depends
// on. Adapters under internal/adapter/driven implement them.
package driven

import (
	"context"

	"github.com/tashu/studio/internal/domain/model"
)

// Record is any list-backed entity addressable by its generated identifier.
type Record interface {
	RecordID() string
}

// CollectionStore persists one list-backed content collection. Every mutation
// is a whole-document load-modify-save; implementations must serialize
// mutations to the same collection.
type CollectionStore[T Record] interface {
	// List returns the collection in storage (insertion) order. Never nil.
	List(ctx context.Context) ([]T, error)

	// Get returns the record with the given id, or model.ErrNotFound.
	Get(ctx context.Context, id string) (*T, error)

	// Append adds a record to the end of the collection.
	Append(ctx context.Context, rec T) error

	// Update applies mutate to the stored record with the given id and
	// persists the collection, returning the mutated record. Returns
	// model.ErrNotFound for an unknown id.
	Update(ctx context.Context, id string, mutate func(*T)) (*T, error)

	// Delete removes the record with the given id, or returns
	// model.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// ReplaceAll swaps the entire collection for recs. Used by
	// restore-defaults.
	ReplaceAll(ctx context.Context, recs []T) error
}

// DocumentStore persists one singleton document.
type DocumentStore[T any] interface {
	// Get returns the stored document, or the zero value when none exists.
	Get(ctx context.Context) (T, error)

	// Update applies mutate to the stored document and persists it.
	Update(ctx context.Context, mutate func(*T)) (T, error)

	// Put replaces the stored document wholesale.
	Put(ctx context.Context, doc T) error
}

// InteractionStore persists the best-effort like/comment mirror.
type InteractionStore interface {
	// GetImage returns the mirrored state of one image; unknown keys yield
	// a zero-valued state, not an error.
	GetImage(ctx context.Context, key string) (model.ImageInteractions, error)

	// ApplyLike increments (liked) or decrements (unliked, floored at zero)
	// the like count of an image, creating the row on first touch.
	ApplyLike(ctx context.Context, key string, liked bool) (model.LikeTally, error)

	// AddComment appends a visitor comment and returns the image's comment
	// count after the insert.
	AddComment(ctx context.Context, key string, c model.Comment) (int, error)

	// Stats aggregates the mirror across all images.
	Stats(ctx context.Context) (model.InteractionStats, error)
}

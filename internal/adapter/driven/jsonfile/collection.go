package jsonfile

import (
	"context"
	"fmt"

	"github.com/tashu/studio/internal/domain/model"
	"github.com/tashu/studio/internal/domain/port/driven"
)

// Collection is the file-backed implementation of driven.CollectionStore.
// Each operation re-reads the file under the collection lock; nothing is
// cached across requests.
type Collection[T driven.Record] struct {
	store *Store
	name  string
}

// NewCollection binds a typed collection to its backing file.
func NewCollection[T driven.Record](store *Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// load reads the backing file. Fail-soft: missing or corrupt files come back
// as an empty collection.
func (c *Collection[T]) load() []T {
	var recs []T
	c.store.read(c.name, &recs)
	if recs == nil {
		recs = []T{}
	}
	return recs
}

// List returns the collection in insertion order.
func (c *Collection[T]) List(_ context.Context) ([]T, error) {
	mu := c.store.lock(c.name)
	mu.Lock()
	defer mu.Unlock()
	return c.load(), nil
}

// Get returns the record with the given id, or model.ErrNotFound.
func (c *Collection[T]) Get(_ context.Context, id string) (*T, error) {
	mu := c.store.lock(c.name)
	mu.Lock()
	defer mu.Unlock()

	recs := c.load()
	for i := range recs {
		if recs[i].RecordID() == id {
			return &recs[i], nil
		}
	}
	return nil, model.ErrNotFound
}

// Append adds rec to the end of the collection and persists it.
func (c *Collection[T]) Append(_ context.Context, rec T) error {
	mu := c.store.lock(c.name)
	mu.Lock()
	defer mu.Unlock()

	recs := append(c.load(), rec)
	if err := c.store.write(c.name, recs); err != nil {
		return fmt.Errorf("append to %s: %w", c.name, err)
	}
	return nil
}

// Update mutates the record with the given id in place and persists the
// collection.
func (c *Collection[T]) Update(_ context.Context, id string, mutate func(*T)) (*T, error) {
	mu := c.store.lock(c.name)
	mu.Lock()
	defer mu.Unlock()

	recs := c.load()
	for i := range recs {
		if recs[i].RecordID() != id {
			continue
		}
		mutate(&recs[i])
		if err := c.store.write(c.name, recs); err != nil {
			return nil, fmt.Errorf("update %s: %w", c.name, err)
		}
		return &recs[i], nil
	}
	return nil, model.ErrNotFound
}

// Delete removes the record with the given id and persists the collection.
func (c *Collection[T]) Delete(_ context.Context, id string) error {
	mu := c.store.lock(c.name)
	mu.Lock()
	defer mu.Unlock()

	recs := c.load()
	for i := range recs {
		if recs[i].RecordID() != id {
			continue
		}
		recs = append(recs[:i], recs[i+1:]...)
		if err := c.store.write(c.name, recs); err != nil {
			return fmt.Errorf("delete from %s: %w", c.name, err)
		}
		return nil
	}
	return model.ErrNotFound
}

// ReplaceAll swaps the whole collection for recs.
func (c *Collection[T]) ReplaceAll(_ context.Context, recs []T) error {
	mu := c.store.lock(c.name)
	mu.Lock()
	defer mu.Unlock()

	if recs == nil {
		recs = []T{}
	}
	if err := c.store.write(c.name, recs); err != nil {
		return fmt.Errorf("replace %s: %w", c.name, err)
	}
	return nil
}

// Compile-time interface satisfaction check.
var _ driven.CollectionStore[model.PortfolioItem] = (*Collection[model.PortfolioItem])(nil)

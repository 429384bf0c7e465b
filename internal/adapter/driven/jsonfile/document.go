package jsonfile

import (
	"context"
	"fmt"

	"github.com/tashu/studio/internal/domain/model"
	"github.com/tashu/studio/internal/domain/port/driven"
)

// Document is the file-backed implementation of driven.DocumentStore for
// singleton documents (about, settings).
type Document[T any] struct {
	store *Store
	name  string
}

// NewDocument binds a typed singleton document to its backing file.
func NewDocument[T any](store *Store, name string) *Document[T] {
	return &Document[T]{store: store, name: name}
}

// Get returns the stored document; a missing or corrupt file yields the zero
// value.
func (d *Document[T]) Get(_ context.Context) (T, error) {
	mu := d.store.lock(d.name)
	mu.Lock()
	defer mu.Unlock()

	var doc T
	d.store.read(d.name, &doc)
	return doc, nil
}

// Update applies mutate to the stored document and persists the result.
func (d *Document[T]) Update(_ context.Context, mutate func(*T)) (T, error) {
	mu := d.store.lock(d.name)
	mu.Lock()
	defer mu.Unlock()

	var doc T
	d.store.read(d.name, &doc)
	mutate(&doc)
	if err := d.store.write(d.name, doc); err != nil {
		return doc, fmt.Errorf("update document %s: %w", d.name, err)
	}
	return doc, nil
}

// Put replaces the stored document wholesale.
func (d *Document[T]) Put(_ context.Context, doc T) error {
	mu := d.store.lock(d.name)
	mu.Lock()
	defer mu.Unlock()

	if err := d.store.write(d.name, doc); err != nil {
		return fmt.Errorf("put document %s: %w", d.name, err)
	}
	return nil
}

var _ driven.DocumentStore[model.AboutDocument] = (*Document[model.AboutDocument])(nil)

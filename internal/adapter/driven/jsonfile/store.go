// Package jsonfile persists each content collection as one pretty-printed
// JSON file. It is the sole persistence mechanism for content: arrays for
// list collections, objects for singleton documents. There is no database
// underneath; a per-collection mutex serializes load-modify-save sequences
// for the single-admin workload this store is built for.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
)

// Store is the file-backed record store. Collections are named without the
// .json suffix ("portfolio", "messages", ...).
type Store struct {
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates the data directory if needed and returns a Store rooted
// there.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	return &Store{
		dir:    dir,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}, nil
}

// lock returns the mutex guarding one collection, creating it on first use.
func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	mu, ok := s.locks[name]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[name] = mu
	}
	return mu
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// read unmarshals a collection file into v. Reads are fail-soft: a missing or
// unparseable file leaves v at its zero value so the store self-initializes
// instead of taking the site down over one corrupt file.
func (s *Store) read(name string, v any) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read collection failed, serving zero value", "collection", name, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("parse collection failed, serving zero value", "collection", name, "error", err)
	}
}

// write serializes v human-readably and replaces the collection file via a
// temp file and rename, so a crash mid-write cannot leave a torn file.
func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %q: %w", name, err)
	}
	data = append(data, '\n')
	if err := atomic.WriteFile(s.path(name), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write collection %q: %w", name, err)
	}
	return nil
}

// Exists reports whether a collection file is present on disk.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

package jsonfile

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return store
}

func TestStore_ReadMissingFileYieldsZeroValue(t *testing.T) {
	store := newTestStore(t)

	var list []string
	store.read("portfolio", &list)
	assert.Nil(t, list)

	var doc map[string]string
	store.read("about", &doc)
	assert.Nil(t, doc)
}

func TestStore_ReadCorruptFileYieldsZeroValue(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.path("portfolio"), []byte("{not json"), 0o644))

	var list []string
	store.read("portfolio", &list)
	assert.Nil(t, list)
}

func TestStore_WriteThenReadRoundTrips(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.write("skills", []string{"a", "b"}))

	var got []string
	store.read("skills", &got)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestStore_WriteIsPrettyPrinted(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.write("skills", map[string]int{"level": 90}))

	data, err := os.ReadFile(store.path("skills"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\n  "), "expected indented output, got %q", data)
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

func TestStore_WriteOverwritesInFull(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.write("skills", []string{"a", "b", "c"}))
	require.NoError(t, store.write("skills", []string{"z"}))

	var got []string
	store.read("skills", &got)
	assert.Equal(t, []string{"z"}, got)
}

func TestNewStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewStore(dir, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_Exists(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.Exists("portfolio"))
	require.NoError(t, store.write("portfolio", []string{}))
	assert.True(t, store.Exists("portfolio"))
}

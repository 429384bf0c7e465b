package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionsAreNonEmpty(t *testing.T) {
	assert.Len(t, Services(), 6)
	assert.Len(t, Skills(), 8)
	assert.Len(t, Portfolio(), 8)
	assert.Len(t, Stories(), 5)
	assert.NotEmpty(t, About().Name)
	assert.NotEmpty(t, Settings().StoriesHeading)
}

func TestCallersGetFreshCopies(t *testing.T) {
	first := Services()
	require.NotEmpty(t, first)
	first[0].Name = "mutated"

	second := Services()
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestRecordIDsAreUniqueAndStable(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Services() {
		assert.False(t, seen[s.ID], "duplicate id %q", s.ID)
		seen[s.ID] = true
	}
	for _, s := range Skills() {
		assert.False(t, seen[s.ID], "duplicate id %q", s.ID)
		seen[s.ID] = true
	}
	for _, p := range Portfolio() {
		assert.False(t, seen[p.ID], "duplicate id %q", p.ID)
		seen[p.ID] = true
	}
	for _, s := range Stories() {
		assert.False(t, seen[s.ID], "duplicate id %q", s.ID)
		seen[s.ID] = true
	}

	assert.Equal(t, Portfolio(), Portfolio(), "seed data is deterministic")
}

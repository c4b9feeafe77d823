package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	exercises := Seed()

	require.Len(t, exercises, 12)
	assert.Equal(t, SeedSize(), len(exercises))

	seen := make(map[string]struct{}, len(exercises))
	for _, e := range exercises {
		assert.Equal(t, SeedID(e.Name), e.ID)
		assert.NotEmpty(t, e.Instructions)
		assert.True(t, e.Difficulty.IsValid(), e.Name)

		_, dup := seen[e.ID]
		assert.False(t, dup, "duplicate seed id %s", e.ID)
		seen[e.ID] = struct{}{}
	}
}

func TestSeed_ReturnsCopies(t *testing.T) {
	first := Seed()
	first[0].Name = "mutated"
	first[0].Instructions[0] = "mutated"

	second := Seed()
	assert.NotEqual(t, "mutated", second[0].Name)
	assert.NotEqual(t, "mutated", second[0].Instructions[0])

	found, ok := FindSeed(second[0].ID)
	require.True(t, ok)
	found.Instructions[0] = "mutated"

	again, _ := FindSeed(second[0].ID)
	assert.NotEqual(t, "mutated", again.Instructions[0])
}

func TestSeedID_IsStable(t *testing.T) {
	assert.Equal(t, SeedID("Agachamento Livre"), SeedID("Agachamento Livre"))
	assert.NotEqual(t, SeedID("Agachamento Livre"), SeedID("Flexão de Braço"))

	_, ok := FindSeed("unknown")
	assert.False(t, ok)
}

package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedEmbedded(t *testing.T) {
	t.Parallel()

	seed, err := LoadSeed("")
	require.NoError(t, err)
	require.Len(t, seed.Plants, 6)
	assert.Equal(t, "Neem", seed.Plants[2].BotanicalName)
	assert.Equal(t, []string{"Plant seeds or saplings", "Water occasionally", "Prune regularly"}, seed.Plants[2].CultivationSteps)
	assert.Len(t, seed.Remedies, 3)
	assert.Len(t, seed.Articles, 2)
	assert.Contains(t, seed.Articles[0].Content, "**What is Chaas?**")
	assert.Len(t, seed.Doctors, 6)
	assert.NotEmpty(t, seed.Bookings)

	seen := map[string]bool{}
	for _, d := range seed.Doctors {
		assert.False(t, seen[d.ID], "duplicate doctor id %s", d.ID)
		seen[d.ID] = true
	}
}

func TestLoadSeedFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plants:\n  - plant_id: 9\n    botanical_name: Ginger\n"), 0o644))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Plants, 1)
	assert.Equal(t, "Ginger", seed.Plants[0].BotanicalName)
	assert.Empty(t, seed.Doctors)
}

func TestParseSeedRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := ParseSeed([]byte("plants:\n  - plant_id: 1\n    uses: [a]\n"))
	require.Error(t, err)

	seed, err := ParseSeed(nil)
	require.NoError(t, err)
	assert.Empty(t, seed.Plants)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

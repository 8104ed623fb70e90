package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayurconnect/catalog"
	"ayurconnect/models"
)

func TestSelectionKeepsAtMostOneItem(t *testing.T) {
	t.Parallel()

	plants := samplePlants()
	var sel catalog.Selection[models.Plant]

	_, ok := sel.Current()
	require.False(t, ok)

	sel.Select(plants[0])
	sel.Select(plants[1])
	current, ok := sel.Current()
	require.True(t, ok)
	assert.Equal(t, plants[1], current)
}

func TestSelectionClear(t *testing.T) {
	t.Parallel()

	var sel catalog.Selection[models.Plant]
	sel.Clear()
	_, ok := sel.Current()
	assert.False(t, ok)

	sel.Select(samplePlants()[2])
	sel.Clear()
	current, ok := sel.Current()
	assert.False(t, ok)
	assert.Zero(t, current)

	sel.Clear()
	_, ok = sel.Current()
	assert.False(t, ok)
}

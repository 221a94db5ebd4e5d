package cart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decoriva-server/models"
)

func testService(id uint, cost float64) models.Service {
	return models.Service{ID: id, Name: "Service", Category: "Wedding", Cost: cost}
}

func TestAddRejectsDuplicates(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "cart.json"))

	added, err := c.Add(ItemFromService(testService(1, 500)))
	require.NoError(t, err)
	assert.True(t, added)

	added, err = c.Add(ItemFromService(testService(1, 500)))
	require.NoError(t, err)
	assert.False(t, added, "second add of the same service is refused")
	assert.Equal(t, 1, c.Len())
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "cart.json"))
	_, err := c.Add(ItemFromService(testService(1, 500)))
	require.NoError(t, err)

	require.NoError(t, c.Remove(1))
	require.NoError(t, c.Remove(1), "removing an absent id is not an error")
	require.NoError(t, c.Remove(42))
	assert.Zero(t, c.Len())
}

func TestTotalTracksEntries(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "cart.json"))

	_, err := c.Add(ItemFromService(testService(1, 500)))
	require.NoError(t, err)
	_, err = c.Add(ItemFromService(testService(2, 1250.50)))
	require.NoError(t, err)
	assert.InDelta(t, 1750.50, c.Total(), 0.001)

	require.NoError(t, c.Remove(1))
	assert.InDelta(t, 1250.50, c.Total(), 0.001)

	require.NoError(t, c.Clear())
	assert.Zero(t, c.Total())
}

func TestSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	c := Load(path)
	_, err := c.Add(ItemFromService(testService(1, 500)))
	require.NoError(t, err)
	_, err = c.Add(ItemFromService(testService(2, 300)))
	require.NoError(t, err)

	reloaded := Load(path)
	assert.Equal(t, 2, reloaded.Len())
	assert.InDelta(t, 800, reloaded.Total(), 0.001)

	// A duplicate is still refused after reload.
	added, err := reloaded.Add(ItemFromService(testService(2, 300)))
	require.NoError(t, err)
	assert.False(t, added)
}

func TestMissingFileLoadsEmpty(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Zero(t, c.Len())
	assert.Zero(t, c.Total())
}

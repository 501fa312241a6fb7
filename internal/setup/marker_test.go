package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerLifecycle(t *testing.T) {
	m := NewMarker(filepath.Join(t.TempDir(), ".tactical_puzzles_configured"))
	assert.False(t, m.Exists())

	runID, err := m.Create()
	require.NoError(t, err)
	assert.NotEmpty(t, runID)
	assert.True(t, m.Exists())

	body, err := os.ReadFile(m.Path())
	require.NoError(t, err)
	assert.Contains(t, string(body), "configured successfully")
	assert.Contains(t, string(body), runID)

	require.NoError(t, m.Remove())
	assert.False(t, m.Exists())
}

func TestMarkerRemoveMissingIsNoError(t *testing.T) {
	m := NewMarker(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, m.Remove())
}

func TestMarkerCreateOverwrites(t *testing.T) {
	m := NewMarker(filepath.Join(t.TempDir(), "marker"))

	first, err := m.Create()
	require.NoError(t, err)
	second, err := m.Create()
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "each run gets its own identifier")

	body, err := os.ReadFile(m.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(body), first)
}

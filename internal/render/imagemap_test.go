// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMap(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadImageMapJSON(t *testing.T) {
	m, err := LoadImageMap(writeMap(t, "map.json", `{"1": "setup.png", "3": "plot.jpg"}`))
	require.NoError(t, err)

	name, ok := m.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "setup.png", name)

	name, ok = m.Lookup(3)
	assert.True(t, ok)
	assert.Equal(t, "plot.jpg", name)

	_, ok = m.Lookup(2)
	assert.False(t, ok)
}

func TestLoadImageMapYAML(t *testing.T) {
	// YAML keys parse as integers; loading normalizes them to strings so
	// both spellings resolve.
	m, err := LoadImageMap(writeMap(t, "map.yaml", "1: setup.png\n\"2\": plot.jpg\n"))
	require.NoError(t, err)

	name, ok := m.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "setup.png", name)

	name, ok = m.Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, "plot.jpg", name)
}

func TestLoadImageMapErrors(t *testing.T) {
	_, err := LoadImageMap(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading image map")

	_, err = LoadImageMap(writeMap(t, "bad.json", "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing image map")
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("images", "a.png"), resolvePath("a.png", "images"))
	abs := filepath.Join(string(filepath.Separator), "data", "a.png")
	assert.Equal(t, abs, resolvePath(abs, "images"))
}

package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/covergen/internal/cover"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDirMissingFilesAreSkipped(t *testing.T) {
	added, err := LoadDir(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestLoadDirRegistersValidEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gradients.yaml", `
gradients:
  - id: loader-test-lava
    name: Lava
    colors: ["#ff0000", "#ffaa00"]
    category: warm
`)
	writeFile(t, dir, "sizes.yaml", `
sizes:
  - id: loader-test-banner
    name: Banner
    width: 800
    height: 200
    category: web
`)

	added, err := LoadDir(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	g := cover.LookupGradient("loader-test-lava")
	assert.Equal(t, []string{"#ff0000", "#ffaa00"}, g.Colors)
	s := cover.LookupSize("loader-test-banner")
	assert.Equal(t, 800, s.Width)
}

func TestLoadDirSkipsInvalidEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gradients.yaml", `
gradients:
  - id: ""
    colors: ["#ff0000", "#00ff00"]
  - id: only-one-color
    colors: ["#ff0000"]
  - id: bad-hex
    colors: ["red", "blue"]
  - id: loader-test-ok
    colors: ["#111111", "#222222"]
`)
	added, err := LoadDir(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, "loader-test-ok", cover.LookupGradient("loader-test-ok").ID)
}

func TestLoadDirMalformedYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gradients.yaml", "gradients: [}{")
	_, err := LoadDir(dir, nil)
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pefman/dicebox/internal/engine"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dicebox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	sc, err := cfg.SettleConfig()
	require.NoError(t, err)
	assert.Equal(t, engine.SettleByDelta, sc.Policy)

	faces, err := cfg.FaceValues()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultFaceValues(), faces)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
listen: ":9000"
tick_hz: 120
dice:
  count: 5
  half_extent: 0.25
  mass: 0.5
settle:
  policy: sleep
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, 120.0, cfg.TickHz)
	assert.Equal(t, 5, cfg.Dice.Count)

	sc, err := cfg.SettleConfig()
	require.NoError(t, err)
	assert.Equal(t, engine.SettleBySleep, sc.Policy)
}

func TestLoadCustomFaces(t *testing.T) {
	path := writeConfig(t, `
dice:
  count: 1
  faces:
    up: 10
    down: 60
    forward: 20
    back: 50
    left: 40
    right: 30
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	faces, err := cfg.FaceValues()
	require.NoError(t, err)
	assert.Equal(t, 10, faces[engine.FaceUp])
	assert.Equal(t, 60, faces[engine.FaceDown])

	// and the engine accepts the result
	_, err = engine.NewFaceValueTable(faces)
	require.NoError(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, "dice:\n  count: 0\n")
	_, err := Load(path)
	assert.Error(t, err)

	path = writeConfig(t, "tick_hz: -1\n")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSettlePolicyUnknown(t *testing.T) {
	cfg := Default()
	cfg.Settle.Policy = "psychic"
	_, err := cfg.SettleConfig()
	assert.Error(t, err)
}

func TestFaceValuesUnknownName(t *testing.T) {
	cfg := Default()
	cfg.Dice.Faces = map[string]int{"sideways": 1}
	_, err := cfg.FaceValues()
	assert.Error(t, err)
}

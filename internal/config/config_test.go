package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pixmin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvFallback(t *testing.T) {
	path := writeConfig(t, "seed: 99\n")
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  cols: 30
rules:
  max_level: 3
audio:
  sfx_volume: 0.8
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.World.Cols)
	assert.Equal(t, 50, cfg.World.Rows)
	assert.Equal(t, 16, cfg.World.TileSize)
	assert.Equal(t, 3, cfg.Rules.MaxLevel)
	assert.Equal(t, 10800, cfg.Rules.DayDuration)
	assert.InDelta(t, 0.8, cfg.Audio.SFXVolume, 1e-9)
	assert.InDelta(t, 0.15, cfg.Audio.MusicVolume, 1e-9)
	assert.True(t, cfg.Audio.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "world: [not, a, map]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	_, err = Load(writeConfig(t, "audio:\n  master_volume: 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "master_volume")

	_, err = Load(writeConfig(t, "world:\n  tile_size: 0\n"))
	require.Error(t, err)
}

func TestSim_MapsRulesAndSeed(t *testing.T) {
	cfg := Default()
	cfg.Rules.MaxLevel = 2
	cfg.Viewport.Width = 640

	s := cfg.Sim(1234)
	assert.Equal(t, int64(1234), s.Seed)
	assert.Equal(t, 2, s.MaxLevel)
	assert.Equal(t, 640.0, s.ViewWidth)
	assert.Equal(t, 50, s.Cols)

	cfg.Seed = 7
	assert.Equal(t, int64(7), cfg.Sim(1234).Seed)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1200.0, cfg.Canvas.Width)
	assert.Equal(t, 800.0, cfg.Canvas.Height)
	assert.Equal(t, 12, cfg.Player.FireRate)
	assert.Equal(t, 4, cfg.Player.RapidFireRate)
	assert.Equal(t, 600, cfg.PowerUp.Duration)
	assert.Equal(t, 10, cfg.Wave.KillsPerWave)
	assert.Equal(t, 5, cfg.Wave.BossEvery)
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
powerUp:
  duration: 300
  kinds: [shield]
radius:
  enemyPlayer: 40
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.PowerUp.Duration)
	assert.Equal(t, []string{"shield"}, cfg.PowerUp.Kinds)
	assert.Equal(t, 40.0, cfg.Radius.EnemyPlayer)

	// Untouched fields keep their defaults.
	assert.Equal(t, 500, cfg.PowerUp.SpawnRate)
	assert.Equal(t, 30.0, cfg.Radius.BulletEnemy)
	assert.Equal(t, 1200.0, cfg.Canvas.Width)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "canvas: [1, 2"},
		{"zero fire rate", "player:\n  fireRate: 0\n"},
		{"negative canvas", "canvas:\n  width: -1\n"},
		{"no power-up kinds", "powerUp:\n  kinds: []\n"},
		{"margin wider than canvas", "powerUp:\n  margin: 500\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  spawnRate: 50\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Enemy.SpawnRate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CYBER_TEST_STR", "value")
	t.Setenv("CYBER_TEST_INT", "42")
	t.Setenv("CYBER_TEST_BAD_INT", "forty")
	t.Setenv("CYBER_TEST_BOOL", "true")

	assert.Equal(t, "value", GetEnv("CYBER_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CYBER_TEST_UNSET", "fallback"))

	n, err := GetEnvInt("CYBER_TEST_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = GetEnvInt("CYBER_TEST_UNSET", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = GetEnvInt("CYBER_TEST_BAD_INT", 7)
	assert.Error(t, err)

	b, err := GetEnvBool("CYBER_TEST_BOOL", false)
	require.NoError(t, err)
	assert.True(t, b)
}

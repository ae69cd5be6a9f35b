package loop

import (
	"bytes"
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/cyberattack/internal/config"
	"github.com/tomz197/cyberattack/internal/game"
	"github.com/tomz197/cyberattack/internal/input"
	"github.com/tomz197/cyberattack/internal/physics"
)

func newGame(t *testing.T, opts ...func(*config.Game)) *game.Game {
	t.Helper()
	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	g, err := game.New(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return g
}

func TestNewPublishesInitialSnapshot(t *testing.T) {
	r := New(newGame(t), Options{})

	s := r.Snapshot()
	require.NotNil(t, s)
	assert.Equal(t, game.PhaseWelcome, s.Phase)
	assert.Equal(t, 0, r.Ticks())
	assert.NotEmpty(t, r.ID().String())
}

func TestStepAppliesCommandsAndKeys(t *testing.T) {
	r := New(newGame(t), Options{})

	r.SendCommand(input.CommandStart)
	r.SendKey(input.KeyLeft, true)
	require.NoError(t, r.Step())

	s := r.Snapshot()
	assert.Equal(t, game.PhasePlaying, s.Phase)
	assert.Equal(t, 1, s.Frame)
	assert.Equal(t, physics.Vec(595, 400), s.Player.Pos)

	r.SendKey(input.KeyLeft, false)
	require.NoError(t, r.Step())
	assert.Equal(t, physics.Vec(595, 400), r.Snapshot().Player.Pos)

	r.SendKey(input.KeyPause, true)
	require.NoError(t, r.Step())
	assert.Equal(t, game.PhasePaused, r.Snapshot().Phase)
	assert.Equal(t, 2, r.Snapshot().Frame)

	r.SendKey(input.KeyMenu, true)
	r.SendKey(input.KeyMenu, false)
	require.NoError(t, r.Step())
	assert.Equal(t, game.PhaseWelcome, r.Snapshot().Phase)
	assert.Equal(t, 4, r.Ticks())
}

func TestSnapshotNotSharedBetweenTicks(t *testing.T) {
	r := New(newGame(t), Options{})
	r.SendCommand(input.CommandStart)
	require.NoError(t, r.Step())

	first := r.Snapshot()
	require.NoError(t, r.Step())
	assert.Equal(t, 1, first.Frame)
	assert.Equal(t, 2, r.Snapshot().Frame)
}

func TestSendDoesNotBlockWhenFull(t *testing.T) {
	r := New(newGame(t), Options{})
	for i := 0; i < 1000; i++ {
		r.SendCommand(input.CommandPause)
		r.SendKey(input.KeyUp, true)
	}
	require.NoError(t, r.Step())
}

func TestRunScripted(t *testing.T) {
	script, err := input.ParseScript([]byte(`
steps:
  - tick: 0
    down: [enter]
  - tick: 0
    up: [enter]
    down: [d]
  - tick: 20
    up: [d]
`))
	require.NoError(t, err)

	r := New(newGame(t), Options{MaxTicks: 50, Script: script})
	require.NoError(t, r.Run(context.Background()))

	s := r.Snapshot()
	assert.Equal(t, 50, r.Ticks())
	assert.Equal(t, 50, s.Frame)
	assert.Equal(t, physics.Vec(700, 400), s.Player.Pos)
	assert.True(t, script.Done())
}

func TestRunStopsOnGameOver(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := newGame(t, func(cfg *config.Game) {
		cfg.Player.Hearts = 1
		cfg.Enemy.Speed = 50
		cfg.Enemy.SpawnRate = 1
	})
	r := New(g, Options{MaxTicks: 10_000, StopOnGameOver: true, Logger: logger})
	r.SendCommand(input.CommandStart)

	require.NoError(t, r.Run(context.Background()))
	assert.True(t, g.GameOver())
	assert.Less(t, r.Ticks(), 10_000)
	assert.Equal(t, game.PhaseGameOver, r.Snapshot().Phase)
	assert.Equal(t, 0, r.Snapshot().Player.Hearts)
	assert.Contains(t, buf.String(), "game_over")
	assert.Contains(t, buf.String(), r.ID().String())
}

func TestRunCancelled(t *testing.T) {
	r := New(newGame(t), Options{TickTime: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, r.Run(ctx))
	assert.Equal(t, 0, r.Ticks())
}

func TestRunPaced(t *testing.T) {
	r := New(newGame(t), Options{TickTime: 2 * time.Millisecond, MaxTicks: 5})

	start := time.Now()
	require.NoError(t, r.Run(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 8*time.Millisecond)
	assert.Equal(t, 5, r.Ticks())
}

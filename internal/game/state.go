// Package game owns the world state of one run and advances it tick by tick.
package game

import (
	"fmt"

	"github.com/tomz197/cyberattack/internal/config"
	"github.com/tomz197/cyberattack/internal/object"
)

// Phase is the screen the game is on, as seen by a renderer.
type Phase int

const (
	PhaseWelcome  Phase = iota // Title screen, waiting for start
	PhasePlaying               // Active gameplay
	PhasePaused                // Gameplay frozen by the player
	PhaseGameOver              // Out of hearts, waiting for restart or menu
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Game is the aggregate root: every mutable piece of a run lives here and
// changes only inside Update or one of the command methods.
type Game struct {
	cfg    config.Game
	screen object.Screen
	rng    object.Rand
	kinds  []object.PowerUpKind // Kinds allowed to spawn

	playing  bool // false on the welcome screen
	paused   bool
	gameOver bool

	frames     int
	score      int
	highScore  int
	kills      int
	wave       int
	enemySpeed float64
	popupTimer int
	popupText  string
	effects    Effects

	player   *object.Player
	bullets  []object.Bullet
	enemies  []object.Enemy
	powerUps []object.PowerUp
	boss     *object.Boss
	intent   object.Direction
	events   []Event
}

// New creates a game on the welcome screen. rng drives every random choice,
// so a seeded source makes the whole run reproducible.
func New(cfg config.Game, rng object.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("game: nil random source")
	}

	kinds := make([]object.PowerUpKind, 0, len(cfg.PowerUp.Kinds))
	for _, name := range cfg.PowerUp.Kinds {
		k, err := object.ParsePowerUpKind(name)
		if err != nil {
			return nil, fmt.Errorf("game config: %w", err)
		}
		kinds = append(kinds, k)
	}

	g := &Game{
		cfg:    cfg,
		screen: object.Screen{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height},
		rng:    rng,
		kinds:  kinds,
	}
	g.reset()
	return g, nil
}

// Start leaves the welcome screen and begins a fresh run.
func (g *Game) Start() {
	if g.playing {
		return
	}
	g.playing = true
	g.Restart()
}

// Restart resets the run. The high score and the current screen survive.
func (g *Game) Restart() {
	g.reset()
}

// Menu abandons the run and returns to the welcome screen.
func (g *Game) Menu() {
	g.reset()
	g.playing = false
}

// TogglePause flips the pause flag. Ignored off the playing screen and while
// a wave popup is showing.
func (g *Game) TogglePause() {
	if !g.playing || g.popupTimer > 0 {
		return
	}
	g.paused = !g.paused
}

// SetIntent replaces the held movement keys. Ignored off the playing screen.
func (g *Game) SetIntent(dir object.Direction) {
	if !g.playing {
		return
	}
	g.intent = dir
}

// reset puts every run counter and collection back to its initial value.
func (g *Game) reset() {
	g.paused = false
	g.gameOver = false
	g.frames = 0
	g.score = 0
	g.kills = 0
	g.wave = 1
	g.enemySpeed = g.cfg.Enemy.Speed
	g.popupTimer = 0
	g.popupText = ""
	g.effects.Reset()
	g.player = object.NewPlayer(g.screen, g.cfg.Player.Hearts)
	g.bullets = nil
	g.enemies = nil
	g.powerUps = nil
	g.boss = nil
	g.intent = object.Direction{}
	g.events = nil
}

// Phase returns the current screen.
func (g *Game) Phase() Phase {
	switch {
	case !g.playing:
		return PhaseWelcome
	case g.gameOver:
		return PhaseGameOver
	case g.paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// Frame returns the number of gameplay ticks in the current run.
func (g *Game) Frame() int { return g.frames }

// Wave returns the current wave number.
func (g *Game) Wave() int { return g.wave }

// Score returns the current run's score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score since the process started.
func (g *Game) HighScore() int { return g.highScore }

// GameOver reports whether the player has run out of hearts.
func (g *Game) GameOver() bool { return g.gameOver }

// InBossFight reports whether a boss is active.
func (g *Game) InBossFight() bool { return g.boss != nil }

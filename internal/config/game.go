package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tick rate of the driver loop. Every game timer is counted in ticks,
// so this only affects pacing, never behaviour.
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Canvas is the playfield size.
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Player holds ship tuning.
type Player struct {
	Speed         float64 `yaml:"speed"`         // Pixels per tick per held direction
	Hearts        int     `yaml:"hearts"`        // Hearts at the start of a run
	BulletSpeed   float64 `yaml:"bulletSpeed"`   // Upward pixels per tick
	FireRate      int     `yaml:"fireRate"`      // Ticks between automatic shots
	RapidFireRate int     `yaml:"rapidFireRate"` // Ticks between shots under Rapid Fire
}

// Enemy holds regular enemy tuning.
type Enemy struct {
	Speed          float64 `yaml:"speed"`          // Initial downward pixels per tick
	SpeedGrowth    float64 `yaml:"speedGrowth"`    // Multiplier applied on wave advance and boss defeat
	SlowTimeFactor float64 `yaml:"slowTimeFactor"` // Speed multiplier while Slow Time is active
	SpawnRate      int     `yaml:"spawnRate"`      // Ticks between spawns
	Sprites        int     `yaml:"sprites"`        // Number of interchangeable sprite refs
}

// PowerUp holds power-up tuning.
type PowerUp struct {
	SpawnRate int      `yaml:"spawnRate"` // Ticks between spawns
	Duration  int      `yaml:"duration"`  // Effect length in ticks
	Margin    float64  `yaml:"margin"`    // Spawn distance kept from canvas edges
	Kinds     []string `yaml:"kinds"`     // Kinds that may spawn
}

// Wave holds progression tuning.
type Wave struct {
	KillsPerWave int `yaml:"killsPerWave"`
	BossEvery    int `yaml:"bossEvery"`  // Every n-th wave is a boss wave
	PopupTicks   int `yaml:"popupTicks"` // How long the "WAVE n" popup shows
}

// Radius holds the hit-test distances for each entity pair.
// These are design constants, not derived from sprite sizes.
type Radius struct {
	BulletEnemy      float64 `yaml:"bulletEnemy"`
	EnemyPlayer      float64 `yaml:"enemyPlayer"`
	BulletBoss       float64 `yaml:"bulletBoss"`
	BossBulletPlayer float64 `yaml:"bossBulletPlayer"`
	PowerUpPickup    float64 `yaml:"powerUpPickup"`
}

// Game is the full tunable constant set for one game instance.
type Game struct {
	Canvas  Canvas  `yaml:"canvas"`
	Player  Player  `yaml:"player"`
	Enemy   Enemy   `yaml:"enemy"`
	PowerUp PowerUp `yaml:"powerUp"`
	Wave    Wave    `yaml:"wave"`
	Radius  Radius  `yaml:"radius"`
}

// Default returns the canonical constant set.
func Default() Game {
	return Game{
		Canvas: Canvas{Width: 1200, Height: 800},
		Player: Player{
			Speed:         5,
			Hearts:        3,
			BulletSpeed:   7,
			FireRate:      12,
			RapidFireRate: 4,
		},
		Enemy: Enemy{
			Speed:          1,
			SpeedGrowth:    1.1,
			SlowTimeFactor: 0.5,
			SpawnRate:      100,
			Sprites:        4,
		},
		PowerUp: PowerUp{
			SpawnRate: 500,
			Duration:  600,
			Margin:    50,
			Kinds:     []string{"shield", "rapid_fire", "slow_time"},
		},
		Wave: Wave{
			KillsPerWave: 10,
			BossEvery:    5,
			PopupTicks:   60,
		},
		Radius: Radius{
			BulletEnemy:      30,
			EnemyPlayer:      50,
			BulletBoss:       80,
			BossBulletPlayer: 30,
			PowerUpPickup:    30,
		},
	}
}

// Load reads a YAML file and applies it on top of Default.
// Fields missing from the file keep their default values.
func Load(path string) (Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Game{}, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Game{}, fmt.Errorf("game config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Game, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Game{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every rate, duration and size is usable.
func (g Game) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("canvas.width", g.Canvas.Width)
	positive("canvas.height", g.Canvas.Height)
	positive("player.speed", g.Player.Speed)
	positive("player.hearts", float64(g.Player.Hearts))
	positive("player.bulletSpeed", g.Player.BulletSpeed)
	positive("player.fireRate", float64(g.Player.FireRate))
	positive("player.rapidFireRate", float64(g.Player.RapidFireRate))
	positive("enemy.speed", g.Enemy.Speed)
	positive("enemy.speedGrowth", g.Enemy.SpeedGrowth)
	positive("enemy.slowTimeFactor", g.Enemy.SlowTimeFactor)
	positive("enemy.spawnRate", float64(g.Enemy.SpawnRate))
	positive("enemy.sprites", float64(g.Enemy.Sprites))
	positive("powerUp.spawnRate", float64(g.PowerUp.SpawnRate))
	positive("powerUp.duration", float64(g.PowerUp.Duration))
	positive("wave.killsPerWave", float64(g.Wave.KillsPerWave))
	positive("wave.bossEvery", float64(g.Wave.BossEvery))
	positive("wave.popupTicks", float64(g.Wave.PopupTicks))
	positive("radius.bulletEnemy", g.Radius.BulletEnemy)
	positive("radius.enemyPlayer", g.Radius.EnemyPlayer)
	positive("radius.bulletBoss", g.Radius.BulletBoss)
	positive("radius.bossBulletPlayer", g.Radius.BossBulletPlayer)
	positive("radius.powerUpPickup", g.Radius.PowerUpPickup)

	if g.PowerUp.Margin < 0 || 2*g.PowerUp.Margin > g.Canvas.Width || 2*g.PowerUp.Margin > g.Canvas.Height {
		errs = append(errs, fmt.Errorf("powerUp.margin %v does not fit the canvas", g.PowerUp.Margin))
	}
	if len(g.PowerUp.Kinds) == 0 {
		errs = append(errs, errors.New("powerUp.kinds: at least one kind is required"))
	}

	return errors.Join(errs...)
}

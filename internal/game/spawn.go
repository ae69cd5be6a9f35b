package game

import (
	"fmt"

	"github.com/tomz197/cyberattack/internal/object"
)

// spawn runs the frame-count based spawners: enemies (not during a boss
// fight), power-ups, and the player's automatic fire.
func (g *Game) spawn() {
	if g.boss == nil && g.frames%g.cfg.Enemy.SpawnRate == 0 {
		g.enemies = append(g.enemies, object.NewEnemyAtTop(g.screen, g.cfg.Enemy.Sprites, g.rng))
	}
	if g.frames%g.cfg.PowerUp.SpawnRate == 0 {
		g.powerUps = append(g.powerUps, object.NewPowerUpRandom(g.screen, g.cfg.PowerUp.Margin, g.kinds, g.rng))
	}
	if g.frames%g.fireRate() == 0 {
		g.bullets = append(g.bullets, object.Bullet{Pos: g.player.MuzzlePos()})
	}
}

// fireRate is the number of ticks between shots.
func (g *Game) fireRate() int {
	if g.effects.Active(object.RapidFire) {
		return g.cfg.Player.RapidFireRate
	}
	return g.cfg.Player.FireRate
}

// spawnBoss starts a boss fight with a random boss type.
func (g *Game) spawnBoss() {
	t := object.Choice(g.rng, object.Tank, object.Shooter, object.Evader)
	boss, err := object.NewBoss(t, g.wave, g.screen)
	if err != nil {
		panic(fmt.Sprintf("spawnBoss: %v", err)) // unreachable: t comes from the closed set
	}
	g.boss = boss
	g.emit(EventBossSpawned, boss.Name)
}

func waveText(wave int) string {
	return fmt.Sprintf("WAVE %d", wave)
}

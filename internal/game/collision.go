package game

import (
	"fmt"

	"github.com/tomz197/cyberattack/internal/physics"
)

// checkBossBulletPlayerCollisions removes boss bullets that reach the player
// and applies their damage.
func (g *Game) checkBossBulletPlayerCollisions() {
	r := g.cfg.Radius.BossBulletPlayer
	for i := 0; i < len(g.boss.Bullets); {
		if g.gameOver {
			return
		}
		if physics.Within(g.boss.Bullets[i].Pos, g.player.Pos, r) {
			g.damagePlayer()
			g.boss.RemoveBullet(i)
			continue
		}
		i++
	}
}

// checkBulletBossCollisions consumes player bullets that hit the boss.
// Each hit deals one damage; once the boss falls the remaining bullets fly on.
func (g *Game) checkBulletBossCollisions() {
	r := g.cfg.Radius.BulletBoss
	defeated := false

	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if !defeated && physics.Within(b.Pos, g.boss.Pos, r) {
			defeated = g.boss.Hit(1)
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept

	if defeated {
		g.defeatBoss()
	}
}

// checkBulletEnemyCollisions pairs each enemy with the first bullet touching
// it; both are removed and the kill is scored.
func (g *Game) checkBulletEnemyCollisions() {
	r := g.cfg.Radius.BulletEnemy

	kept := g.enemies[:0]
	for _, e := range g.enemies {
		hit := -1
		for i, b := range g.bullets {
			if physics.Within(e.Pos, b.Pos, r) {
				hit = i
				break
			}
		}
		if hit < 0 {
			kept = append(kept, e)
			continue
		}
		g.bullets = append(g.bullets[:hit], g.bullets[hit+1:]...)
		g.registerKill()
	}
	g.enemies = kept
}

// checkEnemyPlayerCollisions removes enemies that ram the player.
func (g *Game) checkEnemyPlayerCollisions() {
	r := g.cfg.Radius.EnemyPlayer

	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if !g.gameOver && physics.Within(e.Pos, g.player.Pos, r) {
			g.damagePlayer()
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept
}

// checkPowerUpPickups activates and removes every power-up the player touches.
// A power-up of an unknown kind is dropped and reported.
func (g *Game) checkPowerUpPickups() error {
	r := g.cfg.Radius.PowerUpPickup
	var err error

	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		if !physics.Within(g.player.Pos, p.Pos, r) {
			kept = append(kept, p)
			continue
		}
		if activateErr := g.effects.Activate(p.Kind, g.cfg.PowerUp.Duration); activateErr != nil {
			if err == nil {
				err = fmt.Errorf("power-up pickup at frame %d: %w", g.frames, activateErr)
			}
			continue
		}
		g.emit(EventPowerUpCollected, p.Kind.String())
	}
	g.powerUps = kept
	return err
}

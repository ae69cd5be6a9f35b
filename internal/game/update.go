package game

import "github.com/tomz197/cyberattack/internal/object"

// Update advances the game by one tick. The phase order is part of the
// observable behaviour and must not change.
//
// The only error is an invalid power-up kind reaching pickup; running out of
// hearts is a state transition, not an error.
func (g *Game) Update() error {
	if g.gameOver || !g.playing {
		return nil
	}

	// The wave popup keeps counting down while paused so it can finish showing.
	if g.popupTimer > 0 {
		g.popupTimer--
	}
	if g.paused && g.popupTimer <= 0 {
		return nil
	}

	g.frames++

	if g.boss != nil {
		g.updateBoss()
	}

	g.effects.Tick()

	g.player.Move(g.intent, g.cfg.Player.Speed, g.screen)

	g.updateBullets()
	g.updateEnemies()

	g.checkBulletEnemyCollisions()
	g.checkEnemyPlayerCollisions()
	if err := g.checkPowerUpPickups(); err != nil {
		return err
	}

	g.spawn()
	return nil
}

// updateBullets moves player bullets up and drops those past the top edge.
func (g *Game) updateBullets() {
	kept := g.bullets[:0]
	for i := range g.bullets {
		if !g.bullets[i].Update(g.cfg.Player.BulletSpeed) {
			kept = append(kept, g.bullets[i])
		}
	}
	g.bullets = kept
}

// updateEnemies moves enemies down and drops those past the bottom edge.
func (g *Game) updateEnemies() {
	speed := g.currentEnemySpeed()
	kept := g.enemies[:0]
	for i := range g.enemies {
		if !g.enemies[i].Update(speed, g.screen) {
			kept = append(kept, g.enemies[i])
		}
	}
	g.enemies = kept
}

// currentEnemySpeed is the base enemy speed, reduced while Slow Time runs.
func (g *Game) currentEnemySpeed() float64 {
	if g.effects.Active(object.SlowTime) {
		return g.enemySpeed * g.cfg.Enemy.SlowTimeFactor
	}
	return g.enemySpeed
}

// updateBoss advances the boss and resolves hits in both directions.
func (g *Game) updateBoss() {
	g.boss.Update(object.UpdateContext{
		Screen:  g.screen,
		Rand:    g.rng,
		Bullets: g.bullets,
	})
	g.checkBossBulletPlayerCollisions()
	g.checkBulletBossCollisions()
}

// registerKill scores an enemy kill and advances the wave on every milestone.
func (g *Game) registerKill() {
	g.score++
	g.kills++
	if g.kills%g.cfg.Wave.KillsPerWave == 0 {
		g.advanceWave()
	}
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// advanceWave bumps the wave, shows the popup, and either starts a boss fight
// or raises enemy speed.
func (g *Game) advanceWave() {
	g.wave++
	g.popupText = waveText(g.wave)
	g.popupTimer = g.cfg.Wave.PopupTicks
	g.emit(EventWaveAdvanced, g.popupText)

	// A boss wave reached while a boss is still alive counts as a normal wave.
	if g.wave%g.cfg.Wave.BossEvery == 0 && g.boss == nil {
		g.spawnBoss()
		return
	}
	g.enemySpeed *= g.cfg.Enemy.SpeedGrowth
}

// defeatBoss ends the boss fight and makes the following waves harder.
func (g *Game) defeatBoss() {
	name := g.boss.Name
	g.boss = nil
	g.enemySpeed *= g.cfg.Enemy.SpeedGrowth
	g.emit(EventBossDefeated, name)
}

// damagePlayer costs one heart unless the shield is up.
func (g *Game) damagePlayer() {
	if g.effects.Active(object.Shield) || g.gameOver {
		return
	}
	last := g.player.Hit()
	g.emit(EventPlayerHit, "")
	if last {
		g.gameOver = true
		g.emit(EventGameOver, "")
	}
}

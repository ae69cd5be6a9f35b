package object

import "github.com/tomz197/cyberattack/internal/physics"

// Bullet is a shot fired by the player. It travels straight up.
type Bullet struct {
	Pos physics.Vector
}

// Update moves the bullet up by speed. Returns true once it leaves the top edge.
func (b *Bullet) Update(speed float64) (remove bool) {
	b.Pos.Y -= speed
	return b.Pos.Y < 0
}

// BossBulletSpeed is the speed of every boss projectile.
const BossBulletSpeed = 5.0

// BossBullet is a shot fired by a boss.
type BossBullet struct {
	Pos physics.Vector
	Vel physics.Vector
}

// Update integrates the bullet. Returns true once it leaves the screen.
func (b *BossBullet) Update(screen Screen) (remove bool) {
	b.Pos = b.Pos.Add(b.Vel)
	return !screen.Contains(b.Pos)
}

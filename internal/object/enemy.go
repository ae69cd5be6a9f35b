package object

import "github.com/tomz197/cyberattack/internal/physics"

// Enemy is a regular descending enemy.
type Enemy struct {
	Pos    physics.Vector
	Sprite int // Opaque sprite reference for the renderer
}

// NewEnemyAtTop creates an enemy at a random x on the top edge.
func NewEnemyAtTop(screen Screen, sprites int, r Rand) Enemy {
	return Enemy{
		Pos:    physics.Vec(float64(RandRange(r, 0, int(screen.Width))), 0),
		Sprite: r.Intn(sprites),
	}
}

// Update moves the enemy down by speed. Returns true once it passes the bottom edge.
func (e *Enemy) Update(speed float64, screen Screen) (remove bool) {
	e.Pos.Y += speed
	return e.Pos.Y > screen.Height
}

package object

import "github.com/tomz197/cyberattack/internal/physics"

// Player animation runs an 8-frame cycle, advancing every 5 moving ticks.
const (
	PlayerFrames     = 8
	playerFrameTicks = 5
	playerIdleFrame  = 1
)

// Direction is the set of held movement keys.
type Direction struct {
	Up, Down, Left, Right bool
}

// Moving reports whether any direction is held.
func (d Direction) Moving() bool {
	return d.Up || d.Down || d.Left || d.Right
}

// Player is the player-controlled ship.
type Player struct {
	Pos    physics.Vector // Center of the ship
	Size   physics.Vector
	Hearts int
	Frame  int // Animation frame in [0, PlayerFrames)

	frameCounter int
}

// NewPlayer creates a ship at the center of the screen.
func NewPlayer(screen Screen, hearts int) *Player {
	return &Player{
		Pos:    screen.Center(),
		Size:   physics.Vec(100, 100),
		Hearts: hearts,
	}
}

// Move shifts the ship by speed along every held direction and clamps it to
// the screen. Diagonals are not normalised, so they cover more ground per tick.
func (p *Player) Move(dir Direction, speed float64, screen Screen) {
	var movement physics.Vector
	if dir.Up {
		movement.Y -= speed
	}
	if dir.Down {
		movement.Y += speed
	}
	if dir.Left {
		movement.X -= speed
	}
	if dir.Right {
		movement.X += speed
	}
	p.Pos = screen.Clamp(p.Pos.Add(movement))

	if !dir.Moving() {
		p.Frame = playerIdleFrame
		p.frameCounter = 0
		return
	}
	p.frameCounter++
	if p.frameCounter%playerFrameTicks == 0 {
		p.Frame = (p.Frame + 1) % PlayerFrames
	}
}

// Hit removes one heart. Returns true only on the hit that takes the last heart.
func (p *Player) Hit() bool {
	if p.Hearts <= 0 {
		return false
	}
	p.Hearts--
	return p.Hearts == 0
}

// Alive reports whether the ship has hearts left.
func (p *Player) Alive() bool {
	return p.Hearts > 0
}

// MuzzlePos is where new bullets appear: the top edge of the ship.
func (p *Player) MuzzlePos() physics.Vector {
	return physics.Vec(p.Pos.X, p.Pos.Y-p.Size.Y/2)
}

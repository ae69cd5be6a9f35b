// Package object holds the game entities and their per-tick behaviour.
package object

import "github.com/tomz197/cyberattack/internal/physics"

// Rand is the randomness source entities consume.
// *math/rand.Rand satisfies it; tests inject seeded or scripted sources.
type Rand interface {
	Intn(n int) int
}

// RandRange returns a uniformly chosen integer in [lo, hi].
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Choice returns one of opts chosen by r.
func Choice[T any](r Rand, opts ...T) T {
	return opts[r.Intn(len(opts))]
}

// Screen is the playfield size in canvas pixels.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the playfield.
func (s Screen) Center() physics.Vector {
	return physics.Vec(s.Width/2, s.Height/2)
}

// Clamp pulls p inside [0,Width]×[0,Height].
func (s Screen) Clamp(p physics.Vector) physics.Vector {
	return physics.Vec(clamp(p.X, 0, s.Width), clamp(p.Y, 0, s.Height))
}

// Contains reports whether p lies on the playfield, edges included.
func (s Screen) Contains(p physics.Vector) bool {
	return p.X >= 0 && p.X <= s.Width && p.Y >= 0 && p.Y <= s.Height
}

// UpdateContext provides what an entity needs during update.
type UpdateContext struct {
	Screen  Screen
	Rand    Rand
	Bullets []Bullet // Player bullets currently in flight
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package physics

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned when a vector is divided by zero.
var ErrDivisionByZero = errors.New("physics: vector division by zero")

// Vector is a 2D position or velocity. Methods return new values;
// callers integrate in place by assigning fields directly.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div returns v / s, or ErrDivisionByZero when s is zero.
func (v Vector) Div(s float64) (Vector, error) {
	if s == 0 {
		return Vector{}, ErrDivisionByZero
	}
	return Vector{X: v.X / s, Y: v.Y / s}, nil
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector) DistanceTo(o Vector) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}

// Length returns the magnitude of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Point returns the plain coordinate pair handed to renderers.
func (v Vector) Point() (float64, float64) {
	return v.X, v.Y
}

// Package physics provides vector math, distance utilities and the
// distance-threshold collision test shared by every entity pair.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Within reports whether a and b are strictly closer than radius.
// Every pairwise hit test in the game goes through here, each call site
// passing its own radius constant.
func Within(a, b Vector, radius float64) bool {
	if radius <= 0 {
		return false
	}
	return DistanceSquared(a.X, a.Y, b.X, b.Y) < radius*radius
}

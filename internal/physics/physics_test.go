package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vec(3, 4)
	b := Vec(1, -2)

	assert.Equal(t, Vec(4, 2), a.Add(b))
	assert.Equal(t, Vec(2, 6), a.Sub(b))
	assert.Equal(t, Vec(6, 8), a.Scale(2))
	assert.Equal(t, 5.0, a.Length())
	assert.Equal(t, Vec(3, 4), a, "operations must not mutate the receiver")

	x, y := a.Point()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestVectorDiv(t *testing.T) {
	v, err := Vec(10, -4).Div(2)
	require.NoError(t, err)
	assert.Equal(t, Vec(5, -2), v)

	_, err = Vec(1, 1).Div(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
	assert.Equal(t, 25.0, DistanceSquared(0, 0, 3, 4))
	assert.Equal(t, 5.0, Vec(1, 1).DistanceTo(Vec(4, 5)))
}

func TestWithin(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vector
		radius float64
		want   bool
	}{
		{"same point", Vec(10, 10), Vec(10, 10), 30, true},
		{"inside", Vec(0, 0), Vec(29, 0), 30, true},
		{"exactly on radius is a miss", Vec(0, 0), Vec(30, 0), 30, false},
		{"diagonal inside", Vec(0, 0), Vec(30, 40), 50.5, true},
		{"diagonal outside", Vec(0, 0), Vec(30, 40), 50, false},
		{"zero radius", Vec(0, 0), Vec(0, 0), 0, false},
		{"negative radius", Vec(0, 0), Vec(1, 0), -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Within(tt.a, tt.b, tt.radius))
		})
	}
}

func TestWithinIsSymmetric(t *testing.T) {
	points := []Vector{Vec(0, 0), Vec(600, 400), Vec(612.5, 371), Vec(-3, 799), Vec(1200, 0)}
	radii := []float64{1, 30, 50, 80, math.MaxFloat32}

	for _, a := range points {
		for _, b := range points {
			for _, r := range radii {
				assert.Equal(t, Within(a, b, r), Within(b, a, r), "a=%v b=%v r=%v", a, b, r)
			}
		}
	}
}

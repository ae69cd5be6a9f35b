package object

import (
	"errors"
	"fmt"

	"github.com/tomz197/cyberattack/internal/physics"
)

// ErrUnknownPowerUpKind is returned when parsing a power-up name outside the closed set.
var ErrUnknownPowerUpKind = errors.New("unknown power-up kind")

// PowerUpKind identifies a timed effect granted on pickup.
type PowerUpKind int

const (
	Shield PowerUpKind = iota
	RapidFire
	SlowTime

	// NumPowerUpKinds is the size of the closed set, for array-indexed tables.
	NumPowerUpKinds = 3
)

var powerUpNames = [NumPowerUpKinds]string{
	Shield:    "shield",
	RapidFire: "rapid_fire",
	SlowTime:  "slow_time",
}

// Valid reports whether k is one of the known kinds.
func (k PowerUpKind) Valid() bool {
	return k >= 0 && k < NumPowerUpKinds
}

func (k PowerUpKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("PowerUpKind(%d)", int(k))
	}
	return powerUpNames[k]
}

// MarshalText encodes the kind by name.
func (k PowerUpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParsePowerUpKind maps a config name to its kind.
func ParsePowerUpKind(name string) (PowerUpKind, error) {
	for k, n := range powerUpNames {
		if n == name {
			return PowerUpKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPowerUpKind, name)
}

// PowerUp is a collectible lying on the playfield. It never expires.
type PowerUp struct {
	Kind PowerUpKind
	Pos  physics.Vector
}

// NewPowerUpRandom places a power-up of a random kind from kinds, keeping
// margin pixels away from every edge.
func NewPowerUpRandom(screen Screen, margin float64, kinds []PowerUpKind, r Rand) PowerUp {
	x := RandRange(r, int(margin), int(screen.Width-margin))
	y := RandRange(r, int(margin), int(screen.Height-margin))
	return PowerUp{
		Kind: Choice(r, kinds...),
		Pos:  physics.Vec(float64(x), float64(y)),
	}
}

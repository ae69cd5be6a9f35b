package game

import (
	"errors"
	"fmt"

	"github.com/tomz197/cyberattack/internal/object"
)

// ErrInvalidEffectKind is returned when activating a kind outside the closed power-up set.
var ErrInvalidEffectKind = errors.New("invalid effect kind")

// Effects tracks the remaining ticks of every timed power-up effect.
// An effect is active exactly while its counter is above zero.
type Effects struct {
	remaining [object.NumPowerUpKinds]int
}

// Activate starts (or refreshes) kind for duration ticks.
func (e *Effects) Activate(kind object.PowerUpKind, duration int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidEffectKind, kind)
	}
	e.remaining[kind] = max(duration, 0)
	return nil
}

// Tick counts every running effect down by one.
func (e *Effects) Tick() {
	for k := range e.remaining {
		if e.remaining[k] > 0 {
			e.remaining[k]--
		}
	}
}

// Active reports whether kind is running.
func (e *Effects) Active(kind object.PowerUpKind) bool {
	return kind.Valid() && e.remaining[kind] > 0
}

// Remaining returns the ticks left on kind.
func (e *Effects) Remaining(kind object.PowerUpKind) int {
	if !kind.Valid() {
		return 0
	}
	return e.remaining[kind]
}

// Reset stops every effect.
func (e *Effects) Reset() {
	e.remaining = [object.NumPowerUpKinds]int{}
}

// Package input turns key presses and releases into movement intent and
// discrete game commands.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomz197/cyberattack/internal/object"
)

// ErrUnknownKey is returned for a key name with no binding.
var ErrUnknownKey = errors.New("unknown key")

// Intent is the set of held movement keys.
type Intent = object.Direction

// Key is a bound key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyRestart
	KeyMenu
	KeyStart
)

// keyNames maps every accepted name to its key. Arrow names alias WASD.
var keyNames = map[string]Key{
	"w":      KeyUp,
	"up":     KeyUp,
	"s":      KeyDown,
	"down":   KeyDown,
	"a":      KeyLeft,
	"left":   KeyLeft,
	"d":      KeyRight,
	"right":  KeyRight,
	"p":      KeyPause,
	"r":      KeyRestart,
	"m":      KeyMenu,
	"enter":  KeyStart,
	"return": KeyStart,
	"space":  KeyStart,
}

// ParseKey resolves a key name, case-insensitively.
func ParseKey(name string) (Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "w"
	case KeyDown:
		return "s"
	case KeyLeft:
		return "a"
	case KeyRight:
		return "d"
	case KeyPause:
		return "p"
	case KeyRestart:
		return "r"
	case KeyMenu:
		return "m"
	case KeyStart:
		return "enter"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// Command is a discrete action sent to the game.
type Command int

const (
	CommandStart   Command = iota // Leave the welcome screen
	CommandPause                  // Toggle pause
	CommandRestart                // Restart the run
	CommandMenu                   // Back to the welcome screen
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandPause:
		return "pause"
	case CommandRestart:
		return "restart"
	case CommandMenu:
		return "menu"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// State tracks held movement keys across press and release events.
type State struct {
	Intent Intent
}

// Press records a key going down. Pause and start fire on press.
func (s *State) Press(k Key) (Command, bool) {
	switch k {
	case KeyUp:
		s.Intent.Up = true
	case KeyDown:
		s.Intent.Down = true
	case KeyLeft:
		s.Intent.Left = true
	case KeyRight:
		s.Intent.Right = true
	case KeyPause:
		return CommandPause, true
	case KeyStart:
		return CommandStart, true
	}
	return 0, false
}

// Release records a key going up. Restart and menu fire on release.
func (s *State) Release(k Key) (Command, bool) {
	switch k {
	case KeyUp:
		s.Intent.Up = false
	case KeyDown:
		s.Intent.Down = false
	case KeyLeft:
		s.Intent.Left = false
	case KeyRight:
		s.Intent.Right = false
	case KeyRestart:
		return CommandRestart, true
	case KeyMenu:
		return CommandMenu, true
	}
	return 0, false
}

// Clear releases every movement key without firing commands.
func (s *State) Clear() {
	s.Intent = Intent{}
}

package input

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Step is one entry of a script: keys pressed and released on a tick.
// Presses are applied before releases.
type Step struct {
	Tick int      `yaml:"tick"`
	Down []string `yaml:"down,omitempty"`
	Up   []string `yaml:"up,omitempty"`

	down []Key
	up   []Key
}

// Script replays a fixed timeline of key events, one tick at a time.
type Script struct {
	Steps []Step `yaml:"steps"`

	next int
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML script, resolves every key name and orders the
// steps by tick. Steps sharing a tick keep their file order.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i := range s.Steps {
		step := &s.Steps[i]
		if step.Tick < 0 {
			return nil, fmt.Errorf("step %d: negative tick %d", i, step.Tick)
		}
		var err error
		if step.down, err = parseKeys(step.Down); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if step.up, err = parseKeys(step.Up); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	slices.SortStableFunc(s.Steps, func(a, b Step) int { return a.Tick - b.Tick })
	return &s, nil
}

func parseKeys(names []string) ([]Key, error) {
	keys := make([]Key, 0, len(names))
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Apply feeds every step due at or before tick into state and returns the
// commands they fire, in order. Each step is applied once.
func (s *Script) Apply(tick int, state *State) []Command {
	var cmds []Command
	for ; s.next < len(s.Steps) && s.Steps[s.next].Tick <= tick; s.next++ {
		step := s.Steps[s.next]
		for _, k := range step.down {
			if c, ok := state.Press(k); ok {
				cmds = append(cmds, c)
			}
		}
		for _, k := range step.up {
			if c, ok := state.Release(k); ok {
				cmds = append(cmds, c)
			}
		}
	}
	return cmds
}

// Done reports whether every step has been applied.
func (s *Script) Done() bool {
	return s.next >= len(s.Steps)
}

// LastTick returns the tick of the final step, or -1 for an empty script.
func (s *Script) LastTick() int {
	if len(s.Steps) == 0 {
		return -1
	}
	return s.Steps[len(s.Steps)-1].Tick
}

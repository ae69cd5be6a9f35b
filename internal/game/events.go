package game

import "fmt"

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventWaveAdvanced EventType = iota
	EventBossSpawned
	EventBossDefeated
	EventPlayerHit
	EventPowerUpCollected
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventWaveAdvanced:
		return "wave_advanced"
	case EventBossSpawned:
		return "boss_spawned"
	case EventBossDefeated:
		return "boss_defeated"
	case EventPlayerHit:
		return "player_hit"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is a game occurrence reported to the driver.
type Event struct {
	Type   EventType
	Frame  int
	Wave   int
	Score  int
	Hearts int
	Detail string // Boss name or power-up kind, when relevant
}

// Events returns and clears the events raised since the last call.
func (g *Game) Events() []Event {
	events := g.events
	g.events = nil
	return events
}

func (g *Game) emit(t EventType, detail string) {
	g.events = append(g.events, Event{
		Type:   t,
		Frame:  g.frames,
		Wave:   g.wave,
		Score:  g.score,
		Hearts: g.player.Hearts,
		Detail: detail,
	})
}

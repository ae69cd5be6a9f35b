package game

import (
	"slices"

	"github.com/tomz197/cyberattack/internal/object"
	"github.com/tomz197/cyberattack/internal/physics"
)

// PlayerView is the renderable part of the player.
type PlayerView struct {
	Pos    physics.Vector `yaml:"pos"`
	Size   physics.Vector `yaml:"size"`
	Hearts int            `yaml:"hearts"`
	Frame  int            `yaml:"frame"`
}

// EffectView is one timed effect as shown on the HUD.
type EffectView struct {
	Active    bool `yaml:"active"`
	Remaining int  `yaml:"remaining"`
}

// BossView is the renderable part of the boss.
type BossView struct {
	Type      object.BossType  `yaml:"type"`
	Name      string           `yaml:"name"`
	State     object.BossState `yaml:"state"`
	Pos       physics.Vector   `yaml:"pos"`
	Size      physics.Vector   `yaml:"size"`
	Health    int              `yaml:"health"`
	MaxHealth int              `yaml:"maxHealth"`
	Bullets   []physics.Vector `yaml:"bullets"`
}

// HealthRatio is health over max health, in [0,1].
func (b BossView) HealthRatio() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}

// Snapshot is an immutable copy of everything a renderer needs for one frame.
type Snapshot struct {
	Phase      Phase            `yaml:"phase"`
	Frame      int              `yaml:"frame"`
	Score      int              `yaml:"score"`
	HighScore  int              `yaml:"highScore"`
	Kills      int              `yaml:"kills"`
	Wave       int              `yaml:"wave"`
	WavePopup  string           `yaml:"wavePopup,omitempty"`
	PopupTicks int              `yaml:"popupTicks"`
	Player     PlayerView       `yaml:"player"`
	Bullets    []physics.Vector `yaml:"bullets"`
	Enemies    []object.Enemy   `yaml:"enemies"`
	PowerUps   []object.PowerUp `yaml:"powerUps"`
	Boss       *BossView        `yaml:"boss,omitempty"`
	Shield     EffectView       `yaml:"shield"`
	RapidFire  EffectView       `yaml:"rapidFire"`
	SlowTime   EffectView       `yaml:"slowTime"`
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		Phase:      g.Phase(),
		Frame:      g.frames,
		Score:      g.score,
		HighScore:  g.highScore,
		Kills:      g.kills,
		Wave:       g.wave,
		PopupTicks: g.popupTimer,
		Player: PlayerView{
			Pos:    g.player.Pos,
			Size:   g.player.Size,
			Hearts: g.player.Hearts,
			Frame:  g.player.Frame,
		},
		Bullets:   make([]physics.Vector, len(g.bullets)),
		Enemies:   slices.Clone(g.enemies),
		PowerUps:  slices.Clone(g.powerUps),
		Shield:    g.effectView(object.Shield),
		RapidFire: g.effectView(object.RapidFire),
		SlowTime:  g.effectView(object.SlowTime),
	}
	if g.popupTimer > 0 {
		s.WavePopup = g.popupText
	}
	for i, b := range g.bullets {
		s.Bullets[i] = b.Pos
	}

	if g.boss != nil {
		b := g.boss
		view := &BossView{
			Type:      b.Type,
			Name:      b.Name,
			State:     b.State,
			Pos:       b.Pos,
			Size:      b.Size,
			Health:    b.Health,
			MaxHealth: b.MaxHealth,
			Bullets:   make([]physics.Vector, len(b.Bullets)),
		}
		for i, bb := range b.Bullets {
			view.Bullets[i] = bb.Pos
		}
		s.Boss = view
	}
	return s
}

func (g *Game) effectView(kind object.PowerUpKind) EffectView {
	return EffectView{Active: g.effects.Active(kind), Remaining: g.effects.Remaining(kind)}
}

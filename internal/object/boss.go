package object

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomz197/cyberattack/internal/physics"
)

// ErrUnknownBossType is returned when parsing a boss name outside the closed set.
var ErrUnknownBossType = errors.New("unknown boss type")

// BossType selects a boss's stats and attack pattern.
type BossType int

const (
	Tank    BossType = iota // Slow and tough, fires a full ring
	Shooter                 // Fires a three-way spread on a short delay
	Evader                  // Sidesteps bullets and teleports

	// NumBossTypes is the size of the closed set.
	NumBossTypes = 3
)

// BossState is the boss lifecycle phase.
type BossState int

const (
	BossEntering BossState = iota // Descending onto the screen
	BossActive                    // Patrolling and attacking
	BossDefeated                  // Health reached zero
)

// Boss movement and attack constants.
const (
	bossEntryY        = 150.0
	bossSpawnY        = -100.0
	bossPatrolSpeed   = 3.0
	bossPatrolMargin  = 100.0
	bossMaxSpeed      = 5.0
	bossMinFireDelay  = 20
	tankRingPeriod    = 180
	tankRingStep      = 30 // degrees between ring bullets
	shooterMuzzleDrop = 50.0
	evaderDodge       = 20.0
	evaderSenseY      = 150.0
	evaderSenseX      = 60.0
	evaderTeleport    = 240
	evaderBandJitter  = 50
)

type bossStats struct {
	name       string
	baseHealth int
	baseSpeed  float64
	baseDelay  int
}

var bossTable = [NumBossTypes]bossStats{
	Tank:    {name: "FIREWALL.EXE", baseHealth: 25, baseSpeed: 1, baseDelay: 90},
	Shooter: {name: "PACKET STORM", baseHealth: 20, baseSpeed: 2, baseDelay: 60},
	Evader:  {name: "GLITCH WRAITH", baseHealth: 20, baseSpeed: 2, baseDelay: 90},
}

var bossTypeNames = [NumBossTypes]string{
	Tank:    "tank",
	Shooter: "shooter",
	Evader:  "evader",
}

// Valid reports whether t is one of the known types.
func (t BossType) Valid() bool {
	return t >= 0 && t < NumBossTypes
}

func (t BossType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("BossType(%d)", int(t))
	}
	return bossTypeNames[t]
}

// MarshalText encodes the type by name.
func (t BossType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseBossType maps a name to its boss type.
func ParseBossType(name string) (BossType, error) {
	for t, n := range bossTypeNames {
		if n == name {
			return BossType(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBossType, name)
}

func (s BossState) String() string {
	switch s {
	case BossEntering:
		return "entering"
	case BossActive:
		return "active"
	case BossDefeated:
		return "defeated"
	default:
		return fmt.Sprintf("BossState(%d)", int(s))
	}
}

// MarshalText encodes the state by name.
func (s BossState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Boss is a high-health adversary fought every few waves.
type Boss struct {
	Type         BossType
	Name         string
	State        BossState
	Pos          physics.Vector
	Size         physics.Vector
	Health       int
	MaxHealth    int
	Speed        float64 // Entry descent speed
	FireDelay    int
	FireTimer    int
	PatternTimer int
	Direction    int // +1 right, -1 left
	Bullets      []BossBullet
}

// NewBoss creates a boss above the screen with stats scaled by wave.
func NewBoss(t BossType, wave int, screen Screen) (*Boss, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownBossType, t)
	}
	stats := bossTable[t]
	health := stats.baseHealth + (wave-1)*3

	return &Boss{
		Type:      t,
		Name:      stats.name,
		State:     BossEntering,
		Pos:       physics.Vec(screen.Width/2, bossSpawnY),
		Size:      physics.Vec(150, 150),
		Health:    health,
		MaxHealth: health,
		Speed:     math.Min(stats.baseSpeed+float64(wave)*0.1, bossMaxSpeed),
		FireDelay: max(stats.baseDelay-wave*2, bossMinFireDelay),
		Direction: 1,
	}, nil
}

// Update advances the boss one tick: entry descent, then patrol, the
// type-specific pattern and bullet integration.
func (b *Boss) Update(ctx UpdateContext) {
	switch b.State {
	case BossEntering:
		b.Pos.Y += b.Speed
		if b.Pos.Y >= bossEntryY {
			b.State = BossActive
		}
		return
	case BossDefeated:
		return
	}

	b.Pos.X += float64(b.Direction) * bossPatrolSpeed
	if b.Pos.X < bossPatrolMargin || b.Pos.X > ctx.Screen.Width-bossPatrolMargin {
		b.Direction = -b.Direction
	}

	if b.Type == Evader {
		b.dodge(ctx)
	}

	b.FireTimer++
	b.PatternTimer++

	switch b.Type {
	case Tank:
		if b.PatternTimer%tankRingPeriod == 0 {
			b.fireRing()
		}
	case Shooter:
		if b.FireTimer >= b.FireDelay {
			b.FireTimer = 0
			b.fireSpread()
		}
	case Evader:
		if b.PatternTimer%evaderTeleport == 0 {
			b.teleport(ctx)
		}
	}

	kept := b.Bullets[:0]
	for i := range b.Bullets {
		if !b.Bullets[i].Update(ctx.Screen) {
			kept = append(kept, b.Bullets[i])
		}
	}
	b.Bullets = kept
}

// Hit applies damage, clamping health at zero. Returns true only on the hit
// that defeats the boss.
func (b *Boss) Hit(damage int) bool {
	if b.State == BossDefeated {
		return false
	}
	b.Health -= damage
	if b.Health > 0 {
		return false
	}
	b.Health = 0
	b.State = BossDefeated
	return true
}

// RemoveBullet drops the boss bullet at index i.
func (b *Boss) RemoveBullet(i int) {
	b.Bullets = append(b.Bullets[:i], b.Bullets[i+1:]...)
}

// fireRing emits one bullet every tankRingStep degrees around the boss.
func (b *Boss) fireRing() {
	for angle := 0; angle < 360; angle += tankRingStep {
		rad := float64(angle) * math.Pi / 180
		b.Bullets = append(b.Bullets, BossBullet{
			Pos: b.Pos,
			Vel: physics.Vec(math.Cos(rad)*BossBulletSpeed, math.Sin(rad)*BossBulletSpeed),
		})
	}
}

// fireSpread emits a three-way downward spread from below the boss.
func (b *Boss) fireSpread() {
	muzzle := physics.Vec(b.Pos.X, b.Pos.Y+shooterMuzzleDrop)
	for _, dx := range []float64{-2, 0, 2} {
		b.Bullets = append(b.Bullets, BossBullet{Pos: muzzle, Vel: physics.Vec(dx, BossBulletSpeed)})
	}
}

// dodge sidesteps when any player bullet is lined up under the boss.
func (b *Boss) dodge(ctx UpdateContext) {
	for _, bullet := range ctx.Bullets {
		if math.Abs(bullet.Pos.Y-b.Pos.Y) < evaderSenseY && math.Abs(bullet.Pos.X-b.Pos.X) < evaderSenseX {
			b.Pos.X += Choice(ctx.Rand, -evaderDodge, evaderDodge)
			return
		}
	}
}

// teleport jumps to a random spot in the upper band.
func (b *Boss) teleport(ctx UpdateContext) {
	margin := int(bossPatrolMargin)
	b.Pos.X = float64(RandRange(ctx.Rand, margin, int(ctx.Screen.Width)-margin))
	b.Pos.Y = bossEntryY + float64(RandRange(ctx.Rand, -evaderBandJitter, evaderBandJitter))
}

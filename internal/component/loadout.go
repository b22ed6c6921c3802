// internal/component/loadout.go
package component

import (
	"go-too-many/internal/clock"
	"go-too-many/internal/config"
	"go-too-many/internal/defs"
)

// SecondaryKind identifies which secondary action occupies the slot.
type SecondaryKind int

const (
	SecondaryNone SecondaryKind = iota
	SecondaryGrenade
	SecondaryTeleport
)

func (k SecondaryKind) String() string {
	switch k {
	case SecondaryGrenade:
		return "grenade"
	case SecondaryTeleport:
		return "teleport"
	default:
		return "none"
	}
}

// SecondaryAction is the player's optional ability. Only one can be held;
// replacing it discards the previous action including its cooldown.
type SecondaryAction interface {
	Kind() SecondaryKind
	Cooldown() *clock.Timer
}

type GrenadeAction struct {
	CooldownDuration float64
	Radius           float64
	Timer            *clock.Timer
}

func NewGrenadeAction(t config.GrenadeTuning) *GrenadeAction {
	return &GrenadeAction{
		CooldownDuration: t.Cooldown,
		Radius:           t.Radius,
		Timer:            clock.NewCooldown(t.Cooldown),
	}
}

func (g *GrenadeAction) Kind() SecondaryKind    { return SecondaryGrenade }
func (g *GrenadeAction) Cooldown() *clock.Timer { return g.Timer }

type TeleportAction struct {
	CooldownDuration float64
	Radius           float64
	Range            float64
	Explodes         bool
	Timer            *clock.Timer
}

func NewTeleportAction(t config.TeleportTuning) *TeleportAction {
	return &TeleportAction{
		CooldownDuration: t.Cooldown,
		Radius:           t.Radius,
		Range:            t.Range,
		Timer:            clock.NewCooldown(t.Cooldown),
	}
}

func (tp *TeleportAction) Kind() SecondaryKind    { return SecondaryTeleport }
func (tp *TeleportAction) Cooldown() *clock.Timer { return tp.Timer }

// SwordParams - геометрия меча.
type SwordParams struct {
	Length     float64
	Width      float64
	SwingAngle float64 // full arc in radians
	Scale      float64
}

// Regen heals Amount every Interval seconds once Enabled.
type Regen struct {
	Enabled  bool
	Amount   uint64
	Interval float64
	Timer    *clock.Timer
}

// PerkSet records which perks are owned. Ownership is membership only.
type PerkSet map[defs.PerkKind]struct{}

func (s PerkSet) Has(k defs.PerkKind) bool {
	_, ok := s[k]
	return ok
}

func (s PerkSet) Add(k defs.PerkKind)    { s[k] = struct{}{} }
func (s PerkSet) Remove(k defs.PerkKind) { delete(s, k) }

func (s PerkSet) Clone() PerkSet {
	out := make(PerkSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Loadout is the bag of player parameters that perks mutate.
type Loadout struct {
	MaxSpeed       float64
	AttackCooldown float64
	Sword          SwordParams
	Secondary      SecondaryAction // nil when the slot is empty
	Health         Health
	Perks          PerkSet
	Retaliate      bool
	Regen          Regen

	tuning config.Tuning
}

// NewLoadout builds the starting loadout of a fresh life.
func NewLoadout(t config.Tuning) *Loadout {
	return &Loadout{
		MaxSpeed:       t.Player.MaxSpeed,
		AttackCooldown: t.Sword.AttackCooldown,
		Sword: SwordParams{
			Length:     t.Sword.Length,
			Width:      t.Sword.Width,
			SwingAngle: t.Sword.SwingAngle,
			Scale:      1,
		},
		Health: NewHealth(t.Player.MaxHealth),
		Perks:  make(PerkSet),
		Regen: Regen{
			Amount:   t.Regen.Amount,
			Interval: t.Regen.Interval,
			Timer:    clock.NewTimer(t.Regen.Interval, clock.Repeating),
		},
		tuning: t,
	}
}

// Tuning returns the defaults the loadout was created with; unlock perks
// build their actions from it.
func (l *Loadout) Tuning() config.Tuning { return l.tuning }

func (l *Loadout) SecondaryKind() SecondaryKind {
	if l.Secondary == nil {
		return SecondaryNone
	}
	return l.Secondary.Kind()
}

func (l *Loadout) Grenade() (*GrenadeAction, bool) {
	g, ok := l.Secondary.(*GrenadeAction)
	return g, ok
}

func (l *Loadout) Teleport() (*TeleportAction, bool) {
	tp, ok := l.Secondary.(*TeleportAction)
	return tp, ok
}

// TickRegen advances regeneration by dt and heals for every elapsed interval.
// Returns the amount healed.
func (l *Loadout) TickRegen(dt float64) uint64 {
	if !l.Regen.Enabled || l.Regen.Timer == nil {
		return 0
	}
	fired := l.Regen.Timer.Tick(dt)
	if fired == 0 {
		return 0
	}
	before := l.Health.Current
	l.Health.Heal(l.Regen.Amount * uint64(fired))
	return l.Health.Current - before
}

// AnimationParams are the durations perks can speed up.
type AnimationParams struct {
	SwingDuration     float64
	PutAwayDuration   float64
	ExplosionDuration float64
}

func NewAnimationParams(t config.Tuning) *AnimationParams {
	return &AnimationParams{
		SwingDuration:     t.Sword.SwingDuration,
		PutAwayDuration:   t.Sword.PutAwayDuration,
		ExplosionDuration: t.Explosion.Duration,
	}
}

// EnemyModifiers apply to every enemy on the field.
type EnemyModifiers struct {
	SpeedMultiplier float64
}

func NewEnemyModifiers() *EnemyModifiers {
	return &EnemyModifiers{SpeedMultiplier: 1}
}

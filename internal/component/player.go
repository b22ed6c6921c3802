// internal/component/player.go
package component

import (
	"go-too-many/internal/clock"
	"go-too-many/internal/types"
)

// Player хранит состояние игрока, не входящее в Loadout.
type Player struct {
	Radius float64
	// Facing follows the aim point unless an attack is in progress.
	Facing    float64
	Attacking bool
	// AttackCooldown gates new swings.
	AttackCooldown *clock.Timer
	SwordID        types.EntityID
	MoveInput      types.Vec2
	Aim            types.Vec2
}

// Sword is the player's melee weapon. It damages enemies only while Active.
type Sword struct {
	Owner     types.EntityID
	Active    bool
	BaseAngle float64 // facing at the moment the swing started
	Swing     float64 // offset from BaseAngle, driven by the swing tween
	Scale     float64
	Alpha     float64
	Length    float64
	Width     float64
}

// Explosion is a short-lived damaging area.
type Explosion struct {
	Radius float64
	Scale  float64
	Alpha  float64
}

// WorldAngle is the direction the blade points in.
func (s *Sword) WorldAngle() float64 { return s.BaseAngle + s.Swing }

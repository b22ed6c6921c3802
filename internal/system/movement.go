// internal/system/movement.go
package system

import (
	"go-too-many/internal/component"
	"go-too-many/internal/entity"
	"go-too-many/internal/types"
)

// MovementSystem turns movement intent into steering forces. The physics
// collaborator integrates them.
type MovementSystem struct {
	ecs          *entity.ECS
	physics      Physics
	playerAccel  float64
	steeringGain float64
}

func NewMovementSystem(ecs *entity.ECS, physics Physics, playerAccel, steeringGain float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, physics: physics, playerAccel: playerAccel, steeringGain: steeringGain}
}

// Update steers the player toward its input direction and every enemy
// toward the player. Entities without a body are skipped this tick.
func (s *MovementSystem) Update(playerID types.EntityID, loadout *component.Loadout, mods *component.EnemyModifiers) {
	player, ok := s.ecs.Players[playerID]
	if !ok {
		return
	}
	playerPos, ok := s.physics.Position(playerID)
	if !ok {
		return
	}

	desired := player.MoveInput.Norm().Scale(loadout.MaxSpeed)
	s.steer(playerID, desired, s.playerAccel, 1)

	if !player.Attacking {
		if aim := player.Aim.Sub(playerPos); aim.Len() > 0 {
			player.Facing = aim.Angle()
		}
	}

	for _, id := range s.ecs.SortedEnemyIDs() {
		if s.ecs.IsDespawning(id) {
			continue
		}
		enemy := s.ecs.Enemies[id]
		pos, ok := s.physics.Position(id)
		if !ok {
			continue
		}
		dir := playerPos.Sub(pos).Norm()
		desired := dir.Scale(enemy.MaxSpeed * mods.SpeedMultiplier)
		s.steer(id, desired, s.steeringGain, EnemyMass(enemy.Size))
	}
}

// steer applies a force proportional to the velocity error.
func (s *MovementSystem) steer(id types.EntityID, desired types.Vec2, gain, mass float64) {
	vel, ok := s.physics.Velocity(id)
	if !ok {
		return
	}
	_ = s.physics.SetForce(id, desired.Sub(vel).Scale(gain*mass))
}

// EnemyMass grows with area so large enemies shove small ones aside.
func EnemyMass(size float64) float64 {
	m := (size / 12) * (size / 12)
	if m < 0.5 {
		return 0.5
	}
	return m
}

// SyncPositions copies body positions into the ECS for rendering.
func (s *MovementSystem) SyncPositions() {
	for id, p := range s.ecs.Positions {
		if pos, ok := s.physics.Position(id); ok {
			p.X, p.Y = pos.X, pos.Y
		}
	}
}

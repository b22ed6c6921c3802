// internal/system/attack.go
package system

import (
	"go-too-many/internal/component"
	"go-too-many/internal/defs"
	"go-too-many/internal/entity"
	"go-too-many/internal/event"
	"go-too-many/internal/physics"
	"go-too-many/internal/tween"
	"go-too-many/internal/types"
)

// AttackSystem runs the sword: idle -> swinging (active) -> putting away ->
// idle. New swings are gated by the player's attack cooldown and by the
// previous swing having finished.
type AttackSystem struct {
	ecs        *entity.ECS
	physics    Physics
	anims      *AnimationSystem
	dispatcher *event.Dispatcher
	audio      Audio
	params     *component.AnimationParams
	volume     float64
}

func NewAttackSystem(ecs *entity.ECS, physics Physics, anims *AnimationSystem, dispatcher *event.Dispatcher,
	audio Audio, params *component.AnimationParams, volume float64) *AttackSystem {
	return &AttackSystem{
		ecs:        ecs,
		physics:    physics,
		anims:      anims,
		dispatcher: dispatcher,
		audio:      orSilent(audio),
		params:     params,
		volume:     volume,
	}
}

// SpawnSword creates the player's sword in its resting pose.
func (s *AttackSystem) SpawnSword(playerID types.EntityID, loadout *component.Loadout) types.EntityID {
	player := s.ecs.Players[playerID]
	id := s.ecs.NewEntity()
	s.ecs.Swords[id] = &component.Sword{
		Owner:     playerID,
		BaseAngle: player.Facing,
		Swing:     -loadout.Sword.SwingAngle / 2,
		Scale:     loadout.Sword.Scale,
		Alpha:     1,
		Length:    loadout.Sword.Length,
		Width:     loadout.Sword.Width,
	}
	player.SwordID = id
	s.physics.AddBody(id, s.swordBody(loadout))
	s.SyncSword(playerID, loadout)
	return id
}

func (s *AttackSystem) swordBody(loadout *component.Loadout) physics.BodyDef {
	return physics.BodyDef{
		Shape:     physics.ShapeSegment,
		Radius:    loadout.Sword.Width / 2,
		Kinematic: true,
		Sensor:    true,
	}
}

// TryAttack starts a swing if the sword is idle and the cooldown is over.
func (s *AttackSystem) TryAttack(playerID types.EntityID, loadout *component.Loadout) bool {
	player, ok := s.ecs.Players[playerID]
	if !ok || player.Attacking || !player.AttackCooldown.Ready() {
		return false
	}
	sword, ok := s.ecs.Swords[player.SwordID]
	if !ok {
		return false
	}

	player.Attacking = true
	player.AttackCooldown.SetDuration(loadout.AttackCooldown)
	player.AttackCooldown.Start()

	sword.Active = true
	sword.BaseAngle = player.Facing
	sword.Length = loadout.Sword.Length
	sword.Width = loadout.Sword.Width

	// A fresh body so enemies already overlapping the resting blade count as
	// new contacts once the swing is live.
	s.physics.RemoveBody(player.SwordID)
	s.physics.AddBody(player.SwordID, s.swordBody(loadout))

	half := loadout.Sword.SwingAngle / 2
	s.anims.Play(player.SwordID, tween.New(
		tween.Pose{Angle: -half, Scale: loadout.Sword.Scale, Alpha: 1},
		tween.Pose{Angle: half, Scale: loadout.Sword.Scale, Alpha: 1},
		s.params.SwingDuration, tween.EaseOutQuad, tween.TagSwingDone,
	))
	s.SyncSword(playerID, loadout)

	s.audio.Play(defs.CueSwing, s.volume)
	s.dispatcher.Dispatch(event.Event{Type: event.SwordSwung})
	return true
}

// OnCompletion handles the sword's animation tags. It returns false for
// completions that belong to something else.
func (s *AttackSystem) OnCompletion(c Completion, loadout *component.Loadout) bool {
	sword, ok := s.ecs.Swords[c.Entity]
	if !ok {
		return false
	}
	switch c.Tag {
	case tween.TagSwingDone:
		sword.Active = false
		half := loadout.Sword.SwingAngle / 2
		s.anims.Play(c.Entity, tween.New(
			tween.Pose{Angle: half, Scale: loadout.Sword.Scale, Alpha: 1},
			tween.Pose{Angle: -half, Scale: loadout.Sword.Scale, Alpha: 1},
			s.params.PutAwayDuration, tween.EaseInOutQuad, tween.TagPutAwayDone,
		))
	case tween.TagPutAwayDone:
		if player, ok := s.ecs.Players[sword.Owner]; ok {
			player.Attacking = false
		}
	default:
		return false
	}
	return true
}

// SyncSword moves the sword body to follow the player. Skipped while the
// player has no body yet.
func (s *AttackSystem) SyncSword(playerID types.EntityID, loadout *component.Loadout) {
	player, ok := s.ecs.Players[playerID]
	if !ok {
		return
	}
	sword, ok := s.ecs.Swords[player.SwordID]
	if !ok {
		return
	}
	pos, ok := s.physics.Position(playerID)
	if !ok {
		return
	}
	if !player.Attacking {
		sword.BaseAngle = player.Facing
		sword.Swing = -loadout.Sword.SwingAngle / 2
	}
	sword.Length = loadout.Sword.Length
	sword.Width = loadout.Sword.Width

	start, end := SwordSegment(pos, player.Radius, sword)
	_ = s.physics.SetSegment(player.SwordID, start, end)
	_ = s.physics.SetRadius(player.SwordID, sword.Width/2)
}

// SwordSegment returns the blade's endpoints for a player at pos.
func SwordSegment(pos types.Vec2, playerRadius float64, sword *component.Sword) (types.Vec2, types.Vec2) {
	dir := types.FromAngle(sword.WorldAngle())
	scale := sword.Scale
	if scale == 0 {
		scale = 1
	}
	start := pos.Add(dir.Scale(playerRadius * 0.5))
	end := pos.Add(dir.Scale(playerRadius + sword.Length*scale))
	return start, end
}

// internal/system/secondary.go
package system

import (
	"go-too-many/internal/component"
	"go-too-many/internal/config"
	"go-too-many/internal/defs"
	"go-too-many/internal/entity"
	"go-too-many/internal/event"
	"go-too-many/internal/physics"
	"go-too-many/internal/tween"
	"go-too-many/internal/types"
)

// SecondarySystem fires the grenade or teleport held in the loadout and owns
// the explosions both can create.
type SecondarySystem struct {
	ecs        *entity.ECS
	physics    Physics
	anims      *AnimationSystem
	dispatcher *event.Dispatcher
	audio      Audio
	params     *component.AnimationParams
	volume     float64
}

func NewSecondarySystem(ecs *entity.ECS, physics Physics, anims *AnimationSystem, dispatcher *event.Dispatcher,
	audio Audio, params *component.AnimationParams, volume float64) *SecondarySystem {
	return &SecondarySystem{
		ecs:        ecs,
		physics:    physics,
		anims:      anims,
		dispatcher: dispatcher,
		audio:      orSilent(audio),
		params:     params,
		volume:     volume,
	}
}

// Use triggers the secondary action toward target. Returns false when the
// slot is empty, on cooldown, or the player has no body yet.
func (s *SecondarySystem) Use(playerID types.EntityID, loadout *component.Loadout, target types.Vec2) bool {
	if loadout.Secondary == nil || !loadout.Secondary.Cooldown().Ready() {
		return false
	}
	pos, ok := s.physics.Position(playerID)
	if !ok {
		return false
	}

	switch action := loadout.Secondary.(type) {
	case *component.GrenadeAction:
		s.SpawnExplosion(target, action.Radius)
		action.Timer.SetDuration(action.CooldownDuration)
		action.Timer.Start()

	case *component.TeleportAction:
		offset := target.Sub(pos)
		if offset.Len() > action.Range {
			offset = offset.Norm().Scale(action.Range)
		}
		dest := pos.Add(offset)
		if err := s.physics.SetPosition(playerID, dest); err != nil {
			return false
		}
		if p, ok := s.ecs.Positions[playerID]; ok {
			p.X, p.Y = dest.X, dest.Y
		}
		action.Timer.SetDuration(action.CooldownDuration)
		action.Timer.Start()
		s.audio.Play(defs.CueTeleport, s.volume)
		s.dispatcher.Dispatch(event.Event{
			Type: event.Teleported,
			Data: event.ExplosionData{X: dest.X, Y: dest.Y, Radius: action.Radius},
		})
		if action.Explodes {
			s.SpawnExplosion(dest, action.Radius)
		}

	default:
		return false
	}
	return true
}

// SpawnExplosion creates an explosion that kills every enemy it touches and
// removes itself when its animation ends.
func (s *SecondarySystem) SpawnExplosion(at types.Vec2, radius float64) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Explosions[id] = &component.Explosion{Radius: radius, Scale: config.ExplosionStartScale, Alpha: 1}
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ExplosionColor,
		Radius: float32(radius),
	}
	s.physics.AddBody(id, physics.BodyDef{
		Position:  at,
		Radius:    radius,
		Kinematic: true,
		Sensor:    true,
	})
	s.anims.Play(id, tween.New(
		tween.Pose{Scale: config.ExplosionStartScale, Alpha: 1},
		tween.Pose{Scale: 1, Alpha: config.ExplosionFadeAlpha},
		s.params.ExplosionDuration, tween.EaseOutCubic, tween.TagExplosionDone,
	))

	s.audio.Play(defs.CueExplosion, s.volume)
	s.dispatcher.Dispatch(event.Event{
		Type: event.ExplosionStarted,
		Data: event.ExplosionData{X: at.X, Y: at.Y, Radius: radius},
	})
	return id
}

// OnCompletion queues finished explosions for removal.
func (s *SecondarySystem) OnCompletion(c Completion) bool {
	if c.Tag != tween.TagExplosionDone {
		return false
	}
	if _, ok := s.ecs.Explosions[c.Entity]; !ok {
		return false
	}
	s.ecs.QueueDespawn(c.Entity)
	return true
}

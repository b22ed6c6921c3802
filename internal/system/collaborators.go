// internal/system/collaborators.go
package system

import (
	"go-too-many/internal/defs"
	"go-too-many/internal/physics"
	"go-too-many/internal/types"
)

// Physics is what the systems need from the physics collaborator.
// physics.World satisfies it.
type Physics interface {
	AddBody(id types.EntityID, def physics.BodyDef)
	RemoveBody(id types.EntityID)
	Position(id types.EntityID) (types.Vec2, bool)
	Velocity(id types.EntityID) (types.Vec2, bool)
	SetPosition(id types.EntityID, p types.Vec2) error
	SetSegment(id types.EntityID, start, end types.Vec2) error
	SetRadius(id types.EntityID, r float64) error
	SetForce(id types.EntityID, f types.Vec2) error
	ApplyImpulse(id types.EntityID, impulse types.Vec2) error
	Step(dt float64) []types.Collision
}

// Audio plays cues. Calls must not block.
type Audio interface {
	Play(cue defs.Cue, volume float64)
}

type silentAudio struct{}

func (silentAudio) Play(defs.Cue, float64) {}

// orSilent returns a or a no-op player when a is nil.
func orSilent(a Audio) Audio {
	if a == nil {
		return silentAudio{}
	}
	return a
}

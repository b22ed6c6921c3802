// internal/system/animation.go
package system

import (
	"sort"

	"go-too-many/internal/entity"
	"go-too-many/internal/tween"
	"go-too-many/internal/types"
)

// Completion reports that an entity's animation reached its end.
type Completion struct {
	Entity types.EntityID
	Tag    tween.Tag
}

// AnimationSystem advances every running tween and writes the pose back to
// the animated component.
type AnimationSystem struct {
	ecs *entity.ECS
}

func NewAnimationSystem(ecs *entity.ECS) *AnimationSystem {
	return &AnimationSystem{ecs: ecs}
}

// Play starts anim on id, replacing whatever was running there.
func (s *AnimationSystem) Play(id types.EntityID, anim *tween.Animation) {
	s.ecs.Animations[id] = anim
	s.apply(id, anim.Current())
}

// Update advances all animations by dt. Completions are returned in entity
// order; finished animations are dropped.
func (s *AnimationSystem) Update(dt float64) []Completion {
	ids := make([]types.EntityID, 0, len(s.ecs.Animations))
	for id := range s.ecs.Animations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var done []Completion
	for _, id := range ids {
		anim := s.ecs.Animations[id]
		pose, finished := anim.Update(dt)
		s.apply(id, pose)
		if finished {
			delete(s.ecs.Animations, id)
			done = append(done, Completion{Entity: id, Tag: anim.Tag})
		}
	}
	return done
}

func (s *AnimationSystem) apply(id types.EntityID, pose tween.Pose) {
	if sword, ok := s.ecs.Swords[id]; ok {
		sword.Swing = pose.Angle
		sword.Scale = pose.Scale
		sword.Alpha = pose.Alpha
	}
	if ex, ok := s.ecs.Explosions[id]; ok {
		ex.Scale = pose.Scale
		ex.Alpha = pose.Alpha
	}
}

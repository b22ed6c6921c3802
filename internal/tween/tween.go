// internal/tween/tween.go
package tween

import (
	"go-too-many/internal/types"
	"go-too-many/internal/utils"
)

// Pose is the set of visual transform values an animation drives.
type Pose struct {
	Angle  float64
	Scale  float64
	Offset types.Vec2
	Alpha  float64
}

// Lerp interpolates every field of the pose.
func (p Pose) Lerp(to Pose, t float64) Pose {
	return Pose{
		Angle:  utils.Lerp(p.Angle, to.Angle, t),
		Scale:  utils.Lerp(p.Scale, to.Scale, t),
		Offset: types.Vec2{X: utils.Lerp(p.Offset.X, to.Offset.X, t), Y: utils.Lerp(p.Offset.Y, to.Offset.Y, t)},
		Alpha:  utils.Lerp(p.Alpha, to.Alpha, t),
	}
}

// Tag is the completion label reported when an animation finishes.
type Tag int

const (
	TagNone Tag = iota
	TagSwingDone
	TagPutAwayDone
	TagExplosionDone
)

// Animation moves a Pose from From to To over Duration seconds.
type Animation struct {
	From     Pose
	To       Pose
	Duration float64
	Ease     Ease
	Tag      Tag

	elapsed float64
	done    bool
}

// New creates an animation. A nil ease is linear.
func New(from, to Pose, duration float64, ease Ease, tag Tag) *Animation {
	if ease == nil {
		ease = Linear
	}
	return &Animation{From: from, To: to, Duration: duration, Ease: ease, Tag: tag}
}

// Update advances the animation and reports whether it completed during
// this call. A finished animation stays at To and never reports again.
func (a *Animation) Update(dt float64) (Pose, bool) {
	if a.done {
		return a.To, false
	}
	a.elapsed += dt
	if a.Duration <= 0 || a.elapsed >= a.Duration {
		a.elapsed = a.Duration
		a.done = true
		return a.To, true
	}
	return a.Current(), false
}

// Current returns the pose at the present progress.
func (a *Animation) Current() Pose {
	if a.done {
		return a.To
	}
	if a.Duration <= 0 {
		return a.From
	}
	ease := a.Ease
	if ease == nil {
		ease = Linear
	}
	return a.From.Lerp(a.To, ease(utils.Clamp(a.elapsed/a.Duration, 0, 1)))
}

func (a *Animation) Done() bool { return a.done }

// Progress returns linear progress in [0, 1].
func (a *Animation) Progress() float64 {
	if a.done || a.Duration <= 0 {
		return 1
	}
	return utils.Clamp(a.elapsed/a.Duration, 0, 1)
}

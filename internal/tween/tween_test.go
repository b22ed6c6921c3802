package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationReportsCompletionOnce(t *testing.T) {
	a := New(Pose{Angle: 0, Scale: 1}, Pose{Angle: 2, Scale: 3}, 1, Linear, TagSwingDone)

	p, done := a.Update(0.5)
	require.False(t, done)
	assert.InDelta(t, 1.0, p.Angle, 1e-9)
	assert.InDelta(t, 2.0, p.Scale, 1e-9)

	p, done = a.Update(0.6)
	require.True(t, done)
	assert.Equal(t, 2.0, p.Angle)

	_, done = a.Update(1)
	assert.False(t, done)
	assert.True(t, a.Done())
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	a := New(Pose{}, Pose{Alpha: 1}, 0, nil, TagExplosionDone)
	p, done := a.Update(0)
	assert.True(t, done)
	assert.Equal(t, 1.0, p.Alpha)
}

func TestEasingEndpoints(t *testing.T) {
	for _, ease := range []Ease{Linear, EaseInQuad, EaseOutQuad, EaseInOutQuad, EaseOutCubic} {
		assert.InDelta(t, 0, ease(0), 1e-9)
		assert.InDelta(t, 1, ease(1), 1e-9)
	}
}

package system

import (
	"math"
	"testing"

	"go-too-many/internal/config"
	"go-too-many/internal/event"
	"go-too-many/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLargeGrantLevelsUpMoreThanOnce(t *testing.T) {
	d := event.NewDispatcher()
	log := &eventLog{}
	d.Subscribe(event.LevelUp, log)

	p := NewProgressionTracker(config.XPTuning{FirstThreshold: 5, Multiplier: 1.2}, d)
	p.AddXP(12)
	gained := p.AdvanceIfReady()

	require.GreaterOrEqual(t, gained, 2)
	assert.Equal(t, uint64(1+gained), p.Level())
	assert.Equal(t, gained, log.count(event.LevelUp), "one event per level")
	assert.Less(t, p.XP(), p.XPNeeded())
	// 5 -> +6 -> 11 -> +7 -> 18
	assert.Equal(t, uint64(18), p.XPNeeded())
	assert.Equal(t, uint64(11), p.PreviousXPNeeded())
}

func TestAdvanceInvariantHoldsForRandomGrants(t *testing.T) {
	cfg := config.Default().XP
	rng := utils.NewPRNGService(99)
	p := NewProgressionTracker(cfg, nil)

	crossed := 0
	for range 300 {
		p.AddXP(uint64(rng.Intn(15)))
		crossed += p.AdvanceIfReady()
		require.Less(t, p.XP(), p.XPNeeded())
	}
	assert.Equal(t, uint64(1+crossed), p.Level())

	// walk the threshold sequence independently and count those at or
	// below the final XP
	below := 0
	prev, needed := uint64(0), cfg.FirstThreshold
	for needed <= p.XP() {
		below++
		inc := uint64(math.Round(float64(needed-prev) * cfg.Multiplier))
		prev, needed = needed, needed+max(inc, 1)
	}
	assert.Equal(t, uint64(1+below), p.Level())
}

func TestThresholdsStrictlyIncrease(t *testing.T) {
	p := NewProgressionTracker(config.XPTuning{FirstThreshold: 1, Multiplier: 1.01}, nil)
	prev := p.XPNeeded()
	for range 50 {
		p.AddXP(p.XPNeeded() - p.XP())
		require.Equal(t, 1, p.AdvanceIfReady())
		require.Greater(t, p.XPNeeded(), prev)
		prev = p.XPNeeded()
	}
}

func TestAdvanceWithoutEnoughXPDoesNothing(t *testing.T) {
	p := NewProgressionTracker(config.Default().XP, nil)
	p.AddXP(4)
	assert.Zero(t, p.AdvanceIfReady())
	assert.Equal(t, uint64(1), p.Level())
	assert.InDelta(t, 0.8, p.LevelProgress(), 1e-9)
}

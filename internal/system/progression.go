// internal/system/progression.go
package system

import (
	"math"

	"go-too-many/internal/config"
	"go-too-many/internal/event"
)

// ProgressionTracker owns level and XP for one life. XP is cumulative: the
// threshold for the next level keeps growing and XP is never subtracted.
type ProgressionTracker struct {
	level      uint64
	xp         uint64
	needed     uint64
	prevNeeded uint64
	multiplier float64
	dispatcher *event.Dispatcher
}

func NewProgressionTracker(cfg config.XPTuning, dispatcher *event.Dispatcher) *ProgressionTracker {
	return &ProgressionTracker{
		level:      1,
		needed:     cfg.FirstThreshold,
		multiplier: cfg.Multiplier,
		dispatcher: dispatcher,
	}
}

// AddXP records XP. Levels are only evaluated by AdvanceIfReady so several
// grants in one tick are checked together.
func (p *ProgressionTracker) AddXP(n uint64) {
	p.xp += n
}

// AdvanceIfReady levels up as many times as the current XP allows and
// returns how many levels were gained. One LevelUp event is sent per level.
func (p *ProgressionTracker) AdvanceIfReady() int {
	gained := 0
	for p.xp >= p.needed {
		p.level++
		increment := uint64(math.Round(float64(p.needed-p.prevNeeded) * p.multiplier))
		if increment < 1 {
			increment = 1
		}
		p.prevNeeded = p.needed
		p.needed += increment
		gained++

		if p.dispatcher != nil {
			p.dispatcher.Dispatch(event.Event{
				Type: event.LevelUp,
				Data: event.LevelUpData{Level: p.level, XP: p.xp},
			})
		}
	}
	return gained
}

func (p *ProgressionTracker) Level() uint64            { return p.level }
func (p *ProgressionTracker) XP() uint64               { return p.xp }
func (p *ProgressionTracker) XPNeeded() uint64         { return p.needed }
func (p *ProgressionTracker) PreviousXPNeeded() uint64 { return p.prevNeeded }

// LevelProgress is how far the player is between the last and next
// threshold, in [0, 1].
func (p *ProgressionTracker) LevelProgress() float64 {
	span := p.needed - p.prevNeeded
	if span == 0 || p.xp < p.prevNeeded {
		return 0
	}
	f := float64(p.xp-p.prevNeeded) / float64(span)
	return math.Min(f, 1)
}

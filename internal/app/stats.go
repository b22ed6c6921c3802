// internal/app/stats.go
package app

import (
	"go-too-many/internal/event"
)

// Stats collects per-life counters from the event bus.
type Stats struct {
	Kills          int
	KillsBySource  map[event.KillSource]int
	DamageTaken    uint64
	EnemiesSpawned int
	LevelsGained   int
	PerksChosen    int
	TimeSurvived   float64
}

func NewStats() *Stats {
	return &Stats{KillsBySource: make(map[event.KillSource]int)}
}

func (s *Stats) Reset() {
	*s = Stats{KillsBySource: make(map[event.KillSource]int)}
}

// OnEvent implements event.Listener.
func (s *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		s.EnemiesSpawned++
	case event.EnemyKilled:
		s.Kills++
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			s.KillsBySource[data.Source]++
		}
	case event.PlayerHit:
		if data, ok := e.Data.(event.PlayerHitData); ok {
			s.DamageTaken += data.Damage
		}
	case event.LevelUp:
		s.LevelsGained++
	case event.PerkChosen:
		s.PerksChosen++
	}
}

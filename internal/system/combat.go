// internal/system/combat.go
package system

import (
	"math"

	"go-too-many/internal/clock"
	"go-too-many/internal/component"
	"go-too-many/internal/config"
	"go-too-many/internal/defs"
	"go-too-many/internal/entity"
	"go-too-many/internal/event"
	"go-too-many/internal/types"
)

// CombatOutcome summarises what one Resolve call did.
type CombatOutcome struct {
	Kills        int
	XPAwarded    uint64
	PlayerDamage uint64
}

// CombatResolver turns collision-start pairs into kills, XP and damage.
// Kills are only queued; the session removes them at the end of the tick.
type CombatResolver struct {
	ecs         *entity.ECS
	physics     Physics
	progression *ProgressionTracker
	timeScale   *clock.TimeScale
	dispatcher  *event.Dispatcher
	audio       Audio
	tuning      config.Tuning
}

func NewCombatResolver(ecs *entity.ECS, physics Physics, progression *ProgressionTracker,
	timeScale *clock.TimeScale, dispatcher *event.Dispatcher, audio Audio, tuning config.Tuning) *CombatResolver {
	return &CombatResolver{
		ecs:         ecs,
		physics:     physics,
		progression: progression,
		timeScale:   timeScale,
		dispatcher:  dispatcher,
		audio:       orSilent(audio),
		tuning:      tuning,
	}
}

// Resolve processes this tick's collisions in order.
func (s *CombatResolver) Resolve(collisions []types.Collision, loadout *component.Loadout) CombatOutcome {
	var out CombatOutcome
	for _, c := range collisions {
		enemyID, otherID, ok := s.classify(c)
		if !ok {
			continue
		}
		enemy := s.ecs.Enemies[enemyID]

		switch {
		case s.ecs.Explosions[otherID] != nil:
			s.kill(enemyID, enemy, event.KillByExplosion, &out)

		case s.ecs.Swords[otherID] != nil:
			if !s.ecs.Swords[otherID].Active {
				continue
			}
			s.kill(enemyID, enemy, event.KillBySword, &out)
			s.timeScale.StartSlowMotion(s.tuning.SlowMo.Factor, s.tuning.SlowMo.Duration)
			s.audio.Play(defs.CueHit, s.tuning.Audio.Volume)

		case s.ecs.Players[otherID] != nil:
			s.hitPlayer(otherID, enemyID, enemy, loadout, &out)
		}
	}
	return out
}

// classify finds the enemy side of a pair. Pairs without an enemy, pairs of
// two enemies and pairs touching anything already queued for removal are
// dropped.
func (s *CombatResolver) classify(c types.Collision) (enemy, other types.EntityID, ok bool) {
	_, aEnemy := s.ecs.Enemies[c.A]
	_, bEnemy := s.ecs.Enemies[c.B]
	switch {
	case aEnemy && bEnemy:
		return 0, 0, false
	case aEnemy:
		enemy, other = c.A, c.B
	case bEnemy:
		enemy, other = c.B, c.A
	default:
		return 0, 0, false
	}
	if s.ecs.IsDespawning(enemy) || s.ecs.IsDespawning(other) {
		return 0, 0, false
	}
	return enemy, other, true
}

func (s *CombatResolver) kill(id types.EntityID, enemy *component.Enemy, source event.KillSource, out *CombatOutcome) {
	s.ecs.QueueDespawn(id)
	s.progression.AddXP(enemy.XPReward)
	out.Kills++
	out.XPAwarded += enemy.XPReward

	var at [2]float64
	if pos, ok := s.physics.Position(id); ok {
		at = [2]float64{pos.X, pos.Y}
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{ID: uint64(id), XP: enemy.XPReward, Source: source, Position: at},
	})
}

func (s *CombatResolver) hitPlayer(playerID, enemyID types.EntityID, enemy *component.Enemy, loadout *component.Loadout, out *CombatOutcome) {
	before := loadout.Health.Current
	loadout.Health.Damage(enemy.Damage)
	taken := before - loadout.Health.Current
	out.PlayerDamage += taken

	playerPos, okP := s.physics.Position(playerID)
	enemyPos, okE := s.physics.Position(enemyID)
	if okP && okE {
		dir := playerPos.Sub(enemyPos).Norm()
		if dir == (types.Vec2{}) {
			dir = types.FromAngle(s.ecs.Players[playerID].Facing + math.Pi)
		}
		_ = s.physics.ApplyImpulse(playerID, dir.Scale(s.tuning.Player.KnockbackImpulse))
	}
	s.audio.Play(defs.CuePlayerHit, s.tuning.Audio.Volume)
	s.dispatcher.Dispatch(event.Event{
		Type: event.PlayerHit,
		Data: event.PlayerHitData{Damage: taken, HealthNow: loadout.Health.Current, HealthMax: loadout.Health.Max},
	})

	if loadout.Retaliate {
		s.kill(enemyID, enemy, event.KillByRetaliate, out)
	}
}

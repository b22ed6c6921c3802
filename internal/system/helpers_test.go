package system

import (
	"go-too-many/internal/clock"
	"go-too-many/internal/component"
	"go-too-many/internal/config"
	"go-too-many/internal/defs"
	"go-too-many/internal/entity"
	"go-too-many/internal/event"
	"go-too-many/internal/physics"
	"go-too-many/internal/types"
)

type recordedCue struct {
	cue    defs.Cue
	volume float64
}

type recordingAudio struct {
	cues []recordedCue
}

func (a *recordingAudio) Play(cue defs.Cue, volume float64) {
	a.cues = append(a.cues, recordedCue{cue, volume})
}

func (a *recordingAudio) count(cue defs.Cue) int {
	n := 0
	for _, c := range a.cues {
		if c.cue == cue {
			n++
		}
	}
	return n
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// fixture wires the combat-side systems around a real physics world.
type fixture struct {
	tuning      config.Tuning
	ecs         *entity.ECS
	world       *physics.World
	dispatcher  *event.Dispatcher
	events      *eventLog
	audio       *recordingAudio
	timeScale   *clock.TimeScale
	progression *ProgressionTracker
	loadout     *component.Loadout
	params      *component.AnimationParams
	anims       *AnimationSystem
	attack      *AttackSystem
	secondary   *SecondarySystem
	combat      *CombatResolver
	playerID    types.EntityID
}

func newFixture() *fixture {
	f := &fixture{
		tuning:     config.Default(),
		ecs:        entity.NewECS(),
		world:      physics.NewWorld(),
		dispatcher: event.NewDispatcher(),
		events:     &eventLog{},
		audio:      &recordingAudio{},
		timeScale:  clock.NewTimeScale(),
	}
	f.dispatcher.SubscribeAll(f.events,
		event.EnemyKilled, event.PlayerHit, event.LevelUp, event.SwordSwung,
		event.ExplosionStarted, event.Teleported)
	f.progression = NewProgressionTracker(f.tuning.XP, f.dispatcher)
	f.loadout = component.NewLoadout(f.tuning)
	f.params = component.NewAnimationParams(f.tuning)
	f.anims = NewAnimationSystem(f.ecs)
	vol := f.tuning.Audio.Volume
	f.attack = NewAttackSystem(f.ecs, f.world, f.anims, f.dispatcher, f.audio, f.params, vol)
	f.secondary = NewSecondarySystem(f.ecs, f.world, f.anims, f.dispatcher, f.audio, f.params, vol)
	f.combat = NewCombatResolver(f.ecs, f.world, f.progression, f.timeScale, f.dispatcher, f.audio, f.tuning)

	f.playerID = f.ecs.NewEntity()
	f.ecs.Players[f.playerID] = &component.Player{
		Radius:         f.tuning.Player.Radius,
		AttackCooldown: clock.NewCooldown(f.loadout.AttackCooldown),
	}
	f.ecs.Positions[f.playerID] = &component.Position{}
	f.world.AddBody(f.playerID, physics.BodyDef{Radius: f.tuning.Player.Radius})
	f.attack.SpawnSword(f.playerID, f.loadout)
	return f
}

func (f *fixture) player() *component.Player { return f.ecs.Players[f.playerID] }

func (f *fixture) sword() *component.Sword { return f.ecs.Swords[f.player().SwordID] }

func (f *fixture) addEnemy(kind defs.EnemyKind, at types.Vec2) types.EntityID {
	arch := defs.EnemyLibrary[kind]
	id := f.ecs.NewEntity()
	f.ecs.Enemies[id] = &component.Enemy{
		Kind:     kind,
		Size:     arch.Size.Min,
		MaxSpeed: arch.MaxSpeed.Min,
		Damage:   arch.Damage,
		XPReward: arch.XPReward,
	}
	f.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	f.world.AddBody(id, physics.BodyDef{Position: at, Radius: arch.Size.Min, Mass: EnemyMass(arch.Size.Min)})
	return id
}

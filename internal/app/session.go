// internal/app/session.go
package app

import (
	"errors"
	"fmt"

	"go-too-many/internal/clock"
	"go-too-many/internal/component"
	"go-too-many/internal/config"
	"go-too-many/internal/defs"
	"go-too-many/internal/entity"
	"go-too-many/internal/event"
	"go-too-many/internal/logger"
	"go-too-many/internal/physics"
	"go-too-many/internal/system"
	"go-too-many/internal/types"
	"go-too-many/internal/utils"
)

// Phase is the session's top-level state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

var (
	ErrNoPerkOffer       = errors.New("no perk choice is pending")
	ErrInvalidPerkChoice = errors.New("perk choice index out of range")
	ErrWrongPhase        = errors.New("operation not allowed in this phase")
)

// Options configures a session. Zero collaborators fall back to silent or
// default implementations.
type Options struct {
	Tuning     config.Tuning
	Seed       int64
	NewPhysics func() Physics
	Display    Display
	Audio      Audio
	// ViewWidth/ViewHeight size the camera view used for spawn placement.
	ViewWidth  float64
	ViewHeight float64
}

// run holds everything that lives for exactly one life.
type run struct {
	ecs         *entity.ECS
	physics     Physics
	timeScale   *clock.TimeScale
	loadout     *component.Loadout
	animParams  *component.AnimationParams
	modifiers   *component.EnemyModifiers
	spawner     *system.WaveSpawner
	progression *system.ProgressionTracker
	anims       *system.AnimationSystem
	movement    *system.MovementSystem
	attack      *system.AttackSystem
	secondary   *system.SecondarySystem
	combat      *system.CombatResolver
	visuals     *system.VisualEffectSystem
	playerID    types.EntityID
	elapsed     float64
}

// Session owns all game state and advances it one tick at a time.
type Session struct {
	opts       Options
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	perks      *system.PerkCatalog
	display    Display
	audio      Audio
	stats      *Stats

	phase         Phase
	run           *run
	pendingLevels int
	offer         []defs.PerkKind
	userPaused    bool
}

// NewSession validates the tuning and returns a session in the Loading
// phase. Call AssetsReady to start playing.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if opts.NewPhysics == nil {
		opts.NewPhysics = NewWorldPhysics
	}
	if opts.ViewWidth <= 0 || opts.ViewHeight <= 0 {
		opts.ViewWidth, opts.ViewHeight = config.ScreenWidth, config.ScreenHeight
	}
	s := &Session{
		opts:       opts,
		rng:        utils.NewPRNGService(opts.Seed),
		dispatcher: event.NewDispatcher(),
		perks:      system.NewPerkCatalog(),
		display:    opts.Display,
		audio:      opts.Audio,
		phase:      PhaseLoading,
	}
	if s.display == nil {
		s.display = nullDisplay{}
	}
	if s.audio == nil {
		s.audio = nullAudio{}
	}
	s.stats = NewStats()
	s.dispatcher.SubscribeAll(s.stats, event.EnemySpawned, event.EnemyKilled, event.PlayerHit, event.LevelUp, event.PerkChosen)

	// Fail early on a spawner configuration that could never start.
	if _, err := s.newRun(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	logger.Infof("session created, seed=%d", s.rng.Seed())
	return s, nil
}

// Dispatcher exposes the event bus so frontends can listen in.
func (s *Session) Dispatcher() *event.Dispatcher { return s.dispatcher }

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Seed() int64 { return s.rng.Seed() }

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	logger.Debugf("phase %s -> %s", s.phase, p)
	s.phase = p
	s.dispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: p.String()})
}

func (s *Session) newRun() (*run, error) {
	t := s.opts.Tuning
	table, err := system.NewDefaultSpawnTable()
	if err != nil {
		return nil, err
	}
	spawner, err := system.NewWaveSpawner(t.Spawn, table, defs.WeightBumpSchedule, s.rng)
	if err != nil {
		return nil, err
	}

	r := &run{
		ecs:        entity.NewECS(),
		physics:    s.opts.NewPhysics(),
		timeScale:  clock.NewTimeScale(),
		loadout:    component.NewLoadout(t),
		animParams: component.NewAnimationParams(t),
		modifiers:  component.NewEnemyModifiers(),
		spawner:    spawner,
	}
	vol := s.volume()
	r.progression = system.NewProgressionTracker(t.XP, s.dispatcher)
	r.anims = system.NewAnimationSystem(r.ecs)
	r.movement = system.NewMovementSystem(r.ecs, r.physics, t.Player.Acceleration, t.Enemies.SteeringGain)
	r.attack = system.NewAttackSystem(r.ecs, r.physics, r.anims, s.dispatcher, s.audio, r.animParams, vol)
	r.secondary = system.NewSecondarySystem(r.ecs, r.physics, r.anims, s.dispatcher, s.audio, r.animParams, vol)
	r.combat = system.NewCombatResolver(r.ecs, r.physics, r.progression, r.timeScale, s.dispatcher, s.audio, t)
	r.visuals = system.NewVisualEffectSystem(r.ecs, config.DamageFlashDuration)
	return r, nil
}

func (s *Session) volume() float64 {
	if s.opts.Tuning.Audio.Muted {
		return 0
	}
	return s.opts.Tuning.Audio.Volume
}

func (s *Session) musicVolume() float64 {
	return s.volume() * s.opts.Tuning.Audio.MusicVolume
}

func (s *Session) spawnPlayer(r *run) {
	t := s.opts.Tuning
	id := r.ecs.NewEntity()
	r.ecs.Players[id] = &component.Player{
		Radius:         t.Player.Radius,
		AttackCooldown: clock.NewCooldown(r.loadout.AttackCooldown),
	}
	r.ecs.Positions[id] = &component.Position{}
	r.ecs.Renderables[id] = &component.Renderable{
		Color:     config.PlayerColor,
		Radius:    float32(t.Player.Radius),
		HasStroke: true,
	}
	r.physics.AddBody(id, physics.BodyDef{Radius: t.Player.Radius, Mass: 1})
	r.playerID = id
	r.attack.SpawnSword(id, r.loadout)
}

// AssetsReady moves Loading to Playing with a fresh life.
func (s *Session) AssetsReady() error {
	if s.phase != PhaseLoading {
		return fmt.Errorf("assets ready: %w (%s)", ErrWrongPhase, s.phase)
	}
	r, err := s.newRun()
	if err != nil {
		return fmt.Errorf("assets ready: %w", err)
	}
	s.run = r
	s.pendingLevels = 0
	s.offer = nil
	s.userPaused = false
	s.stats.Reset()
	s.spawnPlayer(r)
	s.display.HidePerkChoices()
	s.pushDisplay()
	s.setPhase(PhasePlaying)
	s.audio.StartMusic(s.musicVolume())
	return nil
}

// Restart discards the finished life and returns to Loading. Only a
// GameOver session can restart.
func (s *Session) Restart() error {
	if s.phase != PhaseGameOver {
		return fmt.Errorf("restart: %w (%s)", ErrWrongPhase, s.phase)
	}
	s.audio.StopMusic()
	if s.run != nil {
		logger.Infof("restart after %.1fs at level %d", s.run.elapsed, s.run.progression.Level())
	}
	s.run = nil
	s.pendingLevels = 0
	s.offer = nil
	s.userPaused = false
	s.display.HidePerkChoices()
	s.setPhase(PhaseLoading)
	return nil
}

// TogglePause flips between Playing and Paused. It does nothing while a perk
// choice is pending or outside those two phases.
func (s *Session) TogglePause() {
	switch {
	case s.phase == PhasePlaying:
		s.userPaused = true
		s.run.timeScale.Pause()
		s.setPhase(PhasePaused)
	case s.phase == PhasePaused && s.offer == nil:
		s.userPaused = false
		s.run.timeScale.Resume()
		s.setPhase(PhasePlaying)
	}
}

// PerkOffer returns the perks currently on offer, or nil.
func (s *Session) PerkOffer() []defs.PerkInfo {
	if s.offer == nil {
		return nil
	}
	return s.perks.Infos(s.offer)
}

// ChoosePerk applies the i-th offered perk. If more level-ups are pending a
// new offer is made, otherwise play resumes.
func (s *Session) ChoosePerk(i int) error {
	if s.offer == nil {
		return ErrNoPerkOffer
	}
	if i < 0 || i >= len(s.offer) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidPerkChoice, i, len(s.offer))
	}
	kind := s.offer[i]
	r := s.run
	s.perks.Apply(kind, system.PerkTargets{Loadout: r.loadout, Animation: r.animParams, Enemies: r.modifiers})
	logger.Infof("perk chosen: %s", kind)
	s.dispatcher.Dispatch(event.Event{Type: event.PerkChosen, Data: kind})

	s.pendingLevels--
	s.offer = nil
	if s.pendingLevels > 0 && s.offerPerks() {
		s.pushDisplay()
		return nil
	}
	s.pendingLevels = 0
	s.display.HidePerkChoices()
	if !s.userPaused {
		r.timeScale.Resume()
		s.setPhase(PhasePlaying)
	}
	s.pushDisplay()
	return nil
}

// offerPerks snapshots a fresh set of choices. Returns false when nothing is
// eligible.
func (s *Session) offerPerks() bool {
	choices := s.perks.ChooseRandom(config.PerkChoiceCount, s.run.loadout.Perks, s.rng)
	if len(choices) == 0 {
		return false
	}
	s.offer = choices
	s.display.ShowPerkChoices(s.perks.Infos(choices))
	return true
}

// SetMoveInput sets the desired movement direction; its length is ignored.
func (s *Session) SetMoveInput(dir types.Vec2) {
	if p := s.player(); p != nil {
		p.MoveInput = dir
	}
}

// SetAim sets the world point the player faces and targets.
func (s *Session) SetAim(world types.Vec2) {
	if p := s.player(); p != nil {
		p.Aim = world
	}
}

// Attack starts a sword swing when allowed.
func (s *Session) Attack() bool {
	if s.phase != PhasePlaying {
		return false
	}
	return s.run.attack.TryAttack(s.run.playerID, s.run.loadout)
}

// UseSecondary fires the grenade or teleport toward the aim point.
func (s *Session) UseSecondary() bool {
	if s.phase != PhasePlaying {
		return false
	}
	p := s.player()
	if p == nil {
		return false
	}
	return s.run.secondary.Use(s.run.playerID, s.run.loadout, p.Aim)
}

func (s *Session) player() *component.Player {
	if s.run == nil {
		return nil
	}
	return s.run.ecs.Players[s.run.playerID]
}

// Tick advances the session by realDt wall-clock seconds. Only Playing
// advances; the other phases wait for input.
func (s *Session) Tick(realDt float64) {
	if s.phase != PhasePlaying || s.run == nil {
		return
	}
	if realDt > config.MaxDeltaTime {
		realDt = config.MaxDeltaTime
	}
	r := s.run
	dt := r.timeScale.Advance(realDt)
	r.elapsed += dt
	r.ecs.GameTime += dt

	// timers and animations
	if p := s.player(); p != nil {
		p.AttackCooldown.Tick(dt)
	}
	if r.loadout.Secondary != nil {
		r.loadout.Secondary.Cooldown().Tick(dt)
	}
	r.loadout.TickRegen(dt)
	r.visuals.Update(dt)
	for _, c := range r.anims.Update(dt) {
		if !r.attack.OnCompletion(c, r.loadout) {
			r.secondary.OnCompletion(c)
		}
	}

	// spawning around the camera
	if view, ok := s.View(); ok {
		for _, cmd := range r.spawner.Update(dt, view) {
			s.spawnEnemy(cmd)
		}
	}

	// movement and physics
	r.movement.Update(r.playerID, r.loadout, r.modifiers)
	r.attack.SyncSword(r.playerID, r.loadout)
	collisions := r.physics.Step(dt)
	r.movement.SyncPositions()

	if out := r.combat.Resolve(collisions, r.loadout); out.PlayerDamage > 0 {
		r.visuals.Flash(r.playerID)
	}

	gained := r.progression.AdvanceIfReady()
	dead := r.loadout.Health.IsDead()
	if gained > 0 && !dead {
		s.audio.Play(defs.CueLevelUp, s.volume())
		s.pendingLevels += gained
		if s.offer == nil && s.offerPerks() {
			r.timeScale.Pause()
			s.setPhase(PhasePaused)
		} else if s.offer == nil {
			s.pendingLevels = 0
		}
	}

	s.pushDisplay()

	r.ecs.FlushDespawns(func(id types.EntityID) { r.physics.RemoveBody(id) })

	if dead {
		s.gameOver()
	}
}

func (s *Session) spawnEnemy(cmd system.SpawnCommand) {
	r := s.run
	id := r.ecs.NewEntity()
	r.ecs.Enemies[id] = &component.Enemy{
		Kind:     cmd.Archetype.Kind,
		Size:     cmd.Size,
		MaxSpeed: cmd.MaxSpeed,
		Damage:   cmd.Archetype.Damage,
		XPReward: cmd.Archetype.XPReward,
	}
	r.ecs.Positions[id] = &component.Position{X: cmd.Position.X, Y: cmd.Position.Y}
	r.ecs.Renderables[id] = &component.Renderable{Color: cmd.Archetype.Color, Radius: float32(cmd.Size)}
	r.physics.AddBody(id, physics.BodyDef{
		Position: cmd.Position,
		Radius:   cmd.Size,
		Mass:     system.EnemyMass(cmd.Size),
	})
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemySpawnedData{ID: uint64(id), Kind: int(cmd.Archetype.Kind)},
	})
}

func (s *Session) gameOver() {
	r := s.run
	r.timeScale.ClearSlowMotion()
	s.offer = nil
	s.pendingLevels = 0
	s.display.HidePerkChoices()
	s.stats.TimeSurvived = r.elapsed
	logger.Infof("player died at level %d with %d XP after %.1fs", r.progression.Level(), r.progression.XP(), r.elapsed)
	s.audio.StopMusic()
	s.dispatcher.Dispatch(event.Event{
		Type: event.PlayerDied,
		Data: event.PlayerDiedData{Level: r.progression.Level(), XP: r.progression.XP(), Survived: r.elapsed},
	})
	s.setPhase(PhaseGameOver)
}

func (s *Session) pushDisplay() {
	r := s.run
	if r == nil {
		return
	}
	s.display.SetLevel(r.progression.Level())
	s.display.SetXP(r.progression.XP(), r.progression.XPNeeded(), r.progression.PreviousXPNeeded())
	s.display.SetHealth(r.loadout.Health.Current, r.loadout.Health.Max)
	s.display.SetEnemyCount(r.ecs.EnemyCount())
}

// Camera returns the player's position, the center of the view.
func (s *Session) Camera() (types.Vec2, bool) {
	if s.run == nil {
		return types.Vec2{}, false
	}
	return s.run.physics.Position(s.run.playerID)
}

// View is the world rectangle visible on screen.
func (s *Session) View() (types.Rect, bool) {
	c, ok := s.Camera()
	if !ok {
		return types.Rect{}, false
	}
	return types.RectAround(c, s.opts.ViewWidth, s.opts.ViewHeight), true
}

// ScreenToWorld converts a screen point to world coordinates.
func (s *Session) ScreenToWorld(x, y float64) (types.Vec2, bool) {
	view, ok := s.View()
	if !ok {
		return types.Vec2{}, false
	}
	return types.Vec2{X: view.Min.X + x, Y: view.Min.Y + y}, true
}

// Snapshot is a read-only summary for screens and tests.
type Snapshot struct {
	Phase       Phase
	Level       uint64
	XP          uint64
	XPNeeded    uint64
	Health      component.Health
	Enemies     int
	Elapsed     float64
	Secondary   component.SecondaryKind
	SlowMotion  bool
	PendingPerk int
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{Phase: s.phase, PendingPerk: s.pendingLevels}
	if r := s.run; r != nil {
		snap.Level = r.progression.Level()
		snap.XP = r.progression.XP()
		snap.XPNeeded = r.progression.XPNeeded()
		snap.Health = r.loadout.Health
		snap.Enemies = r.ecs.EnemyCount()
		snap.Elapsed = r.elapsed
		snap.Secondary = r.loadout.SecondaryKind()
		snap.SlowMotion = r.timeScale.SlowMotionActive()
	}
	return snap
}

func (s *Session) Stats() Stats { return *s.stats }

// Loadout exposes the current life's loadout, nil outside a life.
func (s *Session) Loadout() *component.Loadout {
	if s.run == nil {
		return nil
	}
	return s.run.loadout
}

// ECS exposes the entity arena for rendering.
func (s *Session) ECS() *entity.ECS {
	if s.run == nil {
		return nil
	}
	return s.run.ecs
}

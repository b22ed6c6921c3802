package app

import (
	"testing"

	"go-too-many/internal/config"
	"go-too-many/internal/defs"
	"go-too-many/internal/event"
	"go-too-many/internal/physics"
	"go-too-many/internal/system"
	"go-too-many/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDisplay struct {
	level       uint64
	xp, needed  uint64
	health, max uint64
	enemies     int
	choices     []defs.PerkInfo
	shown       int
}

func (d *recordingDisplay) SetLevel(l uint64)           { d.level = l }
func (d *recordingDisplay) SetXP(cur, needed, _ uint64) { d.xp, d.needed = cur, needed }
func (d *recordingDisplay) SetHealth(cur, max uint64)   { d.health, d.max = cur, max }
func (d *recordingDisplay) SetEnemyCount(n int)         { d.enemies = n }
func (d *recordingDisplay) ShowPerkChoices(c []defs.PerkInfo) {
	d.choices = c
	d.shown++
}
func (d *recordingDisplay) HidePerkChoices() { d.choices = nil }

type recordingAudio struct {
	cues  []defs.Cue
	music []string
	gain  float64
}

func (a *recordingAudio) Play(cue defs.Cue, _ float64) { a.cues = append(a.cues, cue) }

func (a *recordingAudio) StartMusic(volume float64) {
	a.music = append(a.music, "start")
	a.gain = volume
}

func (a *recordingAudio) StopMusic() { a.music = append(a.music, "stop") }

type phaseLog struct {
	phases []string
}

func (l *phaseLog) OnEvent(e event.Event) { l.phases = append(l.phases, e.Data.(string)) }

const tick = 1.0 / 60

// scriptedPhysics wraps a real world and appends injected pairs to the next
// step's collisions.
type scriptedPhysics struct {
	*physics.World
	inject []types.Collision
}

func (p *scriptedPhysics) Step(dt float64) []types.Collision {
	out := p.World.Step(dt)
	out = append(out, p.inject...)
	p.inject = nil
	return out
}

type harness struct {
	session *Session
	display *recordingDisplay
	audio   *recordingAudio
	phys    *scriptedPhysics
}

func newHarness(t *testing.T, mutate func(*config.Tuning)) *harness {
	t.Helper()
	tun := config.Default()
	// no natural spawns unless the test asks for them
	tun.Spawn.InitialInterval = 1000
	tun.Spawn.MinInterval = 1000
	if mutate != nil {
		mutate(&tun)
	}
	h := &harness{display: &recordingDisplay{}, audio: &recordingAudio{}}
	s, err := NewSession(Options{
		Tuning: tun,
		Seed:   1234,
		NewPhysics: func() Physics {
			h.phys = &scriptedPhysics{World: physics.NewWorld()}
			return h.phys
		},
		Display: h.display,
		Audio:   h.audio,
	})
	require.NoError(t, err)
	h.session = s
	return h
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	require.NoError(t, h.session.AssetsReady())
	require.Equal(t, PhasePlaying, h.session.Phase())
}

// enemy places one enemy far from the player through the normal spawn path.
func (h *harness) enemy(kind defs.EnemyKind) types.EntityID {
	arch := defs.EnemyLibrary[kind]
	id := h.session.ECS().NextID
	h.session.spawnEnemy(system.SpawnCommand{
		Archetype: arch,
		Position:  types.Vec2{X: 5000, Y: 5000},
		Size:      arch.Size.Min,
		MaxSpeed:  arch.MaxSpeed.Min,
	})
	return id
}

func TestNewSessionRejectsInvalidTuning(t *testing.T) {
	tun := config.Default()
	tun.XP.Multiplier = 1
	_, err := NewSession(Options{Tuning: tun})
	assert.ErrorIs(t, err, config.ErrInvalidTuning)
}

func TestLoadingWaitsForAssets(t *testing.T) {
	h := newHarness(t, nil)
	assert.Equal(t, PhaseLoading, h.session.Phase())
	h.session.Tick(tick)
	assert.Nil(t, h.session.ECS())
	assert.False(t, h.session.Attack())

	h.start(t)
	assert.Equal(t, uint64(1), h.display.level)
	assert.Equal(t, uint64(5), h.display.needed)
	assert.Equal(t, uint64(100), h.display.health)
	assert.Equal(t, h.display.max, h.display.health)

	assert.ErrorIs(t, h.session.AssetsReady(), ErrWrongPhase)
}

func TestTogglePauseFreezesTime(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	h.session.Tick(tick)
	before := h.session.Snapshot().Elapsed

	h.session.TogglePause()
	require.Equal(t, PhasePaused, h.session.Phase())
	for range 10 {
		h.session.Tick(tick)
	}
	assert.Equal(t, before, h.session.Snapshot().Elapsed)
	assert.False(t, h.session.Attack())

	h.session.TogglePause()
	assert.Equal(t, PhasePlaying, h.session.Phase())
}

func TestLargeDeltaIsClamped(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	h.session.Tick(5)
	assert.InDelta(t, config.MaxDeltaTime, h.session.Snapshot().Elapsed, 1e-12)
}

func TestSwordKillLevelsUpAndOffersPerks(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	s := h.session

	require.True(t, s.Attack())
	swordID := s.player().SwordID

	// a huge enemy is worth more than the first threshold
	enemy := h.enemy(defs.EnemyHuge)
	h.phys.inject = []types.Collision{{A: swordID, B: enemy}}
	s.Tick(tick)

	assert.NotContains(t, s.ECS().Enemies, enemy)
	assert.Equal(t, 1, s.Stats().Kills)
	assert.Equal(t, 1, s.Stats().KillsBySource[event.KillBySword])
	assert.Contains(t, h.audio.cues, defs.CueHit)
	assert.Contains(t, h.audio.cues, defs.CueLevelUp)

	require.Equal(t, PhasePaused, s.Phase())
	assert.Equal(t, uint64(2), s.Snapshot().Level)
	assert.Len(t, h.display.choices, config.PerkChoiceCount)
	assert.Len(t, s.PerkOffer(), config.PerkChoiceCount)

	// the offer holds the pause
	elapsed := s.Snapshot().Elapsed
	s.TogglePause()
	s.Tick(tick)
	assert.Equal(t, PhasePaused, s.Phase())
	assert.Equal(t, elapsed, s.Snapshot().Elapsed)

	require.NoError(t, s.ChoosePerk(1))
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Nil(t, s.PerkOffer())
	assert.Nil(t, h.display.choices)
	assert.Equal(t, 1, s.Stats().PerksChosen)
	assert.Len(t, s.Loadout().Perks, 1)
}

func TestMultipleLevelsOfferOneChoiceEach(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	s := h.session

	s.run.progression.AddXP(100)
	s.Tick(tick)
	require.Equal(t, PhasePaused, s.Phase())
	levels := int(s.Snapshot().Level - 1)
	require.Greater(t, levels, 1)
	assert.Equal(t, levels, s.Snapshot().PendingPerk)

	for i := range levels {
		require.NotNil(t, s.PerkOffer(), "offer %d", i)
		require.NoError(t, s.ChoosePerk(0))
	}
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, levels, h.display.shown)
	assert.Equal(t, levels, s.Stats().PerksChosen)
	assert.Equal(t, levels, s.Stats().LevelsGained)
}

func TestChoosePerkErrors(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	assert.ErrorIs(t, h.session.ChoosePerk(0), ErrNoPerkOffer)

	h.session.run.progression.AddXP(5)
	h.session.Tick(tick)
	require.Equal(t, PhasePaused, h.session.Phase())
	assert.ErrorIs(t, h.session.ChoosePerk(7), ErrInvalidPerkChoice)
	assert.ErrorIs(t, h.session.ChoosePerk(-1), ErrInvalidPerkChoice)
	assert.NoError(t, h.session.ChoosePerk(2))
}

func TestDeathEndsTheRunAndRestartGoesToLoading(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	s := h.session
	log := &phaseLog{}
	s.Dispatcher().Subscribe(event.PhaseChanged, log)

	s.Loadout().Health.Current = 1
	enemy := h.enemy(defs.EnemySmall)
	h.phys.inject = []types.Collision{{A: enemy, B: s.run.playerID}}
	s.Tick(tick)

	require.Equal(t, PhaseGameOver, s.Phase())
	assert.Zero(t, h.display.health)
	assert.Equal(t, uint64(1), s.Stats().DamageTaken)
	assert.Contains(t, h.audio.cues, defs.CuePlayerHit)
	assert.NotContains(t, h.audio.cues, defs.CueLevelUp)

	s.Tick(tick)
	assert.Equal(t, PhaseGameOver, s.Phase())
	s.TogglePause()
	assert.Equal(t, PhaseGameOver, s.Phase())

	require.NoError(t, s.Restart())
	assert.Equal(t, PhaseLoading, s.Phase())
	require.NoError(t, s.AssetsReady())
	snap := s.Snapshot()
	assert.Equal(t, uint64(1), snap.Level)
	assert.Zero(t, snap.XP)
	assert.Equal(t, snap.Health.Max, snap.Health.Current)
	assert.Zero(t, snap.Enemies)
	assert.Zero(t, s.Stats().DamageTaken)
	assert.Equal(t, []string{"game_over", "loading", "playing"}, log.phases)
}

// deathLog keeps the last PlayerDied payload.
type deathLog struct {
	got []event.PlayerDiedData
}

func (l *deathLog) OnEvent(e event.Event) { l.got = append(l.got, e.Data.(event.PlayerDiedData)) }

func TestPlayerDiedCarriesTheRunSummary(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	s := h.session
	deaths := &deathLog{}
	s.Dispatcher().Subscribe(event.PlayerDied, deaths)

	s.Tick(tick)
	s.Loadout().Health.Current = 1
	enemy := h.enemy(defs.EnemySmall)
	h.phys.inject = []types.Collision{{A: enemy, B: s.run.playerID}}
	s.Tick(tick)

	require.Len(t, deaths.got, 1)
	assert.Equal(t, uint64(1), deaths.got[0].Level)
	assert.Zero(t, deaths.got[0].XP)
	assert.InDelta(t, 2*tick, deaths.got[0].Survived, 1e-9)
}

func TestRestartOnlyFromGameOver(t *testing.T) {
	h := newHarness(t, nil)
	assert.ErrorIs(t, h.session.Restart(), ErrWrongPhase, "still loading")

	h.start(t)
	assert.ErrorIs(t, h.session.Restart(), ErrWrongPhase)
	assert.Equal(t, PhasePlaying, h.session.Phase())

	h.session.TogglePause()
	assert.ErrorIs(t, h.session.Restart(), ErrWrongPhase)
	assert.Equal(t, PhasePaused, h.session.Phase())
}

func TestMusicFollowsTheLife(t *testing.T) {
	h := newHarness(t, nil)
	s := h.session
	assert.Empty(t, h.audio.music, "no music while loading")

	h.start(t)
	assert.Equal(t, []string{"start"}, h.audio.music)
	tun := config.Default()
	assert.InDelta(t, tun.Audio.Volume*tun.Audio.MusicVolume, h.audio.gain, 1e-9)

	s.TogglePause()
	s.TogglePause()
	assert.Equal(t, []string{"start"}, h.audio.music, "pausing keeps the loop")

	s.Loadout().Health.Current = 1
	enemy := h.enemy(defs.EnemySmall)
	h.phys.inject = []types.Collision{{A: enemy, B: s.run.playerID}}
	s.Tick(tick)
	require.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, []string{"start", "stop"}, h.audio.music)

	require.NoError(t, s.Restart())
	require.NoError(t, s.AssetsReady())
	assert.Equal(t, []string{"start", "stop", "stop", "start"}, h.audio.music)
}

func TestMutedTuningStartsMusicSilently(t *testing.T) {
	h := newHarness(t, func(tun *config.Tuning) { tun.Audio.Muted = true })
	h.start(t)
	assert.Equal(t, []string{"start"}, h.audio.music)
	assert.Zero(t, h.audio.gain)
}

// spawnWatcher records where each enemy's body is when it appears.
type spawnWatcher struct {
	h      *harness
	places []types.Vec2
}

func (w *spawnWatcher) OnEvent(e event.Event) {
	data := e.Data.(event.EnemySpawnedData)
	pos, _ := w.h.phys.Position(types.EntityID(data.ID))
	w.places = append(w.places, pos)
}

func TestSpawnerPlacesEnemiesOffScreen(t *testing.T) {
	h := newHarness(t, func(tun *config.Tuning) {
		tun.Spawn.InitialInterval = 0.05
		tun.Spawn.MinInterval = 0.05
	})
	h.start(t)
	s := h.session
	w := &spawnWatcher{h: h}
	s.Dispatcher().Subscribe(event.EnemySpawned, w)

	for range 30 {
		s.Tick(tick)
	}
	require.NotEmpty(t, w.places)
	assert.Equal(t, s.Snapshot().Enemies, h.display.enemies)
	assert.Equal(t, len(w.places), s.Stats().EnemiesSpawned)

	view, ok := s.View()
	require.True(t, ok)
	for _, p := range w.places {
		assert.False(t, view.Contains(p), "enemy spawned on screen at %v", p)
	}
}

func TestEnemiesChaseThePlayer(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	s := h.session
	enemy := h.enemy(defs.EnemySmall)
	start, _ := h.phys.Position(enemy)
	for range 30 {
		s.Tick(tick)
	}
	now, _ := h.phys.Position(enemy)
	player, _ := s.Camera()
	assert.Less(t, now.Dist(player), start.Dist(player))
}

func TestMovementInputMovesPlayer(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	s := h.session
	s.SetMoveInput(types.Vec2{X: 1})
	for range 30 {
		s.Tick(tick)
	}
	pos, ok := s.Camera()
	require.True(t, ok)
	assert.Greater(t, pos.X, 0.0)
	assert.InDelta(t, 0, pos.Y, 1e-6)
}

func TestSeededSessionsAreReproducible(t *testing.T) {
	run := func() []types.Vec2 {
		h := newHarness(t, func(tun *config.Tuning) {
			tun.Spawn.InitialInterval = 0.1
			tun.Spawn.MinInterval = 0.1
		})
		h.start(t)
		for range 20 {
			h.session.Tick(tick)
		}
		var out []types.Vec2
		for _, id := range h.session.ECS().SortedEnemyIDs() {
			p, _ := h.phys.Position(id)
			out = append(out, p)
		}
		return out
	}
	first := run()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestTeleportFollowsAim(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	s := h.session
	assert.False(t, s.UseSecondary(), "empty slot")

	r := s.run
	require.True(t, s.perks.Apply(defs.PerkUnlockTeleport, system.PerkTargets{
		Loadout: r.loadout, Animation: r.animParams, Enemies: r.modifiers,
	}))
	s.SetAim(types.Vec2{X: 100})
	require.True(t, s.UseSecondary())
	pos, _ := s.Camera()
	assert.InDelta(t, 100, pos.X, 1e-9)
	assert.Contains(t, h.audio.cues, defs.CueTeleport)

	assert.False(t, s.UseSecondary(), "cooling down")
}

func TestScreenToWorldIsCenteredOnPlayer(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	w, ok := h.session.ScreenToWorld(config.ScreenWidth/2, config.ScreenHeight/2)
	require.True(t, ok)
	assert.InDelta(t, 0, w.X, 1e-9)
	assert.InDelta(t, 0, w.Y, 1e-9)
}

func TestLegacyMessages(t *testing.T) {
	assert.Equal(t, "You will be forgotten.", LegacyMessage(1))
	assert.Equal(t, "Your efforts were not in vain, but you will be forgotten.", LegacyMessage(4))
	assert.Equal(t, "You will be remembered.", LegacyMessage(10))
	assert.Equal(t, "Your heroic feats will be remembered for all time.", LegacyMessage(15))
	assert.Equal(t, "You perished at level 3 with 12 XP.\nYou will be forgotten.", GameOverText(3, 12))
}

package system

import (
	"testing"

	"go-too-many/internal/config"
	"go-too-many/internal/defs"
	"go-too-many/internal/types"
	"go-too-many/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpawner(t *testing.T, cfg config.SpawnTuning) *WaveSpawner {
	t.Helper()
	table, err := NewDefaultSpawnTable()
	require.NoError(t, err)
	s, err := NewWaveSpawner(cfg, table, defs.WeightBumpSchedule, utils.NewPRNGService(3))
	require.NoError(t, err)
	return s
}

func TestNewWaveSpawnerRejectsBadConfig(t *testing.T) {
	table, err := NewDefaultSpawnTable()
	require.NoError(t, err)
	rng := utils.NewPRNGService(1)
	base := config.Default().Spawn

	_, err = NewWaveSpawner(base, table, nil, rng)
	assert.ErrorIs(t, err, ErrEmptySchedule)

	_, err = NewWaveSpawner(base, nil, defs.WeightBumpSchedule, rng)
	assert.ErrorIs(t, err, ErrEmptySpawnTable)

	bad := base
	bad.IntervalDecay = 1
	_, err = NewWaveSpawner(bad, table, defs.WeightBumpSchedule, rng)
	assert.ErrorIs(t, err, ErrInvalidDecay)

	bad = base
	bad.WeightPeriod = 0
	_, err = NewWaveSpawner(bad, table, defs.WeightBumpSchedule, rng)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = NewWaveSpawner(base, table, []defs.EnemyKind{defs.EnemyKind(42)}, rng)
	assert.ErrorIs(t, err, ErrUnknownArchetype)
}

func TestSpawnsLandOutsideTheViewBuffer(t *testing.T) {
	cfg := config.Default().Spawn
	s := newSpawner(t, cfg)
	view := types.RectAround(types.Vec2{X: 500, Y: -200}, 1280, 720)

	var cmds []SpawnCommand
	for len(cmds) < 200 {
		cmds = append(cmds, s.Update(cfg.InitialInterval, view)...)
	}
	for _, c := range cmds {
		p := c.Position
		outside := p.X <= view.Min.X-cfg.EdgeBuffer || p.X >= view.Max.X+cfg.EdgeBuffer ||
			p.Y <= view.Min.Y-cfg.EdgeBuffer || p.Y >= view.Max.Y+cfg.EdgeBuffer
		require.True(t, outside, "spawn %v is inside the buffered view", p)

		arch := c.Archetype
		assert.GreaterOrEqual(t, c.Size, arch.Size.Min)
		assert.LessOrEqual(t, c.Size, arch.Size.Max)
		assert.GreaterOrEqual(t, c.MaxSpeed, arch.MaxSpeed.Min)
		assert.LessOrEqual(t, c.MaxSpeed, arch.MaxSpeed.Max)
	}
}

func TestSpawnTimerFiresPerInterval(t *testing.T) {
	cfg := config.Default().Spawn
	cfg.ShrinkPeriod = 1000
	cfg.WeightPeriod = 1000
	s := newSpawner(t, cfg)
	view := types.RectAround(types.Vec2{}, 100, 100)

	assert.Empty(t, s.Update(cfg.InitialInterval*0.5, view))
	assert.Len(t, s.Update(cfg.InitialInterval*0.5, view), 1)
	assert.Len(t, s.Update(cfg.InitialInterval*3, view), 3)
}

func TestIntervalShrinksToFloor(t *testing.T) {
	cfg := config.Default().Spawn
	s := newSpawner(t, cfg)
	view := types.RectAround(types.Vec2{}, 100, 100)

	s.Update(cfg.ShrinkPeriod, view)
	assert.InDelta(t, cfg.InitialInterval*cfg.IntervalDecay, s.Interval(), 1e-9)

	prev := s.Interval()
	for range 500 {
		s.Update(cfg.ShrinkPeriod, view)
		require.LessOrEqual(t, s.Interval(), prev)
		prev = s.Interval()
	}
	assert.Equal(t, cfg.MinInterval, s.Interval())
}

func TestWeightShiftWalksScheduleRoundRobin(t *testing.T) {
	cfg := config.Default().Spawn
	cfg.ShrinkPeriod = 1e6
	s := newSpawner(t, cfg)
	view := types.RectAround(types.Vec2{}, 100, 100)

	want := map[defs.EnemyKind]float64{}
	for k, w := range defs.InitialSpawnWeights {
		want[k] = w
	}
	steps := len(defs.WeightBumpSchedule) + 2
	for i := range steps {
		s.Update(cfg.WeightPeriod, view)
		want[defs.WeightBumpSchedule[i%len(defs.WeightBumpSchedule)]]++
	}
	for kind, w := range want {
		assert.Equal(t, w, s.Table().Weight(kind), "weight of %v", kind)
	}
	assert.Equal(t, 2, s.ScheduleIndex())
}

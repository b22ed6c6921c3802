// internal/system/wave.go
package system

import (
	"errors"
	"fmt"

	"go-too-many/internal/clock"
	"go-too-many/internal/config"
	"go-too-many/internal/defs"
	"go-too-many/internal/types"
	"go-too-many/internal/utils"
)

var (
	ErrEmptySchedule    = errors.New("weight bump schedule is empty")
	ErrInvalidDecay     = errors.New("interval decay must be in (0, 1)")
	ErrInvalidPeriod    = errors.New("spawner periods must be positive")
	ErrInvalidIntervals = errors.New("spawn intervals must be positive and min <= initial")
)

// SpawnCommand asks the session to create one enemy.
type SpawnCommand struct {
	Archetype defs.EnemyArchetype
	Position  types.Vec2
	Size      float64
	MaxSpeed  float64
}

// WaveSpawner decides when, where and what to spawn. Spawning speeds up over
// time and the mix drifts toward harder archetypes.
type WaveSpawner struct {
	table    *WeightedSpawnTable
	schedule []defs.EnemyKind
	rng      *utils.PRNGService

	interval    float64
	minInterval float64
	decay       float64
	buffer      float64
	depth       float64

	spawnTimer  *clock.Timer
	shrinkTimer *clock.Timer
	weightTimer *clock.Timer
	scheduleIdx int
}

func NewWaveSpawner(cfg config.SpawnTuning, table *WeightedSpawnTable, schedule []defs.EnemyKind, rng *utils.PRNGService) (*WaveSpawner, error) {
	if table == nil || table.Len() == 0 {
		return nil, ErrEmptySpawnTable
	}
	if len(schedule) == 0 {
		return nil, ErrEmptySchedule
	}
	for _, kind := range schedule {
		if table.indexOf(kind) < 0 {
			return nil, fmt.Errorf("schedule: %w: %v", ErrUnknownArchetype, kind)
		}
	}
	if cfg.IntervalDecay <= 0 || cfg.IntervalDecay >= 1 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidDecay, cfg.IntervalDecay)
	}
	if cfg.ShrinkPeriod <= 0 || cfg.WeightPeriod <= 0 {
		return nil, ErrInvalidPeriod
	}
	if cfg.InitialInterval <= 0 || cfg.MinInterval <= 0 || cfg.MinInterval > cfg.InitialInterval {
		return nil, ErrInvalidIntervals
	}

	return &WaveSpawner{
		table:       table,
		schedule:    append([]defs.EnemyKind(nil), schedule...),
		rng:         rng,
		interval:    cfg.InitialInterval,
		minInterval: cfg.MinInterval,
		decay:       cfg.IntervalDecay,
		buffer:      cfg.EdgeBuffer,
		depth:       cfg.StripDepth,
		spawnTimer:  clock.NewTimer(cfg.InitialInterval, clock.Repeating),
		shrinkTimer: clock.NewTimer(cfg.ShrinkPeriod, clock.Repeating),
		weightTimer: clock.NewTimer(cfg.WeightPeriod, clock.Repeating),
	}, nil
}

// Update advances the three timers by dt and returns the enemies to spawn
// around view.
func (s *WaveSpawner) Update(dt float64, view types.Rect) []SpawnCommand {
	var cmds []SpawnCommand
	for range s.spawnTimer.Tick(dt) {
		cmds = append(cmds, s.spawnOne(view))
	}

	for range s.shrinkTimer.Tick(dt) {
		s.interval *= s.decay
		if s.interval < s.minInterval {
			s.interval = s.minInterval
		}
		s.spawnTimer.SetDuration(s.interval)
	}

	for range s.weightTimer.Tick(dt) {
		kind := s.schedule[s.scheduleIdx]
		s.scheduleIdx = (s.scheduleIdx + 1) % len(s.schedule)
		// kind was validated at construction and +1 cannot fail
		_ = s.table.BumpWeight(kind, 1)
	}
	return cmds
}

func (s *WaveSpawner) spawnOne(view types.Rect) SpawnCommand {
	arch := s.table.Choose(s.rng)
	return SpawnCommand{
		Archetype: arch,
		Position:  s.borderPoint(view),
		Size:      s.rng.Range(arch.Size.Min, arch.Size.Max),
		MaxSpeed:  s.rng.Range(arch.MaxSpeed.Min, arch.MaxSpeed.Max),
	}
}

// borderPoint picks a point in one of four strips around view, each pushed
// out from the edge by the buffer.
func (s *WaveSpawner) borderPoint(view types.Rect) types.Vec2 {
	outMinX := view.Min.X - s.buffer - s.depth
	outMaxX := view.Max.X + s.buffer + s.depth
	outMinY := view.Min.Y - s.buffer - s.depth
	outMaxY := view.Max.Y + s.buffer + s.depth

	switch s.rng.Intn(4) {
	case 0: // left
		return types.Vec2{X: s.rng.Range(outMinX, view.Min.X-s.buffer), Y: s.rng.Range(outMinY, outMaxY)}
	case 1: // right
		return types.Vec2{X: s.rng.Range(view.Max.X+s.buffer, outMaxX), Y: s.rng.Range(outMinY, outMaxY)}
	case 2: // top
		return types.Vec2{X: s.rng.Range(outMinX, outMaxX), Y: s.rng.Range(outMinY, view.Min.Y-s.buffer)}
	default: // bottom
		return types.Vec2{X: s.rng.Range(outMinX, outMaxX), Y: s.rng.Range(view.Max.Y+s.buffer, outMaxY)}
	}
}

// Interval is the current time between spawns.
func (s *WaveSpawner) Interval() float64 { return s.interval }

func (s *WaveSpawner) Table() *WeightedSpawnTable { return s.table }

// ScheduleIndex is the position of the next weight bump in the schedule.
func (s *WaveSpawner) ScheduleIndex() int { return s.scheduleIdx }

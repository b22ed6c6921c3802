// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay number a run depends on. Defaults are compiled
// in; a YAML file may override any subset of them.
type Tuning struct {
	Spawn     SpawnTuning     `yaml:"spawn"`
	XP        XPTuning        `yaml:"xp"`
	Player    PlayerTuning    `yaml:"player"`
	Sword     SwordTuning     `yaml:"sword"`
	Grenade   GrenadeTuning   `yaml:"grenade"`
	Teleport  TeleportTuning  `yaml:"teleport"`
	Explosion ExplosionTuning `yaml:"explosion"`
	Regen     RegenTuning     `yaml:"regen"`
	SlowMo    SlowMoTuning    `yaml:"slow_motion"`
	Enemies   EnemyTuning     `yaml:"enemies"`
	Audio     AudioTuning     `yaml:"audio"`
}

type SpawnTuning struct {
	InitialInterval float64 `yaml:"initial_interval"`
	MinInterval     float64 `yaml:"min_interval"`
	IntervalDecay   float64 `yaml:"interval_decay"`
	ShrinkPeriod    float64 `yaml:"shrink_period"`
	WeightPeriod    float64 `yaml:"weight_period"`
	EdgeBuffer      float64 `yaml:"edge_buffer"`
	StripDepth      float64 `yaml:"strip_depth"`
}

type XPTuning struct {
	FirstThreshold uint64  `yaml:"first_threshold"`
	Multiplier     float64 `yaml:"multiplier"`
}

type PlayerTuning struct {
	MaxSpeed         float64 `yaml:"max_speed"`
	MaxHealth        uint64  `yaml:"max_health"`
	Radius           float64 `yaml:"radius"`
	KnockbackImpulse float64 `yaml:"knockback_impulse"`
	Acceleration     float64 `yaml:"acceleration"`
}

type SwordTuning struct {
	AttackCooldown  float64 `yaml:"attack_cooldown"`
	Length          float64 `yaml:"length"`
	Width           float64 `yaml:"width"`
	SwingAngle      float64 `yaml:"swing_angle"`
	SwingDuration   float64 `yaml:"swing_duration"`
	PutAwayDuration float64 `yaml:"put_away_duration"`
}

type GrenadeTuning struct {
	Cooldown float64 `yaml:"cooldown"`
	Radius   float64 `yaml:"radius"`
}

type TeleportTuning struct {
	Cooldown float64 `yaml:"cooldown"`
	Radius   float64 `yaml:"radius"`
	Range    float64 `yaml:"range"`
}

type ExplosionTuning struct {
	Duration float64 `yaml:"duration"`
}

type RegenTuning struct {
	Amount   uint64  `yaml:"amount"`
	Interval float64 `yaml:"interval"`
}

type SlowMoTuning struct {
	Factor   float64 `yaml:"factor"`
	Duration float64 `yaml:"duration"`
}

type EnemyTuning struct {
	SteeringGain float64 `yaml:"steering_gain"`
}

type AudioTuning struct {
	Volume float64 `yaml:"volume"`
	// MusicVolume scales Volume for the background loop.
	MusicVolume float64 `yaml:"music_volume"`
	Muted       bool    `yaml:"muted"`
}

// Default returns the compiled-in tuning.
func Default() Tuning {
	var t Tuning
	t.ApplyDefaults()
	return t
}

// ApplyDefaults fills every zero field with its compiled-in value.
func (t *Tuning) ApplyDefaults() {
	s := &t.Spawn
	if s.InitialInterval == 0 {
		s.InitialInterval = 1.5
	}
	if s.MinInterval == 0 {
		s.MinInterval = 0.2
	}
	if s.IntervalDecay == 0 {
		s.IntervalDecay = 0.95
	}
	if s.ShrinkPeriod == 0 {
		s.ShrinkPeriod = 5
	}
	if s.WeightPeriod == 0 {
		s.WeightPeriod = 15
	}
	if s.EdgeBuffer == 0 {
		s.EdgeBuffer = 60
	}
	if s.StripDepth == 0 {
		s.StripDepth = 120
	}

	if t.XP.FirstThreshold == 0 {
		t.XP.FirstThreshold = 5
	}
	if t.XP.Multiplier == 0 {
		t.XP.Multiplier = 1.2
	}

	p := &t.Player
	if p.MaxSpeed == 0 {
		p.MaxSpeed = 350
	}
	if p.MaxHealth == 0 {
		p.MaxHealth = 100
	}
	if p.Radius == 0 {
		p.Radius = 25
	}
	if p.KnockbackImpulse == 0 {
		p.KnockbackImpulse = 600
	}
	if p.Acceleration == 0 {
		p.Acceleration = 12
	}

	sw := &t.Sword
	if sw.AttackCooldown == 0 {
		sw.AttackCooldown = 0.5
	}
	if sw.Length == 0 {
		sw.Length = 90
	}
	if sw.Width == 0 {
		sw.Width = 12
	}
	if sw.SwingAngle == 0 {
		sw.SwingAngle = 2.2
	}
	if sw.SwingDuration == 0 {
		sw.SwingDuration = 0.18
	}
	if sw.PutAwayDuration == 0 {
		sw.PutAwayDuration = 0.12
	}

	if t.Grenade.Cooldown == 0 {
		t.Grenade.Cooldown = 4
	}
	if t.Grenade.Radius == 0 {
		t.Grenade.Radius = 120
	}
	if t.Teleport.Cooldown == 0 {
		t.Teleport.Cooldown = 5
	}
	if t.Teleport.Radius == 0 {
		t.Teleport.Radius = 100
	}
	if t.Teleport.Range == 0 {
		t.Teleport.Range = 350
	}
	if t.Explosion.Duration == 0 {
		t.Explosion.Duration = 0.35
	}
	if t.Regen.Amount == 0 {
		t.Regen.Amount = 1
	}
	if t.Regen.Interval == 0 {
		t.Regen.Interval = 2
	}
	if t.SlowMo.Factor == 0 {
		t.SlowMo.Factor = 0.2
	}
	if t.SlowMo.Duration == 0 {
		t.SlowMo.Duration = 0.08
	}
	if t.Enemies.SteeringGain == 0 {
		t.Enemies.SteeringGain = 4
	}
	if t.Audio.Volume == 0 {
		t.Audio.Volume = 0.5
	}
	if t.Audio.MusicVolume == 0 {
		t.Audio.MusicVolume = 0.5
	}
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(t.Spawn.InitialInterval > 0, "spawn.initial_interval must be > 0, got %v", t.Spawn.InitialInterval)
	check(t.Spawn.MinInterval > 0, "spawn.min_interval must be > 0, got %v", t.Spawn.MinInterval)
	check(t.Spawn.MinInterval <= t.Spawn.InitialInterval, "spawn.min_interval %v exceeds initial_interval %v", t.Spawn.MinInterval, t.Spawn.InitialInterval)
	check(t.Spawn.IntervalDecay > 0 && t.Spawn.IntervalDecay < 1, "spawn.interval_decay must be in (0, 1), got %v", t.Spawn.IntervalDecay)
	check(t.Spawn.ShrinkPeriod > 0, "spawn.shrink_period must be > 0")
	check(t.Spawn.WeightPeriod > 0, "spawn.weight_period must be > 0")
	check(t.Spawn.StripDepth > 0, "spawn.strip_depth must be > 0")
	check(t.XP.FirstThreshold > 0, "xp.first_threshold must be > 0")
	check(t.XP.Multiplier > 1, "xp.multiplier must be > 1, got %v", t.XP.Multiplier)
	check(t.Player.MaxSpeed > 0, "player.max_speed must be > 0")
	check(t.Player.MaxHealth > 0, "player.max_health must be > 0")
	check(t.Player.Acceleration > 0, "player.acceleration must be > 0")
	check(t.Enemies.SteeringGain > 0, "enemies.steering_gain must be > 0")
	check(t.Sword.AttackCooldown > 0, "sword.attack_cooldown must be > 0")
	check(t.Sword.Length > 0, "sword.length must be > 0")
	check(t.SlowMo.Factor > 0 && t.SlowMo.Factor <= 1, "slow_motion.factor must be in (0, 1], got %v", t.SlowMo.Factor)
	check(t.Audio.Volume >= 0 && t.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %v", t.Audio.Volume)
	check(t.Audio.MusicVolume >= 0 && t.Audio.MusicVolume <= 1, "audio.music_volume must be in [0, 1], got %v", t.Audio.MusicVolume)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTuning, errors.Join(errs...))
	}
	return nil
}

// LoadTuning reads overrides from path on top of the defaults. An empty path
// or a missing file yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	var t Tuning
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	t.ApplyDefaults()
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

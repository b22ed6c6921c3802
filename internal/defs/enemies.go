// internal/defs/enemies.go
package defs

import "image/color"

// EnemyKind identifies an archetype. The order of the constants is the order
// of the spawn table.
type EnemyKind int

const (
	EnemySmall EnemyKind = iota
	EnemyFast
	EnemyBig
	EnemyHuge
)

func (k EnemyKind) String() string {
	if def, ok := EnemyLibrary[k]; ok {
		return def.Name
	}
	return "unknown"
}

// FloatRange is a closed interval that per-instance stats are drawn from.
type FloatRange struct {
	Min float64
	Max float64
}

// EnemyArchetype holds all the static data for one kind of enemy.
type EnemyArchetype struct {
	Kind     EnemyKind
	Name     string
	Color    color.RGBA
	Size     FloatRange // radius in pixels
	MaxSpeed FloatRange // pixels per second
	Damage   uint64
	XPReward uint64
}

// EnemyLibrary is the library of all enemy archetypes, keyed by kind.
var EnemyLibrary = map[EnemyKind]EnemyArchetype{
	EnemySmall: {
		Kind:     EnemySmall,
		Name:     "small",
		Color:    color.RGBA{200, 60, 60, 255},
		Size:     FloatRange{Min: 10, Max: 14},
		MaxSpeed: FloatRange{Min: 110, Max: 150},
		Damage:   5,
		XPReward: 1,
	},
	EnemyFast: {
		Kind:     EnemyFast,
		Name:     "fast",
		Color:    color.RGBA{230, 180, 40, 255},
		Size:     FloatRange{Min: 8, Max: 11},
		MaxSpeed: FloatRange{Min: 210, Max: 260},
		Damage:   5,
		XPReward: 2,
	},
	EnemyBig: {
		Kind:     EnemyBig,
		Name:     "big",
		Color:    color.RGBA{140, 60, 200, 255},
		Size:     FloatRange{Min: 20, Max: 26},
		MaxSpeed: FloatRange{Min: 80, Max: 100},
		Damage:   15,
		XPReward: 3,
	},
	EnemyHuge: {
		Kind:     EnemyHuge,
		Name:     "huge",
		Color:    color.RGBA{60, 60, 60, 255},
		Size:     FloatRange{Min: 36, Max: 44},
		MaxSpeed: FloatRange{Min: 50, Max: 70},
		Damage:   30,
		XPReward: 8,
	},
}

// EnemyOrder lists the kinds in spawn-table order.
var EnemyOrder = []EnemyKind{EnemySmall, EnemyFast, EnemyBig, EnemyHuge}

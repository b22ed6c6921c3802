// internal/component/enemy.go
package component

import "go-too-many/internal/defs"

// Enemy представляет вражескую сущность с уже разыгранными параметрами.
type Enemy struct {
	Kind     defs.EnemyKind
	Size     float64
	MaxSpeed float64
	Damage   uint64
	XPReward uint64
}

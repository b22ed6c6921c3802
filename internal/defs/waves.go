// internal/defs/waves.go
package defs

// InitialSpawnWeights is the starting composition: only small enemies.
var InitialSpawnWeights = map[EnemyKind]float64{
	EnemySmall: 1,
	EnemyFast:  0,
	EnemyBig:   0,
	EnemyHuge:  0,
}

// WeightBumpSchedule is walked round-robin by the wave spawner; each step
// adds one weight to the named kind.
var WeightBumpSchedule = []EnemyKind{
	EnemySmall,
	EnemyFast,
	EnemySmall,
	EnemyBig,
	EnemyFast,
	EnemyHuge,
}

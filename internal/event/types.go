// internal/event/types.go
package event

const (
	EnemySpawned     EventType = "EnemySpawned"     // Data: EnemySpawnedData
	EnemyKilled      EventType = "EnemyKilled"      // Data: EnemyKilledData
	PlayerHit        EventType = "PlayerHit"        // Data: PlayerHitData
	PlayerDied       EventType = "PlayerDied"       // Data: PlayerDiedData
	LevelUp          EventType = "LevelUp"          // Data: LevelUpData
	PerkChosen       EventType = "PerkChosen"       // Data: defs.PerkKind
	SwordSwung       EventType = "SwordSwung"       // без данных
	ExplosionStarted EventType = "ExplosionStarted" // Data: ExplosionData
	Teleported       EventType = "Teleported"       // Data: ExplosionData (позиция прибытия)
	PhaseChanged     EventType = "PhaseChanged"     // Data: string (новая фаза)
)

// KillSource says what destroyed an enemy.
type KillSource string

const (
	KillBySword     KillSource = "sword"
	KillByExplosion KillSource = "explosion"
	KillByRetaliate KillSource = "retaliate"
)

type EnemySpawnedData struct {
	ID   uint64
	Kind int
}

type EnemyKilledData struct {
	ID       uint64
	XP       uint64
	Source   KillSource
	Position [2]float64
}

type PlayerHitData struct {
	Damage    uint64
	HealthNow uint64
	HealthMax uint64
}

type LevelUpData struct {
	Level uint64
	XP    uint64
}

// PlayerDiedData - итоги жизни.
type PlayerDiedData struct {
	Level    uint64
	XP       uint64
	Survived float64
}

type ExplosionData struct {
	X, Y   float64
	Radius float64
}

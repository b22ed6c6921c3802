// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-too-many/internal/component"
	"go-too-many/internal/tween"
	"go-too-many/internal/types"
)

// ECS is the entity arena: one typed map per component kind. Kind checks are
// plain map lookups.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Players     map[types.EntityID]*component.Player
	Swords      map[types.EntityID]*component.Sword
	Explosions  map[types.EntityID]*component.Explosion
	Animations  map[types.EntityID]*tween.Animation
	Flashes     map[types.EntityID]*component.DamageFlash

	despawn map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Players:     make(map[types.EntityID]*component.Player),
		Swords:      make(map[types.EntityID]*component.Sword),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Animations:  make(map[types.EntityID]*tween.Animation),
		Flashes:     make(map[types.EntityID]*component.DamageFlash),
		despawn:     make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Exists reports whether id still has any component.
func (ecs *ECS) Exists(id types.EntityID) bool {
	if _, ok := ecs.Positions[id]; ok {
		return true
	}
	if _, ok := ecs.Enemies[id]; ok {
		return true
	}
	if _, ok := ecs.Players[id]; ok {
		return true
	}
	if _, ok := ecs.Swords[id]; ok {
		return true
	}
	_, ok := ecs.Explosions[id]
	return ok
}

// QueueDespawn marks id for removal at the end of the tick. Queuing twice is
// harmless.
func (ecs *ECS) QueueDespawn(id types.EntityID) {
	ecs.despawn[id] = struct{}{}
}

func (ecs *ECS) IsDespawning(id types.EntityID) bool {
	_, ok := ecs.despawn[id]
	return ok
}

func (ecs *ECS) PendingDespawns() int { return len(ecs.despawn) }

// FlushDespawns removes every queued entity in ascending id order. onRemove,
// if set, runs before the components are dropped.
func (ecs *ECS) FlushDespawns(onRemove func(types.EntityID)) []types.EntityID {
	if len(ecs.despawn) == 0 {
		return nil
	}
	ids := make([]types.EntityID, 0, len(ecs.despawn))
	for id := range ecs.despawn {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if onRemove != nil {
			onRemove(id)
		}
		ecs.remove(id)
	}
	clear(ecs.despawn)
	return ids
}

func (ecs *ECS) remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Players, id)
	delete(ecs.Swords, id)
	delete(ecs.Explosions, id)
	delete(ecs.Animations, id)
	delete(ecs.Flashes, id)
}

// EnemyCount counts live enemies, excluding those queued for removal.
func (ecs *ECS) EnemyCount() int {
	n := 0
	for id := range ecs.Enemies {
		if !ecs.IsDespawning(id) {
			n++
		}
	}
	return n
}

// SortedEnemyIDs returns enemy ids in ascending order for deterministic
// iteration.
func (ecs *ECS) SortedEnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// internal/system/visual_effect.go
package system

import (
	"go-too-many/internal/component"
	"go-too-many/internal/entity"
	"go-too-many/internal/types"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs      *entity.ECS
	duration float64
}

func NewVisualEffectSystem(ecs *entity.ECS, flashDuration float64) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, duration: flashDuration}
}

// Flash (re)starts the damage flash on id.
func (s *VisualEffectSystem) Flash(id types.EntityID) {
	if f, ok := s.ecs.Flashes[id]; ok {
		f.Timer = 0
		return
	}
	s.ecs.Flashes[id] = &component.DamageFlash{Duration: s.duration}
}

// Update обновляет таймеры вспышек и убирает истёкшие.
func (s *VisualEffectSystem) Update(dt float64) {
	for id, flash := range s.ecs.Flashes {
		flash.Timer += dt
		if flash.Timer >= flash.Duration {
			delete(s.ecs.Flashes, id)
		}
	}
}

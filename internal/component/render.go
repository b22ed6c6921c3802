// internal/component/render.go
package component

import "image/color"

// Renderable - компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}

// DamageFlash - сущность рисуется цветом урона, пока Timer < Duration.
type DamageFlash struct {
	Timer    float64
	Duration float64
}

// Fraction is the remaining share of the flash, 1 when fresh.
func (f *DamageFlash) Fraction() float64 {
	if f.Duration <= 0 {
		return 0
	}
	return 1 - f.Timer/f.Duration
}

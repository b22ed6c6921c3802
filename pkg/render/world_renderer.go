// pkg/render/world_renderer.go
package render

import (
	"math"

	"go-too-many/internal/config"
	"go-too-many/internal/entity"
	"go-too-many/internal/system"
	"go-too-many/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldRenderer рисует сущности относительно камеры.
type WorldRenderer struct{}

func NewWorldRenderer() *WorldRenderer {
	return &WorldRenderer{}
}

// Draw renders ecs so that camera ends up at the center of screen.
func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, camera types.Vec2) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	origin := camera.Sub(types.Vec2{X: float64(w) / 2, Y: float64(h) / 2})
	toScreen := func(p types.Vec2) (float32, float32) {
		return float32(p.X - origin.X), float32(p.Y - origin.Y)
	}

	screen.Fill(config.BackgroundColor)
	r.drawGrid(screen, origin, w, h)
	if ecs == nil {
		return
	}

	// Взрывы под остальными сущностями
	for id, ex := range ecs.Explosions {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := toScreen(types.Vec2{X: pos.X, Y: pos.Y})
		vector.DrawFilledCircle(screen, x, y, float32(ex.Radius*ex.Scale), FadeColor(config.ExplosionColor, ex.Alpha), true)
	}

	for id, enemy := range ecs.Enemies {
		pos, ok := ecs.Positions[id]
		rend, okR := ecs.Renderables[id]
		if !ok || !okR {
			continue
		}
		x, y := toScreen(types.Vec2{X: pos.X, Y: pos.Y})
		vector.DrawFilledCircle(screen, x, y, float32(enemy.Size), DarkenColor(rend.Color), true)
		vector.DrawFilledCircle(screen, x, y, float32(enemy.Size)-config.StrokeWidth, rend.Color, true)
	}

	for id, player := range ecs.Players {
		pos, ok := ecs.Positions[id]
		rend, okR := ecs.Renderables[id]
		if !ok || !okR {
			continue
		}
		center := types.Vec2{X: pos.X, Y: pos.Y}
		x, y := toScreen(center)
		if rend.HasStroke {
			vector.DrawFilledCircle(screen, x, y, rend.Radius+config.StrokeWidth, config.TextLightColor, true)
		}
		body := rend.Color
		if flash, ok := ecs.Flashes[id]; ok {
			body = MixColor(rend.Color, config.DamageFlashColor, flash.Fraction())
		}
		vector.DrawFilledCircle(screen, x, y, rend.Radius, body, true)

		if sword, ok := ecs.Swords[player.SwordID]; ok {
			start, end := system.SwordSegment(center, player.Radius, sword)
			sx, sy := toScreen(start)
			tx, ty := toScreen(end)
			c := config.SwordColor
			if sword.Active {
				c = config.SwordActiveColor
			}
			vector.StrokeLine(screen, sx, sy, tx, ty, float32(sword.Width), FadeColor(c, sword.Alpha), true)
		}
	}
}

func (r *WorldRenderer) drawGrid(screen *ebiten.Image, origin types.Vec2, w, h int) {
	step := config.GridStep
	startX := math.Floor(origin.X/step) * step
	startY := math.Floor(origin.Y/step) * step
	for x := startX; x < origin.X+float64(w); x += step {
		sx := float32(x - origin.X)
		vector.StrokeLine(screen, sx, 0, sx, float32(h), 1, config.GridColor, false)
	}
	for y := startY; y < origin.Y+float64(h); y += step {
		sy := float32(y - origin.Y)
		vector.StrokeLine(screen, 0, sy, float32(w), sy, 1, config.GridColor, false)
	}
}

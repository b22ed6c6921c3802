// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton - круглая кнопка паузы; после клика коротко пульсирует.
type PauseButton struct {
	X, Y       float32
	Size       float32
	IsPaused   bool
	PauseColor color.RGBA
	PlayColor  color.RGBA
	sinceClick float64
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X: x, Y: y, Size: size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		sinceClick: math.Inf(1),
	}
}

// Update advances the pulse; dt is real time so it runs while paused.
func (b *PauseButton) Update(dt float64) {
	b.sinceClick += dt
}

func (b *PauseButton) Contains(x, y int) bool {
	dx, dy := float64(float32(x)-b.X), float64(float32(y)-b.Y)
	return dx*dx+dy*dy <= float64(b.Size*b.Size)
}

// SetPaused mirrors the session phase; a change restarts the pulse.
func (b *PauseButton) SetPaused(p bool) {
	if p != b.IsPaused {
		b.sinceClick = 0
	}
	b.IsPaused = p
}

func (b *PauseButton) scale() float32 {
	return float32(1 + 0.3*math.Exp(-b.sinceClick*8))
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	s := b.Size * b.scale() * 0.5
	if b.IsPaused {
		// треугольник play
		var path vector.Path
		path.MoveTo(b.X-s, b.Y-s*1.2)
		path.LineTo(b.X-s, b.Y+s*1.2)
		path.LineTo(b.X+s, b.Y)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].ColorR = float32(b.PlayColor.R) / 255
			vs[i].ColorG = float32(b.PlayColor.G) / 255
			vs[i].ColorB = float32(b.PlayColor.B) / 255
			vs[i].ColorA = float32(b.PlayColor.A) / 255
		}
		screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
		return
	}
	w, h, gap := s*0.6, s*2, s*0.4
	vector.DrawFilledRect(screen, b.X-w-gap/2, b.Y-h/2, w, h, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+gap/2, b.Y-h/2, w, h, b.PauseColor, true)
}

var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(3, 3)
		pixel.Fill(color.White)
	}
	return pixel.SubImage(pixel.Bounds()).(*ebiten.Image)
}

// internal/ui/button.go
package ui

import (
	"image/color"

	"go-too-many/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button - прямоугольная кнопка с подписью.
type Button struct {
	X, Y, W, H float32
	Text       string
	BgColor    color.RGBA
	HoverColor color.RGBA
	TextColor  color.RGBA
}

func NewButton(x, y, w, h float32, label string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:       label,
		BgColor:    config.MenuButtonColor,
		HoverColor: config.PanelHoverColor,
		TextColor:  config.TextLightColor,
	}
}

// Contains - попадание точки в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, mouseX, mouseY int) {
	bg := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, config.StrokeWidth, config.PanelStrokeColor, true)

	bounds := text.BoundString(face, b.Text)
	tx := int(b.X) + (int(b.W)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.H)+bounds.Dy())/2
	text.Draw(screen, b.Text, face, tx, ty, b.TextColor)
}

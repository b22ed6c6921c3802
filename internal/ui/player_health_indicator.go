// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	"go-too-many/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PlayerHealthIndicator отображает здоровье игрока полосой с подписью.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// HealthFraction is current/max clamped to [0, 1].
func HealthFraction(current, max uint64) float64 {
	if max == 0 {
		return 0
	}
	if current >= max {
		return 1
	}
	return float64(current) / float64(max)
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, current, max uint64) {
	w, h := float32(config.HUDBarWidth), float32(config.HUDBarHeight)
	vector.DrawFilledRect(screen, i.X, i.Y, w, h, config.HealthBarBack, true)
	if fill := float32(HealthFraction(current, max)) * (w - borderWidth*2); fill > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fill, h-borderWidth*2, config.HealthBarColor, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, w, h, borderWidth, config.PanelStrokeColor, true)

	label := strconv.FormatUint(current, 10) + "/" + strconv.FormatUint(max, 10)
	text.Draw(screen, label, face, int(i.X+w)+10, int(i.Y+h)-2, config.TextLightColor)
}

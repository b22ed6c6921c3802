// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"

	"go-too-many/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const borderWidth = 1

// PlayerLevelIndicator отображает уровень и полосу опыта.
type PlayerLevelIndicator struct {
	X, Y float32
}

func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// XPFraction is the share of the current level already earned.
func XPFraction(xp, needed, previous uint64) float64 {
	if needed <= previous || xp <= previous {
		return 0
	}
	f := float64(xp-previous) / float64(needed-previous)
	if f > 1 {
		return 1
	}
	return f
}

func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, face font.Face, level, xp, needed, previous uint64) {
	w, h := float32(config.HUDBarWidth), float32(config.HUDBarHeight)
	vector.DrawFilledRect(screen, i.X, i.Y, w, h, config.XPBarBack, true)
	if fill := float32(XPFraction(xp, needed, previous)) * (w - borderWidth*2); fill > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fill, h-borderWidth*2, config.XPBarColor, true)
	}
	vector.StrokeRect(screen, i.X, i.Y, w, h, borderWidth, config.PanelStrokeColor, true)

	label := fmt.Sprintf("Level %d  %d/%d XP", level, xp, needed)
	text.Draw(screen, label, face, int(i.X+w)+10, int(i.Y+h)-2, config.TextLightColor)
}

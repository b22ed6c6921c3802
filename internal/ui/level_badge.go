// internal/ui/level_badge.go
package ui

import (
	"image/color"
	"strings"

	"go-too-many/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// LevelBadge рисует номер уровня римскими цифрами с обводкой.
type LevelBadge struct {
	X, Y             int
	Color            color.RGBA
	MilestoneColor   color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

func NewLevelBadge(x, y int) *LevelBadge {
	return &LevelBadge{
		X: x, Y: y,
		Color:            config.TextLightColor,
		MilestoneColor:   config.XPBarColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 2,
	}
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num uint64) string {
	if num == 0 {
		return ""
	}
	val := []uint64{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := range val {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw centers the numeral on X.
func (b *LevelBadge) Draw(screen *ebiten.Image, face font.Face, level uint64) {
	label := ToRoman(level)
	if label == "" {
		return
	}
	c := b.Color
	if level%5 == 0 {
		c = b.MilestoneColor
	}
	x := b.X - text.BoundString(face, label).Dx()/2
	for dy := -b.OutlineThickness; dy <= b.OutlineThickness; dy++ {
		for dx := -b.OutlineThickness; dx <= b.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, b.Y+dy, b.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, b.Y, c)
}

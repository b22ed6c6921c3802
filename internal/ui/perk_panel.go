// internal/ui/perk_panel.go
package ui

import (
	"strings"

	"go-too-many/internal/config"
	"go-too-many/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const panelPadding = 14

// PerkPanel shows the pending perk choices side by side in the middle of the
// screen. It is hidden while there are no choices.
type PerkPanel struct {
	choices []defs.PerkInfo
	cards   []*Button
}

func NewPerkPanel() *PerkPanel {
	return &PerkPanel{}
}

// SetChoices lays out one card per choice; nil hides the panel.
func (p *PerkPanel) SetChoices(choices []defs.PerkInfo) {
	p.choices = choices
	p.cards = p.cards[:0]
	n := len(choices)
	if n == 0 {
		return
	}
	w, h, gap := float32(config.PerkPanelWidth), float32(config.PerkPanelHeight), float32(config.PerkPanelGap)
	total := float32(n)*w + float32(n-1)*gap
	x := (float32(config.ScreenWidth) - total) / 2
	y := (float32(config.ScreenHeight) - h) / 2
	for i, c := range choices {
		b := NewButton(x+float32(i)*(w+gap), y, w, h, c.Name)
		b.BgColor = config.PanelColor
		p.cards = append(p.cards, b)
	}
}

func (p *PerkPanel) Visible() bool { return len(p.choices) > 0 }

// HitTest returns the index of the card under (x, y), or -1.
func (p *PerkPanel) HitTest(x, y int) int {
	for i, c := range p.cards {
		if c.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (p *PerkPanel) Draw(screen *ebiten.Image, title, body font.Face, mouseX, mouseY int) {
	if !p.Visible() {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	heading := "Level up! Choose a perk"
	hx := (config.ScreenWidth - text.BoundString(title, heading).Dx()) / 2
	text.Draw(screen, heading, title, hx, int(p.cards[0].Y)-30, config.TextLightColor)

	lineHeight := body.Metrics().Height.Ceil()
	for i, card := range p.cards {
		bg := card.BgColor
		if card.Contains(mouseX, mouseY) {
			bg = card.HoverColor
		}
		vector.DrawFilledRect(screen, card.X, card.Y, card.W, card.H, bg, true)
		vector.StrokeRect(screen, card.X, card.Y, card.W, card.H, config.StrokeWidth, config.PanelStrokeColor, true)

		x := int(card.X) + panelPadding
		y := int(card.Y) + panelPadding + lineHeight
		text.Draw(screen, shortcutLabel(i)+p.choices[i].Name, title, x, y, config.TextLightColor)
		y += title.Metrics().Height.Ceil()
		for _, line := range WrapText(body, p.choices[i].Description, int(card.W)-2*panelPadding) {
			text.Draw(screen, line, body, x, y, config.TextLightColor)
			y += lineHeight
		}
	}
}

func shortcutLabel(i int) string {
	return string(rune('1'+i)) + ". "
}

// WrapText breaks s into lines no wider than width pixels in face. A single
// word wider than width gets a line of its own.
func WrapText(face font.Face, s string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() == 0 {
			cur.WriteString(word)
			continue
		}
		candidate := cur.String() + " " + word
		if font.MeasureString(face, candidate).Ceil() > width {
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			continue
		}
		cur.WriteString(" " + word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

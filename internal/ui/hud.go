// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-too-many/internal/assets"
	"go-too-many/internal/config"
	"go-too-many/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// HUD keeps the last values pushed by the session and draws them. It
// implements app.Display.
type HUD struct {
	level                uint64
	xp, needed, previous uint64
	health, maxHealth    uint64
	enemies              int

	healthBar *PlayerHealthIndicator
	xpBar     *PlayerLevelIndicator
	badge     *LevelBadge
	Pause     *PauseButton
	Perks     *PerkPanel
}

func NewHUD() *HUD {
	m := float32(config.HUDMargin)
	return &HUD{
		healthBar: NewPlayerHealthIndicator(m, m),
		xpBar:     NewPlayerLevelIndicator(m, m+config.HUDBarHeight+10),
		badge:     NewLevelBadge(config.ScreenWidth/2, config.HUDMargin+40),
		Pause:     NewPauseButton(config.ScreenWidth-m-20, m+20, 20, config.TextLightColor, config.XPBarColor),
		Perks:     NewPerkPanel(),
	}
}

func (h *HUD) SetLevel(level uint64) { h.level = level }

func (h *HUD) SetXP(current, needed, previous uint64) {
	h.xp, h.needed, h.previous = current, needed, previous
}

func (h *HUD) SetHealth(current, max uint64) { h.health, h.maxHealth = current, max }

func (h *HUD) SetEnemyCount(n int) { h.enemies = n }

func (h *HUD) ShowPerkChoices(choices []defs.PerkInfo) { h.Perks.SetChoices(choices) }

func (h *HUD) HidePerkChoices() { h.Perks.SetChoices(nil) }

// Level is the last level pushed, mostly for screens that outlive a run.
func (h *HUD) Level() uint64 { return h.level }

func (h *HUD) Draw(screen *ebiten.Image, fonts *assets.Fonts, mouseX, mouseY int) {
	h.healthBar.Draw(screen, fonts.Small, h.health, h.maxHealth)
	h.xpBar.Draw(screen, fonts.Small, h.level, h.xp, h.needed, h.previous)
	h.badge.Draw(screen, fonts.Title, h.level)

	count := fmt.Sprintf("Enemies: %d", h.enemies)
	text.Draw(screen, count, fonts.Regular, config.HUDMargin, config.ScreenHeight-config.HUDMargin, config.TextLightColor)

	h.Pause.Draw(screen)
	h.Perks.Draw(screen, fonts.Regular, fonts.Small, mouseX, mouseY)
}

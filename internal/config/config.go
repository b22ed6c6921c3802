// internal/config/config.go
package config

import "image/color"

const (
	WindowTitle  = "There's Too Many Of Them"
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	PerkChoiceCount = 3

	HUDMargin       = 16
	HUDBarWidth     = 260
	HUDBarHeight    = 14
	PerkPanelWidth  = 300
	PerkPanelHeight = 160
	PerkPanelGap    = 24

	ExplosionStartScale = 0.2
	DamageFlashDuration = 0.15
	ExplosionFadeAlpha  = 0.0

	// Loading screen: assets are warmed up one step per frame.
	LoadingStepsPerFrame = 1
)

var (
	BackgroundColor   = color.RGBA{24, 28, 24, 255}
	GridColor         = color.RGBA{36, 42, 36, 255}
	PlayerColor       = color.RGBA{70, 130, 180, 255}
	SwordColor        = color.RGBA{220, 220, 230, 255}
	SwordActiveColor  = color.RGBA{255, 255, 255, 255}
	ExplosionColor    = color.RGBA{255, 140, 0, 200}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	HealthBarColor    = color.RGBA{200, 50, 50, 255}
	HealthBarBack     = color.RGBA{60, 20, 20, 255}
	XPBarColor        = color.RGBA{255, 215, 0, 255}
	XPBarBack         = color.RGBA{60, 60, 20, 255}
	PanelColor        = color.RGBA{30, 30, 45, 235}
	PanelHoverColor   = color.RGBA{55, 55, 80, 245}
	PanelStrokeColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 140}
	StrokeWidth       = float32(2.0)
	GridStep          = 80.0
	MenuButtonColor   = color.RGBA{70, 130, 180, 220}
	GameOverTextColor = color.RGBA{220, 60, 60, 255}
	DamageFlashColor  = color.RGBA{255, 80, 80, 255}
)

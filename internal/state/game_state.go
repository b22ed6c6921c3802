// internal/state/game_state.go
package state

import (
	"go-too-many/internal/app"
	"go-too-many/internal/config"
	"go-too-many/internal/logger"
	"go-too-many/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var perkKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

var _ State = (*GameState)(nil)

// GameState - игровой экран: ввод, тик сессии, отрисовка мира и HUD.
type GameState struct {
	sm  *StateMachine
	ctx *Context
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	return &GameState{sm: sm, ctx: ctx}
}

func (g *GameState) Enter() {}

// MoveInput maps WASD/arrow state to a direction; opposite keys cancel.
func MoveInput(up, down, left, right bool) types.Vec2 {
	var d types.Vec2
	if up {
		d.Y--
	}
	if down {
		d.Y++
	}
	if left {
		d.X--
	}
	if right {
		d.X++
	}
	return d
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (g *GameState) Update(deltaTime float64) {
	s := g.ctx.Session
	hud := g.ctx.HUD
	mx, my := ebiten.CursorPosition()
	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	switch {
	case hud.Perks.Visible():
		choice := -1
		for i, k := range perkKeys {
			if inpututil.IsKeyJustPressed(k) {
				choice = i
			}
		}
		if click {
			choice = hud.Perks.HitTest(mx, my)
		}
		if choice >= 0 {
			if err := s.ChoosePerk(choice); err != nil {
				logger.Debugf("perk choice %d: %v", choice, err)
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(click && hud.Pause.Contains(mx, my)):
		s.TogglePause()
	default:
		s.SetMoveInput(MoveInput(
			pressed(ebiten.KeyW, ebiten.KeyArrowUp),
			pressed(ebiten.KeyS, ebiten.KeyArrowDown),
			pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
			pressed(ebiten.KeyD, ebiten.KeyArrowRight),
		))
		if aim, ok := s.ScreenToWorld(float64(mx), float64(my)); ok {
			s.SetAim(aim)
		}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.Attack()
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) {
			s.UseSecondary()
		}
	}

	s.Tick(deltaTime)
	hud.Pause.SetPaused(s.Phase() == app.PhasePaused)
	hud.Pause.Update(deltaTime)

	if s.Phase() == app.PhaseGameOver {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.ctx.Session
	camera, _ := s.Camera()
	g.ctx.Renderer.Draw(screen, s.ECS(), camera)

	fonts := g.ctx.Loader.Fonts()
	mx, my := ebiten.CursorPosition()
	g.ctx.HUD.Draw(screen, fonts, mx, my)

	if s.Phase() == app.PhasePaused && s.PerkOffer() == nil {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		label := "PAUSED"
		x := (config.ScreenWidth - text.BoundString(fonts.Title, label).Dx()) / 2
		text.Draw(screen, label, fonts.Title, x, config.ScreenHeight/2, config.TextLightColor)
	}
}

func (g *GameState) Exit() {
	g.ctx.Session.SetMoveInput(types.Vec2{})
}

// internal/state/menu_state.go
package state

import (
	"go-too-many/internal/config"
	"go-too-many/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var _ State = (*MenuState)(nil)

// MenuState - заставка с кнопкой старта.
type MenuState struct {
	sm    *StateMachine
	ctx   *Context
	start *ui.Button
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	const w, h = 240, 60
	return &MenuState{
		sm:    sm,
		ctx:   ctx,
		start: ui.NewButton((config.ScreenWidth-w)/2, config.ScreenHeight/2, w, h, "Start"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.start.Contains(x, y)
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewLoadingState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fonts := m.ctx.Loader.Fonts()
	title := config.WindowTitle
	tx := (config.ScreenWidth - text.BoundString(fonts.Title, title).Dx()) / 2
	text.Draw(screen, title, fonts.Title, tx, config.ScreenHeight/3, config.TextLightColor)

	x, y := ebiten.CursorPosition()
	m.start.Draw(screen, fonts.Regular, x, y)
}

func (m *MenuState) Exit() {}

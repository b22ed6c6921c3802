// internal/state/game_over_state.go
package state

import (
	"fmt"
	"strings"

	"go-too-many/internal/app"
	"go-too-many/internal/config"
	"go-too-many/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows how the run ended; R or Space starts a new one.
type GameOverState struct {
	sm    *StateMachine
	ctx   *Context
	lines []string
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx}
}

// SummaryLines builds the text block for a finished run.
func SummaryLines(snap app.Snapshot, stats app.Stats) []string {
	lines := strings.Split(app.GameOverText(snap.Level, snap.XP), "\n")
	lines = append(lines,
		"",
		fmt.Sprintf("Survived %.0fs, %d kills, %d damage taken", stats.TimeSurvived, stats.Kills, stats.DamageTaken),
		"Press R or Space to try again",
	)
	return lines
}

func (s *GameOverState) Enter() {
	s.lines = SummaryLines(s.ctx.Session.Snapshot(), s.ctx.Session.Stats())
}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := s.ctx.Session.Restart(); err != nil {
			logger.Errorf("%v", err)
			return
		}
		s.sm.SetState(NewLoadingState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	session := s.ctx.Session
	camera, _ := session.Camera()
	s.ctx.Renderer.Draw(screen, session.ECS(), camera)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	fonts := s.ctx.Loader.Fonts()
	y := config.ScreenHeight / 3
	for i, line := range s.lines {
		face, c := fonts.Regular, config.TextLightColor
		if i == 0 {
			face, c = fonts.Title, config.GameOverTextColor
		}
		x := (config.ScreenWidth - text.BoundString(face, line).Dx()) / 2
		text.Draw(screen, line, face, x, y, c)
		y += face.Metrics().Height.Ceil() + 8
	}
}

func (s *GameOverState) Exit() {}

// internal/state/loading_state.go
package state

import (
	"fmt"

	"go-too-many/internal/config"
	"go-too-many/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var _ State = (*LoadingState)(nil)

// LoadingState warms up assets a few steps per frame, then hands the session
// its fresh life and switches to GameState.
type LoadingState struct {
	sm  *StateMachine
	ctx *Context
}

func NewLoadingState(sm *StateMachine, ctx *Context) *LoadingState {
	return &LoadingState{sm: sm, ctx: ctx}
}

func (s *LoadingState) Enter() {
	logger.Debugf("loading, %d%% done", s.ctx.Loader.Percent())
}

func (s *LoadingState) Update(deltaTime float64) {
	for range config.LoadingStepsPerFrame {
		if !s.ctx.Loader.Step() {
			break
		}
	}
	if !s.ctx.Loader.Done() {
		return
	}
	if err := s.ctx.startAudio(); err != nil {
		logger.Warnf("audio disabled: %v", err)
	}
	if err := s.ctx.Session.AssetsReady(); err != nil {
		logger.Errorf("start run: %v", err)
		return
	}
	s.sm.SetState(NewGameState(s.sm, s.ctx))
}

// LoadingText is the caption shown while loading.
func LoadingText(percent int) string {
	return fmt.Sprintf("loading...\n%d%%", percent)
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := s.ctx.Loader.Fonts().Regular
	label := LoadingText(s.ctx.Loader.Percent())
	b := text.BoundString(face, label)
	text.Draw(screen, label, face, (config.ScreenWidth-b.Dx())/2, (config.ScreenHeight-b.Dy())/2, config.TextLightColor)
}

func (s *LoadingState) Exit() {}

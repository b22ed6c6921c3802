// cmd/game/main.go
package main

import (
	"os"
	"time"

	"go-too-many/internal/app"
	"go-too-many/internal/assets"
	"go-too-many/internal/audio"
	"go-too-many/internal/config"
	"go-too-many/internal/logger"
	"go-too-many/internal/state"
	"go-too-many/internal/ui"
	"go-too-many/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	_ app.Audio         = (*audio.Player)(nil)
	_ state.AudioDevice = (*audio.Player)(nil)
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := config.LoadEnv(); err != nil {
		logger.Warnf("env: %v", err)
	}
	settings, err := config.ParseSettings(os.Args[1:], os.Getenv)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}
	logger.Configure(os.Stderr, settings.LogLevel)

	tuning, err := config.LoadTuning(settings.TuningPath)
	if err != nil {
		logger.Errorf("tuning: %v", err)
		os.Exit(1)
	}
	if settings.Muted {
		tuning.Audio.Muted = true
	}

	player := audio.NewPlayer(tuning.Audio.Muted)
	defer player.Close()

	hud := ui.NewHUD()
	session, err := app.NewSession(app.Options{
		Tuning:  tuning,
		Seed:    settings.Seed,
		Display: hud,
		Audio:   player,
	})
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	logger.Infof("starting with seed %d", session.Seed())

	ctx := &state.Context{
		Session:  session,
		HUD:      hud,
		Loader:   assets.NewLoader(player),
		Renderer: render.NewWorldRenderer(),
		Audio:    player,
	}
	sm := state.NewStateMachine()
	if settings.Dev {
		sm.SetState(state.NewLoadingState(sm, ctx))
	} else {
		sm.SetState(state.NewMenuState(sm, ctx))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(game); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

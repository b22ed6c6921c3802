// internal/state/context.go
package state

import (
	"go-too-many/internal/app"
	"go-too-many/internal/assets"
	"go-too-many/internal/ui"
	"go-too-many/pkg/render"
)

var _ app.Display = (*ui.HUD)(nil)

// AudioDevice is the part of the audio player the screens drive.
type AudioDevice interface {
	Init() error
	Close()
}

// Context is shared by every screen.
type Context struct {
	Session  *app.Session
	HUD      *ui.HUD
	Loader   *assets.Loader
	Renderer *render.WorldRenderer
	Audio    AudioDevice

	audioStarted bool
}

// startAudio opens the device once the cues are rendered. Failure leaves the
// game silent.
func (c *Context) startAudio() error {
	if c.audioStarted || c.Audio == nil {
		return nil
	}
	c.audioStarted = true
	return c.Audio.Init()
}

// internal/assets/loader.go
package assets

import (
	"fmt"

	"go-too-many/internal/defs"
	"go-too-many/internal/logger"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts - шрифты интерфейса.
type Fonts struct {
	Small   font.Face
	Regular font.Face
	Title   font.Face
}

// FallbackFonts uses the built-in bitmap face everywhere.
func FallbackFonts() *Fonts {
	return &Fonts{Small: basicfont.Face7x13, Regular: basicfont.Face7x13, Title: basicfont.Face7x13}
}

// CuePreparer renders an audio cue ahead of time. audio.Player implements it.
type CuePreparer interface {
	Prepare(cue defs.Cue) error
}

type step struct {
	name string
	run  func() error
}

// Loader warms up assets one step per call so the loading screen can show
// progress. A failed step is logged and skipped; the game runs without it.
type Loader struct {
	steps  []step
	next   int
	failed []string
	fonts  *Fonts
}

// NewLoader plans font parsing and one step per audio cue and the music bar. audio may be nil.
func NewLoader(audio CuePreparer) *Loader {
	l := &Loader{fonts: FallbackFonts()}
	l.steps = append(l.steps, step{name: "fonts", run: l.loadFonts})
	if audio != nil {
		for _, cue := range defs.PreloadCues {
			l.steps = append(l.steps, step{
				name: "cue " + string(cue),
				run:  func() error { return audio.Prepare(cue) },
			})
		}
	}
	return l
}

func (l *Loader) loadFonts() error {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	}
	var fonts Fonts
	if fonts.Small, err = face(14); err != nil {
		return err
	}
	if fonts.Regular, err = face(18); err != nil {
		return err
	}
	if fonts.Title, err = face(40); err != nil {
		return err
	}
	l.fonts = &fonts
	return nil
}

// Step runs the next pending step. It returns false once everything ran.
func (l *Loader) Step() bool {
	if l.Done() {
		return false
	}
	s := l.steps[l.next]
	l.next++
	if err := s.run(); err != nil {
		logger.Warnf("asset %s failed: %v", s.name, err)
		l.failed = append(l.failed, s.name)
	} else {
		logger.Debugf("asset %s ready", s.name)
	}
	return true
}

func (l *Loader) Done() bool { return l.next >= len(l.steps) }

// Progress is the share of steps finished, in [0, 1].
func (l *Loader) Progress() float64 {
	if len(l.steps) == 0 {
		return 1
	}
	return float64(l.next) / float64(len(l.steps))
}

// Percent is Progress rounded down to a whole percent.
func (l *Loader) Percent() int { return int(l.Progress() * 100) }

// Failed lists the names of steps that errored.
func (l *Loader) Failed() []string { return l.failed }

// Fonts returns the loaded faces, or the fallback set until fonts load.
func (l *Loader) Fonts() *Fonts { return l.fonts }

// internal/audio/player.go
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go-too-many/internal/defs"
	"go-too-many/internal/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const SampleRate = beep.SampleRate(44100)

var (
	ErrUnknownCue = errors.New("unknown audio cue")
	ErrNotReady   = errors.New("audio cue not prepared")
)

// Player plays pre-rendered cues through one beep mixer. Play is
// fire-and-forget and safe to call from the game loop.
type Player struct {
	mu          sync.Mutex
	format      beep.Format
	buffers     map[defs.Cue]*beep.Buffer
	mixer       *beep.Mixer
	music       *beep.Ctrl
	muted       bool
	initialized bool
}

func NewPlayer(muted bool) *Player {
	return &Player{
		format:  beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2},
		buffers: make(map[defs.Cue]*beep.Buffer),
		mixer:   &beep.Mixer{},
		muted:   muted,
	}
}

// Prepare renders cue into memory. The loading screen calls it once per cue.
func (p *Player) Prepare(cue defs.Cue) error {
	s, err := CueStreamer(cue, p.format.SampleRate)
	if err != nil {
		return err
	}
	buf := beep.NewBuffer(p.format)
	buf.Append(s)

	p.mu.Lock()
	p.buffers[cue] = buf
	p.mu.Unlock()
	return nil
}

// Prepared reports whether cue is ready to play.
func (p *Player) Prepared(cue defs.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.buffers[cue]
	return ok
}

// Len is the rendered length of cue in samples, 0 if not prepared.
func (p *Player) Len(cue defs.Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if buf, ok := p.buffers[cue]; ok {
		return buf.Len()
	}
	return 0
}

// Init opens the speaker. A muted player never touches the device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized || p.muted {
		return nil
	}
	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	logger.Infof("audio ready at %d Hz", p.format.SampleRate)
	return nil
}

// Play starts cue at gain volume. Unknown or unprepared cues and a closed
// device are silently skipped.
func (p *Player) Play(cue defs.Cue, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted || volume <= 0 {
		return
	}
	buf, ok := p.buffers[cue]
	if !ok {
		logger.Debugf("play %s: %v", cue, ErrNotReady)
		return
	}
	speaker.Lock()
	p.mixer.Add(NewVolume(buf.Streamer(0, buf.Len()), volume))
	speaker.Unlock()
}

// StartMusic loops the prepared music bar at gain volume until StopMusic.
// A running loop is left alone.
func (p *Player) StartMusic(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted || volume <= 0 || p.music != nil {
		return
	}
	buf, ok := p.buffers[defs.CueMusic]
	if !ok {
		logger.Debugf("start music: %v", ErrNotReady)
		return
	}
	p.music = &beep.Ctrl{Streamer: NewVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), volume)}
	speaker.Lock()
	p.mixer.Add(p.music)
	speaker.Unlock()
}

// StopMusic ends the loop. A nil Ctrl streamer drains, so the mixer drops it.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

// MusicPlaying reports whether the background loop is running.
func (p *Player) MusicPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.music != nil
}

func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
	if m {
		p.clear()
	}
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.music = nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.music = nil
	p.initialized = false
}

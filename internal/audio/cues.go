// internal/audio/cues.go
package audio

import (
	"fmt"
	"time"

	"go-too-many/internal/defs"

	"github.com/gopxl/beep"
)

// CueStreamer synthesizes a fresh streamer for cue.
func CueStreamer(cue defs.Cue, rate beep.SampleRate) (beep.Streamer, error) {
	ms := time.Millisecond
	switch cue {
	case defs.CueSwing:
		d := 120 * ms
		return NewVolume(NewEnvelope(NewOscillator(WaveNoise, 0, 0, d, rate), d, 10*ms, 90*ms, rate), 0.35), nil
	case defs.CueHit:
		d := 70 * ms
		return NewVolume(NewEnvelope(NewOscillator(WaveSquare, 660, 330, d, rate), d, 2*ms, 50*ms, rate), 0.3), nil
	case defs.CuePlayerHit:
		d := 180 * ms
		return NewVolume(NewEnvelope(NewOscillator(WaveSaw, 140, 90, d, rate), d, 5*ms, 120*ms, rate), 0.45), nil
	case defs.CueLevelUp:
		n1 := NewEnvelope(tone(523.25, 110*ms, rate), 110*ms, 5*ms, 40*ms, rate)
		n2 := NewEnvelope(tone(659.25, 110*ms, rate), 110*ms, 5*ms, 40*ms, rate)
		n3 := NewEnvelope(tone(783.99, 200*ms, rate), 200*ms, 5*ms, 150*ms, rate)
		return NewVolume(beep.Seq(n1, n2, n3), 0.4), nil
	case defs.CueExplosion:
		d := 400 * ms
		noise := NewEnvelope(NewOscillator(WaveNoise, 0, 0, d, rate), d, 2*ms, 380*ms, rate)
		rumble := NewEnvelope(NewOscillator(WaveSine, 90, 40, d, rate), d, 2*ms, 380*ms, rate)
		return NewVolume(beep.Mix(NewVolume(noise, 0.6), NewVolume(rumble, 0.8)), 0.6), nil
	case defs.CueTeleport:
		d := 220 * ms
		return NewVolume(NewEnvelope(NewOscillator(WaveSine, 300, 1200, d, rate), d, 10*ms, 100*ms, rate), 0.35), nil
	case defs.CueMusic:
		return MusicBar(rate), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, cue)
	}
}

// musicBeat is one eighth note at 120 bpm.
const musicBeat = 250 * time.Millisecond

// bass line in A minor, one note per beat; the bar loops seamlessly since
// every note fades in and out.
var musicBass = []float64{110, 110, 130.81, 110, 146.83, 130.81, 98, 103.83}

var musicLead = []float64{440, 0, 523.25, 0, 587.33, 523.25, 0, 392}

// MusicBar renders one bar of the background loop. Player.StartMusic
// repeats it with beep.Loop.
func MusicBar(rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	notes := make([]beep.Streamer, 0, len(musicBass))
	for i, f := range musicBass {
		bass := NewVolume(NewEnvelope(NewOscillator(WaveSaw, f, f, musicBeat, rate), musicBeat, 5*ms, 120*ms, rate), 0.5)
		lead := beep.Streamer(beep.Silence(rate.N(musicBeat)))
		if l := musicLead[i]; l > 0 {
			lead = NewVolume(NewEnvelope(tone(l, musicBeat, rate), musicBeat, 10*ms, 180*ms, rate), 0.3)
		}
		notes = append(notes, beep.Mix(bass, lead))
	}
	return NewVolume(beep.Seq(notes...), 0.6)
}

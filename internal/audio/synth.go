// internal/audio/synth.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave - форма осциллятора.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator plays a fixed-length tone whose frequency slides linearly from
// freq to endFreq.
type oscillator struct {
	wave     Wave
	freq     float64
	endFreq  float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator builds a finite streamer. endFreq equal to freq gives a flat
// tone.
func NewOscillator(wave Wave, freq, endFreq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:    wave,
		freq:    freq,
		endFreq: endFreq,
		length:  rate.N(d),
		rate:    rate,
		// шум детерминирован, чтобы кэш звуков был воспроизводим
		noise: rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = -1
			if o.phase < 0.5 {
				v = 1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.noise.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		progress := float64(o.position) / float64(o.length)
		f := o.freq + (o.endFreq-o.freq)*progress
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential-ish release.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.position >= start {
			gain *= float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// NewVolume maps a linear gain in [0, 1] to an effects.Volume. Zero is
// silent since log2(0) is -Inf.
func NewVolume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone is a pure sine note from beep's generator, cut to d.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		// частота выше Найквиста: тишина вместо паники
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), s)
}

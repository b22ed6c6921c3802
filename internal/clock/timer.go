// internal/clock/timer.go
package clock

// TimerMode selects whether a timer stops after firing or rearms itself.
type TimerMode int

const (
	Once TimerMode = iota
	Repeating
)

// Timer is a countdown driven by explicit Tick calls. It knows nothing about
// wall time: callers decide whether they feed it real or scaled seconds.
type Timer struct {
	duration float64
	elapsed  float64
	mode     TimerMode
	paused   bool
	finished bool
}

// NewTimer creates a running timer that fires after d seconds.
func NewTimer(d float64, mode TimerMode) *Timer {
	return &Timer{duration: d, mode: mode}
}

// NewCooldown creates a one-shot timer that starts already finished, so the
// gated action is available immediately.
func NewCooldown(d float64) *Timer {
	return &Timer{duration: d, elapsed: d, mode: Once, finished: true}
}

// Tick advances the timer by dt and returns how many times it fired.
// A repeating timer with a large dt may fire more than once.
func (t *Timer) Tick(dt float64) int {
	if t.paused || dt <= 0 {
		return 0
	}
	if t.mode == Once {
		if t.finished {
			return 0
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			return 1
		}
		return 0
	}

	if t.duration <= 0 {
		// Zero-length repeating timers fire once per tick.
		return 1
	}
	t.elapsed += dt
	fired := 0
	for t.elapsed >= t.duration {
		t.elapsed -= t.duration
		fired++
	}
	return fired
}

// Start rearms the timer from zero.
func (t *Timer) Start() {
	t.elapsed = 0
	t.finished = false
	t.paused = false
}

// Reset is an alias of Start kept for call sites that read better with it.
func (t *Timer) Reset() { t.Start() }

func (t *Timer) Pause()       { t.paused = true }
func (t *Timer) Resume()      { t.paused = false }
func (t *Timer) Paused() bool { return t.paused }

// SetDuration changes the period. Progress already made is kept.
func (t *Timer) SetDuration(d float64) {
	t.duration = d
	if t.mode == Once && !t.finished && t.elapsed >= d {
		t.elapsed = d
		t.finished = true
	}
}

func (t *Timer) Duration() float64 { return t.duration }
func (t *Timer) Elapsed() float64  { return t.elapsed }

// Finished reports whether a one-shot timer has run out.
func (t *Timer) Finished() bool { return t.finished }

// Ready is Finished read as "the cooldown is over".
func (t *Timer) Ready() bool { return t.finished }

// Remaining returns the seconds left until the next firing.
func (t *Timer) Remaining() float64 {
	if t.finished {
		return 0
	}
	r := t.duration - t.elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Fraction returns progress through the current period in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 || t.finished {
		return 1
	}
	f := t.elapsed / t.duration
	if f > 1 {
		return 1
	}
	return f
}

// internal/clock/timescale.go
package clock

// TimeScale converts real frame time into simulation time.
//
// Pause and slow-motion are separate: while paused no simulation time passes
// and the slow-motion countdown is frozen. Slow-motion scales time by a
// positive factor and reverts on its own once its real-time duration runs out.
type TimeScale struct {
	paused   bool
	slowMo   float64
	slowLeft float64
}

func NewTimeScale() *TimeScale {
	return &TimeScale{}
}

func (ts *TimeScale) Pause()       { ts.paused = true }
func (ts *TimeScale) Resume()      { ts.paused = false }
func (ts *TimeScale) Paused() bool { return ts.paused }

// StartSlowMotion applies factor for duration real seconds. Calling it again
// while active restarts the countdown with the new values.
func (ts *TimeScale) StartSlowMotion(factor, duration float64) {
	if factor <= 0 || duration <= 0 {
		return
	}
	ts.slowMo = factor
	ts.slowLeft = duration
}

func (ts *TimeScale) ClearSlowMotion() {
	ts.slowMo = 0
	ts.slowLeft = 0
}

func (ts *TimeScale) SlowMotionActive() bool { return ts.slowLeft > 0 }

// SlowMotionRemaining returns the real seconds left in the slow-motion window.
func (ts *TimeScale) SlowMotionRemaining() float64 { return ts.slowLeft }

// Scale is the current multiplier applied to real time.
func (ts *TimeScale) Scale() float64 {
	if ts.paused {
		return 0
	}
	if ts.slowLeft > 0 {
		return ts.slowMo
	}
	return 1
}

// Advance consumes realDt seconds of wall time and returns the simulation
// time that passes during it.
func (ts *TimeScale) Advance(realDt float64) float64 {
	if ts.paused || realDt <= 0 {
		return 0
	}
	if ts.slowLeft <= 0 {
		return realDt
	}
	if realDt <= ts.slowLeft {
		ts.slowLeft -= realDt
		scaled := realDt * ts.slowMo
		if ts.slowLeft <= 0 {
			ts.ClearSlowMotion()
		}
		return scaled
	}
	// The window closes partway through this frame.
	scaled := ts.slowLeft*ts.slowMo + (realDt - ts.slowLeft)
	ts.ClearSlowMotion()
	return scaled
}

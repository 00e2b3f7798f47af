package core

// TimerMode selects whether a Timer restarts after expiring.
type TimerMode int

const (
	TimerOnce      TimerMode = iota // Stops at expiry
	TimerRepeating                  // Wraps around and keeps counting
)

// Timer is a countdown in seconds advanced explicitly by Tick.
// It is pure data: nothing happens unless the owner ticks it.
type Timer struct {
	duration float64
	elapsed  float64
	mode     TimerMode
	finished bool // Expired during the most recent Tick
	times    int  // Number of expirations during the most recent Tick
}

// NewTimer creates a timer that expires after duration seconds.
func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{duration: duration, mode: mode}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.finished = false
	t.times = 0
	if dt <= 0 || t.duration <= 0 {
		return
	}

	if t.mode == TimerOnce {
		if t.elapsed >= t.duration {
			return
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.times = 1
		}
		return
	}

	t.elapsed += dt
	for t.elapsed >= t.duration {
		t.elapsed -= t.duration
		t.times++
	}
	t.finished = t.times > 0
}

// JustFinished reports whether the timer expired during the last Tick.
func (t *Timer) JustFinished() bool {
	return t.finished
}

// TimesFinished returns how many times the timer expired during the last Tick.
// A repeating timer can expire more than once on a long frame.
func (t *Timer) TimesFinished() int {
	return t.times
}

// Reset rewinds the timer to a full interval.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.times = 0
}

// Remaining returns the seconds left until the next expiry.
func (t *Timer) Remaining() float64 {
	return t.duration - t.elapsed
}

// Elapsed returns the seconds counted since the last reset or expiry.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Duration returns the configured interval.
func (t *Timer) Duration() float64 {
	return t.duration
}

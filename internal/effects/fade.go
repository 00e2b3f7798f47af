package effects

import "github.com/vovakirdan/tui-flappy/internal/core"

// Fade is a decaying-timer overlay: it is at full strength when triggered
// and fades linearly to transparent over its duration.
type Fade struct {
	Remaining float64
	Duration  float64
	Color     core.RGB
	PeakAlpha float64
}

// Trigger restarts the fade at full strength.
func (f *Fade) Trigger(duration float64, color core.RGB, alpha float64) {
	f.Remaining = duration
	f.Duration = duration
	f.Color = color
	f.PeakAlpha = alpha
}

// Active reports whether the fade is still visible.
func (f Fade) Active() bool {
	return f.Remaining > 0
}

// Alpha returns the current opacity, or 0 when inactive.
func (f Fade) Alpha() float64 {
	if !f.Active() || f.Duration <= 0 {
		return 0
	}
	return f.Remaining / f.Duration * f.PeakAlpha
}

// Update advances the fade by dt. Inactive fades are left untouched.
func (f *Fade) Update(dt float64) {
	if !f.Active() {
		return
	}
	f.Remaining -= dt
	if f.Remaining < 0 {
		f.Remaining = 0
	}
}

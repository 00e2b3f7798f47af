package effects

import "github.com/vovakirdan/tui-flappy/internal/core"

// Anim is an optional run-to-completion animation attached to an entity.
// The zero value is "no animation".
type Anim struct {
	Active   bool
	Elapsed  float64
	Duration float64
}

// Start begins (or restarts) the animation.
func (a *Anim) Start(duration float64) {
	if duration <= 0 {
		*a = Anim{}
		return
	}
	*a = Anim{Active: true, Duration: duration}
}

// Update advances the animation and detaches it once complete.
func (a *Anim) Update(dt float64) {
	if !a.Active {
		return
	}
	a.Elapsed += dt
	if a.Elapsed >= a.Duration {
		*a = Anim{}
	}
}

// Progress returns completion in [0, 1]. An inactive animation is complete.
func (a Anim) Progress() float64 {
	if !a.Active || a.Duration <= 0 {
		return 1
	}
	return core.ClampF(a.Elapsed/a.Duration, 0, 1)
}

// deform is how far from neutral the animation currently is:
// 1 at the start, settling elastically to 0.
func (a Anim) deform() float64 {
	if !a.Active {
		return 0
	}
	return 1 - core.ElasticOut(a.Progress())
}

// SquashScale returns the actor's (x, y) scale for a flap squash.
// Neutral (1, 1) when no animation is running.
func SquashScale(a Anim, squash, stretch float64) core.Vec2 {
	d := a.deform()
	return core.Vec2{
		X: 1 + (squash-1)*d,
		Y: 1 + (stretch-1)*d,
	}
}

// PopScale returns the uniform score text scale for a score pop.
func PopScale(a Anim, peak float64) float64 {
	return 1 + (peak-1)*a.deform()
}

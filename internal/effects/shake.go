package effects

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Shake drives the camera offset after a crash. The offset is two
// out-of-phase waves, jittered every frame and scaled down as the
// shake runs out.
type Shake struct {
	Remaining float64
	Duration  float64
	Elapsed   float64
	Intensity float64
	Frequency float64
	Offset    core.Vec2
}

// Trigger starts a new shake, replacing any shake in progress.
func (s *Shake) Trigger(duration, intensity, frequency float64) {
	s.Remaining = duration
	s.Duration = duration
	s.Elapsed = 0
	s.Intensity = intensity
	s.Frequency = frequency
}

// Active reports whether the camera is still shaking.
func (s Shake) Active() bool {
	return s.Remaining > 0
}

// Update advances the shake and recomputes the offset.
// The offset is exactly zero once the shake expires.
func (s *Shake) Update(dt float64, rng core.Source) {
	if !s.Active() {
		s.Offset = core.Vec2{}
		return
	}

	s.Elapsed += dt
	s.Remaining -= dt
	if s.Remaining <= 0 || s.Duration <= 0 {
		s.Remaining = 0
		s.Offset = core.Vec2{}
		return
	}

	decay := s.Remaining / s.Duration
	phase := s.Elapsed * s.Frequency
	s.Offset = core.Vec2{
		X: math.Sin(phase) * s.Intensity * decay * rng.Float64(),
		Y: math.Cos(phase*1.3) * s.Intensity * decay * rng.Float64(),
	}
}

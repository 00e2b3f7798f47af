package core

import "math"

// EaseOutQuad provides smooth deceleration for animation.
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// ElasticOut is a spring-like easing with a quick snap followed by a
// settling overshoot. The result is clamped to [0, 1].
func ElasticOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	const period = 0.3
	const shift = period / 4

	v := math.Pow(2, -10*t)*math.Sin((t-shift)*2*math.Pi/period) + 1
	return ClampF(v, 0, 1)
}

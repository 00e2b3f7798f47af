package game

// Viewport is the logical playfield. Height never changes; width follows
// the display aspect ratio. The origin is the center, +Y is up.
type Viewport struct {
	Width  float64
	Height float64
}

// HalfWidth returns the distance from center to the left/right edges.
func (v Viewport) HalfWidth() float64 { return v.Width / 2 }

// HalfHeight returns the distance from center to the ceiling/bottom.
func (v Viewport) HalfHeight() float64 { return v.Height / 2 }

// Fit recomputes the width for a display of the given size.
// Non-positive sizes are ignored. Reports whether the width changed.
func (v *Viewport) Fit(displayW, displayH float64) bool {
	if displayW <= 0 || displayH <= 0 || v.Height <= 0 {
		return false
	}
	w := v.Height * displayW / displayH
	if w == v.Width {
		return false
	}
	v.Width = w
	return true
}

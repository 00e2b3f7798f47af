package effects

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Edge identifies a side of the playfield.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

var edges = [...]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Strip is one band of the edge flash border.
type Strip struct {
	Edge       Edge
	Index      int      // 0 is the outermost strip
	Multiplier float64  // Constant alpha factor from the strip's depth
	Rect       core.Box // World-space rectangle
}

// StripMultipliers returns the per-strip alpha factors: full opacity
// inside the solid ratio, quadratic falloff towards the inner edge.
func StripMultipliers(strips int, solidRatio float64) []float64 {
	if strips <= 0 {
		return nil
	}
	mults := make([]float64, strips)
	for i := range mults {
		t := float64(i) / float64(strips)
		if t < solidRatio {
			mults[i] = 1
			continue
		}
		fade := (t - solidRatio) / (1 - solidRatio)
		mults[i] = (1 - fade) * (1 - fade)
	}
	return mults
}

// EdgeFlash is the score border flash: one Fade shared by four sets of
// concentric strips.
type EdgeFlash struct {
	Fade
	cfg    config.EdgeFlashConfig
	mults  []float64
	strips []Strip
}

// NewEdgeFlash precomputes the strip multipliers and lays the strips out
// for the given viewport.
func NewEdgeFlash(cfg config.EdgeFlashConfig, width, height float64) *EdgeFlash {
	e := &EdgeFlash{
		cfg:   cfg,
		mults: StripMultipliers(cfg.Strips, cfg.SolidRatio),
	}
	e.Layout(width, height)
	return e
}

// Trigger starts the flash with the configured color and alpha.
func (e *EdgeFlash) Trigger() {
	e.Fade.Trigger(e.cfg.Duration, e.cfg.Color, e.cfg.Alpha)
}

// Layout recomputes strip rectangles for a new viewport.
// Horizontal strips are twice the viewport width so shake never exposes
// their ends.
func (e *EdgeFlash) Layout(width, height float64) {
	n := len(e.mults)
	e.strips = e.strips[:0]
	if n == 0 {
		return
	}

	sw := e.cfg.BorderWidth / float64(n)
	halfW, halfH := width/2, height/2
	for _, edge := range edges {
		for i, m := range e.mults {
			offset := float64(i)*sw + sw/2
			var rect core.Box
			switch edge {
			case EdgeTop:
				rect = core.NewBox(0, halfH-offset, width*2, sw)
			case EdgeBottom:
				rect = core.NewBox(0, -halfH+offset, width*2, sw)
			case EdgeLeft:
				rect = core.NewBox(-halfW+offset, 0, sw, height)
			case EdgeRight:
				rect = core.NewBox(halfW-offset, 0, sw, height)
			}
			e.strips = append(e.strips, Strip{Edge: edge, Index: i, Multiplier: m, Rect: rect})
		}
	}
}

// Strips returns the laid out strips. The slice must not be modified.
func (e *EdgeFlash) Strips() []Strip {
	return e.strips
}

// StripAlpha returns the current opacity of a strip.
func (e *EdgeFlash) StripAlpha(s Strip) float64 {
	return e.Alpha() * s.Multiplier
}

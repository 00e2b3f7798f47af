package core

import "fmt"

// RGB is a linear color with channels in [0, 1].
type RGB struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// Hex returns the color as a #rrggbb string suitable for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// Blend mixes c toward over by alpha (0 = c, 1 = over).
func (c RGB) Blend(over RGB, alpha float64) RGB {
	a := ClampF(alpha, 0, 1)
	return RGB{
		R: c.R + (over.R-c.R)*a,
		G: c.G + (over.G-c.G)*a,
		B: c.B + (over.B-c.B)*a,
	}
}

func channel(v float64) uint8 {
	return uint8(ClampF(v, 0, 1)*255 + 0.5)
}

// Predefined colors for game elements.
var (
	ColorSky      = RGB{R: 0.5, G: 0.8, B: 1.0}
	ColorGround   = RGB{R: 0.6, G: 0.4, B: 0.2}
	ColorActor    = RGB{R: 1.0, G: 0.8, B: 0.0}
	ColorObstacle = RGB{R: 0.2, G: 0.7, B: 0.2}
	ColorWhite    = RGB{R: 1.0, G: 1.0, B: 1.0}
)

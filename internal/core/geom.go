// Package core provides fundamental types and utilities for the flappy simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in logical playfield units.
// The playfield origin is its center, with +Y pointing up.
type Vec2 struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box described by its center and full size.
type Box struct {
	Center Vec2
	W, H   float64
}

// NewBox creates a box centered at (x, y) with the given dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{Center: Vec2{X: x, Y: y}, W: w, H: h}
}

// Square creates a box of equal width and height centered at c.
func Square(c Vec2, size float64) Box {
	return Box{Center: c, W: size, H: size}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.Center.X - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.Center.X + b.W/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Center.Y - b.H/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Center.Y + b.H/2 }

// Intersects returns true if this box overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (b Box) Intersects(other Box) bool {
	if b.Right() <= other.Left() || other.Right() <= b.Left() {
		return false
	}
	if b.Top() <= other.Bottom() || other.Top() <= b.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point p is inside this box.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.Left() && p.X < b.Right() && p.Y >= b.Bottom() && p.Y < b.Top()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Lerp interpolates linearly from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

package anim

import (
	"github.com/lucasb-eyer/go-colorful"
)

// An Interpolatable can blend linearly towards another value of its kind.
type Interpolatable[V any] interface {
	Lerp(other V, t float64) V
}

// Real is a scalar animatable value.
type Real float64

// Lerp blends linearly from r to other.
func (r Real) Lerp(other Real, t float64) Real {
	return r + (other-r)*Real(t)
}

// A Point is a 2D animatable value.
type Point struct {
	X float64
	Y float64
}

// Lerp blends each component linearly.
func (p Point) Lerp(other Point, t float64) Point {
	return Point{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
	}
}

// A Color is an RGBA animatable value.
type Color struct {
	colorful.Color
	A float64
}

// Lerp blends each channel linearly in RGB space.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		Color: c.Color.BlendRgb(other.Color, t),
		A:     c.A + (other.A-c.A)*t,
	}
}

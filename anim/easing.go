package anim

import (
	"math"

	"github.com/fogleman/ease"
)

// EasingKind identifies one of the built-in easing curves.
type EasingKind int

const (
	Linear EasingKind = iota
	EaseIn
	EaseOut
	EaseInOut
	Bounce
	Elastic
	CubicBezier
)

// An Easing reshapes normalised progress before interpolation, producing
// acceleration, deceleration or overshoot. The zero value is linear.
// Output is not clamped; bounce, elastic and custom bezier curves may
// overshoot [0,1].
type Easing struct {
	Kind           EasingKind
	X1, Y1, X2, Y2 float64
}

// Bezier creates a custom cubic-bezier Easing with control points
// (x1,y1) and (x2,y2) on the unit timing curve.
func Bezier(x1, y1, x2, y2 float64) Easing {
	return Easing{Kind: CubicBezier, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// A period of 0.3 gives the conventional ease-in-elastic curve,
// -2^(10p-10) * sin((10p-10.75) * 2pi/3).
var elasticIn = ease.InElasticFunction(0.3)

// Apply maps progress p in [0,1] to eased progress.
func (e Easing) Apply(p float64) float64 {
	switch e.Kind {
	case EaseIn:
		return ease.InQuad(p)
	case EaseOut:
		return ease.OutQuad(p)
	case EaseInOut:
		return ease.InOutQuad(p)
	case Bounce:
		return bounceOut(p)
	case Elastic:
		if p == 0 || p == 1 {
			return p
		}
		return elasticIn(p)
	case CubicBezier:
		return e.bezier(p)
	default:
		return ease.Linear(p)
	}
}

// bounceOut is the four-segment piecewise quadratic bounce with
// breakpoints at 1/2.75, 2/2.75 and 2.5/2.75.
func bounceOut(p float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case p < 1/d1:
		return n1 * p * p
	case p < 2/d1:
		p -= 1.5 / d1
		return n1*p*p + 0.75
	case p < 2.5/d1:
		p -= 2.25 / d1
		return n1*p*p + 0.9375
	default:
		p -= 2.625 / d1
		return n1*p*p + 0.984375
	}
}

const (
	bezierEpsilon    = 1e-6
	bezierNewtonIter = 8
)

// bezier treats p as the x coordinate on the unit cubic bezier with
// control points (0,0) (X1,Y1) (X2,Y2) (1,1), recovers the parameter t
// with Bx(t) = p and returns By(t). Newton-Raphson seeded at t = p, with
// bisection as the fallback when the derivative flattens out.
func (e Easing) bezier(p float64) float64 {
	cx := 3 * e.X1
	bx := 3*(e.X2-e.X1) - cx
	ax := 1 - cx - bx
	cy := 3 * e.Y1
	by := 3*(e.Y2-e.Y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }

	t := p
	for i := 0; i < bezierNewtonIter; i++ {
		x := sampleX(t) - p
		if math.Abs(x) < bezierEpsilon {
			return sampleY(t)
		}
		d := (3*ax*t+2*bx)*t + cx
		if math.Abs(d) < bezierEpsilon {
			break
		}
		t -= x / d
	}

	lo, hi := 0.0, 1.0
	t = p
	for hi-lo > bezierEpsilon {
		if sampleX(t) < p {
			lo = t
		} else {
			hi = t
		}
		t = lo + (hi-lo)/2
	}
	return sampleY(t)
}

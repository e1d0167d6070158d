package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientTable stores a look-up table of hues keyed by gradient position.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// Demo builds the built-in scene used when no scene file is configured: a
// fading opacity track, a bezier-eased position sweep and a colour ramp
// sampled from an HCL hue gradient.
func Demo() *Document {
	gradient := GradientTable{
		{0.0, 0.0},
		{6.0, 0.04},   // Pink
		{87.0, 0.14},  // Red
		{88.0, 0.28},  // Orange
		{98.0, 0.42},  // Yellow
		{180.0, 0.56}, // Green
		{190.0, 0.70}, // Turquiose
		{320.0, 0.84}, // Blue
		{328.0, 0.91}, // Violet
		{360.0, 1.0},  // Pink wrap
	}

	const duration = 8.0
	doc := new(Document)
	doc.Version = Version
	doc.Duration = duration

	opacity := Track{ID: "opacity", Kind: KindReal}
	opacity.Keyframes = []Keyframe{
		{Time: 0, Value: 0, Easing: Easing{Name: "ease-in-out"}},
		{Time: 2, Value: 1, Easing: Easing{Name: "bounce"}},
		{Time: duration, Value: 0},
	}

	position := Track{ID: "position", Kind: KindPoint}
	position.Keyframes = []Keyframe{
		{Time: 0, X: 0, Y: 0, Easing: Easing{Name: "cubic-bezier", Points: []float64{0.7, 0, 0.3, 1}}},
		{Time: duration / 2, X: 320, Y: 240, Easing: Easing{Name: "elastic"}},
		{Time: duration, X: 640, Y: 0},
	}

	colour := Track{ID: "colour", Kind: KindColor}
	for _, g := range gradient {
		c := colorful.Hcl(g.Hue, 0.5, 0.5).Clamped()
		colour.Keyframes = append(colour.Keyframes, Keyframe{
			Time:  g.Pos * duration,
			Color: c.Hex(),
			Alpha: 1,
		})
	}

	doc.Tracks = []Track{opacity, position, colour}
	return doc
}

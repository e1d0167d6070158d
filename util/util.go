package util

import (
	"github.com/matt-g-everett/animtx/anim"
)

// CurveLut samples an easing rule into a fixed-length look-up table, used
// to draw curve previews on a timeline.
func CurveLut(e anim.Easing, length int) []float64 {
	if length <= 0 {
		return nil
	}
	lut := make([]float64, length)
	if length == 1 {
		lut[0] = e.Apply(1)
		return lut
	}
	increment := 1.0 / float64(length-1)
	for i := range lut {
		lut[i] = e.Apply(float64(i) * increment)
	}
	return lut
}

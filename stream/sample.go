package stream

import (
	"encoding/binary"
	"math"

	"github.com/matt-g-everett/animtx/anim"
)

// Sample kind tags on the wire.
const (
	sampleReal byte = iota + 1
	samplePoint
	sampleColor
)

// marshalReal converts a sampled scalar into binary data.
func marshalReal(v anim.Real) []byte {
	data := make([]byte, 1, 1+8)
	data[0] = sampleReal
	return appendFloat(data, float64(v))
}

// marshalPoint converts a sampled point into binary data.
func marshalPoint(v anim.Point) []byte {
	data := make([]byte, 1, 1+16)
	data[0] = samplePoint
	data = appendFloat(data, v.X)
	return appendFloat(data, v.Y)
}

// marshalColor converts a sampled colour into binary data. The channels
// are clamped to displayable range before encoding.
func marshalColor(v anim.Color) []byte {
	data := make([]byte, 1, 1+4)
	data[0] = sampleColor
	r, g, b := v.Clamped().RGB255()
	a := uint8(math.Round(clamp01(v.A) * 255))
	return append(data, r, g, b, a)
}

func appendFloat(data []byte, v float64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	return append(data, buf[:]...)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

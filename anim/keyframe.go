package anim

// A Keyframe fixes a value at a point in time on a track. The easing rule
// governs the outgoing segment, from this keyframe to the next one. Within
// a track a keyframe is identified by its time alone.
type Keyframe[V Interpolatable[V]] struct {
	Time   float64
	Value  V
	Easing Easing
}

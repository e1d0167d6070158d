package anim

import (
	"sort"
)

// A Track holds the ordered keyframes for one animated property and the
// callback that receives sampled values.
type Track[V Interpolatable[V]] struct {
	id        string
	callback  func(V)
	keyframes []Keyframe[V]
}

// NewTrack creates an instance of a Track object.
func NewTrack[V Interpolatable[V]](id string, callback func(V)) *Track[V] {
	t := new(Track[V])
	t.id = id
	t.callback = callback
	return t
}

// ID returns the track's identifier.
func (t *Track[V]) ID() string {
	return t.id
}

// Add inserts a keyframe in time order. It reports false and leaves the
// track untouched when a keyframe already sits at exactly that time.
func (t *Track[V]) Add(k Keyframe[V]) bool {
	i := sort.Search(len(t.keyframes), func(i int) bool {
		return t.keyframes[i].Time >= k.Time
	})
	if i < len(t.keyframes) && t.keyframes[i].Time == k.Time {
		return false
	}
	t.keyframes = append(t.keyframes, Keyframe[V]{})
	copy(t.keyframes[i+1:], t.keyframes[i:])
	t.keyframes[i] = k
	return true
}

// RemoveKeyframe removes the keyframe at exactly the given time and
// reports whether one was removed.
func (t *Track[V]) RemoveKeyframe(at float64) bool {
	i := sort.Search(len(t.keyframes), func(i int) bool {
		return t.keyframes[i].Time >= at
	})
	if i >= len(t.keyframes) || t.keyframes[i].Time != at {
		return false
	}
	t.keyframes = append(t.keyframes[:i], t.keyframes[i+1:]...)
	return true
}

// Keyframes returns a snapshot of the keyframes in time order.
func (t *Track[V]) Keyframes() []Keyframe[V] {
	out := make([]Keyframe[V], len(t.keyframes))
	copy(out, t.keyframes)
	return out
}

// ValueAt samples the track at the given time. Times before the first
// keyframe clamp to its value, times after the last clamp to its value,
// and in between the earlier keyframe's easing shapes the blend towards
// the later one. An empty track yields the zero value.
func (t *Track[V]) ValueAt(at float64) V {
	if len(t.keyframes) == 0 {
		var zero V
		return zero
	}
	if at <= t.keyframes[0].Time {
		return t.keyframes[0].Value
	}
	last := len(t.keyframes) - 1
	if at >= t.keyframes[last].Time {
		return t.keyframes[last].Value
	}
	i := sort.Search(len(t.keyframes), func(i int) bool {
		return t.keyframes[i].Time > at
	})
	before := t.keyframes[i-1]
	after := t.keyframes[i]
	raw := (at - before.Time) / (after.Time - before.Time)
	return before.Value.Lerp(after.Value, before.Easing.Apply(raw))
}

// update resolves the track at the given time and fires the callback.
// Tracks with no keyframes are skipped.
func (t *Track[V]) update(at float64) {
	if len(t.keyframes) == 0 || t.callback == nil {
		return
	}
	t.callback(t.ValueAt(at))
}

func (t *Track[V]) removeAt(at float64) bool {
	return t.RemoveKeyframe(at)
}

func (t *Track[V]) times() []float64 {
	out := make([]float64, len(t.keyframes))
	for i, k := range t.keyframes {
		out[i] = k.Time
	}
	return out
}

package anim

import (
	"math"
	"sort"
	"sync"
	"time"
)

const tickInterval = time.Second / 60

// A sampler is a track of some value kind held in the Controller's
// registry.
type sampler interface {
	update(at float64)
	removeAt(at float64) bool
	times() []float64
}

// A Controller owns a set of tracks, the playback clock and the periodic
// tick that resolves every track against the current time. The mutex is
// the single exclusive-access boundary between the tick goroutine and
// callers; callbacks always run outside it, so a callback may call back
// into the Controller.
type Controller struct {
	mu       sync.Mutex
	tracks   map[string]sampler
	current  float64
	duration float64
	playing  bool
	stop     chan struct{}
}

// NewController creates an instance of a Controller. Durations that are
// not positive fall back to one second.
func NewController(duration float64) *Controller {
	c := new(Controller)
	c.tracks = make(map[string]sampler)
	c.duration = duration
	if c.duration <= 0 {
		c.duration = 1
	}
	return c
}

// Setup resets the clock for a new document: the duration is replaced and
// the current time returns to zero. Registered tracks are kept. A
// non-positive duration is ignored.
func (c *Controller) Setup(duration float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if duration <= 0 {
		return
	}
	c.duration = duration
	c.current = 0
}

// AddTrack creates an empty track under the given id and registers it,
// replacing any existing track along with its keyframes and callback. The
// callback receives the sampled value on every update.
func AddTrack[V Interpolatable[V]](c *Controller, id string, callback func(V)) *Track[V] {
	t := NewTrack(id, callback)
	c.mu.Lock()
	c.tracks[id] = t
	c.mu.Unlock()
	return t
}

// GetTrack looks up a track by id. It returns nil when no track exists
// under the id or when the stored track holds a different value kind.
func GetTrack[V Interpolatable[V]](c *Controller, id string) *Track[V] {
	c.mu.Lock()
	s, ok := c.tracks[id]
	c.mu.Unlock()
	if !ok {
		return nil
	}
	t, ok := s.(*Track[V])
	if !ok {
		return nil
	}
	return t
}

// AddKeyframe adds a keyframe to the named track. It reports false when
// no track of the value's kind exists under the id, or when a keyframe
// already sits at exactly that time.
func AddKeyframe[V Interpolatable[V]](c *Controller, id string, at float64, value V, easing Easing) bool {
	t := GetTrack[V](c, id)
	if t == nil {
		return false
	}
	return t.Add(Keyframe[V]{Time: at, Value: value, Easing: easing})
}

// RemoveTrack discards the track registered under the given id, if any.
func (c *Controller) RemoveTrack(id string) {
	c.mu.Lock()
	delete(c.tracks, id)
	c.mu.Unlock()
}

// RemoveKeyframe removes the keyframe at exactly the given time from the
// named track. It reports false when the track or the keyframe is absent.
func (c *Controller) RemoveKeyframe(id string, at float64) bool {
	c.mu.Lock()
	s, ok := c.tracks[id]
	c.mu.Unlock()
	if !ok {
		return false
	}
	return s.removeAt(at)
}

// TrackIDs returns the registered track ids in sorted order.
func (c *Controller) TrackIDs() []string {
	c.mu.Lock()
	out := make([]string, 0, len(c.tracks))
	for id := range c.tracks {
		out = append(out, id)
	}
	c.mu.Unlock()
	sort.Strings(out)
	return out
}

// KeyframeTimes returns the sorted union of every keyframe time across
// all tracks, without duplicates. Timeline UIs use it to draw markers and
// snap points.
func (c *Controller) KeyframeTimes() []float64 {
	c.mu.Lock()
	seen := make(map[float64]struct{})
	for _, s := range c.tracks {
		for _, at := range s.times() {
			seen[at] = struct{}{}
		}
	}
	c.mu.Unlock()
	out := make([]float64, 0, len(seen))
	for at := range seen {
		out = append(out, at)
	}
	sort.Float64s(out)
	return out
}

// Update resolves every track with at least one keyframe at the current
// time and fires its callback, in track id order. Callers that set the
// time directly call Update themselves for immediate feedback.
func (c *Controller) Update() {
	c.mu.Lock()
	at := c.current
	ids := make([]string, 0, len(c.tracks))
	for id := range c.tracks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	snapshot := make([]sampler, len(ids))
	for i, id := range ids {
		snapshot[i] = c.tracks[id]
	}
	c.mu.Unlock()

	for _, s := range snapshot {
		s.update(at)
	}
}

// CurrentTime returns the playback clock position in seconds.
func (c *Controller) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// SetTime moves the playback clock, clamping negative times to zero. It
// does not resolve the tracks; call Update for immediate feedback.
func (c *Controller) SetTime(at float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if at < 0 {
		at = 0
	}
	c.current = at
}

// Duration returns the document length in seconds.
func (c *Controller) Duration() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// IsPlaying reports whether the periodic tick is running.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Play starts the periodic tick. Each tick advances the clock by the wall
// clock time elapsed since the previous tick, wraps to zero at the
// duration and resolves every track. Calling Play while playing is a
// no-op.
func (c *Controller) Play() {
	c.mu.Lock()
	if c.playing {
		c.mu.Unlock()
		return
	}
	c.playing = true
	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	go c.run(stop)
}

func (c *Controller) run(stop chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			c.advance(now.Sub(last).Seconds())
			last = now
		}
	}
}

// advance moves the clock forward and resolves the tracks. The playing
// flag is re-checked under the lock so a tick that raced Pause does
// nothing.
func (c *Controller) advance(dt float64) {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}
	c.current += dt
	if c.current >= c.duration {
		c.current = math.Mod(c.current, c.duration)
	}
	c.mu.Unlock()

	c.Update()
}

// Pause stops the periodic tick. The current time keeps its last value
// and no further tick mutates the clock once Pause returns.
func (c *Controller) Pause() {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}
	c.playing = false
	close(c.stop)
	c.stop = nil
	c.mu.Unlock()
}

// Reset pauses playback and rewinds to zero. The tracks are not resolved;
// callers wanting an immediate visual reset call Update.
func (c *Controller) Reset() {
	c.Pause()
	c.mu.Lock()
	c.current = 0
	c.mu.Unlock()
}

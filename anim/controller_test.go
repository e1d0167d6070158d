package anim

import (
	"math"
	"testing"
	"time"
)

func TestControllerKeyframeTimesUnion(t *testing.T) {
	c := NewController(10)
	AddTrack(c, "a", func(Real) {})
	AddKeyframe(c, "a", 0, Real(0), Easing{})
	AddKeyframe(c, "a", 2, Real(0), Easing{})
	AddTrack(c, "b", func(Point) {})
	AddKeyframe(c, "b", 0, Point{}, Easing{})
	AddKeyframe(c, "b", 1, Point{}, Easing{})
	AddKeyframe(c, "b", 3, Point{}, Easing{})
	AddTrack(c, "c", func(Color) {})
	AddKeyframe(c, "c", 1.5, Color{}, Easing{})
	AddKeyframe(c, "c", 4, Color{}, Easing{})

	want := []float64{0, 1, 1.5, 2, 3, 4}
	got := c.KeyframeTimes()
	if len(got) != len(want) {
		t.Fatalf("KeyframeTimes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("KeyframeTimes = %v, want %v", got, want)
		}
	}
}

func TestControllerTypeCheckedLookup(t *testing.T) {
	c := NewController(10)
	AddTrack(c, "x", func(Real) {})

	if GetTrack[Real](c, "x") == nil {
		t.Error("lookup with the right kind returned nil")
	}
	if GetTrack[Point](c, "x") != nil {
		t.Error("lookup with the wrong kind should return nil")
	}
	if GetTrack[Real](c, "missing") != nil {
		t.Error("lookup of an unknown id should return nil")
	}
	if AddKeyframe(c, "missing", 0, Real(1), Easing{}) {
		t.Error("AddKeyframe accepted an unknown track id")
	}
	if AddKeyframe(c, "x", 0, Point{}, Easing{}) {
		t.Error("AddKeyframe accepted a keyframe of the wrong kind")
	}
}

func TestControllerAddTrackOverwrites(t *testing.T) {
	c := NewController(10)
	AddTrack(c, "x", func(Real) {})
	AddKeyframe(c, "x", 1, Real(5), Easing{})

	AddTrack(c, "x", func(Point) {})
	if GetTrack[Real](c, "x") != nil {
		t.Error("old track survived re-registration")
	}
	tr := GetTrack[Point](c, "x")
	if tr == nil {
		t.Fatal("new track not registered")
	}
	if n := len(tr.Keyframes()); n != 0 {
		t.Errorf("new track has %d keyframes, want 0", n)
	}
}

func TestControllerUpdateFiresCallbacks(t *testing.T) {
	c := NewController(10)
	var got []float64
	AddTrack(c, "x", func(v Real) { got = append(got, float64(v)) })
	AddKeyframe(c, "x", 1, Real(0), Easing{})
	AddKeyframe(c, "x", 3, Real(100), Easing{})
	AddTrack(c, "empty", func(Real) { t.Error("empty track callback fired") })

	c.SetTime(2)
	c.Update()
	if len(got) != 1 || math.Abs(got[0]-50) > 1e-9 {
		t.Fatalf("callback values = %v, want [50]", got)
	}

	c.SetTime(-5)
	if at := c.CurrentTime(); at != 0 {
		t.Errorf("SetTime(-5) left currentTime = %g, want 0", at)
	}
	c.Update()
	if len(got) != 2 || got[1] != 0 {
		t.Fatalf("callback values = %v, want [50 0]", got)
	}
}

func TestControllerRemove(t *testing.T) {
	c := NewController(10)
	AddTrack(c, "x", func(Real) {})
	AddKeyframe(c, "x", 1, Real(0), Easing{})

	if !c.RemoveKeyframe("x", 1) {
		t.Error("RemoveKeyframe missed a present keyframe")
	}
	if c.RemoveKeyframe("x", 1) {
		t.Error("RemoveKeyframe removed an absent keyframe")
	}
	if c.RemoveKeyframe("missing", 1) {
		t.Error("RemoveKeyframe accepted an unknown track id")
	}

	c.RemoveTrack("x")
	if GetTrack[Real](c, "x") != nil {
		t.Error("track survived RemoveTrack")
	}
	c.RemoveTrack("x") // absent ids are a no-op
}

func TestControllerSetup(t *testing.T) {
	c := NewController(10)
	AddTrack(c, "x", func(Real) {})
	AddKeyframe(c, "x", 1, Real(0), Easing{})
	c.SetTime(5)

	c.Setup(20)
	if c.Duration() != 20 {
		t.Errorf("duration = %g, want 20", c.Duration())
	}
	if c.CurrentTime() != 0 {
		t.Errorf("currentTime = %g, want 0", c.CurrentTime())
	}
	if len(c.KeyframeTimes()) != 1 {
		t.Error("Setup dropped registered tracks")
	}

	c.Setup(-1)
	if c.Duration() != 20 {
		t.Error("Setup accepted a non-positive duration")
	}
}

func TestControllerPlayPauseReset(t *testing.T) {
	c := NewController(10)
	AddTrack(c, "x", func(Real) {})
	AddKeyframe(c, "x", 0, Real(0), Easing{})
	AddKeyframe(c, "x", 10, Real(1), Easing{})

	c.Play()
	if !c.IsPlaying() {
		t.Fatal("Play did not set playing")
	}
	c.Play() // second call is a no-op
	time.Sleep(80 * time.Millisecond)
	c.Pause()
	if c.IsPlaying() {
		t.Fatal("Pause did not clear playing")
	}

	at := c.CurrentTime()
	if at <= 0 {
		t.Error("clock did not advance while playing")
	}
	time.Sleep(50 * time.Millisecond)
	if c.CurrentTime() != at {
		t.Error("clock advanced while paused")
	}
	c.Pause() // pausing while paused is a no-op

	c.Reset()
	if c.CurrentTime() != 0 || c.IsPlaying() {
		t.Errorf("after Reset: currentTime = %g playing = %v, want 0 false", c.CurrentTime(), c.IsPlaying())
	}
}

func TestControllerWrapsAtDuration(t *testing.T) {
	c := NewController(0.05)
	c.Play()
	time.Sleep(150 * time.Millisecond)
	c.Pause()

	if at := c.CurrentTime(); at < 0 || at >= 0.05 {
		t.Errorf("currentTime after wrapping = %g, want within [0, 0.05)", at)
	}
}

func TestControllerPauseFromCallback(t *testing.T) {
	c := NewController(1)
	AddTrack(c, "x", func(Real) { c.Pause() })
	AddKeyframe(c, "x", 0, Real(0), Easing{})

	c.Play()
	time.Sleep(80 * time.Millisecond)
	if c.IsPlaying() {
		t.Error("Pause from inside a tick callback did not stop playback")
	}
}

package scene

import (
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/animtx/anim"
)

// Version is written into documents produced by this package.
const Version = "1"

// Value kinds a document track can hold.
const (
	KindReal  = "real"
	KindPoint = "point"
	KindColor = "color"
)

// A Document is the on-disk shape of an animated scene.
type Document struct {
	Version  string  `yaml:"version"`
	Duration float64 `yaml:"duration"`
	Tracks   []Track `yaml:"tracks"`
}

// A Track is the on-disk shape of one animated property.
type Track struct {
	ID        string     `yaml:"id"`
	Kind      string     `yaml:"kind"`
	Keyframes []Keyframe `yaml:"keyframes"`
}

// A Keyframe is the on-disk shape of one keyframe. Value carries real
// tracks, X/Y carry point tracks and Color/Alpha carry colour tracks.
type Keyframe struct {
	Time   float64 `yaml:"time"`
	Value  float64 `yaml:"value,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Color  string  `yaml:"color,omitempty"`
	Alpha  float64 `yaml:"alpha,omitempty"`
	Easing Easing  `yaml:"easing,omitempty"`
}

// An Easing is the on-disk shape of an easing rule. Points holds the four
// control coordinates x1, y1, x2, y2 when Name is cubic-bezier.
type Easing struct {
	Name   string    `yaml:"name,omitempty"`
	Points []float64 `yaml:"points,omitempty,flow"`
}

// rule converts a document easing to an engine one. Unknown names and
// malformed bezier points fall back to linear.
func (e Easing) rule() anim.Easing {
	switch e.Name {
	case "ease-in":
		return anim.Easing{Kind: anim.EaseIn}
	case "ease-out":
		return anim.Easing{Kind: anim.EaseOut}
	case "ease-in-out":
		return anim.Easing{Kind: anim.EaseInOut}
	case "bounce":
		return anim.Easing{Kind: anim.Bounce}
	case "elastic":
		return anim.Easing{Kind: anim.Elastic}
	case "cubic-bezier":
		if len(e.Points) == 4 {
			return anim.Bezier(e.Points[0], e.Points[1], e.Points[2], e.Points[3])
		}
	}
	return anim.Easing{}
}

// easingDoc converts an engine easing to its document shape.
func easingDoc(e anim.Easing) Easing {
	switch e.Kind {
	case anim.EaseIn:
		return Easing{Name: "ease-in"}
	case anim.EaseOut:
		return Easing{Name: "ease-out"}
	case anim.EaseInOut:
		return Easing{Name: "ease-in-out"}
	case anim.Bounce:
		return Easing{Name: "bounce"}
	case anim.Elastic:
		return Easing{Name: "elastic"}
	case anim.CubicBezier:
		return Easing{Name: "cubic-bezier", Points: []float64{e.X1, e.Y1, e.X2, e.Y2}}
	default:
		return Easing{Name: "linear"}
	}
}

// Load reads a scene document from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Save writes a scene document to a YAML file.
func Save(doc *Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// A Sink supplies the per-track callbacks that receive sampled values,
// one factory per value kind.
type Sink interface {
	Real(id string) func(anim.Real)
	Point(id string) func(anim.Point)
	Color(id string) func(anim.Color)
}

// Apply builds a Controller from a document, registering one track per
// document track with a callback from the sink. Tracks of unknown kind
// are skipped, unparsable colours are dropped and malformed easings fall
// back to linear; document content never fails.
func Apply(doc *Document, sink Sink) *anim.Controller {
	c := anim.NewController(doc.Duration)
	for _, tr := range doc.Tracks {
		switch tr.Kind {
		case KindReal:
			anim.AddTrack(c, tr.ID, sink.Real(tr.ID))
			for _, k := range tr.Keyframes {
				anim.AddKeyframe(c, tr.ID, k.Time, anim.Real(k.Value), k.Easing.rule())
			}
		case KindPoint:
			anim.AddTrack(c, tr.ID, sink.Point(tr.ID))
			for _, k := range tr.Keyframes {
				anim.AddKeyframe(c, tr.ID, k.Time, anim.Point{X: k.X, Y: k.Y}, k.Easing.rule())
			}
		case KindColor:
			anim.AddTrack(c, tr.ID, sink.Color(tr.ID))
			for _, k := range tr.Keyframes {
				col, err := colorful.Hex(k.Color)
				if err != nil {
					continue
				}
				anim.AddKeyframe(c, tr.ID, k.Time, anim.Color{Color: col, A: k.Alpha}, k.Easing.rule())
			}
		}
	}
	return c
}

// Snapshot reads the controller's tracks back into a document so an
// edited scene can be saved. Track kinds are recovered through the
// type-checked accessors.
func Snapshot(c *anim.Controller) *Document {
	doc := new(Document)
	doc.Version = Version
	doc.Duration = c.Duration()

	for _, id := range c.TrackIDs() {
		if t := anim.GetTrack[anim.Real](c, id); t != nil {
			tr := Track{ID: id, Kind: KindReal}
			for _, k := range t.Keyframes() {
				tr.Keyframes = append(tr.Keyframes, Keyframe{
					Time:   k.Time,
					Value:  float64(k.Value),
					Easing: easingDoc(k.Easing),
				})
			}
			doc.Tracks = append(doc.Tracks, tr)
			continue
		}
		if t := anim.GetTrack[anim.Point](c, id); t != nil {
			tr := Track{ID: id, Kind: KindPoint}
			for _, k := range t.Keyframes() {
				tr.Keyframes = append(tr.Keyframes, Keyframe{
					Time:   k.Time,
					X:      k.Value.X,
					Y:      k.Value.Y,
					Easing: easingDoc(k.Easing),
				})
			}
			doc.Tracks = append(doc.Tracks, tr)
			continue
		}
		if t := anim.GetTrack[anim.Color](c, id); t != nil {
			tr := Track{ID: id, Kind: KindColor}
			for _, k := range t.Keyframes() {
				tr.Keyframes = append(tr.Keyframes, Keyframe{
					Time:   k.Time,
					Color:  k.Value.Hex(),
					Alpha:  k.Value.A,
					Easing: easingDoc(k.Easing),
				})
			}
			doc.Tracks = append(doc.Tracks, tr)
		}
	}

	return doc
}

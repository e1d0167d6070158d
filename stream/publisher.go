package stream

import (
	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/animtx/anim"
)

// A Publisher forwards sampled track values as binary messages to one MQTT
// topic per track. It satisfies scene.Sink, so a scene document can bind
// its tracks straight to the broker.
type Publisher struct {
	client mqtt.Client
	prefix string
}

// NewPublisher creates an instance of a Publisher.
func NewPublisher(client mqtt.Client, prefix string) *Publisher {
	p := new(Publisher)
	p.client = client
	p.prefix = prefix
	return p
}

// publish sends at QoS 0 without awaiting delivery, so a slow broker never
// blocks the playback tick.
func (p *Publisher) publish(id string, data []byte) {
	p.client.Publish(p.prefix+"/"+id, 0, false, data)
}

// Real returns a callback publishing scalar samples for the given track.
func (p *Publisher) Real(id string) func(anim.Real) {
	return func(v anim.Real) {
		p.publish(id, marshalReal(v))
	}
}

// Point returns a callback publishing point samples for the given track.
func (p *Publisher) Point(id string) func(anim.Point) {
	return func(v anim.Point) {
		p.publish(id, marshalPoint(v))
	}
}

// Color returns a callback publishing colour samples for the given track.
func (p *Publisher) Color(id string) func(anim.Color) {
	return func(v anim.Color) {
		p.publish(id, marshalColor(v))
	}
}

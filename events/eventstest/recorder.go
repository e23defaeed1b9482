// Package eventstest provides an in-memory Publisher for tests.
package eventstest

import (
	"context"
	"sync"

	"github.com/rtharindu/echannaling-admin/events"
)

// Recorder keeps every published message in order.
type Recorder struct {
	mu       sync.Mutex
	messages []events.Message
	Err      error
}

func (r *Recorder) Publish(_ context.Context, topic events.Topic, payload interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, events.NewMessage(topic, payload))
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Messages() []events.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Message(nil), r.messages...)
}

// OnTopic returns the payloads published on topic.
func (r *Recorder) OnTopic(topic events.Topic) []interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []interface{}
	for _, m := range r.messages {
		if m.Topic == topic {
			out = append(out, m.Data)
		}
	}
	return out
}

// Package pubsub is the in-process message bus inquiries travel on.
package pubsub

import "context"

// Message is one event on the bus.
type Message struct {
	Topic   string
	Payload []byte
	// Metadata travels with the payload, e.g. the channel an inquiry came
	// from.
	Metadata map[string]string
}

// Handler processes one received message. A returned error is logged; the
// message is not redelivered.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber delivers messages to handlers. Subscribe returns once the
// subscription is active; the handler then runs in the background until ctx
// is canceled or the subscriber is closed.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// Bus both publishes and subscribes.
type Bus interface {
	Publisher
	Subscriber
}

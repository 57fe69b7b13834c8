// Package event provides the in-process command channel: a small
// topic-based bus that delivers out-of-band commands (palette actions,
// scripted commands) to subscribed components.
package event

import (
	"log/slog"
	"sync"
)

// subscriptionBuffer bounds how many undelivered events a slow subscriber
// may accumulate before new ones are dropped.
const subscriptionBuffer = 16

// Event is a published command with an optional payload.
type Event struct {
	Topic   string
	Payload any
}

// Subscription receives events for the topics it was created with. Consume
// from C; the channel is closed on Unsubscribe and when the bus closes.
type Subscription struct {
	topics map[string]struct{}
	ch     chan Event
}

// C returns the receive channel for the subscription.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

func (s *Subscription) matches(topic string) bool {
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[topic]
	return ok
}

// Bus fans published events out to matching subscriptions. Publish never
// blocks: when a subscriber's buffer is full the event is dropped for that
// subscriber and a warning logged.
type Bus struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	logger *slog.Logger
	closed bool
}

// New returns a bus with a discarded logger.
func New() *Bus {
	return NewWithLogger(slog.New(slog.DiscardHandler))
}

// NewWithLogger returns a bus that logs delivery problems to the given
// logger.
func NewWithLogger(logger *slog.Logger) *Bus {
	return &Bus{
		subs:   make(map[*Subscription]struct{}),
		logger: logger,
	}
}

// Subscribe registers interest in the given topics. With no topics the
// subscription receives everything. Returns nil on a closed bus.
func (b *Bus) Subscribe(topics ...string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}

	sub := &Subscription{ch: make(chan Event, subscriptionBuffer)}
	if len(topics) > 0 {
		sub.topics = make(map[string]struct{}, len(topics))
		for _, t := range topics {
			sub.topics[t] = struct{}{}
		}
	}
	b.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes the subscription and closes its channel. Safe to call
// with nil or an already-removed subscription.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub.ch)
}

// Publish delivers the event to every matching subscription.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	ev := Event{Topic: topic, Payload: payload}
	for sub := range b.subs {
		if !sub.matches(topic) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			b.logger.Warn("event dropped for slow subscriber", "topic", topic)
		}
	}
}

// Close shuts the bus down, closing all subscription channels. Further
// Publish and Subscribe calls are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub.ch)
	}
	b.subs = nil
}

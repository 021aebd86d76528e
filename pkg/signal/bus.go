// Package signal is a small publish/subscribe registry with named topics.
// It replaces ad hoc global flags between otherwise unrelated components.
package signal

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
)

// Topic names a notification channel
type Topic string

// Topics used across the viewers
const (
	// TopicCaptureChanged carries a bool: true when the pointer was captured
	TopicCaptureChanged Topic = "capture.changed"
	// TopicSceneReady is published once the scene finished loading, no payload
	TopicSceneReady Topic = "scene.ready"
	// TopicHint carries a string to show to the user
	TopicHint Topic = "hint.show"
)

// Handler receives a published payload
type Handler func(payload any)

// Bus dispatches payloads to the handlers of a topic in subscription order.
// It is safe for concurrent use; handlers run on the publishing goroutine
// without the bus lock held.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	topics map[Topic]*orderedmap.OrderedMap[uint64, Handler]
	closed bool
}

// Subscription ties a handler to its owner's lifetime
type Subscription struct {
	bus   *Bus
	topic Topic
	id    uint64
	once  sync.Once
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		topics: make(map[Topic]*orderedmap.OrderedMap[uint64, Handler]),
	}
}

// Subscribe registers fn for topic. It returns nil on a closed bus.
func (b *Bus) Subscribe(topic Topic, fn Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || fn == nil {
		return nil
	}

	handlers, ok := b.topics[topic]
	if !ok {
		handlers = orderedmap.NewOrderedMap[uint64, Handler]()
		b.topics[topic] = handlers
	}
	b.nextID++
	handlers.Set(b.nextID, fn)
	return &Subscription{bus: b, topic: topic, id: b.nextID}
}

// Unsubscribe removes the handler. Calling it more than once, or on a nil
// subscription, is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.bus.remove(s.topic, s.id)
	})
}

func (b *Bus) remove(topic Topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	handlers, ok := b.topics[topic]
	if !ok {
		return
	}
	handlers.Delete(id)
	if handlers.Len() == 0 {
		delete(b.topics, topic)
	}
}

// Publish calls every handler of topic with payload and returns how many ran.
// Handlers removed by an earlier handler of the same publish are skipped.
func (b *Bus) Publish(topic Topic, payload any) int {
	b.mu.Lock()
	handlers, ok := b.topics[topic]
	if !ok || b.closed {
		b.mu.Unlock()
		return 0
	}
	ids := handlers.Keys()
	b.mu.Unlock()

	n := 0
	for _, id := range ids {
		b.mu.Lock()
		if b.closed {
			b.mu.Unlock()
			break
		}
		fn, ok := handlers.Get(id)
		b.mu.Unlock()
		if !ok {
			continue
		}
		fn(payload)
		n++
	}
	return n
}

// Topics returns the topics that currently have subscribers
func (b *Bus) Topics() []Topic {
	b.mu.Lock()
	defer b.mu.Unlock()
	topics := make([]Topic, 0, len(b.topics))
	for t := range b.topics {
		topics = append(topics, t)
	}
	return topics
}

// Close drops every subscription. Publish and Subscribe do nothing afterwards.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.topics = make(map[Topic]*orderedmap.OrderedMap[uint64, Handler])
}

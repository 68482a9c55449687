package events

import (
	"context"
	"sort"
	"sync"

	"github.com/build50/build50/internal/ports"
)

// AnyEvent subscribes a handler to every event type.
const AnyEvent = "*"

// LoggingPublisher records each site event as a structured log entry and then
// fans it out to subscribers.
type LoggingPublisher struct {
	logger ports.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates a publisher that logs through logger. A nil
// logger disables logging but keeps delivery.
func NewLoggingPublisher(logger ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: logger,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event and invokes type-specific handlers followed by
// AnyEvent handlers. Handler failures are logged and never returned.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.EventType()]...)
	handlers = append(handlers, p.subs[AnyEvent]...)
	p.mu.RUnlock()

	if p.logger != nil {
		p.logger.Info(ctx, "site event", eventFields(event)...)
	}

	for _, entry := range handlers {
		if err := entry.handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err)
		}
	}

	return nil
}

func eventFields(event ports.DomainEvent) []interface{} {
	fields := []interface{}{"event_type", event.EventType()}
	switch payload := event.Payload().(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	case nil:
	default:
		fields = append(fields, "payload", payload)
	}
	return fields
}

// Subscribe registers a handler for eventType, or for every type when
// eventType is AnyEvent.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return noopSubscription{}, nil
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{cancel: func() { p.remove(eventType, id) }}, nil
}

func (p *LoggingPublisher) remove(eventType string, id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	handlers := p.subs[eventType]
	for i, entry := range handlers {
		if entry.id == id {
			p.subs[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			return
		}
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler ports.EventHandler
}

var _ ports.EventPublisher = (*LoggingPublisher)(nil)

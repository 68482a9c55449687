package ports

import "context"

const (
	// EventPageNavigated is emitted after the router mounts a page.
	EventPageNavigated = "page.navigated"
	// EventThemeChanged is emitted when the active theme flips.
	EventThemeChanged = "theme.changed"
	// EventAddOnCategorySelected is emitted when the add-on browser switches category.
	EventAddOnCategorySelected = "addons.category_selected"
	// EventEnquirySubmitted is emitted when the contact form starts sending.
	EventEnquirySubmitted = "enquiry.submitted"
	// EventEnquiryDelivered is emitted when the submitter acknowledges an enquiry.
	EventEnquiryDelivered = "enquiry.delivered"
	// EventEnquiryFailed is emitted when delivery fails.
	EventEnquiryFailed = "enquiry.failed"
	// EventCookiesAccepted is emitted once the cookie banner is dismissed.
	EventCookiesAccepted = "cookies.accepted"
)

// DomainEvent represents a significant occurrence in the site session. Events
// carry structured payloads that subscribers can use for logging or for
// follow-up work such as recording delivered enquiries.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// Event is the stock DomainEvent implementation.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// NewEvent builds an Event from alternating key/value pairs.
func NewEvent(eventType string, kv ...interface{}) Event {
	fields := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fields[key] = kv[i+1]
	}
	return Event{Type: eventType, Fields: fields}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() interface{} { return e.Fields }

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run. Implementations must be
// thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned
// so publishers can log diagnostics and continue delivering to the remaining
// subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers invoke Unsubscribe to
// stop receiving events.
type Subscription interface {
	Unsubscribe()
}

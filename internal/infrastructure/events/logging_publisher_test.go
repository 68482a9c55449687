package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logginginfra "github.com/build50/build50/internal/infrastructure/logging"
	"github.com/build50/build50/internal/ports"
)

func newTestPublisher(t *testing.T) (*LoggingPublisher, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    buf,
		Level:     "info",
		Layer:     "test",
		Component: "publisher",
	})
	require.NoError(t, err)
	return NewLoggingPublisher(logger), buf
}

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	publisher, buf := newTestPublisher(t)

	ctx := ports.WithCorrelationID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, ports.NewEvent(ports.EventPageNavigated, "page", "services"))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "site event", entry["message"])
	assert.Equal(t, ports.EventPageNavigated, entry["event_type"])
	assert.Equal(t, "abc-123", entry["correlation_id"])
	assert.Equal(t, "services", entry["page"])
}

func TestLoggingPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	publisher, _ := newTestPublisher(t)

	var typed, all []string
	_, err := publisher.Subscribe(ports.EventThemeChanged, func(_ context.Context, ev ports.DomainEvent) error {
		typed = append(typed, ev.EventType())
		return nil
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(AnyEvent, func(_ context.Context, ev ports.DomainEvent) error {
		all = append(all, ev.EventType())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.NewEvent(ports.EventThemeChanged, "theme", "light")))
	require.NoError(t, publisher.Publish(context.Background(), ports.NewEvent(ports.EventCookiesAccepted)))

	assert.Equal(t, []string{ports.EventThemeChanged}, typed)
	assert.Equal(t, []string{ports.EventThemeChanged, ports.EventCookiesAccepted}, all)
}

func TestLoggingPublisherUnsubscribe(t *testing.T) {
	t.Parallel()

	publisher, _ := newTestPublisher(t)

	calls := 0
	sub, err := publisher.Subscribe(ports.EventEnquiryDelivered, func(context.Context, ports.DomainEvent) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	ev := ports.NewEvent(ports.EventEnquiryDelivered, "enquiry_id", "e-1")
	require.NoError(t, publisher.Publish(context.Background(), ev))
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), ev))
	assert.Equal(t, 1, calls)
}

func TestLoggingPublisherLogsHandlerFailures(t *testing.T) {
	t.Parallel()

	publisher, buf := newTestPublisher(t)
	_, err := publisher.Subscribe(ports.EventEnquiryFailed, func(context.Context, ports.DomainEvent) error {
		return errors.New("disk full")
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.NewEvent(ports.EventEnquiryFailed)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "event handler failed")
	assert.Contains(t, lines[1], "disk full")
}

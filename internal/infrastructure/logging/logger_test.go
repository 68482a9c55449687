package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/build50/build50/internal/ports"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

type pageName string

func (p pageName) String() string { return "page:" + string(p) }

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger, err := New(Options{
		Writer:    buf,
		Level:     "debug",
		Layer:     "app",
		Component: "router",
	})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "page mounted", "page", pageName("about"), "generation", 3)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "page mounted", entry["message"])
	assert.Equal(t, "app", entry["layer"])
	assert.Equal(t, "router", entry["component"])
	assert.Equal(t, "abc123", entry["correlation_id"])
	assert.Equal(t, "page:about", entry["page"])
	assert.EqualValues(t, 3, entry["generation"])
}

func TestLoggerWithAddsFieldsAndErrors(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger, err := New(Options{Writer: buf, Fields: map[string]interface{}{"app": "build50"}})
	require.NoError(t, err)

	child := logger.With("component", "submitter")
	child.Warn(context.Background(), "delivery failed", "error", errors.New("timeout"), "component", "outbox")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "build50", entry["app"])
	assert.Equal(t, "outbox", entry["component"])
	assert.Equal(t, "timeout", entry["error"])
	assert.Equal(t, "infrastructure", entry["layer"])
	assert.NotContains(t, entry, "correlation_id")
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger, err := New(Options{Writer: buf, Level: "warn"})
	require.NoError(t, err)

	logger.Info(context.Background(), "hidden")
	logger.Debug(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	_, err = New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello world")
	assert.Same(t, noOp, noOp.With("key", "value"))

	var nilLogger *Logger
	assert.IsType(t, &NoOpLogger{}, nilLogger.With("k", "v"))
}

func TestBufferStoresAndFlushes(t *testing.T) {
	t.Parallel()

	buffer := NewBuffer(10)
	ctx := ports.WithCorrelationID(context.Background(), "buffered")
	buffer.Info(ctx, "loading config", "component", "config")
	buffer.With("component", "storage").Error(ctx, "open failed", "attempt", 1)
	require.Equal(t, 2, buffer.Len())

	out := &bytes.Buffer{}
	delegate, err := New(Options{Writer: out})
	require.NoError(t, err)

	buffer.Flush(delegate)
	assert.Zero(t, buffer.Len())

	entries := decodeLines(t, out)
	require.Len(t, entries, 2)
	assert.Equal(t, "loading config", entries[0]["message"])
	assert.Equal(t, "config", entries[0]["component"])
	assert.Equal(t, "open failed", entries[1]["message"])
	assert.Equal(t, "storage", entries[1]["component"])
	assert.Equal(t, "buffered", entries[1]["correlation_id"])
	assert.Equal(t, "error", entries[1]["level"])
}

func TestBufferDropsOldestWhenFull(t *testing.T) {
	t.Parallel()

	buffer := NewBuffer(2)
	buffer.Info(context.Background(), "one")
	buffer.Info(context.Background(), "two")
	buffer.Info(context.Background(), "three")

	out := &bytes.Buffer{}
	delegate, err := New(Options{Writer: out})
	require.NoError(t, err)
	buffer.Flush(delegate)

	entries := decodeLines(t, out)
	require.Len(t, entries, 2)
	assert.Equal(t, "two", entries[0]["message"])
	assert.Equal(t, "three", entries[1]["message"])
}

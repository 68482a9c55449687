package logging

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/build50/build50/internal/ports"
)

const defaultBufferLimit = 256

type bufferedEntry struct {
	ctx    context.Context
	level  zerolog.Level
	msg    string
	fields []interface{}
}

type bufferStore struct {
	mu      sync.Mutex
	limit   int
	entries []bufferedEntry
}

// Buffer is a ports.Logger that holds entries in memory until a real sink is
// available. The CLI logs through it while configuration (which decides where
// logs go) is still loading, then calls Flush. When full, the oldest entries
// are dropped.
type Buffer struct {
	store  *bufferStore
	fields []interface{}
}

// NewBuffer creates a Buffer holding at most limit entries (256 when <= 0).
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &Buffer{store: &bufferStore{limit: limit}}
}

// Debug implements ports.Logger.
func (b *Buffer) Debug(ctx context.Context, msg string, fields ...interface{}) {
	b.add(ctx, zerolog.DebugLevel, msg, fields)
}

// Info implements ports.Logger.
func (b *Buffer) Info(ctx context.Context, msg string, fields ...interface{}) {
	b.add(ctx, zerolog.InfoLevel, msg, fields)
}

// Warn implements ports.Logger.
func (b *Buffer) Warn(ctx context.Context, msg string, fields ...interface{}) {
	b.add(ctx, zerolog.WarnLevel, msg, fields)
}

// Error implements ports.Logger.
func (b *Buffer) Error(ctx context.Context, msg string, fields ...interface{}) {
	b.add(ctx, zerolog.ErrorLevel, msg, fields)
}

// With returns a child sharing the same storage.
func (b *Buffer) With(fields ...interface{}) ports.Logger {
	next := append(append([]interface{}{}, b.fields...), fields...)
	return &Buffer{store: b.store, fields: next}
}

// Len reports how many entries are waiting to be flushed.
func (b *Buffer) Len() int {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	return len(b.store.entries)
}

func (b *Buffer) add(ctx context.Context, level zerolog.Level, msg string, fields []interface{}) {
	if b == nil || b.store == nil {
		return
	}
	entry := bufferedEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}{}, b.fields...), fields...),
	}

	s := b.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == s.limit {
		copy(s.entries, s.entries[1:])
		s.entries[len(s.entries)-1] = entry
		return
	}
	s.entries = append(s.entries, entry)
}

// Flush replays buffered entries into delegate in their original order and
// empties the buffer.
func (b *Buffer) Flush(delegate ports.Logger) {
	if b == nil || delegate == nil {
		return
	}
	s := b.store
	s.mu.Lock()
	entries := s.entries
	s.entries = nil
	s.mu.Unlock()

	for _, entry := range entries {
		switch entry.level {
		case zerolog.DebugLevel:
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case zerolog.WarnLevel:
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case zerolog.ErrorLevel:
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
}

var _ ports.Logger = (*Buffer)(nil)

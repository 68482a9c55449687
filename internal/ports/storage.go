package ports

import "context"

// StateStore persists small string preferences (currently only the theme)
// across sessions. It plays the role the browser's local storage plays for the
// website: one flat namespace of string keys to string values.
//
// Get reports ok=false for a key that was never written; that is not an
// error. Any returned error signals that storage is unavailable and callers
// are expected to degrade to session-only behaviour rather than surface it.
// Implementations must be safe for concurrent use.
type StateStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

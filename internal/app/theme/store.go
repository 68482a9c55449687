// Package theme owns the light/dark preference and writes every change
// through to a ports.StateStore.
package theme

import (
	"context"
	"sync"

	"github.com/build50/build50/internal/domain/site"
	"github.com/build50/build50/internal/infrastructure/logging"
	"github.com/build50/build50/internal/ports"
)

// Listener is notified after the active theme changes.
type Listener func(site.ThemePreference)

// Store is the single owner of the theme preference. Storage failures switch
// it into session-only mode: the value keeps working in memory and storage is
// never touched again for the life of the Store.
type Store struct {
	mu          sync.Mutex
	storage     ports.StateStore
	current     site.ThemePreference
	sessionOnly bool
	listeners   map[int]Listener
	nextID      int
	logger      ports.Logger
}

// New creates a Store backed by storage. A nil storage starts in
// session-only mode.
func New(storage ports.StateStore, logger ports.Logger) *Store {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Store{
		storage:     storage,
		current:     site.DefaultTheme,
		sessionOnly: storage == nil,
		listeners:   make(map[int]Listener),
		logger:      logger.With("component", "theme"),
	}
}

// Initialize reads the persisted preference. Exactly "light" or "dark" is
// honoured; anything else, including a read failure, yields dark. The
// resolved value is written back so a corrupt entry is replaced.
func (s *Store) Initialize(ctx context.Context) site.ThemePreference {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := site.DefaultTheme
	if !s.sessionOnly {
		raw, ok, err := s.storage.Get(ctx, site.ThemeStorageKey)
		switch {
		case err != nil:
			s.degrade(ctx, "read", err)
		case ok:
			if pref, valid := site.ParseTheme(raw); valid {
				resolved = pref
			} else {
				s.logger.Debug(ctx, "ignoring unrecognised stored theme", "value", raw)
			}
		}
	}

	s.current = resolved
	s.persist(ctx)
	return s.current
}

// Current returns the active preference.
func (s *Store) Current() site.ThemePreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SessionOnly reports whether storage has been abandoned.
func (s *Store) SessionOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionOnly
}

// Toggle flips the preference, persists it and returns the new value.
func (s *Store) Toggle(ctx context.Context) site.ThemePreference {
	s.mu.Lock()
	next := s.current.Toggle()
	s.mu.Unlock()
	return s.Set(ctx, next)
}

// Set makes pref active. Invalid values and no-op sets leave the store
// untouched and notify nobody.
func (s *Store) Set(ctx context.Context, pref site.ThemePreference) site.ThemePreference {
	s.mu.Lock()
	if _, valid := site.ParseTheme(string(pref)); !valid || pref == s.current {
		current := s.current
		s.mu.Unlock()
		return current
	}
	s.current = pref
	s.persist(ctx)
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Debug(ctx, "theme changed", "theme", pref)
	for _, l := range listeners {
		l(pref)
	}
	return pref
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// persist must be called with mu held.
func (s *Store) persist(ctx context.Context) {
	if s.sessionOnly {
		return
	}
	if err := s.storage.Set(ctx, site.ThemeStorageKey, s.current.String()); err != nil {
		s.degrade(ctx, "write", err)
	}
}

// degrade must be called with mu held.
func (s *Store) degrade(ctx context.Context, op string, err error) {
	s.sessionOnly = true
	s.logger.Warn(ctx, "theme storage unavailable, keeping preference for this session only",
		"op", op, "error", err)
}

func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for id := 1; id <= s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			out = append(out, l)
		}
	}
	return out
}

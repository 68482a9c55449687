// Package router tracks which page is mounted. There is no history and no
// URL: a page change is a plain state transition observed by the shell.
package router

import (
	"context"

	"github.com/build50/build50/internal/domain/site"
	"github.com/build50/build50/internal/infrastructure/logging"
	"github.com/build50/build50/internal/ports"
)

// Change describes a completed navigation.
type Change struct {
	From       site.PageID
	To         site.PageID
	Generation uint64
}

// Remount reports whether the navigation targeted the page already shown.
func (c Change) Remount() bool {
	return c.From == c.To
}

// Listener observes navigations. Listeners run synchronously inside Navigate.
type Listener func(Change)

// Router holds the current page and its mount generation. It is not safe for
// concurrent use; the shell only touches it from its update loop.
type Router struct {
	current    site.PageID
	generation uint64
	listeners  map[int]Listener
	nextID     int
	logger     ports.Logger
}

// New creates a router showing initial, which counts as the first mount.
func New(initial site.PageID, logger ports.Logger) (*Router, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	return &Router{
		current:    initial,
		generation: 1,
		listeners:  make(map[int]Listener),
		logger:     logger,
	}, nil
}

// Current returns the mounted page.
func (r *Router) Current() site.PageID {
	return r.current
}

// Mount returns the mount generation. It increases on every successful
// Navigate, including navigations to the current page, so page-local state
// keyed on it is discarded.
func (r *Router) Mount() uint64 {
	return r.generation
}

// Navigate mounts target. Targets outside the page set fail with
// *errors.InvalidPageError and leave the router untouched.
func (r *Router) Navigate(target site.PageID) error {
	if err := target.Validate(); err != nil {
		r.log().Debug(context.Background(), "navigation rejected", "page", string(target), "error", err)
		return err
	}

	change := Change{From: r.current, To: target, Generation: r.generation + 1}
	r.current = target
	r.generation = change.Generation

	r.log().Debug(context.Background(), "page mounted",
		"from", change.From, "page", change.To, "generation", change.Generation)

	for _, id := range r.listenerIDs() {
		if l, ok := r.listeners[id]; ok {
			l(change)
		}
	}
	return nil
}

// NavigateTo parses raw and navigates to it.
func (r *Router) NavigateTo(raw string) error {
	page, err := site.ParsePage(raw)
	if err != nil {
		return err
	}
	return r.Navigate(page)
}

// Subscribe registers l and returns a function that removes it.
func (r *Router) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}
	r.nextID++
	id := r.nextID
	r.listeners[id] = l
	return func() { delete(r.listeners, id) }
}

// listenerIDs returns registration order so notification is deterministic.
func (r *Router) listenerIDs() []int {
	ids := make([]int, 0, len(r.listeners))
	for id := 1; id <= r.nextID; id++ {
		if _, ok := r.listeners[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *Router) log() ports.Logger {
	if r.logger == nil {
		return logging.NewNoOpLogger()
	}
	return r.logger
}

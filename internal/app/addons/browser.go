// Package addons drives the category-filtered add-on list on the services
// page, including its staggered reveal.
package addons

import (
	"errors"
	"fmt"

	"github.com/build50/build50/internal/domain/catalog"
	siteerrors "github.com/build50/build50/pkg/errors"
)

// ErrInvalidCategory is wrapped by the ValidationError returned for a
// category outside the declared set.
var ErrInvalidCategory = errors.New("invalid add-on category")

// Phase is the reveal state of the visible list.
type Phase int

const (
	// PhaseSettled shows every record of the current category.
	PhaseSettled Phase = iota
	// PhaseExiting shows nothing: the previous set is gone and the new one has
	// not started to appear.
	PhaseExiting
	// PhaseEntering reveals records one tick at a time in catalog order.
	PhaseEntering
)

func (p Phase) String() string {
	switch p {
	case PhaseSettled:
		return "settled"
	case PhaseExiting:
		return "exiting"
	case PhaseEntering:
		return "entering"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Source supplies records per category. *catalog.Catalog satisfies it.
type Source interface {
	AddOns(category catalog.AddOnCategory) []catalog.AddOnRecord
}

// Browser is scoped to one mount of the services page. It is not safe for
// concurrent use.
type Browser struct {
	source   Source
	current  catalog.AddOnCategory
	phase    Phase
	revealed int
	seq      uint64
}

// New starts on the first declared category with its initial reveal pending,
// so the list animates in on mount just as it does after a selection.
func New(source Source) *Browser {
	b := &Browser{source: source, current: catalog.DefaultCategory()}
	b.begin()
	return b
}

// Current returns the selected category.
func (b *Browser) Current() catalog.AddOnCategory {
	return b.current
}

// Phase returns the reveal phase.
func (b *Browser) Phase() Phase {
	return b.phase
}

// Seq identifies the running transition. Ticks scheduled for an older value
// are ignored.
func (b *Browser) Seq() uint64 {
	return b.seq
}

// VisibleItems returns every record of the current category in declared
// order, regardless of how far the reveal has progressed.
func (b *Browser) VisibleItems() []catalog.AddOnRecord {
	return b.source.AddOns(b.current)
}

// Shown returns the records revealed so far.
func (b *Browser) Shown() []catalog.AddOnRecord {
	items := b.VisibleItems()
	switch b.phase {
	case PhaseExiting:
		return nil
	case PhaseEntering:
		if b.revealed < len(items) {
			return items[:b.revealed]
		}
	}
	return items
}

// Select switches to category and restarts the reveal. It reports whether a
// transition started; selecting the active category is a no-op. Unknown
// categories fail with a ValidationError wrapping ErrInvalidCategory.
func (b *Browser) Select(category catalog.AddOnCategory) (bool, error) {
	if !category.Valid() {
		return false, siteerrors.NewValidationError("category",
			fmt.Sprintf("unknown add-on category %q", category), ErrInvalidCategory)
	}
	if category == b.current {
		return false, nil
	}
	b.current = category
	b.begin()
	return true, nil
}

// Tick advances the transition identified by seq by one step and reports
// whether another tick is needed. Stale or unneeded ticks return false and
// change nothing.
func (b *Browser) Tick(seq uint64) bool {
	if seq != b.seq || b.phase == PhaseSettled {
		return false
	}

	total := len(b.VisibleItems())
	if b.phase == PhaseExiting {
		b.phase = PhaseEntering
		b.revealed = 0
	}
	if b.revealed < total {
		b.revealed++
	}
	if b.revealed >= total {
		b.phase = PhaseSettled
		return false
	}
	return true
}

// Settle finishes the current transition immediately.
func (b *Browser) Settle() {
	b.phase = PhaseSettled
	b.revealed = len(b.VisibleItems())
}

func (b *Browser) begin() {
	b.seq++
	b.phase = PhaseExiting
	b.revealed = 0
}

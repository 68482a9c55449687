package site

import (
	"strings"

	"github.com/agnivade/levenshtein"

	siteerrors "github.com/build50/build50/pkg/errors"
)

// PageID identifies one of the fixed top-level views.
type PageID string

const (
	PageHome      PageID = "home"
	PageServices  PageID = "services"
	PagePortfolio PageID = "portfolio"
	PageAbout     PageID = "about"
	PageContact   PageID = "contact"
	PageBook      PageID = "book"
	PagePrivacy   PageID = "privacy"
)

// maxSuggestionDistance bounds how far a typo may be from a real page id
// before we stop offering it as a suggestion.
const maxSuggestionDistance = 2

var allPages = []PageID{
	PageHome,
	PageServices,
	PagePortfolio,
	PageAbout,
	PageContact,
	PageBook,
	PagePrivacy,
}

// AllPages returns every page in declaration order.
func AllPages() []PageID {
	out := make([]PageID, len(allPages))
	copy(out, allPages)
	return out
}

// Valid reports whether p is a member of the declared page set.
func (p PageID) Valid() bool {
	for _, candidate := range allPages {
		if candidate == p {
			return true
		}
	}
	return false
}

// String returns the page identifier.
func (p PageID) String() string {
	return string(p)
}

// Title returns the human label used in headings and the nav bar.
func (p PageID) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PageServices:
		return "Services"
	case PagePortfolio:
		return "Portfolio"
	case PageAbout:
		return "About"
	case PageContact:
		return "Contact"
	case PageBook:
		return "Book"
	case PagePrivacy:
		return "Privacy"
	default:
		return string(p)
	}
}

// ParsePage converts raw input into a PageID. Unknown values produce an
// InvalidPageError carrying the closest known page when one is near enough.
func ParsePage(raw string) (PageID, error) {
	normalized := PageID(strings.ToLower(strings.TrimSpace(raw)))
	if normalized.Valid() {
		return normalized, nil
	}
	return "", siteerrors.NewInvalidPageError(raw, suggestPage(string(normalized)))
}

// Validate returns an InvalidPageError when p is outside the page set.
func (p PageID) Validate() error {
	if p.Valid() {
		return nil
	}
	return siteerrors.NewInvalidPageError(string(p), suggestPage(strings.ToLower(string(p))))
}

func suggestPage(raw string) string {
	if raw == "" {
		return ""
	}
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, p := range allPages {
		dist := levenshtein.ComputeDistance(raw, string(p))
		if dist < bestDist {
			best = string(p)
			bestDist = dist
		}
	}
	return best
}

// NavEntry is one link in the persistent navigation bar.
type NavEntry struct {
	Page  PageID
	Label string
}

// NavEntries returns the links shown in the navigation bar. Book and privacy
// are reached through call-to-action buttons and the footer instead.
func NavEntries() []NavEntry {
	return []NavEntry{
		{Page: PageHome, Label: "Home"},
		{Page: PageServices, Label: "Services"},
		{Page: PagePortfolio, Label: "Portfolio"},
		{Page: PageAbout, Label: "About"},
		{Page: PageContact, Label: "Contact"},
	}
}

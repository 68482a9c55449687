package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card is a bordered block with a title, optional badge and body lines.
type Card struct {
	title     string
	subtitle  string
	badge     string
	lines     []string
	highlight bool
	width     int
}

// NewCard creates a card with the given title.
func NewCard(title string) *Card {
	return &Card{title: title}
}

// WithSubtitle sets the line under the title.
func (c *Card) WithSubtitle(subtitle string) *Card {
	c.subtitle = subtitle
	return c
}

// WithBadge adds a badge next to the title, e.g. "Most Popular".
func (c *Card) WithBadge(badge string) *Card {
	c.badge = badge
	return c
}

// WithLines appends body lines.
func (c *Card) WithLines(lines ...string) *Card {
	c.lines = append(c.lines, lines...)
	return c
}

// WithHighlight draws the card with the emphasised border.
func (c *Card) WithHighlight(highlight bool) *Card {
	c.highlight = highlight
	return c
}

// WithWidth fixes the card width; zero sizes it to its content.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// Render draws the card with s.
func (c *Card) Render(s Styles) string {
	var b strings.Builder
	header := s.Strong.Render(c.title)
	if c.badge != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, " ", s.Badge.Render(c.badge))
	}
	b.WriteString(header)
	if c.subtitle != "" {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(c.subtitle))
	}
	if len(c.lines) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(c.lines, "\n"))
	}

	style := s.Card
	if c.highlight {
		style = s.CardHighlighted
	}
	if c.width > 0 {
		style = style.Width(c.width)
	}
	return style.Render(b.String())
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects a button's look.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonOutline
)

// Button is a labelled action rendered as a pill.
type Button struct {
	label    string
	key      string
	variant  ButtonVariant
	disabled bool
	focus    bool
}

// NewButton creates a primary button.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// WithKey shows the shortcut that triggers the button, e.g. "b" renders
// "[b] Book Now".
func (b *Button) WithKey(key string) *Button {
	b.key = key
	return b
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(v ButtonVariant) *Button {
	b.variant = v
	return b
}

// WithDisabled greys the button out.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocus marks the button as the focused control.
func (b *Button) WithFocus(focus bool) *Button {
	b.focus = focus
	return b
}

// Text returns the label with its shortcut, without styling.
func (b *Button) Text() string {
	if b.key == "" {
		return b.label
	}
	return "[" + b.key + "] " + b.label
}

// Render draws the button with s.
func (b *Button) Render(s Styles) string {
	return b.style(s).Render(b.Text())
}

func (b *Button) style(s Styles) lipgloss.Style {
	switch {
	case b.disabled:
		return s.ButtonDisabled
	case b.focus:
		return s.ButtonFocus
	}
	switch b.variant {
	case ButtonSecondary:
		return s.ButtonSecondary
	case ButtonOutline:
		return s.ButtonOutline
	default:
		return s.ButtonPrimary
	}
}

// ButtonRow renders buttons side by side separated by gap spaces.
func ButtonRow(s Styles, gap int, buttons ...*Button) string {
	if len(buttons) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(buttons)*2)
	spacer := strings.Repeat(" ", gap)
	for i, b := range buttons {
		if i > 0 {
			rendered = append(rendered, spacer)
		}
		rendered = append(rendered, b.Render(s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

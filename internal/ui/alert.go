package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects an alert's colour and icon.
type AlertVariant int

const (
	AlertInfo AlertVariant = iota
	AlertSuccess
	AlertError
)

// Alert is a bordered notice with an icon, an optional title and an optional
// dismiss hint.
type Alert struct {
	message string
	title   string
	variant AlertVariant
	dismiss string
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{message: message}
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(v AlertVariant) *Alert {
	a.variant = v
	return a
}

// WithTitle sets a bold first line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithDismissKey shows the key that dismisses the alert.
func (a *Alert) WithDismissKey(key string) *Alert {
	a.dismiss = key
	return a
}

// Render draws the alert with s.
func (a *Alert) Render(s Styles) string {
	color := a.color(s.Palette)
	text := lipgloss.NewStyle().Foreground(color)

	var lines []string
	if a.title != "" {
		lines = append(lines, text.Bold(true).Render(a.icon()+" "+a.title))
		lines = append(lines, s.Body.Render(a.message))
	} else {
		lines = append(lines, text.Render(a.icon()+" "+a.message))
	}
	if a.dismiss != "" {
		lines = append(lines, s.Muted.Render("["+a.dismiss+"] dismiss"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(color).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (a *Alert) icon() string {
	switch a.variant {
	case AlertSuccess:
		return "✓"
	case AlertError:
		return "✗"
	default:
		return "ℹ"
	}
}

func (a *Alert) color(p Palette) lipgloss.Color {
	switch a.variant {
	case AlertSuccess:
		return p.Success
	case AlertError:
		return p.Danger
	default:
		return p.Primary
	}
}

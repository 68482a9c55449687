// Package ui holds the light and dark palettes and the component styles the
// terminal client renders with.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/build50/build50/internal/domain/site"
)

const shadeCount = 11

// Shade indexes a Tailwind-style colour scale.
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
	Shade950
)

// Scale is one colour family from lightest to darkest.
type Scale [shadeCount]lipgloss.Color

// At returns the colour for s, or "" when s is out of range.
func (sc Scale) At(s Shade) lipgloss.Color {
	if s < 0 || int(s) >= shadeCount {
		return ""
	}
	return sc[s]
}

var (
	Slate = Scale{
		"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b",
		"#475569", "#334155", "#1e293b", "#0f172a", "#020617",
	}
	Purple = Scale{
		"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7",
		"#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764",
	}
	Green = Scale{
		"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e",
		"#16a34a", "#15803d", "#166534", "#14532d", "#052e16",
	}
	Red = Scale{
		"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444",
		"#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a",
	}
)

// Palette maps semantic slots to concrete colours for one theme.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Primary    lipgloss.Color
	OnPrimary  lipgloss.Color
	Accent     lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
}

// LightPalette mirrors the site's light mode: white page, slate text and
// purple accents.
func LightPalette() Palette {
	return Palette{
		Background: "#ffffff",
		Surface:    Slate.At(Shade50),
		Border:     Slate.At(Shade200),
		Text:       Slate.At(Shade900),
		Muted:      Slate.At(Shade600),
		Primary:    Purple.At(Shade600),
		OnPrimary:  "#ffffff",
		Accent:     Purple.At(Shade700),
		Success:    Green.At(Shade600),
		Danger:     Red.At(Shade600),
	}
}

// DarkPalette mirrors the site's dark mode on slate-950.
func DarkPalette() Palette {
	return Palette{
		Background: Slate.At(Shade950),
		Surface:    Slate.At(Shade900),
		Border:     Slate.At(Shade800),
		Text:       Slate.At(Shade100),
		Muted:      Slate.At(Shade400),
		Primary:    Purple.At(Shade500),
		OnPrimary:  "#ffffff",
		Accent:     Purple.At(Shade400),
		Success:    Green.At(Shade400),
		Danger:     Red.At(Shade400),
	}
}

// PaletteFor returns the palette for pref; unknown values get the dark one.
func PaletteFor(pref site.ThemePreference) Palette {
	if pref == site.ThemeLight {
		return LightPalette()
	}
	return DarkPalette()
}

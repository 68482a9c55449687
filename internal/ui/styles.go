package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/build50/build50/internal/domain/site"
)

// Styles is the full set of lipgloss styles for one theme. It is rebuilt
// whenever the theme flips.
type Styles struct {
	Theme   site.ThemePreference
	Palette Palette

	App       lipgloss.Style
	Brand     lipgloss.Style
	NavLink   lipgloss.Style
	NavActive lipgloss.Style
	Toggle    lipgloss.Style

	Title    lipgloss.Style
	Heading  lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Strong   lipgloss.Style
	Price    lipgloss.Style
	Check    lipgloss.Style
	Cross    lipgloss.Style

	Card            lipgloss.Style
	CardHighlighted lipgloss.Style
	Badge           lipgloss.Style
	Tab             lipgloss.Style
	TabActive       lipgloss.Style

	ButtonPrimary   lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonOutline   lipgloss.Style
	ButtonDisabled  lipgloss.Style
	ButtonFocus     lipgloss.Style

	Label      lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	FieldError lipgloss.Style
	Success    lipgloss.Style
	Failure    lipgloss.Style

	Banner   lipgloss.Style
	Footer   lipgloss.Style
	Floating lipgloss.Style
	Help     lipgloss.Style
}

// ForTheme builds Styles for pref.
func ForTheme(pref site.ThemePreference) Styles {
	p := PaletteFor(pref)
	base := lipgloss.NewStyle().Foreground(p.Text)

	button := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	return Styles{
		Theme:   pref,
		Palette: p,

		App:       base,
		Brand:     base.Bold(true).Foreground(p.Primary),
		NavLink:   lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Underline(true).Padding(0, 1),
		Toggle:    lipgloss.NewStyle().Foreground(p.Accent).Padding(0, 1),

		Title:    base.Bold(true).MarginBottom(1),
		Heading:  base.Bold(true).Foreground(p.Primary),
		Subtitle: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		Body:     base,
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Strong:   base.Bold(true),
		Price:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Check:    lipgloss.NewStyle().Foreground(p.Success),
		Cross:    lipgloss.NewStyle().Foreground(p.Danger),

		Card:            card,
		CardHighlighted: card.Border(lipgloss.ThickBorder()).BorderForeground(p.Primary),
		Badge:           lipgloss.NewStyle().Foreground(p.OnPrimary).Background(p.Primary).Padding(0, 1).Bold(true),
		Tab:             lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		TabActive:       lipgloss.NewStyle().Foreground(p.OnPrimary).Background(p.Primary).Padding(0, 1),

		ButtonPrimary:   button.Foreground(p.OnPrimary).Background(p.Primary),
		ButtonSecondary: button.Foreground(p.Text).Background(p.Surface),
		ButtonOutline:   button.Foreground(p.Primary).Border(lipgloss.NormalBorder()).BorderForeground(p.Primary).Padding(0, 1),
		ButtonDisabled:  button.Foreground(p.Muted).Background(p.Surface).Faint(true),
		ButtonFocus:     button.Foreground(p.OnPrimary).Background(p.Accent).Underline(true),

		Label:      base.Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.Border).Padding(0, 1),
		InputFocus: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.Primary).Padding(0, 1),
		FieldError: lipgloss.NewStyle().Foreground(p.Danger),
		Success:    lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Failure:    lipgloss.NewStyle().Foreground(p.Danger).Bold(true),

		Banner:   lipgloss.NewStyle().Foreground(p.Text).Background(p.Surface).Padding(0, 1),
		Footer:   lipgloss.NewStyle().Foreground(p.Muted).BorderStyle(lipgloss.NormalBorder()).BorderTop(true).BorderForeground(p.Border),
		Floating: lipgloss.NewStyle().Foreground(p.OnPrimary).Background(p.Success).Padding(0, 1).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(p.Muted),
	}
}

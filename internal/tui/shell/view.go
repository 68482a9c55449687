package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/build50/build50/internal/domain/site"
	"github.com/build50/build50/internal/ui"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

// renderHeader renders the nav bar, the mobile menu and the status line
func (m Model) renderHeader() string {
	s := m.styles
	var b strings.Builder

	brand := s.Brand.Render("◆ " + site.BrandName)
	toggle := s.Toggle.Render(themeGlyph(m.theme.Current()))

	var nav string
	if m.narrow() {
		menu := "☰ Menu"
		if m.menuOpen {
			menu = "✕ Close"
		}
		nav = lipgloss.JoinHorizontal(lipgloss.Center,
			brand, "  ", toggle, s.NavLink.Render("[m] "+menu))
	} else {
		parts := []string{brand, "  "}
		for i, entry := range site.NavEntries() {
			parts = append(parts, m.navLink(i+1, entry))
		}
		parts = append(parts, "  ",
			ui.NewButton("Book Now").WithKey("b").Render(s),
			" ", toggle)
		nav = lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}
	b.WriteString(nav)

	if m.narrow() && m.menuOpen {
		b.WriteString("\n")
		for i, entry := range site.NavEntries() {
			b.WriteString(m.navLink(i+1, entry))
			b.WriteString("\n")
		}
		b.WriteString(ui.NewButton("Book Consult").WithKey("b").Render(s))
	}

	if m.showError && m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(ui.NewAlert(m.errorMsg).
			WithVariant(ui.AlertError).
			WithDismissKey("esc").
			Render(s))
	}
	return b.String()
}

func (m Model) navLink(index int, entry site.NavEntry) string {
	label := string(rune('0'+index)) + " " + entry.Label
	if entry.Page == m.router.Current() {
		return m.styles.NavActive.Render(label)
	}
	return m.styles.NavLink.Render(label)
}

func themeGlyph(pref site.ThemePreference) string {
	if pref == site.ThemeDark {
		return "☾ dark"
	}
	return "☀ light"
}

// renderFooter renders the floating WhatsApp line, the cookie banner and help
func (m Model) renderFooter() string {
	s := m.styles
	lines := []string{
		lipgloss.PlaceHorizontal(m.width, lipgloss.Right,
			s.Floating.Render("💬 WhatsApp "+site.WhatsAppPrefill)),
	}

	if !m.cookiesAccepted {
		banner := lipgloss.JoinHorizontal(lipgloss.Center,
			s.Banner.Render("We use cookies to improve your experience and analyze traffic."),
			" ",
			ui.NewButton("Manage").WithKey("x").WithVariant(ui.ButtonOutline).Render(s),
			" ",
			ui.NewButton("Accept").WithKey("a").Render(s),
		)
		lines = append(lines, banner)
	}

	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

// renderPage renders the mounted page followed by the site footer
func (m Model) renderPage() string {
	var body string
	switch m.router.Current() {
	case site.PageHome:
		body = m.renderHome()
	case site.PageServices:
		body = m.renderServices()
	case site.PagePortfolio:
		body = m.renderPortfolio()
	case site.PageAbout:
		body = m.renderAbout()
	case site.PageContact:
		body = m.renderContact()
	case site.PageBook:
		body = m.renderBook()
	case site.PagePrivacy:
		body = m.renderPrivacy()
	}

	page := lipgloss.JoinVertical(lipgloss.Left, body, "", m.renderSiteFooter())
	if m.fade > 0 {
		return lipgloss.NewStyle().Faint(true).Render(page)
	}
	return page
}

// renderSiteFooter renders the company footer shown under every page
func (m Model) renderSiteFooter() string {
	s := m.styles

	about := lipgloss.JoinVertical(lipgloss.Left,
		s.Brand.Render("◆ "+site.BrandName),
		s.Muted.Render("Modern websites & branding that convert."),
		s.Muted.Render("Built for small businesses."),
	)
	services := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Strong.Render("Services")}, mutedAll(s, footerServices)...)...,
	)
	company := lipgloss.JoinVertical(lipgloss.Left,
		s.Strong.Render("Company"),
		s.Muted.Render("[4] About Us"),
		s.Muted.Render("[3] Portfolio"),
		s.Muted.Render("[5] Contact"),
		s.Muted.Render("[p] Privacy Policy"),
	)
	start := lipgloss.JoinVertical(lipgloss.Left,
		s.Strong.Render("Get Started"),
		ui.NewButton("Book Free Consult").WithKey("b").Render(s),
		s.Muted.Render("No credit card required."),
	)

	var columns string
	if m.narrow() {
		columns = lipgloss.JoinVertical(lipgloss.Left, about, "", services, "", company, "", start)
	} else {
		gap := "    "
		columns = lipgloss.JoinHorizontal(lipgloss.Top, about, gap, services, gap, company, gap, start)
	}

	return s.Footer.Width(max(0, m.width-1)).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			columns,
			"",
			s.Muted.Render("© 2025 "+site.BrandName+". All rights reserved."),
		),
	)
}

func mutedAll(s ui.Styles, items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = s.Muted.Render(item)
	}
	return out
}

// Snapshot renders the mounted page without the chrome around it. The CLI
// prints this when stdout is not a terminal.
func (m Model) Snapshot() string {
	return m.renderPage()
}

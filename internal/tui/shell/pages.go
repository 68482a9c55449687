package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/build50/build50/internal/app/contact"
	"github.com/build50/build50/internal/domain/catalog"
	"github.com/build50/build50/internal/domain/site"
	"github.com/build50/build50/internal/ui"
)

// Page renderers. Each returns the body placed inside the viewport.

func (m Model) renderHome() string {
	s := m.styles
	sections := []string{
		s.Badge.Render(heroBadge),
		s.Title.Render(heroTitle),
		s.Body.Width(m.textWidth()).Render(heroSubtitle),
		"",
		ui.ButtonRow(s, 2,
			ui.NewButton("Book Free Consult").WithKey("b"),
			ui.NewButton("WhatsApp Us").WithVariant(ui.ButtonSecondary),
		),
		s.Muted.Render(site.WhatsAppLink),
		"",
		m.grid(mapStrings(homeHighlights, func(h string) string { return s.Check.Render("⚡ ") + s.Body.Render(h) }), 2),
		"",
		lipgloss.JoinVertical(lipgloss.Left,
			s.Heading.Render("Struggling to grow online?"),
			m.bullets(homeProblems, s.Cross.Render("✗")),
			"",
			s.Heading.Render("The Build50 Solution"),
			m.bullets(homeSolutions, s.Check.Render("✓")),
			ui.NewButton("See How We Can Help").WithKey("2").Render(s),
		),
		"",
		s.Heading.Render("Everything You Need") + "  " + s.Muted.Render("[2] View all services →"),
		m.grid(m.titledCards(homeServices, 4), 4),
		"",
		s.Heading.Render("Before & After Using Build50"),
		s.Subtitle.Render("See the difference a professional digital system makes."),
		m.grid([]string{
			ui.NewCard("✗ Before Build50").WithLines(m.bulletLines(homeBefore, s.Cross.Render("✗"))...).Render(s),
			ui.NewCard("✓ After Build50").WithBadge("RESULTS").WithHighlight(true).
				WithLines(m.bulletLines(homeAfter, s.Check.Render("✓"))...).Render(s),
		}, 2),
		"",
		s.Heading.Render("What Most Agencies Won’t Tell You"),
		m.bullets(homeTruths, s.Price.Render("!")),
		s.Subtitle.Render("We build only what actually grows your business."),
		ui.NewButton("Get a Strategy Call").WithKey("b").Render(s),
		"",
		s.Heading.Render("Want to Grow Your Business Online?"),
		s.Body.Width(m.textWidth()).Render("Slots for next month are filling up fast. Join our list or book a free consultation today!"),
		ui.ButtonRow(s, 2, ui.NewButton("Get Started").WithKey("5")),
		s.Muted.Render("Or WhatsApp us directly: " + site.WhatsAppNumber),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderServices() string {
	s := m.styles

	packages := make([]string, 0, len(m.catalog.Packages()))
	for _, p := range m.catalog.Packages() {
		card := ui.NewCard(p.Name).
			WithSubtitle(p.Description).
			WithHighlight(p.Highlight).
			WithWidth(m.cardWidth(4)).
			WithLines(s.Price.Render(p.Price) + s.Muted.Render(p.Period))
		if p.Highlight {
			card.WithBadge("POPULAR")
		}
		card.WithLines(m.bulletLines(p.Features, s.Check.Render("✓"))...)
		variant := ui.ButtonOutline
		if p.Highlight {
			variant = ui.ButtonPrimary
		}
		card.WithLines("", ui.NewButton("Choose "+p.Name).WithKey("5").WithVariant(variant).Render(s))
		packages = append(packages, card.Render(s))
	}

	sections := []string{
		s.Title.Render("Our Services"),
		s.Subtitle.Render("Digital solutions designed to help your business grow."),
		s.Body.Width(m.textWidth()).Render(servicesIntro),
		"",
		s.Heading.Render("Service Packages"),
		m.grid(packages, 4),
		"",
		s.Heading.Render("One-Off Add-Ons"),
		s.Subtitle.Render("Need something extra? Choose from our tailored one-time services."),
		m.renderAddOns(),
		"",
		s.Heading.Render("What We Do"),
		m.grid(m.titledCards(servicesWhatWeDo, 3), 3),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderAddOns renders the category tabs and the revealed records.
func (m Model) renderAddOns() string {
	s := m.styles
	if m.browser == nil {
		return ""
	}

	tabs := make([]string, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		if c == m.browser.Current() {
			tabs = append(tabs, s.TabActive.Render(c.Label()+" ›"))
		} else {
			tabs = append(tabs, s.Tab.Render(c.Label()))
		}
	}
	var tabRow string
	if m.narrow() {
		tabRow = lipgloss.JoinVertical(lipgloss.Left, tabs...)
	} else {
		tabRow = lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	}

	shown := m.browser.Shown()
	cards := make([]string, 0, len(shown))
	for _, a := range shown {
		cards = append(cards, ui.NewCard(a.Name).
			WithWidth(m.cardWidth(2)).
			WithLines(
				s.Price.Render(a.Price),
				s.Muted.Render(a.Description),
				s.Muted.Render("[5] Inquire →"),
			).Render(s))
	}

	body := m.grid(cards, 2)
	if len(cards) == 0 && m.revealing() {
		body = s.Muted.Render(m.spinner.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		tabRow,
		s.Help.Render("←/→ switch category"),
		"",
		body,
	)
}

func (m Model) renderPortfolio() string {
	s := m.styles

	quotes := make([]string, 0, len(m.catalog.Testimonials()))
	for _, t := range m.catalog.Testimonials() {
		quotes = append(quotes, ui.NewCard(t.Name).
			WithSubtitle(t.Role).
			WithWidth(m.cardWidth(2)).
			WithLines("", s.Body.Render("“"+t.Text+"”"), s.Price.Render("★★★★★")).
			Render(s))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Our Work"),
		s.Subtitle.Render("Real results for Australian small businesses."),
		"",
		s.Heading.Render("What Our Clients Say"),
		m.grid(quotes, 2),
		"",
		ui.NewCard("Case Studies").
			WithLines(s.Muted.Render("Detailed case studies are coming soon."),
				"", ui.NewButton("Start Your Project").WithKey("5").Render(s)).
			Render(s),
	)
}

func (m Model) renderAbout() string {
	s := m.styles

	process := make([]string, 0, len(m.catalog.Process()))
	for _, p := range m.catalog.Process() {
		process = append(process, lipgloss.JoinHorizontal(lipgloss.Top,
			s.Badge.Render(p.Step), " ",
			lipgloss.JoinVertical(lipgloss.Left,
				s.Strong.Render(p.Title),
				s.Muted.Width(max(20, m.textWidth()-6)).Render(p.Description),
			),
		))
	}

	stats := make([]string, 0, len(aboutStats))
	for _, st := range aboutStats {
		stats = append(stats, ui.NewCard(st.title).WithLines(s.Muted.Render(st.text)).Render(s))
	}

	tech := make([]string, 0, len(aboutTech))
	for _, t := range aboutTech {
		tech = append(tech, s.Tab.Render(t))
	}

	sections := []string{
		s.Title.Render("About Build50"),
		s.Body.Width(m.textWidth()).Render(aboutIntro),
		"",
		s.Heading.Render("The Origin"),
		s.Body.Width(m.textWidth()).Render(aboutOrigin),
		s.Subtitle.Width(m.textWidth()).Render(aboutQuote),
		"",
		s.Heading.Render("Our Mission"),
		s.Body.Width(m.textWidth()).Render(strings.Join(aboutMission, "\n\n")),
		"",
		s.Heading.Render("♥ How We Help"),
		m.bullets(aboutHowWeHelp, s.Check.Render("✓")),
		"",
		s.Heading.Render("What We Do"),
		m.grid(m.titledCards(aboutWhatWeDo, 3), 3),
		"",
		s.Heading.Render("Why Australians Choose Us"),
		s.Subtitle.Render("Built for the local market, with local values."),
		m.grid(m.titledCards(aboutWhyUs, 3), 3),
		"",
		s.Heading.Render("Industries We Support"),
		s.Body.Render(strings.Join(aboutIndustries, " · ")),
		"",
		s.Heading.Render("Our Simple Process"),
		lipgloss.JoinVertical(lipgloss.Left, process...),
		"",
		s.Heading.Render("Build50 by the Numbers"),
		m.grid(stats, 4),
		"",
		s.Heading.Render("Built on Modern Tech"),
		s.Muted.Width(m.textWidth()).Render("We don't use slow, insecure builders. We use the same stack as major tech companies for speed and reliability."),
		m.wrapRow(tech),
		"",
		s.Heading.Render("Ready to grow your business?"),
		s.Body.Width(m.textWidth()).Render("Let’s build your website in the next 7 days. Book your free 20-minute strategy session."),
		ui.ButtonRow(s, 2,
			ui.NewButton("Book a Call").WithKey("b"),
			ui.NewButton("Message on WhatsApp").WithVariant(ui.ButtonOutline),
		),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderContact() string {
	s := m.styles

	quick := lipgloss.JoinVertical(lipgloss.Left,
		ui.NewCard("WhatsApp Us").WithLines(s.Body.Render(site.WhatsAppNumber), s.Muted.Render(site.WhatsAppLink)).Render(s),
		ui.NewCard("Email Us").WithLines(s.Body.Render(site.EmailAddress)).Render(s),
		ui.NewCard("Office Hours").WithLines(s.Body.Render(site.OfficeHours), s.Muted.Render(site.OfficeLocation)).Render(s),
	)

	panel := m.renderContactForm()
	var body string
	if m.narrow() {
		body = lipgloss.JoinVertical(lipgloss.Left, quick, "", panel)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, quick, "   ", panel)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Let's Talk"),
		s.Body.Width(m.textWidth()).Render("Ready to grow your business? Fill out the form or use the quick links below."),
		"",
		body,
	)
}

// renderContactForm renders the form for the controller's status.
func (m Model) renderContactForm() string {
	s := m.styles
	if m.contact == nil {
		return ""
	}

	switch m.contact.Status() {
	case contact.StatusSuccess:
		return ui.NewCard("✓ Message Sent!").
			WithLines(
				s.Success.Render("We'll get back to you within 24 hours."),
				"",
				ui.NewButton("Send Another").WithKey("n").WithVariant(ui.ButtonOutline).Render(s),
			).Render(s)
	case contact.StatusFailed:
		reason := "Something went wrong."
		if err := m.contact.Failure(); err != nil {
			reason = err.Error()
		}
		return ui.NewCard("✗ Message Not Sent").
			WithLines(
				ui.NewAlert(reason).WithVariant(ui.AlertError).Render(s),
				s.Muted.Render("Your details are still here, so you can send them again."),
				"",
				ui.NewButton("Try Again").WithKey("r").Render(s),
			).Render(s)
	}

	fields := m.contact.Fields()
	errs := m.contact.Errors()
	sending := m.contact.Status() == contact.StatusSending

	var b strings.Builder
	for f := fieldName; f < fieldCount; f++ {
		focused := m.form.editing && m.form.focus == f
		b.WriteString(s.Label.Render(f.label()))
		b.WriteString("\n")

		var input string
		switch f {
		case fieldName:
			input = m.form.name.View()
		case fieldEmail:
			input = m.form.email.View()
		case fieldPackage:
			input = m.renderPackageSelect(fields.Package, focused)
		case fieldMessage:
			input = m.form.message.View()
		}
		style := s.Input
		if focused {
			style = s.InputFocus
		}
		b.WriteString(style.Render(input))
		b.WriteString("\n")

		if msg := errs.For(string(f.contactField())); msg != "" {
			b.WriteString(s.FieldError.Render(f.label() + " " + msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if sending {
		b.WriteString(ui.NewButton(m.spinner.View() + " Sending...").WithDisabled(true).Render(s))
	} else {
		b.WriteString(ui.NewButton("Send Message").WithKey("ctrl+s").Render(s))
		if !m.form.editing {
			b.WriteString("  ")
			b.WriteString(s.Help.Render("[e] edit"))
		}
	}
	return b.String()
}

func (m Model) renderPackageSelect(selected string, focused bool) string {
	s := m.styles
	label := selected
	if p, ok := m.catalog.Package(selected); ok {
		label = fmt.Sprintf("%s (%s)", p.Name, p.Price)
	}
	if focused {
		return s.Strong.Render("‹ " + label + " ›")
	}
	return s.Body.Render(label)
}

func (m Model) renderBook() string {
	s := m.styles
	widget := ui.NewCard("📅 Scheduling").
		WithWidth(min(60, m.textWidth())).
		WithLines(
			s.Muted.Render("[Calendly Embed Widget Placeholder]"),
			"",
			ui.NewButton("Open Calendly Popup").WithDisabled(true).Render(s),
			"",
			s.Help.Render("Simulating 3rd party iframe load... "+m.spinner.View()),
		).Render(s)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Book a Free Consult"),
		widget,
	)
}

func (m Model) renderPrivacy() string {
	s := m.styles
	sections := []string{
		s.Title.Render("Privacy Policy"),
		s.Strong.Render("Last updated: ") + s.Body.Render(privacyUpdated),
		"",
	}
	for _, sec := range privacySections {
		sections = append(sections,
			s.Heading.Render(sec.title),
			s.Body.Width(m.textWidth()).Render(sec.text),
			"",
		)
	}
	sections = append(sections,
		s.Heading.Render("3. How we use your data"),
		m.bullets(privacyUses, "•"),
		"",
		s.Heading.Render("Contact"),
		s.Body.Render(site.EmailAddress),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Layout helpers

// textWidth is the wrap width for prose.
func (m Model) textWidth() int {
	return max(20, min(m.width-4, 96))
}

// cardWidth sizes a card so perRow of them fit side by side.
func (m Model) cardWidth(perRow int) int {
	if m.narrow() || perRow <= 1 {
		return max(20, m.width-4)
	}
	return max(20, (m.width-4)/perRow-2)
}

// grid lays blocks out perRow to a line, collapsing to one column when narrow.
func (m Model) grid(blocks []string, perRow int) string {
	if len(blocks) == 0 {
		return ""
	}
	if m.narrow() || perRow <= 1 {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	rows := make([]string, 0, (len(blocks)+perRow-1)/perRow)
	for i := 0; i < len(blocks); i += perRow {
		end := min(i+perRow, len(blocks))
		cells := make([]string, 0, (end-i)*2)
		for j := i; j < end; j++ {
			if j > i {
				cells = append(cells, " ")
			}
			cells = append(cells, blocks[j])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// wrapRow joins short chips left to right, wrapping at the text width.
func (m Model) wrapRow(chips []string) string {
	var (
		lines []string
		line  []string
		width int
	)
	for _, c := range chips {
		w := lipgloss.Width(c)
		if width > 0 && width+w > m.textWidth() {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, width = nil, 0
		}
		line = append(line, c)
		width += w
	}
	if len(line) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) titledCards(items []titledText, perRow int) []string {
	cards := make([]string, 0, len(items))
	for _, it := range items {
		cards = append(cards, ui.NewCard(it.title).
			WithWidth(m.cardWidth(perRow)).
			WithLines(m.styles.Muted.Render(it.text)).
			Render(m.styles))
	}
	return cards
}

func (m Model) bullets(items []string, marker string) string {
	return strings.Join(m.bulletLines(items, marker), "\n")
}

func (m Model) bulletLines(items []string, marker string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = marker + " " + m.styles.Body.Render(item)
	}
	return out
}

func mapStrings(in []string, fn func(string) string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

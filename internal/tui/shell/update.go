package shell

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/build50/build50/internal/app/addons"
	"github.com/build50/build50/internal/app/contact"
	"github.com/build50/build50/internal/domain/catalog"
	"github.com/build50/build50/internal/domain/site"
	"github.com/build50/build50/internal/ports"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.layout()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	// Window resize
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.narrow() {
			m.menuOpen = false
		}

		if msg.Width < minWidth || msg.Height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (minimum %dx%d)", minWidth, minHeight)
		} else if m.showError && m.errorMsg != "" {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	// Keyboard input
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Mouse wheel scrolls the page
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	// Spinner animation
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Page fade-in
	case fadeTickMsg:
		if msg.mount != m.mount || m.fade <= 0 {
			return m, nil
		}
		m.fade--
		if m.fade > 0 {
			return m, fadeTickCmd(m.mount, fadeInterval)
		}
		return m, nil

	// Add-on reveal
	case addonTickMsg:
		if msg.mount != m.mount || m.browser == nil {
			return m, nil
		}
		if m.browser.Tick(msg.seq) {
			return m, addonTickCmd(m.mount, msg.seq, m.stagger)
		}
		return m, nil

	// Enquiry delivery
	case SubmissionResultMsg:
		return m.handleSubmissionResult(msg)

	case SubmissionCancelledMsg:
		m.logger.Debug(m.ctx, "enquiry delivery abandoned", "enquiry_id", msg.ID, "mount", msg.Mount)
		return m, nil

	case ErrorMsg:
		m.showError = true
		m.errorMsg = msg.Message
		return m, nil
	}

	// Forward anything else to the focused form widget (cursor blink)
	if m.form.editing {
		return m, m.form.update(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.form.editing && m.contact != nil {
		return m.handleFormKeys(msg)
	}

	switch {
	// Quit application
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// Help
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	// Clear error
	case msg.String() == "esc" && m.showError:
		m.showError = false
		m.errorMsg = ""
		return m, nil

	// Theme
	case key.Matches(msg, m.keys.Theme):
		m.theme.Toggle(m.ctx)
		m.applyTheme()
		return m, nil

	// Navigation
	case key.Matches(msg, m.keys.Home):
		return m.navigate(site.PageHome)
	case key.Matches(msg, m.keys.Services):
		return m.navigate(site.PageServices)
	case key.Matches(msg, m.keys.Portfolio):
		return m.navigate(site.PagePortfolio)
	case key.Matches(msg, m.keys.About):
		return m.navigate(site.PageAbout)
	case key.Matches(msg, m.keys.Contact):
		return m.navigate(site.PageContact)
	case key.Matches(msg, m.keys.Book):
		return m.navigate(site.PageBook)
	case key.Matches(msg, m.keys.Privacy):
		return m.navigate(site.PagePrivacy)
	case key.Matches(msg, m.keys.Menu):
		m.menuOpen = !m.menuOpen
		return m, nil

	// Cookie banner
	case key.Matches(msg, m.keys.Accept):
		return m.dismissCookies("accept"), nil
	case key.Matches(msg, m.keys.Manage):
		return m.dismissCookies("manage"), nil

	// Services page
	case key.Matches(msg, m.keys.PrevCategory):
		return m.stepCategory(-1)
	case key.Matches(msg, m.keys.NextCategory):
		return m.stepCategory(1)

	// Contact page
	case key.Matches(msg, m.keys.Edit):
		return m, m.form.start()
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Reset):
		if m.contact.Reset() {
			m.form.load(m.contact.Fields())
		}
		return m, nil
	case key.Matches(msg, m.keys.Retry):
		if m.contact.Retry() {
			m.form.load(m.contact.Fields())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleFormKeys processes keys while a contact field is being edited
func (m Model) handleFormKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Leave):
		m.form.stop()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.move(1)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.move(-1)
	}

	if m.contact.Status() != contact.StatusIdle {
		return m, nil
	}

	if m.form.focus == fieldPackage {
		switch msg.String() {
		case "left", "h", "up", "k":
			m.cyclePackage(-1)
		case "right", "l", "down", "j", " ":
			m.cyclePackage(1)
		case "enter":
			return m, m.form.move(1)
		}
		return m, nil
	}

	// Enter moves between single-line fields; the message keeps newlines
	if msg.String() == "enter" && m.form.focus != fieldMessage {
		return m, m.form.move(1)
	}

	cmd := m.form.update(msg)
	field := m.form.focus
	m.contact.SetField(field.contactField(), m.form.value(field))
	return m, cmd
}

// navigate mounts target and rebuilds the page state.
func (m Model) navigate(target site.PageID) (Model, tea.Cmd) {
	if err := m.router.Navigate(target); err != nil {
		m.showError = true
		m.errorMsg = err.Error()
		return m, nil
	}
	m.remount()
	return m, m.mountCmd()
}

func (m Model) dismissCookies(choice string) Model {
	if m.cookiesAccepted {
		return m
	}
	m.cookiesAccepted = true
	m.publish(ports.EventCookiesAccepted, "choice", choice)
	return m
}

// stepCategory moves the add-on browser delta categories along the tab row.
func (m Model) stepCategory(delta int) (Model, tea.Cmd) {
	if m.browser == nil {
		return m, nil
	}
	categories := catalog.Categories()
	idx := 0
	for i, c := range categories {
		if c == m.browser.Current() {
			idx = i
			break
		}
	}
	next := categories[(idx+delta+len(categories))%len(categories)]
	return m.selectCategory(next)
}

func (m Model) selectCategory(category catalog.AddOnCategory) (Model, tea.Cmd) {
	started, err := m.browser.Select(category)
	if err != nil {
		m.showError = true
		m.errorMsg = err.Error()
		return m, nil
	}
	if !started {
		return m, nil
	}
	m.publish(ports.EventAddOnCategorySelected, "category", string(category), "seq", m.browser.Seq())

	if m.stagger == 0 {
		m.browser.Settle()
		return m, nil
	}
	return m, addonTickCmd(m.mount, m.browser.Seq(), m.stagger)
}

func (m *Model) cyclePackage(delta int) {
	names := m.catalog.PackageNames()
	if len(names) == 0 {
		return
	}
	idx := 0
	current := m.contact.Fields().Package
	for i, n := range names {
		if n == current {
			idx = i
			break
		}
	}
	next := names[(idx+delta+len(names))%len(names)]
	m.contact.SetField(contact.FieldPackage, next)
}

// submit validates the form and starts delivery when it passes.
func (m Model) submit() (Model, tea.Cmd) {
	if m.contact == nil {
		return m, nil
	}

	pending, err := m.contact.Submit(m.ctx)
	if err != nil {
		if !errors.Is(err, contact.ErrSubmitInFlight) && !errors.Is(err, contact.ErrNotIdle) {
			m.logger.Debug(m.ctx, "enquiry rejected", "error", err)
		}
		return m, nil
	}

	m.form.stop()
	m.publish(ports.EventEnquirySubmitted,
		"enquiry_id", pending.ID,
		"package", pending.Enquiry.Package)
	return m, submitCmd(m.mount, pending, m.submitter)
}

func (m Model) handleSubmissionResult(msg SubmissionResultMsg) (Model, tea.Cmd) {
	if msg.Mount != m.mount || m.contact == nil || !m.contact.Resolve(msg.ID, msg.Err) {
		m.logger.Debug(m.ctx, "dropped stale submission result", "enquiry_id", msg.ID, "mount", msg.Mount)
		return m, nil
	}

	if msg.Err != nil {
		m.publish(ports.EventEnquiryFailed, "enquiry_id", msg.ID, "error", msg.Err)
		return m, nil
	}

	m.form.load(m.contact.Fields())
	m.publish(ports.EventEnquiryDelivered,
		"enquiry_id", msg.ID,
		"latency_ms", msg.Receipt.Latency.Milliseconds())
	return m, nil
}

// layout sizes the viewport around the chrome and refreshes its content.
func (m *Model) layout() {
	m.refreshKeys()

	header := m.renderHeader()
	footer := m.renderFooter()
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	m.viewport.SetContent(m.renderPage())
}

// refreshKeys enables only the bindings that apply to the current state.
func (m *Model) refreshKeys() {
	page := m.router.Current()
	editing := m.form.editing
	status := contact.StatusIdle
	if m.contact != nil {
		status = m.contact.Status()
	}

	m.keys.Menu.SetEnabled(m.narrow())
	m.keys.Accept.SetEnabled(!m.cookiesAccepted)
	m.keys.Manage.SetEnabled(!m.cookiesAccepted)

	m.keys.PrevCategory.SetEnabled(page == site.PageServices && m.browser != nil)
	m.keys.NextCategory.SetEnabled(page == site.PageServices && m.browser != nil)

	onForm := page == site.PageContact && m.contact != nil
	m.keys.Edit.SetEnabled(onForm && !editing && status == contact.StatusIdle)
	m.keys.Submit.SetEnabled(onForm && status == contact.StatusIdle)
	m.keys.NextField.SetEnabled(onForm && editing)
	m.keys.PrevField.SetEnabled(onForm && editing)
	m.keys.Leave.SetEnabled(onForm && editing)
	m.keys.Reset.SetEnabled(onForm && status == contact.StatusSuccess)
	m.keys.Retry.SetEnabled(onForm && status == contact.StatusFailed)
}

// revealing reports whether the add-on list is still animating.
func (m Model) revealing() bool {
	return m.browser != nil && m.browser.Phase() != addons.PhaseSettled
}

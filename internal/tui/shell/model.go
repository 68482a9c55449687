package shell

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/build50/build50/internal/app/addons"
	"github.com/build50/build50/internal/app/contact"
	"github.com/build50/build50/internal/app/router"
	"github.com/build50/build50/internal/app/theme"
	"github.com/build50/build50/internal/domain/catalog"
	"github.com/build50/build50/internal/domain/site"
	"github.com/build50/build50/internal/infrastructure/events"
	"github.com/build50/build50/internal/infrastructure/logging"
	"github.com/build50/build50/internal/infrastructure/submission"
	"github.com/build50/build50/internal/ports"
	"github.com/build50/build50/internal/ui"
)

const (
	fadeInterval = 60 * time.Millisecond

	minWidth  = 60
	minHeight = 20
	// Below this width the nav links collapse behind the menu toggle.
	mobileBreakpoint = 100
)

// Options wires the shell to its collaborators. Router and Theme are
// required; everything else has a working default.
type Options struct {
	Context   context.Context
	Router    *router.Router
	Theme     *theme.Store
	Catalog   *catalog.Catalog
	Submitter ports.Submitter
	Publisher ports.EventPublisher
	Logger    ports.Logger

	// Stagger is the delay between two add-on cards appearing; zero reveals
	// the whole category at once. FadeSteps is the number of frames a freshly
	// mounted page is drawn faint.
	Stagger   time.Duration
	FadeSteps int
}

// Model is the composition root of the terminal client
type Model struct {
	// Collaborators
	ctx         context.Context
	router      *router.Router
	theme       *theme.Store
	catalog     *catalog.Catalog
	submitter   ports.Submitter
	publisher   ports.EventPublisher
	logger      ports.Logger
	unsubscribe []func()

	// Page state, rebuilt on every mount
	mount   uint64
	browser *addons.Browser
	contact *contact.Controller
	form    form
	fade    int

	// Shell state
	menuOpen        bool
	cookiesAccepted bool
	styles          ui.Styles

	// Component state
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	// Status line
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int

	// Configuration
	stagger   time.Duration
	fadeSteps int
}

// NewModel creates the shell mounted on the router's current page. The theme
// store should already be initialised.
func NewModel(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNoOpLogger()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Submitter == nil {
		opts.Submitter = submission.NewSimulated(submission.Options{
			Latency: submission.DefaultLatency,
			Logger:  opts.Logger,
		})
	}
	if opts.Publisher == nil {
		opts.Publisher = events.NewLoggingPublisher(opts.Logger)
	}
	if opts.FadeSteps < 0 {
		opts.FadeSteps = 0
	}
	if opts.Stagger < 0 {
		opts.Stagger = 0
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	vp := viewport.New(80, minHeight)
	vp.KeyMap = scrollKeyMap()

	m := Model{
		ctx:       opts.Context,
		router:    opts.Router,
		theme:     opts.Theme,
		catalog:   opts.Catalog,
		submitter: opts.Submitter,
		publisher: opts.Publisher,
		logger:    opts.Logger.With("component", "shell"),
		form:      newForm(),
		viewport:  vp,
		spinner:   s,
		help:      help.New(),
		keys:      defaultKeyMap(),
		width:     80,
		height:    24,
		stagger:   opts.Stagger,
		fadeSteps: opts.FadeSteps,
	}
	m.applyTheme()

	publish := m.publish
	store := m.theme
	m.unsubscribe = append(m.unsubscribe,
		m.router.Subscribe(func(c router.Change) {
			publish(ports.EventPageNavigated, "from", c.From.String(), "to", c.To.String(), "mount", c.Generation)
		}),
		m.theme.Subscribe(func(pref site.ThemePreference) {
			publish(ports.EventThemeChanged, "theme", pref.String(), "session_only", store.SessionOnly())
		}),
	)

	m.remount()
	m.layout()
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.mountCmd())
}

// Close discards page state and detaches from the router and theme store.
// Call it once the program has exited, on the final model.
func (m Model) Close() {
	if m.contact != nil {
		m.contact.Discard()
	}
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
}

// Page returns the mounted page.
func (m Model) Page() site.PageID {
	return m.router.Current()
}

// Mount returns the mount generation the page state belongs to.
func (m Model) Mount() uint64 {
	return m.mount
}

// CookiesAccepted reports whether the cookie banner was dismissed this session.
func (m Model) CookiesAccepted() bool {
	return m.cookiesAccepted
}

// MenuOpen reports whether the mobile menu is expanded.
func (m Model) MenuOpen() bool {
	return m.menuOpen
}

// Helper Methods

// remount rebuilds page-local state for the router's current mount. Any
// pending submission from the previous mount is discarded.
func (m *Model) remount() {
	if m.contact != nil {
		m.contact.Discard()
	}
	m.contact = nil
	m.browser = nil
	m.form = newForm()
	m.form.applyStyles(m.styles)

	m.mount = m.router.Mount()
	m.menuOpen = false
	m.fade = m.fadeSteps
	m.viewport.GotoTop()

	switch m.router.Current() {
	case site.PageServices:
		m.browser = addons.New(m.catalog)
		if m.stagger == 0 {
			m.browser.Settle()
		}
	case site.PageContact:
		m.contact = contact.New(catalog.DefaultPackageName, m.catalog.PackageNames())
		m.form.load(m.contact.Fields())
	}
}

// mountCmd starts the timers a fresh mount needs.
func (m Model) mountCmd() tea.Cmd {
	var cmds []tea.Cmd
	if m.fade > 0 {
		cmds = append(cmds, fadeTickCmd(m.mount, fadeInterval))
	}
	if m.browser != nil && m.browser.Phase() != addons.PhaseSettled {
		cmds = append(cmds, addonTickCmd(m.mount, m.browser.Seq(), m.stagger))
	}
	return tea.Batch(cmds...)
}

// applyTheme rebuilds every style from the store's current preference.
func (m *Model) applyTheme() {
	m.styles = ui.ForTheme(m.theme.Current())
	m.spinner.Style = lipgloss.NewStyle().Foreground(m.styles.Palette.Accent)

	hs := m.help.Styles
	hs.ShortKey = m.styles.Strong
	hs.ShortDesc = m.styles.Muted
	hs.ShortSeparator = m.styles.Muted
	hs.FullKey = m.styles.Strong
	hs.FullDesc = m.styles.Muted
	hs.FullSeparator = m.styles.Muted
	m.help.Styles = hs

	m.form.applyStyles(m.styles)
}

// narrow reports whether the mobile layout is active.
func (m Model) narrow() bool {
	return m.width < mobileBreakpoint
}

func (m Model) publish(eventType string, kv ...interface{}) {
	if err := m.publisher.Publish(m.ctx, ports.NewEvent(eventType, kv...)); err != nil {
		m.logger.Warn(m.ctx, "failed to publish event", "event", eventType, "error", err)
	}
}

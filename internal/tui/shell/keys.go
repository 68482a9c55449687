package shell

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// keyMap holds every shortcut the shell reacts to. Page-specific bindings
// are enabled by refresh so the help bar only lists what currently works.
type keyMap struct {
	// Navigation
	Home      key.Binding
	Services  key.Binding
	Portfolio key.Binding
	About     key.Binding
	Contact   key.Binding
	Book      key.Binding
	Privacy   key.Binding
	Menu      key.Binding

	// Chrome
	Theme  key.Binding
	Accept key.Binding
	Manage key.Binding
	Help   key.Binding
	Quit   key.Binding

	// Services
	PrevCategory key.Binding
	NextCategory key.Binding

	// Contact
	Edit      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Leave     key.Binding
	Reset     key.Binding
	Retry     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Services:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "services")),
		Portfolio: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "portfolio")),
		About:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "about")),
		Contact:   key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "contact")),
		Book:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "book consult")),
		Privacy:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "privacy")),
		Menu:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),

		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Accept: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept cookies")),
		Manage: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "manage cookies")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		PrevCategory: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev category")),
		NextCategory: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next category")),

		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit form")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send message")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")),
		Reset:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "send another")),
		Retry:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Home, k.Services, k.Contact, k.Book,
		k.PrevCategory, k.NextCategory,
		k.Edit, k.Submit, k.Leave, k.Reset, k.Retry,
		k.Accept, k.Theme, k.Help, k.Quit,
	}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Services, k.Portfolio, k.About, k.Contact, k.Book, k.Privacy, k.Menu},
		{k.PrevCategory, k.NextCategory},
		{k.Edit, k.NextField, k.PrevField, k.Submit, k.Leave, k.Reset, k.Retry},
		{k.Theme, k.Accept, k.Manage, k.Help, k.Quit},
	}
}

// scrollKeyMap restricts the viewport to keys that do not collide with page
// shortcuts.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "½ page up")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "½ page down")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	}
}

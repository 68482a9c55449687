package shell

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/build50/build50/internal/app/contact"
	"github.com/build50/build50/internal/ui"
)

// formField is the focus order of the contact form.
type formField int

const (
	fieldName formField = iota
	fieldEmail
	fieldPackage
	fieldMessage
	fieldCount
)

func (f formField) contactField() contact.Field {
	switch f {
	case fieldName:
		return contact.FieldName
	case fieldEmail:
		return contact.FieldEmail
	case fieldPackage:
		return contact.FieldPackage
	default:
		return contact.FieldMessage
	}
}

func (f formField) label() string {
	switch f {
	case fieldName:
		return "Name"
	case fieldEmail:
		return "Email"
	case fieldPackage:
		return "Interested Package"
	default:
		return "Message"
	}
}

// form holds the input widgets of the contact page. The controller owns the
// values; the widgets only mirror them for editing.
type form struct {
	editing bool
	focus   formField

	name    textinput.Model
	email   textinput.Model
	message textarea.Model
}

func newForm() form {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 100
	name.Width = 40

	email := textinput.New()
	email.Placeholder = "you@business.com.au"
	email.CharLimit = 254
	email.Width = 40

	message := textarea.New()
	message.Placeholder = "Tell us about your business"
	message.ShowLineNumbers = false
	message.CharLimit = 2000
	message.SetWidth(50)
	message.SetHeight(4)

	return form{name: name, email: email, message: message}
}

func (f *form) applyStyles(s ui.Styles) {
	f.name.TextStyle = s.Body
	f.name.PlaceholderStyle = s.Muted
	f.email.TextStyle = s.Body
	f.email.PlaceholderStyle = s.Muted
	f.message.FocusedStyle.Text = s.Body
	f.message.FocusedStyle.Placeholder = s.Muted
	f.message.BlurredStyle.Text = s.Muted
	f.message.BlurredStyle.Placeholder = s.Muted
}

// load copies controller values into the widgets.
func (f *form) load(fields contact.Fields) {
	f.name.SetValue(fields.Name)
	f.email.SetValue(fields.Email)
	f.message.SetValue(fields.Message)
}

// value returns the widget content for field. The package selector has no
// widget and reports "".
func (f form) value(field formField) string {
	switch field {
	case fieldName:
		return f.name.Value()
	case fieldEmail:
		return f.email.Value()
	case fieldMessage:
		return f.message.Value()
	default:
		return ""
	}
}

// start enters editing mode on the current field.
func (f *form) start() tea.Cmd {
	f.editing = true
	return f.focusOn(f.focus)
}

// stop leaves editing mode.
func (f *form) stop() {
	f.editing = false
	f.blur()
}

// move shifts focus by delta fields, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	next := (int(f.focus) + delta) % int(fieldCount)
	if next < 0 {
		next += int(fieldCount)
	}
	return f.focusOn(formField(next))
}

func (f *form) focusOn(field formField) tea.Cmd {
	f.blur()
	f.focus = field
	switch field {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	case fieldMessage:
		return f.message.Focus()
	}
	return nil
}

func (f *form) blur() {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

// update forwards msg to the focused widget.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

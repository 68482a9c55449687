package shell

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/build50/build50/internal/app/contact"
	"github.com/build50/build50/internal/ports"
)

// submitCmd delivers a pending enquiry off the event loop.
func submitCmd(mount uint64, pending *contact.Pending, submitter ports.Submitter) tea.Cmd {
	return func() tea.Msg {
		receipt, err := pending.Run(submitter)
		if err != nil && pending.Context().Err() != nil {
			// Page unmounted while sending
			return SubmissionCancelledMsg{Mount: mount, ID: pending.ID}
		}
		return SubmissionResultMsg{
			Mount:   mount,
			ID:      pending.ID,
			Receipt: receipt,
			Err:     err,
		}
	}
}

// addonTickCmd schedules the next step of an add-on reveal.
func addonTickCmd(mount, seq uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return addonTickMsg{mount: mount, seq: seq}
	})
}

// fadeTickCmd schedules the next step of the page fade-in.
func fadeTickCmd(mount uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return fadeTickMsg{mount: mount}
	})
}

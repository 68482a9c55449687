package shell

import (
	"github.com/build50/build50/internal/ports"
)

// Page Messages

// fadeTickMsg advances the page fade-in started by a mount.
type fadeTickMsg struct {
	mount uint64
}

// addonTickMsg advances the add-on reveal identified by seq.
type addonTickMsg struct {
	mount uint64
	seq   uint64
}

// Contact Messages

// SubmissionResultMsg reports the outcome of one enquiry delivery. Results
// whose mount or id no longer match the live contact form are dropped.
type SubmissionResultMsg struct {
	Mount   uint64
	ID      string
	Receipt ports.Receipt
	Err     error
}

// SubmissionCancelledMsg indicates the delivery was abandoned because its
// page unmounted.
type SubmissionCancelledMsg struct {
	Mount uint64
	ID    string
}

// Chrome Messages

// ErrorMsg surfaces a non-fatal problem in the status line.
type ErrorMsg struct {
	Message string
}

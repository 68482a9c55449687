// Package contact implements the contact form lifecycle:
//
//	idle --submit--> sending --resolve(nil)--> success --reset--> idle
//	                 sending --resolve(err)--> failed  --retry--> idle
//
// Validation failures keep the form idle and are reported per field.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/build50/build50/internal/ports"
	"github.com/build50/build50/internal/validation"
	siteerrors "github.com/build50/build50/pkg/errors"
)

var (
	// ErrSubmitInFlight is returned by Submit while a submission is pending.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	// ErrNotIdle is returned by Submit from success or failed; the user has to
	// reset or retry first.
	ErrNotIdle = errors.New("form is not ready for a new submission")
)

// Status is the submission lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPackage Field = "package"
	FieldMessage Field = "message"
)

// Fields is the form content.
type Fields struct {
	Name    string `form:"name" validate:"required,notblank,max=100"`
	Email   string `form:"email" validate:"required,email,max=254"`
	Package string `form:"package" validate:"required"`
	Message string `form:"message" validate:"max=2000"`
}

// Pending is the handle for one in-flight submission. It owns a cancellable
// context; the form itself never cancels, but the page does when it unmounts.
type Pending struct {
	ID      string
	Enquiry ports.Enquiry

	ctx    context.Context
	cancel context.CancelFunc
}

// Context is cancelled once the submission is discarded.
func (p *Pending) Context() context.Context {
	return p.ctx
}

// Cancel aborts the submission. Calling it more than once is harmless.
func (p *Pending) Cancel() {
	p.cancel()
}

// Run delivers the enquiry through submitter under the pending context.
func (p *Pending) Run(submitter ports.Submitter) (ports.Receipt, error) {
	return submitter.Submit(p.ctx, p.Enquiry)
}

// Controller is scoped to one mount of the contact page. It is not safe for
// concurrent use.
type Controller struct {
	defaults Fields
	packages []string

	fields  Fields
	status  Status
	errs    siteerrors.FieldErrors
	failure error
	pending *Pending

	now func() time.Time
}

// New creates an idle controller whose package field defaults to
// defaultPackage. When packages is non-empty, submissions must pick one of
// them.
func New(defaultPackage string, packages []string) *Controller {
	defaults := Fields{Package: defaultPackage}
	return &Controller{
		defaults: defaults,
		packages: append([]string(nil), packages...),
		fields:   defaults,
		now:      time.Now,
	}
}

// Status returns the lifecycle state.
func (c *Controller) Status() Status {
	return c.status
}

// Fields returns the current form content.
func (c *Controller) Fields() Fields {
	return c.fields
}

// Errors returns the field errors from the last rejected submit.
func (c *Controller) Errors() siteerrors.FieldErrors {
	return c.errs
}

// Failure returns the delivery error while in StatusFailed.
func (c *Controller) Failure() error {
	return c.failure
}

// Pending returns the in-flight submission, if any.
func (c *Controller) Pending() *Pending {
	return c.pending
}

// SetField updates one input and clears its error. Edits are ignored while
// sending so the pending enquiry matches what the user sees. It reports
// whether the value was applied.
func (c *Controller) SetField(field Field, value string) bool {
	if c.status == StatusSending {
		return false
	}
	switch field {
	case FieldName:
		c.fields.Name = value
	case FieldEmail:
		c.fields.Email = value
	case FieldPackage:
		c.fields.Package = value
	case FieldMessage:
		c.fields.Message = value
	default:
		return false
	}
	c.clearError(string(field))
	return true
}

// Submit validates the form and, if it passes, moves to sending and returns
// the pending submission for the caller to run. Invalid input returns
// siteerrors.FieldErrors and leaves the status at idle.
func (c *Controller) Submit(ctx context.Context) (*Pending, error) {
	switch c.status {
	case StatusSending:
		return nil, ErrSubmitInFlight
	case StatusSuccess, StatusFailed:
		return nil, ErrNotIdle
	}

	if err := c.validate(); err != nil {
		var fe siteerrors.FieldErrors
		if errors.As(err, &fe) {
			c.errs = fe
		}
		return nil, err
	}
	c.errs = nil

	if ctx == nil {
		ctx = context.Background()
	}
	taskCtx, cancel := context.WithCancel(ctx)
	id := uuid.NewString()
	c.pending = &Pending{
		ID: id,
		Enquiry: ports.Enquiry{
			ID:          id,
			Name:        strings.TrimSpace(c.fields.Name),
			Email:       strings.TrimSpace(c.fields.Email),
			Package:     c.fields.Package,
			Message:     c.fields.Message,
			SubmittedAt: c.now().UTC(),
		},
		ctx:    taskCtx,
		cancel: cancel,
	}
	c.status = StatusSending
	return c.pending, nil
}

// Resolve completes the pending submission identified by id. Results for any
// other id (for example from a discarded earlier mount) are ignored. A nil
// err moves to success and clears the form; otherwise the form moves to
// failed and keeps its fields. It reports whether the result was applied.
func (c *Controller) Resolve(id string, err error) bool {
	if c.status != StatusSending || c.pending == nil || c.pending.ID != id {
		return false
	}
	c.pending.cancel()
	c.pending = nil

	if err != nil {
		c.status = StatusFailed
		c.failure = err
		return true
	}
	c.status = StatusSuccess
	c.failure = nil
	c.fields = c.defaults
	return true
}

// Reset returns from success to idle ("send another").
func (c *Controller) Reset() bool {
	if c.status != StatusSuccess {
		return false
	}
	c.status = StatusIdle
	return true
}

// Retry returns from failed to idle with the fields intact.
func (c *Controller) Retry() bool {
	if c.status != StatusFailed {
		return false
	}
	c.status = StatusIdle
	c.failure = nil
	return true
}

// Discard cancels any pending submission. The page calls it on unmount; the
// controller is not used afterwards.
func (c *Controller) Discard() {
	if c.pending != nil {
		c.pending.cancel()
		c.pending = nil
	}
}

func (c *Controller) validate() error {
	err := validation.Struct(c.fields)
	if len(c.packages) == 0 || c.knownPackage(c.fields.Package) {
		return err
	}

	var fe siteerrors.FieldErrors
	if err != nil && !errors.As(err, &fe) {
		return err
	}
	if fe.For(string(FieldPackage)) == "" {
		fe = append(fe, &siteerrors.ValidationError{
			Field:   string(FieldPackage),
			Message: fmt.Sprintf("must be one of [%s]", strings.Join(c.packages, " ")),
		})
	}
	return fe
}

func (c *Controller) knownPackage(name string) bool {
	for _, p := range c.packages {
		if p == name {
			return true
		}
	}
	return false
}

func (c *Controller) clearError(field string) {
	if len(c.errs) == 0 {
		return
	}
	kept := make(siteerrors.FieldErrors, 0, len(c.errs))
	for _, e := range c.errs {
		if e.Field != field {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		c.errs = nil
		return
	}
	c.errs = kept
}

package submission

import (
	"context"
	"fmt"

	"github.com/build50/build50/internal/infrastructure/logging"
	"github.com/build50/build50/internal/ports"
	siteerrors "github.com/build50/build50/pkg/errors"
)

// Outbox records each enquiry before handing it to the next submitter, so a
// copy exists even when delivery fails.
type Outbox struct {
	repo   ports.EnquiryRepository
	next   ports.Submitter
	logger ports.Logger
}

// NewOutbox wraps next with a recording step.
func NewOutbox(repo ports.EnquiryRepository, next ports.Submitter, logger ports.Logger) *Outbox {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Outbox{repo: repo, next: next, logger: logger.With("component", "outbox")}
}

// Submit saves the enquiry, then delegates. A save failure aborts delivery.
func (o *Outbox) Submit(ctx context.Context, enquiry ports.Enquiry) (ports.Receipt, error) {
	if err := o.repo.Save(ctx, enquiry); err != nil {
		o.logger.Error(ctx, "failed to record enquiry", "enquiry_id", enquiry.ID, "error", err)
		return ports.Receipt{}, siteerrors.NewSubmissionError(enquiry.ID, fmt.Errorf("record enquiry: %w", err))
	}
	o.logger.Debug(ctx, "enquiry recorded", "enquiry_id", enquiry.ID)
	return o.next.Submit(ctx, enquiry)
}

var _ ports.Submitter = (*Outbox)(nil)

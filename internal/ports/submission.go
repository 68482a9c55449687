package ports

import (
	"context"
	"time"
)

// Enquiry is the payload a visitor sends from the contact form.
type Enquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Package     string    `json:"package"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Receipt acknowledges a delivered enquiry.
type Receipt struct {
	EnquiryID   string        `json:"enquiry_id"`
	DeliveredAt time.Time     `json:"delivered_at"`
	Latency     time.Duration `json:"latency"`
}

// Submitter delivers enquiries. Implementations must honour ctx: a cancelled
// context aborts the delivery and returns ctx.Err() without side effects.
// Failures are returned as *errors.SubmissionError so the contact controller
// can move into its failed state.
type Submitter interface {
	Submit(ctx context.Context, enquiry Enquiry) (Receipt, error)
}

// EnquiryRepository records delivered enquiries so operators can review them
// from the CLI. It is append-only and List returns oldest first.
type EnquiryRepository interface {
	Save(ctx context.Context, enquiry Enquiry) error
	List(ctx context.Context) ([]Enquiry, error)
}

// Package submission delivers contact enquiries.
package submission

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/build50/build50/internal/infrastructure/logging"
	"github.com/build50/build50/internal/ports"
	siteerrors "github.com/build50/build50/pkg/errors"
)

// DefaultLatency matches the delay visitors see on the website.
const DefaultLatency = 1500 * time.Millisecond

// ErrSimulatedFailure is the cause reported when FailEvery triggers.
var ErrSimulatedFailure = errors.New("simulated delivery failure")

// Options configures a Simulated submitter.
type Options struct {
	Latency time.Duration
	// FailEvery fails every Nth submission when > 0.
	FailEvery int
	Logger    ports.Logger
	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

// Simulated stands in for a real delivery service: it waits, then succeeds.
type Simulated struct {
	latency   time.Duration
	failEvery int
	count     atomic.Int64
	logger    ports.Logger
	now       func() time.Time
}

// NewSimulated creates a Simulated submitter. A negative latency is treated
// as zero.
func NewSimulated(opts Options) *Simulated {
	latency := opts.Latency
	if latency < 0 {
		latency = 0
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &Simulated{
		latency:   latency,
		failEvery: opts.FailEvery,
		logger:    logger.With("component", "submitter"),
		now:       now,
	}
}

// Submit waits for the configured latency or until ctx is done.
func (s *Simulated) Submit(ctx context.Context, enquiry ports.Enquiry) (ports.Receipt, error) {
	n := s.count.Add(1)
	start := s.now()

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			s.logger.Debug(ctx, "submission abandoned", "enquiry_id", enquiry.ID)
			return ports.Receipt{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return ports.Receipt{}, err
	}

	if s.failEvery > 0 && n%int64(s.failEvery) == 0 {
		s.logger.Warn(ctx, "submission failed", "enquiry_id", enquiry.ID, "attempt", n)
		return ports.Receipt{}, siteerrors.NewSubmissionError(enquiry.ID, ErrSimulatedFailure)
	}

	delivered := s.now()
	s.logger.Info(ctx, "submission delivered",
		"enquiry_id", enquiry.ID,
		"package", enquiry.Package,
		"duration_ms", delivered.Sub(start).Milliseconds())
	return ports.Receipt{
		EnquiryID:   enquiry.ID,
		DeliveredAt: delivered,
		Latency:     delivered.Sub(start),
	}, nil
}

func (s *Simulated) String() string {
	return fmt.Sprintf("simulated(latency=%s, fail_every=%d)", s.latency, s.failEvery)
}

var _ ports.Submitter = (*Simulated)(nil)

package scheduler

import (
	"bannerdesk/internal/booking"
	"context"
	"time"
)

// AdvanceJobName is the name of the booking transition job
const AdvanceJobName = "advance-bookings"

// Advancer moves bookings through their scheduled transitions
type Advancer interface {
	AdvanceSchedule(ctx context.Context, now time.Time) (*booking.AdvanceResult, error)
}

// AdvanceJob activates and expires bookings as of the time it runs
type AdvanceJob struct {
	advancer Advancer
	now      func() time.Time
}

// NewAdvanceJob creates the booking transition job. now defaults to time.Now.
func NewAdvanceJob(a Advancer, now func() time.Time) *AdvanceJob {
	if now == nil {
		now = time.Now
	}
	return &AdvanceJob{advancer: a, now: now}
}

func (j *AdvanceJob) Name() string { return AdvanceJobName }

func (j *AdvanceJob) Run(ctx context.Context) error {
	_, err := j.advancer.AdvanceSchedule(ctx, j.now())
	return err
}

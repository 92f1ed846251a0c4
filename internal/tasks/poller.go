// Package tasks implements the fixed-period status polling loop.
//
// One [Poller] drives one consumer: every tick it performs a single blocking
// status fetch and delivers the result as a [StatusUpdate]. There is never
// more than one request in flight; the limiter enforces the fixed period even
// when a fetch returns early or the consumer is slow.
package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/dkarlsson/radiodeck/internal/models"
	"github.com/dkarlsson/radiodeck/internal/services"
	"github.com/dkarlsson/radiodeck/internal/shared"
)

// StatusUpdate represents one completed poll cycle.
//
// Err is non-nil when the fetch failed; Status is then the zero snapshot with
// Connected=false and consumers must keep their previously displayed state.
type StatusUpdate struct {
	ID     string        // Correlation id for log lines
	Seq    int           // Tick number, starting at 1
	Status models.Status // Snapshot rebuilt fully on this poll
	Err    error         // Fetch failure, if any
	At     time.Time     // When the poll completed
}

// Poller fetches playback status at a fixed interval.
type Poller struct {
	remote   services.Remote
	limiter  *rate.Limiter
	interval time.Duration
	logger   *log.Logger
}

// NewPoller creates a poller that fetches status from remote once per interval.
func NewPoller(remote services.Remote, interval time.Duration, logger *log.Logger) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Poller{
		remote:   remote,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
		logger:   logger,
	}
}

// Interval returns the configured poll period.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Run polls until ctx is cancelled, sending one [StatusUpdate] per tick on
// updates. The channel is closed on return. Cancellation is a clean stop and
// returns nil.
func (p *Poller) Run(ctx context.Context, updates chan<- StatusUpdate) error {
	defer close(updates)

	seq := 0
	for {
		if err := p.limiter.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}

		status, err := p.remote.Status(ctx)
		if ctx.Err() != nil {
			return nil
		}

		seq++
		update := StatusUpdate{
			ID:     shared.GenerateID(),
			Seq:    seq,
			Status: status,
			Err:    err,
			At:     time.Now(),
		}

		if err != nil {
			p.logger.Warn("status poll failed", "id", update.ID, "seq", seq, "err", err)
		}

		select {
		case updates <- update:
		case <-ctx.Done():
			return nil
		}
	}
}

// Package feed drives a progress bar from a background producer, the way a
// download would report progress.
package feed

import (
	"context"
	"time"

	"go.uber.org/zap"

	log "waterbar/internal/logging"
)

// Controller is the part of a progress bar a feed talks to.
type Controller interface {
	Prepare()
	Start()
	SetProgress(p int)
}

// Default feed timing.
const (
	DefaultInterval     = 300 * time.Millisecond
	DefaultPrepareDelay = time.Second
)

// Driver walks a bar from 0 to 99 percent and around again until cancelled.
type Driver struct {
	Interval     time.Duration
	PrepareDelay time.Duration
}

// NewDriver returns a Driver using the default timing.
func NewDriver() Driver {
	return Driver{Interval: DefaultInterval, PrepareDelay: DefaultPrepareDelay}
}

// Run shows the prepare state for PrepareDelay, starts the bar and then sets
// one more percent every Interval. It returns ctx.Err() once ctx is done and
// makes no calls on c after that.
func (d Driver) Run(ctx context.Context, c Controller) error {
	interval := d.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	c.Prepare()
	if err := sleep(ctx, d.PrepareDelay); err != nil {
		log.Debug("feed cancelled while preparing")
		return err
	}
	c.Start()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; ; i = (i + 1) % 100 {
		select {
		case <-ctx.Done():
			log.Debug("feed cancelled", zap.Int("next", i))
			return ctx.Err()
		case <-ticker.C:
		}
		// ctx may have been cancelled while the tick was pending
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.SetProgress(i)
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package carousel

import (
	"context"
	"time"

	"github.com/goliatone/go-fitm8/pkg/schedule"
)

// DefaultInterval is the autoplay period.
const DefaultInterval = 5 * time.Second

// AutoplayOptions configures an autoplay task.
type AutoplayOptions struct {
	Interval time.Duration
	Clock    schedule.Clock
}

// AutoplayOption mutates AutoplayOptions.
type AutoplayOption func(*AutoplayOptions)

// WithInterval overrides the autoplay period. Non-positive values are ignored.
func WithInterval(d time.Duration) AutoplayOption {
	return func(o *AutoplayOptions) {
		if d > 0 {
			o.Interval = d
		}
	}
}

// WithClock injects the clock driving the task.
func WithClock(clock schedule.Clock) AutoplayOption {
	return func(o *AutoplayOptions) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// Autoplay advances c every interval while its autoplay flag is set. Every
// manual transition or flag change restarts the countdown. The task ends
// when the returned disposer is called or ctx is done.
func Autoplay(ctx context.Context, c *Carousel, opts ...AutoplayOption) schedule.Disposer {
	options := AutoplayOptions{
		Interval: DefaultInterval,
		Clock:    schedule.RealClock{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	// The ticker already restarts after its own advances; only outside
	// changes need a reset.
	task := schedule.Start(ctx, options.Clock, options.Interval, func(time.Time) {
		c.advance()
	})
	unsubscribe := c.subscribe(func(_ State, automatic bool) {
		if !automatic {
			task.Reset()
		}
	})

	return func() {
		unsubscribe()
		task.Dispose()
	}
}

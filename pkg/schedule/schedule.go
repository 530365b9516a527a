package schedule

import (
	"context"
	"sync"
	"time"
)

// Disposer stops a background task. Calling it more than once is safe and
// every call returns only after the task goroutine has exited. A task must
// not call its own disposer from inside its callback.
type Disposer func()

// Recurring runs a callback on every tick of a clock until disposed.
type Recurring struct {
	ticker  Ticker
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
	period  time.Duration
	mu      sync.Mutex
	stopped bool
}

// Start launches fn every period on clock. The task ends when ctx is done or
// Dispose is called.
func Start(ctx context.Context, clock Clock, period time.Duration, fn func(time.Time)) *Recurring {
	if clock == nil {
		clock = RealClock{}
	}
	ctx, cancel := context.WithCancel(ctx)
	r := &Recurring{
		ticker: clock.NewTicker(period),
		cancel: cancel,
		done:   make(chan struct{}),
		period: period,
	}

	go func() {
		defer close(r.done)
		defer r.stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-r.ticker.C():
				if ctx.Err() != nil {
					return
				}
				fn(now)
			}
		}
	}()
	return r
}

// Reset restarts the countdown to the next run.
func (r *Recurring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.ticker.Reset(r.period)
}

func (r *Recurring) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	r.ticker.Stop()
}

// Done is closed once the task goroutine has exited.
func (r *Recurring) Done() <-chan struct{} {
	return r.done
}

// Dispose cancels the task and waits for it.
func (r *Recurring) Dispose() {
	r.once.Do(r.cancel)
	<-r.done
}

// Every runs fn every period until the returned disposer is called or ctx
// ends.
func Every(ctx context.Context, clock Clock, period time.Duration, fn func(time.Time)) Disposer {
	return Start(ctx, clock, period, fn).Dispose
}

package schedule

import (
	"sync"
	"time"
)

// Clock creates tickers. Production code uses RealClock; tests drive a
// ManualClock so recurring work runs deterministically.
type Clock interface {
	Now() time.Time
	NewTicker(period time.Duration) Ticker
}

// Ticker mirrors the subset of *time.Ticker the schedulers rely on.
type Ticker interface {
	C() <-chan time.Time
	// Reset restarts the countdown with a new period.
	Reset(period time.Duration)
	Stop()
}

// RealClock is backed by the time package.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

func (RealClock) NewTicker(period time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(period)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time        { return r.t.C }
func (r *realTicker) Reset(period time.Duration) { r.t.Reset(period) }
func (r *realTicker) Stop()                      { r.t.Stop() }

// ManualClock is a virtual clock. Time only moves through Advance, and Tick
// fires every live ticker immediately.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers map[*manualTicker]struct{}
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{
		now:     start,
		tickers: make(map[*manualTicker]struct{}),
	}
}

func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualClock) NewTicker(period time.Duration) Ticker {
	if period <= 0 {
		panic("schedule: non-positive ticker period")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTicker{
		clock:    m,
		ch:       make(chan time.Time, 1),
		period:   period,
		deadline: m.now.Add(period),
	}
	m.tickers[t] = struct{}{}
	return t
}

// Advance moves virtual time forward by d and fires every ticker whose
// deadline has passed. Like time.Ticker, a slow reader sees at most one
// pending tick.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	for t := range m.tickers {
		if m.now.Before(t.deadline) {
			continue
		}
		for !m.now.Before(t.deadline) {
			t.deadline = t.deadline.Add(t.period)
		}
		t.send(m.now)
	}
}

// Tick fires every live ticker without moving time, restarting their
// countdowns.
func (m *ManualClock) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for t := range m.tickers {
		t.deadline = m.now.Add(t.period)
		t.send(m.now)
	}
}

// Tickers reports how many tickers are live.
func (m *ManualClock) Tickers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

type manualTicker struct {
	clock    *ManualClock
	ch       chan time.Time
	period   time.Duration
	deadline time.Time
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Reset(period time.Duration) {
	if period <= 0 {
		panic("schedule: non-positive ticker period")
	}
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.period = period
	t.deadline = t.clock.now.Add(period)
	t.drain()
	t.clock.tickers[t] = struct{}{}
}

func (t *manualTicker) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	delete(t.clock.tickers, t)
	t.drain()
}

// send must be called with the clock lock held.
func (t *manualTicker) send(now time.Time) {
	select {
	case t.ch <- now:
	default:
	}
}

func (t *manualTicker) drain() {
	select {
	case <-t.ch:
	default:
	}
}

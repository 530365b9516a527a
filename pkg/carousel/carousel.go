package carousel

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrEmpty is returned when a carousel is created without items.
	ErrEmpty = errors.New("carousel: at least one item is required")
	// ErrIndexOutOfRange is returned by Goto for indices outside [0, Len).
	ErrIndexOutOfRange = errors.New("carousel: index out of range")
)

// State is a point-in-time view of a carousel.
type State struct {
	Index    int  `json:"index"`
	Len      int  `json:"len"`
	Autoplay bool `json:"autoplay"`
	Hovered  bool `json:"hovered"`
}

// Prev is the index shown by a backwards step.
func (s State) Prev() int {
	return (s.Index - 1 + s.Len) % s.Len
}

// Next is the index shown by a forward step.
func (s State) Next() int {
	return (s.Index + 1) % s.Len
}

// Carousel tracks the selected item of a fixed-size, wrapping list.
type Carousel struct {
	mu        sync.Mutex
	n         int
	index     int
	autoplay  bool
	hovered   bool
	nextID    int
	listeners map[int]func(State, bool)
}

// New creates a carousel over n items positioned at the first item with
// autoplay enabled.
func New(n int) (*Carousel, error) {
	if n < 1 {
		return nil, ErrEmpty
	}
	return &Carousel{
		n:         n,
		autoplay:  true,
		listeners: make(map[int]func(State, bool)),
	}, nil
}

// Len returns the number of items.
func (c *Carousel) Len() int {
	return c.n
}

// Index returns the selected item.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Autoplay reports whether automatic advancing is enabled.
func (c *Carousel) Autoplay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoplay
}

// Snapshot returns the current state.
func (c *Carousel) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Next advances to the following item, wrapping to the first.
func (c *Carousel) Next() State {
	return c.update(false, func() bool {
		c.index = (c.index + 1) % c.n
		return true
	})
}

// Prev moves to the previous item, wrapping to the last.
func (c *Carousel) Prev() State {
	return c.update(false, func() bool {
		c.index = (c.index - 1 + c.n) % c.n
		return true
	})
}

// advance steps forward only while autoplay is enabled. Its notification
// is flagged as automatic.
func (c *Carousel) advance() State {
	return c.update(true, func() bool {
		if !c.autoplay {
			return false
		}
		c.index = (c.index + 1) % c.n
		return true
	})
}

// Goto selects item k. Out of range indices leave the carousel untouched.
func (c *Carousel) Goto(k int) (State, error) {
	if k < 0 || k >= c.n {
		return c.Snapshot(), fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, k, c.n)
	}
	return c.update(false, func() bool {
		c.index = k
		return true
	}), nil
}

// SetHover records pointer hover. Hovering pauses autoplay and leaving
// resumes it.
func (c *Carousel) SetHover(hovered bool) State {
	return c.update(false, func() bool {
		if c.hovered == hovered && c.autoplay == !hovered {
			return false
		}
		c.hovered = hovered
		c.autoplay = !hovered
		return true
	})
}

// SetAutoplay sets the autoplay flag directly.
func (c *Carousel) SetAutoplay(enabled bool) State {
	return c.update(false, func() bool {
		if c.autoplay == enabled {
			return false
		}
		c.autoplay = enabled
		return true
	})
}

// Subscribe registers fn for every transition and autoplay change. The
// returned function removes it.
func (c *Carousel) Subscribe(fn func(State)) func() {
	if fn == nil {
		return func() {}
	}
	return c.subscribe(func(state State, _ bool) { fn(state) })
}

// subscribe registers fn with the origin of each notification: automatic
// is true only for autoplay advances.
func (c *Carousel) subscribe(fn func(state State, automatic bool)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

func (c *Carousel) update(automatic bool, mutate func() bool) State {
	c.mu.Lock()
	changed := mutate()
	state := c.snapshot()
	var listeners []func(State, bool)
	if changed {
		listeners = make([]func(State, bool), 0, len(c.listeners))
		for _, fn := range c.listeners {
			listeners = append(listeners, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(state, automatic)
	}
	return state
}

func (c *Carousel) snapshot() State {
	return State{
		Index:    c.index,
		Len:      c.n,
		Autoplay: c.autoplay,
		Hovered:  c.hovered,
	}
}

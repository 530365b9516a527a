package form

import "sync"

// Store is an explicit state container for one form. Every mutation flows
// through Dispatch so views only ever observe states produced by Reduce.
type Store struct {
	mu        sync.Mutex
	validator Validator
	state     State
	nextID    int
	listeners map[int]func(State)
}

// NewStore creates a store holding the validator's initial state.
func NewStore(v Validator) *Store {
	return &Store{
		validator: v,
		state:     InitialState(v),
		listeners: make(map[int]func(State)),
	}
}

// NewStoreFrom creates a store resuming from a previously rendered state.
func NewStoreFrom(v Validator, state State) *Store {
	s := NewStore(v)
	s.state = Normalize(v, state)
	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

// Validator exposes the validator backing the store.
func (s *Store) Validator() Validator {
	return s.validator
}

// Dispatch reduces the action into a new state and notifies subscribers
// outside the lock.
func (s *Store) Dispatch(act Action) State {
	s.mu.Lock()
	s.state = Reduce(s.validator, s.state, act)
	snapshot := copyState(s.state)
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(copyState(snapshot))
	}
	return snapshot
}

// Subscribe registers fn for every future state and returns a function that
// removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func copyState(state State) State {
	return State{
		Values:    state.Values.Clone(),
		Errors:    state.Errors.Clone(),
		Submitted: state.Submitted,
		Attempts:  state.Attempts,
	}
}

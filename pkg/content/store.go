package content

import "sync/atomic"

// Store holds the current document and allows it to be swapped atomically
// while requests read it.
type Store struct {
	current atomic.Pointer[Content]
}

// NewStore seeds a store. A nil document selects Default.
func NewStore(doc *Content) *Store {
	if doc == nil {
		doc = Default()
	}
	s := &Store{}
	s.current.Store(doc)
	return s
}

// Get returns the current document. Callers must treat it as read-only.
func (s *Store) Get() *Content {
	return s.current.Load()
}

// Swap replaces the current document and returns the previous one.
func (s *Store) Swap(doc *Content) *Content {
	if doc == nil {
		return s.current.Load()
	}
	return s.current.Swap(doc)
}

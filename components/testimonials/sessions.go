package testimonials

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/goliatone/go-fitm8/pkg/carousel"
)

// DefaultSessionTTL is how long an idle session survives without its stream
// touching it.
const DefaultSessionTTL = 2 * time.Minute

// Sessions maps session ids to live carousels.
type Sessions struct {
	cache *cache.Cache
}

// NewSessions returns an empty registry. Expired entries are dropped lazily
// on lookup.
func NewSessions(ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{cache: cache.New(ttl, 0)}
}

// Add registers c under a fresh random id.
func (s *Sessions) Add(c *carousel.Carousel) string {
	id := uuid.NewString()
	s.cache.Set(id, c, cache.DefaultExpiration)
	return id
}

// Get returns the carousel for id. Malformed ids never match.
func (s *Sessions) Get(id string) (*carousel.Carousel, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	raw, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	c, ok := raw.(*carousel.Carousel)
	return c, ok
}

// Touch extends the lifetime of a live session.
func (s *Sessions) Touch(id string) {
	if c, ok := s.Get(id); ok {
		s.cache.Set(id, c, cache.DefaultExpiration)
	}
}

// Remove drops a session.
func (s *Sessions) Remove(id string) {
	s.cache.Delete(id)
}

// Len counts sessions, including expired ones not yet looked up.
func (s *Sessions) Len() int {
	return s.cache.ItemCount()
}

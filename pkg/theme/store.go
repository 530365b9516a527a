package theme

import (
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

// Store is the key-value collaborator used to persist the preference.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore returns a store whose entries expire after ttl. A zero ttl
// keeps entries forever. Expired entries are dropped lazily on read.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &MemoryStore{cache: cache.New(ttl, 0)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	raw, ok := m.cache.Get(key)
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	return value, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.cache.Set(key, value, cache.DefaultExpiration)
	return nil
}

// CookieMaxAge is how long the theme cookie lives.
const CookieMaxAge = 365 * 24 * time.Hour

// CookieStore persists values as cookies on a single request/response pair.
// The cookie stays readable by scripts so the page can apply the class before
// first paint.
type CookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
	set    map[string]string
}

// NewCookieStore binds a store to one request. w may be nil for read-only
// use, in which case Set fails.
func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{r: r, w: w, secure: secure, set: map[string]string{}}
}

func (c *CookieStore) Get(key string) (string, bool) {
	if value, ok := c.set[key]; ok {
		return value, true
	}
	if c.r == nil {
		return "", false
	}
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (c *CookieStore) Set(key, value string) error {
	if c.w == nil {
		return ErrReadOnlyStore
	}
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(CookieMaxAge / time.Second),
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
		HttpOnly: false,
	})
	c.set[key] = value
	return nil
}

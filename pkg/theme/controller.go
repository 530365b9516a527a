package theme

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ErrReadOnlyStore is returned when writing to a store without a sink.
var ErrReadOnlyStore = errors.New("theme: store is read-only")

// SystemSignal reports the platform colour-scheme preference. known is false
// when the platform gives no hint.
type SystemSignal func() (dark bool, known bool)

// PrefersColorSchemeHeader is the client hint carrying the platform scheme.
const PrefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// SystemSignalFromRequest reads the colour-scheme client hint.
func SystemSignalFromRequest(r *http.Request) SystemSignal {
	return func() (bool, bool) {
		if r == nil {
			return false, false
		}
		value := strings.Trim(strings.TrimSpace(r.Header.Get(PrefersColorSchemeHeader)), `"`)
		switch strings.ToLower(value) {
		case "dark":
			return true, true
		case "light":
			return false, true
		default:
			return false, false
		}
	}
}

// StaticSignal always answers with the given scheme.
func StaticSignal(dark bool) SystemSignal {
	return func() (bool, bool) { return dark, true }
}

// Controller resolves and flips the document theme over an injected store.
type Controller struct {
	store  Store
	system SystemSignal
	logger *zap.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithSystemSignal sets the platform preference source.
func WithSystemSignal(signal SystemSignal) ControllerOption {
	return func(c *Controller) {
		if signal != nil {
			c.system = signal
		}
	}
}

// WithLogger attaches a logger used for swallowed storage failures.
func WithLogger(logger *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController builds a controller over store.
func NewController(store Store, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:  store,
		system: func() (bool, bool) { return false, false },
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Initial picks the stored preference when it is valid, then the platform
// signal, then light.
func (c *Controller) Initial() Preference {
	if c.store != nil {
		if raw, ok := c.store.Get(StorageKey); ok {
			if pref, ok := ParsePreference(raw); ok {
				return pref
			}
			c.logger.Debug("ignoring invalid stored theme", zap.String("value", raw))
		}
	}
	if dark, known := c.system(); known && dark {
		return Dark
	}
	return Light
}

// Toggle flips current and persists the result. A failed write is logged and
// the flipped value is still returned.
func (c *Controller) Toggle(current Preference) Preference {
	next := current.Toggle()
	c.persist(next)
	return next
}

// Set persists an explicit preference.
func (c *Controller) Set(pref Preference) Preference {
	if !pref.IsDark() {
		pref = Light
	}
	c.persist(pref)
	return pref
}

func (c *Controller) persist(pref Preference) {
	if c.store == nil {
		return
	}
	if err := c.store.Set(StorageKey, string(pref)); err != nil {
		c.logger.Debug("theme persistence failed", zap.String("theme", string(pref)), zap.Error(err))
	}
}

package themetoggle

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/pkg/theme"
)

// StoreFactory binds a theme store to one request.
type StoreFactory func(w http.ResponseWriter, r *http.Request) theme.Store

type Options struct {
	RoutePath       string
	APIPath         string
	RedirectParam   string
	ThemeParam      string
	DefaultRedirect string
	CookieSecure    bool

	Palette *theme.Palette
	Stores  StoreFactory
	Logger  *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       "/theme",
		APIPath:         "/api/theme",
		RedirectParam:   "redirect",
		ThemeParam:      "theme",
		DefaultRedirect: "/",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/theme"
	}
	if opts.APIPath == "" {
		opts.APIPath = "/api/theme"
	}
	if opts.RedirectParam == "" {
		opts.RedirectParam = "redirect"
	}
	if opts.ThemeParam == "" {
		opts.ThemeParam = "theme"
	}
	if opts.DefaultRedirect == "" {
		opts.DefaultRedirect = "/"
	}
	if opts.Palette == nil {
		opts.Palette = theme.MustPalette(theme.DefaultManifest(theme.DefaultAssetPrefix))
	}
	if opts.Stores == nil {
		secure := opts.CookieSecure
		opts.Stores = func(w http.ResponseWriter, r *http.Request) theme.Store {
			return theme.NewCookieStore(w, r, secure)
		}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithAPIPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.APIPath = path
	}
}

func WithDefaultRedirect(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultRedirect = path
	}
}

// WithCookieSecure marks the theme cookie Secure. Ignored when WithStores is
// also used.
func WithCookieSecure(secure bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CookieSecure = secure
	}
}

func WithPalette(palette *theme.Palette) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Palette = palette
	}
}

// WithStores replaces the cookie-backed store, e.g. with a shared
// theme.MemoryStore in tests or single-user deployments.
func WithStores(factory StoreFactory) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Stores = factory
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

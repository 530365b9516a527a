// Package landing serves the marketing home page. The testimonial carousel
// is server rendered at ?slide=k so it works without scripts.
package landing

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/components/internal/httpx"
	"github.com/goliatone/go-fitm8/components/themetoggle"
	"github.com/goliatone/go-fitm8/pkg/render"
	"github.com/goliatone/go-fitm8/pkg/renderers/html"
	"github.com/goliatone/go-fitm8/pkg/theme"
)

type Options struct {
	RoutePath  string
	SlideParam string

	Renderers  *render.Registry
	Preference func(*http.Request) theme.Preference
	Logger     *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:  "/",
		SlideParam: "slide",
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
		opts.RoutePath = "/"
	}
	if opts.SlideParam == "" {
		opts.SlideParam = "slide"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Preference == nil {
		toggle := themetoggle.NewOptions(themetoggle.WithLogger(opts.Logger))
		opts.Preference = func(r *http.Request) theme.Preference {
			return themetoggle.Current(toggle, r)
		}
	}
	if opts.Renderers == nil {
		opts.Renderers = render.NewRegistry()
		if renderer, err := html.New(); err == nil {
			_ = opts.Renderers.Register(renderer)
		} else {
			opts.Logger.Error("landing: default html renderer", zap.Error(err))
		}
	}
	return opts
}

func WithRenderers(registry *render.Registry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderers = registry
	}
}

func WithPreference(fn func(*http.Request) theme.Preference) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Preference = fn
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

// Handler builds the page handler with default options plus overrides.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpx.AllowMethods(w, r, http.MethodGet) {
			return
		}
		slide, _ := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(opts.SlideParam)))
		err := httpx.WritePage(w, r, opts.Renderers, http.StatusOK, render.Page{Name: render.PageLanding}, render.RenderOptions{
			Preference: opts.Preference(r),
			Slide:      slide,
			Path:       r.URL.RequestURI(),
		})
		if err != nil {
			opts.Logger.Error("landing render failed", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}

// Mux is satisfied by *http.ServeMux.
type Mux = httpx.Mux

// RegisterRoutes mounts the page at exactly basePath + RoutePath.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("landing: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	pattern := httpx.MountPath(basePath, opts.RoutePath)
	if strings.HasSuffix(pattern, "/") {
		pattern += "{$}"
	}
	mux.Handle(pattern, HandlerWithOptions(opts))
	return pattern, nil
}

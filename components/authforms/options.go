package authforms

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/components/themetoggle"
	"github.com/goliatone/go-fitm8/pkg/model"
	"github.com/goliatone/go-fitm8/pkg/render"
	"github.com/goliatone/go-fitm8/pkg/renderers/html"
	"github.com/goliatone/go-fitm8/pkg/theme"
)

// Navigator performs the post-submit navigation.
type Navigator interface {
	Navigate(w http.ResponseWriter, r *http.Request, target string)
}

// NavigatorFunc adapts a function into a Navigator.
type NavigatorFunc func(w http.ResponseWriter, r *http.Request, target string)

func (fn NavigatorFunc) Navigate(w http.ResponseWriter, r *http.Request, target string) {
	fn(w, r, target)
}

// RedirectNavigator answers with 303 See Other.
var RedirectNavigator Navigator = NavigatorFunc(func(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
})

// SubmitFunc observes accepted submissions. Secret fields are removed from
// values before the call.
type SubmitFunc func(r *http.Request, formID string, values map[string]string)

type Options struct {
	LoginPath       string
	SignupPath      string
	DispatchPath    string
	SuccessRedirect string
	RedirectParam   string

	Renderers  *render.Registry
	Navigator  Navigator
	Preference func(*http.Request) theme.Preference
	Decorators []model.Decorator
	OnSubmit   SubmitFunc
	Logger     *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		LoginPath:       "/login",
		SignupPath:      "/signup",
		DispatchPath:    "/api/forms/{form}/dispatch",
		SuccessRedirect: "/",
		RedirectParam:   "redirect",
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
	if opts.LoginPath == "" {
		opts.LoginPath = "/login"
	}
	if opts.SignupPath == "" {
		opts.SignupPath = "/signup"
	}
	if opts.DispatchPath == "" {
		opts.DispatchPath = "/api/forms/{form}/dispatch"
	}
	if opts.SuccessRedirect == "" {
		opts.SuccessRedirect = "/"
	}
	if opts.RedirectParam == "" {
		opts.RedirectParam = "redirect"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Navigator == nil {
		opts.Navigator = RedirectNavigator
	}
	if opts.Preference == nil {
		toggle := themetoggle.NewOptions(themetoggle.WithLogger(opts.Logger))
		opts.Preference = func(r *http.Request) theme.Preference {
			return themetoggle.Current(toggle, r)
		}
	}
	if opts.Renderers == nil {
		opts.Renderers = defaultRegistry(opts.Logger)
	}
	if opts.Decorators != nil {
		opts.Decorators = append([]model.Decorator{}, opts.Decorators...)
	}
	return opts
}

// defaultRegistry holds only the embedded HTML renderer. A failure leaves the
// registry empty and every page answers 500.
func defaultRegistry(logger *zap.Logger) *render.Registry {
	registry := render.NewRegistry()
	renderer, err := html.New()
	if err != nil {
		logger.Error("authforms: default html renderer", zap.Error(err))
		return registry
	}
	_ = registry.Register(renderer)
	return registry
}

func WithLoginPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LoginPath = path
	}
}

func WithSignupPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SignupPath = path
	}
}

func WithDispatchPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DispatchPath = path
	}
}

// WithSuccessRedirect sets where a valid submission navigates when the form
// carries no redirect of its own.
func WithSuccessRedirect(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SuccessRedirect = path
	}
}

func WithRenderers(registry *render.Registry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderers = registry
	}
}

func WithNavigator(navigator Navigator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Navigator = navigator
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

func WithDecorators(decorators ...model.Decorator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Decorators = append(o.Decorators, decorators...)
	}
}

func WithOnSubmit(fn SubmitFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OnSubmit = fn
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

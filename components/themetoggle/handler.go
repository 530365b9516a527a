package themetoggle

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/components/internal/httpx"
	"github.com/goliatone/go-fitm8/pkg/renderers/html"
	"github.com/goliatone/go-fitm8/pkg/theme"
)

// State is the JSON view of a preference.
type State struct {
	Theme theme.Preference `json:"theme"`
	Class string           `json:"class"`
	Next  theme.Preference `json:"next"`
	Icon  string           `json:"icon"`

	// IconSVG is the rendered markup for Icon.
	IconSVG string            `json:"iconSvg"`
	Vars    map[string]string `json:"vars"`
}

// NewState describes pref with the palette's CSS variables.
func NewState(palette *theme.Palette, pref theme.Preference) State {
	state := State{
		Theme: theme.Preference(pref.String()),
		Class: pref.ClassName(),
		Next:  pref.Toggle(),
		Icon:  "moon",
		Vars:  map[string]string{},
	}
	if pref.IsDark() {
		state.Icon = "sun"
	}
	state.IconSVG = html.Icon(state.Icon)
	if palette != nil {
		if cfg := palette.RendererConfig(pref); cfg != nil && cfg.CSSVars != nil {
			state.Vars = cfg.CSSVars
		}
	}
	return state
}

// Handler builds the toggle handler with default options plus overrides.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds the POST toggle handler from a pre-built Options
// value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpx.AllowMethods(w, r, http.MethodPost) {
			return
		}
		if err := r.ParseForm(); err != nil {
			httpx.WriteError(w, httpx.Errorf(http.StatusBadRequest, "themetoggle: malformed form: %v", err))
			return
		}

		ctrl := controller(opts, w, r)
		var next theme.Preference
		if requested, ok := theme.ParsePreference(r.PostForm.Get(opts.ThemeParam)); ok {
			next = ctrl.Set(requested)
		} else {
			next = ctrl.Toggle(ctrl.Initial())
		}
		opts.Logger.Debug("theme changed", zap.String("theme", next.String()))

		if httpx.WantsJSON(r) {
			httpx.WriteJSON(w, http.StatusOK, NewState(opts.Palette, next))
			return
		}
		target := httpx.SafeRedirect(r.PostForm.Get(opts.RedirectParam), r.Referer(), opts.DefaultRedirect)
		http.Redirect(w, r, target, http.StatusSeeOther)
	})
}

// APIHandlerWithOptions builds the GET handler reporting the current
// preference.
func APIHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpx.AllowMethods(w, r, http.MethodGet) {
			return
		}
		ctrl := controller(opts, nil, r)
		httpx.WriteJSON(w, http.StatusOK, NewState(opts.Palette, ctrl.Initial()))
	})
}

// Current resolves the preference for r without writing anything.
func Current(opts Options, r *http.Request) theme.Preference {
	opts = NewOptions(func(o *Options) { *o = opts })
	return controller(opts, nil, r).Initial()
}

func controller(opts Options, w http.ResponseWriter, r *http.Request) *theme.Controller {
	return theme.NewController(opts.Stores(w, r),
		theme.WithSystemSignal(theme.SystemSignalFromRequest(r)),
		theme.WithLogger(opts.Logger),
	)
}

package authforms

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/components/internal/httpx"
	"github.com/goliatone/go-fitm8/pkg/form"
	"github.com/goliatone/go-fitm8/pkg/model"
	"github.com/goliatone/go-fitm8/pkg/render"
	"github.com/goliatone/go-fitm8/pkg/validation"
)

// Result is the JSON answer to a form POST.
type Result struct {
	Form     string     `json:"form"`
	State    form.State `json:"state"`
	Redirect string     `json:"redirect,omitempty"`
}

// Handler serves one auth form with default options plus overrides.
func Handler(formID string, fns ...OptionFn) http.Handler {
	return HandlerWithOptions(formID, NewOptions(fns...))
}

// HandlerWithOptions serves GET and POST for formID ("login" or "signup").
func HandlerWithOptions(formID string, opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpx.AllowMethods(w, r, http.MethodGet, http.MethodPost) {
			return
		}
		fm, validator, err := resolve(formID, opts)
		if err != nil {
			writeFailure(w, r, opts, err)
			return
		}

		if r.Method != http.MethodPost {
			redirect := r.URL.Query().Get(opts.RedirectParam)
			page(w, r, opts, fm, http.StatusOK, form.InitialState(validator), redirect)
			return
		}

		if err := r.ParseForm(); err != nil {
			writeFailure(w, r, opts, httpx.Errorf(http.StatusBadRequest, "authforms: malformed form: %v", err))
			return
		}
		submitted := form.State{Values: form.FromValues(r.PostForm, validator.Fields())}
		state := form.NewStoreFrom(validator, submitted).Dispatch(form.Submit{})
		redirect := r.PostForm.Get(opts.RedirectParam)

		if !state.Errors.Valid() {
			opts.Logger.Debug("form rejected",
				zap.String("form", formID),
				zap.Strings("fields", state.Errors.Fields()),
			)
			if httpx.WantsJSON(r) {
				httpx.WriteJSON(w, http.StatusUnprocessableEntity, Result{Form: formID, State: redact(fm, state)})
				return
			}
			page(w, r, opts, fm, http.StatusUnprocessableEntity, state, redirect)
			return
		}

		public := redact(fm, state)
		opts.Logger.Info("form accepted", zap.String("form", formID))
		if opts.OnSubmit != nil {
			opts.OnSubmit(r, formID, public.Values.Clone())
		}
		target := httpx.SafeRedirect(redirect, "", opts.SuccessRedirect)
		if httpx.WantsJSON(r) {
			httpx.WriteJSON(w, http.StatusOK, Result{Form: formID, State: public, Redirect: target})
			return
		}
		opts.Navigator.Navigate(w, r, target)
	})
}

func resolve(formID string, opts Options) (model.Form, *validation.FormValidator, error) {
	validator, err := validation.ByName(formID)
	if err != nil {
		return model.Form{}, nil, httpx.StatusError{Code: http.StatusNotFound, Err: err}
	}
	fm, err := model.ByName(formID)
	if err != nil {
		return model.Form{}, nil, httpx.StatusError{Code: http.StatusNotFound, Err: err}
	}
	fm, err = model.Apply(fm, opts.Decorators...)
	if err != nil {
		return model.Form{}, nil, err
	}
	return fm, validator, nil
}

func page(w http.ResponseWriter, r *http.Request, opts Options, fm model.Form, status int, state form.State, redirect string) {
	var hidden map[string]string
	if target := httpx.SafeRedirect(redirect, "", ""); target != "" {
		hidden = render.MergeHiddenFields(nil, render.RedirectField(target))
	}
	err := httpx.WritePage(w, r, opts.Renderers, status, render.Page{Name: fm.ID, Data: fm}, render.RenderOptions{
		Values:     state.Values,
		Errors:     state.Errors,
		Preference: opts.Preference(r),
		Hidden:     hidden,
		Path:       r.URL.Path,
	})
	if err != nil {
		writeFailure(w, r, opts, err)
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, opts Options, err error) {
	status := httpx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		opts.Logger.Error("authforms request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	if httpx.WantsJSON(r) {
		httpx.WriteError(w, err)
		return
	}
	http.Error(w, http.StatusText(status), status)
}

// redact blanks secret values so they never leave the server.
func redact(fm model.Form, state form.State) form.State {
	out := form.State{
		Values:    state.Values.Clone(),
		Errors:    state.Errors.Clone(),
		Submitted: state.Submitted,
		Attempts:  state.Attempts,
	}
	for _, name := range fm.SecretFields() {
		if out.Values.Has(name) {
			out.Values[name] = ""
		}
	}
	return out
}

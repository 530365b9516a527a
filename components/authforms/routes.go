package authforms

import (
	"fmt"

	"github.com/goliatone/go-fitm8/components/internal/httpx"
	"github.com/goliatone/go-fitm8/pkg/validation"
)

// Mux is satisfied by *http.ServeMux.
type Mux = httpx.Mux

// RegisterRoutes mounts the login, signup and dispatch endpoints under
// basePath and returns the registered patterns.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("authforms: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	login := httpx.MountPath(basePath, opts.LoginPath)
	signup := httpx.MountPath(basePath, opts.SignupPath)
	dispatch := httpx.MountPath(basePath, opts.DispatchPath)

	mux.Handle(login, HandlerWithOptions(validation.FormLogin, opts))
	mux.Handle(signup, HandlerWithOptions(validation.FormSignup, opts))
	mux.Handle(dispatch, DispatchHandlerWithOptions(opts))
	return []string{login, signup, dispatch}, nil
}

package themetoggle

import (
	"fmt"

	"github.com/goliatone/go-fitm8/components/internal/httpx"
)

// Mux is satisfied by *http.ServeMux.
type Mux = httpx.Mux

// RegisterRoutes mounts the toggle and read endpoints under basePath and
// returns the registered patterns.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("themetoggle: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	toggle := httpx.MountPath(basePath, opts.RoutePath)
	api := httpx.MountPath(basePath, opts.APIPath)
	mux.Handle(toggle, HandlerWithOptions(opts))
	mux.Handle(api, APIHandlerWithOptions(opts))
	return []string{toggle, api}, nil
}

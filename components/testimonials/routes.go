package testimonials

import (
	"fmt"

	"github.com/goliatone/go-fitm8/components/internal/httpx"
)

// Mux is satisfied by *http.ServeMux.
type Mux = httpx.Mux

// RegisterRoutes mounts the read, stream and action endpoints under basePath.
// They share one session registry.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("testimonials: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	read := httpx.MountPath(basePath, opts.RoutePath)
	stream := httpx.MountPath(basePath, opts.StreamPath)
	action := httpx.MountPath(basePath, opts.ActionPath)

	mux.Handle(read, HandlerWithOptions(opts))
	mux.Handle(stream, StreamHandlerWithOptions(opts))
	mux.Handle(action, ActionHandlerWithOptions(opts))
	return []string{read, stream, action}, nil
}

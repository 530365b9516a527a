// Package hero streams the landing page chart animation as server-sent
// "frame" events, one per tick, ending with the fully drawn chart.
package hero

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/components/internal/httpx"
	"github.com/goliatone/go-fitm8/pkg/animation"
	"github.com/goliatone/go-fitm8/pkg/schedule"
)

// EventFrame names every streamed event.
const EventFrame = "frame"

// MaxDimension bounds the requested canvas size.
const MaxDimension = 4096.0

type Options struct {
	RoutePath string
	Clock     schedule.Clock
	Logger    *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{RoutePath: "/api/hero/stream"}
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
		opts.RoutePath = "/api/hero/stream"
	}
	if opts.Clock == nil {
		opts.Clock = schedule.RealClock{}
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

func WithClock(clock schedule.Clock) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Clock = clock
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

// Handler builds the stream handler with default options plus overrides.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions streams frames sized by the optional width and height
// query parameters until the chart completes or the client disconnects.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !httpx.AllowMethods(w, r, http.MethodGet) {
			return
		}
		query := r.URL.Query()
		width, err := dimension(query.Get("width"), animation.DefaultWidth)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		height, err := dimension(query.Get("height"), animation.DefaultHeight)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		// The ticker must exist before the headers are flushed.
		ctx, cancel := context.WithCancel(r.Context())
		frames := make(chan animation.Frame)
		stop := animation.Run(ctx, opts.Clock, width, height, func(frame animation.Frame) {
			select {
			case frames <- frame:
			case <-ctx.Done():
			}
		})
		defer stop()
		defer cancel()

		stream, err := httpx.NewStream(w)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case frame := <-frames:
				if err := stream.Send(EventFrame, frame); err != nil {
					opts.Logger.Debug("hero stream write failed", zap.Error(err))
					return
				}
				if frame.Done {
					return
				}
			}
		}
	})
}

func dimension(raw string, fallback float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v <= animation.Padding*2 || v > MaxDimension {
		return 0, httpx.Errorf(http.StatusBadRequest, "hero: dimension %q must be a number in (%g, %g]", raw, animation.Padding*2, MaxDimension)
	}
	return v, nil
}

// Mux is satisfied by *http.ServeMux.
type Mux = httpx.Mux

// RegisterRoutes mounts the stream under basePath.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("hero: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	pattern := httpx.MountPath(basePath, opts.RoutePath)
	mux.Handle(pattern, HandlerWithOptions(opts))
	return pattern, nil
}

package testimonials

import (
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/pkg/carousel"
	"github.com/goliatone/go-fitm8/pkg/content"
	"github.com/goliatone/go-fitm8/pkg/schedule"
)

// DefaultKeepAlive is the comment interval that keeps idle streams and their
// sessions alive.
const DefaultKeepAlive = 15 * time.Second

type Options struct {
	RoutePath  string
	StreamPath string
	ActionPath string
	IndexParam string

	Interval   time.Duration
	KeepAlive  time.Duration
	SessionTTL time.Duration

	Content  *content.Store
	Sessions *Sessions
	Clock    schedule.Clock
	Logger   *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:  "/api/testimonials",
		StreamPath: "/api/testimonials/stream",
		ActionPath: "/api/testimonials/{session}/{action}",
		IndexParam: "index",
		Interval:   carousel.DefaultInterval,
		KeepAlive:  DefaultKeepAlive,
		SessionTTL: DefaultSessionTTL,
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
		opts.RoutePath = "/api/testimonials"
	}
	if opts.StreamPath == "" {
		opts.StreamPath = "/api/testimonials/stream"
	}
	if opts.ActionPath == "" {
		opts.ActionPath = "/api/testimonials/{session}/{action}"
	}
	if opts.IndexParam == "" {
		opts.IndexParam = "index"
	}
	if opts.Interval <= 0 {
		opts.Interval = carousel.DefaultInterval
	}
	if opts.KeepAlive <= 0 {
		opts.KeepAlive = DefaultKeepAlive
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	// A keepalive at or past the TTL lets idle sessions expire mid-stream.
	if opts.KeepAlive >= opts.SessionTTL {
		opts.KeepAlive = opts.SessionTTL / 2
	}
	if opts.Content == nil {
		opts.Content = content.NewStore(nil)
	}
	if opts.Sessions == nil {
		opts.Sessions = NewSessions(opts.SessionTTL)
	}
	if opts.Clock == nil {
		opts.Clock = schedule.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithInterval(d time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Interval = d
	}
}

func WithKeepAlive(d time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.KeepAlive = d
	}
}

func WithSessionTTL(d time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SessionTTL = d
	}
}

func WithContent(store *content.Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Content = store
	}
}

// WithSessions shares a registry between handlers built separately.
func WithSessions(sessions *Sessions) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sessions = sessions
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

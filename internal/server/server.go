// Package server assembles the site components into one HTTP handler and
// runs it with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/components/authforms"
	"github.com/goliatone/go-fitm8/components/hero"
	"github.com/goliatone/go-fitm8/components/landing"
	"github.com/goliatone/go-fitm8/components/testimonials"
	"github.com/goliatone/go-fitm8/components/themetoggle"
	"github.com/goliatone/go-fitm8/internal/config"
	"github.com/goliatone/go-fitm8/internal/logging"
	"github.com/goliatone/go-fitm8/pkg/content"
	"github.com/goliatone/go-fitm8/pkg/openapi"
	"github.com/goliatone/go-fitm8/pkg/render"
	"github.com/goliatone/go-fitm8/pkg/renderers/html"
	"github.com/goliatone/go-fitm8/pkg/renderers/tui"
	"github.com/goliatone/go-fitm8/pkg/schedule"
	"github.com/goliatone/go-fitm8/pkg/theme"
)

// AssetsPath is where the stylesheet, script and images are served.
const AssetsPath = "/assets/"

type Option func(*Server)

// WithClock drives autoplay and animation streams from clock.
func WithClock(clock schedule.Clock) Option {
	return func(s *Server) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Server is the assembled site.
type Server struct {
	cfg     config.Config
	logger  *zap.Logger
	clock   schedule.Clock
	content *content.Store
	watcher *content.Watcher
	doc     *openapi3.T
	handler http.Handler
	routes  []string
}

// New loads content and the API document, builds the renderers and mounts
// every component. A content watcher, when enabled, stops with ctx.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger, opts ...Option) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{cfg: cfg, logger: logger, clock: schedule.RealClock{}}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if err := s.loadContent(ctx); err != nil {
		return nil, err
	}
	doc, err := openapi.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	s.doc = doc

	palette, err := theme.NewPalette(theme.DefaultManifest(theme.DefaultAssetPrefix))
	if err != nil {
		return nil, fmt.Errorf("server: palette: %w", err)
	}
	registry, err := s.renderers(palette)
	if err != nil {
		return nil, err
	}
	if err := s.mount(palette, registry); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) loadContent(ctx context.Context) error {
	if s.cfg.Content.Path == "" {
		s.content = content.NewStore(nil)
		return nil
	}
	doc, err := content.LoadFile(s.cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	s.content = content.NewStore(doc)
	if !s.cfg.Content.Watch {
		return nil
	}
	watcher, err := content.Watch(ctx, s.cfg.Content.Path, s.content, s.logger)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	s.watcher = watcher
	return nil
}

func (s *Server) renderers(palette *theme.Palette) (*render.Registry, error) {
	htmlOpts := []html.Option{
		html.WithPalette(palette),
		html.WithContentStore(s.content),
		html.WithReload(s.cfg.Templates.Reload),
	}
	if s.cfg.Templates.Dir != "" {
		htmlOpts = append(htmlOpts, html.WithTemplatesDir(s.cfg.Templates.Dir))
	}
	page, err := html.New(htmlOpts...)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	registry := render.NewRegistry()
	if err := registry.Register(page); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if err := registry.Register(tui.New()); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	return registry, nil
}

func (s *Server) mount(palette *theme.Palette, registry *render.Registry) error {
	mux := http.NewServeMux()
	componentLogger := s.logger.Named("http")

	toggle := themetoggle.NewOptions(
		themetoggle.WithPalette(palette),
		themetoggle.WithCookieSecure(s.cfg.Cookie.Secure),
		themetoggle.WithLogger(componentLogger),
	)
	preference := func(r *http.Request) theme.Preference {
		return themetoggle.Current(toggle, r)
	}

	patterns, err := themetoggle.RegisterRoutesWithOptions(mux, "", toggle)
	if err != nil {
		return err
	}
	s.routes = append(s.routes, patterns...)

	patterns, err = authforms.RegisterRoutes(mux, "",
		authforms.WithRenderers(registry),
		authforms.WithPreference(preference),
		authforms.WithLogger(componentLogger),
	)
	if err != nil {
		return err
	}
	s.routes = append(s.routes, patterns...)

	patterns, err = testimonials.RegisterRoutes(mux, "",
		testimonials.WithContent(s.content),
		testimonials.WithInterval(s.cfg.Carousel.Interval),
		testimonials.WithSessionTTL(s.cfg.Sessions.TTL),
		testimonials.WithKeepAlive(s.cfg.Sessions.KeepAlive),
		testimonials.WithClock(s.clock),
		testimonials.WithLogger(componentLogger),
	)
	if err != nil {
		return err
	}
	s.routes = append(s.routes, patterns...)

	pattern, err := hero.RegisterRoutes(mux, "", hero.WithClock(s.clock), hero.WithLogger(componentLogger))
	if err != nil {
		return err
	}
	s.routes = append(s.routes, pattern)

	pattern, err = landing.RegisterRoutes(mux, "",
		landing.WithRenderers(registry),
		landing.WithPreference(preference),
		landing.WithLogger(componentLogger),
	)
	if err != nil {
		return err
	}
	s.routes = append(s.routes, pattern)

	apiHandler, err := openapi.Handler(s.doc)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	mux.Handle(openapi.RoutePath, apiHandler)
	mux.Handle(AssetsPath, http.StripPrefix(AssetsPath, http.FileServerFS(html.AssetsFS())))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.routes = append(s.routes, openapi.RoutePath, AssetsPath, "/healthz")

	s.handler = logging.Middleware(componentLogger, mux)
	return nil
}

// Handler returns the site handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Routes lists the mounted patterns.
func (s *Server) Routes() []string {
	return append([]string{}, s.routes...)
}

// Content exposes the live copy document.
func (s *Server) Content() *content.Store {
	return s.content
}

// Serve accepts connections on ln until ctx ends, then shuts down within the
// configured grace period.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()
	s.logger.Info("listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Grace)
	defer cancel()
	err := httpServer.Shutdown(shutdownCtx)
	if s.watcher != nil {
		s.watcher.Wait()
	}
	if err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-fitm8/pkg/content"
	"github.com/goliatone/go-fitm8/pkg/model"
	"github.com/goliatone/go-fitm8/pkg/render"
	rendertemplate "github.com/goliatone/go-fitm8/pkg/render/template"
	"github.com/goliatone/go-fitm8/pkg/render/template/gotemplate"
	"github.com/goliatone/go-fitm8/pkg/theme"
)

// Name is the registry name of the HTML renderer.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	reload           bool
	templateRenderer rendertemplate.TemplateRenderer
	palette          *theme.Palette
	store            *content.Store
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Combined with
// WithReload, edits show up without a restart.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithReload disables the parsed template cache.
func WithReload(enabled bool) Option {
	return func(cfg *config) {
		cfg.reload = enabled
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPalette sets the palette used when RenderOptions carry no theme.
func WithPalette(palette *theme.Palette) Option {
	return func(cfg *config) {
		if palette != nil {
			cfg.palette = palette
		}
	}
}

// WithContentStore sets where the landing copy and the shared header and
// footer text are read from on every render.
func WithContentStore(store *content.Store) Option {
	return func(cfg *config) {
		if store != nil {
			cfg.store = store
		}
	}
}

// Renderer renders the landing and auth pages through a layout template.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	palette   *theme.Palette
	store     *content.Store
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.palette == nil {
		palette, err := theme.NewPalette(nil)
		if err != nil {
			return nil, fmt.Errorf("html renderer: default palette: %w", err)
		}
		cfg.palette = palette
	}
	if cfg.store == nil {
		cfg.store = content.NewStore(nil)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOpts := []gotemplate.Option{
			gotemplate.WithReload(cfg.reload),
			gotemplate.WithTemplateFunc(templateFilters()),
		}
		switch {
		case cfg.templateDir != "":
			if _, err := os.Stat(cfg.templateDir); err != nil {
				return nil, fmt.Errorf("html renderer: templates dir: %w", err)
			}
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(cfg.templateDir))
		case cfg.templateFS != nil:
			engineOpts = append(engineOpts, gotemplate.WithFS(cfg.templateFS))
		default:
			engineOpts = append(engineOpts, gotemplate.WithFS(TemplatesFS()))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, palette: cfg.palette, store: cfg.store}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render renders page. The landing page takes an optional *content.Content
// (nil reads the content store); the auth pages expect a model.Form.
func (r *Renderer) Render(ctx context.Context, page render.Page, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := opts.Theme
	if cfg == nil {
		cfg = r.palette.RendererConfig(opts.Preference)
	}

	var (
		doc  *content.Content
		body string
		err  error
	)
	switch page.Name {
	case render.PageLanding:
		doc, err = r.landingContent(page.Data)
		if err != nil {
			return nil, err
		}
		body, err = r.renderLanding(cfg, doc, opts)
	case render.PageLogin, render.PageSignup:
		form, ok := page.Data.(model.Form)
		if !ok {
			return nil, fmt.Errorf("html renderer: page %q expects model.Form, got %T", page.Name, page.Data)
		}
		doc = r.store.Get()
		body, err = r.renderAuth(cfg, form, opts)
	default:
		return nil, fmt.Errorf("html renderer: unknown page %q", page.Name)
	}
	if err != nil {
		return nil, err
	}

	layout := newLayoutView(page, cfg, opts, doc, body)
	result, err := r.templates.RenderTemplate(partial(cfg, theme.PartialLayout), layout)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render layout: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) renderLanding(cfg *gotheme.RendererConfig, doc *content.Content, opts render.RenderOptions) (string, error) {
	view := newLandingView(doc, opts.Slide)
	out, err := r.templates.RenderTemplate(partial(cfg, theme.PartialLanding), view)
	if err != nil {
		return "", fmt.Errorf("html renderer: render landing: %w", err)
	}
	return out, nil
}

func (r *Renderer) renderAuth(cfg *gotheme.RendererConfig, form model.Form, opts render.RenderOptions) (string, error) {
	view := newFormView(form, opts)
	fieldTemplate := partial(cfg, theme.PartialField)
	for i := range view.Fields {
		markup, err := r.templates.RenderTemplate(fieldTemplate, view.Fields[i])
		if err != nil {
			return "", fmt.Errorf("html renderer: render field %q: %w", view.Fields[i].Name, err)
		}
		view.Fields[i].HTML = markup
	}
	out, err := r.templates.RenderTemplate(partial(cfg, theme.PartialAuth), map[string]any{"form": view})
	if err != nil {
		return "", fmt.Errorf("html renderer: render form %q: %w", form.ID, err)
	}
	return out, nil
}

func (r *Renderer) landingContent(data any) (*content.Content, error) {
	switch v := data.(type) {
	case nil:
		return r.store.Get(), nil
	case *content.Content:
		if v == nil {
			return r.store.Get(), nil
		}
		return v, nil
	case content.Content:
		return &v, nil
	default:
		return nil, fmt.Errorf("html renderer: landing page expects *content.Content, got %T", data)
	}
}

var defaultPartials = map[string]string{
	theme.PartialLayout:  "layout.tpl",
	theme.PartialLanding: "pages/landing.tpl",
	theme.PartialAuth:    "pages/auth.tpl",
	theme.PartialField:   "partials/field.tpl",
}

func partial(cfg *gotheme.RendererConfig, key string) string {
	if cfg != nil {
		if name := strings.TrimSpace(cfg.Partials[key]); name != "" {
			return name
		}
	}
	return defaultPartials[key]
}

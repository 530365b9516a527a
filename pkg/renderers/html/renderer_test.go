package html_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-fitm8/pkg/content"
	"github.com/goliatone/go-fitm8/pkg/form"
	"github.com/goliatone/go-fitm8/pkg/model"
	"github.com/goliatone/go-fitm8/pkg/render"
	htmlrenderer "github.com/goliatone/go-fitm8/pkg/renderers/html"
	"github.com/goliatone/go-fitm8/pkg/theme"
)

func newRenderer(t *testing.T, opts ...htmlrenderer.Option) *htmlrenderer.Renderer {
	t.Helper()
	renderer, err := htmlrenderer.New(opts...)
	require.NoError(t, err)
	return renderer
}

func renderPage(t *testing.T, renderer *htmlrenderer.Renderer, page render.Page, opts render.RenderOptions) string {
	t.Helper()
	out, err := renderer.Render(context.Background(), page, opts)
	require.NoError(t, err)
	return string(out)
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := newRenderer(t)
	require.Equal(t, "html", renderer.Name())
	require.Equal(t, "text/html; charset=utf-8", renderer.ContentType())
}

func TestRenderer_LoginShowsInlineErrors(t *testing.T) {
	renderer := newRenderer(t)

	out := renderPage(t, renderer, render.Page{Name: render.PageLogin, Data: model.Login()}, render.RenderOptions{
		Values: form.FormState{"email": "not-an-email", "password": "hunter22"},
		Errors: form.ErrorMap{"email": "Email is invalid", "password": "Password is required"},
	})

	require.Contains(t, out, "Welcome back")
	require.Contains(t, out, `action="/login"`)
	require.Contains(t, out, "Email is invalid")
	require.Contains(t, out, "Password is required")
	require.Contains(t, out, `id="login-email-error"`)
	require.Contains(t, out, `aria-invalid="true"`)
	require.Contains(t, out, `value="not-an-email"`)
	require.Contains(t, out, "Forgot password?")
	require.NotContains(t, out, "hunter22")
}

func TestRenderer_CleanFieldHasNoErrorChrome(t *testing.T) {
	renderer := newRenderer(t)

	out := renderPage(t, renderer, render.Page{Name: render.PageLogin, Data: model.Login()}, render.RenderOptions{
		Errors: form.ErrorMap{"password": "Password is required"},
	})

	require.NotContains(t, out, `id="login-email-error"`)
	require.Equal(t, 1, strings.Count(out, `role="alert"`))
}

func TestRenderer_SignupEchoesValuesExceptPasswords(t *testing.T) {
	renderer := newRenderer(t)

	out := renderPage(t, renderer, render.Page{Name: render.PageSignup, Data: model.Signup()}, render.RenderOptions{
		Values: form.FormState{
			"name":            "Alex Johnson",
			"gender":          "non-binary",
			"password":        "marathon42",
			"confirmPassword": "marathon43",
		},
		Errors: form.ErrorMap{"confirmPassword": "Passwords do not match"},
		Hidden: map[string]string{"redirect": "/welcome"},
	})

	require.Contains(t, out, "Create an account")
	require.Contains(t, out, `value="Alex Johnson"`)
	require.Contains(t, out, `<option value="non-binary" selected>`)
	require.Contains(t, out, "Passwords do not match")
	require.Contains(t, out, `name="redirect" value="/welcome"`)
	require.Contains(t, out, "field--half")
	require.Contains(t, out, `min="13"`)
	require.NotContains(t, out, "marathon42")
	require.NotContains(t, out, "marathon43")
}

func TestRenderer_ThemePreference(t *testing.T) {
	renderer := newRenderer(t)

	dark := renderPage(t, renderer, render.Page{Name: render.PageLogin, Data: model.Login()}, render.RenderOptions{
		Preference: theme.Dark,
	})
	require.Contains(t, dark, `class="dark" data-theme="dark"`)
	require.Contains(t, dark, `name="theme" value="light"`)
	require.Contains(t, dark, "--background: #0f172a;")
	require.Contains(t, dark, `href="/assets/fitm8.css"`)

	light := renderPage(t, renderer, render.Page{Name: render.PageLogin, Data: model.Login()}, render.RenderOptions{})
	require.Contains(t, light, `data-theme="light"`)
	require.Contains(t, light, `name="theme" value="dark"`)
	require.Contains(t, light, `name="redirect" value="/login"`)
}

func TestRenderer_ExplicitThemeConfigWins(t *testing.T) {
	renderer := newRenderer(t)
	palette := theme.MustPalette(theme.DefaultManifest("/static"))

	out := renderPage(t, renderer, render.Page{Name: render.PageLogin, Data: model.Login()}, render.RenderOptions{
		Theme: palette.RendererConfig(theme.Dark),
	})
	require.Contains(t, out, `data-theme="dark"`)
	require.Contains(t, out, `href="/static/fitm8.css"`)
	require.Contains(t, out, `src="/static/fitm8.js"`)
}

func TestRenderer_Landing(t *testing.T) {
	renderer := newRenderer(t)

	out := renderPage(t, renderer, render.Page{Name: render.PageLanding}, render.RenderOptions{
		Slide: 4,
		Path:  "/",
	})

	doc := content.Default()
	require.Contains(t, out, "<title>FitM8</title>")
	require.Contains(t, out, doc.Hero.Badge)
	require.Contains(t, out, doc.Features.Items[0].Title)
	require.Contains(t, out, "linear-gradient(135deg, #3b82f6, #22d3ee)")
	require.Contains(t, out, doc.Dashboard.Coach.Message)
	require.Contains(t, out, "height: 90%")
	// Slide 4 wraps to the second testimonial.
	require.Contains(t, out, "Sarah Williams")
	require.Contains(t, out, `data-index="1" data-total="3"`)
	require.Contains(t, out, `href="?slide=0#testimonials"`)
	require.Contains(t, out, `href="?slide=2#testimonials"`)
	require.Equal(t, 5, strings.Count(out, `<span class="star">`))
	require.Contains(t, out, `data-hero-chart`)
	require.Contains(t, out, doc.Copyright)
}

func TestRenderer_LandingUsesContentStore(t *testing.T) {
	doc := content.Default()
	doc.Hero.Badge = "Hot reloaded badge"
	store := content.NewStore(doc)
	renderer := newRenderer(t, htmlrenderer.WithContentStore(store))

	out := renderPage(t, renderer, render.Page{Name: render.PageLanding}, render.RenderOptions{})
	require.Contains(t, out, "Hot reloaded badge")
}

func TestRenderer_Errors(t *testing.T) {
	renderer := newRenderer(t)
	ctx := context.Background()

	_, err := renderer.Render(ctx, render.Page{Name: "pricing"}, render.RenderOptions{})
	require.ErrorContains(t, err, `unknown page "pricing"`)

	_, err = renderer.Render(ctx, render.Page{Name: render.PageLogin, Data: "login"}, render.RenderOptions{})
	require.ErrorContains(t, err, "expects model.Form")

	_, err = renderer.Render(ctx, render.Page{Name: render.PageLanding, Data: 42}, render.RenderOptions{})
	require.ErrorContains(t, err, "expects *content.Content")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = renderer.Render(cancelled, render.Page{Name: render.PageLanding}, render.RenderOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRenderer_ThemePartialsSelectTemplates(t *testing.T) {
	files := fstest.MapFS{
		"layout.tpl":         {Data: []byte(`[{{ page }}]{{ body|safe }}`)},
		"pages/landing.tpl":  {Data: []byte(`landing`)},
		"pages/auth.tpl":     {Data: []byte(`{% for field in form.fields %}{{ field.html|safe }}{% endfor %}`)},
		"partials/field.tpl": {Data: []byte(`<{{ name }}>`)},
		"compact/field.tpl":  {Data: []byte(`({{ name }})`)},
	}
	renderer := newRenderer(t, htmlrenderer.WithTemplatesFS(files))

	cfg := theme.MustPalette(nil).RendererConfig(theme.Light)
	cfg.Partials[theme.PartialField] = "compact/field.tpl"

	out := renderPage(t, renderer, render.Page{Name: render.PageLogin, Data: model.Login()}, render.RenderOptions{Theme: cfg})
	require.Equal(t, "[login](email)(password)", out)
}

func TestAssetsFS(t *testing.T) {
	for _, name := range []string{htmlrenderer.StylesheetName, htmlrenderer.ScriptName, htmlrenderer.PlaceholderSVG} {
		data, err := fs.ReadFile(htmlrenderer.AssetsFS(), name)
		require.NoError(t, err, name)
		require.NotEmpty(t, data, name)
	}
	script, err := fs.ReadFile(htmlrenderer.AssetsFS(), htmlrenderer.ScriptName)
	require.NoError(t, err)
	require.Contains(t, string(script), "/api/testimonials/")
}

func TestIcon(t *testing.T) {
	require.Contains(t, htmlrenderer.Icon("heart"), `class="icon icon-heart"`)
	require.Empty(t, htmlrenderer.Icon("unknown"))
	require.Equal(t, 3, strings.Count(htmlrenderer.Stars(3), "<svg"))
}

package render

import (
	"context"
)

// Page names understood by the site renderers.
const (
	PageLanding = "landing"
	PageLogin   = "login"
	PageSignup  = "signup"
)

// Page identifies what to render. Data carries the page payload: the site
// content for the landing page, a model.Form for the auth pages.
type Page struct {
	Name string
	Data any
}

// Renderer converts a page plus the current interaction state into bytes
// (HTML, plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page Page, options RenderOptions) ([]byte, error)
}

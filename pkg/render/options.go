package render

import (
	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-fitm8/pkg/form"
	"github.com/goliatone/go-fitm8/pkg/theme"
)

// RenderOptions describe per-request state renderers fold into the page
// without mutating the page payload.
type RenderOptions struct {
	// Values pre-populates form controls by field name. Secret fields are
	// never echoed, whatever this map holds.
	Values form.FormState
	// Errors surfaces validation feedback keyed by field name. Renderers show
	// the message inline and mark the control invalid.
	Errors form.ErrorMap
	// Theme is the resolved token set for Preference. Renderers fall back to
	// their own palette when nil.
	Theme *gotheme.RendererConfig
	// Preference selects the light or dark class on the document root.
	Preference theme.Preference
	// Hidden inputs emitted inside forms (redirect targets, tokens).
	Hidden map[string]string
	// Slide is the testimonial index shown on first paint.
	Slide int
	// Path is the request path the theme toggle posts back to.
	Path string
}

// Package fitm8 exposes the embedded site bundle and the shared form types so
// applications can mount the pages without importing every subpackage.
package fitm8

import (
	"io/fs"

	"github.com/goliatone/go-fitm8/pkg/form"
	"github.com/goliatone/go-fitm8/pkg/model"
	"github.com/goliatone/go-fitm8/pkg/openapi"
	"github.com/goliatone/go-fitm8/pkg/render"
	"github.com/goliatone/go-fitm8/pkg/renderers/html"
)

// RenderOptions describes per-request overrides that renderers use to prefill
// values or surface validation errors.
type RenderOptions = render.RenderOptions

// Form is the declarative model of an auth form.
type Form = model.Form

// Validator validates a form submission.
type Validator = form.Validator

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// AssetsFS exposes the stylesheet, script and images.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(fitm8.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return html.AssetsFS()
}

// OpenAPIDocument returns the raw YAML description of the HTTP surface.
func OpenAPIDocument() []byte {
	return openapi.Raw()
}

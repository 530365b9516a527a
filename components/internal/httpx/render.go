package httpx

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-fitm8/pkg/render"
)

// WritePage negotiates a renderer from the Accept header, renders page and
// writes it with status. Nothing is written when rendering fails.
func WritePage(w http.ResponseWriter, r *http.Request, registry *render.Registry, status int, page render.Page, options render.RenderOptions) error {
	if registry == nil {
		return fmt.Errorf("httpx: no renderer registry")
	}
	renderer, err := registry.Negotiate(r.Header.Get("Accept"))
	if err != nil {
		return err
	}
	body, err := renderer.Render(r.Context(), page, options)
	if err != nil {
		return fmt.Errorf("httpx: render %s with %s: %w", page.Name, renderer.Name(), err)
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Vary", "Accept, Cookie")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(body)
	}
	return nil
}

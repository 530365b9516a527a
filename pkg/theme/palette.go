package theme

import (
	"fmt"
	"path"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

const (
	// PaletteName is the manifest name registered for the site.
	PaletteName = "fitm8"
	// DefaultAssetPrefix is where the stylesheet and script are served.
	DefaultAssetPrefix = "/assets"
)

// Asset keys resolvable through RendererConfig.AssetURL.
const (
	AssetStylesheet = "site.stylesheet"
	AssetScript     = "site.script"
)

// Partial keys resolvable through RendererConfig.Partials.
const (
	PartialLayout  = "site.layout"
	PartialLanding = "pages.landing"
	PartialAuth    = "pages.auth"
	PartialField   = "forms.field"
)

// Palette wraps the go-theme manifest describing the light and dark token
// sets.
type Palette struct {
	manifest *gotheme.Manifest
}

// DefaultManifest returns the site manifest.
func DefaultManifest(assetPrefix string) *gotheme.Manifest {
	if strings.TrimSpace(assetPrefix) == "" {
		assetPrefix = DefaultAssetPrefix
	}
	return &gotheme.Manifest{
		Name:    PaletteName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"font-sans":      "Inter, ui-sans-serif, system-ui, sans-serif",
			"radius":         "0.75rem",
			"primary":        "#2563eb",
			"primary-strong": "#1d4ed8",
			"accent":         "#06b6d4",
			"danger":         "#ef4444",
			"success":        "#22c55e",
		},
		Templates: map[string]string{
			PartialLayout:  "layout.tpl",
			PartialLanding: "pages/landing.tpl",
			PartialAuth:    "pages/auth.tpl",
			PartialField:   "partials/field.tpl",
		},
		Assets: gotheme.Assets{
			Prefix: assetPrefix,
			Files: map[string]string{
				AssetStylesheet: "fitm8.css",
				AssetScript:     "fitm8.js",
			},
		},
		Variants: map[string]gotheme.Variant{
			string(Light): {
				Tokens: map[string]string{
					"background": "#f8fafc",
					"foreground": "#0f172a",
					"muted":      "#64748b",
					"card":       "#ffffff",
					"border":     "#e2e8f0",
					"input":      "#ffffff",
				},
			},
			string(Dark): {
				Tokens: map[string]string{
					"background": "#0f172a",
					"foreground": "#f8fafc",
					"muted":      "#94a3b8",
					"card":       "#1e293b",
					"border":     "#334155",
					"input":      "#1e293b",
				},
			},
		},
	}
}

// NewPalette validates manifest by registering it with a go-theme registry.
// A nil manifest selects DefaultManifest.
func NewPalette(manifest *gotheme.Manifest) (*Palette, error) {
	if manifest == nil {
		manifest = DefaultManifest("")
	}
	registry := gotheme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("theme: register manifest %q: %w", manifest.Name, err)
	}
	for _, variant := range []Preference{Light, Dark} {
		if _, ok := manifest.Variants[string(variant)]; !ok {
			return nil, fmt.Errorf("theme: manifest %q missing variant %q", manifest.Name, variant)
		}
	}
	return &Palette{manifest: manifest}, nil
}

// MustPalette is NewPalette that panics on error.
func MustPalette(manifest *gotheme.Manifest) *Palette {
	p, err := NewPalette(manifest)
	if err != nil {
		panic(err)
	}
	return p
}

// Manifest returns the underlying manifest.
func (p *Palette) Manifest() *gotheme.Manifest {
	return p.manifest
}

// RendererConfig merges base and variant tokens for pref and derives the
// matching CSS custom properties.
func (p *Palette) RendererConfig(pref Preference) *gotheme.RendererConfig {
	variantName := pref.String()
	variant := p.manifest.Variants[variantName]

	tokens := make(map[string]string, len(p.manifest.Tokens)+len(variant.Tokens))
	for key, value := range p.manifest.Tokens {
		tokens[key] = value
	}
	for key, value := range variant.Tokens {
		tokens[key] = value
	}

	partials := make(map[string]string, len(p.manifest.Templates)+len(variant.Templates))
	for key, value := range p.manifest.Templates {
		partials[key] = value
	}
	for key, value := range variant.Templates {
		partials[key] = value
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &gotheme.RendererConfig{
		Theme:    p.manifest.Name,
		Variant:  variantName,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: p.assetResolver(variant),
	}
}

func (p *Palette) assetResolver(variant gotheme.Variant) func(string) string {
	prefix := p.manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}
	files := make(map[string]string, len(p.manifest.Assets.Files)+len(variant.Assets.Files))
	for key, value := range p.manifest.Assets.Files {
		files[key] = value
	}
	for key, value := range variant.Assets.Files {
		files[key] = value
	}
	return func(key string) string {
		if key == "" {
			return ""
		}
		file, ok := files[key]
		if !ok {
			file = key
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") {
			return file
		}
		return path.Join("/", prefix, file)
	}
}

// CSSVarsStyle renders CSS custom properties as a sorted declaration list.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteByte(';')
	}
	return b.String()
}

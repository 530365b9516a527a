package theme_test

import (
	"testing"

	"github.com/goliatone/go-fitm8/pkg/theme"
)

func TestPalette_RendererConfigMergesVariantTokens(t *testing.T) {
	palette, err := theme.NewPalette(nil)
	if err != nil {
		t.Fatalf("new palette: %v", err)
	}

	dark := palette.RendererConfig(theme.Dark)
	if dark.Theme != theme.PaletteName || dark.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", dark.Theme, dark.Variant)
	}
	if dark.Tokens["background"] != "#0f172a" {
		t.Fatalf("dark background not merged: %q", dark.Tokens["background"])
	}
	if dark.Tokens["primary"] != "#2563eb" {
		t.Fatalf("base tokens not inherited: %q", dark.Tokens["primary"])
	}
	if dark.CSSVars["--background"] != dark.Tokens["background"] {
		t.Fatalf("css vars not derived from tokens")
	}
	if dark.Partials[theme.PartialField] != "partials/field.tpl" {
		t.Fatalf("partials not propagated: %#v", dark.Partials)
	}

	light := palette.RendererConfig(theme.Preference(""))
	if light.Variant != "light" || light.Tokens["background"] != "#f8fafc" {
		t.Fatalf("zero preference must resolve the light variant, got %s", light.Variant)
	}
}

func TestPalette_AssetURL(t *testing.T) {
	palette := theme.MustPalette(theme.DefaultManifest("/static"))
	cfg := palette.RendererConfig(theme.Light)

	if got := cfg.AssetURL(theme.AssetStylesheet); got != "/static/fitm8.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("logo.svg"); got != "/static/logo.svg" {
		t.Fatalf("unexpected fallback url %q", got)
	}
	if got := cfg.AssetURL(""); got != "" {
		t.Fatalf("expected empty url for empty key, got %q", got)
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := theme.CSSVarsStyle(map[string]string{"--b": "2", "--a": "1"})
	if got != "--a: 1; --b: 2;" {
		t.Fatalf("unexpected style %q", got)
	}
	if theme.CSSVarsStyle(nil) != "" {
		t.Fatalf("expected empty style")
	}
}

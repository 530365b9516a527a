package html

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	StylesheetName = "fitm8.css"
	ScriptName     = "fitm8.js"
	PlaceholderSVG = "placeholder.svg"
)

// TemplatesFS exposes the embedded template bundle rooted at the template
// directory, so partial names match the theme manifest.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the stylesheet, script and images for serving under the
// theme asset prefix.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// Package template defines the engine seam the HTML renderer renders
// through, with a pongo2 implementation in the gotemplate subpackage.
package template

// Package themetoggle serves the light/dark switch: a form-post endpoint that
// works without scripts and a JSON read endpoint used by the page script.
package themetoggle

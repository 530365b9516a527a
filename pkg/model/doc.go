// Package model describes the authentication forms as data so every renderer
// (HTML templates, terminal prompts) draws the same fields in the same order.
// Field names match the validators in pkg/validation; the model carries only
// presentation concerns such as labels, placeholders, icons and input types.
package model

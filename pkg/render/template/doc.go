// Package template defines the renderer-agnostic template interface. The
// gotemplate subpackage provides the pongo2-backed implementation.
package template

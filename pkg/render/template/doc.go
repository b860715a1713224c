// Package template defines the engine seam output renderers render through.
// The pongo subpackage provides the pongo2-backed implementation.
package template

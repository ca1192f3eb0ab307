// Package template defines the renderer-agnostic template contract used to
// turn constraint feedback into markup. The pongo subpackage provides the
// default pongo2-backed engine.
package template

// Package template defines the template execution contract used by the HTML
// renderers. The pongo2-backed implementation lives in the gotemplate
// subpackage.
package template

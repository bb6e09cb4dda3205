// Package pairfinder wires the location pair finder for embedding: a search
// controller, its HTML and text renderers, and the pairing service client.
package pairfinder

import (
	"fmt"

	"github.com/goliatone/go-pairfinder/pkg/controller"
	"github.com/goliatone/go-pairfinder/pkg/pairing"
	"github.com/goliatone/go-pairfinder/pkg/render"
	"github.com/goliatone/go-pairfinder/pkg/renderers/tui"
	"github.com/goliatone/go-pairfinder/pkg/renderers/vanilla"
)

// SearchRequest aliases pairing.SearchRequest for top-level callers.
type SearchRequest = pairing.SearchRequest

// PairResult aliases pairing.PairResult.
type PairResult = pairing.PairResult

// Renderer names registered by Renderers.
const (
	RendererHTML = "html"
	RendererText = "text"
)

// Renderers returns a registry holding the HTML renderer (the default) and
// the plain text renderer.
func Renderers(options ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(tui.NewTextRenderer()); err != nil {
		return nil, err
	}
	return registry, nil
}

// NewController builds a controller for surface that renders with the named
// renderer from registry. A blank name selects the registry default and a nil
// submitter uses a default pairing client.
func NewController(cfg controller.Config, surface controller.Surface, submitter pairing.Submitter, registry *render.Registry, rendererName string, opts ...controller.Option) (*controller.Controller, error) {
	if registry == nil {
		return nil, fmt.Errorf("pairfinder: renderer registry is required")
	}
	renderer, err := registry.Resolve(rendererName)
	if err != nil {
		return nil, fmt.Errorf("pairfinder: %w", err)
	}
	if submitter == nil {
		submitter = pairing.NewClient()
	}
	return controller.New(cfg, surface, submitter, renderer, opts...)
}

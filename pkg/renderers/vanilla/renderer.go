package vanilla

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pairfinder/pkg/page"
	"github.com/goliatone/go-pairfinder/pkg/pairing"
	"github.com/goliatone/go-pairfinder/pkg/render"
	rendertemplate "github.com/goliatone/go-pairfinder/pkg/render/template"
	"github.com/goliatone/go-pairfinder/pkg/render/template/gotemplate"
)

// ContentType is the media type of everything this renderer produces.
const ContentType = "text/html; charset=utf-8"

const (
	resultsTemplate = "templates/results.tmpl"
	pageTemplate    = "templates/page.tmpl"
)

type Option func(*config)

type config struct {
	templateFS    fs.FS
	theme         *theme.RendererConfig
	title         string
	stylesheetURL string
	actionURL     string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTheme exposes theme tokens to the page as CSS custom properties.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithTitle sets the page heading and document title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(title) != "" {
			cfg.title = title
		}
	}
}

// WithStylesheetURL sets where the page loads its stylesheet from.
func WithStylesheetURL(url string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(url) != "" {
			cfg.stylesheetURL = url
		}
	}
}

// WithActionURL sets the form action of the page.
func WithActionURL(url string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(url) != "" {
			cfg.actionURL = url
		}
	}
}

// Renderer produces the HTML results fragment and the full search page.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	cfg       config
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:    TemplatesFS(),
		title:         "Location Pair Finder",
		stylesheetURL: "/assets/" + StylesheetName,
		actionURL:     "/",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine, err := gotemplate.New(
		gotemplate.WithFS(cfg.templateFS),
		gotemplate.WithExtension(".tmpl"),
	)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
	}

	return &Renderer{templates: engine, cfg: cfg}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return ContentType
}

// Render produces the results fragment for outcome.
func (r *Renderer) Render(_ context.Context, outcome render.Outcome) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	view := sanitizeView(render.BuildView(outcome))
	result, err := r.templates.RenderTemplate(resultsTemplate, map[string]any{"view": view})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render results: %w", err)
	}
	return []byte(result), nil
}

// RenderPage produces the full HTML document for p.
func (r *Renderer) RenderPage(_ context.Context, p *page.Page) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if p == nil {
		p = page.New()
	}
	result, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":              r.cfg.title,
		"stylesheet_url":     r.cfg.stylesheetURL,
		"action_url":         r.cfg.actionURL,
		"region_placeholder": page.RegionPlaceholder,
		"theme":              themeContext(r.cfg.theme),
		"page":               p,
		"results":            resultsMarkup(p),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	return []byte(result), nil
}

// resultsMarkup returns the results area content as trusted markup. Content
// produced by a non-HTML renderer is escaped and kept preformatted.
func resultsMarkup(p *page.Page) string {
	if p.Results == "" {
		return ""
	}
	if strings.HasPrefix(p.ResultsType, "text/html") {
		return p.Results
	}
	return "<pre>" + html.EscapeString(p.Results) + "</pre>"
}

func sanitizeView(view render.View) render.View {
	view.Error = stripMarkup(view.Error)
	view.Message = stripMarkup(view.Message)
	for i := range view.Blocks {
		block := &view.Blocks[i]
		block.Location1 = sanitizeLocation(block.Location1)
		block.Location2 = sanitizeLocation(block.Location2)
		block.DistanceText = stripMarkup(block.DistanceText)
		block.DurationText = stripMarkup(block.DurationText)
	}
	return view
}

func sanitizeLocation(ref pairing.LocationRef) pairing.LocationRef {
	return pairing.LocationRef{
		Type:    stripMarkup(ref.Type),
		Name:    stripMarkup(ref.Name),
		Address: stripMarkup(ref.Address),
	}
}

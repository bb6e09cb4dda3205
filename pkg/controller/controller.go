package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-pairfinder/pkg/pairing"
	"github.com/goliatone/go-pairfinder/pkg/render"
)

const (
	// UnsetEndpoint is the placeholder shipped in default configuration.
	UnsetEndpoint = "PASTE_YOUR_URL_HERE"
	// NewFieldPlaceholder is the hint shown in fields added by OnAddField.
	NewFieldPlaceholder = "Another location type..."
)

// Form exposes the input fields of a surface.
type Form interface {
	Region() string
	// LocationTypes returns the raw value of every location-type field, in
	// display order.
	LocationTypes() []string
	AppendLocationType(placeholder string)
}

// View exposes the output side of a surface.
type View interface {
	ClearResults()
	SetLoading(visible bool)
	SetTriggerEnabled(enabled bool)
	// ShowResults replaces the whole results area.
	ShowResults(contentType string, content []byte)
	// Notify shows a blocking notification.
	Notify(message string)
}

// Surface is the host page or terminal session the controller drives.
type Surface interface {
	Form
	View
}

// Config carries the injected service endpoint.
type Config struct {
	Endpoint string
}

// Configured reports whether Endpoint is set to a real value.
func (c Config) Configured() bool {
	endpoint := strings.TrimSpace(c.Endpoint)
	return endpoint != "" && endpoint != UnsetEndpoint
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller runs the request lifecycle for one surface.
type Controller struct {
	cfg       Config
	surface   Surface
	submitter pairing.Submitter
	renderer  render.Renderer
	logger    *zap.Logger

	mu    sync.Mutex
	state State
}

// New wires a Controller. The controller starts Idle.
func New(cfg Config, surface Surface, submitter pairing.Submitter, renderer render.Renderer, opts ...Option) (*Controller, error) {
	if surface == nil {
		return nil, errors.New("controller: surface is required")
	}
	if submitter == nil {
		return nil, errors.New("controller: submitter is required")
	}
	if renderer == nil {
		return nil, errors.New("controller: renderer is required")
	}
	c := &Controller{
		cfg:       cfg,
		surface:   surface,
		submitter: submitter,
		renderer:  renderer,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// State returns the current UI state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnAddField appends one empty location-type field to the surface.
func (c *Controller) OnAddField() {
	c.surface.AppendLocationType(NewFieldPlaceholder)
}

// OnSubmit runs one submission. Configuration and validation failures are
// notified on the surface and returned without contacting the service.
// Service and transport failures are rendered inline and do not produce an
// error. The returned error is otherwise a rendering failure or
// ErrSubmissionInFlight.
func (c *Controller) OnSubmit(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if !c.cfg.Configured() {
		err := &ConfigurationError{Endpoint: c.cfg.Endpoint}
		c.surface.Notify(err.UserMessage())
		c.logger.Warn("submission refused", zap.Error(err))
		return err
	}

	req, err := Collect(c.surface)
	if err != nil {
		if msg, ok := Notification(err); ok {
			c.surface.Notify(msg)
		}
		c.logger.Debug("submission rejected", zap.Error(err))
		return err
	}

	c.mu.Lock()
	started := c.state.beginLoading()
	c.mu.Unlock()
	if !started {
		return ErrSubmissionInFlight
	}

	c.surface.ClearResults()
	c.surface.SetLoading(true)
	c.surface.SetTriggerEnabled(false)
	defer c.finish()

	pairs, err := c.submitter.FindPairs(ctx, c.cfg.Endpoint, req)
	if err != nil {
		fields := []zap.Field{
			zap.String("region", req.Region),
			zap.Strings("location_types", req.LocationTypes),
			zap.Error(err),
		}
		var svc *pairing.ServiceError
		if errors.As(err, &svc) {
			fields = append(fields, zap.String("status", svc.Status()))
		}
		c.logger.Info("pairing exchange failed", fields...)
	} else {
		c.logger.Info("pairing exchange completed",
			zap.String("region", req.Region),
			zap.Int("pairs", len(pairs)),
		)
	}

	return c.Render(ctx, render.FromExchange(pairs, err))
}

// Render replaces the results area with the rendering of outcome.
func (c *Controller) Render(ctx context.Context, outcome render.Outcome) error {
	if ctx == nil {
		ctx = context.Background()
	}
	content, err := c.renderer.Render(ctx, outcome)
	if err != nil {
		return fmt.Errorf("controller: render %s: %w", c.renderer.Name(), err)
	}
	c.surface.ShowResults(c.renderer.ContentType(), content)
	return nil
}

func (c *Controller) finish() {
	c.surface.SetLoading(false)
	c.surface.SetTriggerEnabled(true)

	c.mu.Lock()
	c.state.finishLoading()
	c.mu.Unlock()
}

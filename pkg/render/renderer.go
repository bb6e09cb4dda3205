package render

import (
	"context"
)

// Renderer converts an Outcome into replacement content for a results area
// (an HTML fragment, plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, outcome Outcome) ([]byte, error)
}

// RendererFunc adapts a function into a Renderer under a fixed name.
type RendererFunc struct {
	RendererName string
	Type         string
	Fn           func(ctx context.Context, outcome Outcome) ([]byte, error)
}

func (r RendererFunc) Name() string        { return r.RendererName }
func (r RendererFunc) ContentType() string { return r.Type }

func (r RendererFunc) Render(ctx context.Context, outcome Outcome) ([]byte, error) {
	if r.Fn == nil {
		return nil, nil
	}
	return r.Fn(ctx, outcome)
}

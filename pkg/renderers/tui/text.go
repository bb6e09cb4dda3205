package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-pairfinder/pkg/pairing"
	"github.com/goliatone/go-pairfinder/pkg/render"
)

// TextRenderer prints outcomes as plain text blocks.
type TextRenderer struct{}

var _ render.Renderer = TextRenderer{}

// NewTextRenderer returns the plain text renderer.
func NewTextRenderer() TextRenderer { return TextRenderer{} }

func (TextRenderer) Name() string        { return "text" }
func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (TextRenderer) Render(_ context.Context, outcome render.Outcome) ([]byte, error) {
	view := render.BuildView(outcome)
	if view.IsError() {
		return []byte(view.Error + "\n"), nil
	}
	if view.Message != "" {
		return []byte(view.Message + "\n"), nil
	}

	var b strings.Builder
	for i, block := range view.Blocks {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Pair %d:\n", block.Index)
		writeLocation(&b, block.Location1)
		writeLocation(&b, block.Location2)
		fmt.Fprintf(&b, "  Distance: %s (%s)\n", block.DistanceText, block.DurationText)
	}
	return []byte(b.String()), nil
}

func writeLocation(b *strings.Builder, ref pairing.LocationRef) {
	fmt.Fprintf(b, "  %s: %s\n", ref.Type, ref.Name)
	fmt.Fprintf(b, "  Address: %s\n", ref.Address)
}

package vanilla

import (
	"context"
	"io/fs"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pairfinder/pkg/page"
	"github.com/goliatone/go-pairfinder/pkg/pairing"
	"github.com/goliatone/go-pairfinder/pkg/render"
)

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func zilkerPair() pairing.PairResult {
	return pairing.PairResult{
		Location1:    pairing.LocationRef{Type: "park", Name: "Zilker Park", Address: "2100 Barton Springs Rd"},
		Location2:    pairing.LocationRef{Type: "gym", Name: "Castle Hill", Address: "1112 N Lamar Blvd"},
		DistanceText: "2.1 km",
		DurationText: "6 mins",
	}
}

func TestRender_OneBlockPerPair(t *testing.T) {
	r := newRenderer(t)
	second := zilkerPair()
	second.Location1.Name = "Pease Park"

	out, err := r.Render(context.Background(), render.Success([]pairing.PairResult{zilkerPair(), second}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if got := strings.Count(html, `<div class="pair">`); got != 2 {
		t.Fatalf("expected 2 pair blocks, got %d:\n%s", got, html)
	}
	for _, want := range []string{
		"<h3>Pair 1</h3>",
		"<h3>Pair 2</h3>",
		`<span class="location-name">park:</span> Zilker Park`,
		`<span class="location-name">gym:</span> Castle Hill`,
		"<small>2100 Barton Springs Rd</small>",
		"<small>1112 N Lamar Blvd</small>",
		"<strong>Distance:</strong> 2.1 km (6 mins)",
		"Pease Park",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
	if strings.Index(html, "Zilker Park") > strings.Index(html, "Pease Park") {
		t.Fatalf("pairs rendered out of order")
	}
}

func TestRender_Empty(t *testing.T) {
	out, err := newRenderer(t).Render(context.Background(), render.Success(nil))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), render.NoPairsMessage) {
		t.Fatalf("expected no-results message, got %s", out)
	}
	if strings.Contains(string(out), `class="pair"`) {
		t.Fatalf("unexpected pair block")
	}
}

func TestRender_Failure(t *testing.T) {
	out, err := newRenderer(t).Render(context.Background(), render.Failure("rate limited"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<p class="error" role="alert">Error: rate limited</p>`
	if !strings.Contains(string(out), want) {
		t.Fatalf("expected %q in %s", want, out)
	}
}

func TestRender_StripsServiceMarkup(t *testing.T) {
	pair := zilkerPair()
	pair.Location1.Name = `<script>alert(1)</script>Cafe <b>Bold</b>`
	pair.Location2.Address = "Main & 5th"

	out, err := newRenderer(t).Render(context.Background(), render.Success([]pairing.PairResult{pair}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "<script>") || strings.Contains(html, "<b>") {
		t.Fatalf("markup leaked:\n%s", html)
	}
	if !strings.Contains(html, "Cafe Bold") {
		t.Fatalf("expected text content kept:\n%s", html)
	}
	if !strings.Contains(html, "Main &amp; 5th") {
		t.Fatalf("expected single escaping of ampersand:\n%s", html)
	}
}

func TestRenderPage(t *testing.T) {
	r := newRenderer(t,
		WithTitle("Pair Finder"),
		WithTheme(&theme.RendererConfig{
			Theme:   "acme",
			Variant: "dark",
			Tokens:  map[string]string{"brand": "#123456"},
		}),
	)

	p := page.FromValues(url.Values{
		page.FieldRegion:       {"Austin"},
		page.FieldLocationType: {"park", "gym", "bar"},
	})
	results, err := r.Render(context.Background(), render.Success([]pairing.PairResult{zilkerPair()}))
	if err != nil {
		t.Fatalf("render results: %v", err)
	}
	p.ShowResults(r.ContentType(), results)
	p.Notify("Please enter a region.")

	out, err := r.RenderPage(context.Background(), p)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<title>Pair Finder</title>",
		`value="Austin"`,
		`data-theme="acme"`,
		`data-theme-variant="dark"`,
		"--pf-brand: #123456;",
		`<div class="notice" role="alertdialog">Please enter a region.</div>`,
		`<h3>Pair 1</h3>`,
		`placeholder="Another location type..."`,
		`class="spinner hidden"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("page missing %q:\n%s", want, html)
		}
	}
	if got := strings.Count(html, `class="location-type"`); got != 3 {
		t.Fatalf("expected 3 location inputs, got %d", got)
	}
	if strings.Contains(html, "disabled") {
		t.Fatalf("find trigger should be enabled on an idle page")
	}
}

func TestRenderPage_EscapesPlainResults(t *testing.T) {
	p := page.New()
	p.ShowResults("text/plain", []byte("<b>Pair 1</b>"))

	out, err := newRenderer(t).RenderPage(context.Background(), p)
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if !strings.Contains(string(out), "<pre>&lt;b&gt;Pair 1&lt;/b&gt;</pre>") {
		t.Fatalf("expected escaped plain results:\n%s", out)
	}
}

func TestAssetsFS(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(data), "--pf-brand") {
		t.Fatalf("stylesheet missing brand variable")
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := cssVarsStyle(map[string]string{"--b": " 2 ", "--a": "1", "plain": "x"})
	if got != "--a: 1; --b: 2;" {
		t.Fatalf("got %q", got)
	}
}

func TestRender_KeepsAddressVerbatim(t *testing.T) {
	pair := zilkerPair()
	pair.Location1.Address = "2100  Barton Springs Rd,\n Austin"

	out, err := newRenderer(t).Render(context.Background(), render.Success([]pairing.PairResult{pair}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<small>2100  Barton Springs Rd,\n Austin</small>") {
		t.Fatalf("address was rewritten:\n%s", out)
	}
}

func TestRender_AlternateTemplatesFS(t *testing.T) {
	files := fstest.MapFS{
		resultsTemplate: {Data: []byte(`{% for block in view.blocks %}[{{ block.location1.name }}]{% endfor %}`)},
		pageTemplate:    {Data: []byte(`<main>{{ title }}</main>`)},
	}
	r := newRenderer(t, WithTemplatesFS(files))

	out, err := r.Render(context.Background(), render.Success([]pairing.PairResult{zilkerPair()}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != "[Zilker Park]" {
		t.Fatalf("render = %q", got)
	}
}

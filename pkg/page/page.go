// Package page holds the server-side model of the search page: the region
// input, the location-type inputs, the results area and the loading state.
// A Page is rebuilt from every form post, so nothing persists between
// requests.
package page

import (
	"net/url"

	"github.com/goliatone/go-pairfinder/pkg/controller"
)

// Form field names used by the HTML page.
const (
	FieldRegion       = "region"
	FieldLocationType = "location_type"
	FieldAction       = "action"

	ActionAdd  = "add"
	ActionFind = "find"
)

// Placeholders of the two location-type inputs every page starts with.
var initialPlaceholders = []string{"e.g., coffee shop", "e.g., park"}

// RegionPlaceholder is the hint of the region input.
const RegionPlaceholder = "e.g., Downtown Seattle"

// Field is one location-type input.
type Field struct {
	Value       string `json:"value"`
	Placeholder string `json:"placeholder"`
}

// Page implements controller.Surface.
type Page struct {
	RegionValue     string   `json:"region"`
	Fields          []Field  `json:"fields"`
	Results         string   `json:"results"`
	ResultsType     string   `json:"results_type"`
	Loading         bool     `json:"loading"`
	TriggerDisabled bool     `json:"trigger_disabled"`
	Notices         []string `json:"notices"`

	transitions []string
}

var _ controller.Surface = (*Page)(nil)

// New returns a fresh page with two empty location-type inputs.
func New() *Page {
	p := &Page{}
	for _, placeholder := range initialPlaceholders {
		p.Fields = append(p.Fields, Field{Placeholder: placeholder})
	}
	return p
}

// FromValues rebuilds a page from submitted form values. Every posted
// location_type value becomes one input, in order, and the page always shows
// at least the two initial inputs.
func FromValues(values url.Values) *Page {
	p := &Page{RegionValue: values.Get(FieldRegion)}
	for i, value := range values[FieldLocationType] {
		p.Fields = append(p.Fields, Field{Value: value, Placeholder: placeholderAt(i)})
	}
	for i := len(p.Fields); i < len(initialPlaceholders); i++ {
		p.Fields = append(p.Fields, Field{Placeholder: placeholderAt(i)})
	}
	return p
}

func placeholderAt(i int) string {
	if i < len(initialPlaceholders) {
		return initialPlaceholders[i]
	}
	return controller.NewFieldPlaceholder
}

func (p *Page) Region() string { return p.RegionValue }

func (p *Page) LocationTypes() []string {
	out := make([]string, len(p.Fields))
	for i, field := range p.Fields {
		out[i] = field.Value
	}
	return out
}

func (p *Page) AppendLocationType(placeholder string) {
	p.Fields = append(p.Fields, Field{Placeholder: placeholder})
}

func (p *Page) ClearResults() {
	p.Results = ""
	p.ResultsType = ""
}

func (p *Page) SetLoading(visible bool) {
	p.Loading = visible
	p.record("loading", visible)
}

func (p *Page) SetTriggerEnabled(enabled bool) {
	p.TriggerDisabled = !enabled
	p.record("trigger", enabled)
}

func (p *Page) ShowResults(contentType string, content []byte) {
	p.ResultsType = contentType
	p.Results = string(content)
}

func (p *Page) Notify(message string) {
	p.Notices = append(p.Notices, message)
}

// Transitions lists loading and trigger changes in the order they happened,
// e.g. "loading:on", "trigger:off".
func (p *Page) Transitions() []string {
	return append([]string(nil), p.transitions...)
}

func (p *Page) record(name string, on bool) {
	state := "off"
	if on {
		state = "on"
	}
	p.transitions = append(p.transitions, name+":"+state)
}

package page

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pairfinder/pkg/controller"
	"github.com/goliatone/go-pairfinder/pkg/pairing"
	"github.com/goliatone/go-pairfinder/pkg/render"
)

func TestNew(t *testing.T) {
	p := New()
	want := []Field{{Placeholder: "e.g., coffee shop"}, {Placeholder: "e.g., park"}}
	if diff := cmp.Diff(want, p.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if p.TriggerDisabled || p.Loading {
		t.Fatalf("new page must be idle")
	}
}

func TestFromValues(t *testing.T) {
	values := url.Values{
		FieldRegion:       {"Austin"},
		FieldLocationType: {"park", "", "gym"},
	}
	p := FromValues(values)
	if p.Region() != "Austin" {
		t.Fatalf("region = %q", p.Region())
	}
	want := []Field{
		{Value: "park", Placeholder: "e.g., coffee shop"},
		{Value: "", Placeholder: "e.g., park"},
		{Value: "gym", Placeholder: controller.NewFieldPlaceholder},
	}
	if diff := cmp.Diff(want, p.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"park", "", "gym"}, p.LocationTypes()); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestFromValues_PadsToTwoFields(t *testing.T) {
	p := FromValues(url.Values{FieldLocationType: {"park"}})
	if len(p.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(p.Fields))
	}
	if p.Fields[1].Placeholder != "e.g., park" {
		t.Fatalf("placeholder = %q", p.Fields[1].Placeholder)
	}
}

func TestPageDrivenByController(t *testing.T) {
	p := FromValues(url.Values{FieldRegion: {"Austin"}, FieldLocationType: {"park", "gym"}})
	p.Results = "old"

	renderer := render.RendererFunc{
		RendererName: "text",
		Type:         "text/plain",
		Fn: func(_ context.Context, o render.Outcome) ([]byte, error) {
			return []byte(render.BuildView(o).Message), nil
		},
	}
	sub := pairing.SubmitterFunc(func(context.Context, string, pairing.SearchRequest) ([]pairing.PairResult, error) {
		return []pairing.PairResult{}, nil
	})
	ctrl, err := controller.New(controller.Config{Endpoint: "http://pairs.test"}, p, sub, renderer)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	ctrl.OnAddField()
	if len(p.Fields) != 3 || p.Fields[2].Placeholder != controller.NewFieldPlaceholder {
		t.Fatalf("add field did not append, fields=%+v", p.Fields)
	}

	if err := ctrl.OnSubmit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if p.Results != render.NoPairsMessage || p.ResultsType != "text/plain" {
		t.Fatalf("results = %q (%s)", p.Results, p.ResultsType)
	}
	want := []string{"loading:on", "trigger:off", "loading:off", "trigger:on"}
	if diff := cmp.Diff(want, p.Transitions()); diff != "" {
		t.Fatalf("transitions mismatch (-want +got):\n%s", diff)
	}
	if p.Loading || p.TriggerDisabled {
		t.Fatalf("page must end idle")
	}
}

func TestPageNotify(t *testing.T) {
	p := FromValues(url.Values{FieldLocationType: {"park", "gym"}})
	sub := pairing.SubmitterFunc(func(context.Context, string, pairing.SearchRequest) ([]pairing.PairResult, error) {
		t.Fatalf("service must not be called")
		return nil, nil
	})
	ctrl, err := controller.New(controller.Config{Endpoint: "http://pairs.test"}, p, sub, render.RendererFunc{RendererName: "noop"})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	_ = ctrl.OnSubmit(context.Background())
	if diff := cmp.Diff([]string{controller.RegionRequiredMessage}, p.Notices); diff != "" {
		t.Fatalf("notices mismatch (-want +got):\n%s", diff)
	}
}

package mockpairs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pairfinder/pkg/pairing"
)

func post(t *testing.T, h http.Handler, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, pairing.ContractPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Result()
}

func decodeError(t *testing.T, res *http.Response) string {
	t.Helper()
	var payload pairing.ErrorPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	return payload.Error
}

func TestNewHandler_FiltersDefaultPairs(t *testing.T) {
	res := post(t, NewHandler(), `{"region":"Austin","location_types":["Park","gym"]}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	var pairs []pairing.PairResult
	if err := json.NewDecoder(res.Body).Decode(&pairs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Location1.Name != "Zilker Metropolitan Park" {
		t.Fatalf("unexpected pairs %#v", pairs)
	}
}

func TestNewHandler_NoMatchReturnsEmptyArray(t *testing.T) {
	res := post(t, NewHandler(), `{"region":"Austin","location_types":["museum","zoo"]}`)
	var raw json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("expected [], got %s", raw)
	}
}

func TestNewHandler_PairLimit(t *testing.T) {
	pair := pairing.PairResult{
		Location1: pairing.LocationRef{Type: "a"},
		Location2: pairing.LocationRef{Type: "b"},
	}
	h := NewHandler(WithPairs([]pairing.PairResult{pair, pair, pair, pair}), WithPairLimit(2))
	res := post(t, h, `{"region":"x","location_types":["a","b"]}`)
	var pairs []pairing.PairResult
	if err := json.NewDecoder(res.Body).Decode(&pairs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
}

func TestNewHandler_RejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "not json", body: `nope`, want: "request body must be a JSON object with region and location_types"},
		{name: "missing region", body: `{"location_types":["a","b"]}`, want: "region is required"},
		{name: "one type", body: `{"region":"x","location_types":["a"," "]}`, want: "at least two location types are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := post(t, NewHandler(), tt.body)
			if res.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d", res.StatusCode)
			}
			if got := decodeError(t, res); got != tt.want {
				t.Fatalf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewHandler_Failure(t *testing.T) {
	res := post(t, NewHandler(WithFailure(http.StatusTooManyRequests, "rate limited")), `{"region":"x","location_types":["a","b"]}`)
	if res.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if got := decodeError(t, res); got != "rate limited" {
		t.Fatalf("error = %q", got)
	}
}

func TestNewHandler_FailureWithoutMessageOmitsField(t *testing.T) {
	res := post(t, NewHandler(WithFailure(0, "")), `{"region":"x","location_types":["a","b"]}`)
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var raw map[string]any
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw["error"]; ok {
		t.Fatalf("expected no error field, got %v", raw)
	}
}

func TestNewHandler_MethodAndGuard(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("status=%d allow=%q", rec.Code, rec.Header().Get("Allow"))
	}

	guarded := NewHandler(WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("no token")}
	}))
	res := post(t, guarded, `{}`)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("guard status = %d", res.StatusCode)
	}
}

func TestSearch_CaseAndOrder(t *testing.T) {
	pairs, err := DefaultPairs()
	if err != nil {
		t.Fatalf("default pairs: %v", err)
	}
	got := Search(pairs, pairing.SearchRequest{LocationTypes: []string{" COFFEE SHOP ", "park", "gym"}}, 0)
	var names []string
	for _, p := range got {
		names = append(names, p.Location1.Name)
	}
	want := []string{"Zilker Metropolitan Park", "Houndstooth Coffee", "Gold's Gym Downtown"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	path, err := RegisterRoutes(mux, "/mock/")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if path != "/mock"+pairing.ContractPath {
		t.Fatalf("path = %q", path)
	}
	if MountPath("", WithRoutePath("pairs/")) != "/pairs" {
		t.Fatalf("unexpected mount path %q", MountPath("", WithRoutePath("pairs/")))
	}
	if _, err := RegisterRoutes(nil, ""); err == nil {
		t.Fatalf("expected nil mux error")
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path+ContractSuffix, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("contract status = %d", rec.Code)
	}
	doc, err := openapi3.NewLoader().LoadFromData(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("contract invalid: %v", err)
	}
}

package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pairfinder/components/mockpairs"
	"github.com/goliatone/go-pairfinder/pkg/pairing"
)

// NewPairService starts a mock pairing service for the duration of the test
// and returns its search endpoint.
func NewPairService(t *testing.T, fns ...mockpairs.OptionFn) string {
	t.Helper()

	mux := http.NewServeMux()
	path, err := mockpairs.RegisterRoutes(mux, "", fns...)
	if err != nil {
		t.Fatalf("register mock routes: %v", err)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL + path
}

// SamplePairs returns the embedded pair data set used by the mock service.
func SamplePairs(t *testing.T) []pairing.PairResult {
	t.Helper()

	pairs, err := mockpairs.DefaultPairs()
	if err != nil {
		t.Fatalf("load sample pairs: %v", err)
	}
	return pairs
}

// MustLoadPairs loads a JSON fixture holding a list of pairs.
func MustLoadPairs(t *testing.T, path string) []pairing.PairResult {
	t.Helper()

	pairs, err := LoadPairs(path)
	if err != nil {
		t.Fatalf("load pairs: %v", err)
	}
	return pairs
}

// LoadPairs reads a JSON fixture into pairs, returning an error for callers
// managing setup outside of *testing.T.
func LoadPairs(path string) ([]pairing.PairResult, error) {
	if path == "" {
		return nil, errors.New("testsupport: pairs path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read pairs: %w", err)
	}
	var out []pairing.PairResult
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal pairs: %w", err)
	}
	return out, nil
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeFile(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeFile(t, path, data)
	return true
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

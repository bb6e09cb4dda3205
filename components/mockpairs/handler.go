package mockpairs

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/goliatone/go-pairfinder/pkg/pairing"
)

const maxBodyBytes = 1 << 16

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds the search handler with default options plus overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds the search handler from a pre-built Options value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			writeError(w, http.StatusBadRequest, "bad request")
			return
		}
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		req, err := decodeRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if opts.Failure != nil {
			writeError(w, opts.Failure.StatusCode, opts.Failure.Message)
			return
		}

		pairs := opts.Pairs
		if pairs == nil {
			loaded, err := DefaultPairs()
			if err != nil {
				writeError(w, http.StatusInternalServerError, "sample data unavailable")
				return
			}
			pairs = loaded
		}

		writeJSON(w, http.StatusOK, Search(pairs, req, opts.PairLimit))
	})
}

// ContractHandler serves the OpenAPI description of the search endpoint.
func ContractHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeJSON(w, http.StatusOK, pairing.Contract())
	})
}

func decodeRequest(r *http.Request) (pairing.SearchRequest, error) {
	var req pairing.SearchRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return req, errors.New("request body must be a JSON object with region and location_types")
	}
	if strings.TrimSpace(req.Region) == "" {
		return req, errors.New("region is required")
	}
	count := 0
	for _, t := range req.LocationTypes {
		if strings.TrimSpace(t) != "" {
			count++
		}
	}
	if count < 2 {
		return req, errors.New("at least two location types are required")
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, pairing.ErrorPayload{Error: message})
}

func writeGuardError(w http.ResponseWriter, err error) {
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	writeError(w, code, http.StatusText(code))
}

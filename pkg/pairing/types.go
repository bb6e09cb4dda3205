package pairing

import "context"

// SearchRequest is the payload sent to the pairing service. Region and every
// location type are trimmed and non-empty; order is preserved and duplicates
// are allowed.
type SearchRequest struct {
	Region        string   `json:"region"`
	LocationTypes []string `json:"location_types"`
}

// LocationRef describes one place returned by the service.
type LocationRef struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PairResult is a single matched pair plus travel information between them.
type PairResult struct {
	Location1    LocationRef `json:"location1"`
	Location2    LocationRef `json:"location2"`
	DistanceText string      `json:"distance_text"`
	DurationText string      `json:"duration_text"`
}

// ErrorPayload is the failure shape of a service response.
type ErrorPayload struct {
	Error string `json:"error,omitempty"`
}

// Submitter performs one request/response exchange with the pairing service.
type Submitter interface {
	FindPairs(ctx context.Context, endpoint string, req SearchRequest) ([]PairResult, error)
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, endpoint string, req SearchRequest) ([]PairResult, error)

// FindPairs calls fn.
func (fn SubmitterFunc) FindPairs(ctx context.Context, endpoint string, req SearchRequest) ([]PairResult, error) {
	return fn(ctx, endpoint, req)
}

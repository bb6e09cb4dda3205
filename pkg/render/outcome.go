package render

import (
	"github.com/goliatone/go-pairfinder/pkg/pairing"
)

const (
	// NoPairsMessage replaces the results area when the service found nothing.
	NoPairsMessage = "No matching pairs found. Try a different region or location types."
	// ErrorPrefix precedes a failure reason in the results area.
	ErrorPrefix = "Error: "
)

// Outcome is the classified result of one submission: either a (possibly
// empty) list of pairs or a failure reason, never both.
type Outcome struct {
	pairs   []pairing.PairResult
	reason  string
	failure bool
}

// Success wraps a service payload. A nil slice is treated as empty.
func Success(pairs []pairing.PairResult) Outcome {
	if pairs == nil {
		pairs = []pairing.PairResult{}
	}
	return Outcome{pairs: pairs}
}

// Failure wraps a failure reason. An empty reason falls back to the generic
// unknown-error message.
func Failure(reason string) Outcome {
	if reason == "" {
		reason = pairing.UnknownErrorMessage
	}
	return Outcome{reason: reason, failure: true}
}

// FromExchange classifies the return values of a Submitter call.
func FromExchange(pairs []pairing.PairResult, err error) Outcome {
	if reason, failed := pairing.FailureReason(err); failed {
		return Failure(reason)
	}
	return Success(pairs)
}

// Failed reports whether the outcome carries a failure reason.
func (o Outcome) Failed() bool { return o.failure }

// Reason returns the failure reason, empty on success.
func (o Outcome) Reason() string { return o.reason }

// Pairs returns the successful payload, nil on failure.
func (o Outcome) Pairs() []pairing.PairResult {
	if o.failure {
		return nil
	}
	return o.pairs
}

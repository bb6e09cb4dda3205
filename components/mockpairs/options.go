package mockpairs

import (
	"net/http"

	"github.com/goliatone/go-pairfinder/pkg/pairing"
)

// GuardFunc can reject a request before it is served.
type GuardFunc func(r *http.Request) error

// Failure makes every search answer with StatusCode and an {"error": Message}
// body. An empty Message produces a body without the error field.
type Failure struct {
	StatusCode int
	Message    string
}

type Options struct {
	RoutePath string
	PairLimit int
	Guard     GuardFunc
	Failure   *Failure

	Pairs []pairing.PairResult
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath: pairing.ContractPath,
		PairLimit: 3,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = pairing.ContractPath
	}
	if opts.PairLimit <= 0 {
		opts.PairLimit = 3
	}
	if opts.Pairs != nil {
		opts.Pairs = append([]pairing.PairResult{}, opts.Pairs...)
	}
	if opts.Failure != nil {
		failure := *opts.Failure
		if failure.StatusCode < 400 {
			failure.StatusCode = http.StatusInternalServerError
		}
		opts.Failure = &failure
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithPairLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PairLimit = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithFailure makes the handler fail every search.
func WithFailure(status int, message string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Failure = &Failure{StatusCode: status, Message: message}
	}
}

// WithPairs replaces the embedded data set. A non-nil empty slice makes every
// search return no pairs.
func WithPairs(pairs []pairing.PairResult) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if pairs == nil {
			o.Pairs = nil
			return
		}
		o.Pairs = append([]pairing.PairResult{}, pairs...)
	}
}

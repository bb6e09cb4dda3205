package mockpairs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-pairfinder/pkg/pairing"
)

//go:embed data/sample_pairs.json
var samplePairsJSON []byte

var (
	defaultPairsOnce sync.Once
	defaultPairs     []pairing.PairResult
	defaultPairsErr  error
)

// DefaultPairs returns a copy of the embedded data set.
func DefaultPairs() ([]pairing.PairResult, error) {
	defaultPairsOnce.Do(func() {
		if err := json.Unmarshal(samplePairsJSON, &defaultPairs); err != nil {
			defaultPairsErr = fmt.Errorf("mockpairs: decode sample pairs: %w", err)
		}
	})
	if defaultPairsErr != nil {
		return nil, defaultPairsErr
	}
	return append([]pairing.PairResult{}, defaultPairs...), nil
}

// Search returns the pairs whose two location types were both requested, in
// data order, up to limit. Type matching ignores case and surrounding space.
func Search(pairs []pairing.PairResult, req pairing.SearchRequest, limit int) []pairing.PairResult {
	wanted := make(map[string]struct{}, len(req.LocationTypes))
	for _, t := range req.LocationTypes {
		wanted[normalize(t)] = struct{}{}
	}

	out := []pairing.PairResult{}
	for _, pair := range pairs {
		if limit > 0 && len(out) >= limit {
			break
		}
		_, ok1 := wanted[normalize(pair.Location1.Type)]
		_, ok2 := wanted[normalize(pair.Location2.Type)]
		if ok1 && ok2 {
			out = append(out, pair)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

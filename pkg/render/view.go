package render

import "github.com/goliatone/go-pairfinder/pkg/pairing"

// PairBlock is one display block. Index is 1-based and follows the order of
// the service payload.
type PairBlock struct {
	Index        int                 `json:"index"`
	Location1    pairing.LocationRef `json:"location1"`
	Location2    pairing.LocationRef `json:"location2"`
	DistanceText string              `json:"distance_text"`
	DurationText string              `json:"duration_text"`
}

// View is the display model shared by every renderer. Exactly one of Blocks,
// Message or Error is populated.
type View struct {
	Blocks  []PairBlock `json:"blocks,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// IsError reports whether the view shows a failure.
func (v View) IsError() bool { return v.Error != "" }

// BuildView maps an Outcome to its display model. It performs no I/O.
func BuildView(outcome Outcome) View {
	if outcome.Failed() {
		return View{Error: ErrorPrefix + outcome.Reason()}
	}
	pairs := outcome.Pairs()
	if len(pairs) == 0 {
		return View{Message: NoPairsMessage}
	}
	blocks := make([]PairBlock, len(pairs))
	for i, pair := range pairs {
		blocks[i] = PairBlock{
			Index:        i + 1,
			Location1:    pair.Location1,
			Location2:    pair.Location2,
			DistanceText: pair.DistanceText,
			DurationText: pair.DurationText,
		}
	}
	return View{Blocks: blocks}
}

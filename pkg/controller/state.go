package controller

import "fmt"

// State is the UI state owned by a Controller.
type State int

const (
	// Idle is the initial and terminal state. The find trigger is enabled.
	Idle State = iota
	// Loading holds while exactly one request is in flight. The trigger is
	// disabled and the loading indicator is visible.
	Loading
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// beginLoading moves Idle to Loading. It reports false when a submission is
// already in flight.
func (s *State) beginLoading() bool {
	if *s == Loading {
		return false
	}
	*s = Loading
	return true
}

// finishLoading moves any state back to Idle.
func (s *State) finishLoading() {
	*s = Idle
}

package sheet

import (
	"fmt"
	"time"
)

// State is the tracking state derived from the last event of a sheet.
type State int

const (
	Empty State = iota
	PunchedIn
	PunchedOut
)

func (s State) String() string {
	switch s {
	case PunchedIn:
		return "punched in"
	case PunchedOut:
		return "punched out"
	default:
		return "empty"
	}
}

// Status is the current state together with the instant it last changed.
// Since is zero for an empty sheet.
type Status struct {
	State State
	Since time.Time
}

func (s Status) String() string {
	if s.State == Empty {
		return "no punches recorded"
	}
	return fmt.Sprintf("%s since %s", s.State, s.Since.Format(time.RFC3339))
}

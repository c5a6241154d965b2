package sheet

import (
	"time"

	"punchclock/internal/clock"
)

// Sheet is the ordered log of events for one tracked subject. Only the last
// event may be open; PunchIn and PunchOut keep it that way. Events appear in
// the order they were punched and are never re-sorted.
type Sheet struct {
	Events []Event `json:"events"`

	clock clock.Clock
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithClock sets the clock used by PunchIn, PunchOut and CountRange.
func WithClock(c clock.Clock) Option {
	return func(s *Sheet) {
		s.clock = c
	}
}

// New returns an empty sheet.
func New(opts ...Option) *Sheet {
	s := &Sheet{Events: []Event{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetClock replaces the clock, typically on a sheet that was just decoded.
func (s *Sheet) SetClock(c clock.Clock) {
	s.clock = c
}

func (s *Sheet) now() time.Time {
	if s.clock == nil {
		return clock.Real{}.Now()
	}
	return s.clock.Now()
}

func (s *Sheet) last() *Event {
	if len(s.Events) == 0 {
		return nil
	}
	return &s.Events[len(s.Events)-1]
}

// PunchIn records a punch-in at the current time.
func (s *Sheet) PunchIn() (time.Time, error) {
	return s.PunchInAt(s.now())
}

// PunchInAt records a punch-in at the given time. No ordering check is made
// against earlier events.
func (s *Sheet) PunchInAt(at time.Time) (time.Time, error) {
	if last := s.last(); last != nil && last.Open() {
		return time.Time{}, &AlreadyPunchedInError{Since: last.Start}
	}
	s.Events = append(s.Events, NewEvent(at))
	return at, nil
}

// PunchOut records a punch-out at the current time.
func (s *Sheet) PunchOut() (time.Time, error) {
	return s.PunchOutAt(s.now())
}

// PunchOutAt closes the open event at the given time.
func (s *Sheet) PunchOutAt(at time.Time) (time.Time, error) {
	last := s.last()
	if last == nil {
		return time.Time{}, ErrNoPunches
	}
	if !last.Open() {
		return time.Time{}, &AlreadyPunchedOutError{Since: *last.Stop}
	}
	last.Stop = &at
	return at, nil
}

// Status derives the tracking state from the last event.
func (s *Sheet) Status() Status {
	last := s.last()
	switch {
	case last == nil:
		return Status{State: Empty}
	case last.Open():
		return Status{State: PunchedIn, Since: last.Start}
	default:
		return Status{State: PunchedOut, Since: *last.Stop}
	}
}

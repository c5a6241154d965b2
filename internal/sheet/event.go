package sheet

import "time"

// Event is one period of time tracking. A nil Stop means the period is still
// running.
type Event struct {
	Start time.Time  `json:"start"`
	Stop  *time.Time `json:"stop"`
}

// NewEvent returns an open event starting at start.
func NewEvent(start time.Time) Event {
	return Event{Start: start}
}

// Open reports whether the event has not been punched out yet.
func (e Event) Open() bool {
	return e.Stop == nil
}

// bounds returns the event's interval, treating an open event as running
// until now.
func (e Event) bounds(now time.Time) (time.Time, time.Time) {
	if e.Stop == nil {
		return e.Start, now
	}
	return e.Start, *e.Stop
}

package sheet

import "time"

// CountRange returns the tracked time between begin and end, counting an open
// event as running until the sheet's clock reads now.
func (s *Sheet) CountRange(begin, end time.Time) time.Duration {
	return s.CountRangeAt(begin, end, s.now())
}

// CountRangeAt is CountRange with an explicit now.
//
// Events lying wholly before begin or wholly after end are skipped; every
// other event contributes its overlap with [begin, end]. A range with begin
// after end is not rejected and its result is not meaningful.
func (s *Sheet) CountRangeAt(begin, end, now time.Time) time.Duration {
	var total time.Duration
	for _, e := range s.Events {
		total += e.Overlap(begin, end, now)
	}
	return total
}

// EventsInRange returns, in log order, the events contributing a positive
// duration to CountRangeAt. Events that only touch an edge of the range are
// left out.
func (s *Sheet) EventsInRange(begin, end, now time.Time) []Event {
	var events []Event
	for _, e := range s.Events {
		if e.Overlap(begin, end, now) > 0 {
			events = append(events, e)
		}
	}
	return events
}

// Overlap returns the part of e that falls within [begin, end].
func (e Event) Overlap(begin, end, now time.Time) time.Duration {
	start, stop := e.bounds(now)
	if skip(start, stop, begin, end) {
		return 0
	}
	return earliest(end, stop).Sub(latest(begin, start))
}

func skip(start, stop, begin, end time.Time) bool {
	entirelyBefore := start.Before(begin) && stop.Before(begin)
	entirelyAfter := start.After(end) && stop.After(end)
	return entirelyBefore || entirelyAfter
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

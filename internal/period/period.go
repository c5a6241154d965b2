// Package period resolves named calendar windows to instant ranges. All
// calendar arithmetic is done in UTC.
package period

import (
	"fmt"
	"strings"
	"time"
)

// Period is a named calendar window relative to the current instant.
type Period string

const (
	Today     Period = "today"
	Yesterday Period = "yesterday"
	Week      Period = "week"
	LastWeek  Period = "last-week"
	Month     Period = "month"
	LastMonth Period = "last-month"
	Year      Period = "year"
	All       Period = "all"
)

// Periods lists every supported period in display order.
var Periods = []Period{Today, Yesterday, Week, LastWeek, Month, LastMonth, Year, All}

// Parse returns the period with the given name.
func Parse(name string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Periods {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid period: %s", name)
}

// Range returns the begin and end instants of the period containing now.
func (p Period) Range(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch p {
	case Yesterday:
		return day.AddDate(0, 0, -1), day
	case Week:
		start := startOfWeek(day)
		return start, start.AddDate(0, 0, 7)
	case LastWeek:
		start := startOfWeek(day).AddDate(0, 0, -7)
		return start, start.AddDate(0, 0, 7)
	case Month:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	case LastMonth:
		end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return end.AddDate(0, -1, 0), end
	case Year:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	case All:
		return time.Time{}, now
	default:
		return day, day.AddDate(0, 0, 1)
	}
}

// weeks start on monday
func startOfWeek(day time.Time) time.Time {
	offset := int(day.Weekday()) - int(time.Monday)
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	return day.AddDate(0, 0, -offset)
}

// Package calendar holds date-only helpers built on civil.Date so that
// range expansion and lookups never carry a time of day or a zone.
package calendar

import (
	"time"

	"cloud.google.com/go/civil"
)

// Window is an inclusive range of calendar days.
type Window struct {
	From civil.Date
	To   civil.Date
}

// NewWindow builds a window; a nil to collapses it to the single day from.
func NewWindow(from civil.Date, to *civil.Date) Window {
	if to == nil {
		return Window{From: from, To: from}
	}
	return Window{From: from, To: *to}
}

// Contains reports whether d lies within the window, both ends included.
func (w Window) Contains(d civil.Date) bool {
	return !d.Before(w.From) && !d.After(w.To)
}

// Overlaps reports whether [from, to] shares at least one day with the window.
func (w Window) Overlaps(from, to civil.Date) bool {
	return !from.After(w.To) && !to.Before(w.From)
}

// Days expands [from, to] day by day, both ends included.
// A reversed range yields nil.
func Days(from, to civil.Date) []civil.Date {
	if from.After(to) {
		return nil
	}
	days := make([]civil.Date, 0, to.DaysSince(from)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// DateOf drops the time of day, reading the calendar day in t's own location.
func DateOf(t time.Time) civil.Date {
	return civil.DateOf(t)
}

// Package daterange builds the requested day/week/month intervals and holds
// the event-overlap predicate they share.
package daterange

import (
	"errors"
	"time"
)

var (
	ErrBadDate  = errors.New("invalid date")
	ErrBadMonth = errors.New("invalid month")
)

const dayLayout = "2006-01-02"

// Range is a closed interval [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// Day spans the given calendar day from local midnight to 23:59:59.999.
func Day(s string) (Range, error) {
	t, err := parseDate(s)
	if err != nil {
		return Range{}, err
	}
	y, m, d := t.Date()
	loc := t.Location()
	return Range{
		Start: time.Date(y, m, d, 0, 0, 0, 0, loc),
		End:   time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc),
	}, nil
}

// Week treats the given date as the week start and spans six calendar days
// past it. Whatever time-of-day the input carried is kept on both ends.
func Week(s string) (Range, error) {
	t, err := parseDate(s)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: t, End: t.AddDate(0, 0, 6)}, nil
}

// Month spans the n-th month of now's year, first day 00:00:00 through last
// day 23:59:59. The month number is never tied to any other year.
func Month(n int, now time.Time) (Range, error) {
	if n < 1 || n > 12 {
		return Range{}, ErrBadMonth
	}
	start := time.Date(now.Year(), time.Month(n), 1, 0, 0, 0, 0, now.Location())
	return Range{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Second)}, nil
}

// Overlaps reports whether an event spanning [start, end] intersects r,
// decomposed into the three cases the queries apply: either endpoint falls
// inside r (inclusive), or the event strictly spans all of r. An event
// ending exactly at r.End is caught by the endpoint cases, never the span
// case.
func (r Range) Overlaps(start, end time.Time) bool {
	if r.contains(start) || r.contains(end) {
		return true
	}
	return start.Before(r.Start) && end.After(r.End)
}

func (r Range) contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

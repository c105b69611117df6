// Package period centralizes calendar-window arithmetic.
//
// Every aggregation in the system bounds its queries with a Window produced
// here, so the day-boundary convention is applied uniformly: a day covers
// [local midnight, local midnight + 24h - 1ms], inclusive on both ends. The
// exact midnight instant of the following day belongs to the following day.
package period

import "time"

// DayKeyLayout is the format used to identify a calendar day.
const DayKeyLayout = "2006-01-02"

// Window is an inclusive time range [Start, End] bounding an aggregation query.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Day returns the window covering the calendar day containing t, in t's location.
func Day(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Window{
		Start: start,
		End:   start.Add(24*time.Hour - time.Millisecond),
	}
}

// LastSevenDays returns the window covering the trailing seven calendar days
// ending on the day containing now.
func LastSevenDays(now time.Time) Window {
	today := Day(now)
	return Window{
		Start: Day(now.AddDate(0, 0, -6)).Start,
		End:   today.End,
	}
}

// Month returns the window covering the given year and month in loc.
func Month(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Window{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Millisecond),
	}
}

// DayKey returns the YYYY-MM-DD identifier of the calendar day containing t.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD day identifier in the local time zone.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, key, time.Local)
}

// Days enumerates the calendar days covered by the window, oldest first.
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := Day(w.Start).Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

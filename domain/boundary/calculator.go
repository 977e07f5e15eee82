// Package boundary computes previous/next day-of-week occurrences for an
// instant and the start/end-of-day boundaries of those occurrences, either in
// the instant's own offset or anchored to a time zone and normalized to UTC.
//
// All functions are pure: they take every input explicitly, never mutate
// their arguments, and are safe for concurrent use.
package boundary

import (
	"time"
)

// PreviousOccurrence returns the previous occurrence of target before t,
// preserving t's time of day. A same-day match rolls back a full week, so the
// result is always strictly earlier than t by one to seven calendar days.
func PreviousOccurrence(t time.Time, target time.Weekday) time.Time {
	return t.AddDate(0, 0, -daysBack(t.Weekday(), target))
}

// NextOccurrence returns the next occurrence of target after t, preserving
// t's time of day. A same-day match rolls forward a full week, so the result
// is always strictly later than t by one to seven calendar days.
func NextOccurrence(t time.Time, target time.Weekday) time.Time {
	return t.AddDate(0, 0, daysForward(t.Weekday(), target))
}

// StartOfPreviousOccurrence returns midnight of the previous occurrence of
// target, in the same location as t.
func StartOfPreviousOccurrence(t time.Time, target time.Weekday) time.Time {
	return startOfDay(PreviousOccurrence(t, target))
}

// StartOfNextOccurrence returns midnight of the next occurrence of target,
// in the same location as t.
func StartOfNextOccurrence(t time.Time, target time.Weekday) time.Time {
	return startOfDay(NextOccurrence(t, target))
}

// EndOfPreviousOccurrence returns the last representable instant of the
// previous occurrence of target: the following midnight minus one nanosecond.
func EndOfPreviousOccurrence(t time.Time, target time.Weekday) time.Time {
	return endOfDay(PreviousOccurrence(t, target))
}

// EndOfNextOccurrence returns the last representable instant of the next
// occurrence of target: the following midnight minus one nanosecond.
func EndOfNextOccurrence(t time.Time, target time.Weekday) time.Time {
	return endOfDay(NextOccurrence(t, target))
}

// daysBack returns the calendar-day distance from current back to the
// previous target weekday, in the range [1, 7].
func daysBack(current, target time.Weekday) int {
	d := (int(current) - int(target) + 7) % 7
	if d == 0 {
		d = 7
	}
	return d
}

// daysForward returns the calendar-day distance from current forward to the
// next target weekday, in the range [1, 7].
func daysForward(current, target time.Weekday) int {
	d := (int(target) - int(current) + 7) % 7
	if d == 0 {
		d = 7
	}
	return d
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

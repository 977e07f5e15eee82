package valueobject

import (
	"fmt"
	"time"
)

// WallClock represents a local date-time reading with no attached offset.
// It is ambiguous until resolved against a concrete time zone: the same
// wall-clock value can exist once, twice, or not at all depending on the
// zone's daylight-saving transitions.
type WallClock struct {
	year       int
	month      time.Month
	day        int
	hour       int
	minute     int
	second     int
	nanosecond int
}

// NewWallClock creates a WallClock from calendar components.
func NewWallClock(year int, month time.Month, day, hour, minute, second, nanosecond int) WallClock {
	return WallClock{
		year:       year,
		month:      month,
		day:        day,
		hour:       hour,
		minute:     minute,
		second:     second,
		nanosecond: nanosecond,
	}
}

// WallClockOf captures the wall-clock reading of t in its own location,
// discarding the offset.
func WallClockOf(t time.Time) WallClock {
	return WallClock{
		year:       t.Year(),
		month:      t.Month(),
		day:        t.Day(),
		hour:       t.Hour(),
		minute:     t.Minute(),
		second:     t.Second(),
		nanosecond: t.Nanosecond(),
	}
}

// MidnightOf returns the wall-clock midnight of t's calendar day.
func MidnightOf(t time.Time) WallClock {
	return NewWallClock(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0)
}

// Year returns the calendar year
func (w WallClock) Year() int { return w.year }

// Month returns the calendar month
func (w WallClock) Month() time.Month { return w.month }

// Day returns the day of month
func (w WallClock) Day() int { return w.day }

// Hour returns the hour of day
func (w WallClock) Hour() int { return w.hour }

// Minute returns the minute of hour
func (w WallClock) Minute() int { return w.minute }

// Second returns the second of minute
func (w WallClock) Second() int { return w.second }

// Nanosecond returns the sub-second component
func (w WallClock) Nanosecond() int { return w.nanosecond }

// In interprets the wall-clock reading in loc using the platform's default
// disambiguation. For readings inside a gap or fold the platform picks an
// arbitrary side; callers needing a deterministic policy resolve through
// domain/boundary instead.
func (w WallClock) In(loc *time.Location) time.Time {
	return time.Date(w.year, w.month, w.day, w.hour, w.minute, w.second, w.nanosecond, loc)
}

// WithFixedOffset interprets the wall-clock reading at an explicit UTC offset
// given in seconds east of UTC.
func (w WallClock) WithFixedOffset(offsetSeconds int) time.Time {
	return time.Date(w.year, w.month, w.day, w.hour, w.minute, w.second, w.nanosecond,
		time.FixedZone("", offsetSeconds))
}

// Matches reports whether t reads as exactly this wall-clock value in t's
// own location.
func (w WallClock) Matches(t time.Time) bool {
	return w == WallClockOf(t)
}

// AddMinutes returns the wall-clock value n minutes later, carrying across
// hour, day, month and year boundaries as needed.
func (w WallClock) AddMinutes(n int) WallClock {
	// Normalize through a fixed-offset time so calendar carries are exact.
	return WallClockOf(w.WithFixedOffset(0).Add(time.Duration(n) * time.Minute))
}

// Weekday returns the day of week implied by the calendar date alone.
func (w WallClock) Weekday() time.Weekday {
	return w.WithFixedOffset(0).Weekday()
}

// String formats the value like an RFC 3339 timestamp without an offset.
func (w WallClock) String() string {
	if w.nanosecond == 0 {
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
			w.year, int(w.month), w.day, w.hour, w.minute, w.second)
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%09d",
		w.year, int(w.month), w.day, w.hour, w.minute, w.second, w.nanosecond)
}

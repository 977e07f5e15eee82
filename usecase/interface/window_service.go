package usecase

import (
	"time"
)

// WindowService defines the interface for weekday-window use cases
type WindowService interface {
	// ComputeWeekdayWindow computes the previous/next occurrence of a weekday
	// around a reference instant, with start/end-of-day boundaries in the
	// reference's own offset and, unless disabled, anchored to a time zone
	// and normalized to UTC.
	ComputeWeekdayWindow(filter WeekdayWindowFilter) (*WeekdayWindowResult, error)
}

// WeekdayWindowFilter describes a single window computation request
type WeekdayWindowFilter struct {
	// Reference is the instant to compute around; nil means the current time
	Reference *time.Time

	// Weekday is the target day of week
	Weekday time.Weekday

	// Timezone is an IANA zone name overriding the configured timezone;
	// empty uses the configured or detected zone
	Timezone string

	// UTCOnly skips the zone-anchored boundaries entirely
	UTCOnly bool
}

// ZoneBoundary is one zone-anchored day boundary pair, in UTC
type ZoneBoundary struct {
	// Start is the resolved UTC instant at which the day begins
	Start time.Time

	// End is one nanosecond before the following day begins
	End time.Time

	// StartResolution reports how the day's local midnight mapped onto the
	// zone's timeline: "unique", "gap" or "fold"
	StartResolution string
}

// ZoneWindowResult holds the zone-anchored half of a window result
type ZoneWindowResult struct {
	// Name is the resolved zone name
	Name string

	// Previous is the boundary pair of the previous occurrence
	Previous ZoneBoundary

	// Next is the boundary pair of the next occurrence
	Next ZoneBoundary
}

// WeekdayWindowResult is the full result of one window computation
type WeekdayWindowResult struct {
	// Reference is the instant the window was computed around
	Reference time.Time

	// Weekday is the target day of week
	Weekday time.Weekday

	// Previous and Next preserve the reference's time of day
	Previous time.Time
	Next     time.Time

	// Boundaries in the reference's own offset
	StartOfPrevious time.Time
	EndOfPrevious   time.Time
	StartOfNext     time.Time
	EndOfNext       time.Time

	// Zone holds the zone-anchored boundaries; nil when UTCOnly was set
	Zone *ZoneWindowResult
}

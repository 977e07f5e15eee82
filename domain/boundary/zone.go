package boundary

import (
	"time"

	"github.com/ca-srg/weekbound/domain"
	"github.com/ca-srg/weekbound/domain/valueobject"
)

// StartOfPreviousInZone returns the UTC instant at which the previous
// occurrence of target begins in loc: the input is projected into loc, the
// previous occurrence is found using the local weekday, and that day's
// wall-clock midnight is resolved back to UTC through ResolveLocal.
func StartOfPreviousInZone(t time.Time, target time.Weekday, loc *time.Location) (time.Time, error) {
	return startInZone(t, target, loc, directionPrevious)
}

// StartOfNextInZone is the forward-looking counterpart of
// StartOfPreviousInZone.
func StartOfNextInZone(t time.Time, target time.Weekday, loc *time.Location) (time.Time, error) {
	return startInZone(t, target, loc, directionNext)
}

// EndOfPreviousInZone returns the UTC instant one nanosecond before the day
// after the previous occurrence of target begins in loc.
func EndOfPreviousInZone(t time.Time, target time.Weekday, loc *time.Location) (time.Time, error) {
	start, err := StartOfPreviousInZone(t, target, loc)
	if err != nil {
		return time.Time{}, err
	}
	return endFromStart(start), nil
}

// EndOfNextInZone is the forward-looking counterpart of EndOfPreviousInZone.
func EndOfNextInZone(t time.Time, target time.Weekday, loc *time.Location) (time.Time, error) {
	start, err := StartOfNextInZone(t, target, loc)
	if err != nil {
		return time.Time{}, err
	}
	return endFromStart(start), nil
}

type direction int

const (
	directionPrevious direction = -1
	directionNext     direction = 1
)

func startInZone(t time.Time, target time.Weekday, loc *time.Location, dir direction) (time.Time, error) {
	if loc == nil {
		return time.Time{}, domain.ErrInvalidInput("location", "timezone location is required")
	}

	local := t.UTC().In(loc)

	var occurrence time.Time
	if dir == directionPrevious {
		occurrence = PreviousOccurrence(local, target)
	} else {
		occurrence = NextOccurrence(local, target)
	}

	return ResolveLocal(valueobject.MidnightOf(occurrence), loc).UTC(), nil
}

func endFromStart(start time.Time) time.Time {
	return start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

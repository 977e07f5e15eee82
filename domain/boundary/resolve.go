package boundary

import (
	"sort"
	"time"

	"github.com/ca-srg/weekbound/domain/valueobject"
)

// ResolutionKind classifies how a wall-clock reading maps onto a zone's
// timeline at a particular date.
type ResolutionKind int

const (
	// ResolutionUnique means the reading exists exactly once in the zone.
	ResolutionUnique ResolutionKind = iota

	// ResolutionGap means the reading does not exist: the zone's clocks
	// jumped forward over it (spring-forward).
	ResolutionGap

	// ResolutionFold means the reading exists twice, once under each of two
	// UTC offsets (fall-back).
	ResolutionFold
)

// String returns a lower-case name for logging and presentation.
func (k ResolutionKind) String() string {
	switch k {
	case ResolutionUnique:
		return "unique"
	case ResolutionGap:
		return "gap"
	case ResolutionFold:
		return "fold"
	default:
		return "unknown"
	}
}

// Resolution describes the mapping of one wall-clock reading onto a zone's
// timeline.
type Resolution struct {
	Kind ResolutionKind

	// Candidates holds the instants the reading corresponds to, earliest
	// first. One entry for a unique mapping, two for a fold, none for a gap.
	Candidates []time.Time
}

// Classify determines whether w exists once, twice, or not at all in loc.
// It enumerates the UTC offsets in effect around the reading and keeps those
// under which the reading round-trips unchanged.
func Classify(w valueobject.WallClock, loc *time.Location) Resolution {
	candidates := candidateInstants(w, loc)
	switch len(candidates) {
	case 0:
		return Resolution{Kind: ResolutionGap}
	case 1:
		return Resolution{Kind: ResolutionUnique, Candidates: candidates}
	default:
		return Resolution{Kind: ResolutionFold, Candidates: candidates}
	}
}

// gapScanMinutes bounds the forward scan out of a spring-forward gap. Real
// zone transitions skip at most a few hours; 48h covers even the historical
// whole-day skips.
const gapScanMinutes = 48 * 60

// ResolveLocal converts a wall-clock reading in loc to the instant it
// denotes, with a fixed policy for the two daylight-saving edge cases:
//
//   - Gap: the reading is advanced minute by minute until it exists, so a
//     skipped midnight resolves to the first valid wall-clock minute after
//     the transition. Never rounds backward.
//   - Fold: of the two candidate instants the earlier one is chosen, so a
//     repeated midnight resolves to the first time the clocks showed it.
//
// The fold choice is observable behavior relied on by callers; keep it.
func ResolveLocal(w valueobject.WallClock, loc *time.Location) time.Time {
	for i := 0; i < gapScanMinutes; i++ {
		res := Classify(w, loc)
		if res.Kind != ResolutionGap {
			return res.Candidates[0]
		}
		w = w.AddMinutes(1)
	}
	// Unreachable for real zone data; defer to the platform's own
	// disambiguation rather than fail.
	return w.In(loc)
}

// candidateInstants returns the instants in loc that read back as exactly w,
// earliest first.
func candidateInstants(w valueobject.WallClock, loc *time.Location) []time.Time {
	// The platform's naive interpretation lands within a few hours of any
	// transition relevant to w, so probing the offset in effect half a day
	// on either side covers both sides of that transition.
	approx := w.In(loc)

	var candidates []time.Time
	for _, offset := range probeOffsets(approx, loc) {
		instant := w.WithFixedOffset(offset).In(loc)
		if w.Matches(instant) && !containsInstant(candidates, instant) {
			candidates = append(candidates, instant)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Before(candidates[j])
	})
	return candidates
}

func probeOffsets(around time.Time, loc *time.Location) []int {
	offsets := make([]int, 0, 3)
	for _, d := range []time.Duration{-12 * time.Hour, 0, 12 * time.Hour} {
		_, offset := around.Add(d).In(loc).Zone()
		if !containsOffset(offsets, offset) {
			offsets = append(offsets, offset)
		}
	}
	return offsets
}

func containsOffset(offsets []int, offset int) bool {
	for _, o := range offsets {
		if o == offset {
			return true
		}
	}
	return false
}

func containsInstant(instants []time.Time, instant time.Time) bool {
	for _, t := range instants {
		if t.Equal(instant) {
			return true
		}
	}
	return false
}

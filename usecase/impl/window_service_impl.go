package impl

import (
	"context"
	"time"

	"github.com/ca-srg/weekbound/domain"
	"github.com/ca-srg/weekbound/domain/boundary"
	"github.com/ca-srg/weekbound/domain/repository"
	"github.com/ca-srg/weekbound/domain/valueobject"
	usecase "github.com/ca-srg/weekbound/usecase/interface"
)

// WindowServiceImpl implements the WindowService interface
type WindowServiceImpl struct {
	timezoneService repository.TimezoneService
	logger          domain.Logger
}

// NewWindowServiceImpl creates a new instance of WindowServiceImpl
func NewWindowServiceImpl(
	timezoneService repository.TimezoneService,
	logger domain.Logger,
) *WindowServiceImpl {
	return &WindowServiceImpl{
		timezoneService: timezoneService,
		logger:          logger,
	}
}

// ComputeWeekdayWindow computes the previous/next occurrence window for a weekday
func (s *WindowServiceImpl) ComputeWeekdayWindow(filter usecase.WeekdayWindowFilter) (*usecase.WeekdayWindowResult, error) {
	ctx := context.Background()

	if filter.Weekday < time.Sunday || filter.Weekday > time.Saturday {
		return nil, domain.ErrInvalidInput("weekday", "must be between Sunday and Saturday")
	}

	reference := time.Now()
	if filter.Reference != nil {
		reference = *filter.Reference
	}

	result := &usecase.WeekdayWindowResult{
		Reference:       reference,
		Weekday:         filter.Weekday,
		Previous:        boundary.PreviousOccurrence(reference, filter.Weekday),
		Next:            boundary.NextOccurrence(reference, filter.Weekday),
		StartOfPrevious: boundary.StartOfPreviousOccurrence(reference, filter.Weekday),
		EndOfPrevious:   boundary.EndOfPreviousOccurrence(reference, filter.Weekday),
		StartOfNext:     boundary.StartOfNextOccurrence(reference, filter.Weekday),
		EndOfNext:       boundary.EndOfNextOccurrence(reference, filter.Weekday),
	}

	if filter.UTCOnly {
		s.logger.Debug(ctx, "computed weekday window without zone anchoring",
			domain.NewField("reference", reference.Format(time.RFC3339Nano)),
			domain.NewField("weekday", filter.Weekday.String()))
		return result, nil
	}

	loc, err := s.resolveLocation(filter.Timezone)
	if err != nil {
		return nil, err
	}

	zone, err := s.computeZoneWindow(reference, filter.Weekday, loc)
	if err != nil {
		return nil, err
	}
	result.Zone = zone

	s.logger.Debug(ctx, "computed weekday window",
		domain.NewField("reference", reference.Format(time.RFC3339Nano)),
		domain.NewField("weekday", filter.Weekday.String()),
		domain.NewField("timezone", zone.Name),
		domain.NewField("previousResolution", zone.Previous.StartResolution),
		domain.NewField("nextResolution", zone.Next.StartResolution))

	return result, nil
}

func (s *WindowServiceImpl) resolveLocation(name string) (*time.Location, error) {
	if name != "" {
		return s.timezoneService.ResolveLocation(name)
	}
	return s.timezoneService.GetConfiguredTimezone()
}

func (s *WindowServiceImpl) computeZoneWindow(reference time.Time, target time.Weekday, loc *time.Location) (*usecase.ZoneWindowResult, error) {
	previousStart, err := boundary.StartOfPreviousInZone(reference, target, loc)
	if err != nil {
		return nil, err
	}
	previousEnd, err := boundary.EndOfPreviousInZone(reference, target, loc)
	if err != nil {
		return nil, err
	}
	nextStart, err := boundary.StartOfNextInZone(reference, target, loc)
	if err != nil {
		return nil, err
	}
	nextEnd, err := boundary.EndOfNextInZone(reference, target, loc)
	if err != nil {
		return nil, err
	}

	local := reference.UTC().In(loc)

	return &usecase.ZoneWindowResult{
		Name: loc.String(),
		Previous: usecase.ZoneBoundary{
			Start:           previousStart,
			End:             previousEnd,
			StartResolution: midnightResolution(boundary.PreviousOccurrence(local, target), loc),
		},
		Next: usecase.ZoneBoundary{
			Start:           nextStart,
			End:             nextEnd,
			StartResolution: midnightResolution(boundary.NextOccurrence(local, target), loc),
		},
	}, nil
}

// midnightResolution reports how the occurrence day's midnight maps onto the
// zone's timeline, so callers can surface gap/fold adjustments.
func midnightResolution(occurrence time.Time, loc *time.Location) string {
	return boundary.Classify(valueobject.MidnightOf(occurrence), loc).Kind.String()
}

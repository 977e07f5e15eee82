package boundary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ca-srg/weekbound/domain"
)

func TestStartOfNextInZone(t *testing.T) {
	newYork := loadLocation(t, "America/New_York")

	t.Run("result is local midnight of the target weekday", func(t *testing.T) {
		// Friday noon UTC; next Sunday in New York is 2024-03-10, the US
		// spring-forward date. Midnight itself exists (the jump is at 02:00).
		reference := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)

		got, err := StartOfNextInZone(reference, time.Sunday, newYork)

		require.NoError(t, err)
		assert.Equal(t, time.UTC, got.Location())
		assert.Equal(t, time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC), got)

		local := got.In(newYork)
		assert.Equal(t, time.Sunday, local.Weekday())
		assert.Zero(t, local.Hour())
		assert.Zero(t, local.Minute())
	})

	t.Run("weekday is taken from the zone, not the input offset", func(t *testing.T) {
		tokyo := loadLocation(t, "Asia/Tokyo")
		// 2024-06-15 23:00 UTC is already Sunday 08:00 in Tokyo, so the next
		// Sunday there is the 23rd, not the 16th.
		reference := time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC)

		got, err := StartOfNextInZone(reference, time.Sunday, tokyo)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 22, 15, 0, 0, 0, time.UTC), got) // 06-23 00:00 JST
	})

	t.Run("skipped midnight resolves past the gap", func(t *testing.T) {
		saoPaulo := loadLocation(t, "America/Sao_Paulo")
		// Thursday noon; next Sunday is 2018-11-04, whose midnight was
		// erased by Brazil's spring-forward transition.
		reference := time.Date(2018, 11, 1, 12, 0, 0, 0, time.UTC)

		got, err := StartOfNextInZone(reference, time.Sunday, saoPaulo)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2018, 11, 4, 3, 0, 0, 0, time.UTC), got)

		local := got.In(saoPaulo)
		assert.Equal(t, time.Sunday, local.Weekday())
		assert.Equal(t, 1, local.Hour()) // first minute that existed
	})

	t.Run("repeated midnight resolves to the earlier instant", func(t *testing.T) {
		amman := loadLocation(t, "Asia/Amman")
		// Wednesday noon; next Friday is 2021-10-29, whose midnight occurred
		// twice when Jordan's clocks fell back.
		reference := time.Date(2021, 10, 27, 12, 0, 0, 0, time.UTC)

		got, err := StartOfNextInZone(reference, time.Friday, amman)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2021, 10, 28, 21, 0, 0, 0, time.UTC), got)
	})

	t.Run("nil location", func(t *testing.T) {
		_, err := StartOfNextInZone(time.Now(), time.Monday, nil)

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidInput))
	})
}

func TestStartOfPreviousInZone(t *testing.T) {
	newYork := loadLocation(t, "America/New_York")

	t.Run("result is strictly before the input", func(t *testing.T) {
		// Sunday noon UTC; the previous Sunday in New York is a week back.
		reference := time.Date(2023, 11, 12, 12, 0, 0, 0, time.UTC)

		got, err := StartOfPreviousInZone(reference, time.Sunday, newYork)

		require.NoError(t, err)
		// 2023-11-05 00:00 EDT; DST ended later that morning.
		assert.Equal(t, time.Date(2023, 11, 5, 4, 0, 0, 0, time.UTC), got)
		assert.True(t, got.Before(reference))
	})

	t.Run("nil location", func(t *testing.T) {
		_, err := StartOfPreviousInZone(time.Now(), time.Monday, nil)

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidInput))
	})
}

func TestEndOfInZone(t *testing.T) {
	newYork := loadLocation(t, "America/New_York")
	reference := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)

	t.Run("next", func(t *testing.T) {
		start, err := StartOfNextInZone(reference, time.Sunday, newYork)
		require.NoError(t, err)

		end, err := EndOfNextInZone(reference, time.Sunday, newYork)
		require.NoError(t, err)

		assert.Equal(t, start.AddDate(0, 0, 1).Add(-time.Nanosecond), end)
	})

	t.Run("previous", func(t *testing.T) {
		start, err := StartOfPreviousInZone(reference, time.Sunday, newYork)
		require.NoError(t, err)

		end, err := EndOfPreviousInZone(reference, time.Sunday, newYork)
		require.NoError(t, err)

		assert.Equal(t, start.AddDate(0, 0, 1).Add(-time.Nanosecond), end)
	})

	t.Run("nil location", func(t *testing.T) {
		_, err := EndOfNextInZone(reference, time.Sunday, nil)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidInput))

		_, err = EndOfPreviousInZone(reference, time.Sunday, nil)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidInput))
	})
}

func TestZoneRoundTrip(t *testing.T) {
	// Across both US transitions of 2023, every weekday's next-start must
	// project back to local midnight of that weekday.
	newYork := loadLocation(t, "America/New_York")
	references := []time.Time{
		time.Date(2023, 3, 9, 18, 0, 0, 0, time.UTC),  // before DST start
		time.Date(2023, 11, 2, 18, 0, 0, 0, time.UTC), // before DST end
	}

	for _, reference := range references {
		for target := time.Sunday; target <= time.Saturday; target++ {
			start, err := StartOfNextInZone(reference, target, newYork)
			require.NoError(t, err)

			local := start.In(newYork)
			assert.Equal(t, target, local.Weekday(), "reference %s target %s", reference, target)
			assert.Zero(t, local.Hour())
			assert.Zero(t, local.Minute())
			assert.Zero(t, local.Second())
			assert.Zero(t, local.Nanosecond())
			assert.True(t, start.After(reference))
		}
	}
}

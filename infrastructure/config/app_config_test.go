package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "", cfg.Timezone)
	assert.Equal(t, "Sunday", cfg.Weekday)
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Debug)
	require.NotNil(t, cfg.Logging.Promtail)
	assert.Equal(t, 100, cfg.Logging.Promtail.BatchCapacity)
}

func TestAppConfig_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	t.Run("valid timezone", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Timezone = "Asia/Tokyo"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("invalid timezone", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Timezone = "Not/AZone"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Not/AZone")
	})

	t.Run("invalid weekday", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Weekday = "Funday"
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid promtail batch capacity", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Promtail.BatchCapacity = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestAppConfig_LoadFromEnv(t *testing.T) {
	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("WEEKBOUND_TIMEZONE", "Europe/London")
		t.Setenv("WEEKBOUND_WEEKDAY", "Friday")
		t.Setenv("WEEKBOUND_LOG_LEVEL", "debug")
		t.Setenv("WEEKBOUND_LOKI_BATCH_CAPACITY", "25")

		cfg := DefaultConfig()
		require.NoError(t, cfg.LoadFromEnv())

		assert.Equal(t, "Europe/London", cfg.Timezone)
		assert.Equal(t, "Friday", cfg.Weekday)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, 25, cfg.Logging.Promtail.BatchCapacity)
	})

	t.Run("unset variables keep defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.LoadFromEnv())

		assert.Equal(t, 100, cfg.Logging.Promtail.BatchCapacity)
		assert.Equal(t, 5, cfg.Logging.Promtail.TimeoutSeconds)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid environment", func(t *testing.T) {
		t.Setenv("WEEKBOUND_TIMEZONE", "America/New_York")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "America/New_York", cfg.Timezone)
	})

	t.Run("invalid environment fails", func(t *testing.T) {
		t.Setenv("WEEKBOUND_TIMEZONE", "Not/AZone")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"Sunday":    time.Sunday,
		"sunday":    time.Sunday,
		"sun":       time.Sunday,
		"Monday":    time.Monday,
		"MON":       time.Monday,
		"tue":       time.Tuesday,
		"Wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"Friday":    time.Friday,
		" sat ":     time.Saturday,
	}
	for input, want := range cases {
		got, err := ParseWeekday(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseWeekday("Funday")
	assert.Error(t, err)

	_, err = ParseWeekday("")
	assert.Error(t, err)
}

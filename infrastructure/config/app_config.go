package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
)

// PromtailConfig holds Promtail logging configuration
type PromtailConfig struct {
	// URL is the Promtail push endpoint URL
	URL string `json:"url,omitempty" env:"WEEKBOUND_LOKI_URL"`

	// Username is the username for basic authentication
	Username string `json:"username,omitempty" env:"WEEKBOUND_LOKI_USERNAME"`

	// Password is the password for basic authentication
	Password string `json:"password,omitempty" env:"WEEKBOUND_LOKI_PASSWORD"`

	// BatchWaitSeconds is the time to wait before sending a batch
	BatchWaitSeconds int `json:"batch_wait_seconds,omitempty" env:"WEEKBOUND_LOKI_BATCH_WAIT_SECONDS,default=1"`

	// BatchCapacity is the maximum number of log entries in a batch
	BatchCapacity int `json:"batch_capacity,omitempty" env:"WEEKBOUND_LOKI_BATCH_CAPACITY,default=100"`

	// TimeoutSeconds is the timeout for sending logs
	TimeoutSeconds int `json:"timeout_seconds,omitempty" env:"WEEKBOUND_LOKI_TIMEOUT_SECONDS,default=5"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `json:"level,omitempty" env:"WEEKBOUND_LOG_LEVEL,default=info"`

	// Debug enables debug mode with stdout logging
	Debug bool `json:"debug,omitempty" env:"WEEKBOUND_LOG_DEBUG,default=false"`

	// Promtail holds Promtail configuration
	Promtail *PromtailConfig `json:"promtail,omitempty"`
}

// AppConfig holds application configuration
type AppConfig struct {
	// Timezone is the IANA zone name used to anchor day boundaries; empty
	// means detect the system timezone
	Timezone string `json:"timezone,omitempty" env:"WEEKBOUND_TIMEZONE"`

	// Weekday is the default target day of week for CLI invocations
	Weekday string `json:"weekday,omitempty" env:"WEEKBOUND_WEEKDAY,default=Sunday"`

	// Logging holds logging configuration
	Logging *LoggingConfig `json:"logging,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Timezone: "",
		Weekday:  "Sunday",
		Logging: &LoggingConfig{
			Level: "info",
			Debug: false,
			Promtail: &PromtailConfig{
				URL:              "",
				BatchWaitSeconds: 1,
				BatchCapacity:    100,
				TimeoutSeconds:   5,
			},
		},
	}
}

// LoadConfig loads the configuration from defaults and environment variables
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadFromEnv overrides configuration values from environment variables
func (c *AppConfig) LoadFromEnv() error {
	if _, err := env.UnmarshalFromEnviron(c); err != nil {
		return err
	}

	if c.Logging != nil {
		if _, err := env.UnmarshalFromEnviron(c.Logging); err != nil {
			return err
		}
		if c.Logging.Promtail != nil {
			if _, err := env.UnmarshalFromEnviron(c.Logging.Promtail); err != nil {
				return err
			}
		}
	}

	return nil
}

// Validate checks the configuration for invalid values
func (c *AppConfig) Validate() error {
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("timezone %q is not a valid IANA zone name: %w", c.Timezone, err)
		}
	}

	if _, err := ParseWeekday(c.Weekday); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *AppConfig) validateLogging() error {
	if c.Logging == nil {
		return nil
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error: got %q", c.Logging.Level)
	}

	if p := c.Logging.Promtail; p != nil {
		if p.BatchWaitSeconds < 0 {
			return fmt.Errorf("promtail batch wait must not be negative: got %d", p.BatchWaitSeconds)
		}
		if p.BatchCapacity <= 0 {
			return fmt.Errorf("promtail batch capacity must be positive: got %d", p.BatchCapacity)
		}
		if p.TimeoutSeconds <= 0 {
			return fmt.Errorf("promtail timeout must be positive: got %d", p.TimeoutSeconds)
		}
	}

	return nil
}

// ParseWeekday parses a weekday name, accepting full English names and
// three-letter abbreviations in any case.
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	case "tuesday", "tue":
		return time.Tuesday, nil
	case "wednesday", "wed":
		return time.Wednesday, nil
	case "thursday", "thu":
		return time.Thursday, nil
	case "friday", "fri":
		return time.Friday, nil
	case "saturday", "sat":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("unknown weekday: %q", name)
	}
}

package repository

import (
	"time"
)

// TimezoneService defines the interface for timezone-related operations
type TimezoneService interface {
	// ResolveLocation resolves an IANA zone name to a location
	ResolveLocation(name string) (*time.Location, error)

	// GetUserTimezone returns the user's local timezone
	GetUserTimezone() (*time.Location, error)

	// GetConfiguredTimezone returns the configured timezone, falling back to
	// the user's local timezone when none is configured
	GetConfiguredTimezone() (*time.Location, error)

	// GetTimezoneInfo returns timezone information for logging and presentation
	GetTimezoneInfo() TimezoneInfo
}

// TimezoneInfo contains timezone information for logging and presentation
type TimezoneInfo struct {
	// Name is the timezone name (e.g., "America/New_York", "Asia/Tokyo")
	Name string

	// Offset is the UTC offset in the format "+09:00" or "-05:00"
	Offset string

	// OffsetSeconds is the offset from UTC in seconds
	OffsetSeconds int

	// IsDST indicates whether daylight saving time is currently active
	IsDST bool

	// DetectionMethod indicates how the timezone was determined
	// Values: "system", "config", "fallback"
	DetectionMethod string
}

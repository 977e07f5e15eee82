package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ca-srg/weekbound/domain"
	"github.com/ca-srg/weekbound/domain/repository"
	"github.com/ca-srg/weekbound/infrastructure/config"
)

// TimezoneServiceImpl implements the TimezoneService interface
type TimezoneServiceImpl struct {
	config       *config.AppConfig
	logger       domain.Logger
	locationMu   sync.RWMutex
	userLocation *time.Location
	resolved     map[string]*time.Location
	detectionMu  sync.Mutex
	detected     bool
}

// NewTimezoneServiceImpl creates a new instance of TimezoneServiceImpl
func NewTimezoneServiceImpl(config *config.AppConfig, logger domain.Logger) *TimezoneServiceImpl {
	return &TimezoneServiceImpl{
		config:   config,
		logger:   logger,
		resolved: make(map[string]*time.Location),
	}
}

// ResolveLocation resolves an IANA zone name to a location. Resolved
// locations are cached for the lifetime of the service.
func (s *TimezoneServiceImpl) ResolveLocation(name string) (*time.Location, error) {
	if name == "" {
		return s.GetConfiguredTimezone()
	}

	s.locationMu.RLock()
	if loc, ok := s.resolved[name]; ok {
		s.locationMu.RUnlock()
		return loc, nil
	}
	s.locationMu.RUnlock()

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, domain.ErrTimezoneParse(name, err)
	}

	s.locationMu.Lock()
	s.resolved[name] = loc
	s.locationMu.Unlock()

	return loc, nil
}

// GetUserTimezone returns the user's local timezone
func (s *TimezoneServiceImpl) GetUserTimezone() (*time.Location, error) {
	s.locationMu.RLock()
	if s.userLocation != nil {
		s.locationMu.RUnlock()
		return s.userLocation, nil
	}
	s.locationMu.RUnlock()

	return s.detectSystemTimezone()
}

// GetConfiguredTimezone returns the configured timezone, falling back to
// the user's local timezone when none is configured
func (s *TimezoneServiceImpl) GetConfiguredTimezone() (*time.Location, error) {
	if s.config != nil && s.config.Timezone != "" {
		return s.ResolveLocation(s.config.Timezone)
	}
	return s.GetUserTimezone()
}

// GetTimezoneInfo returns timezone information for logging and presentation
func (s *TimezoneServiceImpl) GetTimezoneInfo() repository.TimezoneInfo {
	method := "system"
	if s.config != nil && s.config.Timezone != "" {
		method = "config"
	}

	loc, err := s.GetConfiguredTimezone()
	if err != nil {
		// Return UTC info if timezone resolution fails
		return repository.TimezoneInfo{
			Name:            "UTC",
			Offset:          "+00:00",
			OffsetSeconds:   0,
			IsDST:           false,
			DetectionMethod: "fallback",
		}
	}

	// Get current time in the timezone
	now := time.Now().In(loc)
	_, offset := now.Zone()

	// Format offset as +HH:MM or -HH:MM
	sign := "+"
	offsetSeconds := offset
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	offsetStr := fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)

	return repository.TimezoneInfo{
		Name:            loc.String(),
		Offset:          offsetStr,
		OffsetSeconds:   offsetSeconds,
		IsDST:           now.IsDST(),
		DetectionMethod: method,
	}
}

// detectSystemTimezone detects the system timezone
func (s *TimezoneServiceImpl) detectSystemTimezone() (*time.Location, error) {
	s.detectionMu.Lock()
	defer s.detectionMu.Unlock()

	// Check if already detected
	s.locationMu.RLock()
	if s.detected && s.userLocation != nil {
		s.locationMu.RUnlock()
		return s.userLocation, nil
	}
	s.locationMu.RUnlock()

	// Try multiple detection methods
	var loc *time.Location
	var err error

	// Method 1: Use time.Local (most reliable)
	loc = time.Local
	if loc != nil && loc.String() != "Local" {
		s.logger.Debug(context.Background(), "Detected timezone using time.Local",
			domain.NewField("timezone", loc.String()))
		s.setUserLocation(loc)
		return loc, nil
	}

	// Method 2: Check TZ environment variable
	if tzEnv := os.Getenv("TZ"); tzEnv != "" {
		loc, err = time.LoadLocation(tzEnv)
		if err == nil {
			s.logger.Debug(context.Background(), "Detected timezone from TZ environment variable",
				domain.NewField("timezone", loc.String()))
			s.setUserLocation(loc)
			return loc, nil
		}
		s.logger.Warn(context.Background(), "Failed to load timezone from TZ environment variable",
			domain.NewField("TZ", tzEnv),
			domain.NewField("error", err.Error()))
	}

	// Method 3: Read /etc/localtime symlink (Unix/Linux)
	if linkPath, err := os.Readlink("/etc/localtime"); err == nil {
		// Extract timezone name from path (e.g., /usr/share/zoneinfo/America/New_York)
		parts := strings.Split(linkPath, "/zoneinfo/")
		if len(parts) > 1 {
			tzName := parts[1]
			loc, err = time.LoadLocation(tzName)
			if err == nil {
				s.logger.Debug(context.Background(), "Detected timezone from /etc/localtime",
					domain.NewField("timezone", loc.String()))
				s.setUserLocation(loc)
				return loc, nil
			}
		}
	}

	// Fallback to UTC
	s.logger.Warn(context.Background(), "Failed to detect system timezone, using UTC as fallback")
	loc = time.UTC
	s.setUserLocation(loc)
	return loc, domain.ErrTimezoneDetection("UTC")
}

// setUserLocation sets the user location with proper locking
func (s *TimezoneServiceImpl) setUserLocation(loc *time.Location) {
	s.locationMu.Lock()
	defer s.locationMu.Unlock()
	s.userLocation = loc
	s.detected = true
}

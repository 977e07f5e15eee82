package presenter

import (
	"github.com/ca-srg/weekbound/domain/repository"
	usecase "github.com/ca-srg/weekbound/usecase/interface"
)

// ConsolePresenter handles console output formatting
type ConsolePresenter interface {
	// Version and basic output
	PrintVersion()
	PrintError(err error)

	// Window output
	PrintWeekdayWindow(result *usecase.WeekdayWindowResult) error
	PrintWeekdayWindowVerbose(result *usecase.WeekdayWindowResult) error

	// Timezone output
	PrintTimezoneInfo(info repository.TimezoneInfo) error
}

// JSONPresenter handles JSON output formatting
type JSONPresenter interface {
	// Window output
	PrintWeekdayWindow(result *usecase.WeekdayWindowResult) error

	// Timezone output
	PrintTimezoneInfo(info repository.TimezoneInfo) error

	// Error output
	PrintError(err error) error
}

package cli

import (
	"fmt"
	"time"

	"github.com/ca-srg/weekbound/interface/presenter"
	usecase "github.com/ca-srg/weekbound/usecase/interface"
)

// CLIController handles command-line interface operations
type CLIController struct {
	windowService    usecase.WindowService
	consolePresenter presenter.ConsolePresenter
	jsonPresenter    presenter.JSONPresenter

	weekday    time.Weekday
	reference  *time.Time
	timezone   string
	utcOnly    bool
	jsonOutput bool
	verbose    bool
}

// NewCLIController creates a new CLI controller
func NewCLIController(
	windowService usecase.WindowService,
	consolePresenter presenter.ConsolePresenter,
	jsonPresenter presenter.JSONPresenter,
) *CLIController {
	return &CLIController{
		windowService:    windowService,
		consolePresenter: consolePresenter,
		jsonPresenter:    jsonPresenter,
	}
}

// SetWeekday sets the target day of week
func (c *CLIController) SetWeekday(weekday time.Weekday) {
	c.weekday = weekday
}

// SetReference sets the reference instant; nil means the current time
func (c *CLIController) SetReference(reference *time.Time) {
	c.reference = reference
}

// SetTimezone sets the IANA zone name overriding the configured timezone
func (c *CLIController) SetTimezone(timezone string) {
	c.timezone = timezone
}

// SetUTCOnly skips the zone-anchored boundaries
func (c *CLIController) SetUTCOnly(utcOnly bool) {
	c.utcOnly = utcOnly
}

// SetJSONOutput switches output to the JSON presenter
func (c *CLIController) SetJSONOutput(jsonOutput bool) {
	c.jsonOutput = jsonOutput
}

// SetVerbose enables the full boundary table on console output
func (c *CLIController) SetVerbose(verbose bool) {
	c.verbose = verbose
}

// Run executes one window computation and prints the result
func (c *CLIController) Run() error {
	if c.windowService == nil {
		return fmt.Errorf("window service is not configured")
	}

	result, err := c.windowService.ComputeWeekdayWindow(usecase.WeekdayWindowFilter{
		Reference: c.reference,
		Weekday:   c.weekday,
		Timezone:  c.timezone,
		UTCOnly:   c.utcOnly,
	})
	if err != nil {
		if c.jsonOutput {
			_ = c.jsonPresenter.PrintError(err)
		} else {
			c.consolePresenter.PrintError(err)
		}
		return err
	}

	if c.jsonOutput {
		return c.jsonPresenter.PrintWeekdayWindow(result)
	}
	if c.verbose {
		return c.consolePresenter.PrintWeekdayWindowVerbose(result)
	}
	return c.consolePresenter.PrintWeekdayWindow(result)
}

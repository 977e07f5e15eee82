package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ca-srg/weekbound/infrastructure/config"
	"github.com/ca-srg/weekbound/infrastructure/di"

	_ "time/tzdata"
)

func main() {
	// Parse command line flags
	var (
		weekdayFlag = flag.String("weekday", "", "Target day of week (e.g. Sunday, mon); defaults to the configured weekday")
		atFlag      = flag.String("at", "", "Reference instant in RFC 3339 format; defaults to now")
		tzFlag      = flag.String("tz", "", "IANA zone name overriding the configured timezone")
		utcOnly     = flag.Bool("utc", false, "Skip zone-anchored boundaries")
		jsonOutput  = flag.Bool("json", false, "Output as JSON")
		verbose     = flag.Bool("verbose", false, "Print the full boundary table")
		debugMode   = flag.Bool("debug", false, "Enable debug logging to stdout")
		showVersion = flag.Bool("version", false, "Print version and exit")
		showZone    = flag.Bool("tz-info", false, "Print the resolved timezone and exit")
	)
	flag.Parse()

	// Create DI container with options
	opts := []di.ContainerOption{}
	if *debugMode {
		opts = append(opts, di.WithDebugMode(true))
	}

	container, err := di.NewContainer(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = container.Shutdown()
	}()

	if *showVersion {
		container.GetConsolePresenter().PrintVersion()
		return
	}

	if *showZone {
		info := container.GetTimezoneService().GetTimezoneInfo()
		if *jsonOutput {
			if err := container.GetJSONPresenter().PrintTimezoneInfo(info); err != nil {
				os.Exit(1)
			}
		} else {
			if err := container.GetConsolePresenter().PrintTimezoneInfo(info); err != nil {
				os.Exit(1)
			}
		}
		return
	}

	cfg := container.GetConfig()

	// Resolve the target weekday from the flag or configuration
	weekdayName := cfg.Weekday
	if *weekdayFlag != "" {
		weekdayName = *weekdayFlag
	}
	weekday, err := config.ParseWeekday(weekdayName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid weekday: %v\n", err)
		os.Exit(1)
	}

	// Resolve the reference instant
	var reference *time.Time
	if *atFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid reference instant: %v\n", err)
			os.Exit(1)
		}
		reference = &parsed
	}

	cliController := container.GetCLIController()
	cliController.SetWeekday(weekday)
	cliController.SetReference(reference)
	cliController.SetTimezone(*tzFlag)
	cliController.SetUTCOnly(*utcOnly)
	cliController.SetJSONOutput(*jsonOutput)
	cliController.SetVerbose(*verbose)

	if err := cliController.Run(); err != nil {
		os.Exit(1)
	}
}

package presenter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ca-srg/weekbound/domain/repository"
	usecase "github.com/ca-srg/weekbound/usecase/interface"
)

// ConsolePresenterImpl implements ConsolePresenter for terminal output
type ConsolePresenterImpl struct {
	writer io.Writer
}

// NewConsolePresenter creates a new console presenter
func NewConsolePresenter() *ConsolePresenterImpl {
	return &ConsolePresenterImpl{
		writer: os.Stdout,
	}
}

// PrintVersion prints version information
func (p *ConsolePresenterImpl) PrintVersion() {
	_, _ = fmt.Fprintln(p.writer, "weekbound version 1.0.0")
}

// PrintError prints an error message
func (p *ConsolePresenterImpl) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// PrintWeekdayWindow prints the window boundaries (simple format)
func (p *ConsolePresenterImpl) PrintWeekdayWindow(result *usecase.WeekdayWindowResult) error {
	_, _ = fmt.Fprintf(p.writer, "previous: %s\n", p.formatTime(result.Previous))
	_, _ = fmt.Fprintf(p.writer, "next:     %s\n", p.formatTime(result.Next))
	return nil
}

// PrintWeekdayWindowVerbose prints the full window with day boundaries
func (p *ConsolePresenterImpl) PrintWeekdayWindowVerbose(result *usecase.WeekdayWindowResult) error {
	_, _ = fmt.Fprintf(p.writer, "Weekday Window: %s\n", result.Weekday)
	_, _ = fmt.Fprintln(p.writer, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(p.writer, "Reference: %s\n", p.formatTime(result.Reference))
	_, _ = fmt.Fprintln(p.writer)

	// Occurrence table
	w := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "\tOccurrence\tStart of Day\tEnd of Day\n")
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 8),
		strings.Repeat("-", 25),
		strings.Repeat("-", 25),
		strings.Repeat("-", 25))
	_, _ = fmt.Fprintf(w, "Previous\t%s\t%s\t%s\n",
		p.formatTime(result.Previous),
		p.formatTime(result.StartOfPrevious),
		p.formatTime(result.EndOfPrevious))
	_, _ = fmt.Fprintf(w, "Next\t%s\t%s\t%s\n",
		p.formatTime(result.Next),
		p.formatTime(result.StartOfNext),
		p.formatTime(result.EndOfNext))
	_ = w.Flush()

	if result.Zone != nil {
		_, _ = fmt.Fprintln(p.writer)
		_, _ = fmt.Fprintf(p.writer, "Zone-anchored boundaries (%s, UTC instants):\n", result.Zone.Name)

		zw := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(zw, "\tStart (UTC)\tEnd (UTC)\tResolution\n")
		_, _ = fmt.Fprintf(zw, "%s\t%s\t%s\t%s\n",
			strings.Repeat("-", 8),
			strings.Repeat("-", 25),
			strings.Repeat("-", 25),
			strings.Repeat("-", 10))
		_, _ = fmt.Fprintf(zw, "Previous\t%s\t%s\t%s\n",
			p.formatTime(result.Zone.Previous.Start),
			p.formatTime(result.Zone.Previous.End),
			result.Zone.Previous.StartResolution)
		_, _ = fmt.Fprintf(zw, "Next\t%s\t%s\t%s\n",
			p.formatTime(result.Zone.Next.Start),
			p.formatTime(result.Zone.Next.End),
			result.Zone.Next.StartResolution)
		_ = zw.Flush()
	}

	return nil
}

// PrintTimezoneInfo prints resolved timezone information
func (p *ConsolePresenterImpl) PrintTimezoneInfo(info repository.TimezoneInfo) error {
	_, _ = fmt.Fprintf(p.writer, "Timezone: %s (%s)\n", info.Name, info.Offset)
	_, _ = fmt.Fprintf(p.writer, "DST active: %t\n", info.IsDST)
	_, _ = fmt.Fprintf(p.writer, "Detected via: %s\n", info.DetectionMethod)
	return nil
}

// Helper methods

func (p *ConsolePresenterImpl) formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// SetWriter sets the output writer (mainly for testing)
func (p *ConsolePresenterImpl) SetWriter(w io.Writer) {
	p.writer = w
}

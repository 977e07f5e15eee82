package presenter

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/ca-srg/weekbound/domain/repository"
	usecase "github.com/ca-srg/weekbound/usecase/interface"
)

// JSONPresenterImpl implements JSONPresenter for JSON output
type JSONPresenterImpl struct {
	writer  io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter
func NewJSONPresenter() *JSONPresenterImpl {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return &JSONPresenterImpl{
		writer:  os.Stdout,
		encoder: encoder,
	}
}

// PrintWeekdayWindow prints a window result as JSON
func (p *JSONPresenterImpl) PrintWeekdayWindow(result *usecase.WeekdayWindowResult) error {
	data := map[string]interface{}{
		"reference": result.Reference.Format(time.RFC3339Nano),
		"weekday":   result.Weekday.String(),
		"previous": map[string]interface{}{
			"occurrence": result.Previous.Format(time.RFC3339Nano),
			"startOfDay": result.StartOfPrevious.Format(time.RFC3339Nano),
			"endOfDay":   result.EndOfPrevious.Format(time.RFC3339Nano),
		},
		"next": map[string]interface{}{
			"occurrence": result.Next.Format(time.RFC3339Nano),
			"startOfDay": result.StartOfNext.Format(time.RFC3339Nano),
			"endOfDay":   result.EndOfNext.Format(time.RFC3339Nano),
		},
	}

	if result.Zone != nil {
		data["zone"] = map[string]interface{}{
			"name": result.Zone.Name,
			"previous": map[string]interface{}{
				"startUTC":   result.Zone.Previous.Start.Format(time.RFC3339Nano),
				"endUTC":     result.Zone.Previous.End.Format(time.RFC3339Nano),
				"resolution": result.Zone.Previous.StartResolution,
			},
			"next": map[string]interface{}{
				"startUTC":   result.Zone.Next.Start.Format(time.RFC3339Nano),
				"endUTC":     result.Zone.Next.End.Format(time.RFC3339Nano),
				"resolution": result.Zone.Next.StartResolution,
			},
		}
	}

	return p.encoder.Encode(data)
}

// PrintTimezoneInfo prints timezone information as JSON
func (p *JSONPresenterImpl) PrintTimezoneInfo(info repository.TimezoneInfo) error {
	data := map[string]interface{}{
		"name":            info.Name,
		"offset":          info.Offset,
		"offsetSeconds":   info.OffsetSeconds,
		"isDST":           info.IsDST,
		"detectionMethod": info.DetectionMethod,
	}
	return p.encoder.Encode(data)
}

// PrintError prints an error as JSON
func (p *JSONPresenterImpl) PrintError(err error) error {
	data := map[string]interface{}{
		"error": map[string]string{
			"message": err.Error(),
		},
	}

	// Use stderr for errors
	encoder := json.NewEncoder(os.Stderr)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// SetWriter sets the output writer (mainly for testing)
func (p *JSONPresenterImpl) SetWriter(w io.Writer) {
	p.writer = w
	p.encoder = json.NewEncoder(w)
	p.encoder.SetIndent("", "  ")
}

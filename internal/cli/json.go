package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/rileyhilliard/dayline/internal/errors"
	"github.com/rileyhilliard/dayline/internal/timeline"
	"github.com/rileyhilliard/dayline/internal/ui"
)

// Machine mode flag - when true, outputs JSON and suppresses human-friendly decorations
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Cause      string `json:"cause,omitempty"`
}

// ErrCodeUnknown marks errors that carry no structured code.
const ErrCodeUnknown = "UNKNOWN"

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError. Structured errors keep
// their code (CONFIG, FETCH, PARSE, RENDER); anything else is UNKNOWN.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	code := errors.CodeOf(err)
	if code == "" {
		return &JSONError{Code: ErrCodeUnknown, Message: err.Error()}
	}

	jsonErr := &JSONError{Code: code, Message: errors.MessageOf(err)}
	var dlErr *errors.Error
	if stderrors.As(err, &dlErr) {
		jsonErr.Suggestion = dlErr.Suggestion
		if dlErr.Cause != nil {
			jsonErr.Cause = dlErr.Cause.Error()
		}
	}
	return jsonErr
}

// TimelineJSON is the --json payload: the grid as runs, plus the legend.
type TimelineJSON struct {
	Day          string       `json:"day"`
	Resolution   int          `json:"resolution"`
	SlotsPerHour int          `json:"slots_per_hour"`
	Width        int          `json:"width"`
	Rows         []RowJSON    `json:"rows"`
	Legend       []LegendJSON `json:"legend"`
}

// RowJSON is one hour of runs.
type RowJSON struct {
	Hour int       `json:"hour"`
	Runs []RunJSON `json:"runs"`
}

// RunJSON is a run of cells; start and end are slot offsets within the hour.
// Empty runs have no tag or color.
type RunJSON struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Tag   string `json:"tag,omitempty"`
	Color *int   `json:"color,omitempty"`
	Label string `json:"label,omitempty"`
	Pad   int    `json:"pad,omitempty"`
}

// LegendJSON is a legend entry with its visible time.
type LegendJSON struct {
	Tag      string `json:"tag"`
	Color    int    `json:"color"`
	Seconds  int64  `json:"seconds"`
	Duration string `json:"duration"`
}

// NewTimelineJSON flattens a timeline for encoding.
func NewTimelineJSON(tl *timeline.Timeline) TimelineJSON {
	out := TimelineJSON{
		Day:          tl.Day.Format(DayLayout),
		Resolution:   tl.Grid.Resolution,
		SlotsPerHour: tl.Grid.SlotsPerHour,
		Width:        tl.TotalWidth(),
		Rows:         make([]RowJSON, len(tl.Rows)),
		Legend:       make([]LegendJSON, len(tl.Legend)),
	}

	for h, runs := range tl.Rows {
		row := RowJSON{Hour: h, Runs: make([]RunJSON, len(runs))}
		for i, r := range runs {
			rj := RunJSON{Start: r.Start, End: r.End}
			if r.Occupied {
				c := int(r.Color)
				rj.Tag = r.Tag
				rj.Color = &c
				rj.Label = r.Label
				rj.Pad = r.Pad
			}
			row.Runs[i] = rj
		}
		out.Rows[h] = row
	}

	for i, e := range tl.Legend {
		out.Legend[i] = LegendJSON{
			Tag:      e.Tag,
			Color:    int(e.Color),
			Seconds:  int64(e.Duration.Seconds()),
			Duration: ui.FormatDuration(e.Duration),
		}
	}
	return out
}

package timeline

import "time"

// TimestampLayout is the compact UTC format used by timew export.
const TimestampLayout = "20060102T150405Z"

// DefaultTag labels intervals recorded without any tags.
const DefaultTag = "default"

// RawRecord is a single interval as exported by the time tracker.
// An empty End means the interval is still running.
type RawRecord struct {
	Start string   `json:"start"`
	End   string   `json:"end,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// Interval is a record clipped to one day with its resolved tag and color.
type Interval struct {
	Start time.Time
	End   time.Time
	Tag   string
	Color Color

	// Record is the index of the RawRecord this interval came from.
	Record int
}

// ParseTimestamp parses a TimestampLayout value as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

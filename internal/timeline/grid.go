package timeline

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/dayline/internal/errors"
)

// HoursPerDay is the number of grid rows.
const HoursPerDay = 24

// Cell is one grid slot. The zero value is an empty slot.
type Cell struct {
	Occupied bool
	Tag      string
	Color    Color

	// Interval indexes Grid.Intervals; meaningful only when Occupied.
	Interval int
}

// Span is the half-open cell range [Start, End) an interval was painted on.
type Span struct {
	Start int
	End   int
}

// Len returns the number of cells in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// LegendEntry describes one distinct tag on the grid.
type LegendEntry struct {
	Tag   string
	Color Color

	// Duration is the visible time the tag covers after overlaps resolved.
	Duration time.Duration
}

// Legend lists tags in the order they were first painted.
type Legend []LegendEntry

// Grid is a day of HoursPerDay rows by SlotsPerHour cells, stored contiguously.
// Only Rasterize writes to it.
type Grid struct {
	Resolution   int
	SlotsPerHour int

	// Intervals and Spans are parallel: Spans[i] is where Intervals[i] was painted.
	Intervals []Interval
	Spans     []Span

	Legend Legend

	cells []Cell
}

// NewGrid allocates an empty grid with resolution slots per minute.
func NewGrid(resolution int) (*Grid, error) {
	if resolution < 1 {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Resolution %d is out of range", resolution),
			"Resolution must be at least 1 slot per minute.")
	}
	sph := 60 * resolution
	return &Grid{
		Resolution:   resolution,
		SlotsPerHour: sph,
		cells:        make([]Cell, HoursPerDay*sph),
	}, nil
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// SlotDuration returns the time one cell represents.
func (g *Grid) SlotDuration() time.Duration {
	return time.Minute / time.Duration(g.Resolution)
}

// cellAt returns the cell at (hour, slot).
func (g *Grid) cellAt(hour, slot int) Cell {
	return g.cells[hour*g.SlotsPerHour+slot]
}

// Row returns a copy of one hour's cells.
func (g *Grid) Row(hour int) []Cell {
	start := hour * g.SlotsPerHour
	row := make([]Cell, g.SlotsPerHour)
	copy(row, g.cells[start:start+g.SlotsPerHour])
	return row
}

// row returns the backing slice for an hour without copying.
func (g *Grid) row(hour int) []Cell {
	start := hour * g.SlotsPerHour
	return g.cells[start : start+g.SlotsPerHour]
}

// StartIndex maps a wall-clock time to the cell it falls in.
func (g *Grid) StartIndex(t time.Time) int {
	return t.Hour()*g.SlotsPerHour + t.Minute()*g.Resolution + t.Second()*g.Resolution/60
}

// EndIndex maps an exclusive end time to a cell index. The end-of-day clamp
// (23:59:59.999) maps to Len so the last slot is covered.
func (g *Grid) EndIndex(t time.Time) int {
	if t.Hour() == 23 && t.Minute() == 59 && t.Second() == 59 && t.Nanosecond() >= int(999*time.Millisecond) {
		return g.Len()
	}
	return g.StartIndex(t)
}

// Rasterize paints intervals onto a new grid in order; later intervals
// overwrite earlier ones. Zero-length intervals paint nothing. Intervals
// must already be clipped to a single day.
func Rasterize(intervals []Interval, resolution int) (*Grid, error) {
	g, err := NewGrid(resolution)
	if err != nil {
		return nil, err
	}

	g.Intervals = append([]Interval(nil), intervals...)
	g.Spans = make([]Span, len(intervals))

	seen := make(map[string]bool)
	for i, iv := range g.Intervals {
		span := Span{Start: g.StartIndex(iv.Start), End: g.EndIndex(iv.End)}
		if span.End < span.Start {
			// Wall clock can run backwards across a DST fall-back.
			span.End = span.Start
		}
		if span.Start < 0 || span.End > g.Len() {
			return nil, errors.New(errors.ErrConfig,
				fmt.Sprintf("Interval %d maps to cells %d-%d outside a %d-cell grid", i, span.Start, span.End, g.Len()),
				"Check the resolution setting.")
		}
		g.Spans[i] = span

		for k := span.Start; k < span.End; k++ {
			g.cells[k] = Cell{Occupied: true, Tag: iv.Tag, Color: iv.Color, Interval: i}
		}

		if span.Len() > 0 && !seen[iv.Tag] {
			seen[iv.Tag] = true
			g.Legend = append(g.Legend, LegendEntry{Tag: iv.Tag, Color: iv.Color})
		}
	}

	g.tallyLegend()
	return g, nil
}

// tallyLegend fills in each legend entry's visible duration.
func (g *Grid) tallyLegend() {
	counts := make(map[string]int, len(g.Legend))
	for _, c := range g.cells {
		if c.Occupied {
			counts[c.Tag]++
		}
	}
	slot := g.SlotDuration()
	for i := range g.Legend {
		g.Legend[i].Duration = time.Duration(counts[g.Legend[i].Tag]) * slot
	}
}

// Occupied returns the number of painted cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c.Occupied {
			n++
		}
	}
	return n
}

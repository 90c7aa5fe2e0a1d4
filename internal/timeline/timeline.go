package timeline

import (
	"time"

	"github.com/rileyhilliard/dayline/internal/logger"
)

// Options configures Build. The zero value is not usable: Resolution must be
// at least 1.
type Options struct {
	Resolution int

	// HighTags and LowTags drive TagResolver.
	HighTags []string
	LowTags  []string

	// TagColors pins tags to xterm-256 codes.
	TagColors map[string]int

	// Location is the zone the day is rendered in; nil means the day's own.
	Location *time.Location

	Logger logger.Logger
}

// Timeline is a rendered-ready day.
type Timeline struct {
	Day    time.Time // midnight of the rendered day
	Grid   *Grid
	Rows   [][]Run
	Legend Legend
}

// TotalWidth returns the display width of every rendered row: the hour
// label, the cells, and two border columns.
func (t *Timeline) TotalWidth() int {
	return RowWidth(t.Grid.SlotsPerHour)
}

// RowWidth is the fixed rendered row width for a grid row of slotsPerHour cells.
func RowWidth(slotsPerHour int) int {
	// "│" + "HH:00 " + cells + "│"
	return 1 + 6 + slotsPerHour + 1
}

// Build runs the whole pipeline for day's calendar date. now stands in for
// the end of still-running intervals.
func Build(records []RawRecord, day, now time.Time, opts Options) (*Timeline, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	if opts.Location != nil {
		day = day.In(opts.Location)
	}

	// Fail on bad configuration before touching any records.
	if _, err := NewGrid(opts.Resolution); err != nil {
		return nil, err
	}

	resolver := NewTagResolver(opts.HighTags, opts.LowTags)
	palette := NewPalette(opts.TagColors)

	intervals, err := Normalize(day, now, records, resolver, palette)
	if err != nil {
		return nil, err
	}
	log.Debug("normalized %d of %d records for %s", len(intervals), len(records), day.Format("2006-01-02"))

	grid, err := Rasterize(intervals, opts.Resolution)
	if err != nil {
		return nil, err
	}
	log.Debug("painted %d of %d cells, %d tags", grid.Occupied(), grid.Len(), len(grid.Legend))

	rows := PlaceLabels(grid, Compact(grid))

	return &Timeline{
		Day:    StartOfDay(day),
		Grid:   grid,
		Rows:   rows,
		Legend: grid.Legend,
	}, nil
}

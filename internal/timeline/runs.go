package timeline

import (
	"strings"
)

// Run is a maximal span of cells in one row sharing occupancy, tag, and color.
type Run struct {
	Row   int
	Start int // first slot in the row
	End   int // exclusive

	Occupied bool
	Tag      string
	Color    Color

	// Label is the text drawn inside the run, already fitted to Width.
	// Pad is the number of fill columns before it.
	Label string
	Pad   int
}

// Width returns the number of cells the run covers.
func (r Run) Width() int {
	return r.End - r.Start
}

// Text returns exactly Width display columns: the label centered in fill.
func (r Run) Text(fill rune) string {
	w := r.Width()
	if r.Label == "" {
		return strings.Repeat(string(fill), w)
	}

	right := w - r.Pad - DisplayWidth(r.Label)
	if right < 0 {
		right = 0
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(string(fill), r.Pad))
	b.WriteString(r.Label)
	b.WriteString(strings.Repeat(string(fill), right))
	return b.String()
}

// Compact merges each row's cells into runs, left to right. The widths of a
// row's runs always sum to SlotsPerHour.
func Compact(g *Grid) [][]Run {
	rows := make([][]Run, HoursPerDay)
	for h := 0; h < HoursPerDay; h++ {
		rows[h] = compactRow(h, g.row(h))
	}
	return rows
}

func compactRow(hour int, cells []Cell) []Run {
	var runs []Run
	for i, c := range cells {
		if n := len(runs); n > 0 && sameRun(runs[n-1], c) {
			runs[n-1].End = i + 1
			continue
		}
		runs = append(runs, Run{
			Row:      hour,
			Start:    i,
			End:      i + 1,
			Occupied: c.Occupied,
			Tag:      c.Tag,
			Color:    c.Color,
		})
	}
	return runs
}

func sameRun(r Run, c Cell) bool {
	if r.Occupied != c.Occupied {
		return false
	}
	if !c.Occupied {
		return true
	}
	return r.Tag == c.Tag && r.Color == c.Color
}

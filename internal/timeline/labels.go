package timeline

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// PlaceLabels returns a copy of rows where exactly one run per (row, tag)
// carries the tag as its label.
//
// The carrier is chosen from the longest interval of that tag visible in the
// row: the run containing the midpoint of that interval's in-row span. When
// the midpoint cell was overwritten by another tag, the widest run of the tag
// (leftmost on ties) carries the label instead.
func PlaceLabels(g *Grid, rows [][]Run) [][]Run {
	out := make([][]Run, len(rows))
	for h, runs := range rows {
		out[h] = append([]Run(nil), runs...)
		placeRowLabels(g, h, out[h])
	}
	return out
}

func placeRowLabels(g *Grid, hour int, runs []Run) {
	rowStart := hour * g.SlotsPerHour
	rowEnd := rowStart + g.SlotsPerHour

	// Tags in first-seen order, each with the intervals visible in this row.
	var tags []string
	visible := make(map[string][]int)
	for _, c := range g.row(hour) {
		if !c.Occupied {
			continue
		}
		ivs, ok := visible[c.Tag]
		if !ok {
			tags = append(tags, c.Tag)
		}
		if len(ivs) == 0 || ivs[len(ivs)-1] != c.Interval {
			visible[c.Tag] = appendUnique(ivs, c.Interval)
		}
	}

	for _, tag := range tags {
		best, bestLen := -1, 0
		var bestSpan Span
		for _, iv := range visible[tag] {
			s := clipSpan(g.Spans[iv], rowStart, rowEnd)
			if s.Len() > bestLen || (s.Len() == bestLen && iv < best) {
				best, bestLen, bestSpan = iv, s.Len(), s
			}
		}
		if best < 0 {
			continue
		}

		mid := (bestSpan.Start+bestSpan.End)/2 - rowStart
		k := carrierRun(runs, tag, mid)
		if k < 0 {
			continue
		}
		runs[k].Label, runs[k].Pad = FitLabel(tag, runs[k].Width())
	}
}

// carrierRun returns the index of the run of tag containing slot, falling
// back to the widest run of tag.
func carrierRun(runs []Run, tag string, slot int) int {
	widest := -1
	for i, r := range runs {
		if !r.Occupied || r.Tag != tag {
			continue
		}
		if slot >= r.Start && slot < r.End {
			return i
		}
		if widest < 0 || r.Width() > runs[widest].Width() {
			widest = i
		}
	}
	return widest
}

func clipSpan(s Span, lo, hi int) Span {
	if s.Start < lo {
		s.Start = lo
	}
	if s.End > hi {
		s.End = hi
	}
	if s.End < s.Start {
		s.End = s.Start
	}
	return s
}

func appendUnique(ivs []int, iv int) []int {
	for _, v := range ivs {
		if v == iv {
			return ivs
		}
	}
	return append(ivs, iv)
}

// FitLabel fits label into width display columns. A label that is too wide
// is truncated; a narrower one is centered, with the odd column of padding
// going to the left. It returns the text and its left padding.
func FitLabel(label string, width int) (string, int) {
	if width <= 0 {
		return "", 0
	}

	label = CleanLabel(label)
	lw := DisplayWidth(label)
	if lw > width {
		return ansi.Truncate(label, width, ""), 0
	}

	pad := width - lw
	return label, pad - pad/2
}

// CleanLabel drops control characters and line or paragraph separators so a
// tag always draws on one line without escape sequences.
func CleanLabel(label string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.In(r, unicode.Zl, unicode.Zp) {
			return -1
		}
		return r
	}, label)
}

// DisplayWidth is the number of terminal columns s occupies, measured the
// same way the renderer measures rows.
func DisplayWidth(s string) int {
	return ansi.StringWidth(s)
}

package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rileyhilliard/dayline/internal/config"
	"github.com/rileyhilliard/dayline/internal/errors"
	"github.com/rileyhilliard/dayline/internal/timeline"
)

// TitleDateLayout formats the day in the title line.
const TitleDateLayout = "Mon, 02 Jan 2006"

// FooterTimeLayout formats the report timestamp.
const FooterTimeLayout = "2006-01-02 15:04:05"

// legendSwatch is the width of the color sample in front of each legend entry.
const legendSwatch = 5

// TimelineRenderer draws a built timeline as framed terminal text. It makes
// no layout decisions of its own: runs, labels, and legend come from the
// timeline as-is.
type TimelineRenderer struct {
	Layout string
	Color  bool

	// Now stamps the footer.
	Now func() time.Time

	styles *lipgloss.Renderer
}

// NewTimelineRenderer creates a renderer for the given layout. With color
// off every style renders as plain text and occupied cells are drawn as
// blocks.
func NewTimelineRenderer(layout string, color bool) *TimelineRenderer {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	if layout == "" {
		layout = config.LayoutCombined
	}
	return &TimelineRenderer{
		Layout: layout,
		Color:  color,
		Now:    time.Now,
		styles: r,
	}
}

// Render writes the whole report to w.
func (r *TimelineRenderer) Render(w io.Writer, tl *timeline.Timeline) error {
	if _, err := io.WriteString(w, r.String(tl)); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Couldn't write the timeline", "")
	}
	return nil
}

// String returns the report: title, framed hour rows, legend, and footer.
func (r *TimelineRenderer) String(tl *timeline.Timeline) string {
	var b strings.Builder
	width := tl.TotalWidth()
	border := r.styles.NewStyle().Foreground(ColorBorder)

	b.WriteString(r.styles.NewStyle().Bold(true).Render("Timeline for " + tl.Day.Format(TitleDateLayout)))
	b.WriteString("\n")

	b.WriteString(border.Render(boxTopLeft + strings.Repeat(boxHorizontal, width-2) + boxTopRight))
	b.WriteString("\n")
	for h, runs := range tl.Rows {
		for _, line := range r.hourLines(h, runs) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString(border.Render(boxBottomLeft + strings.Repeat(boxHorizontal, width-2) + boxBottomRight))
	b.WriteString("\n\n")

	b.WriteString(r.legend(tl))
	b.WriteString("\n")

	footer := r.styles.NewStyle().Foreground(ColorMuted)
	b.WriteString(footer.Render("Report generated on: " + r.Now().Format(FooterTimeLayout)))
	b.WriteString("\n")
	return b.String()
}

// hourLines renders one hour as one line (combined) or two (split).
func (r *TimelineRenderer) hourLines(hour int, runs []timeline.Run) []string {
	border := r.styles.NewStyle().Foreground(ColorBorder).Render(boxVertical)
	hourLabel := r.styles.NewStyle().Foreground(ColorMuted).Render(fmt.Sprintf("%02d:00 ", hour))

	if r.Layout == config.LayoutSplit {
		blank := strings.Repeat(" ", len("HH:00 "))
		return []string{
			border + blank + r.labelCells(runs) + border,
			border + hourLabel + r.blockCells(runs) + border,
		}
	}
	return []string{border + hourLabel + r.combinedCells(runs) + border}
}

// combinedCells draws labels directly on the runs: on the tag's background
// with contrasting text, or over block fill without color.
func (r *TimelineRenderer) combinedCells(runs []timeline.Run) string {
	var b strings.Builder
	for _, run := range runs {
		switch {
		case !run.Occupied:
			b.WriteString(run.Text(' '))
		case !r.Color:
			b.WriteString(run.Text(SymbolBlock))
		default:
			style := r.styles.NewStyle().
				Background(lipgloss.Color(run.Color.String())).
				Foreground(lipgloss.Color(run.Color.Foreground().String()))
			b.WriteString(style.Render(run.Text(' ')))
		}
	}
	return b.String()
}

// labelCells is the split layout's text line: labels in the tag color.
func (r *TimelineRenderer) labelCells(runs []timeline.Run) string {
	var b strings.Builder
	for _, run := range runs {
		if !run.Occupied || run.Label == "" {
			b.WriteString(strings.Repeat(" ", run.Width()))
			continue
		}
		style := r.styles.NewStyle().Foreground(lipgloss.Color(run.Color.String()))
		b.WriteString(style.Render(run.Text(' ')))
	}
	return b.String()
}

// blockCells is the split layout's block line.
func (r *TimelineRenderer) blockCells(runs []timeline.Run) string {
	var b strings.Builder
	for _, run := range runs {
		cells := strings.Repeat(" ", run.Width())
		if run.Occupied {
			cells = strings.Repeat(string(SymbolBlock), run.Width())
			cells = r.styles.NewStyle().Foreground(lipgloss.Color(run.Color.String())).Render(cells)
		}
		b.WriteString(cells)
	}
	return b.String()
}

// legend lists each tag with its color swatch and visible time, followed
// by an hour-by-hour activity strip.
func (r *TimelineRenderer) legend(tl *timeline.Timeline) string {
	muted := r.styles.NewStyle().Foreground(ColorMuted)
	heading := r.styles.NewStyle().Bold(true).Render("Legend:") + "\n"
	if len(tl.Legend) == 0 {
		return heading + muted.Render("(no tracked time)") + "\n"
	}

	tags := make([]string, len(tl.Legend))
	tagWidth := 0
	for i, e := range tl.Legend {
		tags[i] = timeline.CleanLabel(e.Tag)
		if w := timeline.DisplayWidth(tags[i]); w > tagWidth {
			tagWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(heading)
	for i, e := range tl.Legend {
		swatch := strings.Repeat(string(SymbolBlock), legendSwatch)
		swatch = r.styles.NewStyle().Foreground(lipgloss.Color(e.Color.String())).Render(swatch)
		b.WriteString(swatch)
		b.WriteString(" ")
		b.WriteString(tags[i])
		b.WriteString(strings.Repeat(" ", tagWidth-timeline.DisplayWidth(tags[i])))
		b.WriteString("  ")
		b.WriteString(FormatDuration(e.Duration))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(muted.Render("hours "))
	b.WriteString(r.styles.NewStyle().Foreground(ColorInfo).Render(RenderSparkline(HourlyActivity(tl.Grid))))
	b.WriteString("\n")
	return b.String()
}

// FormatDuration renders a legend duration compactly, e.g. "1h30m",
// "45m", or "2m15s". Zero is "0m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d <= 0 {
		return "0m"
	}

	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m > 0 || (h > 0 && s > 0) {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s > 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String()
}

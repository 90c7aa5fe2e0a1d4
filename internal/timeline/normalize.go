package timeline

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/dayline/internal/errors"
)

// Normalize converts raw records into intervals that fall on day's calendar
// date, in day's location. Records are kept in input order.
//
// A missing end means now. Intervals starting before midnight are clamped to
// 00:00 and intervals running past the day are clamped to 23:59:59.999.
// Records that do not touch the day are dropped. An end earlier than its
// start collapses to a zero-length interval.
//
// Any unparseable timestamp fails the whole call.
func Normalize(day, now time.Time, records []RawRecord, resolver *TagResolver, palette *Palette) ([]Interval, error) {
	dayStart := StartOfDay(day)
	dayEnd := EndOfDay(day)
	loc := dayStart.Location()

	intervals := make([]Interval, 0, len(records))
	for i, rec := range records {
		start, err := ParseTimestamp(rec.Start)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrParse,
				fmt.Sprintf("Record %d has an invalid start timestamp '%s'", i, rec.Start),
				fmt.Sprintf("Timestamps must look like %s (UTC).", TimestampLayout))
		}

		end := now
		if rec.End != "" {
			end, err = ParseTimestamp(rec.End)
			if err != nil {
				return nil, errors.WrapWithCode(err, errors.ErrParse,
					fmt.Sprintf("Record %d has an invalid end timestamp '%s'", i, rec.End),
					fmt.Sprintf("Timestamps must look like %s (UTC).", TimestampLayout))
			}
		}

		start = start.In(loc)
		end = end.In(loc)
		if end.Before(start) {
			end = start
		}

		if end.Before(dayStart) || start.After(dayEnd) {
			continue
		}
		if start.Before(dayStart) {
			start = dayStart
		}
		if end.After(dayEnd) {
			end = dayEnd
		}

		tag := resolver.Resolve(rec.Tags)
		intervals = append(intervals, Interval{
			Start:  start,
			End:    end,
			Tag:    tag,
			Color:  palette.ColorFor(tag),
			Record: i,
		})
	}

	return intervals, nil
}

// Package timeline turns a day of tagged time-tracking records into a
// fixed-resolution grid ready for terminal rendering.
//
// # Pipeline
//
// Data flows strictly forward through five stages:
//
//	RawRecord  -> Normalize  -> []Interval   (clipped to one day, one tag each)
//	[]Interval -> Rasterize  -> *Grid        (24 rows x SlotsPerHour cells)
//	*Grid      -> Compact    -> [][]Run      (same-tag cells merged per row)
//	[][]Run    -> PlaceLabels-> [][]Run      (one centered label per tag per row)
//
// Build runs every stage and returns a Timeline holding the grid, the
// labeled rows, and the legend.
//
// # Tags and colors
//
// A record may carry several tags; TagResolver picks exactly one using a
// high-priority list (wins outright), then the first non-filler tag, then
// the filler (low-priority) list scanned in reverse. Palette maps a tag to
// an xterm-256 color by hashing the tag text, so a tag keeps its color
// across runs and machines.
//
// # Overlap
//
// Intervals are painted in input order and later intervals overwrite
// earlier ones on shared cells.
//
// Every stage is deterministic: identical records, day, and options yield
// identical grids, runs, and legend order.
package timeline

// Package ui renders dayline's terminal output using Lip Gloss styles.
//
// # Timeline
//
// TimelineRenderer draws a built timeline.Timeline as a framed grid, one
// row per hour:
//
//	Timeline for Sun, 18 Oct 2026
//	┌──────────────────────┐
//	│00:00 ████focus███    │
//	│01:00                 │
//	...
//	└──────────────────────┘
//
// Two layouts are supported. "combined" paints each run in its tag's
// background color with the label on top in black or white, whichever
// contrasts. "split" spends two lines per hour: labels in the tag color,
// then a line of █ blocks.
//
// With color off, styles render as plain text and occupied cells are drawn
// as █ with labels written over them, so the output stays readable when
// piped.
//
// Every frame line is exactly Timeline.TotalWidth() columns wide.
//
// # Colors and Symbols
//
// Status colors are basic ANSI codes so they follow the terminal theme:
//
//	ColorSuccess (green)  - passing doctor checks
//	ColorError   (red)    - failures
//	ColorWarning (yellow) - warnings
//	ColorMuted   (gray)   - borders, hour labels, footer
//
// Tag colors come from the timeline package as xterm-256 codes.
package ui

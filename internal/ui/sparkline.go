package ui

import (
	"math"
	"strings"

	"github.com/rileyhilliard/dayline/internal/timeline"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline draws one character per value on a fixed 0..1 scale.
// Zero (or less) is drawn as a space so idle hours read as gaps; any
// positive value gets at least the lowest block.
func RenderSparkline(data []float64) string {
	if len(data) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	numLevels := len(sparklineBlockRunes)
	for _, v := range data {
		if v <= 0 {
			sb.WriteByte(' ')
			continue
		}
		level := int(math.Ceil(v*float64(numLevels))) - 1
		if level < 0 {
			level = 0
		} else if level >= numLevels {
			level = numLevels - 1
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}
	return sb.String()
}

// HourlyActivity returns the occupied fraction of each hour row of g.
func HourlyActivity(g *timeline.Grid) []float64 {
	out := make([]float64, timeline.HoursPerDay)
	for h := range out {
		used := 0
		for _, c := range g.Row(h) {
			if c.Occupied {
				used++
			}
		}
		out[h] = float64(used) / float64(g.SlotsPerHour)
	}
	return out
}

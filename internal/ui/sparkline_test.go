package ui

import (
	"testing"
	"time"

	"github.com/rileyhilliard/dayline/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSparkline(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want string
	}{
		{name: "nil", data: nil, want: ""},
		{name: "idle hours are blank", data: []float64{0, 0}, want: "  "},
		{name: "full hour is a full block", data: []float64{1}, want: "█"},
		{name: "any activity shows", data: []float64{0.01}, want: "▁"},
		{name: "half", data: []float64{0.5}, want: "▄"},
		{name: "clamped", data: []float64{-1, 2}, want: " █"},
		{name: "ramp", data: []float64{0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1}, want: "▁▂▃▄▅▆▇█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderSparkline(tt.data))
		})
	}
}

func TestHourlyActivity(t *testing.T) {
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	g, err := timeline.Rasterize([]timeline.Interval{
		{Start: day, End: day.Add(90 * time.Minute), Tag: "focus"},
	}, 4)
	require.NoError(t, err)

	activity := HourlyActivity(g)
	require.Len(t, activity, timeline.HoursPerDay)
	assert.Equal(t, 1.0, activity[0])
	assert.Equal(t, 0.5, activity[1])
	assert.Equal(t, 0.0, activity[2])
}

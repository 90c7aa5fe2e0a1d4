package timeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashColor_Deterministic(t *testing.T) {
	first := HashColor("work")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, HashColor("work"))
	}

	// Independent of palettes and other tags seen.
	p := NewPalette(nil)
	p.ColorFor("meeting")
	p.ColorFor("lunch")
	assert.Equal(t, first, p.ColorFor("work"))
	assert.Equal(t, first, NewPalette(nil).ColorFor("work"))
}

func TestHashColor_Range(t *testing.T) {
	for i := 0; i < 500; i++ {
		c := HashColor(fmt.Sprintf("tag-%d", i))
		assert.GreaterOrEqual(t, int(c), 17)
		assert.LessOrEqual(t, int(c), 230)
	}
}

func TestHashColor_Spread(t *testing.T) {
	seen := make(map[Color]bool)
	for i := 0; i < 50; i++ {
		seen[HashColor(fmt.Sprintf("tag-%d", i))] = true
	}
	// Collisions are allowed, but 50 tags should not collapse onto a handful of colors.
	assert.Greater(t, len(seen), 25)
}

func TestPalette_Overrides(t *testing.T) {
	p := NewPalette(map[string]int{"focus": 33, "bad": 300, "neg": -1})

	assert.Equal(t, Color(33), p.ColorFor("focus"))
	assert.Equal(t, HashColor("bad"), p.ColorFor("bad"))
	assert.Equal(t, HashColor("neg"), p.ColorFor("neg"))
	assert.Equal(t, HashColor("other"), p.ColorFor("other"))
}

func TestColor_RGB(t *testing.T) {
	tests := []struct {
		color   Color
		r, g, b uint8
	}{
		{color: 1, r: 128, g: 0, b: 0},
		{color: 16, r: 0, g: 0, b: 0},
		{color: 17, r: 0, g: 0, b: 95},
		{color: 196, r: 255, g: 0, b: 0},
		{color: 230, r: 255, g: 255, b: 215},
		{color: 231, r: 255, g: 255, b: 255},
		{color: 232, r: 8, g: 8, b: 8},
		{color: 255, r: 238, g: 238, b: 238},
	}

	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			r, g, b := tt.color.RGB()
			assert.Equal(t, []uint8{tt.r, tt.g, tt.b}, []uint8{r, g, b})
		})
	}
}

func TestColor_Foreground(t *testing.T) {
	assert.Equal(t, ColorWhite, Color(16).Foreground(), "black background gets white text")
	assert.Equal(t, ColorWhite, Color(17).Foreground(), "dark blue gets white text")
	assert.Equal(t, ColorBlack, Color(231).Foreground(), "white background gets black text")
	assert.Equal(t, ColorBlack, Color(230).Foreground(), "light yellow gets black text")
	assert.Equal(t, ColorBlack, Color(226).Foreground(), "yellow gets black text")
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "17", Color(17).String())
	assert.Equal(t, "0", Color(0).String())
}

package timeline

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// Color is an xterm-256 color code.
type Color uint8

// Hashed tags land in the 6x6x6 color cube without its black and white corners.
const (
	paletteFirst Color = 17
	paletteLast  Color = 230

	// ColorBlack and ColorWhite are the contrasting text colors.
	ColorBlack Color = 16
	ColorWhite Color = 231
)

// cubeLevels are the channel intensities of the xterm 6x6x6 cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// basicColors approximates the 16 standard terminal colors.
var basicColors = [16][3]uint8{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// String returns the numeric code, the form lipgloss expects for ANSI256 colors.
func (c Color) String() string {
	return strconv.Itoa(int(c))
}

// RGB returns the approximate channel values of the color.
func (c Color) RGB() (r, g, b uint8) {
	switch {
	case c < 16:
		rgb := basicColors[c]
		return rgb[0], rgb[1], rgb[2]
	case c < 232:
		idx := int(c) - 16
		return cubeLevels[idx/36], cubeLevels[(idx/6)%6], cubeLevels[idx%6]
	default:
		gray := uint8(8 + (int(c)-232)*10)
		return gray, gray, gray
	}
}

// Luminance returns perceived brightness in 0..255.
func (c Color) Luminance() int {
	r, g, b := c.RGB()
	return (299*int(r) + 587*int(g) + 114*int(b)) / 1000
}

// Foreground returns black for light colors and white for dark ones, for
// text drawn on top of c.
func (c Color) Foreground() Color {
	if c.Luminance() >= 128 {
		return ColorBlack
	}
	return ColorWhite
}

// Palette assigns colors to tags.
type Palette struct {
	overrides map[string]Color
}

// NewPalette creates a palette with optional fixed colors for some tags.
// Codes outside 0..255 are ignored.
func NewPalette(overrides map[string]int) *Palette {
	p := &Palette{overrides: make(map[string]Color, len(overrides))}
	for tag, code := range overrides {
		if code >= 0 && code <= 255 {
			p.overrides[tag] = Color(code)
		}
	}
	return p
}

// ColorFor returns the tag's color. It depends only on the tag text and the
// palette's overrides, never on call order.
func (p *Palette) ColorFor(tag string) Color {
	if c, ok := p.overrides[tag]; ok {
		return c
	}
	return HashColor(tag)
}

// HashColor maps a tag into the palette range through SHA-256.
func HashColor(tag string) Color {
	sum := sha256.Sum256([]byte(tag))
	n := binary.BigEndian.Uint32(sum[:4])
	span := uint32(paletteLast-paletteFirst) + 1
	return paletteFirst + Color(n%span)
}

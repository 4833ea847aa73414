package core

import "fmt"

// Color is a 24-bit RGB value as used in level data (0xRRGGBB).
type Color int32

// ColorDefault keeps the terminal's own foreground color.
const ColorDefault Color = -1

// Colors for elements that level data does not color.
const (
	ColorBall     Color = 0xffffff
	ColorPaddle   Color = 0x4fc3f7
	ColorBorder   Color = 0xdcdcdc
	ColorText     Color = 0xeeeeee
	ColorDim      Color = 0x808080
	ColorAlert    Color = 0xef5350
	ColorHighlight Color = 0xffd54f
)

// RGB converts a level data color to a Color.
func RGB(v int) Color {
	return Color(v & 0xffffff)
}

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	if c < 0 {
		return 0, 0, 0
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c < 0 {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Scale multiplies each channel by f, clamped to [0, 255].
func (c Color) Scale(f float64) Color {
	if c < 0 {
		return c
	}
	r, g, b := c.Components()
	ch := func(v uint8) int32 {
		return int32(ClampF(float64(v)*f, 0, 255))
	}
	return Color(ch(r)<<16 | ch(g)<<8 | ch(b))
}

package win

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R, G, B, A float64
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// RGB builds an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// RGBA implements color.Color with premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	ca := clamp01(c.A)
	r = uint32(clamp01(c.R)*ca*0xffff + 0.5)
	g = uint32(clamp01(c.G)*ca*0xffff + 0.5)
	b = uint32(clamp01(c.B)*ca*0xffff + 0.5)
	a = uint32(ca*0xffff + 0.5)
	return
}

// scaleAlpha returns c with its alpha multiplied by a.
func (c Color) scaleAlpha(a float64) Color {
	c.A *= a
	return c
}

func (c Color) isZero() bool {
	return c == Color{}
}

// UnmarshalText parses "#rrggbb" or "#rrggbbaa".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("win: invalid color %q", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("win: invalid color %q: %w", text, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	c.R = float64(v>>24&0xff) / 255
	c.G = float64(v>>16&0xff) / 255
	c.B = float64(v>>8&0xff) / 255
	c.A = float64(v&0xff) / 255
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// TextAlign controls horizontal text alignment within a label's box.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// VerticalAlign controls vertical text placement within a label's box.
type VerticalAlign uint8

const (
	VAlignTop    VerticalAlign = iota // first line starts at Y (default)
	VAlignMiddle                      // lines are centered in [Y, Y+Height]
	VAlignBottom                      // last line ends at Y+Height
)

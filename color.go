package arbor

import (
	"image/color"
	"math"
)

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// Color is an RGBA color with float64 components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// MakeColor converts a color.Color into a Color.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	const d = 0xffff
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

// Gray returns an opaque gray of the given brightness.
func Gray(x float64) Color {
	return Color{x, x, x, 1}
}

// HexColor parses colors of the form "#ff0066", "f06", "ff0066cc" etc.
func HexColor(x string) Color {
	if len(x) > 0 && x[0] == '#' {
		x = x[1:]
	}
	var r, g, b, a int
	a = 255
	switch len(x) {
	case 3:
		r = hexDigit(x[0]) * 0x11
		g = hexDigit(x[1]) * 0x11
		b = hexDigit(x[2]) * 0x11
	case 4:
		r = hexDigit(x[0]) * 0x11
		g = hexDigit(x[1]) * 0x11
		b = hexDigit(x[2]) * 0x11
		a = hexDigit(x[3]) * 0x11
	case 6:
		r = hexDigit(x[0])<<4 | hexDigit(x[1])
		g = hexDigit(x[2])<<4 | hexDigit(x[3])
		b = hexDigit(x[4])<<4 | hexDigit(x[5])
	case 8:
		r = hexDigit(x[0])<<4 | hexDigit(x[1])
		g = hexDigit(x[2])<<4 | hexDigit(x[3])
		b = hexDigit(x[4])<<4 | hexDigit(x[5])
		a = hexDigit(x[6])<<4 | hexDigit(x[7])
	}
	const d = 255
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

func hexDigit(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return 0
}

// RGB returns an opaque color from three components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

func (c Color) NRGBA() color.NRGBA {
	const d = 255
	r := uint8(Clamp(c.R, 0, 1)*d + 0.5)
	g := uint8(Clamp(c.G, 0, 1)*d + 0.5)
	b := uint8(Clamp(c.B, 0, 1)*d + 0.5)
	a := uint8(Clamp(c.A, 0, 1)*d + 0.5)
	return color.NRGBA{r, g, b, a}
}

func (c Color) Add(b Color) Color {
	return Color{c.R + b.R, c.G + b.G, c.B + b.B, c.A + b.A}
}

func (c Color) Sub(b Color) Color {
	return Color{c.R - b.R, c.G - b.G, c.B - b.B, c.A - b.A}
}

func (c Color) Mul(b Color) Color {
	return Color{c.R * b.R, c.G * b.G, c.B * b.B, c.A * b.A}
}

func (c Color) MulScalar(x float64) Color {
	return Color{c.R * x, c.G * x, c.B * x, c.A * x}
}

func (c Color) DivScalar(x float64) Color {
	return Color{c.R / x, c.G / x, c.B / x, c.A / x}
}

func (c Color) Min(b Color) Color {
	return Color{math.Min(c.R, b.R), math.Min(c.G, b.G), math.Min(c.B, b.B), math.Min(c.A, b.A)}
}

func (c Color) Max(b Color) Color {
	return Color{math.Max(c.R, b.R), math.Max(c.G, b.G), math.Max(c.B, b.B), math.Max(c.A, b.A)}
}

func (c Color) Lerp(b Color, t float64) Color {
	return c.Add(b.Sub(c).MulScalar(t))
}

// Alpha returns the color with its alpha replaced.
func (c Color) Alpha(a float64) Color {
	return Color{c.R, c.G, c.B, a}
}

package graphics

import "github.com/wippyai/gosfml/csfml"

// Color is an 8-bit RGBA color.
type Color csfml.Color

var (
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
	Yellow      = Color{R: 255, G: 255, A: 255}
	Magenta     = Color{R: 255, B: 255, A: 255}
	Cyan        = Color{G: 255, B: 255, A: 255}
	Transparent = Color{}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Add sums two colors component-wise, saturating at 255.
func (c Color) Add(o Color) Color {
	sat := func(a, b uint8) uint8 { return uint8(min(int(a)+int(b), 255)) }
	return Color{R: sat(c.R, o.R), G: sat(c.G, o.G), B: sat(c.B, o.B), A: sat(c.A, o.A)}
}

// Modulate multiplies two colors component-wise.
func (c Color) Modulate(o Color) Color {
	mul := func(a, b uint8) uint8 { return uint8(int(a) * int(b) / 255) }
	return Color{R: mul(c.R, o.R), G: mul(c.G, o.G), B: mul(c.B, o.B), A: mul(c.A, o.A)}
}

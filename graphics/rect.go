package graphics

import "github.com/wippyai/gosfml/csfml"

// IntRect is an integer rectangle, such as a texture area.
type IntRect csfml.IntRect

// FloatRect is a rectangle in world or local coordinates.
type FloatRect csfml.FloatRect

// Contains reports whether (x, y) lies inside r. Rectangles with negative
// sizes are handled.
func (r FloatRect) Contains(x, y float32) bool {
	minX, maxX := min(r.Left, r.Left+r.Width), max(r.Left, r.Left+r.Width)
	minY, maxY := min(r.Top, r.Top+r.Height), max(r.Top, r.Top+r.Height)
	return x >= minX && x < maxX && y >= minY && y < maxY
}

// Intersection returns the overlap of r and o, if any.
func (r FloatRect) Intersection(o FloatRect) (FloatRect, bool) {
	left := max(min(r.Left, r.Left+r.Width), min(o.Left, o.Left+o.Width))
	top := max(min(r.Top, r.Top+r.Height), min(o.Top, o.Top+o.Height))
	right := min(max(r.Left, r.Left+r.Width), max(o.Left, o.Left+o.Width))
	bottom := min(max(r.Top, r.Top+r.Height), max(o.Top, o.Top+o.Height))
	if left >= right || top >= bottom {
		return FloatRect{}, false
	}
	return FloatRect{Left: left, Top: top, Width: right - left, Height: bottom - top}, true
}

// Contains reports whether (x, y) lies inside r.
func (r IntRect) Contains(x, y int32) bool {
	return FloatRect{Left: float32(r.Left), Top: float32(r.Top), Width: float32(r.Width), Height: float32(r.Height)}.
		Contains(float32(x), float32(y))
}

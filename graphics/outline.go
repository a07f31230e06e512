package graphics

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

// outlining is the fill and outline of the library's built-in shapes.
type outlining struct {
	setFill      func(ffi.Ptr, csfml.Color)
	getFill      func(ffi.Ptr) csfml.Color
	setOutline   func(ffi.Ptr, csfml.Color)
	getOutline   func(ffi.Ptr) csfml.Color
	setThickness func(ffi.Ptr, float32)
	getThickness func(ffi.Ptr) float32
	h            borrower
}

func (o *outlining) SetFillColor(c Color) {
	o.setFill(o.h.BorrowMut(), csfml.Color(c))
}

func (o *outlining) FillColor() Color {
	return Color(o.getFill(o.h.Borrow()))
}

func (o *outlining) SetOutlineColor(c Color) {
	o.setOutline(o.h.BorrowMut(), csfml.Color(c))
}

func (o *outlining) OutlineColor() Color {
	return Color(o.getOutline(o.h.Borrow()))
}

// SetOutlineThickness sets the outline width. Negative values draw the
// outline inside the shape.
func (o *outlining) SetOutlineThickness(thickness float32) {
	o.setThickness(o.h.BorrowMut(), thickness)
}

func (o *outlining) OutlineThickness() float32 {
	return o.getThickness(o.h.Borrow())
}

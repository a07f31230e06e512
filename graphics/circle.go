package graphics

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

// CircleShape is a circle approximated by a regular polygon.
type CircleShape struct {
	transformable
	texturing
	h *foreign.Handle[csfml.CircleShape]
}

func newCircleShape(h *foreign.Handle[csfml.CircleShape]) *CircleShape {
	c := &CircleShape{h: h}
	api := c.api()
	c.transformable = transformable{tf: &api.TransformableAPI, h: h}
	c.texturing = texturing{
		setTex:  api.SetTexture,
		setRect: api.SetTextureRect,
		getRect: api.GetTextureRect,
		h:       h,
	}
	return c
}

// NewCircleShape creates a circle of radius drawn with pointCount points.
// A zero pointCount keeps the library default of 30.
func NewCircleShape(rt *runtime.Runtime, radius float32, pointCount int) (*CircleShape, error) {
	h, err := foreign.Acquire[csfml.CircleShape](rt, rt.API().Graphics.CircleShape.Create())
	if err != nil {
		return nil, err
	}
	c := newCircleShape(h)
	c.SetRadius(radius)
	if pointCount > 0 {
		c.SetPointCount(pointCount)
	}
	return c, nil
}

func (c *CircleShape) api() *csfml.CircleShapeAPI {
	return &c.h.Runtime().API().Graphics.CircleShape
}

// Clone returns an independent circle that uses the same texture.
func (c *CircleShape) Clone() (*CircleShape, error) {
	h, err := foreign.Duplicate(c.h)
	if err != nil {
		return nil, err
	}
	out := newCircleShape(h)
	if err := c.tex.CloneInto(&out.tex); err != nil {
		_ = h.Close()
		return nil, err
	}
	return out, nil
}

func (c *CircleShape) SetRadius(radius float32) {
	c.api().SetRadius(c.h.BorrowMut(), radius)
}

func (c *CircleShape) Radius() float32 {
	return c.api().GetRadius(c.h.Borrow())
}

func (c *CircleShape) SetPointCount(n int) {
	c.api().SetPointCount(c.h.BorrowMut(), uintptr(n))
}

func (c *CircleShape) PointCount() int {
	return int(c.api().GetPointCount(c.h.Borrow()))
}

// Point returns point index of the outline. The first point is at the top.
func (c *CircleShape) Point(index int) system.Vector2f {
	return system.Vector2f(c.api().GetPoint(c.h.Borrow(), uintptr(index)))
}

func (c *CircleShape) SetFillColor(col Color) {
	c.api().SetFillColor(c.h.BorrowMut(), csfml.Color(col))
}

func (c *CircleShape) FillColor() Color {
	return Color(c.api().GetFillColor(c.h.Borrow()))
}

func (c *CircleShape) LocalBounds() FloatRect {
	return FloatRect(c.api().GetLocalBounds(c.h.Borrow()))
}

func (c *CircleShape) GlobalBounds() FloatRect {
	return FloatRect(c.api().GetGlobalBounds(c.h.Borrow()))
}

// Ptr returns the library address of the circle.
func (c *CircleShape) Ptr() ffi.Ptr {
	return c.h.Borrow()
}

func (c *CircleShape) draw(api *csfml.RenderTargetAPI, target ffi.Ptr, states *csfml.RenderStates) {
	api.DrawCircleShape(target, c.h.Borrow(), states)
}

// Close destroys the circle and releases its texture.
func (c *CircleShape) Close() error {
	if err := c.h.Close(); err != nil {
		return err
	}
	c.tex.Clear()
	return nil
}

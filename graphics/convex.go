package graphics

import (
	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

// ConvexShape is a polygon given point by point. The points must describe
// a convex outline, in order.
type ConvexShape struct {
	transformable
	texturing
	outlining
	h *foreign.Handle[csfml.ConvexShape]
}

func newConvexShape(h *foreign.Handle[csfml.ConvexShape]) *ConvexShape {
	c := &ConvexShape{h: h}
	api := c.api()
	c.transformable = transformable{tf: &api.TransformableAPI, h: h}
	c.texturing = texturing{
		setTex:  api.SetTexture,
		setRect: api.SetTextureRect,
		getRect: api.GetTextureRect,
		h:       h,
	}
	c.outlining = outlining{
		setFill:      api.SetFillColor,
		getFill:      api.GetFillColor,
		setOutline:   api.SetOutlineColor,
		getOutline:   api.GetOutlineColor,
		setThickness: api.SetOutlineThickness,
		getThickness: api.GetOutlineThickness,
		h:            h,
	}
	return c
}

// NewConvexShape creates a convex shape with the given points.
func NewConvexShape(rt *runtime.Runtime, points ...system.Vector2f) (*ConvexShape, error) {
	h, err := foreign.Acquire[csfml.ConvexShape](rt, rt.API().Graphics.ConvexShape.Create())
	if err != nil {
		return nil, err
	}
	c := newConvexShape(h)
	c.SetPoints(points)
	return c, nil
}

func (c *ConvexShape) api() *csfml.ConvexShapeAPI {
	return &c.h.Runtime().API().Graphics.ConvexShape
}

// Clone returns an independent shape with the same points and texture.
func (c *ConvexShape) Clone() (*ConvexShape, error) {
	h, err := foreign.Duplicate(c.h)
	if err != nil {
		return nil, err
	}
	out := newConvexShape(h)
	if err := c.tex.CloneInto(&out.tex); err != nil {
		_ = h.Close()
		return nil, err
	}
	return out, nil
}

// SetPointCount resizes the outline. New points start at the origin.
func (c *ConvexShape) SetPointCount(n int) {
	if n < 0 {
		n = 0
	}
	c.api().SetPointCount(c.h.BorrowMut(), uintptr(n))
}

func (c *ConvexShape) PointCount() int {
	return int(c.api().GetPointCount(c.h.Borrow()))
}

// SetPoints replaces the whole outline.
func (c *ConvexShape) SetPoints(points []system.Vector2f) {
	api := c.api()
	p := c.h.BorrowMut()
	api.SetPointCount(p, uintptr(len(points)))
	for i, pt := range points {
		api.SetPoint(p, uintptr(i), csfml.Vector2f(pt))
	}
}

func (c *ConvexShape) outOfRange(index int) error {
	return gerrors.New(gerrors.PhaseCall, gerrors.KindInvalidInput).
		Resource(c.h.Kind()).
		Value(index).
		Detail("point index %d out of range", index).
		Build()
}

// SetPoint moves point index. The index must be below PointCount.
func (c *ConvexShape) SetPoint(index int, p system.Vector2f) error {
	if index < 0 || index >= c.PointCount() {
		return c.outOfRange(index)
	}
	c.api().SetPoint(c.h.BorrowMut(), uintptr(index), csfml.Vector2f(p))
	return nil
}

func (c *ConvexShape) Point(index int) (system.Vector2f, error) {
	if index < 0 || index >= c.PointCount() {
		return system.Vector2f{}, c.outOfRange(index)
	}
	return system.Vector2f(c.api().GetPoint(c.h.Borrow(), uintptr(index))), nil
}

func (c *ConvexShape) LocalBounds() FloatRect {
	return FloatRect(c.api().GetLocalBounds(c.h.Borrow()))
}

func (c *ConvexShape) GlobalBounds() FloatRect {
	return FloatRect(c.api().GetGlobalBounds(c.h.Borrow()))
}

// Ptr returns the library address of the shape.
func (c *ConvexShape) Ptr() ffi.Ptr {
	return c.h.Borrow()
}

func (c *ConvexShape) draw(api *csfml.RenderTargetAPI, target ffi.Ptr, states *csfml.RenderStates) {
	api.DrawConvexShape(target, c.h.Borrow(), states)
}

// Close destroys the shape and releases its texture.
func (c *ConvexShape) Close() error {
	if err := c.h.Close(); err != nil {
		return err
	}
	c.tex.Clear()
	return nil
}

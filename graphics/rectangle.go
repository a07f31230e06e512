package graphics

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

// RectangleShape is an axis-aligned rectangle before its transform.
type RectangleShape struct {
	transformable
	texturing
	outlining
	h *foreign.Handle[csfml.RectangleShape]
}

func newRectangleShape(h *foreign.Handle[csfml.RectangleShape]) *RectangleShape {
	r := &RectangleShape{h: h}
	api := r.api()
	r.transformable = transformable{tf: &api.TransformableAPI, h: h}
	r.texturing = texturing{
		setTex:  api.SetTexture,
		setRect: api.SetTextureRect,
		getRect: api.GetTextureRect,
		h:       h,
	}
	r.outlining = outlining{
		setFill:      api.SetFillColor,
		getFill:      api.GetFillColor,
		setOutline:   api.SetOutlineColor,
		getOutline:   api.GetOutlineColor,
		setThickness: api.SetOutlineThickness,
		getThickness: api.GetOutlineThickness,
		h:            h,
	}
	return r
}

// NewRectangleShape creates a rectangle of the given size.
func NewRectangleShape(rt *runtime.Runtime, size system.Vector2f) (*RectangleShape, error) {
	h, err := foreign.Acquire[csfml.RectangleShape](rt, rt.API().Graphics.RectangleShape.Create())
	if err != nil {
		return nil, err
	}
	r := newRectangleShape(h)
	r.SetSize(size)
	return r, nil
}

func (r *RectangleShape) api() *csfml.RectangleShapeAPI {
	return &r.h.Runtime().API().Graphics.RectangleShape
}

// Clone returns an independent rectangle that uses the same texture.
func (r *RectangleShape) Clone() (*RectangleShape, error) {
	h, err := foreign.Duplicate(r.h)
	if err != nil {
		return nil, err
	}
	out := newRectangleShape(h)
	if err := r.tex.CloneInto(&out.tex); err != nil {
		_ = h.Close()
		return nil, err
	}
	return out, nil
}

func (r *RectangleShape) SetSize(size system.Vector2f) {
	r.api().SetSize(r.h.BorrowMut(), csfml.Vector2f(size))
}

func (r *RectangleShape) Size() system.Vector2f {
	return system.Vector2f(r.api().GetSize(r.h.Borrow()))
}

// PointCount is always 4.
func (r *RectangleShape) PointCount() int {
	return int(r.api().GetPointCount(r.h.Borrow()))
}

// Point returns corner index, clockwise from the top-left one.
func (r *RectangleShape) Point(index int) system.Vector2f {
	return system.Vector2f(r.api().GetPoint(r.h.Borrow(), uintptr(index)))
}

func (r *RectangleShape) LocalBounds() FloatRect {
	return FloatRect(r.api().GetLocalBounds(r.h.Borrow()))
}

func (r *RectangleShape) GlobalBounds() FloatRect {
	return FloatRect(r.api().GetGlobalBounds(r.h.Borrow()))
}

// Ptr returns the library address of the rectangle.
func (r *RectangleShape) Ptr() ffi.Ptr {
	return r.h.Borrow()
}

func (r *RectangleShape) draw(api *csfml.RenderTargetAPI, target ffi.Ptr, states *csfml.RenderStates) {
	api.DrawRectangleShape(target, r.h.Borrow(), states)
}

// Close destroys the rectangle and releases its texture.
func (r *RectangleShape) Close() error {
	if err := r.h.Close(); err != nil {
		return err
	}
	r.tex.Clear()
	return nil
}

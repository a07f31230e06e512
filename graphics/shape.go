package graphics

import (
	"github.com/wippyai/gosfml/callback"
	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

// ShapeImpl supplies the geometry of a custom shape. The library calls it
// while the shape is created and on every Update, never concurrently with
// other calls on the same shape.
type ShapeImpl interface {
	// PointCount returns the number of points of the outline.
	PointCount() int
	// Point returns point index, in local coordinates, for index in
	// [0, PointCount()).
	Point(index int) system.Vector2f
}

// Shape is a convex shape whose outline comes from a ShapeImpl. The shape
// keeps impl reachable from the library for as long as the shape lives.
type Shape[T ShapeImpl] struct {
	transformable
	texturing
	outlining
	h   *foreign.Handle[csfml.Shape]
	pin *callback.Pinned[T]
}

// shapeFamily names the trampoline pair of custom shapes.
const shapeFamily = "shape"

func shapePointCount[T ShapeImpl](reg *callback.Registry) csfml.ShapePointCountFunc {
	return func(user uintptr) uintptr {
		impl, ok := callback.Lookup[T](reg, callback.Context(user))
		if !ok {
			return 0
		}
		n := impl.PointCount()
		if n < 0 {
			return 0
		}
		return uintptr(n)
	}
}

func shapePoint[T ShapeImpl](reg *callback.Registry) csfml.ShapePointFunc {
	return func(index, user uintptr) csfml.Vector2f {
		impl, ok := callback.Lookup[T](reg, callback.Context(user))
		if !ok {
			return csfml.Vector2f{}
		}
		return csfml.Vector2f(impl.Point(int(index)))
	}
}

// NewShape creates a shape drawing impl's outline. It fails with an
// unsupported error on backends that cannot call back into Go.
func NewShape[T ShapeImpl](rt *runtime.Runtime, impl T) (*Shape[T], error) {
	reg := rt.Callbacks()
	cbs, err := callback.Trampolines[T](reg, shapeFamily, shapePointCount[T](reg), shapePoint[T](reg))
	if err != nil {
		return nil, err
	}
	pin, err := callback.Pin(reg, impl)
	if err != nil {
		return nil, err
	}

	api := &rt.API().Graphics.Shape
	p := api.Create(cbs[0], cbs[1], uintptr(pin.Context()))
	h, err := foreign.Acquire[csfml.Shape](rt, p)
	if err != nil {
		pin.Unpin()
		return nil, err
	}

	s := &Shape[T]{h: h, pin: pin}
	s.transformable = transformable{tf: &api.TransformableAPI, h: h}
	s.texturing = texturing{
		setTex:  api.SetTexture,
		setRect: api.SetTextureRect,
		getRect: api.GetTextureRect,
		h:       h,
	}
	s.outlining = outlining{
		setFill:      api.SetFillColor,
		getFill:      api.GetFillColor,
		setOutline:   api.SetOutlineColor,
		getOutline:   api.GetOutlineColor,
		setThickness: api.SetOutlineThickness,
		getThickness: api.GetOutlineThickness,
		h:            h,
	}
	api.Update(h.BorrowMut())
	return s, nil
}

func (s *Shape[T]) api() *csfml.ShapeAPI {
	return &s.h.Runtime().API().Graphics.Shape
}

// Impl returns the geometry provider.
func (s *Shape[T]) Impl() T {
	return s.pin.Value()
}

// Update re-reads the outline from the provider. Call it whenever the
// points change.
func (s *Shape[T]) Update() {
	s.api().Update(s.h.BorrowMut())
}

// PointCount returns the number of points. The library asks the provider
// each time.
func (s *Shape[T]) PointCount() int {
	return int(s.api().GetPointCount(s.h.Borrow()))
}

func (s *Shape[T]) Point(index int) (system.Vector2f, error) {
	if index < 0 || index >= s.PointCount() {
		return system.Vector2f{}, gerrors.New(gerrors.PhaseCall, gerrors.KindInvalidInput).
			Resource(s.h.Kind()).
			Value(index).
			Detail("point index %d out of range", index).
			Build()
	}
	return system.Vector2f(s.api().GetPoint(s.h.Borrow(), uintptr(index))), nil
}

func (s *Shape[T]) LocalBounds() FloatRect {
	return FloatRect(s.api().GetLocalBounds(s.h.Borrow()))
}

func (s *Shape[T]) GlobalBounds() FloatRect {
	return FloatRect(s.api().GetGlobalBounds(s.h.Borrow()))
}

// Ptr returns the library address of the shape.
func (s *Shape[T]) Ptr() ffi.Ptr {
	return s.h.Borrow()
}

func (s *Shape[T]) draw(api *csfml.RenderTargetAPI, target ffi.Ptr, states *csfml.RenderStates) {
	api.DrawShape(target, s.h.Borrow(), states)
}

// Close destroys the shape, then releases its texture and provider.
func (s *Shape[T]) Close() error {
	if err := s.h.Close(); err != nil {
		return err
	}
	s.tex.Clear()
	s.pin.Unpin()
	return nil
}

package soft

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

const (
	kindRectangleShape = "sfRectangleShape"
	kindConvexShape    = "sfConvexShape"
)

// outlined is the texture, fill and outline of the library's built-in
// shapes.
type outlined struct {
	transformable
	textured
	fill      csfml.Color
	outline   csfml.Color
	thickness float32
}

func newOutlined() outlined {
	return outlined{transformable: newTransformable(), fill: white, outline: white}
}

type rectangleState struct {
	outlined
	size csfml.Vector2f
}

func (r *rectangleState) point(index uintptr) csfml.Vector2f {
	switch index {
	case 1:
		return csfml.Vector2f{X: r.size.X}
	case 2:
		return r.size
	case 3:
		return csfml.Vector2f{Y: r.size.Y}
	}
	return csfml.Vector2f{}
}

type convexState struct {
	outlined
	points []csfml.Vector2f
}

func setter[S, V any](get func(ffi.Ptr) (S, bool), set func(S, V)) func(ffi.Ptr, V) {
	return func(p ffi.Ptr, v V) {
		if s, ok := get(p); ok {
			set(s, v)
		}
	}
}

func getter[S, V any](get func(ffi.Ptr) (S, bool), read func(S) V) func(ffi.Ptr) V {
	return func(p ffi.Ptr) V {
		if s, ok := get(p); ok {
			return read(s)
		}
		var zero V
		return zero
	}
}

func (b *Backend) bindRectangleShape() {
	rs := &b.api.Graphics.RectangleShape
	rect := func(p ffi.Ptr) (*rectangleState, bool) {
		return lookup[*rectangleState](b, p, kindRectangleShape)
	}
	bindTransformable(b, &rs.TransformableAPI, kindRectangleShape)

	rs.Create = func() ffi.Ptr {
		return b.create(kindRectangleShape, &rectangleState{outlined: newOutlined()})
	}
	rs.Copy = func(p ffi.Ptr) ffi.Ptr {
		r, ok := rect(p)
		if !ok {
			return ffi.Null
		}
		cp := *r
		return b.copyOf(kindRectangleShape, &cp)
	}
	rs.Destroy = func(p ffi.Ptr) { b.destroy(kindRectangleShape, p) }
	rs.SetSize = setter(rect, func(r *rectangleState, v csfml.Vector2f) { r.size = v })
	rs.GetSize = getter(rect, func(r *rectangleState) csfml.Vector2f { return r.size })
	rs.GetPointCount = getter(rect, func(*rectangleState) uintptr { return 4 })
	rs.GetPoint = func(p ffi.Ptr, index uintptr) csfml.Vector2f {
		if r, ok := rect(p); ok {
			return r.point(index)
		}
		return csfml.Vector2f{}
	}
	rs.SetTexture = func(p, tex ffi.Ptr, reset ffi.Bool) {
		if r, ok := rect(p); ok {
			b.setTexture(&r.textured, tex, reset)
		}
	}
	rs.GetTexture = getter(rect, func(r *rectangleState) ffi.Ptr { return r.texture })
	rs.SetTextureRect = setter(rect, func(r *rectangleState, v csfml.IntRect) { r.rect = v })
	rs.GetTextureRect = getter(rect, func(r *rectangleState) csfml.IntRect { return r.rect })
	rs.SetFillColor = setter(rect, func(r *rectangleState, c csfml.Color) { r.fill = c })
	rs.GetFillColor = getter(rect, func(r *rectangleState) csfml.Color { return r.fill })
	rs.SetOutlineColor = setter(rect, func(r *rectangleState, c csfml.Color) { r.outline = c })
	rs.GetOutlineColor = getter(rect, func(r *rectangleState) csfml.Color { return r.outline })
	rs.SetOutlineThickness = setter(rect, func(r *rectangleState, v float32) { r.thickness = v })
	rs.GetOutlineThickness = getter(rect, func(r *rectangleState) float32 { return r.thickness })

	local := func(r *rectangleState) csfml.FloatRect {
		return pointsBounds([]csfml.Vector2f{r.point(0), r.point(2)})
	}
	rs.GetLocalBounds = getter(rect, local)
	rs.GetGlobalBounds = getter(rect, func(r *rectangleState) csfml.FloatRect {
		return r.transformRect(local(r))
	})
}

func (b *Backend) bindConvexShape() {
	cs := &b.api.Graphics.ConvexShape
	convex := func(p ffi.Ptr) (*convexState, bool) {
		return lookup[*convexState](b, p, kindConvexShape)
	}
	bindTransformable(b, &cs.TransformableAPI, kindConvexShape)

	cs.Create = func() ffi.Ptr {
		return b.create(kindConvexShape, &convexState{outlined: newOutlined()})
	}
	cs.Copy = func(p ffi.Ptr) ffi.Ptr {
		c, ok := convex(p)
		if !ok {
			return ffi.Null
		}
		cp := *c
		cp.points = append([]csfml.Vector2f(nil), c.points...)
		return b.copyOf(kindConvexShape, &cp)
	}
	cs.Destroy = func(p ffi.Ptr) { b.destroy(kindConvexShape, p) }
	cs.SetPointCount = setter(convex, func(c *convexState, n uintptr) {
		points := make([]csfml.Vector2f, n)
		copy(points, c.points)
		c.points = points
	})
	cs.GetPointCount = getter(convex, func(c *convexState) uintptr { return uintptr(len(c.points)) })
	cs.SetPoint = func(p ffi.Ptr, index uintptr, v csfml.Vector2f) {
		if c, ok := convex(p); ok && index < uintptr(len(c.points)) {
			c.points[index] = v
		}
	}
	cs.GetPoint = func(p ffi.Ptr, index uintptr) csfml.Vector2f {
		if c, ok := convex(p); ok && index < uintptr(len(c.points)) {
			return c.points[index]
		}
		return csfml.Vector2f{}
	}
	cs.SetTexture = func(p, tex ffi.Ptr, reset ffi.Bool) {
		if c, ok := convex(p); ok {
			b.setTexture(&c.textured, tex, reset)
		}
	}
	cs.GetTexture = getter(convex, func(c *convexState) ffi.Ptr { return c.texture })
	cs.SetTextureRect = setter(convex, func(c *convexState, v csfml.IntRect) { c.rect = v })
	cs.GetTextureRect = getter(convex, func(c *convexState) csfml.IntRect { return c.rect })
	cs.SetFillColor = setter(convex, func(c *convexState, col csfml.Color) { c.fill = col })
	cs.GetFillColor = getter(convex, func(c *convexState) csfml.Color { return c.fill })
	cs.SetOutlineColor = setter(convex, func(c *convexState, col csfml.Color) { c.outline = col })
	cs.GetOutlineColor = getter(convex, func(c *convexState) csfml.Color { return c.outline })
	cs.SetOutlineThickness = setter(convex, func(c *convexState, v float32) { c.thickness = v })
	cs.GetOutlineThickness = getter(convex, func(c *convexState) float32 { return c.thickness })
	cs.GetLocalBounds = getter(convex, func(c *convexState) csfml.FloatRect { return pointsBounds(c.points) })
	cs.GetGlobalBounds = getter(convex, func(c *convexState) csfml.FloatRect {
		return c.transformRect(pointsBounds(c.points))
	})
}

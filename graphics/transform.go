package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/system"
)

// Transform is a 3x3 affine transform of the plane.
type Transform struct {
	m mgl32.Mat3
}

// Identity returns the transform that maps every point to itself.
func Identity() Transform {
	return Transform{m: mgl32.Ident3()}
}

// TransformFromMat3 wraps a homogeneous 2D matrix.
func TransformFromMat3(m mgl32.Mat3) Transform {
	return Transform{m: m}
}

// TransformOf converts the library's row-major matrix.
func TransformOf(c csfml.Transform) Transform {
	v := c.Matrix
	return Transform{m: mgl32.Mat3FromRows(
		mgl32.Vec3{v[0], v[1], v[2]},
		mgl32.Vec3{v[3], v[4], v[5]},
		mgl32.Vec3{v[6], v[7], v[8]},
	)}
}

// C converts to the library's row-major matrix.
func (t Transform) C() csfml.Transform {
	var out csfml.Transform
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Matrix[r*3+c] = t.m.At(r, c)
		}
	}
	return out
}

// Mat3 returns the underlying matrix.
func (t Transform) Mat3() mgl32.Mat3 { return t.m }

// Combine returns the transform that applies o first, then t.
func (t Transform) Combine(o Transform) Transform {
	return Transform{m: t.m.Mul3(o.m)}
}

func (t Transform) Translate(x, y float32) Transform {
	return Transform{m: t.m.Mul3(mgl32.Translate2D(x, y))}
}

// Rotate rotates by angle degrees, clockwise on screen.
func (t Transform) Rotate(angle float32) Transform {
	return Transform{m: t.m.Mul3(mgl32.HomogRotate2D(mgl32.DegToRad(angle)))}
}

func (t Transform) Scale(sx, sy float32) Transform {
	return Transform{m: t.m.Mul3(mgl32.Scale2D(sx, sy))}
}

// Inverse returns the inverse transform, or the identity when t is singular.
func (t Transform) Inverse() Transform {
	if t.m.Det() == 0 {
		return Identity()
	}
	return Transform{m: t.m.Inv()}
}

// TransformPoint maps p.
func (t Transform) TransformPoint(p system.Vector2f) system.Vector2f {
	v := t.m.Mul3x1(mgl32.Vec3{p.X, p.Y, 1})
	return system.Vector2f{X: v.X(), Y: v.Y()}
}

// TransformRect returns the axis-aligned bounding box of the mapped r.
func (t Transform) TransformRect(r FloatRect) FloatRect {
	pts := [4]system.Vector2f{
		t.TransformPoint(system.Vector2f{X: r.Left, Y: r.Top}),
		t.TransformPoint(system.Vector2f{X: r.Left + r.Width, Y: r.Top}),
		t.TransformPoint(system.Vector2f{X: r.Left, Y: r.Top + r.Height}),
		t.TransformPoint(system.Vector2f{X: r.Left + r.Width, Y: r.Top + r.Height}),
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return FloatRect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

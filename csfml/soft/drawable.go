package soft

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

const (
	kindSprite      = "sfSprite"
	kindShape       = "sfShape"
	kindCircleShape = "sfCircleShape"
)

// transformable holds the position/rotation/scale/origin common to every
// drawable.
type transformable struct {
	position mgl32.Vec2
	scale    mgl32.Vec2
	origin   mgl32.Vec2
	rotation float32
}

func newTransformable() transformable {
	return transformable{scale: mgl32.Vec2{1, 1}}
}

func (t *transformable) xf() *transformable { return t }

// matrix composes translate * rotate * scale * translate(-origin).
func (t *transformable) matrix() mgl32.Mat3 {
	return mgl32.Translate2D(t.position.X(), t.position.Y()).
		Mul3(mgl32.HomogRotate2D(mgl32.DegToRad(t.rotation))).
		Mul3(mgl32.Scale2D(t.scale.X(), t.scale.Y())).
		Mul3(mgl32.Translate2D(-t.origin.X(), -t.origin.Y()))
}

func (t *transformable) transform() csfml.Transform {
	m := t.matrix()
	var out csfml.Transform
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Matrix[r*3+c] = m.At(r, c)
		}
	}
	return out
}

// transformRect maps a local rectangle to the bounding box of its image.
func (t *transformable) transformRect(r csfml.FloatRect) csfml.FloatRect {
	m := t.matrix()
	corners := [4]mgl32.Vec3{
		{r.Left, r.Top, 1},
		{r.Left + r.Width, r.Top, 1},
		{r.Left, r.Top + r.Height, 1},
		{r.Left + r.Width, r.Top + r.Height, 1},
	}
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, c := range corners {
		p := m.Mul3x1(c)
		minX, maxX = min(minX, p.X()), max(maxX, p.X())
		minY, maxY = min(minY, p.Y()), max(maxY, p.Y())
	}
	return csfml.FloatRect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

type hasTransform interface {
	xf() *transformable
}

func vec(v csfml.Vector2f) mgl32.Vec2 { return mgl32.Vec2{v.X, v.Y} }

func vector(v mgl32.Vec2) csfml.Vector2f { return csfml.Vector2f{X: v.X(), Y: v.Y()} }

// bindTransformable fills the shared transformable functions of kind.
func bindTransformable(b *Backend, api *csfml.TransformableAPI, kind string) {
	get := func(p ffi.Ptr) (*transformable, bool) {
		o, ok := lookup[hasTransform](b, p, kind)
		if !ok {
			return nil, false
		}
		return o.xf(), true
	}
	api.SetPosition = func(p ffi.Ptr, v csfml.Vector2f) {
		if t, ok := get(p); ok {
			t.position = vec(v)
		}
	}
	api.GetPosition = func(p ffi.Ptr) csfml.Vector2f {
		if t, ok := get(p); ok {
			return vector(t.position)
		}
		return csfml.Vector2f{}
	}
	api.SetRotation = func(p ffi.Ptr, angle float32) {
		if t, ok := get(p); ok {
			t.rotation = normalizeAngle(angle)
		}
	}
	api.GetRotation = func(p ffi.Ptr) float32 {
		if t, ok := get(p); ok {
			return t.rotation
		}
		return 0
	}
	api.SetScale = func(p ffi.Ptr, v csfml.Vector2f) {
		if t, ok := get(p); ok {
			t.scale = vec(v)
		}
	}
	api.GetScale = func(p ffi.Ptr) csfml.Vector2f {
		if t, ok := get(p); ok {
			return vector(t.scale)
		}
		return csfml.Vector2f{}
	}
	api.SetOrigin = func(p ffi.Ptr, v csfml.Vector2f) {
		if t, ok := get(p); ok {
			t.origin = vec(v)
		}
	}
	api.GetOrigin = func(p ffi.Ptr) csfml.Vector2f {
		if t, ok := get(p); ok {
			return vector(t.origin)
		}
		return csfml.Vector2f{}
	}
	api.Move = func(p ffi.Ptr, offset csfml.Vector2f) {
		if t, ok := get(p); ok {
			t.position = t.position.Add(vec(offset))
		}
	}
	api.Rotate = func(p ffi.Ptr, angle float32) {
		if t, ok := get(p); ok {
			t.rotation = normalizeAngle(t.rotation + angle)
		}
	}
	api.GetTransform = func(p ffi.Ptr) csfml.Transform {
		if t, ok := get(p); ok {
			return t.transform()
		}
		return csfml.IdentityTransform
	}
}

// normalizeAngle keeps rotations in [0, 360).
func normalizeAngle(a float32) float32 {
	a = float32(math.Mod(float64(a), 360))
	if a < 0 {
		a += 360
	}
	return a
}

// textured is the texture binding shared by sprites and shapes.
type textured struct {
	texture ffi.Ptr
	rect    csfml.IntRect
}

// setTexture binds tex. The rect is reset to the full texture when asked to
// or when no rect was set yet. Null unbinds.
func (b *Backend) setTexture(t *textured, tex ffi.Ptr, reset ffi.Bool) {
	if tex == ffi.Null {
		t.texture = ffi.Null
		return
	}
	if reset.Go() || t.rect == (csfml.IntRect{}) {
		if s, ok := lookup[*textureState](b, tex, kindTexture); ok {
			size := sizeOf(s.img)
			t.rect = csfml.IntRect{Width: int32(size.X), Height: int32(size.Y)}
		}
	}
	t.texture = tex
}

type spriteState struct {
	transformable
	textured
	color csfml.Color
}

type shapeState struct {
	transformable
	textured
	countFn   csfml.Callback
	pointFn   csfml.Callback
	user      uintptr
	points    []csfml.Vector2f
	fill      csfml.Color
	outline   csfml.Color
	thickness float32
}

type circleState struct {
	transformable
	textured
	radius float32
	count  uintptr
	fill   csfml.Color
}

var white = csfml.Color{R: 255, G: 255, B: 255, A: 255}

func pointsBounds(points []csfml.Vector2f) csfml.FloatRect {
	if len(points) == 0 {
		return csfml.FloatRect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return csfml.FloatRect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

func (b *Backend) bindSprite() {
	sp := &b.api.Graphics.Sprite
	sprite := func(p ffi.Ptr) (*spriteState, bool) {
		return lookup[*spriteState](b, p, kindSprite)
	}
	bindTransformable(b, &sp.TransformableAPI, kindSprite)

	sp.Create = func() ffi.Ptr {
		return b.create(kindSprite, &spriteState{transformable: newTransformable(), color: white})
	}
	sp.Copy = func(p ffi.Ptr) ffi.Ptr {
		s, ok := sprite(p)
		if !ok {
			return ffi.Null
		}
		cp := *s
		return b.copyOf(kindSprite, &cp)
	}
	sp.Destroy = func(p ffi.Ptr) { b.destroy(kindSprite, p) }
	sp.SetTexture = func(p, tex ffi.Ptr, reset ffi.Bool) {
		if s, ok := sprite(p); ok {
			b.setTexture(&s.textured, tex, reset)
		}
	}
	sp.GetTexture = func(p ffi.Ptr) ffi.Ptr {
		if s, ok := sprite(p); ok {
			return s.texture
		}
		return ffi.Null
	}
	sp.SetTextureRect = func(p ffi.Ptr, r csfml.IntRect) {
		if s, ok := sprite(p); ok {
			s.rect = r
		}
	}
	sp.GetTextureRect = func(p ffi.Ptr) csfml.IntRect {
		if s, ok := sprite(p); ok {
			return s.rect
		}
		return csfml.IntRect{}
	}
	sp.SetColor = func(p ffi.Ptr, c csfml.Color) {
		if s, ok := sprite(p); ok {
			s.color = c
		}
	}
	sp.GetColor = func(p ffi.Ptr) csfml.Color {
		if s, ok := sprite(p); ok {
			return s.color
		}
		return csfml.Color{}
	}
	local := func(s *spriteState) csfml.FloatRect {
		return csfml.FloatRect{Width: float32(abs32(s.rect.Width)), Height: float32(abs32(s.rect.Height))}
	}
	sp.GetLocalBounds = func(p ffi.Ptr) csfml.FloatRect {
		if s, ok := sprite(p); ok {
			return local(s)
		}
		return csfml.FloatRect{}
	}
	sp.GetGlobalBounds = func(p ffi.Ptr) csfml.FloatRect {
		if s, ok := sprite(p); ok {
			return s.transformRect(local(s))
		}
		return csfml.FloatRect{}
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// shapePointCount and shapePoint call back into the user implementation.
// They run without the backend lock held.
func (b *Backend) shapePointCount(s *shapeState) uintptr {
	fn, ok := callbackOf[csfml.ShapePointCountFunc](b, s.countFn)
	if !ok {
		return 0
	}
	return fn(s.user)
}

func (b *Backend) shapePoint(s *shapeState, index uintptr) csfml.Vector2f {
	fn, ok := callbackOf[csfml.ShapePointFunc](b, s.pointFn)
	if !ok {
		return csfml.Vector2f{}
	}
	return fn(index, s.user)
}

func (b *Backend) bindShape() {
	sh := &b.api.Graphics.Shape
	shape := func(p ffi.Ptr) (*shapeState, bool) {
		return lookup[*shapeState](b, p, kindShape)
	}
	bindTransformable(b, &sh.TransformableAPI, kindShape)

	sh.Create = func(countFn, pointFn csfml.Callback, user uintptr) ffi.Ptr {
		if countFn == 0 || pointFn == 0 {
			return ffi.Null
		}
		return b.create(kindShape, &shapeState{
			transformable: newTransformable(),
			countFn:       countFn,
			pointFn:       pointFn,
			user:          user,
			fill:          white,
			outline:       white,
		})
	}
	sh.Destroy = func(p ffi.Ptr) { b.destroy(kindShape, p) }
	sh.Update = func(p ffi.Ptr) {
		s, ok := shape(p)
		if !ok {
			return
		}
		n := b.shapePointCount(s)
		points := make([]csfml.Vector2f, 0, n)
		for i := uintptr(0); i < n; i++ {
			points = append(points, b.shapePoint(s, i))
		}
		s.points = points
	}
	sh.GetPointCount = func(p ffi.Ptr) uintptr {
		if s, ok := shape(p); ok {
			return b.shapePointCount(s)
		}
		return 0
	}
	sh.GetPoint = func(p ffi.Ptr, index uintptr) csfml.Vector2f {
		if s, ok := shape(p); ok {
			return b.shapePoint(s, index)
		}
		return csfml.Vector2f{}
	}
	sh.SetTexture = func(p, tex ffi.Ptr, reset ffi.Bool) {
		if s, ok := shape(p); ok {
			b.setTexture(&s.textured, tex, reset)
		}
	}
	sh.GetTexture = func(p ffi.Ptr) ffi.Ptr {
		if s, ok := shape(p); ok {
			return s.texture
		}
		return ffi.Null
	}
	sh.SetTextureRect = func(p ffi.Ptr, r csfml.IntRect) {
		if s, ok := shape(p); ok {
			s.rect = r
		}
	}
	sh.GetTextureRect = func(p ffi.Ptr) csfml.IntRect {
		if s, ok := shape(p); ok {
			return s.rect
		}
		return csfml.IntRect{}
	}
	sh.SetFillColor = func(p ffi.Ptr, c csfml.Color) {
		if s, ok := shape(p); ok {
			s.fill = c
		}
	}
	sh.GetFillColor = func(p ffi.Ptr) csfml.Color {
		if s, ok := shape(p); ok {
			return s.fill
		}
		return csfml.Color{}
	}
	sh.SetOutlineColor = func(p ffi.Ptr, c csfml.Color) {
		if s, ok := shape(p); ok {
			s.outline = c
		}
	}
	sh.GetOutlineColor = func(p ffi.Ptr) csfml.Color {
		if s, ok := shape(p); ok {
			return s.outline
		}
		return csfml.Color{}
	}
	sh.SetOutlineThickness = func(p ffi.Ptr, v float32) {
		if s, ok := shape(p); ok {
			s.thickness = v
		}
	}
	sh.GetOutlineThickness = func(p ffi.Ptr) float32 {
		if s, ok := shape(p); ok {
			return s.thickness
		}
		return 0
	}
	// Bounds come from the points cached by the last update.
	sh.GetLocalBounds = func(p ffi.Ptr) csfml.FloatRect {
		if s, ok := shape(p); ok {
			return pointsBounds(s.points)
		}
		return csfml.FloatRect{}
	}
	sh.GetGlobalBounds = func(p ffi.Ptr) csfml.FloatRect {
		if s, ok := shape(p); ok {
			return s.transformRect(pointsBounds(s.points))
		}
		return csfml.FloatRect{}
	}
}

func circlePoint(radius float32, count, index uintptr) csfml.Vector2f {
	if count == 0 {
		return csfml.Vector2f{}
	}
	angle := float64(index)*2*math.Pi/float64(count) - math.Pi/2
	return csfml.Vector2f{
		X: float32(math.Cos(angle))*radius + radius,
		Y: float32(math.Sin(angle))*radius + radius,
	}
}

func (b *Backend) bindCircleShape() {
	cs := &b.api.Graphics.CircleShape
	circle := func(p ffi.Ptr) (*circleState, bool) {
		return lookup[*circleState](b, p, kindCircleShape)
	}
	bindTransformable(b, &cs.TransformableAPI, kindCircleShape)

	cs.Create = func() ffi.Ptr {
		return b.create(kindCircleShape, &circleState{transformable: newTransformable(), count: 30, fill: white})
	}
	cs.Copy = func(p ffi.Ptr) ffi.Ptr {
		c, ok := circle(p)
		if !ok {
			return ffi.Null
		}
		cp := *c
		return b.copyOf(kindCircleShape, &cp)
	}
	cs.Destroy = func(p ffi.Ptr) { b.destroy(kindCircleShape, p) }
	cs.SetRadius = func(p ffi.Ptr, r float32) {
		if c, ok := circle(p); ok {
			c.radius = r
		}
	}
	cs.GetRadius = func(p ffi.Ptr) float32 {
		if c, ok := circle(p); ok {
			return c.radius
		}
		return 0
	}
	cs.SetPointCount = func(p ffi.Ptr, n uintptr) {
		if c, ok := circle(p); ok {
			c.count = n
		}
	}
	cs.GetPointCount = func(p ffi.Ptr) uintptr {
		if c, ok := circle(p); ok {
			return c.count
		}
		return 0
	}
	cs.GetPoint = func(p ffi.Ptr, index uintptr) csfml.Vector2f {
		if c, ok := circle(p); ok {
			return circlePoint(c.radius, c.count, index)
		}
		return csfml.Vector2f{}
	}
	cs.SetTexture = func(p, tex ffi.Ptr, reset ffi.Bool) {
		if c, ok := circle(p); ok {
			b.setTexture(&c.textured, tex, reset)
		}
	}
	cs.GetTexture = func(p ffi.Ptr) ffi.Ptr {
		if c, ok := circle(p); ok {
			return c.texture
		}
		return ffi.Null
	}
	cs.SetTextureRect = func(p ffi.Ptr, r csfml.IntRect) {
		if c, ok := circle(p); ok {
			c.rect = r
		}
	}
	cs.GetTextureRect = func(p ffi.Ptr) csfml.IntRect {
		if c, ok := circle(p); ok {
			return c.rect
		}
		return csfml.IntRect{}
	}
	cs.SetFillColor = func(p ffi.Ptr, col csfml.Color) {
		if c, ok := circle(p); ok {
			c.fill = col
		}
	}
	cs.GetFillColor = func(p ffi.Ptr) csfml.Color {
		if c, ok := circle(p); ok {
			return c.fill
		}
		return csfml.Color{}
	}
	local := func(c *circleState) csfml.FloatRect {
		return csfml.FloatRect{Width: 2 * c.radius, Height: 2 * c.radius}
	}
	cs.GetLocalBounds = func(p ffi.Ptr) csfml.FloatRect {
		if c, ok := circle(p); ok {
			return local(c)
		}
		return csfml.FloatRect{}
	}
	cs.GetGlobalBounds = func(p ffi.Ptr) csfml.FloatRect {
		if c, ok := circle(p); ok {
			return c.transformRect(local(c))
		}
		return csfml.FloatRect{}
	}
}

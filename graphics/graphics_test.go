package graphics_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/csfml/soft"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/graphics"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
	"github.com/wippyai/gosfml/window"
)

func newRuntime(t *testing.T) (*runtime.Runtime, *soft.Backend) {
	t.Helper()
	b, err := soft.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	rt, err := runtime.New(b)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	return rt, b
}

func newFont(t *testing.T, rt *runtime.Runtime) *graphics.Font {
	t.Helper()
	f, err := graphics.NewFontFromMemory(rt, goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontFromMemory: %v", err)
	}
	return f
}

func newTexture(t *testing.T, rt *runtime.Runtime, w, h uint32) *graphics.Texture {
	t.Helper()
	img, err := graphics.NewImageFromColor(rt, w, h, graphics.Red)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()
	tex, err := graphics.NewTextureFromImage(rt, img, nil)
	if err != nil {
		t.Fatal(err)
	}
	return tex
}

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFontOutlivesText(t *testing.T) {
	rt, b := newRuntime(t)
	font := newFont(t, rt)

	text, err := graphics.NewTextInit(rt, "hello", font, 24)
	if err != nil {
		t.Fatal(err)
	}
	if text.Font() != font {
		t.Fatal("Font does not return the bound font")
	}

	if err := font.Close(); !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Fatalf("closing a borrowed font: err = %v", err)
	}
	if err := text.Close(); err != nil {
		t.Fatal(err)
	}

	// the font survives the text
	if got := font.Family(); got != "Go" {
		t.Errorf("Family = %q, want Go", got)
	}
	if font.LineSpacing(24) <= 0 {
		t.Error("line spacing not positive")
	}

	if err := font.Close(); err != nil {
		t.Fatal(err)
	}
	if err := font.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if n := b.Stats().Destroyed["sfFont"]; n != 1 {
		t.Errorf("font destroyed %d times, want 1", n)
	}
	if n := b.Stats().DoubleDestroyed["sfFont"]; n != 0 {
		t.Errorf("font double-destroyed %d times", n)
	}
}

func TestFontFromBadMemory(t *testing.T) {
	rt, b := newRuntime(t)

	for name, data := range map[string][]byte{
		"empty":     nil,
		"malformed": []byte("definitely not a font"),
	} {
		t.Run(name, func(t *testing.T) {
			f, err := graphics.NewFontFromMemory(rt, data)
			if f != nil {
				t.Fatal("font returned for bad data")
			}
			if !errors.Is(err, gerrors.ErrConstruction) {
				t.Errorf("err = %v, want construction failure", err)
			}
		})
	}
	if n := b.Live("sfFont"); n != 0 {
		t.Errorf("%d fonts alive", n)
	}
}

func TestFontCopy(t *testing.T) {
	rt, _ := newRuntime(t)
	font := newFont(t, rt)

	cp, err := font.Copy()
	if err != nil {
		t.Fatal(err)
	}
	if err := font.Close(); err != nil {
		t.Fatal(err)
	}
	if got := cp.Family(); got != "Go" {
		t.Errorf("copy Family = %q after original closed", got)
	}
	if err := cp.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestTextRebind(t *testing.T) {
	rt, _ := newRuntime(t)
	a := newFont(t, rt)
	bf := newFont(t, rt)

	text, err := graphics.NewText(rt)
	if err != nil {
		t.Fatal(err)
	}
	if text.Font() != nil {
		t.Error("new text has a font")
	}
	if err := text.SetFont(a); err != nil {
		t.Fatal(err)
	}
	if err := text.SetFont(bf); err != nil {
		t.Fatal(err)
	}
	if text.Font() != bf {
		t.Error("Font is not the last bound font")
	}

	// the first binding was replaced, not stacked
	if err := a.Close(); err != nil {
		t.Errorf("closing the replaced font: %v", err)
	}
	if err := bf.Close(); !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Errorf("closing the bound font: err = %v", err)
	}

	// rebinding the same font keeps exactly one borrow
	if err := text.SetFont(bf); err != nil {
		t.Fatal(err)
	}
	if err := text.Close(); err != nil {
		t.Fatal(err)
	}
	if err := bf.Close(); err != nil {
		t.Errorf("font still borrowed after text closed: %v", err)
	}
}

func TestTextSetFontNil(t *testing.T) {
	rt, _ := newRuntime(t)
	text, err := graphics.NewText(rt)
	if err != nil {
		t.Fatal(err)
	}
	defer text.Close()

	var e *gerrors.Error
	if err := text.SetFont(nil); !errors.As(err, &e) || e.Kind != gerrors.KindNilPointer {
		t.Errorf("SetFont(nil) = %v", err)
	}
}

func TestTextProperties(t *testing.T) {
	rt, _ := newRuntime(t)
	font := newFont(t, rt)
	defer font.Close()

	text, err := graphics.NewTextInit(rt, "héllo wörld", font, 18)
	if err != nil {
		t.Fatal(err)
	}
	defer text.Close()

	if got := text.String(); got != "héllo wörld" {
		t.Errorf("String = %q", got)
	}
	if text.CharacterSize() != 18 {
		t.Errorf("CharacterSize = %d", text.CharacterSize())
	}
	text.SetStyle(graphics.StyleBold | graphics.StyleUnderlined)
	if s := text.Style(); !s.Has(graphics.StyleBold) || s.Has(graphics.StyleItalic) {
		t.Errorf("Style = %b", s)
	}
	text.SetFillColor(graphics.Cyan)
	if text.FillColor() != graphics.Cyan {
		t.Errorf("FillColor = %v", text.FillColor())
	}

	local := text.LocalBounds()
	if local.Width <= 0 || local.Height <= 0 {
		t.Fatalf("LocalBounds = %+v", local)
	}
	text.SetPosition(system.Vector2f{X: 100, Y: 50})
	global := text.GlobalBounds()
	if global.Left != local.Left+100 || global.Top != local.Top+50 {
		t.Errorf("GlobalBounds = %+v, local %+v", global, local)
	}
}

func TestTextClone(t *testing.T) {
	rt, _ := newRuntime(t)
	font := newFont(t, rt)

	text, err := graphics.NewTextInit(rt, "one", font, 12)
	if err != nil {
		t.Fatal(err)
	}
	clone, err := text.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if clone.Font() != font {
		t.Error("clone does not share the font")
	}

	clone.SetString("two")
	if text.String() != "one" || clone.String() != "two" {
		t.Errorf("strings %q %q, clone not independent", text.String(), clone.String())
	}

	if err := text.Close(); err != nil {
		t.Fatal(err)
	}
	if err := font.Close(); !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Errorf("font closed while the clone uses it: %v", err)
	}
	if err := clone.Close(); err != nil {
		t.Fatal(err)
	}
	if err := font.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestImage(t *testing.T) {
	rt, _ := newRuntime(t)

	img, err := graphics.NewImageFromMemory(rt, pngBytes(t, 4, 3, color.NRGBA{G: 255, A: 255}))
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	if s := img.Size(); s != (system.Vector2u{X: 4, Y: 3}) {
		t.Fatalf("Size = %+v", s)
	}
	if img.Pixel(1, 1) != graphics.Green {
		t.Errorf("Pixel = %v", img.Pixel(1, 1))
	}
	if img.Pixel(4, 0) != graphics.Transparent {
		t.Error("out of range pixel not transparent")
	}
	img.SetPixel(10, 10, graphics.Red) // ignored

	cp, err := img.Copy()
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Close()
	cp.SetPixel(0, 0, graphics.Blue)
	if img.Pixel(0, 0) != graphics.Green || cp.Pixel(0, 0) != graphics.Blue {
		t.Error("copy shares pixels with the original")
	}

	px := cp.Pixels()
	if len(px) != 4*3*4 {
		t.Fatalf("len(Pixels) = %d", len(px))
	}
	if px[0] != 0 || px[2] != 255 || px[3] != 255 {
		t.Errorf("first pixel = %v", px[:4])
	}

	cp.FlipHorizontally()
	if cp.Pixel(3, 0) != graphics.Blue {
		t.Error("FlipHorizontally did not move the pixel")
	}
	cp.CreateMaskFromColor(graphics.Green, 0)
	if cp.Pixel(0, 0).A != 0 {
		t.Error("mask did not clear alpha")
	}
}

func TestImageBadInput(t *testing.T) {
	rt, _ := newRuntime(t)

	if img, err := graphics.NewImageFromMemory(rt, nil); img != nil || !errors.Is(err, gerrors.ErrConstruction) {
		t.Errorf("empty memory: %v, %v", img, err)
	}
	if img, err := graphics.NewImageFromMemory(rt, []byte{1, 2, 3}); img != nil || !errors.Is(err, gerrors.ErrConstruction) {
		t.Errorf("malformed memory: %v, %v", img, err)
	}

	var e *gerrors.Error
	_, err := graphics.NewImageFromPixels(rt, 2, 2, make([]byte, 15))
	if !errors.As(err, &e) || e.Kind != gerrors.KindInvalidInput {
		t.Errorf("short pixels: %v", err)
	}
	img, err := graphics.NewImageFromPixels(rt, 2, 2, make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()
	if err := img.SaveToFile(t.TempDir() + "/out.unknown"); err == nil {
		t.Error("saving with an unknown extension succeeded")
	}
}

func TestTexture(t *testing.T) {
	rt, _ := newRuntime(t)
	tex := newTexture(t, rt, 8, 8)
	defer tex.Close()

	tex.SetSmooth(true)
	tex.SetRepeated(true)
	if !tex.IsSmooth() || !tex.IsRepeated() {
		t.Error("flags not kept")
	}

	small, err := graphics.NewImageFromColor(rt, 2, 2, graphics.Blue)
	if err != nil {
		t.Fatal(err)
	}
	defer small.Close()
	if err := tex.UpdateFromImage(small, 6, 6); err != nil {
		t.Fatal(err)
	}
	if err := tex.UpdateFromImage(small, 7, 0); err == nil {
		t.Error("update past the edge accepted")
	}

	img, err := tex.CopyToImage()
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()
	if img.Pixel(7, 7) != graphics.Blue || img.Pixel(0, 0) != graphics.Red {
		t.Errorf("pixels %v %v", img.Pixel(7, 7), img.Pixel(0, 0))
	}

	area := graphics.IntRect{Left: 0, Top: 0, Width: 3, Height: 2}
	sub, err := graphics.NewTextureFromMemory(rt, pngBytes(t, 5, 5, color.White), &area)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()
	if s := sub.Size(); s != (system.Vector2u{X: 3, Y: 2}) {
		t.Errorf("area texture size = %+v", s)
	}
}

func TestSpriteTextureBinding(t *testing.T) {
	rt, _ := newRuntime(t)
	tex := newTexture(t, rt, 16, 8)

	sprite, err := graphics.NewSpriteWithTexture(rt, tex)
	if err != nil {
		t.Fatal(err)
	}
	if sprite.Texture() != tex {
		t.Fatal("Texture does not return the bound texture")
	}
	if r := sprite.TextureRect(); r != (graphics.IntRect{Width: 16, Height: 8}) {
		t.Errorf("TextureRect = %+v", r)
	}
	if err := tex.Close(); !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Fatalf("closing a borrowed texture: %v", err)
	}

	clone, err := sprite.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if clone.Texture() != tex {
		t.Error("clone does not share the texture")
	}

	sprite.DisableTexture()
	if sprite.Texture() != nil {
		t.Error("texture still bound after DisableTexture")
	}
	if err := tex.Close(); !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Error("texture closed while the clone uses it")
	}
	if err := clone.Close(); err != nil {
		t.Fatal(err)
	}
	if err := tex.Close(); err != nil {
		t.Errorf("texture still borrowed: %v", err)
	}
	if err := sprite.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDisableTextureClearsForeignSide(t *testing.T) {
	rt, b := newRuntime(t)
	tex := newTexture(t, rt, 4, 4)
	defer tex.Close()

	rw, err := graphics.NewRenderWindow(rt, window.NewVideoMode(64, 64), "t", window.StyleDefault, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer rw.Close()

	sprite, err := graphics.NewSpriteWithTexture(rt, tex)
	if err != nil {
		t.Fatal(err)
	}
	defer sprite.Close()

	rw.Draw(sprite)
	sprite.DisableTexture()
	rw.Draw(sprite)
	rw.Display()

	frames := b.Frames(rw.Ptr())
	if len(frames) != 1 || len(frames[0].Draws) != 2 {
		t.Fatalf("frames = %+v", frames)
	}
	if frames[0].Draws[0].Texture == ffi.Null {
		t.Error("first draw has no texture")
	}
	if frames[0].Draws[1].Texture != ffi.Null {
		t.Error("library still sees the texture after DisableTexture")
	}
}

// polyline is a shape outline given as a fixed list of points.
type polyline struct {
	points []system.Vector2f
}

func (p *polyline) PointCount() int                 { return len(p.points) }
func (p *polyline) Point(index int) system.Vector2f { return p.points[index] }

func TestCustomShape(t *testing.T) {
	rt, _ := newRuntime(t)

	impl := &polyline{points: []system.Vector2f{{X: 1, Y: 2}, {X: 10, Y: 20}}}
	shape, err := graphics.NewShape(rt, impl)
	if err != nil {
		t.Fatal(err)
	}
	if shape.Impl() != impl {
		t.Error("Impl is not the given provider")
	}
	if shape.PointCount() != 2 {
		t.Fatalf("PointCount = %d", shape.PointCount())
	}
	for i, want := range impl.points {
		got, err := shape.Point(i)
		if err != nil || got != want {
			t.Errorf("Point(%d) = %+v, %v; want %+v", i, got, err, want)
		}
	}
	if _, err := shape.Point(2); err == nil {
		t.Error("Point past the end accepted")
	}

	b := shape.LocalBounds()
	if b != (graphics.FloatRect{Left: 1, Top: 2, Width: 9, Height: 18}) {
		t.Errorf("LocalBounds = %+v", b)
	}

	impl.points = append(impl.points, system.Vector2f{X: -5, Y: 0})
	if shape.PointCount() != 3 {
		t.Errorf("PointCount before Update = %d, want the provider's count", shape.PointCount())
	}
	if shape.LocalBounds() != b {
		t.Error("bounds changed before Update")
	}
	shape.Update()
	if lb := shape.LocalBounds(); lb.Left != -5 {
		t.Errorf("LocalBounds after Update = %+v", lb)
	}

	if rt.Callbacks().Pinned() != 1 {
		t.Errorf("pinned = %d, want 1", rt.Callbacks().Pinned())
	}
	if err := shape.Close(); err != nil {
		t.Fatal(err)
	}
	if rt.Callbacks().Pinned() != 0 {
		t.Errorf("pinned after Close = %d", rt.Callbacks().Pinned())
	}
}

func TestCustomShapeTrampolinesShared(t *testing.T) {
	rt, _ := newRuntime(t)

	a, err := graphics.NewShape(rt, &polyline{points: []system.Vector2f{{X: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	bs, err := graphics.NewShape(rt, &polyline{points: []system.Vector2f{{X: 2}, {X: 3}}})
	if err != nil {
		t.Fatal(err)
	}
	defer bs.Close()

	// each shape resolves its own provider through the shared trampolines
	if a.PointCount() != 1 || bs.PointCount() != 2 {
		t.Errorf("point counts %d %d", a.PointCount(), bs.PointCount())
	}
}

// noCallbacks is a soft backend that cannot call back into Go.
type noCallbacks struct {
	*soft.Backend
	api csfml.API
}

func (n *noCallbacks) API() *csfml.API { return &n.api }

func TestCustomShapeWithoutCallbacks(t *testing.T) {
	b, err := soft.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	nb := &noCallbacks{Backend: b, api: *b.API()}
	nb.api.NewCallback = nil
	rt, err := runtime.New(nb)
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	shape, err := graphics.NewShape(rt, &polyline{})
	if shape != nil || !errors.Is(err, gerrors.ErrUnsupported) {
		t.Errorf("NewShape = %v, %v; want unsupported", shape, err)
	}
	if rt.Callbacks().Pinned() != 0 {
		t.Error("context left pinned")
	}
}

func TestCircleShape(t *testing.T) {
	rt, _ := newRuntime(t)
	tex := newTexture(t, rt, 4, 4)

	c, err := graphics.NewCircleShape(rt, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c.PointCount() != 30 {
		t.Errorf("default PointCount = %d", c.PointCount())
	}
	c.SetPointCount(4)
	if p := c.Point(0); p != (system.Vector2f{X: 10, Y: 0}) {
		t.Errorf("Point(0) = %+v, want top", p)
	}
	if err := c.SetTexture(tex, false); err != nil {
		t.Fatal(err)
	}

	clone, err := c.Clone()
	if err != nil {
		t.Fatal(err)
	}
	clone.SetRadius(5)
	if c.Radius() != 10 || clone.Radius() != 5 {
		t.Error("clone not independent")
	}
	if clone.Texture() != tex {
		t.Error("clone lost the texture")
	}

	for _, s := range []interface{ Close() error }{c, clone} {
		if err := s.Close(); err != nil {
			t.Fatal(err)
		}
	}
	if err := tex.Close(); err != nil {
		t.Errorf("texture still borrowed: %v", err)
	}
}

func TestRenderWindow(t *testing.T) {
	rt, b := newRuntime(t)
	font := newFont(t, rt)
	defer font.Close()
	tex := newTexture(t, rt, 4, 4)
	defer tex.Close()

	rw, err := graphics.NewRenderWindow(rt, window.NewVideoMode(320, 240), "render", window.StyleDefault, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer rw.Close()
	if s := rw.Size(); s != (system.Vector2u{X: 320, Y: 240}) {
		t.Errorf("Size = %+v", s)
	}

	text, err := graphics.NewTextInit(rt, "hi", font, 20)
	if err != nil {
		t.Fatal(err)
	}
	defer text.Close()
	circle, err := graphics.NewCircleShape(rt, 5, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer circle.Close()

	rw.Clear(graphics.Blue)
	rw.Draw(text)
	states := graphics.DefaultRenderStates()
	states.Texture = tex
	rw.DrawWith(circle, states)
	rw.Display()

	rw.Clear(graphics.Black)
	rw.Display()

	frames := b.Frames(rw.Ptr())
	if len(frames) != 2 {
		t.Fatalf("%d frames", len(frames))
	}
	first := frames[0]
	if first.Clear != csfml.Color(graphics.Blue) || len(first.Draws) != 2 {
		t.Fatalf("first frame = %+v", first)
	}
	if first.Draws[0].Kind != "sfText" || first.Draws[1].Kind != "sfCircleShape" {
		t.Errorf("draw kinds %q %q", first.Draws[0].Kind, first.Draws[1].Kind)
	}
	if first.Draws[1].Texture == ffi.Null {
		t.Error("render states texture not passed")
	}
	if len(frames[1].Draws) != 0 {
		t.Error("second frame has draws")
	}

	if err := b.PushEvent(rw.Ptr(), window.Encode(window.Closed{})); err != nil {
		t.Fatal(err)
	}
	ev, ok := rw.PollEvent()
	if _, closed := ev.(window.Closed); !ok || !closed {
		t.Fatalf("PollEvent = %v, %v", ev, ok)
	}
	rw.CloseWindow()
	if rw.IsOpen() {
		t.Error("window open after CloseWindow")
	}
}

func TestTransform(t *testing.T) {
	tr := graphics.Identity().Translate(10, 5).Scale(2, 2)
	p := tr.TransformPoint(system.Vector2f{X: 1, Y: 1})
	if p != (system.Vector2f{X: 12, Y: 7}) {
		t.Errorf("TransformPoint = %+v", p)
	}
	back := tr.Inverse().TransformPoint(p)
	if back != (system.Vector2f{X: 1, Y: 1}) {
		t.Errorf("inverse = %+v", back)
	}
	r := tr.TransformRect(graphics.FloatRect{Width: 2, Height: 3})
	if r != (graphics.FloatRect{Left: 10, Top: 5, Width: 4, Height: 6}) {
		t.Errorf("TransformRect = %+v", r)
	}
}

func TestColor(t *testing.T) {
	if c := graphics.RGB(200, 100, 0).Add(graphics.RGB(100, 100, 10)); c != graphics.RGBA(255, 200, 10, 255) {
		t.Errorf("Add = %+v", c)
	}
	if c := graphics.White.Modulate(graphics.RGBA(255, 0, 128, 255)); c != graphics.RGBA(255, 0, 128, 255) {
		t.Errorf("Modulate = %+v", c)
	}
	r := graphics.FloatRect{Left: 0, Top: 0, Width: 10, Height: 10}
	got, ok := r.Intersection(graphics.FloatRect{Left: 5, Top: 5, Width: 10, Height: 10})
	if !ok || got != (graphics.FloatRect{Left: 5, Top: 5, Width: 5, Height: 5}) {
		t.Errorf("Intersection = %+v, %v", got, ok)
	}
	if !r.Contains(9.5, 0) || r.Contains(10, 0) {
		t.Error("Contains")
	}
}

func TestRenderTexture(t *testing.T) {
	rt, b := newRuntime(t)

	rtex, err := graphics.NewRenderTexture(rt, 8, 6, false)
	if err != nil {
		t.Fatal(err)
	}
	defer rtex.Close()
	if s := rtex.Size(); s != (system.Vector2u{X: 8, Y: 6}) {
		t.Errorf("Size = %+v", s)
	}
	if rtex.Texture() != rtex.Texture() {
		t.Error("Texture returns a new value on each call")
	}
	if s := rtex.Texture().Size(); s != (system.Vector2u{X: 8, Y: 6}) {
		t.Errorf("texture Size = %+v", s)
	}
	rtex.SetSmooth(true)
	if !rtex.IsSmooth() || !rtex.Texture().IsSmooth() {
		t.Error("smooth not applied to the texture")
	}
	if !rtex.SetActive(true) || !rtex.GenerateMipmap() {
		t.Error("SetActive or GenerateMipmap failed")
	}

	rect, err := graphics.NewRectangleShape(rt, system.Vector2f{X: 2, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer rect.Close()

	rtex.Clear(graphics.Green)
	rtex.Draw(rect)
	rtex.Display()

	frames := b.Frames(rtex.Ptr())
	if len(frames) != 1 || len(frames[0].Draws) != 1 {
		t.Fatalf("frames = %+v", frames)
	}
	if frames[0].Clear != csfml.Color(graphics.Green) || frames[0].Draws[0].Kind != "sfRectangleShape" {
		t.Errorf("frame = %+v", frames[0])
	}

	img, err := rtex.Texture().CopyToImage()
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()
	if c := img.Pixel(3, 3); c != graphics.Green {
		t.Errorf("pixel = %v, want the clear color", c)
	}
}

func TestRenderTextureOwnsTexture(t *testing.T) {
	rt, b := newRuntime(t)

	rtex, err := graphics.NewRenderTexture(rt, 4, 4, true)
	if err != nil {
		t.Fatal(err)
	}
	tex := rtex.Texture()
	if err := tex.Close(); !errors.Is(err, gerrors.ErrNotOwner) {
		t.Fatalf("texture Close = %v, want not owner", err)
	}

	cp, err := tex.Copy()
	if err != nil {
		t.Fatal(err)
	}
	if err := cp.Close(); err != nil {
		t.Errorf("closing a copy: %v", err)
	}

	sprite, err := graphics.NewSpriteWithTexture(rt, tex)
	if err != nil {
		t.Fatal(err)
	}
	if sprite.Texture() != tex {
		t.Error("sprite lost the texture identity")
	}
	if err := rtex.Close(); !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Fatalf("Close = %v, want outstanding borrow", err)
	}
	if err := sprite.Close(); err != nil {
		t.Fatal(err)
	}
	if err := rtex.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := graphics.NewSpriteWithTexture(rt, tex); !errors.Is(err, gerrors.ErrReleased) {
		t.Errorf("binding a texture of a closed render texture = %v", err)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("texture usable after its render texture closed")
			}
		}()
		tex.Size()
	}()

	st := b.Stats()
	if st.Destroyed["sfRenderTexture"] != 1 || st.Destroyed["sfTexture"] != 2 {
		t.Errorf("destroyed %v", st.Destroyed)
	}
	if st.DoubleDestroyed["sfTexture"] != 0 {
		t.Errorf("texture destroyed twice")
	}
}

func TestRenderTextureBadSize(t *testing.T) {
	rt, _ := newRuntime(t)
	if _, err := graphics.NewRenderTexture(rt, 0, 4, false); !errors.Is(err, gerrors.ErrConstruction) {
		t.Errorf("err = %v, want construction failure", err)
	}
}

func TestRectangleShape(t *testing.T) {
	rt, _ := newRuntime(t)
	tex := newTexture(t, rt, 4, 4)

	r, err := graphics.NewRectangleShape(rt, system.Vector2f{X: 10, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	if r.Size() != (system.Vector2f{X: 10, Y: 5}) || r.PointCount() != 4 {
		t.Fatalf("Size = %+v, PointCount = %d", r.Size(), r.PointCount())
	}
	corners := []system.Vector2f{{}, {X: 10}, {X: 10, Y: 5}, {Y: 5}}
	for i, want := range corners {
		if p := r.Point(i); p != want {
			t.Errorf("Point(%d) = %+v, want %+v", i, p, want)
		}
	}
	if lb := r.LocalBounds(); lb != (graphics.FloatRect{Width: 10, Height: 5}) {
		t.Errorf("LocalBounds = %+v", lb)
	}
	r.SetPosition(system.Vector2f{X: 2, Y: 3})
	if gb := r.GlobalBounds(); gb != (graphics.FloatRect{Left: 2, Top: 3, Width: 10, Height: 5}) {
		t.Errorf("GlobalBounds = %+v", gb)
	}

	r.SetFillColor(graphics.Blue)
	r.SetOutlineColor(graphics.Red)
	r.SetOutlineThickness(2)
	if r.FillColor() != graphics.Blue || r.OutlineColor() != graphics.Red || r.OutlineThickness() != 2 {
		t.Error("fill and outline not stored")
	}

	if err := r.SetTexture(tex, true); err != nil {
		t.Fatal(err)
	}
	if tr := r.TextureRect(); tr != (graphics.IntRect{Width: 4, Height: 4}) {
		t.Errorf("TextureRect = %+v", tr)
	}
	if err := tex.Close(); !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Fatalf("texture Close = %v, want outstanding borrow", err)
	}

	clone, err := r.Clone()
	if err != nil {
		t.Fatal(err)
	}
	clone.SetSize(system.Vector2f{X: 1, Y: 1})
	if r.Size() != (system.Vector2f{X: 10, Y: 5}) {
		t.Error("clone not independent")
	}
	if clone.Texture() != tex || clone.FillColor() != graphics.Blue {
		t.Error("clone lost its texture or colors")
	}

	for _, s := range []interface{ Close() error }{r, clone} {
		if err := s.Close(); err != nil {
			t.Fatal(err)
		}
	}
	if err := tex.Close(); err != nil {
		t.Errorf("texture still borrowed: %v", err)
	}
}

func TestConvexShape(t *testing.T) {
	rt, b := newRuntime(t)

	c, err := graphics.NewConvexShape(rt, system.Vector2f{}, system.Vector2f{X: 4}, system.Vector2f{X: 2, Y: 3})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if c.PointCount() != 3 {
		t.Fatalf("PointCount = %d", c.PointCount())
	}
	if p, err := c.Point(1); err != nil || p != (system.Vector2f{X: 4}) {
		t.Errorf("Point(1) = %+v, %v", p, err)
	}

	var e *gerrors.Error
	if _, err := c.Point(3); !errors.As(err, &e) || e.Kind != gerrors.KindInvalidInput {
		t.Errorf("Point(3) = %v, want invalid input", err)
	}
	if err := c.SetPoint(-1, system.Vector2f{}); !errors.As(err, &e) || e.Kind != gerrors.KindInvalidInput {
		t.Errorf("SetPoint(-1) = %v, want invalid input", err)
	}

	if err := c.SetPoint(2, system.Vector2f{X: 2, Y: 6}); err != nil {
		t.Fatal(err)
	}
	if lb := c.LocalBounds(); lb != (graphics.FloatRect{Width: 4, Height: 6}) {
		t.Errorf("LocalBounds = %+v", lb)
	}

	clone, err := c.Clone()
	if err != nil {
		t.Fatal(err)
	}
	defer clone.Close()
	if err := clone.SetPoint(0, system.Vector2f{X: -1}); err != nil {
		t.Fatal(err)
	}
	if p, _ := c.Point(0); p != (system.Vector2f{}) {
		t.Errorf("clone shares points with the original: %+v", p)
	}
	if b.Stats().Copied["sfConvexShape"] != 1 {
		t.Error("clone not made by the library copy")
	}

	c.SetPointCount(5)
	if p, err := c.Point(4); err != nil || p != (system.Vector2f{}) {
		t.Errorf("new point = %+v, %v", p, err)
	}
	if p, _ := c.Point(1); p != (system.Vector2f{X: 4}) {
		t.Errorf("resize moved point 1 to %+v", p)
	}
	c.SetPoints(nil)
	if c.PointCount() != 0 {
		t.Errorf("PointCount after SetPoints(nil) = %d", c.PointCount())
	}
}

type texturedObject interface {
	SetTexture(tex *graphics.Texture, resetRect bool) error
	DisableTexture()
	Ptr() ffi.Ptr
	Close() error
}

func TestDisableTextureResetsLibrary(t *testing.T) {
	rt, _ := newRuntime(t)
	tex := newTexture(t, rt, 4, 4)
	api := &rt.API().Graphics

	sprite, err := graphics.NewSprite(rt)
	if err != nil {
		t.Fatal(err)
	}
	shape, err := graphics.NewShape(rt, &polyline{points: []system.Vector2f{{}, {X: 1}, {Y: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	circle, err := graphics.NewCircleShape(rt, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	rect, err := graphics.NewRectangleShape(rt, system.Vector2f{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	convex, err := graphics.NewConvexShape(rt, system.Vector2f{}, system.Vector2f{X: 1}, system.Vector2f{Y: 1})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		obj    texturedObject
		getTex func(ffi.Ptr) ffi.Ptr
	}{
		{"sprite", sprite, api.Sprite.GetTexture},
		{"shape", shape, api.Shape.GetTexture},
		{"circle", circle, api.CircleShape.GetTexture},
		{"rectangle", rect, api.RectangleShape.GetTexture},
		{"convex", convex, api.ConvexShape.GetTexture},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.obj.SetTexture(tex, false); err != nil {
				t.Fatal(err)
			}
			if tc.getTex(tc.obj.Ptr()) == ffi.Null {
				t.Fatal("library did not receive the texture")
			}
			tc.obj.DisableTexture()
			if p := tc.getTex(tc.obj.Ptr()); p != ffi.Null {
				t.Errorf("library texture = %v after DisableTexture", p)
			}
			if err := tc.obj.Close(); err != nil {
				t.Fatal(err)
			}
		})
	}
	if err := tex.Close(); err != nil {
		t.Errorf("texture still borrowed: %v", err)
	}
}

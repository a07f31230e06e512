package soft

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

const kindRenderTexture = "sfRenderTexture"

// DrawCall is one draw recorded on a render target.
type DrawCall struct {
	Kind      string
	Object    ffi.Ptr
	Texture   ffi.Ptr
	Bounds    csfml.FloatRect
	Transform csfml.Transform
}

// Frame is what a render target was cleared with and drew between two
// displays.
type Frame struct {
	Clear csfml.Color
	Draws []DrawCall
}

// surface records the frames of a render window or render texture.
type surface struct {
	current Frame
	frames  []Frame
}

func (s *surface) clear(c csfml.Color) {
	s.current = Frame{Clear: c}
}

func (s *surface) display() {
	s.frames = append(s.frames, s.current)
	s.current = Frame{Clear: s.current.Clear}
}

type renderTextureState struct {
	mu      sync.Mutex
	surface surface
	texture ffi.Ptr
	depth   bool
	active  bool
	mipmap  bool
}

// withSurface runs fn on the surface of the render target at p.
func withSurface(b *Backend, p ffi.Ptr, fn func(s *surface)) bool {
	if w, ok := lookup[*windowState](b, p, kindRenderWindow); ok {
		w.mu.Lock()
		defer w.mu.Unlock()
		fn(&w.surface)
		return true
	}
	if r, ok := lookup[*renderTextureState](b, p, kindRenderTexture); ok {
		r.mu.Lock()
		defer r.mu.Unlock()
		fn(&r.surface)
		return true
	}
	return false
}

// Frames returns the frames a render window or render texture displayed so
// far.
func (b *Backend) Frames(target ffi.Ptr) []Frame {
	var out []Frame
	withSurface(b, target, func(s *surface) {
		out = make([]Frame, len(s.frames))
		for i, f := range s.frames {
			out[i] = Frame{Clear: f.Clear, Draws: append([]DrawCall(nil), f.Draws...)}
		}
	})
	return out
}

func (b *Backend) bindGraphics() {
	b.bindImage()
	b.bindTexture()
	b.bindFont()
	b.bindText()
	b.bindSprite()
	b.bindShape()
	b.bindCircleShape()
	b.bindRectangleShape()
	b.bindConvexShape()
	b.bindRenderWindow()
	b.bindRenderTexture()
}

// drawCall snapshots the object at obj. Unknown objects record nothing.
func (b *Backend) drawCall(kind string, obj ffi.Ptr, states *csfml.RenderStates) (DrawCall, bool) {
	call := DrawCall{Kind: kind, Object: obj}
	switch kind {
	case kindText:
		t, ok := lookup[*textState](b, obj, kindText)
		if !ok {
			return call, false
		}
		call.Bounds = t.transformRect(b.textLocalBounds(t))
		call.Transform = t.transform()
	case kindSprite:
		s, ok := lookup[*spriteState](b, obj, kindSprite)
		if !ok {
			return call, false
		}
		call.Texture = s.texture
		call.Bounds = b.api.Graphics.Sprite.GetGlobalBounds(obj)
		call.Transform = s.transform()
	case kindShape:
		s, ok := lookup[*shapeState](b, obj, kindShape)
		if !ok {
			return call, false
		}
		call.Texture = s.texture
		call.Bounds = s.transformRect(pointsBounds(s.points))
		call.Transform = s.transform()
	case kindCircleShape:
		c, ok := lookup[*circleState](b, obj, kindCircleShape)
		if !ok {
			return call, false
		}
		call.Texture = c.texture
		call.Bounds = b.api.Graphics.CircleShape.GetGlobalBounds(obj)
		call.Transform = c.transform()
	case kindRectangleShape:
		r, ok := lookup[*rectangleState](b, obj, kindRectangleShape)
		if !ok {
			return call, false
		}
		call.Texture = r.texture
		call.Bounds = b.api.Graphics.RectangleShape.GetGlobalBounds(obj)
		call.Transform = r.transform()
	case kindConvexShape:
		c, ok := lookup[*convexState](b, obj, kindConvexShape)
		if !ok {
			return call, false
		}
		call.Texture = c.texture
		call.Bounds = b.api.Graphics.ConvexShape.GetGlobalBounds(obj)
		call.Transform = c.transform()
	}
	if states != nil && states.Texture != ffi.Null {
		call.Texture = states.Texture
	}
	return call, true
}

// bindRenderTarget fills the clear, display and draw functions shared by
// render windows and render textures.
func (b *Backend) bindRenderTarget(api *csfml.RenderTargetAPI) {
	api.Clear = func(p ffi.Ptr, c csfml.Color) {
		withSurface(b, p, func(s *surface) { s.clear(c) })
	}
	api.Display = func(p ffi.Ptr) {
		withSurface(b, p, func(s *surface) { s.display() })
	}

	record := func(kind string) func(target, obj ffi.Ptr, states *csfml.RenderStates) {
		return func(target, obj ffi.Ptr, states *csfml.RenderStates) {
			call, ok := b.drawCall(kind, obj, states)
			if !ok {
				return
			}
			withSurface(b, target, func(s *surface) {
				s.current.Draws = append(s.current.Draws, call)
			})
		}
	}
	api.DrawText = record(kindText)
	api.DrawSprite = record(kindSprite)
	api.DrawShape = record(kindShape)
	api.DrawCircleShape = record(kindCircleShape)
	api.DrawRectangleShape = record(kindRectangleShape)
	api.DrawConvexShape = record(kindConvexShape)
}

func (b *Backend) bindRenderWindow() {
	rw := &b.api.Graphics.RenderWindow
	b.bindRenderTarget(&rw.RenderTargetAPI)

	rw.CreateUnicode = func(mode csfml.VideoMode, title *uint32, style uint32, settings *csfml.ContextSettings) ffi.Ptr {
		return b.createWindow(kindRenderWindow, mode, title, style, settings)
	}
	rw.Destroy = func(p ffi.Ptr) { b.destroyWindow(kindRenderWindow, p) }
	rw.Close = func(p ffi.Ptr) {
		if w, ok := lookup[*windowState](b, p, kindRenderWindow); ok {
			w.close()
		}
	}
	rw.IsOpen = func(p ffi.Ptr) ffi.Bool {
		w, ok := lookup[*windowState](b, p, kindRenderWindow)
		if !ok {
			return ffi.False
		}
		return w.isOpen()
	}
	rw.PollEvent = func(p ffi.Ptr, ev *csfml.Event) ffi.Bool {
		w, ok := lookup[*windowState](b, p, kindRenderWindow)
		if !ok {
			return ffi.False
		}
		return w.poll(ev)
	}
	rw.WaitEvent = func(p ffi.Ptr, ev *csfml.Event) ffi.Bool {
		w, ok := lookup[*windowState](b, p, kindRenderWindow)
		if !ok {
			return ffi.False
		}
		return w.wait(ev)
	}
	rw.GetSize = func(p ffi.Ptr) csfml.Vector2u {
		return withWindow(b, p, func(w *windowState) csfml.Vector2u { return w.size })
	}
	rw.SetFramerateLimit = func(p ffi.Ptr, limit uint32) {
		withWindow(b, p, func(w *windowState) struct{} { w.limit = limit; return struct{}{} })
	}
	rw.SetVerticalSyncEnabled = func(p ffi.Ptr, v ffi.Bool) {
		withWindow(b, p, func(w *windowState) struct{} { w.vsync = v.Go(); return struct{}{} })
	}
	rw.SetUnicodeTitle = func(p ffi.Ptr, title *uint32) {
		withWindow(b, p, func(w *windowState) struct{} { w.title = utf32At(title); return struct{}{} })
	}
}

func (b *Backend) bindRenderTexture() {
	rt := &b.api.Graphics.RenderTexture
	b.bindRenderTarget(&rt.RenderTargetAPI)
	state := func(p ffi.Ptr) (*renderTextureState, bool) {
		return lookup[*renderTextureState](b, p, kindRenderTexture)
	}
	tex := func(p ffi.Ptr) ffi.Ptr {
		if r, ok := state(p); ok {
			return r.texture
		}
		return ffi.Null
	}

	// the texture is a library object in its own right, created and
	// destroyed with its render texture
	rt.Create = func(width, height uint32, depth ffi.Bool) ffi.Ptr {
		if width == 0 || height == 0 {
			return ffi.Null
		}
		t := b.create(kindTexture, &textureState{img: newNRGBA(width, height)})
		if t == ffi.Null {
			return ffi.Null
		}
		p := b.create(kindRenderTexture, &renderTextureState{texture: t, depth: depth.Go()})
		if p == ffi.Null {
			b.destroy(kindTexture, t)
		}
		return p
	}
	rt.Destroy = func(p ffi.Ptr) {
		if v, ok := b.destroy(kindRenderTexture, p); ok {
			b.destroy(kindTexture, v.(*renderTextureState).texture)
		}
	}
	rt.GetTexture = tex

	clearFrame := rt.Clear
	rt.Clear = func(p ffi.Ptr, c csfml.Color) {
		clearFrame(p, c)
		if t, ok := lookup[*textureState](b, tex(p), kindTexture); ok {
			fill := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
			draw.Draw(t.img, t.img.Bounds(), fill, image.Point{}, draw.Src)
		}
	}
	rt.GetSize = func(p ffi.Ptr) csfml.Vector2u {
		return b.api.Graphics.Texture.GetSize(tex(p))
	}
	rt.SetActive = func(p ffi.Ptr, active ffi.Bool) ffi.Bool {
		r, ok := state(p)
		if !ok {
			return ffi.False
		}
		r.mu.Lock()
		r.active = active.Go()
		r.mu.Unlock()
		return ffi.True
	}
	rt.SetSmooth = func(p ffi.Ptr, v ffi.Bool) { b.api.Graphics.Texture.SetSmooth(tex(p), v) }
	rt.IsSmooth = func(p ffi.Ptr) ffi.Bool { return b.api.Graphics.Texture.IsSmooth(tex(p)) }
	rt.SetRepeated = func(p ffi.Ptr, v ffi.Bool) { b.api.Graphics.Texture.SetRepeated(tex(p), v) }
	rt.IsRepeated = func(p ffi.Ptr) ffi.Bool { return b.api.Graphics.Texture.IsRepeated(tex(p)) }
	rt.GenerateMipmap = func(p ffi.Ptr) ffi.Bool {
		r, ok := state(p)
		if !ok {
			return ffi.False
		}
		r.mu.Lock()
		r.mipmap = true
		r.mu.Unlock()
		return ffi.True
	}
}

package soft

import (
	"sync"
	"unsafe"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
)

const (
	kindWindow       = "sfWindow"
	kindRenderWindow = "sfRenderWindow"
)

// windowState backs both sfWindow and sfRenderWindow.
type windowState struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []csfml.Event
	title    []uint32
	icon     []byte
	settings csfml.ContextSettings
	mode     csfml.VideoMode
	size     csfml.Vector2u
	position csfml.Vector2i
	style    uint32
	limit    uint32
	open     bool
	visible  bool
	vsync    bool
	repeat   bool
	cursor   bool
	grabbed  bool
	active   bool
	focus    bool

	// render windows only
	surface surface
}

func newWindowState(mode csfml.VideoMode, title *uint32, style uint32, settings *csfml.ContextSettings) *windowState {
	w := &windowState{
		title:    utf32At(title),
		mode:     mode,
		size:     csfml.Vector2u{X: mode.Width, Y: mode.Height},
		style:    style,
		open:     true,
		visible:  true,
		repeat:   true,
		cursor:   true,
		active:   true,
		focus:    true,
		settings: csfml.ContextSettings{MajorVersion: 1, MinorVersion: 1},
	}
	if settings != nil {
		w.settings = *settings
	}
	w.cond = sync.NewCond(&w.mu)
	return w
}

func (w *windowState) close() {
	w.mu.Lock()
	w.open = false
	w.mu.Unlock()
	w.cond.Broadcast()
}

func (w *windowState) push(ev csfml.Event) {
	w.mu.Lock()
	w.queue = append(w.queue, ev)
	w.mu.Unlock()
	w.cond.Signal()
}

func (w *windowState) poll(out *csfml.Event) ffi.Bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.queue) == 0 || out == nil {
		return ffi.False
	}
	*out = w.queue[0]
	w.queue = w.queue[1:]
	return ffi.True
}

// wait blocks until an event arrives. A closed window with an empty queue
// fails.
func (w *windowState) wait(out *csfml.Event) ffi.Bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for len(w.queue) == 0 && w.open {
		w.cond.Wait()
	}
	if len(w.queue) == 0 || out == nil {
		return ffi.False
	}
	*out = w.queue[0]
	w.queue = w.queue[1:]
	return ffi.True
}

func (w *windowState) isOpen() ffi.Bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return ffi.BoolOf(w.open)
}

// PushEvent queues an event on a window or render window, waking a blocked
// WaitEvent.
func (b *Backend) PushEvent(window ffi.Ptr, ev csfml.Event) error {
	w, ok := lookup[*windowState](b, window, kindWindow, kindRenderWindow)
	if !ok {
		return gerrors.NotFound(gerrors.PhaseCall, "window", window.String())
	}
	w.push(ev)
	return nil
}

// Title returns the title a window was created or last retitled with.
func (b *Backend) Title(window ffi.Ptr) string {
	w, ok := lookup[*windowState](b, window, kindWindow, kindRenderWindow)
	if !ok {
		return ""
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return ffi.StringFromUTF32(w.title)
}

func (b *Backend) createWindow(kind string, mode csfml.VideoMode, title *uint32, style uint32, settings *csfml.ContextSettings) ffi.Ptr {
	if mode.Width == 0 || mode.Height == 0 {
		return ffi.Null
	}
	return b.create(kind, newWindowState(mode, title, style, settings))
}

func (b *Backend) destroyWindow(kind string, p ffi.Ptr) {
	if v, ok := b.destroy(kind, p); ok {
		v.(*windowState).close()
	}
}

// withWindow runs fn on the window at p, if any.
func withWindow[R any](b *Backend, p ffi.Ptr, fn func(w *windowState) R) R {
	w, ok := lookup[*windowState](b, p, kindWindow, kindRenderWindow)
	if !ok {
		var zero R
		return zero
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w)
}

func (b *Backend) bindWindow() {
	win := &b.api.Window.Window
	win.CreateUnicode = func(mode csfml.VideoMode, title *uint32, style uint32, settings *csfml.ContextSettings) ffi.Ptr {
		return b.createWindow(kindWindow, mode, title, style, settings)
	}
	win.Destroy = func(p ffi.Ptr) { b.destroyWindow(kindWindow, p) }
	win.Close = func(p ffi.Ptr) {
		if w, ok := lookup[*windowState](b, p, kindWindow); ok {
			w.close()
		}
	}
	win.IsOpen = func(p ffi.Ptr) ffi.Bool {
		w, ok := lookup[*windowState](b, p, kindWindow)
		if !ok {
			return ffi.False
		}
		return w.isOpen()
	}
	win.PollEvent = func(p ffi.Ptr, ev *csfml.Event) ffi.Bool {
		w, ok := lookup[*windowState](b, p, kindWindow)
		if !ok {
			return ffi.False
		}
		return w.poll(ev)
	}
	win.WaitEvent = func(p ffi.Ptr, ev *csfml.Event) ffi.Bool {
		w, ok := lookup[*windowState](b, p, kindWindow)
		if !ok {
			return ffi.False
		}
		return w.wait(ev)
	}
	win.Display = func(ffi.Ptr) {}
	win.SetUnicodeTitle = func(p ffi.Ptr, title *uint32) {
		withWindow(b, p, func(w *windowState) struct{} { w.title = utf32At(title); return struct{}{} })
	}
	win.SetVisible = func(p ffi.Ptr, v ffi.Bool) {
		withWindow(b, p, func(w *windowState) struct{} { w.visible = v.Go(); return struct{}{} })
	}
	win.SetVerticalSyncEnabled = func(p ffi.Ptr, v ffi.Bool) {
		withWindow(b, p, func(w *windowState) struct{} { w.vsync = v.Go(); return struct{}{} })
	}
	win.SetKeyRepeatEnabled = func(p ffi.Ptr, v ffi.Bool) {
		withWindow(b, p, func(w *windowState) struct{} { w.repeat = v.Go(); return struct{}{} })
	}
	win.SetMouseCursorVisible = func(p ffi.Ptr, v ffi.Bool) {
		withWindow(b, p, func(w *windowState) struct{} { w.cursor = v.Go(); return struct{}{} })
	}
	win.SetMouseCursorGrabbed = func(p ffi.Ptr, v ffi.Bool) {
		withWindow(b, p, func(w *windowState) struct{} { w.grabbed = v.Go(); return struct{}{} })
	}
	win.SetFramerateLimit = func(p ffi.Ptr, limit uint32) {
		withWindow(b, p, func(w *windowState) struct{} { w.limit = limit; return struct{}{} })
	}
	win.GetSize = func(p ffi.Ptr) csfml.Vector2u {
		return withWindow(b, p, func(w *windowState) csfml.Vector2u { return w.size })
	}
	win.SetSize = func(p ffi.Ptr, size csfml.Vector2u) {
		withWindow(b, p, func(w *windowState) struct{} { w.size = size; return struct{}{} })
	}
	win.GetPosition = func(p ffi.Ptr) csfml.Vector2i {
		return withWindow(b, p, func(w *windowState) csfml.Vector2i { return w.position })
	}
	win.SetPosition = func(p ffi.Ptr, pos csfml.Vector2i) {
		withWindow(b, p, func(w *windowState) struct{} { w.position = pos; return struct{}{} })
	}
	win.GetSettings = func(p ffi.Ptr) csfml.ContextSettings {
		return withWindow(b, p, func(w *windowState) csfml.ContextSettings { return w.settings })
	}
	win.SetActive = func(p ffi.Ptr, v ffi.Bool) ffi.Bool {
		return withWindow(b, p, func(w *windowState) ffi.Bool { w.active = v.Go(); return ffi.True })
	}
	win.SetIcon = func(p ffi.Ptr, width, height uint32, pixels unsafe.Pointer) {
		icon := bytesAt(pixels, uintptr(width)*uintptr(height)*4)
		withWindow(b, p, func(w *windowState) struct{} { w.icon = icon; return struct{}{} })
	}
	win.RequestFocus = func(p ffi.Ptr) {
		withWindow(b, p, func(w *windowState) struct{} { w.focus = true; return struct{}{} })
	}
	win.HasFocus = func(p ffi.Ptr) ffi.Bool {
		return withWindow(b, p, func(w *windowState) ffi.Bool { return ffi.BoolOf(w.focus) })
	}
	win.SetJoystickThreshold = func(ffi.Ptr, float32) {}

	b.api.Window.Mouse.GetPosition = func(relativeTo ffi.Ptr) csfml.Vector2i {
		b.mu.Lock()
		pos := b.mouse
		b.mu.Unlock()
		if relativeTo == ffi.Null {
			return pos
		}
		origin := withWindow(b, relativeTo, func(w *windowState) csfml.Vector2i { return w.position })
		return csfml.Vector2i{X: pos.X - origin.X, Y: pos.Y - origin.Y}
	}
	b.api.Window.Mouse.SetPosition = func(pos csfml.Vector2i, relativeTo ffi.Ptr) {
		if relativeTo != ffi.Null {
			origin := withWindow(b, relativeTo, func(w *windowState) csfml.Vector2i { return w.position })
			pos = csfml.Vector2i{X: pos.X + origin.X, Y: pos.Y + origin.Y}
		}
		b.mu.Lock()
		b.mouse = pos
		b.mu.Unlock()
	}
	b.api.Window.Keyboard.IsKeyPressed = func(key int32) ffi.Bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		return ffi.BoolOf(b.keys[key])
	}
	b.api.Window.VideoMode.GetDesktopMode = func() csfml.VideoMode {
		return b.cfg.DesktopMode
	}
	b.api.Window.VideoMode.IsValid = func(mode csfml.VideoMode) ffi.Bool {
		d := b.cfg.DesktopMode
		return ffi.BoolOf(mode.Width > 0 && mode.Height > 0 && mode.Width <= d.Width && mode.Height <= d.Height)
	}
}

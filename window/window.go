package window

import (
	goruntime "runtime"
	"unsafe"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

// Window is an OS window with an OpenGL context.
type Window struct {
	h *foreign.Handle[csfml.Window]
}

// New opens a window. A nil settings pointer selects the defaults.
func New(rt *runtime.Runtime, mode VideoMode, title string, style Style, settings *ContextSettings) (*Window, error) {
	if settings == nil {
		s := DefaultContextSettings()
		settings = &s
	}
	cs := settings.C()
	t := ffi.UTF32(title)
	p := rt.API().Window.Window.CreateUnicode(csfml.VideoMode(mode), ffi.UTF32Ptr(t), uint32(style), &cs)
	goruntime.KeepAlive(t)

	h, err := foreign.Acquire[csfml.Window](rt, p)
	if err != nil {
		return nil, err
	}
	return &Window{h: h}, nil
}

func (w *Window) api() *csfml.WindowFuncs {
	return &w.h.Runtime().API().Window.Window
}

// Ptr returns the library address of the window.
func (w *Window) Ptr() ffi.Ptr {
	return w.h.Borrow()
}

// PollEvent pops the next pending event. Events that cannot be decoded are
// dropped. It reports false when the queue is empty.
func (w *Window) PollEvent() (Event, bool) {
	return Poll(w.api().PollEvent, w.h.BorrowMut())
}

// WaitEvent blocks until an event arrives. It reports false when the library
// fails to deliver one or the event cannot be decoded.
func (w *Window) WaitEvent() (Event, bool) {
	return Wait(w.api().WaitEvent, w.h.BorrowMut())
}

// PollFunc and WaitFunc are the library's event functions, shared by plain
// and render windows.
type (
	PollFunc = func(ffi.Ptr, *csfml.Event) ffi.Bool
	WaitFunc = func(ffi.Ptr, *csfml.Event) ffi.Bool
)

// Poll returns the next decodable event of the window at p.
func Poll(poll PollFunc, p ffi.Ptr) (Event, bool) {
	for {
		var raw csfml.Event
		if !poll(p, &raw).Go() {
			return nil, false
		}
		if ev, ok := Decode(raw); ok {
			return ev, true
		}
	}
}

// Wait blocks for the next event of the window at p.
func Wait(wait WaitFunc, p ffi.Ptr) (Event, bool) {
	var raw csfml.Event
	if !wait(p, &raw).Go() {
		return nil, false
	}
	return Decode(raw)
}

// CloseWindow closes the OS window. The Window itself stays usable until
// Close, and IsOpen reports false.
func (w *Window) CloseWindow() {
	w.api().Close(w.h.BorrowMut())
}

// Close releases the window.
func (w *Window) Close() error {
	return w.h.Close()
}

// IsOpen reports whether the window is open.
func (w *Window) IsOpen() bool {
	return w.api().IsOpen(w.h.Borrow()).Go()
}

// Display shows what was rendered since the last call.
func (w *Window) Display() {
	w.api().Display(w.h.BorrowMut())
}

// SetTitle changes the title bar text.
func (w *Window) SetTitle(title string) {
	t := ffi.UTF32(title)
	w.api().SetUnicodeTitle(w.h.BorrowMut(), ffi.UTF32Ptr(t))
	goruntime.KeepAlive(t)
}

func (w *Window) SetVisible(visible bool) {
	w.api().SetVisible(w.h.BorrowMut(), ffi.BoolOf(visible))
}

func (w *Window) SetVerticalSyncEnabled(enabled bool) {
	w.api().SetVerticalSyncEnabled(w.h.BorrowMut(), ffi.BoolOf(enabled))
}

func (w *Window) SetKeyRepeatEnabled(enabled bool) {
	w.api().SetKeyRepeatEnabled(w.h.BorrowMut(), ffi.BoolOf(enabled))
}

func (w *Window) SetMouseCursorVisible(visible bool) {
	w.api().SetMouseCursorVisible(w.h.BorrowMut(), ffi.BoolOf(visible))
}

func (w *Window) SetMouseCursorGrabbed(grabbed bool) {
	w.api().SetMouseCursorGrabbed(w.h.BorrowMut(), ffi.BoolOf(grabbed))
}

// SetFramerateLimit caps Display to limit frames per second. Zero disables
// the cap.
func (w *Window) SetFramerateLimit(limit uint32) {
	w.api().SetFramerateLimit(w.h.BorrowMut(), limit)
}

func (w *Window) SetJoystickThreshold(threshold float32) {
	w.api().SetJoystickThreshold(w.h.BorrowMut(), threshold)
}

func (w *Window) Size() system.Vector2u {
	return system.Vector2u(w.api().GetSize(w.h.Borrow()))
}

func (w *Window) SetSize(size system.Vector2u) {
	w.api().SetSize(w.h.BorrowMut(), csfml.Vector2u(size))
}

func (w *Window) Position() system.Vector2i {
	return system.Vector2i(w.api().GetPosition(w.h.Borrow()))
}

func (w *Window) SetPosition(pos system.Vector2i) {
	w.api().SetPosition(w.h.BorrowMut(), csfml.Vector2i(pos))
}

// Settings returns the settings of the context actually created, which may
// differ from the ones requested.
func (w *Window) Settings() ContextSettings {
	return SettingsOf(w.api().GetSettings(w.h.Borrow()))
}

// SetActive makes the window's context current on this thread.
func (w *Window) SetActive(active bool) bool {
	return w.api().SetActive(w.h.BorrowMut(), ffi.BoolOf(active)).Go()
}

// SetIcon sets the window icon from width*height RGBA pixels.
func (w *Window) SetIcon(width, height uint32, pixels []byte) error {
	if uint64(len(pixels)) != uint64(width)*uint64(height)*4 || len(pixels) == 0 {
		return gerrors.InvalidInput(gerrors.PhaseCall, "icon needs width*height*4 bytes of RGBA")
	}
	w.api().SetIcon(w.h.BorrowMut(), width, height, unsafe.Pointer(&pixels[0]))
	goruntime.KeepAlive(pixels)
	return nil
}

func (w *Window) RequestFocus() {
	w.api().RequestFocus(w.h.BorrowMut())
}

func (w *Window) HasFocus() bool {
	return w.api().HasFocus(w.h.Borrow()).Go()
}

// MousePosition returns the cursor position relative to the window.
func (w *Window) MousePosition() system.Vector2i {
	return system.Vector2i(w.h.Runtime().API().Window.Mouse.GetPosition(w.h.Borrow()))
}

// SetMousePosition moves the cursor relative to the window.
func (w *Window) SetMousePosition(pos system.Vector2i) {
	w.h.Runtime().API().Window.Mouse.SetPosition(csfml.Vector2i(pos), w.h.Borrow())
}

// MousePosition returns the cursor position on the desktop.
func MousePosition(rt *runtime.Runtime) system.Vector2i {
	return system.Vector2i(rt.API().Window.Mouse.GetPosition(ffi.Null))
}

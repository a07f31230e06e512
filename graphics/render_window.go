package graphics

import (
	goruntime "runtime"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/window"
)

// RenderWindow is a window that drawables can be drawn to.
type RenderWindow struct {
	target
	h *foreign.Handle[csfml.RenderWindow]
}

// NewRenderWindow opens a render window. A nil settings pointer selects the
// defaults.
func NewRenderWindow(rt *runtime.Runtime, mode window.VideoMode, title string, style window.Style, settings *window.ContextSettings) (*RenderWindow, error) {
	if settings == nil {
		s := window.DefaultContextSettings()
		settings = &s
	}
	cs := settings.C()
	t := ffi.UTF32(title)
	p := rt.API().Graphics.RenderWindow.CreateUnicode(csfml.VideoMode(mode), ffi.UTF32Ptr(t), uint32(style), &cs)
	goruntime.KeepAlive(t)

	h, err := foreign.Acquire[csfml.RenderWindow](rt, p)
	if err != nil {
		return nil, err
	}
	return &RenderWindow{
		target: target{tg: &rt.API().Graphics.RenderWindow.RenderTargetAPI, h: h},
		h:      h,
	}, nil
}

func (rw *RenderWindow) api() *csfml.RenderWindowAPI {
	return &rw.h.Runtime().API().Graphics.RenderWindow
}

// Ptr returns the library address of the window.
func (rw *RenderWindow) Ptr() ffi.Ptr {
	return rw.h.Borrow()
}

// PollEvent pops the next pending event, or reports false.
func (rw *RenderWindow) PollEvent() (window.Event, bool) {
	return window.Poll(rw.api().PollEvent, rw.h.BorrowMut())
}

// WaitEvent blocks until an event arrives.
func (rw *RenderWindow) WaitEvent() (window.Event, bool) {
	return window.Wait(rw.api().WaitEvent, rw.h.BorrowMut())
}

// CloseWindow closes the OS window; IsOpen reports false afterwards.
func (rw *RenderWindow) CloseWindow() {
	rw.api().Close(rw.h.BorrowMut())
}

func (rw *RenderWindow) IsOpen() bool {
	return rw.api().IsOpen(rw.h.Borrow()).Go()
}

func (rw *RenderWindow) SetFramerateLimit(limit uint32) {
	rw.api().SetFramerateLimit(rw.h.BorrowMut(), limit)
}

func (rw *RenderWindow) SetVerticalSyncEnabled(enabled bool) {
	rw.api().SetVerticalSyncEnabled(rw.h.BorrowMut(), ffi.BoolOf(enabled))
}

func (rw *RenderWindow) SetTitle(title string) {
	t := ffi.UTF32(title)
	rw.api().SetUnicodeTitle(rw.h.BorrowMut(), ffi.UTF32Ptr(t))
	goruntime.KeepAlive(t)
}

// Close releases the window.
func (rw *RenderWindow) Close() error {
	return rw.h.Close()
}

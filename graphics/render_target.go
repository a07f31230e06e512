package graphics

import (
	goruntime "runtime"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/system"
)

// RenderTarget is what drawables are drawn to: a RenderWindow or a
// RenderTexture.
type RenderTarget interface {
	Clear(c Color)
	Draw(d Drawable)
	DrawWith(d Drawable, states RenderStates)
	Display()
	Size() system.Vector2u
}

var (
	_ RenderTarget = (*RenderWindow)(nil)
	_ RenderTarget = (*RenderTexture)(nil)
)

// target implements RenderTarget over the functions a render window or
// render texture offers under its own prefix.
type target struct {
	tg *csfml.RenderTargetAPI
	h  borrower
}

// Clear fills the frame with c.
func (t target) Clear(c Color) {
	t.tg.Clear(t.h.BorrowMut(), csfml.Color(c))
}

// Draw draws d with the default render states.
func (t target) Draw(d Drawable) {
	d.draw(t.tg, t.h.BorrowMut(), nil)
}

// DrawWith draws d with states.
func (t target) DrawWith(d Drawable, states RenderStates) {
	cs := states.c()
	d.draw(t.tg, t.h.BorrowMut(), &cs)
	goruntime.KeepAlive(states.Texture)
}

// Display ends the frame.
func (t target) Display() {
	t.tg.Display(t.h.BorrowMut())
}

func (t target) Size() system.Vector2u {
	return system.Vector2u(t.tg.GetSize(t.h.Borrow()))
}

package graphics

import (
	"github.com/wippyai/gosfml/borrow"
	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
)

// texturing is the texture borrow shared by sprites and shapes.
type texturing struct {
	setTex  func(obj, tex ffi.Ptr, resetRect ffi.Bool)
	setRect func(ffi.Ptr, csfml.IntRect)
	getRect func(ffi.Ptr) csfml.IntRect
	h       borrower
	tex     borrow.Binding[csfml.Texture, Texture]
}

// SetTexture binds tex. With resetRect, or when no rectangle was set yet,
// the texture rectangle becomes the whole texture. The texture cannot be
// closed until it is replaced, disabled, or this object is closed.
func (t *texturing) SetTexture(tex *Texture, resetRect bool) error {
	if tex == nil {
		return gerrors.NilPointer(gerrors.PhaseBorrow, "texture")
	}
	if err := t.tex.Set(tex.h, tex); err != nil {
		return err
	}
	t.setTex(t.h.BorrowMut(), tex.h.Borrow(), ffi.BoolOf(resetRect))
	return nil
}

// DisableTexture unbinds the texture on both sides.
func (t *texturing) DisableTexture() {
	t.setTex(t.h.BorrowMut(), ffi.Null, ffi.False)
	t.tex.Clear()
}

// Texture returns the bound texture, or nil.
func (t *texturing) Texture() *Texture {
	return t.tex.Get()
}

// TextureRect is the part of the texture that is displayed.
func (t *texturing) TextureRect() IntRect {
	return IntRect(t.getRect(t.h.Borrow()))
}

func (t *texturing) SetTextureRect(r IntRect) {
	t.setRect(t.h.BorrowMut(), csfml.IntRect(r))
}

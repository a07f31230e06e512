package graphics

import (
	goruntime "runtime"

	"github.com/wippyai/gosfml/borrow"
	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
)

// Text is a drawable string. It borrows its font: the font cannot be closed
// while the text uses it.
type Text struct {
	transformable
	h    *foreign.Handle[csfml.Text]
	font borrow.Binding[csfml.Font, Font]
}

func newText(h *foreign.Handle[csfml.Text]) *Text {
	t := &Text{h: h}
	t.transformable = transformable{tf: &t.api().TransformableAPI, h: h}
	return t
}

// NewText creates an empty text without a font.
func NewText(rt *runtime.Runtime) (*Text, error) {
	h, err := foreign.Acquire[csfml.Text](rt, rt.API().Graphics.Text.Create())
	if err != nil {
		return nil, err
	}
	return newText(h), nil
}

// NewTextInit creates a text showing s in font at characterSize.
func NewTextInit(rt *runtime.Runtime, s string, font *Font, characterSize uint32) (*Text, error) {
	t, err := NewText(rt)
	if err != nil {
		return nil, err
	}
	if err := t.SetFont(font); err != nil {
		_ = t.Close()
		return nil, err
	}
	t.SetString(s)
	t.SetCharacterSize(characterSize)
	return t, nil
}

func (t *Text) api() *csfml.TextAPI {
	return &t.h.Runtime().API().Graphics.Text
}

// Clone returns an independent text that uses the same font.
func (t *Text) Clone() (*Text, error) {
	h, err := foreign.Duplicate(t.h)
	if err != nil {
		return nil, err
	}
	c := newText(h)
	if err := t.font.CloneInto(&c.font); err != nil {
		_ = h.Close()
		return nil, err
	}
	return c, nil
}

func (t *Text) SetString(s string) {
	units := ffi.UTF32(s)
	t.api().SetUnicodeString(t.h.BorrowMut(), ffi.UTF32Ptr(units))
	goruntime.KeepAlive(units)
}

func (t *Text) String() string {
	units := t.h.Runtime().API().Memory.ReadUTF32(t.api().GetUnicodeString(t.h.Borrow()))
	return ffi.StringFromUTF32(units)
}

// SetFont binds font, replacing the previous one.
func (t *Text) SetFont(font *Font) error {
	if font == nil {
		return gerrors.NilPointer(gerrors.PhaseBorrow, "font")
	}
	if err := t.font.Set(font.h, font); err != nil {
		return err
	}
	t.api().SetFont(t.h.BorrowMut(), font.h.Borrow())
	return nil
}

// Font returns the bound font, or nil.
func (t *Text) Font() *Font {
	return t.font.Get()
}

func (t *Text) SetCharacterSize(size uint32) {
	t.api().SetCharacterSize(t.h.BorrowMut(), size)
}

func (t *Text) CharacterSize() uint32 {
	return t.api().GetCharacterSize(t.h.Borrow())
}

func (t *Text) SetStyle(style TextStyle) {
	t.api().SetStyle(t.h.BorrowMut(), uint32(style))
}

func (t *Text) Style() TextStyle {
	return TextStyle(t.api().GetStyle(t.h.Borrow()))
}

func (t *Text) SetFillColor(c Color) {
	t.api().SetFillColor(t.h.BorrowMut(), csfml.Color(c))
}

func (t *Text) FillColor() Color {
	return Color(t.api().GetFillColor(t.h.Borrow()))
}

// LocalBounds ignores the transform.
func (t *Text) LocalBounds() FloatRect {
	return FloatRect(t.api().GetLocalBounds(t.h.Borrow()))
}

func (t *Text) GlobalBounds() FloatRect {
	return FloatRect(t.api().GetGlobalBounds(t.h.Borrow()))
}

// Ptr returns the library address of the text.
func (t *Text) Ptr() ffi.Ptr {
	return t.h.Borrow()
}

func (t *Text) draw(api *csfml.RenderTargetAPI, target ffi.Ptr, states *csfml.RenderStates) {
	api.DrawText(target, t.h.Borrow(), states)
}

// Close destroys the text and releases its font.
func (t *Text) Close() error {
	if err := t.h.Close(); err != nil {
		return err
	}
	t.font.Clear()
	return nil
}

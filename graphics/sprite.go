package graphics

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
)

// Sprite draws a rectangle of a texture.
type Sprite struct {
	transformable
	texturing
	h *foreign.Handle[csfml.Sprite]
}

func newSprite(h *foreign.Handle[csfml.Sprite]) *Sprite {
	s := &Sprite{h: h}
	api := s.api()
	s.transformable = transformable{tf: &api.TransformableAPI, h: h}
	s.texturing = texturing{
		setTex:  api.SetTexture,
		setRect: api.SetTextureRect,
		getRect: api.GetTextureRect,
		h:       h,
	}
	return s
}

// NewSprite creates a sprite without a texture.
func NewSprite(rt *runtime.Runtime) (*Sprite, error) {
	h, err := foreign.Acquire[csfml.Sprite](rt, rt.API().Graphics.Sprite.Create())
	if err != nil {
		return nil, err
	}
	return newSprite(h), nil
}

// NewSpriteWithTexture creates a sprite showing all of tex.
func NewSpriteWithTexture(rt *runtime.Runtime, tex *Texture) (*Sprite, error) {
	s, err := NewSprite(rt)
	if err != nil {
		return nil, err
	}
	if err := s.SetTexture(tex, true); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Sprite) api() *csfml.SpriteAPI {
	return &s.h.Runtime().API().Graphics.Sprite
}

// Clone returns an independent sprite that uses the same texture.
func (s *Sprite) Clone() (*Sprite, error) {
	h, err := foreign.Duplicate(s.h)
	if err != nil {
		return nil, err
	}
	c := newSprite(h)
	if err := s.tex.CloneInto(&c.tex); err != nil {
		_ = h.Close()
		return nil, err
	}
	return c, nil
}

// SetColor sets the color the texture is modulated with.
func (s *Sprite) SetColor(c Color) {
	s.api().SetColor(s.h.BorrowMut(), csfml.Color(c))
}

func (s *Sprite) Color() Color {
	return Color(s.api().GetColor(s.h.Borrow()))
}

func (s *Sprite) LocalBounds() FloatRect {
	return FloatRect(s.api().GetLocalBounds(s.h.Borrow()))
}

func (s *Sprite) GlobalBounds() FloatRect {
	return FloatRect(s.api().GetGlobalBounds(s.h.Borrow()))
}

// Ptr returns the library address of the sprite.
func (s *Sprite) Ptr() ffi.Ptr {
	return s.h.Borrow()
}

func (s *Sprite) draw(api *csfml.RenderTargetAPI, target ffi.Ptr, states *csfml.RenderStates) {
	api.DrawSprite(target, s.h.Borrow(), states)
}

// Close destroys the sprite and releases its texture.
func (s *Sprite) Close() error {
	if err := s.h.Close(); err != nil {
		return err
	}
	s.tex.Clear()
	return nil
}

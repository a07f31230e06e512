package graphics

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
)

// RenderTexture is an off-screen render target. After Display, what was
// drawn can be read through Texture.
type RenderTexture struct {
	target
	h   *foreign.Handle[csfml.RenderTexture]
	tex *Texture
}

// NewRenderTexture creates a width x height render texture, optionally with
// a depth buffer.
func NewRenderTexture(rt *runtime.Runtime, width, height uint32, depthBuffer bool) (*RenderTexture, error) {
	api := &rt.API().Graphics.RenderTexture
	h, err := foreign.Acquire[csfml.RenderTexture](rt, api.Create(width, height, ffi.BoolOf(depthBuffer)))
	if err != nil {
		return nil, err
	}
	view, err := foreign.View[csfml.Texture](rt, h, api.GetTexture(h.Borrow()))
	if err != nil {
		_ = h.Close()
		return nil, err
	}
	return &RenderTexture{
		target: target{tg: &api.RenderTargetAPI, h: h},
		h:      h,
		tex:    &Texture{h: view},
	}, nil
}

func (r *RenderTexture) api() *csfml.RenderTextureAPI {
	return &r.h.Runtime().API().Graphics.RenderTexture
}

// Ptr returns the library address of the render texture.
func (r *RenderTexture) Ptr() ffi.Ptr {
	return r.h.Borrow()
}

// Texture returns the texture being drawn into, the same value on every
// call. The render texture owns it: Close on it fails with
// errors.ErrNotOwner, and it stops working once the render texture is
// closed. While a sprite or shape uses it the render texture cannot be
// closed.
func (r *RenderTexture) Texture() *Texture {
	return r.tex
}

// SetActive makes the render texture's context current. It reports whether
// that worked.
func (r *RenderTexture) SetActive(active bool) bool {
	return r.api().SetActive(r.h.BorrowMut(), ffi.BoolOf(active)).Go()
}

func (r *RenderTexture) SetSmooth(smooth bool) {
	r.api().SetSmooth(r.h.BorrowMut(), ffi.BoolOf(smooth))
}

func (r *RenderTexture) IsSmooth() bool {
	return r.api().IsSmooth(r.h.Borrow()).Go()
}

func (r *RenderTexture) SetRepeated(repeated bool) {
	r.api().SetRepeated(r.h.BorrowMut(), ffi.BoolOf(repeated))
}

func (r *RenderTexture) IsRepeated() bool {
	return r.api().IsRepeated(r.h.Borrow()).Go()
}

// GenerateMipmap builds mipmaps of the current contents.
func (r *RenderTexture) GenerateMipmap() bool {
	return r.api().GenerateMipmap(r.h.BorrowMut()).Go()
}

// Close destroys the render texture and its texture. It fails while
// sprites or shapes use the texture.
func (r *RenderTexture) Close() error {
	return r.h.Close()
}

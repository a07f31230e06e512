package graphics

import (
	goruntime "runtime"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

// Texture is an image in graphics memory, drawn through sprites and shapes.
// A texture cannot be closed while a sprite or shape still uses it.
// A RenderTexture hands out a Texture it owns; Copy makes an owned one.
type Texture struct {
	h *foreign.Handle[csfml.Texture]
}

func newTexture(rt *runtime.Runtime, p ffi.Ptr) (*Texture, error) {
	h, err := foreign.Acquire[csfml.Texture](rt, p)
	if err != nil {
		return nil, err
	}
	return &Texture{h: h}, nil
}

func areaArg(area *IntRect) *csfml.IntRect {
	if area == nil {
		return nil
	}
	a := csfml.IntRect(*area)
	return &a
}

// NewTexture creates an empty texture.
func NewTexture(rt *runtime.Runtime, width, height uint32) (*Texture, error) {
	return newTexture(rt, rt.API().Graphics.Texture.Create(width, height))
}

// NewTextureFromImage uploads area of img, or all of it when area is nil.
func NewTextureFromImage(rt *runtime.Runtime, img *Image, area *IntRect) (*Texture, error) {
	return newTexture(rt, rt.API().Graphics.Texture.CreateFromImage(img.h.Borrow(), areaArg(area)))
}

// NewTextureFromFile loads area of an image file, or all of it when area is
// nil.
func NewTextureFromFile(rt *runtime.Runtime, path string, area *IntRect) (*Texture, error) {
	return newTexture(rt, rt.API().Graphics.Texture.CreateFromFile(path, areaArg(area)))
}

// NewTextureFromMemory decodes an image file held in data.
func NewTextureFromMemory(rt *runtime.Runtime, data []byte, area *IntRect) (*Texture, error) {
	ptr, size := bytesArg(data)
	p := rt.API().Graphics.Texture.CreateFromMemory(ptr, size, areaArg(area))
	goruntime.KeepAlive(data)
	return newTexture(rt, p)
}

func (t *Texture) api() *csfml.TextureAPI {
	return &t.h.Runtime().API().Graphics.Texture
}

// Copy returns an independent copy of the texture.
func (t *Texture) Copy() (*Texture, error) {
	h, err := foreign.Duplicate(t.h)
	if err != nil {
		return nil, err
	}
	return &Texture{h: h}, nil
}

func (t *Texture) Size() system.Vector2u {
	return system.Vector2u(t.api().GetSize(t.h.Borrow()))
}

// CopyToImage downloads the texture into a new image.
func (t *Texture) CopyToImage() (*Image, error) {
	return newImage(t.h.Runtime(), t.api().CopyToImage(t.h.Borrow()))
}

func (t *Texture) SetSmooth(smooth bool) {
	t.api().SetSmooth(t.h.BorrowMut(), ffi.BoolOf(smooth))
}

func (t *Texture) IsSmooth() bool {
	return t.api().IsSmooth(t.h.Borrow()).Go()
}

func (t *Texture) SetRepeated(repeated bool) {
	t.api().SetRepeated(t.h.BorrowMut(), ffi.BoolOf(repeated))
}

func (t *Texture) IsRepeated() bool {
	return t.api().IsRepeated(t.h.Borrow()).Go()
}

// UpdateFromImage copies img into the texture at (x, y). The image must fit.
func (t *Texture) UpdateFromImage(img *Image, x, y uint32) error {
	ts, is := t.Size(), img.Size()
	if uint64(x)+uint64(is.X) > uint64(ts.X) || uint64(y)+uint64(is.Y) > uint64(ts.Y) {
		return gerrors.InvalidInput(gerrors.PhaseCall, "image does not fit in the texture")
	}
	t.api().UpdateFromImage(t.h.BorrowMut(), img.h.Borrow(), x, y)
	return nil
}

// Close destroys the texture. It fails while sprites or shapes use it, and
// on the texture of a RenderTexture, which only its owner can release.
func (t *Texture) Close() error {
	return t.h.Close()
}

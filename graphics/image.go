package graphics

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

// Image is a pixel buffer in system memory.
type Image struct {
	h *foreign.Handle[csfml.Image]
}

func newImage(rt *runtime.Runtime, p ffi.Ptr) (*Image, error) {
	h, err := foreign.Acquire[csfml.Image](rt, p)
	if err != nil {
		return nil, err
	}
	return &Image{h: h}, nil
}

// NewImage creates a black image.
func NewImage(rt *runtime.Runtime, width, height uint32) (*Image, error) {
	return newImage(rt, rt.API().Graphics.Image.Create(width, height))
}

// NewImageFromColor creates an image filled with c.
func NewImageFromColor(rt *runtime.Runtime, width, height uint32, c Color) (*Image, error) {
	return newImage(rt, rt.API().Graphics.Image.CreateFromColor(width, height, csfml.Color(c)))
}

// NewImageFromPixels creates an image from width*height RGBA pixels.
func NewImageFromPixels(rt *runtime.Runtime, width, height uint32, pixels []byte) (*Image, error) {
	if len(pixels) == 0 || uint64(len(pixels)) != uint64(width)*uint64(height)*4 {
		return nil, gerrors.InvalidInput(gerrors.PhaseCreate, "pixels must hold width*height*4 bytes")
	}
	p := rt.API().Graphics.Image.CreateFromPixels(width, height, unsafe.Pointer(&pixels[0]))
	goruntime.KeepAlive(pixels)
	return newImage(rt, p)
}

// NewImageFromFile loads an image file.
func NewImageFromFile(rt *runtime.Runtime, path string) (*Image, error) {
	return newImage(rt, rt.API().Graphics.Image.CreateFromFile(path))
}

// NewImageFromMemory decodes an image file held in data. Empty or malformed
// data fails with a construction error.
func NewImageFromMemory(rt *runtime.Runtime, data []byte) (*Image, error) {
	ptr, size := bytesArg(data)
	p := rt.API().Graphics.Image.CreateFromMemory(ptr, size)
	goruntime.KeepAlive(data)
	return newImage(rt, p)
}

func bytesArg(data []byte) (unsafe.Pointer, uintptr) {
	if len(data) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(&data[0]), uintptr(len(data))
}

func (i *Image) api() *csfml.ImageAPI {
	return &i.h.Runtime().API().Graphics.Image
}

// Copy returns an independent copy of the image.
func (i *Image) Copy() (*Image, error) {
	h, err := foreign.Duplicate(i.h)
	if err != nil {
		return nil, err
	}
	return &Image{h: h}, nil
}

// SaveToFile writes the image; the format follows the extension.
func (i *Image) SaveToFile(path string) error {
	if !i.api().SaveToFile(i.h.Borrow(), path).Go() {
		return gerrors.New(gerrors.PhaseCall, gerrors.KindInvalidInput).
			Resource(i.h.Kind()).
			Symbol("sfImage_saveToFile").
			Detail("cannot save to %q", path).
			Build()
	}
	return nil
}

func (i *Image) Size() system.Vector2u {
	return system.Vector2u(i.api().GetSize(i.h.Borrow()))
}

func (i *Image) inside(x, y uint32) bool {
	s := i.Size()
	return x < s.X && y < s.Y
}

// Pixel returns the color at (x, y). Coordinates outside the image yield
// Transparent.
func (i *Image) Pixel(x, y uint32) Color {
	if !i.inside(x, y) {
		return Transparent
	}
	return Color(i.api().GetPixel(i.h.Borrow(), x, y))
}

// SetPixel changes the color at (x, y). Coordinates outside the image are
// ignored.
func (i *Image) SetPixel(x, y uint32, c Color) {
	if !i.inside(x, y) {
		return
	}
	i.api().SetPixel(i.h.BorrowMut(), x, y, csfml.Color(c))
}

// Pixels returns a copy of the RGBA pixel data.
func (i *Image) Pixels() []byte {
	s := i.Size()
	n := int(s.X) * int(s.Y) * 4
	if n == 0 {
		return nil
	}
	return i.h.Runtime().API().Memory.ReadBytes(i.api().GetPixelsPtr(i.h.Borrow()), n)
}

func (i *Image) FlipHorizontally() {
	i.api().FlipHorizontally(i.h.BorrowMut())
}

func (i *Image) FlipVertically() {
	i.api().FlipVertically(i.h.BorrowMut())
}

// CreateMaskFromColor sets the alpha of every pixel of color c to alpha.
func (i *Image) CreateMaskFromColor(c Color, alpha uint8) {
	i.api().CreateMaskFromColor(i.h.BorrowMut(), csfml.Color(c), alpha)
}

// Close destroys the image.
func (i *Image) Close() error {
	return i.h.Close()
}

package graphics

import (
	goruntime "runtime"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
)

// Font is a typeface shared by any number of texts. A font cannot be closed
// while a text still uses it.
type Font struct {
	h *foreign.Handle[csfml.Font]
	// buf holds the bytes of a font loaded from memory, which the library
	// reads lazily for as long as the font lives.
	buf *foreign.Buffer
}

// NewFontFromFile loads a font file.
func NewFontFromFile(rt *runtime.Runtime, path string) (*Font, error) {
	h, err := foreign.Acquire[csfml.Font](rt, rt.API().Graphics.Font.CreateFromFile(path))
	if err != nil {
		return nil, err
	}
	return &Font{h: h}, nil
}

// NewFontFromMemory loads a font file held in data. The bytes are copied, so
// data may be reused after the call. Empty or malformed data fails with a
// construction error.
func NewFontFromMemory(rt *runtime.Runtime, data []byte) (*Font, error) {
	buf := foreign.Retain(data)
	p := rt.API().Graphics.Font.CreateFromMemory(buf.Ptr(), buf.Len())
	h, err := foreign.Acquire[csfml.Font](rt, p)
	if err != nil {
		buf.Release()
		return nil, err
	}
	return &Font{h: h, buf: buf}, nil
}

func (f *Font) api() *csfml.FontAPI {
	return &f.h.Runtime().API().Graphics.Font
}

// Copy returns an independent font. A font loaded from memory shares the
// retained bytes with its copies.
func (f *Font) Copy() (*Font, error) {
	h, err := foreign.Duplicate(f.h)
	if err != nil {
		return nil, err
	}
	return &Font{h: h, buf: f.buf.Share()}, nil
}

// Family returns the family name, such as "DejaVu Sans".
func (f *Font) Family() string {
	p := f.api().GetInfo(f.h.Borrow())
	s := f.h.Runtime().API().Memory.ReadCString(p)
	goruntime.KeepAlive(f)
	return s
}

// LineSpacing returns the vertical distance between two lines of text at
// characterSize.
func (f *Font) LineSpacing(characterSize uint32) float32 {
	return f.api().GetLineSpacing(f.h.Borrow(), characterSize)
}

// Close destroys the font. It fails while texts use it.
func (f *Font) Close() error {
	if err := f.h.Close(); err != nil {
		return err
	}
	f.buf.Release()
	f.buf = nil
	return nil
}

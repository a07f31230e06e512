package soft

import (
	"bytes"
	"os"
	"unsafe"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

const (
	kindFont = "sfFont"
	kindText = "sfText"
)

type fontState struct {
	data   []byte
	face   *gotext.Face
	sfnt   *opentype.Font
	family string
	info   ffi.Ptr
}

// parseFont accepts TrueType and OpenType data. Both parsers must agree the
// data is a font.
func parseFont(data []byte) (*fontState, bool) {
	if len(data) == 0 {
		return nil, false
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, false
	}
	family, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		family = ""
	}
	return &fontState{data: data, face: face, sfnt: f, family: family}, true
}

// lineSpacing returns the distance between two baselines at size pixels.
func (f *fontState) lineSpacing(size uint32) float32 {
	if size == 0 {
		return 0
	}
	var buf sfnt.Buffer
	m, err := f.sfnt.Metrics(&buf, fixed.I(int(size)), xfont.HintingNone)
	if err != nil {
		return float32(size)
	}
	return float32(m.Height) / 64
}

// advance returns the horizontal advance of r at size pixels.
func (f *fontState) advance(buf *sfnt.Buffer, r rune, size uint32) float32 {
	idx, err := f.sfnt.GlyphIndex(buf, r)
	if err != nil || idx == 0 {
		return 0
	}
	adv, err := f.sfnt.GlyphAdvance(buf, idx, fixed.I(int(size)), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return float32(adv) / 64
}

type textState struct {
	transformable
	str       []uint32
	font      ffi.Ptr
	size      uint32
	style     uint32
	fill      csfml.Color
	strExport ffi.Ptr
}

func newTextState() *textState {
	return &textState{
		transformable: newTransformable(),
		str:           []uint32{0},
		size:          30,
		fill:          csfml.Color{R: 255, G: 255, B: 255, A: 255},
	}
}

// localBounds lays the string out on one line per '\n' using the bound
// font's advances and line spacing.
func (b *Backend) textLocalBounds(t *textState) csfml.FloatRect {
	f, ok := lookup[*fontState](b, t.font, kindFont)
	if !ok {
		return csfml.FloatRect{}
	}
	var buf sfnt.Buffer
	spacing := f.lineSpacing(t.size)
	var width, line float32
	lines := 0
	for _, u := range t.str {
		if u == 0 {
			break
		}
		if lines == 0 {
			lines = 1
		}
		if u == '\n' {
			lines++
			line = 0
			continue
		}
		line += f.advance(&buf, rune(u), t.size)
		if line > width {
			width = line
		}
	}
	return csfml.FloatRect{Width: width, Height: spacing * float32(lines)}
}

func (b *Backend) bindFont() {
	fn := &b.api.Graphics.Font
	newFont := func(data []byte) ffi.Ptr {
		f, ok := parseFont(data)
		if !ok {
			return ffi.Null
		}
		return b.create(kindFont, f)
	}
	fn.CreateFromFile = func(path string) ffi.Ptr {
		data, err := os.ReadFile(path)
		if err != nil {
			return ffi.Null
		}
		return newFont(data)
	}
	fn.CreateFromMemory = func(data unsafe.Pointer, size uintptr) ffi.Ptr {
		return newFont(bytesAt(data, size))
	}
	fn.Copy = func(p ffi.Ptr) ffi.Ptr {
		f, ok := lookup[*fontState](b, p, kindFont)
		if !ok {
			return ffi.Null
		}
		cp, ok := parseFont(f.data)
		if !ok {
			return ffi.Null
		}
		return b.copyOf(kindFont, cp)
	}
	fn.Destroy = func(p ffi.Ptr) {
		if v, ok := b.destroy(kindFont, p); ok {
			b.unexport(v.(*fontState).info)
		}
	}
	fn.GetInfo = func(p ffi.Ptr) ffi.Ptr {
		f, ok := lookup[*fontState](b, p, kindFont)
		if !ok {
			return ffi.Null
		}
		return b.export(&f.info, f.family)
	}
	fn.GetLineSpacing = func(p ffi.Ptr, size uint32) float32 {
		f, ok := lookup[*fontState](b, p, kindFont)
		if !ok {
			return 0
		}
		return f.lineSpacing(size)
	}
}

func (b *Backend) bindText() {
	tx := &b.api.Graphics.Text
	text := func(p ffi.Ptr) (*textState, bool) {
		return lookup[*textState](b, p, kindText)
	}
	bindTransformable(b, &tx.TransformableAPI, kindText)

	tx.Create = func() ffi.Ptr { return b.create(kindText, newTextState()) }
	tx.Copy = func(p ffi.Ptr) ffi.Ptr {
		t, ok := text(p)
		if !ok {
			return ffi.Null
		}
		cp := *t
		cp.str = append([]uint32(nil), t.str...)
		cp.strExport = ffi.Null
		return b.copyOf(kindText, &cp)
	}
	tx.Destroy = func(p ffi.Ptr) {
		if v, ok := b.destroy(kindText, p); ok {
			b.unexport(v.(*textState).strExport)
		}
	}
	tx.SetUnicodeString = func(p ffi.Ptr, s *uint32) {
		if t, ok := text(p); ok {
			t.str = utf32At(s)
		}
	}
	tx.GetUnicodeString = func(p ffi.Ptr) ffi.Ptr {
		t, ok := text(p)
		if !ok {
			return ffi.Null
		}
		return b.export(&t.strExport, append([]uint32(nil), t.str...))
	}
	tx.SetFont = func(p, font ffi.Ptr) {
		if t, ok := text(p); ok {
			t.font = font
		}
	}
	tx.GetFont = func(p ffi.Ptr) ffi.Ptr {
		t, ok := text(p)
		if !ok {
			return ffi.Null
		}
		return t.font
	}
	tx.SetCharacterSize = func(p ffi.Ptr, size uint32) {
		if t, ok := text(p); ok {
			t.size = size
		}
	}
	tx.GetCharacterSize = func(p ffi.Ptr) uint32 {
		t, ok := text(p)
		if !ok {
			return 0
		}
		return t.size
	}
	tx.SetStyle = func(p ffi.Ptr, style uint32) {
		if t, ok := text(p); ok {
			t.style = style
		}
	}
	tx.GetStyle = func(p ffi.Ptr) uint32 {
		t, ok := text(p)
		if !ok {
			return 0
		}
		return t.style
	}
	tx.SetFillColor = func(p ffi.Ptr, c csfml.Color) {
		if t, ok := text(p); ok {
			t.fill = c
		}
	}
	tx.GetFillColor = func(p ffi.Ptr) csfml.Color {
		t, ok := text(p)
		if !ok {
			return csfml.Color{}
		}
		return t.fill
	}
	tx.GetLocalBounds = func(p ffi.Ptr) csfml.FloatRect {
		t, ok := text(p)
		if !ok {
			return csfml.FloatRect{}
		}
		return b.textLocalBounds(t)
	}
	tx.GetGlobalBounds = func(p ffi.Ptr) csfml.FloatRect {
		t, ok := text(p)
		if !ok {
			return csfml.FloatRect{}
		}
		return t.transformRect(b.textLocalBounds(t))
	}
}

package soft

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

const (
	kindImage   = "sfImage"
	kindTexture = "sfTexture"
)

type imageState struct {
	img       *image.NRGBA
	pixelData ffi.Ptr
}

type textureState struct {
	img      *image.NRGBA
	smooth   bool
	repeated bool
}

func newNRGBA(w, h uint32) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, int(w), int(h)))
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// decodeImage accepts png, jpeg, gif, bmp, tiff and webp.
func decodeImage(data []byte) (*image.NRGBA, bool) {
	if len(data) == 0 {
		return nil, false
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, false
	}
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst, true
}

func encodeImage(path string, img *image.NRGBA) bool {
	var buf bytes.Buffer
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(&buf, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	case ".bmp":
		err = bmp.Encode(&buf, img)
	case ".tif", ".tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		return false
	}
	if err != nil {
		return false
	}
	return os.WriteFile(path, buf.Bytes(), 0o644) == nil
}

// crop returns the part of img inside area, or img itself for a nil or empty
// area.
func crop(img *image.NRGBA, area *csfml.IntRect) *image.NRGBA {
	if area == nil || area.Width <= 0 || area.Height <= 0 {
		return cloneNRGBA(img)
	}
	r := image.Rect(int(area.Left), int(area.Top), int(area.Left+area.Width), int(area.Top+area.Height)).Intersect(img.Rect)
	if r.Empty() {
		return cloneNRGBA(img)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}

func toColor(c color.NRGBA) csfml.Color {
	return csfml.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fromColor(c csfml.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func sizeOf(img *image.NRGBA) csfml.Vector2u {
	return csfml.Vector2u{X: uint32(img.Rect.Dx()), Y: uint32(img.Rect.Dy())}
}

func (b *Backend) bindImage() {
	im := &b.api.Graphics.Image
	newImage := func(img *image.NRGBA) ffi.Ptr {
		return b.create(kindImage, &imageState{img: img})
	}
	im.Create = func(w, h uint32) ffi.Ptr {
		return newImage(newNRGBA(w, h))
	}
	im.CreateFromColor = func(w, h uint32, c csfml.Color) ffi.Ptr {
		img := newNRGBA(w, h)
		draw.Draw(img, img.Rect, image.NewUniform(fromColor(c)), image.Point{}, draw.Src)
		return newImage(img)
	}
	im.CreateFromPixels = func(w, h uint32, pixels unsafe.Pointer) ffi.Ptr {
		if pixels == nil || w == 0 || h == 0 {
			return ffi.Null
		}
		img := newNRGBA(w, h)
		copy(img.Pix, unsafe.Slice((*byte)(pixels), len(img.Pix)))
		return newImage(img)
	}
	im.CreateFromFile = func(path string) ffi.Ptr {
		data, err := os.ReadFile(path)
		if err != nil {
			return ffi.Null
		}
		img, ok := decodeImage(data)
		if !ok {
			return ffi.Null
		}
		return newImage(img)
	}
	im.CreateFromMemory = func(data unsafe.Pointer, size uintptr) ffi.Ptr {
		img, ok := decodeImage(bytesAt(data, size))
		if !ok {
			return ffi.Null
		}
		return newImage(img)
	}
	im.Copy = func(p ffi.Ptr) ffi.Ptr {
		s, ok := lookup[*imageState](b, p, kindImage)
		if !ok {
			return ffi.Null
		}
		return b.copyOf(kindImage, &imageState{img: cloneNRGBA(s.img)})
	}
	im.Destroy = func(p ffi.Ptr) {
		if v, ok := b.destroy(kindImage, p); ok {
			b.unexport(v.(*imageState).pixelData)
		}
	}
	im.SaveToFile = func(p ffi.Ptr, path string) ffi.Bool {
		s, ok := lookup[*imageState](b, p, kindImage)
		if !ok {
			return ffi.False
		}
		return ffi.BoolOf(encodeImage(path, s.img))
	}
	im.GetSize = func(p ffi.Ptr) csfml.Vector2u {
		s, ok := lookup[*imageState](b, p, kindImage)
		if !ok {
			return csfml.Vector2u{}
		}
		return sizeOf(s.img)
	}
	im.SetPixel = func(p ffi.Ptr, x, y uint32, c csfml.Color) {
		if s, ok := lookup[*imageState](b, p, kindImage); ok {
			s.img.SetNRGBA(int(x), int(y), fromColor(c))
		}
	}
	im.GetPixel = func(p ffi.Ptr, x, y uint32) csfml.Color {
		s, ok := lookup[*imageState](b, p, kindImage)
		if !ok {
			return csfml.Color{}
		}
		return toColor(s.img.NRGBAAt(int(x), int(y)))
	}
	im.GetPixelsPtr = func(p ffi.Ptr) ffi.Ptr {
		s, ok := lookup[*imageState](b, p, kindImage)
		if !ok || len(s.img.Pix) == 0 {
			return ffi.Null
		}
		return b.export(&s.pixelData, append([]byte(nil), s.img.Pix...))
	}
	im.FlipHorizontally = func(p ffi.Ptr) {
		s, ok := lookup[*imageState](b, p, kindImage)
		if !ok {
			return
		}
		w, h := s.img.Rect.Dx(), s.img.Rect.Dy()
		for y := 0; y < h; y++ {
			for x := 0; x < w/2; x++ {
				l, r := s.img.NRGBAAt(x, y), s.img.NRGBAAt(w-1-x, y)
				s.img.SetNRGBA(x, y, r)
				s.img.SetNRGBA(w-1-x, y, l)
			}
		}
	}
	im.FlipVertically = func(p ffi.Ptr) {
		s, ok := lookup[*imageState](b, p, kindImage)
		if !ok {
			return
		}
		stride := s.img.Stride
		h := s.img.Rect.Dy()
		row := make([]byte, stride)
		for y := 0; y < h/2; y++ {
			top := s.img.Pix[y*stride : (y+1)*stride]
			bot := s.img.Pix[(h-1-y)*stride : (h-y)*stride]
			copy(row, top)
			copy(top, bot)
			copy(bot, row)
		}
	}
	im.CreateMaskFromColor = func(p ffi.Ptr, c csfml.Color, alpha uint8) {
		s, ok := lookup[*imageState](b, p, kindImage)
		if !ok {
			return
		}
		pix := s.img.Pix
		for i := 0; i+3 < len(pix); i += 4 {
			if pix[i] == c.R && pix[i+1] == c.G && pix[i+2] == c.B && pix[i+3] == c.A {
				pix[i+3] = alpha
			}
		}
	}
}

func (b *Backend) bindTexture() {
	tx := &b.api.Graphics.Texture
	newTexture := func(img *image.NRGBA) ffi.Ptr {
		if img.Rect.Empty() {
			return ffi.Null
		}
		return b.create(kindTexture, &textureState{img: img})
	}
	tx.Create = func(w, h uint32) ffi.Ptr {
		return newTexture(newNRGBA(w, h))
	}
	tx.CreateFromImage = func(img ffi.Ptr, area *csfml.IntRect) ffi.Ptr {
		s, ok := lookup[*imageState](b, img, kindImage)
		if !ok {
			return ffi.Null
		}
		return newTexture(crop(s.img, area))
	}
	tx.CreateFromFile = func(path string, area *csfml.IntRect) ffi.Ptr {
		data, err := os.ReadFile(path)
		if err != nil {
			return ffi.Null
		}
		img, ok := decodeImage(data)
		if !ok {
			return ffi.Null
		}
		return newTexture(crop(img, area))
	}
	tx.CreateFromMemory = func(data unsafe.Pointer, size uintptr, area *csfml.IntRect) ffi.Ptr {
		img, ok := decodeImage(bytesAt(data, size))
		if !ok {
			return ffi.Null
		}
		return newTexture(crop(img, area))
	}
	tx.Copy = func(p ffi.Ptr) ffi.Ptr {
		s, ok := lookup[*textureState](b, p, kindTexture)
		if !ok {
			return ffi.Null
		}
		return b.copyOf(kindTexture, &textureState{img: cloneNRGBA(s.img), smooth: s.smooth, repeated: s.repeated})
	}
	tx.Destroy = func(p ffi.Ptr) { b.destroy(kindTexture, p) }
	tx.GetSize = func(p ffi.Ptr) csfml.Vector2u {
		s, ok := lookup[*textureState](b, p, kindTexture)
		if !ok {
			return csfml.Vector2u{}
		}
		return sizeOf(s.img)
	}
	tx.CopyToImage = func(p ffi.Ptr) ffi.Ptr {
		s, ok := lookup[*textureState](b, p, kindTexture)
		if !ok {
			return ffi.Null
		}
		return b.create(kindImage, &imageState{img: cloneNRGBA(s.img)})
	}
	tx.SetSmooth = func(p ffi.Ptr, v ffi.Bool) {
		if s, ok := lookup[*textureState](b, p, kindTexture); ok {
			s.smooth = v.Go()
		}
	}
	tx.IsSmooth = func(p ffi.Ptr) ffi.Bool {
		s, ok := lookup[*textureState](b, p, kindTexture)
		return ffi.BoolOf(ok && s.smooth)
	}
	tx.SetRepeated = func(p ffi.Ptr, v ffi.Bool) {
		if s, ok := lookup[*textureState](b, p, kindTexture); ok {
			s.repeated = v.Go()
		}
	}
	tx.IsRepeated = func(p ffi.Ptr) ffi.Bool {
		s, ok := lookup[*textureState](b, p, kindTexture)
		return ffi.BoolOf(ok && s.repeated)
	}
	tx.UpdateFromImage = func(tex, img ffi.Ptr, x, y uint32) {
		t, ok := lookup[*textureState](b, tex, kindTexture)
		if !ok {
			return
		}
		s, ok := lookup[*imageState](b, img, kindImage)
		if !ok {
			return
		}
		r := s.img.Rect.Add(image.Pt(int(x), int(y)))
		draw.Draw(t.img, r, s.img, image.Point{}, draw.Src)
	}
}

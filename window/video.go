package window

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/runtime"
)

// VideoMode is a window size and pixel depth.
type VideoMode csfml.VideoMode

// NewVideoMode returns a 32-bit mode of the given size.
func NewVideoMode(width, height uint32) VideoMode {
	return VideoMode{Width: width, Height: height, BitsPerPixel: 32}
}

// DesktopMode returns the current desktop mode.
func DesktopMode(rt *runtime.Runtime) VideoMode {
	return VideoMode(rt.API().Window.VideoMode.GetDesktopMode())
}

// IsValid reports whether the mode can be used for fullscreen windows.
func (m VideoMode) IsValid(rt *runtime.Runtime) bool {
	return rt.API().Window.VideoMode.IsValid(csfml.VideoMode(m)).Go()
}

// Style is a set of window decoration flags.
type Style uint32

const (
	StyleNone       Style = 0
	StyleTitlebar   Style = 1 << 0
	StyleResize     Style = 1 << 1
	StyleClose      Style = 1 << 2
	StyleFullscreen Style = 1 << 3
	StyleDefault          = StyleTitlebar | StyleResize | StyleClose
)

// Context attribute flags.
const (
	AttributeDefault uint32 = 0
	AttributeCore    uint32 = 1 << 0
	AttributeDebug   uint32 = 1 << 2
)

// ContextSettings describes the OpenGL context attached to a window.
type ContextSettings struct {
	DepthBits         uint32
	StencilBits       uint32
	AntialiasingLevel uint32
	MajorVersion      uint32
	MinorVersion      uint32
	AttributeFlags    uint32
	SRGBCapable       bool
}

// DefaultContextSettings requests an OpenGL 1.1 context with no extra
// buffers.
func DefaultContextSettings() ContextSettings {
	return ContextSettings{MajorVersion: 1, MinorVersion: 1}
}

// C converts to the library's layout.
func (s ContextSettings) C() csfml.ContextSettings {
	return csfml.ContextSettings{
		DepthBits:         s.DepthBits,
		StencilBits:       s.StencilBits,
		AntialiasingLevel: s.AntialiasingLevel,
		MajorVersion:      s.MajorVersion,
		MinorVersion:      s.MinorVersion,
		AttributeFlags:    s.AttributeFlags,
		SRGBCapable:       ffi.BoolOf(s.SRGBCapable),
	}
}

// SettingsOf converts from the library's layout.
func SettingsOf(c csfml.ContextSettings) ContextSettings {
	return ContextSettings{
		DepthBits:         c.DepthBits,
		StencilBits:       c.StencilBits,
		AntialiasingLevel: c.AntialiasingLevel,
		MajorVersion:      c.MajorVersion,
		MinorVersion:      c.MinorVersion,
		AttributeFlags:    c.AttributeFlags,
		SRGBCapable:       c.SRGBCapable.Go(),
	}
}

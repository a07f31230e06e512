package csfml

import "github.com/wippyai/gosfml/ffi"

// Vector2f mirrors sfVector2f.
type Vector2f struct {
	X, Y float32
}

// Vector2i mirrors sfVector2i.
type Vector2i struct {
	X, Y int32
}

// Vector2u mirrors sfVector2u.
type Vector2u struct {
	X, Y uint32
}

// Vector3f mirrors sfVector3f.
type Vector3f struct {
	X, Y, Z float32
}

// Time mirrors sfTime.
type Time struct {
	Microseconds int64
}

// Color mirrors sfColor.
type Color struct {
	R, G, B, A uint8
}

// IntRect mirrors sfIntRect.
type IntRect struct {
	Left, Top, Width, Height int32
}

// FloatRect mirrors sfFloatRect.
type FloatRect struct {
	Left, Top, Width, Height float32
}

// Transform mirrors sfTransform, a row-major 3x3 matrix.
type Transform struct {
	Matrix [9]float32
}

// IdentityTransform is the transform that maps every point to itself.
var IdentityTransform = Transform{Matrix: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}}

// BlendMode mirrors sfBlendMode.
type BlendMode struct {
	ColorSrcFactor int32
	ColorDstFactor int32
	ColorEquation  int32
	AlphaSrcFactor int32
	AlphaDstFactor int32
	AlphaEquation  int32
}

// RenderStates mirrors sfRenderStates. A nil *RenderStates selects the defaults.
type RenderStates struct {
	BlendMode BlendMode
	Transform Transform
	Texture   ffi.Ptr
	Shader    ffi.Ptr
}

// VideoMode mirrors sfVideoMode.
type VideoMode struct {
	Width        uint32
	Height       uint32
	BitsPerPixel uint32
}

// ContextSettings mirrors sfContextSettings.
type ContextSettings struct {
	DepthBits         uint32
	StencilBits       uint32
	AntialiasingLevel uint32
	MajorVersion      uint32
	MinorVersion      uint32
	AttributeFlags    uint32
	SRGBCapable       ffi.Bool
}

// Event mirrors the sfEvent union: a type tag followed by the largest member.
// The window package decodes it.
type Event struct {
	Type int32
	Data [5]uint32
}

// Event type tags of sfEventType.
const (
	EvtClosed int32 = iota
	EvtResized
	EvtLostFocus
	EvtGainedFocus
	EvtTextEntered
	EvtKeyPressed
	EvtKeyReleased
	EvtMouseWheelMoved
	EvtMouseWheelScrolled
	EvtMouseButtonPressed
	EvtMouseButtonReleased
	EvtMouseMoved
	EvtMouseEntered
	EvtMouseLeft
	EvtJoystickButtonPressed
	EvtJoystickButtonReleased
	EvtJoystickMoved
	EvtJoystickConnected
	EvtJoystickDisconnected
	EvtTouchBegan
	EvtTouchMoved
	EvtTouchEnded
	EvtSensorChanged
	EvtCount
)

// SoundStreamChunk mirrors sfSoundStreamChunk, filled by a stream's data callback.
type SoundStreamChunk struct {
	Samples     *int16
	SampleCount uint32
}

// Sound status values of sfSoundStatus.
const (
	StatusStopped int32 = iota
	StatusPaused
	StatusPlaying
)

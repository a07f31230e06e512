package csfml

import "github.com/wippyai/gosfml/ffi"

// Callback is the address of a function the foreign library may call.
type Callback uintptr

// Function pointer types accepted by the callback-registering constructors.
// The last argument of each is the opaque user data given at construction.
type (
	// ShapePointCountFunc mirrors sfShapeGetPointCountCallback.
	ShapePointCountFunc func(user uintptr) uintptr
	// ShapePointFunc mirrors sfShapeGetPointCallback.
	ShapePointFunc func(index, user uintptr) Vector2f

	// StreamGetDataFunc mirrors sfSoundStreamGetDataCallback.
	StreamGetDataFunc func(chunk *SoundStreamChunk, user uintptr) ffi.Bool
	// StreamSeekFunc mirrors sfSoundStreamSeekCallback.
	StreamSeekFunc func(offset Time, user uintptr)

	// RecorderStartFunc mirrors sfSoundRecorderStartCallback.
	RecorderStartFunc func(user uintptr) ffi.Bool
	// RecorderProcessFunc mirrors sfSoundRecorderProcessCallback.
	RecorderProcessFunc func(samples *int16, count uintptr, user uintptr) ffi.Bool
	// RecorderStopFunc mirrors sfSoundRecorderStopCallback.
	RecorderStopFunc func(user uintptr)
)

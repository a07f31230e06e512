package audio

import (
	"unsafe"

	"github.com/wippyai/gosfml/callback"
	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
)

// RecorderImpl receives captured audio. The library calls it from its
// capture thread.
type RecorderImpl interface {
	// OnStart is called before capture begins. Returning false aborts it.
	OnStart() bool
	// OnProcess receives a chunk of mono samples. Returning false stops the
	// capture. samples may be retained.
	OnProcess(samples []int16) bool
	// OnStop is called after capture ends.
	OnStop()
}

// IsRecorderAvailable reports whether the system has a capture device.
func IsRecorderAvailable(rt *runtime.Runtime) bool {
	return rt.API().Audio.SoundRecorder.IsAvailable().Go()
}

// SoundRecorder captures audio into a RecorderImpl.
type SoundRecorder[T RecorderImpl] struct {
	h   *foreign.Handle[csfml.SoundRecorder]
	pin *callback.Pinned[T]
}

const recorderFamily = "recorder"

func recorderStart[T RecorderImpl](reg *callback.Registry) csfml.RecorderStartFunc {
	return func(user uintptr) ffi.Bool {
		impl, ok := callback.Lookup[T](reg, callback.Context(user))
		if !ok {
			return ffi.False
		}
		return ffi.BoolOf(impl.OnStart())
	}
}

func recorderProcess[T RecorderImpl](reg *callback.Registry) csfml.RecorderProcessFunc {
	return func(samples *int16, count uintptr, user uintptr) ffi.Bool {
		impl, ok := callback.Lookup[T](reg, callback.Context(user))
		if !ok {
			return ffi.False
		}
		var chunk []int16
		if samples != nil && count > 0 {
			chunk = append([]int16(nil), unsafe.Slice(samples, count)...)
		}
		return ffi.BoolOf(impl.OnProcess(chunk))
	}
}

func recorderStop[T RecorderImpl](reg *callback.Registry) csfml.RecorderStopFunc {
	return func(user uintptr) {
		if impl, ok := callback.Lookup[T](reg, callback.Context(user)); ok {
			impl.OnStop()
		}
	}
}

// NewSoundRecorder creates a recorder delivering to impl.
func NewSoundRecorder[T RecorderImpl](rt *runtime.Runtime, impl T) (*SoundRecorder[T], error) {
	reg := rt.Callbacks()
	cbs, err := callback.Trampolines[T](reg, recorderFamily,
		recorderStart[T](reg), recorderProcess[T](reg), recorderStop[T](reg))
	if err != nil {
		return nil, err
	}
	pin, err := callback.Pin(reg, impl)
	if err != nil {
		return nil, err
	}

	p := rt.API().Audio.SoundRecorder.Create(cbs[0], cbs[1], cbs[2], uintptr(pin.Context()))
	h, err := foreign.Acquire[csfml.SoundRecorder](rt, p)
	if err != nil {
		pin.Unpin()
		return nil, err
	}
	return &SoundRecorder[T]{h: h, pin: pin}, nil
}

func (r *SoundRecorder[T]) api() *csfml.SoundRecorderAPI {
	return &r.h.Runtime().API().Audio.SoundRecorder
}

// Impl returns the sample sink.
func (r *SoundRecorder[T]) Impl() T {
	return r.pin.Value()
}

// Start begins capturing at sampleRate samples per second. It fails when no
// device is available, capture is already running, or OnStart refuses.
func (r *SoundRecorder[T]) Start(sampleRate uint32) error {
	if !r.api().Start(r.h.BorrowMut(), sampleRate).Go() {
		return startFailed(r.h.Kind(), sampleRate)
	}
	return nil
}

func startFailed(kind string, sampleRate uint32) error {
	return gerrors.New(gerrors.PhaseCall, gerrors.KindUnsupported).
		Resource(kind).
		Value(sampleRate).
		Detail("capture did not start at %d Hz", sampleRate).
		Build()
}

func (r *SoundRecorder[T]) Stop() {
	r.api().Stop(r.h.BorrowMut())
}

func (r *SoundRecorder[T]) SampleRate() uint32 {
	return r.api().GetSampleRate(r.h.Borrow())
}

// Close stops capture, destroys the recorder and releases impl.
func (r *SoundRecorder[T]) Close() error {
	if err := r.h.Close(); err != nil {
		return err
	}
	r.pin.Unpin()
	return nil
}

// SoundBufferRecorder captures audio into a sound buffer.
type SoundBufferRecorder struct {
	h *foreign.Handle[csfml.SoundBufferRecorder]
}

func NewSoundBufferRecorder(rt *runtime.Runtime) (*SoundBufferRecorder, error) {
	h, err := foreign.Acquire[csfml.SoundBufferRecorder](rt, rt.API().Audio.SoundBufferRecorder.Create())
	if err != nil {
		return nil, err
	}
	return &SoundBufferRecorder{h: h}, nil
}

func (r *SoundBufferRecorder) api() *csfml.SoundBufferRecorderAPI {
	return &r.h.Runtime().API().Audio.SoundBufferRecorder
}

// Start begins capturing, discarding what was recorded before.
func (r *SoundBufferRecorder) Start(sampleRate uint32) error {
	if !r.api().Start(r.h.BorrowMut(), sampleRate).Go() {
		return startFailed(r.h.Kind(), sampleRate)
	}
	return nil
}

func (r *SoundBufferRecorder) Stop() {
	r.api().Stop(r.h.BorrowMut())
}

func (r *SoundBufferRecorder) SampleRate() uint32 {
	return r.api().GetSampleRate(r.h.Borrow())
}

// Buffer returns a copy of the recording. The recorder's own buffer stays
// owned by the recorder.
func (r *SoundBufferRecorder) Buffer() (*SoundBuffer, error) {
	rt := r.h.Runtime()
	internal := r.api().GetBuffer(r.h.Borrow())
	if internal == ffi.Null {
		return nil, gerrors.ConstructionFailed("sfSoundBuffer", "sfSoundBufferRecorder_getBuffer")
	}
	return newSoundBuffer(rt, rt.API().Audio.SoundBuffer.Copy(internal))
}

// Close destroys the recorder and its internal buffer.
func (r *SoundBufferRecorder) Close() error {
	return r.h.Close()
}

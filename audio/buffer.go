package audio

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

// SoundBuffer holds decoded 16-bit samples. Sounds borrow it, and it cannot
// be closed while one does.
type SoundBuffer struct {
	h *foreign.Handle[csfml.SoundBuffer]
}

func newSoundBuffer(rt *runtime.Runtime, p ffi.Ptr) (*SoundBuffer, error) {
	h, err := foreign.Acquire[csfml.SoundBuffer](rt, p)
	if err != nil {
		return nil, err
	}
	return &SoundBuffer{h: h}, nil
}

// NewSoundBufferFromFile decodes an audio file.
func NewSoundBufferFromFile(rt *runtime.Runtime, path string) (*SoundBuffer, error) {
	return newSoundBuffer(rt, rt.API().Audio.SoundBuffer.CreateFromFile(path))
}

// NewSoundBufferFromMemory decodes an audio file held in data. The library
// decodes everything up front, so data is not retained.
func NewSoundBufferFromMemory(rt *runtime.Runtime, data []byte) (*SoundBuffer, error) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	p := rt.API().Audio.SoundBuffer.CreateFromMemory(ptr, uintptr(len(data)))
	goruntime.KeepAlive(data)
	return newSoundBuffer(rt, p)
}

// NewSoundBufferFromSamples copies interleaved samples into a new buffer.
func NewSoundBufferFromSamples(rt *runtime.Runtime, samples []int16, channels, sampleRate uint32) (*SoundBuffer, error) {
	if channels == 0 || len(samples)%int(channels) != 0 {
		return nil, gerrors.InvalidInput(gerrors.PhaseCreate, "sample count must be a multiple of the channel count")
	}
	var ptr unsafe.Pointer
	if len(samples) > 0 {
		ptr = unsafe.Pointer(&samples[0])
	}
	p := rt.API().Audio.SoundBuffer.CreateFromSamples(ptr, uint64(len(samples)), channels, sampleRate)
	goruntime.KeepAlive(samples)
	return newSoundBuffer(rt, p)
}

func (b *SoundBuffer) api() *csfml.SoundBufferAPI {
	return &b.h.Runtime().API().Audio.SoundBuffer
}

// Copy returns an independent copy of the buffer.
func (b *SoundBuffer) Copy() (*SoundBuffer, error) {
	h, err := foreign.Duplicate(b.h)
	if err != nil {
		return nil, err
	}
	return &SoundBuffer{h: h}, nil
}

// Samples returns a copy of the interleaved samples.
func (b *SoundBuffer) Samples() []int16 {
	n := b.SampleCount()
	if n == 0 {
		return nil
	}
	return b.h.Runtime().API().Memory.ReadInt16(b.api().GetSamples(b.h.Borrow()), int(n))
}

func (b *SoundBuffer) SampleCount() uint64 {
	return b.api().GetSampleCount(b.h.Borrow())
}

func (b *SoundBuffer) SampleRate() uint32 {
	return b.api().GetSampleRate(b.h.Borrow())
}

func (b *SoundBuffer) ChannelCount() uint32 {
	return b.api().GetChannelCount(b.h.Borrow())
}

func (b *SoundBuffer) Duration() system.Time {
	return system.TimeOf(b.api().GetDuration(b.h.Borrow()))
}

// SaveToFile encodes the buffer; the format follows the extension.
func (b *SoundBuffer) SaveToFile(path string) error {
	if !b.api().SaveToFile(b.h.Borrow(), path).Go() {
		return gerrors.New(gerrors.PhaseCall, gerrors.KindInvalidInput).
			Resource(b.h.Kind()).
			Symbol("sfSoundBuffer_saveToFile").
			Detail("cannot save to %q", path).
			Build()
	}
	return nil
}

// Close destroys the buffer. It fails while sounds use it.
func (b *SoundBuffer) Close() error {
	return b.h.Close()
}

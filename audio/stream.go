package audio

import (
	goruntime "runtime"
	"sync"

	"github.com/wippyai/gosfml/callback"
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

// StreamImpl feeds a SoundStream. The library calls it from its audio
// thread, one call at a time.
type StreamImpl interface {
	// GetData returns the next chunk of interleaved samples and whether more
	// chunks follow. The returned slice must not be modified until the next
	// call.
	GetData() (samples []int16, more bool)
	// Seek moves the read position to offset.
	Seek(offset system.Time)
}

// streamContext is what the library's user-data word resolves to.
type streamContext[T StreamImpl] struct {
	impl T

	mu sync.Mutex
	// current is the chunk the library is reading, pinned until the next
	// GetData.
	current []int16
	pinner  goruntime.Pinner
}

func (c *streamContext[T]) next(chunk *csfml.SoundStreamChunk) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pinner.Unpin()
	c.current = nil

	samples, more := c.impl.GetData()
	if len(samples) == 0 {
		chunk.Samples, chunk.SampleCount = nil, 0
		return more
	}
	c.current = samples
	c.pinner.Pin(&samples[0])
	chunk.Samples = &samples[0]
	chunk.SampleCount = uint32(len(samples))
	return more
}

func (c *streamContext[T]) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pinner.Unpin()
	c.current = nil
}

// SoundStream plays samples produced by a StreamImpl.
type SoundStream[T StreamImpl] struct {
	h   *foreign.Handle[csfml.SoundStream]
	pin *callback.Pinned[*streamContext[T]]
}

const streamFamily = "stream"

func streamGetData[T StreamImpl](reg *callback.Registry) csfml.StreamGetDataFunc {
	return func(chunk *csfml.SoundStreamChunk, user uintptr) ffi.Bool {
		ctx, ok := callback.Lookup[*streamContext[T]](reg, callback.Context(user))
		if !ok || chunk == nil {
			return ffi.False
		}
		return ffi.BoolOf(ctx.next(chunk))
	}
}

func streamSeek[T StreamImpl](reg *callback.Registry) csfml.StreamSeekFunc {
	return func(offset csfml.Time, user uintptr) {
		if ctx, ok := callback.Lookup[*streamContext[T]](reg, callback.Context(user)); ok {
			ctx.impl.Seek(system.TimeOf(offset))
		}
	}
}

// NewSoundStream creates a stream of channels interleaved channels at
// sampleRate samples per second, fed by impl.
func NewSoundStream[T StreamImpl](rt *runtime.Runtime, impl T, channels, sampleRate uint32) (*SoundStream[T], error) {
	reg := rt.Callbacks()
	cbs, err := callback.Trampolines[*streamContext[T]](reg, streamFamily, streamGetData[T](reg), streamSeek[T](reg))
	if err != nil {
		return nil, err
	}
	pin, err := callback.Pin(reg, &streamContext[T]{impl: impl})
	if err != nil {
		return nil, err
	}

	p := rt.API().Audio.SoundStream.Create(cbs[0], cbs[1], channels, sampleRate, uintptr(pin.Context()))
	h, err := foreign.Acquire[csfml.SoundStream](rt, p)
	if err != nil {
		pin.Unpin()
		return nil, err
	}
	return &SoundStream[T]{h: h, pin: pin}, nil
}

func (s *SoundStream[T]) api() *csfml.SoundStreamAPI {
	return &s.h.Runtime().API().Audio.SoundStream
}

// Impl returns the sample source.
func (s *SoundStream[T]) Impl() T {
	return s.pin.Value().impl
}

// Play starts or resumes the stream. Playing a stream that is already
// playing restarts it.
func (s *SoundStream[T]) Play() {
	s.api().Play(s.h.BorrowMut())
}

func (s *SoundStream[T]) Pause() {
	s.api().Pause(s.h.BorrowMut())
}

// Stop halts playback and seeks back to the start.
func (s *SoundStream[T]) Stop() {
	s.api().Stop(s.h.BorrowMut())
}

func (s *SoundStream[T]) Status() Status {
	return Status(s.api().GetStatus(s.h.Borrow()))
}

func (s *SoundStream[T]) ChannelCount() uint32 {
	return s.api().GetChannelCount(s.h.Borrow())
}

func (s *SoundStream[T]) SampleRate() uint32 {
	return s.api().GetSampleRate(s.h.Borrow())
}

func (s *SoundStream[T]) SetPlayingOffset(offset system.Time) {
	s.api().SetPlayingOffset(s.h.BorrowMut(), offset.C())
}

func (s *SoundStream[T]) PlayingOffset() system.Time {
	return system.TimeOf(s.api().GetPlayingOffset(s.h.Borrow()))
}

// Ptr returns the library address of the stream.
func (s *SoundStream[T]) Ptr() ffi.Ptr {
	return s.h.Borrow()
}

// Close stops and destroys the stream, then releases impl.
func (s *SoundStream[T]) Close() error {
	if err := s.h.Close(); err != nil {
		return err
	}
	s.pin.Value().release()
	s.pin.Unpin()
	return nil
}

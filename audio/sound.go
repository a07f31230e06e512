package audio

import (
	"github.com/wippyai/gosfml/borrow"
	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

// Sound plays a SoundBuffer.
type Sound struct {
	h   *foreign.Handle[csfml.Sound]
	buf borrow.Binding[csfml.SoundBuffer, SoundBuffer]
}

// NewSound creates a sound without a buffer.
func NewSound(rt *runtime.Runtime) (*Sound, error) {
	h, err := foreign.Acquire[csfml.Sound](rt, rt.API().Audio.Sound.Create())
	if err != nil {
		return nil, err
	}
	return &Sound{h: h}, nil
}

// NewSoundWithBuffer creates a sound that plays buf.
func NewSoundWithBuffer(rt *runtime.Runtime, buf *SoundBuffer) (*Sound, error) {
	s, err := NewSound(rt)
	if err != nil {
		return nil, err
	}
	if err := s.SetBuffer(buf); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Sound) api() *csfml.SoundAPI {
	return &s.h.Runtime().API().Audio.Sound
}

// Clone returns a stopped sound with the same settings and buffer.
func (s *Sound) Clone() (*Sound, error) {
	h, err := foreign.Duplicate(s.h)
	if err != nil {
		return nil, err
	}
	c := &Sound{h: h}
	if err := s.buf.CloneInto(&c.buf); err != nil {
		_ = h.Close()
		return nil, err
	}
	return c, nil
}

// SetBuffer binds buf and stops the sound.
func (s *Sound) SetBuffer(buf *SoundBuffer) error {
	if buf == nil {
		return gerrors.NilPointer(gerrors.PhaseBorrow, "sound buffer")
	}
	if err := s.buf.Set(buf.h, buf); err != nil {
		return err
	}
	s.api().SetBuffer(s.h.BorrowMut(), buf.h.Borrow())
	return nil
}

// Buffer returns the bound buffer, or nil.
func (s *Sound) Buffer() *SoundBuffer {
	return s.buf.Get()
}

// ClearBuffer stops the sound and unbinds its buffer.
func (s *Sound) ClearBuffer() {
	s.api().SetBuffer(s.h.BorrowMut(), ffi.Null)
	s.buf.Clear()
}

// Play starts or resumes playback. Without a buffer it does nothing.
func (s *Sound) Play() {
	s.api().Play(s.h.BorrowMut())
}

func (s *Sound) Pause() {
	s.api().Pause(s.h.BorrowMut())
}

// Stop rewinds to the start.
func (s *Sound) Stop() {
	s.api().Stop(s.h.BorrowMut())
}

func (s *Sound) Status() Status {
	return Status(s.api().GetStatus(s.h.Borrow()))
}

func (s *Sound) SetLoop(loop bool) {
	s.api().SetLoop(s.h.BorrowMut(), ffi.BoolOf(loop))
}

func (s *Sound) Loop() bool {
	return s.api().GetLoop(s.h.Borrow()).Go()
}

// SetVolume sets the volume in [0, 100].
func (s *Sound) SetVolume(volume float32) {
	s.api().SetVolume(s.h.BorrowMut(), volume)
}

func (s *Sound) Volume() float32 {
	return s.api().GetVolume(s.h.Borrow())
}

// SetPitch changes playback speed and tone together; 1 is unchanged.
func (s *Sound) SetPitch(pitch float32) {
	s.api().SetPitch(s.h.BorrowMut(), pitch)
}

func (s *Sound) Pitch() float32 {
	return s.api().GetPitch(s.h.Borrow())
}

func (s *Sound) SetPlayingOffset(offset system.Time) {
	s.api().SetPlayingOffset(s.h.BorrowMut(), offset.C())
}

func (s *Sound) PlayingOffset() system.Time {
	return system.TimeOf(s.api().GetPlayingOffset(s.h.Borrow()))
}

// Ptr returns the library address of the sound.
func (s *Sound) Ptr() ffi.Ptr {
	return s.h.Borrow()
}

// Close destroys the sound and releases its buffer.
func (s *Sound) Close() error {
	if err := s.h.Close(); err != nil {
		return err
	}
	s.buf.Clear()
	return nil
}

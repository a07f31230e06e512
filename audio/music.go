package audio

import (
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

// Music streams a long audio file instead of decoding it up front.
type Music struct {
	h *foreign.Handle[csfml.Music]
	// buf holds the file of music opened from memory, which the library
	// keeps reading while it plays.
	buf *foreign.Buffer
}

// NewMusicFromFile opens an audio file for streaming.
func NewMusicFromFile(rt *runtime.Runtime, path string) (*Music, error) {
	h, err := foreign.Acquire[csfml.Music](rt, rt.API().Audio.Music.CreateFromFile(path))
	if err != nil {
		return nil, err
	}
	return &Music{h: h}, nil
}

// NewMusicFromMemory streams an audio file held in data. The bytes are
// copied and kept until Close.
func NewMusicFromMemory(rt *runtime.Runtime, data []byte) (*Music, error) {
	buf := foreign.Retain(data)
	h, err := foreign.Acquire[csfml.Music](rt, rt.API().Audio.Music.CreateFromMemory(buf.Ptr(), buf.Len()))
	if err != nil {
		buf.Release()
		return nil, err
	}
	return &Music{h: h, buf: buf}, nil
}

func (m *Music) api() *csfml.MusicAPI {
	return &m.h.Runtime().API().Audio.Music
}

func (m *Music) Play() {
	m.api().Play(m.h.BorrowMut())
}

func (m *Music) Pause() {
	m.api().Pause(m.h.BorrowMut())
}

func (m *Music) Stop() {
	m.api().Stop(m.h.BorrowMut())
}

func (m *Music) Status() Status {
	return Status(m.api().GetStatus(m.h.Borrow()))
}

func (m *Music) Duration() system.Time {
	return system.TimeOf(m.api().GetDuration(m.h.Borrow()))
}

func (m *Music) SetLoop(loop bool) {
	m.api().SetLoop(m.h.BorrowMut(), ffi.BoolOf(loop))
}

func (m *Music) Loop() bool {
	return m.api().GetLoop(m.h.Borrow()).Go()
}

func (m *Music) ChannelCount() uint32 {
	return m.api().GetChannelCount(m.h.Borrow())
}

func (m *Music) SampleRate() uint32 {
	return m.api().GetSampleRate(m.h.Borrow())
}

// Close stops and destroys the music.
func (m *Music) Close() error {
	if err := m.h.Close(); err != nil {
		return err
	}
	m.buf.Release()
	m.buf = nil
	return nil
}

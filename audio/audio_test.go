package audio_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/wippyai/gosfml/audio"
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/csfml/soft"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/runtime"
	"github.com/wippyai/gosfml/system"
)

func newRuntime(t *testing.T, cfg *soft.Config) (*runtime.Runtime, *soft.Backend) {
	t.Helper()
	b, err := soft.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	rt, err := runtime.New(b)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = rt.Close() })
	return rt, b
}

func tone(n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(i*37%2000 - 1000)
	}
	return out
}

func TestSoundBufferRoundTrip(t *testing.T) {
	rt, _ := newRuntime(t, nil)

	samples := tone(8820)
	buf, err := audio.NewSoundBufferFromSamples(rt, samples, 2, 44100)
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Close()

	if buf.ChannelCount() != 2 || buf.SampleRate() != 44100 || buf.SampleCount() != 8820 {
		t.Fatalf("buffer = %d ch, %d Hz, %d samples", buf.ChannelCount(), buf.SampleRate(), buf.SampleCount())
	}
	if d := buf.Duration(); d != system.Milliseconds(100) {
		t.Errorf("Duration = %v", d)
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := buf.SaveToFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := audio.NewSoundBufferFromMemory(rt, data)
	if err != nil {
		t.Fatal(err)
	}
	defer loaded.Close()
	if !slices.Equal(loaded.Samples(), samples) {
		t.Error("samples changed through WAV")
	}

	fromFile, err := audio.NewSoundBufferFromFile(rt, path)
	if err != nil {
		t.Fatal(err)
	}
	defer fromFile.Close()
	if fromFile.SampleCount() != 8820 {
		t.Errorf("file SampleCount = %d", fromFile.SampleCount())
	}

	if err := buf.SaveToFile(filepath.Join(t.TempDir(), "tone.mp3")); err == nil {
		t.Error("saving as mp3 succeeded")
	}
}

func TestSoundBufferBadInput(t *testing.T) {
	rt, _ := newRuntime(t, nil)

	if b, err := audio.NewSoundBufferFromMemory(rt, nil); b != nil || !errors.Is(err, gerrors.ErrConstruction) {
		t.Errorf("empty: %v, %v", b, err)
	}
	if b, err := audio.NewSoundBufferFromMemory(rt, []byte("RIFF....nope")); b != nil || !errors.Is(err, gerrors.ErrConstruction) {
		t.Errorf("malformed: %v, %v", b, err)
	}
	var e *gerrors.Error
	if _, err := audio.NewSoundBufferFromSamples(rt, tone(3), 2, 8000); !errors.As(err, &e) || e.Kind != gerrors.KindInvalidInput {
		t.Errorf("odd stereo samples: %v", err)
	}
}

func TestSoundBufferCopy(t *testing.T) {
	rt, _ := newRuntime(t, nil)
	buf, err := audio.NewSoundBufferFromSamples(rt, tone(100), 1, 8000)
	if err != nil {
		t.Fatal(err)
	}
	cp, err := buf.Copy()
	if err != nil {
		t.Fatal(err)
	}
	if err := buf.Close(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cp.Samples(), tone(100)) {
		t.Error("copy lost samples")
	}
	if err := cp.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestSoundBorrowsBuffer(t *testing.T) {
	rt, _ := newRuntime(t, nil)
	buf, err := audio.NewSoundBufferFromSamples(rt, tone(800), 1, 8000)
	if err != nil {
		t.Fatal(err)
	}

	sound, err := audio.NewSound(rt)
	if err != nil {
		t.Fatal(err)
	}
	sound.Play()
	if sound.Status() != audio.Stopped {
		t.Error("sound without buffer plays")
	}

	if err := sound.SetBuffer(buf); err != nil {
		t.Fatal(err)
	}
	if sound.Buffer() != buf {
		t.Error("Buffer is not the bound buffer")
	}
	sound.SetLoop(true)
	sound.SetVolume(40)
	sound.SetPitch(1.5)
	sound.Play()
	if sound.Status() != audio.Playing {
		t.Fatalf("Status = %v", sound.Status())
	}
	sound.SetPlayingOffset(system.Milliseconds(20))
	if sound.PlayingOffset() != system.Milliseconds(20) {
		t.Errorf("PlayingOffset = %v", sound.PlayingOffset())
	}

	if err := buf.Close(); !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Fatalf("closing a played buffer: %v", err)
	}

	clone, err := sound.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if clone.Buffer() != buf || clone.Status() != audio.Stopped {
		t.Errorf("clone buffer %v status %v", clone.Buffer(), clone.Status())
	}
	if !clone.Loop() || clone.Volume() != 40 || clone.Pitch() != 1.5 {
		t.Error("clone lost settings")
	}

	sound.ClearBuffer()
	if sound.Buffer() != nil || sound.Status() != audio.Stopped {
		t.Error("ClearBuffer left the buffer bound")
	}
	if p := rt.API().Audio.Sound.GetBuffer(sound.Ptr()); p != ffi.Null {
		t.Errorf("library buffer = %v after ClearBuffer", p)
	}
	if rt.API().Audio.Sound.GetBuffer(clone.Ptr()) == ffi.Null {
		t.Error("clone lost its library buffer")
	}
	if err := buf.Close(); !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Error("buffer closed while the clone uses it")
	}
	if err := clone.Close(); err != nil {
		t.Fatal(err)
	}
	if err := buf.Close(); err != nil {
		t.Errorf("buffer still borrowed: %v", err)
	}
	if err := sound.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestMusic(t *testing.T) {
	rt, b := newRuntime(t, nil)

	buf, err := audio.NewSoundBufferFromSamples(rt, tone(16000), 1, 16000)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "music.wav")
	if err := buf.SaveToFile(path); err != nil {
		t.Fatal(err)
	}
	_ = buf.Close()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	m, err := audio.NewMusicFromMemory(rt, data)
	if err != nil {
		t.Fatal(err)
	}
	clear(data) // the music keeps its own copy

	if m.Duration() != system.Seconds(1) || m.ChannelCount() != 1 || m.SampleRate() != 16000 {
		t.Errorf("music = %v, %d ch, %d Hz", m.Duration(), m.ChannelCount(), m.SampleRate())
	}
	m.SetLoop(true)
	m.Play()
	if m.Status() != audio.Playing || !m.Loop() {
		t.Error("music not looping")
	}
	m.Pause()
	if m.Status() != audio.Paused {
		t.Errorf("Status = %v", m.Status())
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if b.Stats().Destroyed["sfMusic"] != 1 {
		t.Error("music not destroyed exactly once")
	}

	if _, err := audio.NewMusicFromMemory(rt, []byte("garbage")); !errors.Is(err, gerrors.ErrConstruction) {
		t.Errorf("garbage music: %v", err)
	}
}

// chunks is a stream source serving fixed chunks.
type chunks struct {
	data  [][]int16
	next  int
	seeks []system.Time
}

func (c *chunks) GetData() ([]int16, bool) {
	if c.next >= len(c.data) {
		return nil, false
	}
	d := c.data[c.next]
	c.next++
	return d, c.next < len(c.data)
}

func (c *chunks) Seek(offset system.Time) {
	c.seeks = append(c.seeks, offset)
	c.next = 0
}

func TestSoundStream(t *testing.T) {
	rt, b := newRuntime(t, nil)

	src := &chunks{data: [][]int16{{1, 2, 3}, {4, 5, 6}, {7}}}
	stream, err := audio.NewSoundStream(rt, src, 1, 8000)
	if err != nil {
		t.Fatal(err)
	}
	if stream.Impl() != src || stream.ChannelCount() != 1 || stream.SampleRate() != 8000 {
		t.Fatal("stream settings")
	}

	stream.Play()
	if got := b.Played(stream.Ptr()); !slices.Equal(got, []int16{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("played %v", got)
	}
	if stream.Status() != audio.Stopped {
		t.Errorf("Status after the last chunk = %v", stream.Status())
	}

	stream.Stop()
	if len(src.seeks) != 1 || src.seeks[0] != system.Zero {
		t.Errorf("seeks = %v", src.seeks)
	}

	if rt.Callbacks().Pinned() != 1 {
		t.Errorf("pinned = %d", rt.Callbacks().Pinned())
	}
	if err := stream.Close(); err != nil {
		t.Fatal(err)
	}
	if rt.Callbacks().Pinned() != 0 {
		t.Error("stream context still pinned")
	}
}

// recording collects what a recorder captured.
type recording struct {
	started, stopped int
	samples          []int16
	limit            int
}

func (r *recording) OnStart() bool { r.started++; return true }
func (r *recording) OnStop()       { r.stopped++ }

func (r *recording) OnProcess(s []int16) bool {
	r.samples = append(r.samples, s...)
	return r.limit == 0 || len(r.samples) < r.limit
}

func TestSoundRecorder(t *testing.T) {
	captured := tone(3000)
	rt, _ := newRuntime(t, &soft.Config{Capture: captured, CaptureChunk: 1000})

	if !audio.IsRecorderAvailable(rt) {
		t.Fatal("no capture device")
	}
	sink := &recording{}
	rec, err := audio.NewSoundRecorder(rt, sink)
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Start(22050); err != nil {
		t.Fatal(err)
	}
	if err := rec.Start(22050); err == nil {
		t.Error("second Start succeeded")
	}
	rec.Stop()

	if sink.started != 1 || sink.stopped != 1 {
		t.Errorf("started %d stopped %d", sink.started, sink.stopped)
	}
	if !slices.Equal(sink.samples, captured) {
		t.Errorf("captured %d samples", len(sink.samples))
	}
	if rec.SampleRate() != 22050 {
		t.Errorf("SampleRate = %d", rec.SampleRate())
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if rt.Callbacks().Pinned() != 0 {
		t.Error("recorder context still pinned")
	}
}

func TestSoundRecorderStopsEarly(t *testing.T) {
	rt, _ := newRuntime(t, &soft.Config{Capture: tone(3000), CaptureChunk: 1000})

	sink := &recording{limit: 1000}
	rec, err := audio.NewSoundRecorder(rt, sink)
	if err != nil {
		t.Fatal(err)
	}
	defer rec.Close()
	if err := rec.Start(8000); err != nil {
		t.Fatal(err)
	}
	if len(sink.samples) != 1000 {
		t.Errorf("captured %d samples after refusing more", len(sink.samples))
	}
}

func TestNoCaptureDevice(t *testing.T) {
	rt, _ := newRuntime(t, &soft.Config{NoCaptureDevice: true})
	if audio.IsRecorderAvailable(rt) {
		t.Error("device reported")
	}

	rec, err := audio.NewSoundBufferRecorder(rt)
	if err != nil {
		t.Fatal(err)
	}
	defer rec.Close()
	if err := rec.Start(44100); !errors.Is(err, gerrors.ErrUnsupported) {
		t.Errorf("Start = %v", err)
	}
}

func TestSoundBufferRecorder(t *testing.T) {
	captured := tone(2500)
	rt, b := newRuntime(t, &soft.Config{Capture: captured, CaptureChunk: 1000})

	rec, err := audio.NewSoundBufferRecorder(rt)
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Start(11025); err != nil {
		t.Fatal(err)
	}
	rec.Stop()

	buf, err := rec.Buffer()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(buf.Samples(), captured) || buf.SampleRate() != 11025 {
		t.Errorf("recorded %d samples at %d Hz", buf.SampleCount(), buf.SampleRate())
	}

	// the copy outlives the recorder
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.SampleCount() != 2500 {
		t.Error("copy lost samples")
	}
	if err := buf.Close(); err != nil {
		t.Fatal(err)
	}
	if n := b.Live(""); n != 0 {
		t.Errorf("%d objects alive", n)
	}
}

func TestDeviceListener(t *testing.T) {
	rt, _ := newRuntime(t, nil)

	dev, err := audio.OpenDevice(rt)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := audio.OpenDevice(rt); !errors.Is(err, gerrors.ErrClaimed) {
		t.Errorf("second open: %v", err)
	}
	if !dev.RecorderAvailable() {
		t.Error("no capture device")
	}

	l := dev.Listener()
	if l.GlobalVolume() != 100 {
		t.Errorf("default volume %v", l.GlobalVolume())
	}
	l.SetGlobalVolume(250)
	if l.GlobalVolume() != 100 {
		t.Errorf("volume not clamped: %v", l.GlobalVolume())
	}
	if l.Direction() != (system.Vector3f{Z: -1}) || l.UpVector() != (system.Vector3f{Y: 1}) {
		t.Error("default orientation")
	}
	l.SetPosition(system.Vector3f{X: 1, Y: 2, Z: 3})
	if l.Position() != (system.Vector3f{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Position = %+v", l.Position())
	}

	if err := dev.Close(); err != nil {
		t.Fatal(err)
	}
	_ = dev.Close()
	func() {
		defer func() {
			err, _ := recover().(error)
			if !errors.Is(err, gerrors.ErrReleased) {
				t.Errorf("listener after Close: recovered %v, want released", err)
			}
		}()
		l.SetGlobalVolume(10)
	}()

	again, err := audio.OpenDevice(rt)
	if err != nil {
		t.Fatalf("open after Close: %v", err)
	}
	if again.Listener().GlobalVolume() != 100 {
		t.Error("listener changed after its device closed")
	}
	_ = again.Close()
}

// noCallbacks is a soft backend that cannot call back into Go.
type noCallbacks struct {
	*soft.Backend
	api csfml.API
}

func (n *noCallbacks) API() *csfml.API { return &n.api }

func TestStreamWithoutCallbacks(t *testing.T) {
	b, err := soft.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	nb := &noCallbacks{Backend: b, api: *b.API()}
	nb.api.NewCallback = nil
	rt, err := runtime.New(nb)
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	if _, err := audio.NewSoundStream(rt, &chunks{}, 1, 8000); !errors.Is(err, gerrors.ErrUnsupported) {
		t.Errorf("NewSoundStream = %v", err)
	}
	if _, err := audio.NewSoundRecorder(rt, &recording{}); !errors.Is(err, gerrors.ErrUnsupported) {
		t.Errorf("NewSoundRecorder = %v", err)
	}
	if rt.Callbacks().Pinned() != 0 {
		t.Error("context left pinned")
	}
}

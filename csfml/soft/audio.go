package soft

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unsafe"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

const (
	kindSoundBuffer         = "sfSoundBuffer"
	kindSound               = "sfSound"
	kindMusic               = "sfMusic"
	kindSoundStream         = "sfSoundStream"
	kindSoundRecorder       = "sfSoundRecorder"
	kindSoundBufferRecorder = "sfSoundBufferRecorder"
)

type bufferState struct {
	pcm
	exported ffi.Ptr
}

func (s *bufferState) duration() csfml.Time {
	return samplesDuration(len(s.samples), s.channels, s.sampleRate)
}

func samplesDuration(n int, channels, rate uint32) csfml.Time {
	if channels == 0 || rate == 0 {
		return csfml.Time{}
	}
	frames := int64(n) / int64(channels)
	return csfml.Time{Microseconds: frames * int64(time.Second/time.Microsecond) / int64(rate)}
}

type soundState struct {
	buffer ffi.Ptr
	status int32
	loop   bool
	volume float32
	pitch  float32
	offset csfml.Time
}

type musicState struct {
	pcm
	status int32
	loop   bool
}

type streamState struct {
	onGetData  csfml.Callback
	onSeek     csfml.Callback
	user       uintptr
	channels   uint32
	sampleRate uint32
	status     int32
	offset     csfml.Time
	played     []int16
}

type recorderState struct {
	onStart    csfml.Callback
	onProcess  csfml.Callback
	onStop     csfml.Callback
	user       uintptr
	sampleRate uint32
	capturing  bool
}

type bufferRecorderState struct {
	buffer     ffi.Ptr
	sampleRate uint32
	recorded   []int16
	capturing  bool
}

type listenerState struct {
	volume    float32
	position  csfml.Vector3f
	direction csfml.Vector3f
	up        csfml.Vector3f
}

func defaultListener() listenerState {
	return listenerState{
		volume:    100,
		direction: csfml.Vector3f{Z: -1},
		up:        csfml.Vector3f{Y: 1},
	}
}

// adopt registers an object the library owns internally. It is not counted
// and cannot be made to fail.
func (b *Backend) adopt(kind string, obj any) ffi.Ptr {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextObject += addrStep
	p := b.nextObject
	b.objects[p] = object{v: obj, kind: kind}
	return p
}

func (b *Backend) disown(p ffi.Ptr) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, p)
}

// Played returns the samples a sound stream pulled from its data callback.
func (b *Backend) Played(stream ffi.Ptr) []int16 {
	s, ok := lookup[*streamState](b, stream, kindSoundStream)
	if !ok {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]int16(nil), s.played...)
}

func (b *Backend) bindAudio() {
	b.bindSoundBuffer()
	b.bindSound()
	b.bindMusic()
	b.bindSoundStream()
	b.bindSoundRecorder()
	b.bindSoundBufferRecorder()
	b.bindListener()
}

func (b *Backend) bindSoundBuffer() {
	sb := &b.api.Audio.SoundBuffer
	buffer := func(p ffi.Ptr) (*bufferState, bool) {
		return lookup[*bufferState](b, p, kindSoundBuffer)
	}
	newBuffer := func(data []byte) ffi.Ptr {
		p, ok := decodeAudio(data)
		if !ok {
			return ffi.Null
		}
		return b.create(kindSoundBuffer, &bufferState{pcm: p})
	}
	sb.CreateFromFile = func(path string) ffi.Ptr {
		data, err := os.ReadFile(path)
		if err != nil {
			return ffi.Null
		}
		return newBuffer(data)
	}
	sb.CreateFromMemory = func(data unsafe.Pointer, size uintptr) ffi.Ptr {
		return newBuffer(bytesAt(data, size))
	}
	sb.CreateFromSamples = func(samples unsafe.Pointer, count uint64, channels, rate uint32) ffi.Ptr {
		if samples == nil || count == 0 || channels == 0 || rate == 0 {
			return ffi.Null
		}
		s := append([]int16(nil), unsafe.Slice((*int16)(samples), count)...)
		return b.create(kindSoundBuffer, &bufferState{pcm: pcm{samples: s, channels: channels, sampleRate: rate}})
	}
	sb.Copy = func(p ffi.Ptr) ffi.Ptr {
		s, ok := buffer(p)
		if !ok {
			return ffi.Null
		}
		cp := s.pcm
		cp.samples = append([]int16(nil), s.samples...)
		return b.copyOf(kindSoundBuffer, &bufferState{pcm: cp})
	}
	sb.Destroy = func(p ffi.Ptr) {
		if v, ok := b.destroy(kindSoundBuffer, p); ok {
			b.unexport(v.(*bufferState).exported)
		}
	}
	sb.SaveToFile = func(p ffi.Ptr, path string) ffi.Bool {
		s, ok := buffer(p)
		if !ok || !strings.EqualFold(filepath.Ext(path), ".wav") {
			return ffi.False
		}
		var out bytes.Buffer
		if err := encodeWAV(&out, s.pcm); err != nil {
			return ffi.False
		}
		return ffi.BoolOf(os.WriteFile(path, out.Bytes(), 0o644) == nil)
	}
	sb.GetSamples = func(p ffi.Ptr) ffi.Ptr {
		s, ok := buffer(p)
		if !ok || len(s.samples) == 0 {
			return ffi.Null
		}
		return b.export(&s.exported, s.samples)
	}
	sb.GetSampleCount = func(p ffi.Ptr) uint64 {
		if s, ok := buffer(p); ok {
			return uint64(len(s.samples))
		}
		return 0
	}
	sb.GetSampleRate = func(p ffi.Ptr) uint32 {
		if s, ok := buffer(p); ok {
			return s.sampleRate
		}
		return 0
	}
	sb.GetChannelCount = func(p ffi.Ptr) uint32 {
		if s, ok := buffer(p); ok {
			return s.channels
		}
		return 0
	}
	sb.GetDuration = func(p ffi.Ptr) csfml.Time {
		if s, ok := buffer(p); ok {
			return s.duration()
		}
		return csfml.Time{}
	}
}

func (b *Backend) bindSound() {
	sn := &b.api.Audio.Sound
	sound := func(p ffi.Ptr) (*soundState, bool) {
		return lookup[*soundState](b, p, kindSound)
	}
	sn.Create = func() ffi.Ptr {
		return b.create(kindSound, &soundState{volume: 100, pitch: 1, status: csfml.StatusStopped})
	}
	sn.Copy = func(p ffi.Ptr) ffi.Ptr {
		s, ok := sound(p)
		if !ok {
			return ffi.Null
		}
		cp := *s
		cp.status = csfml.StatusStopped
		cp.offset = csfml.Time{}
		return b.copyOf(kindSound, &cp)
	}
	sn.Destroy = func(p ffi.Ptr) { b.destroy(kindSound, p) }
	sn.Play = func(p ffi.Ptr) {
		if s, ok := sound(p); ok && s.buffer != ffi.Null {
			s.status = csfml.StatusPlaying
		}
	}
	sn.Pause = func(p ffi.Ptr) {
		if s, ok := sound(p); ok && s.status == csfml.StatusPlaying {
			s.status = csfml.StatusPaused
		}
	}
	sn.Stop = func(p ffi.Ptr) {
		if s, ok := sound(p); ok {
			s.status = csfml.StatusStopped
			s.offset = csfml.Time{}
		}
	}
	// Setting a buffer stops the sound.
	sn.SetBuffer = func(p, buf ffi.Ptr) {
		if s, ok := sound(p); ok {
			s.status = csfml.StatusStopped
			s.offset = csfml.Time{}
			s.buffer = buf
		}
	}
	sn.GetBuffer = func(p ffi.Ptr) ffi.Ptr {
		if s, ok := sound(p); ok {
			return s.buffer
		}
		return ffi.Null
	}
	sn.GetStatus = func(p ffi.Ptr) int32 {
		if s, ok := sound(p); ok {
			return s.status
		}
		return csfml.StatusStopped
	}
	sn.SetLoop = func(p ffi.Ptr, v ffi.Bool) {
		if s, ok := sound(p); ok {
			s.loop = v.Go()
		}
	}
	sn.GetLoop = func(p ffi.Ptr) ffi.Bool {
		s, ok := sound(p)
		return ffi.BoolOf(ok && s.loop)
	}
	sn.SetVolume = func(p ffi.Ptr, v float32) {
		if s, ok := sound(p); ok {
			s.volume = max(0, min(100, v))
		}
	}
	sn.GetVolume = func(p ffi.Ptr) float32 {
		if s, ok := sound(p); ok {
			return s.volume
		}
		return 0
	}
	sn.SetPitch = func(p ffi.Ptr, v float32) {
		if s, ok := sound(p); ok {
			s.pitch = v
		}
	}
	sn.GetPitch = func(p ffi.Ptr) float32 {
		if s, ok := sound(p); ok {
			return s.pitch
		}
		return 0
	}
	sn.SetPlayingOffset = func(p ffi.Ptr, t csfml.Time) {
		if s, ok := sound(p); ok {
			s.offset = t
		}
	}
	sn.GetPlayingOffset = func(p ffi.Ptr) csfml.Time {
		if s, ok := sound(p); ok {
			return s.offset
		}
		return csfml.Time{}
	}
}

func (b *Backend) bindMusic() {
	mu := &b.api.Audio.Music
	music := func(p ffi.Ptr) (*musicState, bool) {
		return lookup[*musicState](b, p, kindMusic)
	}
	newMusic := func(data []byte) ffi.Ptr {
		p, ok := decodeAudio(data)
		if !ok {
			return ffi.Null
		}
		return b.create(kindMusic, &musicState{pcm: p, status: csfml.StatusStopped})
	}
	mu.CreateFromFile = func(path string) ffi.Ptr {
		data, err := os.ReadFile(path)
		if err != nil {
			return ffi.Null
		}
		return newMusic(data)
	}
	mu.CreateFromMemory = func(data unsafe.Pointer, size uintptr) ffi.Ptr {
		return newMusic(bytesAt(data, size))
	}
	mu.Destroy = func(p ffi.Ptr) { b.destroy(kindMusic, p) }
	mu.Play = func(p ffi.Ptr) {
		if m, ok := music(p); ok {
			m.status = csfml.StatusPlaying
		}
	}
	mu.Pause = func(p ffi.Ptr) {
		if m, ok := music(p); ok && m.status == csfml.StatusPlaying {
			m.status = csfml.StatusPaused
		}
	}
	mu.Stop = func(p ffi.Ptr) {
		if m, ok := music(p); ok {
			m.status = csfml.StatusStopped
		}
	}
	mu.GetStatus = func(p ffi.Ptr) int32 {
		if m, ok := music(p); ok {
			return m.status
		}
		return csfml.StatusStopped
	}
	mu.GetDuration = func(p ffi.Ptr) csfml.Time {
		if m, ok := music(p); ok {
			return samplesDuration(len(m.samples), m.channels, m.sampleRate)
		}
		return csfml.Time{}
	}
	mu.SetLoop = func(p ffi.Ptr, v ffi.Bool) {
		if m, ok := music(p); ok {
			m.loop = v.Go()
		}
	}
	mu.GetLoop = func(p ffi.Ptr) ffi.Bool {
		m, ok := music(p)
		return ffi.BoolOf(ok && m.loop)
	}
	mu.GetChannelCount = func(p ffi.Ptr) uint32 {
		if m, ok := music(p); ok {
			return m.channels
		}
		return 0
	}
	mu.GetSampleRate = func(p ffi.Ptr) uint32 {
		if m, ok := music(p); ok {
			return m.sampleRate
		}
		return 0
	}
}

// pull asks the stream for up to StreamChunkBudget chunks. A callback that
// reports no more data stops the stream.
func (b *Backend) pull(s *streamState) {
	getData, ok := callbackOf[csfml.StreamGetDataFunc](b, s.onGetData)
	if !ok {
		return
	}
	for i := 0; i < b.cfg.StreamChunkBudget; i++ {
		var chunk csfml.SoundStreamChunk
		more := getData(&chunk, s.user).Go()
		if chunk.Samples != nil && chunk.SampleCount > 0 {
			samples := unsafe.Slice(chunk.Samples, chunk.SampleCount)
			b.mu.Lock()
			s.played = append(s.played, samples...)
			b.mu.Unlock()
		}
		if !more {
			b.mu.Lock()
			s.status = csfml.StatusStopped
			b.mu.Unlock()
			return
		}
	}
}

func (b *Backend) seek(s *streamState, t csfml.Time) {
	if fn, ok := callbackOf[csfml.StreamSeekFunc](b, s.onSeek); ok {
		fn(t, s.user)
	}
}

func (b *Backend) bindSoundStream() {
	st := &b.api.Audio.SoundStream
	stream := func(p ffi.Ptr) (*streamState, bool) {
		return lookup[*streamState](b, p, kindSoundStream)
	}
	status := func(s *streamState) int32 {
		b.mu.Lock()
		defer b.mu.Unlock()
		return s.status
	}
	setStatus := func(s *streamState, v int32) {
		b.mu.Lock()
		defer b.mu.Unlock()
		s.status = v
	}
	stop := func(s *streamState) {
		setStatus(s, csfml.StatusStopped)
		b.seek(s, csfml.Time{})
		s.offset = csfml.Time{}
	}

	st.Create = func(onGetData, onSeek csfml.Callback, channels, rate uint32, user uintptr) ffi.Ptr {
		if onGetData == 0 || onSeek == 0 || channels == 0 || rate == 0 {
			return ffi.Null
		}
		return b.create(kindSoundStream, &streamState{
			onGetData:  onGetData,
			onSeek:     onSeek,
			user:       user,
			channels:   channels,
			sampleRate: rate,
			status:     csfml.StatusStopped,
		})
	}
	st.Destroy = func(p ffi.Ptr) { b.destroy(kindSoundStream, p) }
	st.Play = func(p ffi.Ptr) {
		s, ok := stream(p)
		if !ok {
			return
		}
		switch status(s) {
		case csfml.StatusPaused:
			setStatus(s, csfml.StatusPlaying)
			return
		case csfml.StatusPlaying:
			stop(s)
		}
		setStatus(s, csfml.StatusPlaying)
		b.pull(s)
	}
	st.Pause = func(p ffi.Ptr) {
		if s, ok := stream(p); ok && status(s) == csfml.StatusPlaying {
			setStatus(s, csfml.StatusPaused)
		}
	}
	st.Stop = func(p ffi.Ptr) {
		if s, ok := stream(p); ok {
			stop(s)
		}
	}
	st.GetStatus = func(p ffi.Ptr) int32 {
		if s, ok := stream(p); ok {
			return status(s)
		}
		return csfml.StatusStopped
	}
	st.GetChannelCount = func(p ffi.Ptr) uint32 {
		if s, ok := stream(p); ok {
			return s.channels
		}
		return 0
	}
	st.GetSampleRate = func(p ffi.Ptr) uint32 {
		if s, ok := stream(p); ok {
			return s.sampleRate
		}
		return 0
	}
	st.SetPlayingOffset = func(p ffi.Ptr, t csfml.Time) {
		s, ok := stream(p)
		if !ok {
			return
		}
		b.seek(s, t)
		s.offset = t
		if status(s) == csfml.StatusPlaying {
			b.pull(s)
		}
	}
	st.GetPlayingOffset = func(p ffi.Ptr) csfml.Time {
		s, ok := stream(p)
		if !ok {
			return csfml.Time{}
		}
		b.mu.Lock()
		played := len(s.played)
		b.mu.Unlock()
		d := samplesDuration(played, s.channels, s.sampleRate)
		return csfml.Time{Microseconds: s.offset.Microseconds + d.Microseconds}
	}
}

// capture feeds the configured capture samples to deliver in chunks until it
// returns false.
func (b *Backend) capture(deliver func([]int16) bool) {
	samples := b.cfg.Capture
	for len(samples) > 0 {
		n := min(len(samples), b.cfg.CaptureChunk)
		chunk := append([]int16(nil), samples[:n]...)
		samples = samples[n:]
		if !deliver(chunk) {
			return
		}
	}
}

func (b *Backend) bindSoundRecorder() {
	sr := &b.api.Audio.SoundRecorder
	recorder := func(p ffi.Ptr) (*recorderState, bool) {
		return lookup[*recorderState](b, p, kindSoundRecorder)
	}
	sr.Create = func(onStart, onProcess, onStop csfml.Callback, user uintptr) ffi.Ptr {
		if onProcess == 0 {
			return ffi.Null
		}
		return b.create(kindSoundRecorder, &recorderState{
			onStart:   onStart,
			onProcess: onProcess,
			onStop:    onStop,
			user:      user,
		})
	}
	sr.Destroy = func(p ffi.Ptr) {
		if v, ok := b.destroy(kindSoundRecorder, p); ok {
			r := v.(*recorderState)
			if r.capturing {
				b.stopRecorder(r)
			}
		}
	}
	sr.Start = func(p ffi.Ptr, rate uint32) ffi.Bool {
		r, ok := recorder(p)
		if !ok || b.cfg.NoCaptureDevice || r.capturing {
			return ffi.False
		}
		if start, ok := callbackOf[csfml.RecorderStartFunc](b, r.onStart); ok && !start(r.user).Go() {
			return ffi.False
		}
		r.sampleRate = rate
		r.capturing = true
		process, ok := callbackOf[csfml.RecorderProcessFunc](b, r.onProcess)
		if !ok {
			return ffi.True
		}
		b.capture(func(chunk []int16) bool {
			if !process(&chunk[0], uintptr(len(chunk)), r.user).Go() {
				r.capturing = false
				return false
			}
			return true
		})
		return ffi.True
	}
	sr.Stop = func(p ffi.Ptr) {
		if r, ok := recorder(p); ok && r.capturing {
			b.stopRecorder(r)
		}
	}
	sr.GetSampleRate = func(p ffi.Ptr) uint32 {
		if r, ok := recorder(p); ok {
			return r.sampleRate
		}
		return 0
	}
	sr.IsAvailable = func() ffi.Bool {
		return ffi.BoolOf(!b.cfg.NoCaptureDevice)
	}
}

func (b *Backend) stopRecorder(r *recorderState) {
	r.capturing = false
	if stop, ok := callbackOf[csfml.RecorderStopFunc](b, r.onStop); ok {
		stop(r.user)
	}
}

func (b *Backend) bindSoundBufferRecorder() {
	br := &b.api.Audio.SoundBufferRecorder
	recorder := func(p ffi.Ptr) (*bufferRecorderState, bool) {
		return lookup[*bufferRecorderState](b, p, kindSoundBufferRecorder)
	}
	br.Create = func() ffi.Ptr {
		p := b.create(kindSoundBufferRecorder, &bufferRecorderState{})
		if p == ffi.Null {
			return ffi.Null
		}
		r, _ := recorder(p)
		r.buffer = b.adopt(kindSoundBuffer, &bufferState{pcm: pcm{channels: 1}})
		return p
	}
	br.Destroy = func(p ffi.Ptr) {
		if v, ok := b.destroy(kindSoundBufferRecorder, p); ok {
			r := v.(*bufferRecorderState)
			if s, ok := lookup[*bufferState](b, r.buffer, kindSoundBuffer); ok {
				b.unexport(s.exported)
			}
			b.disown(r.buffer)
		}
	}
	br.Start = func(p ffi.Ptr, rate uint32) ffi.Bool {
		r, ok := recorder(p)
		if !ok || b.cfg.NoCaptureDevice || r.capturing {
			return ffi.False
		}
		r.sampleRate = rate
		r.recorded = nil
		r.capturing = true
		b.capture(func(chunk []int16) bool {
			r.recorded = append(r.recorded, chunk...)
			return true
		})
		return ffi.True
	}
	// The internal buffer receives the samples when recording stops.
	br.Stop = func(p ffi.Ptr) {
		r, ok := recorder(p)
		if !ok || !r.capturing {
			return
		}
		r.capturing = false
		if s, ok := lookup[*bufferState](b, r.buffer, kindSoundBuffer); ok {
			s.pcm = pcm{samples: r.recorded, channels: 1, sampleRate: r.sampleRate}
		}
	}
	br.GetSampleRate = func(p ffi.Ptr) uint32 {
		if r, ok := recorder(p); ok {
			return r.sampleRate
		}
		return 0
	}
	br.GetBuffer = func(p ffi.Ptr) ffi.Ptr {
		if r, ok := recorder(p); ok {
			return r.buffer
		}
		return ffi.Null
	}
}

func (b *Backend) bindListener() {
	l := &b.api.Audio.Listener
	with := func(fn func(s *listenerState)) {
		b.mu.Lock()
		defer b.mu.Unlock()
		fn(&b.listener)
	}
	l.SetGlobalVolume = func(v float32) { with(func(s *listenerState) { s.volume = max(0, min(100, v)) }) }
	l.GetGlobalVolume = func() (v float32) {
		with(func(s *listenerState) { v = s.volume })
		return v
	}
	l.SetPosition = func(v csfml.Vector3f) { with(func(s *listenerState) { s.position = v }) }
	l.GetPosition = func() (v csfml.Vector3f) {
		with(func(s *listenerState) { v = s.position })
		return v
	}
	l.SetDirection = func(v csfml.Vector3f) { with(func(s *listenerState) { s.direction = v }) }
	l.GetDirection = func() (v csfml.Vector3f) {
		with(func(s *listenerState) { v = s.direction })
		return v
	}
	l.SetUpVector = func(v csfml.Vector3f) { with(func(s *listenerState) { s.up = v }) }
	l.GetUpVector = func() (v csfml.Vector3f) {
		with(func(s *listenerState) { v = s.up })
		return v
	}
}

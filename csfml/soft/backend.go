package soft

import (
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
)

// Addresses handed out for objects, exported data and callbacks. They are
// never dereferenced.
const (
	objectBase   ffi.Ptr        = 0x1000
	dataBase     ffi.Ptr        = 0x4000_0000
	callbackBase csfml.Callback = 0x7f00_0000
	addrStep                    = 16
)

// Config holds configuration for the reference backend
type Config struct {
	// Logger receives debug output for every foreign call that creates or
	// destroys an object.
	Logger *zap.Logger

	// DesktopMode is reported by sfVideoMode_getDesktopMode.
	// Zero means 1920x1080x32.
	DesktopMode csfml.VideoMode

	// StreamChunkBudget bounds how many chunks a sound stream pulls from its
	// data callback per play. Zero means 4.
	StreamChunkBudget int

	// Capture holds the samples recorders receive, delivered in chunks of
	// CaptureChunk samples (zero means 1024).
	Capture      []int16
	CaptureChunk int

	// NoCaptureDevice makes sfSoundRecorder_isAvailable report false and
	// recorders fail to start.
	NoCaptureDevice bool

	// Now is the clock source. Nil means time.Now.
	Now func() time.Time
}

// Stats counts foreign lifecycle calls per kind ("sfFont", "sfText", ...).
type Stats struct {
	Created         map[string]int
	Copied          map[string]int
	Destroyed       map[string]int
	DoubleDestroyed map[string]int
}

func newStats() Stats {
	return Stats{
		Created:         make(map[string]int),
		Copied:          make(map[string]int),
		Destroyed:       make(map[string]int),
		DoubleDestroyed: make(map[string]int),
	}
}

func (s Stats) clone() Stats {
	out := newStats()
	for k, v := range s.Created {
		out.Created[k] = v
	}
	for k, v := range s.Copied {
		out.Copied[k] = v
	}
	for k, v := range s.Destroyed {
		out.Destroyed[k] = v
	}
	for k, v := range s.DoubleDestroyed {
		out.DoubleDestroyed[k] = v
	}
	return out
}

type object struct {
	v    any
	kind string
}

// Backend is a pure-Go implementation of the CSFML function table.
// It keeps every object in memory, decodes the common image, font and audio
// formats and records what windows draw. It does not render.
type Backend struct {
	api          *csfml.API
	cfg          Config
	logger       *zap.Logger
	objects      map[ffi.Ptr]object
	data         map[ffi.Ptr]any
	callbacks    map[csfml.Callback]any
	failing      map[string]bool
	keys         map[int32]bool
	stats        Stats
	listener     listenerState
	mouse        csfml.Vector2i
	nextObject   ffi.Ptr
	nextData     ffi.Ptr
	nextCallback csfml.Callback
	mu           sync.Mutex
	closed       bool
}

// New creates a reference backend.
func New(cfg *Config) (*Backend, error) {
	b := &Backend{
		objects:      make(map[ffi.Ptr]object),
		data:         make(map[ffi.Ptr]any),
		callbacks:    make(map[csfml.Callback]any),
		failing:      make(map[string]bool),
		keys:         make(map[int32]bool),
		stats:        newStats(),
		nextObject:   objectBase,
		nextData:     dataBase,
		nextCallback: callbackBase,
		listener:     defaultListener(),
	}
	if cfg != nil {
		b.cfg = *cfg
	}
	if b.cfg.Logger != nil {
		b.logger = b.cfg.Logger
	} else {
		b.logger = zap.NewNop()
	}
	if b.cfg.DesktopMode == (csfml.VideoMode{}) {
		b.cfg.DesktopMode = csfml.VideoMode{Width: 1920, Height: 1080, BitsPerPixel: 32}
	}
	if b.cfg.StreamChunkBudget <= 0 {
		b.cfg.StreamChunkBudget = 4
	}
	if b.cfg.CaptureChunk <= 0 {
		b.cfg.CaptureChunk = 1024
	}
	if b.cfg.Now == nil {
		b.cfg.Now = time.Now
	}

	b.api = &csfml.API{
		Memory:      memory{b: b},
		NewCallback: b.newCallback,
	}
	b.bindSystem()
	b.bindWindow()
	b.bindGraphics()
	b.bindAudio()
	return b, nil
}

// API returns the function table.
func (b *Backend) API() *csfml.API {
	return b.api
}

// Close forgets every object. Objects still alive are logged.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for p, o := range b.objects {
		b.logger.Debug("object alive at backend close", zap.String("kind", o.kind), zap.Stringer("addr", p))
		if w, ok := o.v.(*windowState); ok {
			w.close()
		}
	}
	b.objects = make(map[ffi.Ptr]object)
	b.data = make(map[ffi.Ptr]any)
	return nil
}

// Stats returns a snapshot of the lifecycle counters.
func (b *Backend) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats.clone()
}

// Live returns the number of live objects of a kind, or of every kind when
// kind is empty.
func (b *Backend) Live(kind string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, o := range b.objects {
		if kind == "" || o.kind == kind {
			n++
		}
	}
	return n
}

// FailConstruction makes constructors and copies of the given kinds return
// null. "*" matches every kind.
func (b *Backend) FailConstruction(kinds ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range kinds {
		b.failing[k] = true
	}
}

// RestoreConstruction undoes FailConstruction.
func (b *Backend) RestoreConstruction() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.failing)
}

// SetKeyPressed changes the state reported by sfKeyboard_isKeyPressed.
func (b *Backend) SetKeyPressed(key int32, pressed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.keys[key] = pressed
}

// create registers obj under a fresh address, or returns null when
// construction of kind is set to fail.
func (b *Backend) create(kind string, obj any) ffi.Ptr {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || b.failing[kind] || b.failing["*"] {
		return ffi.Null
	}
	b.nextObject += addrStep
	p := b.nextObject
	b.objects[p] = object{v: obj, kind: kind}
	b.stats.Created[kind]++
	b.logger.Debug("create", zap.String("kind", kind), zap.Stringer("addr", p))
	return p
}

// copyOf registers a copy made by a foreign copy function.
func (b *Backend) copyOf(kind string, obj any) ffi.Ptr {
	p := b.create(kind, obj)
	if p != ffi.Null {
		b.mu.Lock()
		b.stats.Copied[kind]++
		b.mu.Unlock()
	}
	return p
}

// destroy releases an object. Releasing an unknown address counts as a
// double destroy.
func (b *Backend) destroy(kind string, p ffi.Ptr) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	o, ok := b.objects[p]
	if !ok || o.kind != kind {
		b.stats.DoubleDestroyed[kind]++
		b.logger.Warn("destroy of unknown object", zap.String("kind", kind), zap.Stringer("addr", p))
		return nil, false
	}
	delete(b.objects, p)
	b.stats.Destroyed[kind]++
	b.logger.Debug("destroy", zap.String("kind", kind), zap.Stringer("addr", p))
	return o.v, true
}

// lookup returns the object at p if it is one of kinds.
func lookup[T any](b *Backend, p ffi.Ptr, kinds ...string) (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	o, ok := b.objects[p]
	if !ok || (len(kinds) > 0 && !slices.Contains(kinds, o.kind)) {
		return zero, false
	}
	v, ok := o.v.(T)
	return v, ok
}

// export publishes v at a data address readable through Memory. The address
// is stored in *slot and reused on later calls.
func (b *Backend) export(slot *ffi.Ptr, v any) ffi.Ptr {
	b.mu.Lock()
	defer b.mu.Unlock()
	if *slot == ffi.Null {
		b.nextData += addrStep
		*slot = b.nextData
	}
	b.data[*slot] = v
	return *slot
}

func (b *Backend) unexport(slot ffi.Ptr) {
	if slot == ffi.Null {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, slot)
}

func (b *Backend) newCallback(fn any) (csfml.Callback, error) {
	switch fn.(type) {
	case csfml.ShapePointCountFunc, csfml.ShapePointFunc,
		csfml.StreamGetDataFunc, csfml.StreamSeekFunc,
		csfml.RecorderStartFunc, csfml.RecorderProcessFunc, csfml.RecorderStopFunc:
	default:
		return 0, gerrors.New(gerrors.PhaseCallback, gerrors.KindTypeMismatch).
			Detail("unsupported callback type %T", fn).
			Build()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextCallback += addrStep
	b.callbacks[b.nextCallback] = fn
	return b.nextCallback, nil
}

func callbackOf[F any](b *Backend, cb csfml.Callback) (F, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn, ok := b.callbacks[cb].(F)
	return fn, ok
}

func (b *Backend) now() time.Time {
	return b.cfg.Now()
}

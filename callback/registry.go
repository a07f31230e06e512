package callback

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
)

// Context is the opaque user-data word given to the foreign library.
// Zero is never a valid Context.
type Context uintptr

// Factory makes a Go function callable from the foreign library.
type Factory func(fn any) (csfml.Callback, error)

// Registry owns the pinned values and the trampoline cache of one runtime.
type Registry struct {
	factory     Factory
	logger      *zap.Logger
	tables      map[reflect.Type]map[Context]any
	trampolines map[trampolineKey][]csfml.Callback
	next        Context
	pinned      int
	mu          sync.Mutex
	closed      bool
}

type trampolineKey struct {
	typ    reflect.Type
	family string
}

// NewRegistry creates a registry producing callbacks through factory.
func NewRegistry(factory Factory, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		factory:     factory,
		logger:      logger,
		tables:      make(map[reflect.Type]map[Context]any),
		trampolines: make(map[trampolineKey][]csfml.Callback),
	}
}

// Pinned returns the number of values currently pinned.
func (r *Registry) Pinned() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pinned
}

// Close refuses further pins. Values still pinned are reported.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	if r.pinned > 0 {
		return gerrors.Leaked("pinned callback context(s)", r.pinned)
	}
	return nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Pinned is a value reachable from the foreign library through its Context.
type Pinned[T any] struct {
	reg   *Registry
	value T
	ctx   Context
	once  sync.Once
}

// Pin keeps v reachable and returns the Context that resolves to it.
func Pin[T any](reg *Registry, v T) (*Pinned[T], error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.closed {
		return nil, gerrors.New(gerrors.PhaseCallback, gerrors.KindClosed).
			Detail("callback registry closed").
			Build()
	}

	typ := typeOf[T]()
	table := reg.tables[typ]
	if table == nil {
		table = make(map[Context]any)
		reg.tables[typ] = table
	}

	reg.next++
	ctx := reg.next
	table[ctx] = v
	reg.pinned++

	return &Pinned[T]{reg: reg, value: v, ctx: ctx}, nil
}

// Context returns the user-data word for the foreign library.
func (p *Pinned[T]) Context() Context {
	return p.ctx
}

// Value returns the pinned value.
func (p *Pinned[T]) Value() T {
	return p.value
}

// Unpin forgets the value. Trampolines invoked afterwards with its Context
// find nothing. Unpin is idempotent.
func (p *Pinned[T]) Unpin() {
	p.once.Do(func() {
		r := p.reg
		r.mu.Lock()
		defer r.mu.Unlock()

		table := r.tables[typeOf[T]()]
		if _, ok := table[p.ctx]; ok {
			delete(table, p.ctx)
			r.pinned--
		}
	})
}

// Lookup resolves ctx to the value pinned for type T.
// Contexts pinned for other types resolve to absent.
func Lookup[T any](reg *Registry, ctx Context) (T, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	var zero T
	v, ok := reg.tables[typeOf[T]()][ctx]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// Trampolines returns foreign-callable pointers for fns, created at most once
// per family and type T. fns must be instantiations for T; they are only used
// on the first call for a given (family, T).
func Trampolines[T any](reg *Registry, family string, fns ...any) ([]csfml.Callback, error) {
	key := trampolineKey{typ: typeOf[T](), family: family}

	reg.mu.Lock()
	if cbs, ok := reg.trampolines[key]; ok {
		reg.mu.Unlock()
		return cbs, nil
	}
	reg.mu.Unlock()

	if reg.factory == nil {
		return nil, gerrors.Unsupported(gerrors.PhaseCallback, "no callback factory")
	}

	cbs := make([]csfml.Callback, len(fns))
	for i, fn := range fns {
		cb, err := reg.factory(fn)
		if err != nil {
			return nil, gerrors.New(gerrors.PhaseCallback, gerrors.KindUnsupported).
				Detail("%s trampoline %d for %s", family, i, key.typ).
				Cause(err).
				Build()
		}
		if cb == 0 {
			return nil, gerrors.NilPointer(gerrors.PhaseCallback, family+" trampoline")
		}
		cbs[i] = cb
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	// a concurrent caller may have won; keep the first set
	if existing, ok := reg.trampolines[key]; ok {
		return existing, nil
	}
	reg.trampolines[key] = cbs
	reg.logger.Debug("trampolines generated",
		zap.String("family", family),
		zap.Stringer("type", key.typ),
		zap.Int("count", len(cbs)))
	return cbs, nil
}

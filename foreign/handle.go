package foreign

import (
	"errors"
	goruntime "runtime"
	"sync"
	"weak"

	"go.uber.org/zap"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/resource"
	"github.com/wippyai/gosfml/runtime"
)

// Kind names a foreign resource type and its destructor.
type Kind interface {
	KindName() string
	Destroy(api *csfml.API, p ffi.Ptr)
}

// Copyable is a Kind the library can deep-copy.
type Copyable interface {
	Kind
	Copy(api *csfml.API, p ffi.Ptr) ffi.Ptr
}

// Handle exclusively owns one foreign resource of kind T, or, when made by
// View, refers to one owned by another handle.
type Handle[T Kind] struct {
	rt      *runtime.Runtime
	state   *handleState
	cleanup goruntime.Cleanup
	owner   holder
}

// holder is an owning handle that views can keep alive.
type holder interface {
	Live() bool
	hold() (release func(), err error)
}

// handleState is shared with the leak cleanup, so it must not point back at
// the Handle. The resource table holds the Handle weakly for the same reason.
type handleState struct {
	mu   sync.Mutex
	ptr  ffi.Ptr
	id   resource.Handle
	kind string
}

// Acquire wraps the result of a foreign constructor.
// Null yields a construction-failure error naming the kind. An address that
// is already owned yields an already-owned error and is left untouched. Any
// other failure to record the resource destroys it.
func Acquire[T Kind](rt *runtime.Runtime, p ffi.Ptr) (*Handle[T], error) {
	var kind T
	name := kind.KindName()
	if p == ffi.Null {
		return nil, gerrors.New(gerrors.PhaseCreate, gerrors.KindConstruction).
			Resource(name).
			Detail("foreign constructor returned null").
			Build()
	}

	h := &Handle[T]{
		rt:    rt,
		state: &handleState{ptr: p, kind: name},
	}
	id, err := rt.Resources().Insert(name, uintptr(p), weak.Make(h))
	if err != nil {
		if !errors.Is(err, gerrors.ErrAlreadyOwned) {
			kind.Destroy(rt.API(), p)
		}
		return nil, err
	}
	h.state.id = id
	h.cleanup = goruntime.AddCleanup(h, reportLeak, leakReport{state: h.state, logger: rt.Logger()})
	return h, nil
}

type leakReport struct {
	state  *handleState
	logger *zap.Logger
}

func reportLeak(r leakReport) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if r.state.ptr == ffi.Null {
		return
	}
	r.logger.Warn("foreign resource garbage collected without Close",
		zap.String("kind", r.state.kind),
		zap.Stringer("addr", r.state.ptr))
}

// View wraps p, a resource of kind T owned by owner, such as the texture a
// render texture draws into. The view never destroys p and is usable only
// while owner is live. Lending from the view leases owner.
func View[T Kind](rt *runtime.Runtime, owner holder, p ffi.Ptr) (*Handle[T], error) {
	var kind T
	if p == ffi.Null {
		return nil, gerrors.New(gerrors.PhaseCreate, gerrors.KindConstruction).
			Resource(kind.KindName()).
			Detail("owner returned null").
			Build()
	}
	return &Handle[T]{
		rt:    rt,
		state: &handleState{ptr: p, kind: kind.KindName()},
		owner: owner,
	}, nil
}

func (h *Handle[T]) hold() (func(), error) {
	l, err := h.Lend()
	if err != nil {
		return nil, err
	}
	return l.Return, nil
}

// Owned reports whether the handle owns its resource, as opposed to being a
// view.
func (h *Handle[T]) Owned() bool {
	return h.owner == nil
}

// Borrow returns the address for the duration of a foreign call.
// It panics if the handle no longer owns a resource, or if it is a view
// whose owner was closed.
func (h *Handle[T]) Borrow() ffi.Ptr {
	if h.owner != nil && !h.owner.Live() {
		panic(gerrors.Released(h.state.kind))
	}
	h.state.mu.Lock()
	p := h.state.ptr
	h.state.mu.Unlock()
	if p == ffi.Null {
		panic(gerrors.Released(h.state.kind))
	}
	return p
}

// BorrowMut is Borrow for calls that mutate the resource.
func (h *Handle[T]) BorrowMut() ffi.Ptr {
	return h.Borrow()
}

// Live reports whether the handle still owns a resource.
func (h *Handle[T]) Live() bool {
	if h == nil {
		return false
	}
	if h.owner != nil && !h.owner.Live() {
		return false
	}
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	return h.state.ptr != ffi.Null
}

// Kind returns the C type name of the resource.
func (h *Handle[T]) Kind() string {
	return h.state.kind
}

// ID returns the handle's entry in the runtime's resource table.
func (h *Handle[T]) ID() resource.Handle {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	return h.state.id
}

// Runtime returns the runtime the resource belongs to.
func (h *Handle[T]) Runtime() *runtime.Runtime {
	return h.rt
}

// Close destroys the resource. A second Close is a no-op. On a view Close
// destroys nothing and returns a not-owner error.
// While leases are outstanding Close returns an outstanding-borrow error and
// destroys nothing. After the runtime is closed the library is gone: the first
// Close releases the handle without calling the destructor and reports a
// closed error.
func (h *Handle[T]) Close() error {
	if h == nil {
		return nil
	}
	if h.owner != nil {
		return gerrors.NotOwner(h.state.kind)
	}
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	if h.state.ptr == ffi.Null {
		return nil
	}

	if h.rt.Closed() {
		h.state.ptr = ffi.Null
		h.state.id = 0
		h.cleanup.Stop()
		return gerrors.New(gerrors.PhaseDestroy, gerrors.KindClosed).
			Resource(h.state.kind).
			Detail("runtime already closed").
			Build()
	}

	if _, err := h.rt.Resources().Drop(h.state.id); err != nil {
		h.rt.Logger().Warn("close refused",
			zap.String("kind", h.state.kind),
			zap.Error(err))
		return err
	}

	var kind T
	kind.Destroy(h.rt.API(), h.state.ptr)

	h.state.ptr = ffi.Null
	h.state.id = 0
	h.cleanup.Stop()
	return nil
}

// Take moves the resource to a new handle. The receiver no longer owns it and
// the destructor is not called. Take panics on a view.
func (h *Handle[T]) Take() *Handle[T] {
	if h.owner != nil {
		panic(gerrors.NotOwner(h.state.kind))
	}
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	if h.state.ptr == ffi.Null {
		panic(gerrors.Released(h.state.kind))
	}

	moved := &Handle[T]{
		rt:    h.rt,
		state: &handleState{ptr: h.state.ptr, id: h.state.id, kind: h.state.kind},
	}
	h.rt.Resources().Move(moved.state.id, weak.Make(moved))
	moved.cleanup = goruntime.AddCleanup(moved, reportLeak, leakReport{state: moved.state, logger: h.rt.Logger()})

	h.state.ptr = ffi.Null
	h.state.id = 0
	h.cleanup.Stop()
	return moved
}

// Duplicate deep-copies the resource through the library's copy function.
// A null copy yields a construction-failure error.
func Duplicate[T Copyable](h *Handle[T]) (*Handle[T], error) {
	var kind T
	p := kind.Copy(h.rt.API(), h.Borrow())
	if p == ffi.Null {
		return nil, gerrors.CopyFailed(kind.KindName())
	}
	return Acquire[T](h.rt, p)
}

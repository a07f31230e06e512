package foreign

import (
	"sync"
	"weak"

	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
	"github.com/wippyai/gosfml/resource"
)

// Lease is a counted, non-owning reference to a handle's resource.
// While any lease is outstanding the resource cannot be closed.
// A lease follows the resource across Take.
type Lease[T Kind] struct {
	held *Handle[T]
	id   resource.Handle
	once sync.Once

	// set for views: the lease is held on the owner
	release func()
}

// Lend registers a dependent of the resource. Lending from a view holds its
// owner instead.
func (h *Handle[T]) Lend() (*Lease[T], error) {
	if h == nil {
		return nil, gerrors.NilPointer(gerrors.PhaseBorrow, "handle")
	}
	if h.owner != nil {
		if !h.owner.Live() {
			return nil, gerrors.Released(h.state.kind)
		}
		release, err := h.owner.hold()
		if err != nil {
			return nil, err
		}
		return &Lease[T]{held: h, release: release}, nil
	}
	h.state.mu.Lock()
	defer h.state.mu.Unlock()

	if h.state.ptr == ffi.Null {
		return nil, gerrors.Released(h.state.kind)
	}
	if err := h.rt.Resources().Borrow(h.state.id); err != nil {
		return nil, err
	}
	return &Lease[T]{held: h, id: h.state.id}, nil
}

// Handle returns the current owner of the lent resource.
func (l *Lease[T]) Handle() *Handle[T] {
	if l.release != nil {
		return l.held
	}
	if e, ok := l.held.rt.Resources().Get(l.id); ok {
		if wp, ok := e.Value.(weak.Pointer[Handle[T]]); ok {
			if h := wp.Value(); h != nil && h.Live() {
				return h
			}
		}
	}
	return l.held
}

// Ptr returns the address of the lent resource.
func (l *Lease[T]) Ptr() ffi.Ptr {
	return l.Handle().Borrow()
}

// Return ends the lease. Return is idempotent.
func (l *Lease[T]) Return() {
	if l == nil {
		return
	}
	l.once.Do(func() {
		if l.release != nil {
			l.release()
			return
		}
		l.held.rt.Resources().ReturnBorrow(l.id)
	})
}

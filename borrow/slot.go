// Package borrow stores the references a dependent object keeps into
// resources it does not own: a text's font, a sprite's texture, a sound's
// buffer.
//
// A Slot holds at most one lease. Binding a new resource replaces the old
// lease; clearing returns it. Because a lease blocks the resource's Close,
// a resource cannot be destroyed while a dependent still points at it, and
// Close on the resource reports an outstanding-borrow error instead.
package borrow

import (
	"sync"

	"github.com/wippyai/gosfml/foreign"
)

// Slot is the dependent-side storage of one borrow relation.
// The zero value is an empty slot.
type Slot[T foreign.Kind] struct {
	mu    sync.Mutex
	lease *foreign.Lease[T]
}

// Set binds h. The new lease is taken before the old one is returned, so
// rebinding to the resource already bound never drops its count to zero.
func (s *Slot[T]) Set(h *foreign.Handle[T]) error {
	lease, err := h.Lend()
	if err != nil {
		return err
	}

	s.mu.Lock()
	old := s.lease
	s.lease = lease
	s.mu.Unlock()

	old.Return()
	return nil
}

// Get returns the bound resource, or false when nothing is bound.
func (s *Slot[T]) Get() (*foreign.Handle[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lease == nil {
		return nil, false
	}
	return s.lease.Handle(), true
}

// Bound reports whether a resource is bound.
func (s *Slot[T]) Bound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lease != nil
}

// Clear unbinds the resource. The caller also resets the foreign field to
// null so both sides agree.
func (s *Slot[T]) Clear() {
	s.mu.Lock()
	old := s.lease
	s.lease = nil
	s.mu.Unlock()

	old.Return()
}

// Clone returns a slot bound to the same resource, with its own lease.
func (s *Slot[T]) Clone() (*Slot[T], error) {
	out := &Slot[T]{}
	h, ok := s.Get()
	if !ok {
		return out, nil
	}
	if err := out.Set(h); err != nil {
		return nil, err
	}
	return out, nil
}

// Release returns the lease when the dependent is destroyed.
func (s *Slot[T]) Release() {
	s.Clear()
}

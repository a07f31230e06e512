package borrow

import "github.com/wippyai/gosfml/foreign"

// Binding is a Slot that also remembers the facade owning the bound handle,
// so a getter returns the same value the caller bound.
// The zero value is an empty binding.
type Binding[T foreign.Kind, F any] struct {
	slot Slot[T]
	obj  *F
}

// Set binds h, owned by obj.
func (b *Binding[T, F]) Set(h *foreign.Handle[T], obj *F) error {
	if err := b.slot.Set(h); err != nil {
		return err
	}
	b.obj = obj
	return nil
}

// Get returns the bound facade, or nil.
func (b *Binding[T, F]) Get() *F {
	if !b.slot.Bound() {
		return nil
	}
	return b.obj
}

// Clear unbinds and returns the lease.
func (b *Binding[T, F]) Clear() {
	b.slot.Clear()
	b.obj = nil
}

// CloneInto binds dst to whatever b is bound to.
func (b *Binding[T, F]) CloneInto(dst *Binding[T, F]) error {
	h, ok := b.slot.Get()
	if !ok {
		return nil
	}
	return dst.Set(h, b.obj)
}

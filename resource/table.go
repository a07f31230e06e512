package resource

import (
	"strconv"
	"sync"

	gerrors "github.com/wippyai/gosfml/errors"
)

// UnifiedTable implements the Table interface using a Backend for storage.
type UnifiedTable struct {
	backend   Backend
	observers []Observer
	obsMu     sync.RWMutex
}

var _ Table = (*UnifiedTable)(nil)

// NewTable creates a new unified table with a LocalBackend.
func NewTable() *UnifiedTable {
	return NewTableWithBackend(NewLocalBackend())
}

// NewTableWithBackend creates a table over a custom backend.
func NewTableWithBackend(b Backend) *UnifiedTable {
	return &UnifiedTable{backend: b}
}

// Insert records a live resource owned by value.
// An address that is already live is rejected with an already-owned error.
func (t *UnifiedTable) Insert(kind string, addr uintptr, value any) (Handle, error) {
	handle, err := t.backend.Create(kind, addr, value)
	if err != nil {
		return 0, err
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: handle,
		Kind:   kind,
		Addr:   addr,
		Value:  value,
	})

	return handle, nil
}

// Get returns a snapshot of a live entry.
func (t *UnifiedTable) Get(handle Handle) (Entry, bool) {
	return t.backend.Get(handle)
}

// Lookup finds the live resource at addr.
func (t *UnifiedTable) Lookup(addr uintptr) (Handle, bool) {
	return t.backend.Lookup(addr)
}

// Borrow records one more dependent of handle.
func (t *UnifiedTable) Borrow(handle Handle) error {
	n, ok := t.backend.Borrow(handle)
	if !ok {
		return gerrors.New(gerrors.PhaseBorrow, gerrors.KindReleased).
			Detail("borrow of released resource %s", handleName(handle)).
			Build()
	}

	e, _ := t.backend.Get(handle)
	t.notify(Event{
		Type:    EventBorrowed,
		Handle:  handle,
		Kind:    e.Kind,
		Addr:    e.Addr,
		Borrows: n,
	})
	return nil
}

// ReturnBorrow releases one dependent of handle.
func (t *UnifiedTable) ReturnBorrow(handle Handle) bool {
	n, ok := t.backend.ReturnBorrow(handle)
	if !ok {
		return false
	}

	e, _ := t.backend.Get(handle)
	t.notify(Event{
		Type:    EventBorrowReturned,
		Handle:  handle,
		Kind:    e.Kind,
		Addr:    e.Addr,
		Borrows: n,
	})
	return true
}

// Move records a new owner for handle.
func (t *UnifiedTable) Move(handle Handle, value any) bool {
	if !t.backend.SetValue(handle, value) {
		return false
	}

	e, _ := t.backend.Get(handle)
	t.notify(Event{
		Type:    EventMoved,
		Handle:  handle,
		Kind:    e.Kind,
		Addr:    e.Addr,
		Borrows: e.Borrows,
		Value:   value,
	})
	return true
}

// Drop forgets a resource whose foreign destructor is about to run.
func (t *UnifiedTable) Drop(handle Handle) (Entry, error) {
	e, err := t.backend.Drop(handle)
	if err != nil {
		return e, err
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: handle,
		Kind:   e.Kind,
		Addr:   e.Addr,
		Value:  e.Value,
	})

	return e, nil
}

// Subscribe adds an observer for lifecycle events.
func (t *UnifiedTable) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *UnifiedTable) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Each iterates over all live resources.
func (t *UnifiedTable) Each(fn func(Handle, Entry) bool) {
	t.backend.Each(fn)
}

// Len returns the number of live resources.
func (t *UnifiedTable) Len() int {
	return t.backend.Len()
}

// Close stops accepting resources. Resources still live are reported as leaked.
func (t *UnifiedTable) Close() error {
	return t.backend.Close()
}

func (t *UnifiedTable) notify(e Event) {
	t.obsMu.RLock()
	obs := append([]Observer(nil), t.observers...)
	t.obsMu.RUnlock()
	for _, o := range obs {
		o.OnResourceEvent(e)
	}
}

func handleName(h Handle) string {
	return strconv.FormatUint(uint64(h), 10)
}

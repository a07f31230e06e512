package resource

import (
	"sync"

	gerrors "github.com/wippyai/gosfml/errors"
)

// ErrClosed is returned by operations on a closed backend.
var ErrClosed = gerrors.New(gerrors.PhaseRuntime, gerrors.KindClosed).
	Detail("resource table closed").
	Build()

// LocalBackend is an in-memory resource backend with borrow tracking.
type LocalBackend struct {
	entries  []entry
	freeList []Handle
	byAddr   map[uintptr]Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value       any
	kind        string
	addr        uintptr
	borrowCount uint32
	valid       bool
}

func (e *entry) snapshot() Entry {
	return Entry{Value: e.value, Kind: e.kind, Addr: e.addr, Borrows: e.borrowCount}
}

var _ Backend = (*LocalBackend)(nil)

// NewLocalBackend creates a new in-memory backend.
func NewLocalBackend() *LocalBackend {
	return &LocalBackend{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
		byAddr:   make(map[uintptr]Handle),
	}
}

// Create records a live resource and returns its handle.
func (b *LocalBackend) Create(kind string, addr uintptr, value any) (Handle, error) {
	if addr == 0 {
		return 0, gerrors.NilPointer(gerrors.PhaseCreate, kind+" address")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrClosed
	}
	if h, ok := b.byAddr[addr]; ok {
		return h, gerrors.AlreadyOwned(kind, addr)
	}

	e := entry{
		kind:  kind,
		addr:  addr,
		value: value,
		valid: true,
	}

	var handle Handle
	if len(b.freeList) > 0 {
		handle = b.freeList[len(b.freeList)-1]
		b.freeList = b.freeList[:len(b.freeList)-1]
		b.entries[handle-1] = e
	} else {
		b.entries = append(b.entries, e)
		handle = Handle(len(b.entries))
	}
	b.byAddr[addr] = handle
	return handle, nil
}

// lookup returns the live entry for handle; the caller holds mu.
func (b *LocalBackend) lookup(handle Handle) *entry {
	if handle == 0 {
		return nil
	}
	idx := handle - 1
	if int(idx) >= len(b.entries) {
		return nil
	}
	e := &b.entries[idx]
	if !e.valid {
		return nil
	}
	return e
}

// Get returns a snapshot of a live entry.
func (b *LocalBackend) Get(handle Handle) (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := b.lookup(handle)
	if e == nil {
		return Entry{}, false
	}
	return e.snapshot(), true
}

// Lookup finds the live entry holding addr.
func (b *LocalBackend) Lookup(addr uintptr) (Handle, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	h, ok := b.byAddr[addr]
	return h, ok
}

// Drop removes a resource. Outstanding borrows block the drop.
func (b *LocalBackend) Drop(handle Handle) (Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil {
		return Entry{}, gerrors.NotFound(gerrors.PhaseDestroy, "resource handle", handleName(handle))
	}
	if e.borrowCount > 0 {
		return e.snapshot(), gerrors.OutstandingBorrow(e.kind, e.borrowCount)
	}

	snap := e.snapshot()
	delete(b.byAddr, e.addr)
	*e = entry{}
	b.freeList = append(b.freeList, handle)

	return snap, nil
}

// Borrow increments the borrow count for a handle.
func (b *LocalBackend) Borrow(handle Handle) (uint32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil {
		return 0, false
	}
	e.borrowCount++
	return e.borrowCount, true
}

// ReturnBorrow decrements the borrow count for a handle.
func (b *LocalBackend) ReturnBorrow(handle Handle) (uint32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil || e.borrowCount == 0 {
		return 0, false
	}
	e.borrowCount--
	return e.borrowCount, true
}

// SetValue replaces the owner recorded for a handle.
func (b *LocalBackend) SetValue(handle Handle, value any) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil {
		return false
	}
	e.value = value
	return true
}

// Len returns the number of live resources.
func (b *LocalBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byAddr)
}

// Each iterates over all live resources in handle order.
func (b *LocalBackend) Each(fn func(Handle, Entry) bool) {
	b.mu.RLock()
	snaps := make([]Entry, 0, len(b.byAddr))
	handles := make([]Handle, 0, len(b.byAddr))
	for i := range b.entries {
		if b.entries[i].valid {
			snaps = append(snaps, b.entries[i].snapshot())
			handles = append(handles, Handle(i+1))
		}
	}
	b.mu.RUnlock()

	for i, s := range snaps {
		if !fn(handles[i], s) {
			return
		}
	}
}

// Close stops accepting resources and forgets the ones still recorded.
// Foreign memory behind forgotten entries is not released.
func (b *LocalBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	live := len(b.byAddr)
	b.entries = nil
	b.freeList = nil
	b.byAddr = nil

	if live > 0 {
		return gerrors.Leaked("foreign resource(s)", live)
	}
	return nil
}

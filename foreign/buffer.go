package foreign

import (
	goruntime "runtime"
	"sync"
	"unsafe"
)

// Buffer is a byte slice the library keeps reading after the call that
// received it, such as the data behind a font or music loaded from memory.
// The bytes are copied once and pinned until the last holder releases them.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	pinner goruntime.Pinner
	refs   int
}

// Retain copies data into a new pinned Buffer with one holder.
func Retain(data []byte) *Buffer {
	b := &Buffer{data: append([]byte(nil), data...), refs: 1}
	if len(b.data) > 0 {
		b.pinner.Pin(&b.data[0])
	}
	return b
}

// Ptr returns the address of the first byte, or nil for an empty buffer.
func (b *Buffer) Ptr() unsafe.Pointer {
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&b.data[0])
}

// Len returns the size in bytes.
func (b *Buffer) Len() uintptr {
	return uintptr(len(b.data))
}

// Share adds a holder, for a copy of the resource that reads the same bytes.
func (b *Buffer) Share() *Buffer {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refs++
	return b
}

// Release drops one holder. The last release unpins the bytes.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.refs == 0 {
		return
	}
	b.refs--
	if b.refs == 0 {
		b.pinner.Unpin()
		b.data = nil
	}
}

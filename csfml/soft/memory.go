package soft

import (
	"unsafe"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

// memory resolves the data addresses the backend hands out.
type memory struct {
	b *Backend
}

var _ csfml.Memory = memory{}

func (m memory) get(p ffi.Ptr) any {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	return m.b.data[p]
}

func (m memory) ReadUTF32(p ffi.Ptr) []uint32 {
	units, _ := m.get(p).([]uint32)
	for i, u := range units {
		if u == 0 {
			return append([]uint32(nil), units[:i]...)
		}
	}
	return append([]uint32(nil), units...)
}

func (m memory) ReadCString(p ffi.Ptr) string {
	s, _ := m.get(p).(string)
	return s
}

func (m memory) ReadInt16(p ffi.Ptr, n int) []int16 {
	s, _ := m.get(p).([]int16)
	if n > len(s) {
		n = len(s)
	}
	if n <= 0 {
		return nil
	}
	return append([]int16(nil), s[:n]...)
}

func (m memory) ReadBytes(p ffi.Ptr, n int) []byte {
	s, _ := m.get(p).([]byte)
	if n > len(s) {
		n = len(s)
	}
	if n <= 0 {
		return nil
	}
	return append([]byte(nil), s[:n]...)
}

// utf32At reads a NUL-terminated UTF-32 string passed in by the caller.
func utf32At(p *uint32) []uint32 {
	if p == nil {
		return []uint32{0}
	}
	var out []uint32
	for i := 0; ; i++ {
		u := *(*uint32)(unsafe.Add(unsafe.Pointer(p), i*4))
		out = append(out, u)
		if u == 0 {
			return out
		}
	}
}

// bytesAt copies a caller-provided buffer.
func bytesAt(data unsafe.Pointer, size uintptr) []byte {
	if data == nil || size == 0 {
		return nil
	}
	return append([]byte(nil), unsafe.Slice((*byte)(data), size)...)
}

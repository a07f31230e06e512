package csfml

import (
	"unsafe"

	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
)

var errCallbacksUnsupported = gerrors.Unsupported(gerrors.PhaseCallback, "backend cannot call back into Go")

// Memory reads data the library hands out by address. The addresses stay
// valid until the next call that mutates the owning object.
type Memory interface {
	// ReadUTF32 returns the units of a NUL-terminated UTF-32 string,
	// without the terminator. Null yields nil.
	ReadUTF32(p ffi.Ptr) []uint32

	// ReadCString returns a NUL-terminated narrow string. Null yields "".
	ReadCString(p ffi.Ptr) string

	// ReadInt16 copies n samples starting at p.
	ReadInt16(p ffi.Ptr, n int) []int16

	// ReadBytes copies n bytes starting at p.
	ReadBytes(p ffi.Ptr, n int) []byte
}

// maxCString bounds scans of foreign strings that lack a terminator.
const maxCString = 1 << 20

// ProcessMemory reads addresses that live in this process, as returned by a
// dynamically loaded library.
type ProcessMemory struct{}

var _ Memory = ProcessMemory{}

func (ProcessMemory) ReadUTF32(p ffi.Ptr) []uint32 {
	if p == ffi.Null {
		return nil
	}
	base := unsafe.Pointer(uintptr(p))
	var out []uint32
	for i := uintptr(0); i < maxCString; i++ {
		u := *(*uint32)(unsafe.Add(base, i*4))
		if u == 0 {
			break
		}
		out = append(out, u)
	}
	return out
}

func (ProcessMemory) ReadCString(p ffi.Ptr) string {
	if p == ffi.Null {
		return ""
	}
	base := unsafe.Pointer(uintptr(p))
	n := 0
	for n < maxCString && *(*byte)(unsafe.Add(base, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(base), n))
}

func (ProcessMemory) ReadInt16(p ffi.Ptr, n int) []int16 {
	if p == ffi.Null || n <= 0 {
		return nil
	}
	src := unsafe.Slice((*int16)(unsafe.Pointer(uintptr(p))), n)
	return append([]int16(nil), src...)
}

func (ProcessMemory) ReadBytes(p ffi.Ptr, n int) []byte {
	if p == ffi.Null || n <= 0 {
		return nil
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(p))), n)
	return append([]byte(nil), src...)
}

package wasm

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/ffi"
)

// maxScan bounds reads of strings that lack a terminator.
const maxScan = 1 << 20

// guestMemory reads addresses returned by the guest library.
// Out-of-range reads yield empty results.
type guestMemory struct {
	mem api.Memory
}

var _ csfml.Memory = guestMemory{}

func (m guestMemory) ReadUTF32(p ffi.Ptr) []uint32 {
	if p == ffi.Null {
		return nil
	}
	var out []uint32
	for off := uint32(p); len(out) < maxScan; off += 4 {
		u, ok := m.mem.ReadUint32Le(off)
		if !ok || u == 0 {
			break
		}
		out = append(out, u)
	}
	return out
}

func (m guestMemory) ReadCString(p ffi.Ptr) string {
	if p == ffi.Null {
		return ""
	}
	var out []byte
	for off := uint32(p); len(out) < maxScan; off++ {
		c, ok := m.mem.ReadByte(off)
		if !ok || c == 0 {
			break
		}
		out = append(out, c)
	}
	return string(out)
}

func (m guestMemory) ReadInt16(p ffi.Ptr, n int) []int16 {
	if p == ffi.Null || n <= 0 {
		return nil
	}
	out := make([]int16, 0, n)
	for i := 0; i < n; i++ {
		u, ok := m.mem.ReadUint16Le(uint32(p) + uint32(i)*2)
		if !ok {
			break
		}
		out = append(out, int16(u))
	}
	return out
}

func (m guestMemory) ReadBytes(p ffi.Ptr, n int) []byte {
	if p == ffi.Null || n <= 0 {
		return nil
	}
	b, ok := m.mem.Read(uint32(p), uint32(n))
	if !ok {
		return nil
	}
	return append([]byte(nil), b...)
}

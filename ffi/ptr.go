package ffi

import "fmt"

// Ptr is an opaque address of an object allocated by the foreign library.
type Ptr uintptr

// Null is the address foreign constructors return on failure.
const Null Ptr = 0

// IsNull reports whether p is the failure sentinel.
func (p Ptr) IsNull() bool { return p == Null }

func (p Ptr) String() string {
	if p == Null {
		return "null"
	}
	return fmt.Sprintf("%#x", uintptr(p))
}

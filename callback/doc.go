// Package callback lets the foreign library call back into Go values.
//
// A callback-registering constructor (sfShape_create, sfSoundStream_create,
// sfSoundRecorder_create) takes function pointers plus one opaque user-data
// word. This package supplies both halves:
//
//   - Pin stores a Go value in a table private to its static type and returns
//     the Context handed to the library as user data. The value stays
//     reachable until Unpin.
//   - Trampolines turns the generic functions a facade instantiates for a type
//     into foreign-callable pointers, once per (family, type) and registry.
//
// Inside a trampoline, Lookup[T] resolves the Context back to the value. The
// table is per type: a Context pinned for one type never resolves for another,
// so a trampoline can only ever see values of the type it was generated for.
//
//	p, err := callback.Pin(reg, impl)
//	fns, err := callback.Trampolines[Impl](reg, "shape", countFn, pointFn)
//	ptr := api.Graphics.Shape.Create(fns[0], fns[1], uintptr(p.Context()))
//	if ptr == ffi.Null {
//		p.Unpin() // never invoked with this context
//	}
package callback

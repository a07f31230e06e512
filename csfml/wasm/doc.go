// Package wasm runs a WebAssembly build of CSFML under wazero and binds
// csfml.API to its exports.
//
// The guest must export its linear memory and malloc/free (or alloc/dealloc,
// or cabi_realloc). Arguments follow the wasm32 C ABI as emitted by clang:
//
//   - scalars and structs around a single scalar (sfTime) travel on the stack
//   - other structs are copied into guest memory and passed by pointer
//   - struct results are written through a hidden first pointer argument
//   - strings, UTF-32 text and byte buffers are copied in and freed after
//     the call, except buffers the library keeps (tag retain), which are
//     freed when the object is destroyed
//   - out-pointers such as sfEvent are copied back after the call
//
// Exports whose signature does not match the table are reported missing.
package wasm

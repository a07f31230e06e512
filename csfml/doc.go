// Package csfml describes the C interface of the CSFML libraries as a table
// of Go function fields.
//
// The API struct groups functions by CSFML module (System, Window, Graphics,
// Audio) and by object type inside each module. Every function field carries a
// `sym` tag; the full C symbol is the concatenation of the tags along the
// field path:
//
//	Graphics.Text.SetFont  ->  "sfText_" + "setFont"  ->  sfText_setFont
//
// Backends fill the table:
//
//	csfml/native  - dlopen of the shared libraries through purego
//	csfml/wasm    - a WebAssembly build of the libraries under wazero
//	csfml/soft    - a pure-Go reference implementation for headless use and tests
//
// Fields a backend cannot resolve are replaced by stubs that return zero
// values, so a missing constructor surfaces as a null result instead of a nil
// function call. Missing reports them.
//
// Argument types follow the C ABI: ffi.Ptr for object handles, ffi.Bool for
// sfBool, fixed-layout structs by value, string for narrow file paths,
// *uint32 for NUL-terminated UTF-32 text, unsafe.Pointer followed by a size
// for byte buffers and Callback for function pointers.
//
// Extra tags describe buffers a backend may have to copy:
//
//	elem:"N"       the buffer holds size elements of N bytes (default 1)
//	rgba:"true"    the buffer follows width and height and holds width*height*4 bytes
//	retain:"true"  the library keeps reading the buffer until the object is destroyed
package csfml

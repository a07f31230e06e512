// Package ffi converts between Go values and the encodings the CSFML C ABI
// uses: the sfBool integer, NUL-terminated narrow strings for file paths and
// NUL-terminated UTF-32 arrays for user-visible text.
//
// Foreign objects are referenced through Ptr, an opaque address that is never
// dereferenced on the Go side. Null is the failure sentinel returned by
// foreign constructors.
package ffi

// Package gosfml provides ownership-safe Go bindings for CSFML, the C
// interface of the SFML multimedia library.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	gosfml/
//	├── ffi/             Primitive marshaling: pointers, sfBool, UTF-32 and C strings
//	├── errors/          Structured error types for debugging
//	├── csfml/           The CSFML function table and C layout types
//	│   ├── native/      Backend: dlopen of the shared libraries via purego
//	│   ├── wasm/        Backend: WebAssembly build of CSFML under wazero
//	│   └── soft/        Backend: pure-Go reference used headless and in tests
//	├── resource/        Live-resource table with borrow counts
//	├── runtime/         Backend plus resource table, callback registry and logger
//	├── foreign/         Handle[T]: exactly-once ownership of one foreign object
//	├── borrow/          Slot and Binding: dependents referencing resources
//	├── callback/        Pinned contexts and per-type trampolines
//	├── system/          Time, vectors, Clock
//	├── window/          Video modes, context settings, events
//	├── graphics/        Images, textures, fonts, text, sprites, shapes, render windows
//	└── audio/           Sound buffers, sounds, music, streams, recorders, listener
//
// # Quick Start
//
//	b, err := native.Open(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rt, err := runtime.New(b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	font, err := graphics.NewFontFromFile(rt, "DejaVuSans.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := graphics.NewTextInit(rt, "Hello", font, 24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer text.Close()
//
// # Ownership
//
// Every facade owns exactly one foreign object and releases it exactly once,
// on Close or when the garbage collector finds it unreachable. A dependent
// (a Text showing a Font, a Sprite showing a Texture, a Sound playing a
// SoundBuffer) borrows its resource: the resource refuses Close until every
// dependent has let go, so the library never reads freed memory.
//
// # Thread Safety
//
// CSFML is not thread-safe. A Runtime and every object created from it must
// be used by one goroutine at a time.
package gosfml

package wasm

import "bytes"

// Value types and opcodes used by the test guest.
const (
	i32 byte = 0x7f
	i64 byte = 0x7e
	f32 byte = 0x7d

	opEnd        byte = 0x0b
	opLocalGet   byte = 0x20
	opGlobalGet  byte = 0x23
	opGlobalSet  byte = 0x24
	opI32Load    byte = 0x28
	opI32Load8U  byte = 0x2d
	opI32Store   byte = 0x36
	opI32Const   byte = 0x41
	opI32Add     byte = 0x6a
	opI32And     byte = 0x71
	opI64ExtendU byte = 0xad
)

type guestFunc struct {
	name    string
	params  []byte
	results []byte
	body    []byte
}

type guestGlobal struct {
	name string
	typ  byte
	init []byte
}

// guestModule assembles a minimal core module: one memory page, mutable
// globals and exported functions.
type guestModule struct {
	funcs   []guestFunc
	globals []guestGlobal
}

func uleb(v uint64) []byte {
	var out []byte
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		out = append(out, c)
		if v == 0 {
			return out
		}
	}
}

func sleb(v int64) []byte {
	var out []byte
	for {
		c := byte(v & 0x7f)
		v >>= 7
		done := (v == 0 && c&0x40 == 0) || (v == -1 && c&0x40 != 0)
		if !done {
			c |= 0x80
		}
		out = append(out, c)
		if done {
			return out
		}
	}
}

func i32Const(v int32) []byte {
	return append([]byte{opI32Const}, sleb(int64(v))...)
}

func name(s string) []byte {
	return append(uleb(uint64(len(s))), s...)
}

func vec(items [][]byte) []byte {
	out := uleb(uint64(len(items)))
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

func section(id byte, payload []byte) []byte {
	return append(append([]byte{id}, uleb(uint64(len(payload)))...), payload...)
}

func (m *guestModule) bytes() []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00})

	var types, funcs, codes [][]byte
	for i, f := range m.funcs {
		t := []byte{0x60}
		t = append(t, uleb(uint64(len(f.params)))...)
		t = append(t, f.params...)
		t = append(t, uleb(uint64(len(f.results)))...)
		t = append(t, f.results...)
		types = append(types, t)
		funcs = append(funcs, uleb(uint64(i)))

		body := append([]byte{0x00}, f.body...)
		body = append(body, opEnd)
		codes = append(codes, append(uleb(uint64(len(body))), body...))
	}

	var globals [][]byte
	for _, g := range m.globals {
		gl := []byte{g.typ, 0x01}
		gl = append(gl, g.init...)
		gl = append(gl, opEnd)
		globals = append(globals, gl)
	}

	exports := [][]byte{append(name("memory"), 0x02, 0x00)}
	for i, f := range m.funcs {
		exports = append(exports, append(append(name(f.name), 0x00), uleb(uint64(i))...))
	}
	for i, g := range m.globals {
		if g.name != "" {
			exports = append(exports, append(append(name(g.name), 0x03), uleb(uint64(i))...))
		}
	}

	buf.Write(section(1, vec(types)))
	buf.Write(section(3, vec(funcs)))
	buf.Write(section(5, []byte{0x01, 0x00, 0x01}))
	buf.Write(section(6, vec(globals)))
	buf.Write(section(7, vec(exports)))
	buf.Write(section(10, vec(codes)))
	return buf.Bytes()
}

// Global indices of the test guest.
const (
	gHeap = iota
	gVolume
	gText
	gFrees
)

// testGuest is a fake CSFML build: a bump allocator that counts frees and a
// handful of functions exercising each marshaling path.
func testGuest() []byte {
	cat := func(parts ...[]byte) []byte { return bytes.Join(parts, nil) }
	local := func(i byte) []byte { return []byte{opLocalGet, i} }
	store := func(off uint32) []byte { return append([]byte{opI32Store, 0x02}, uleb(uint64(off))...) }
	f32Init := append([]byte{0x43}, 0, 0, 0, 0)

	m := &guestModule{
		globals: []guestGlobal{
			{typ: i32, init: i32Const(1024)},
			{typ: f32, init: f32Init},
			{typ: i32, init: i32Const(0)},
			{name: "frees", typ: i32, init: i32Const(0)},
		},
		funcs: []guestFunc{
			{
				name: "malloc", params: []byte{i32}, results: []byte{i32},
				body: cat(
					[]byte{opGlobalGet, gHeap},
					[]byte{opGlobalGet, gHeap}, local(0), i32Const(7), []byte{opI32Add},
					i32Const(-8), []byte{opI32And, opI32Add},
					[]byte{opGlobalSet, gHeap},
				),
			},
			{
				name: "free", params: []byte{i32},
				body: cat([]byte{opGlobalGet, gFrees}, i32Const(1), []byte{opI32Add, opGlobalSet, gFrees}),
			},
			{
				// sfVideoMode passed by pointer; valid when width != 0
				name: "sfVideoMode_isValid", params: []byte{i32}, results: []byte{i32},
				body: cat(local(0), []byte{opI32Load, 0x02, 0x00}),
			},
			{
				name: "sfVideoMode_getDesktopMode", params: []byte{i32},
				body: cat(
					local(0), i32Const(1920), store(0),
					local(0), i32Const(1080), store(4),
					local(0), i32Const(32), store(8),
				),
			},
			{
				name: "sfImage_createFromMemory", params: []byte{i32, i32}, results: []byte{i32},
				body: local(0),
			},
			{
				name: "sfClock_getElapsedTime", params: []byte{i32}, results: []byte{i64},
				body: cat(local(0), []byte{opI64ExtendU}),
			},
			{
				// returns the first byte of the path
				name: "sfImage_saveToFile", params: []byte{i32, i32}, results: []byte{i32},
				body: cat(local(1), []byte{opI32Load8U, 0x00, 0x00}),
			},
			{
				name: "sfListener_setGlobalVolume", params: []byte{f32},
				body: cat(local(0), []byte{opGlobalSet, gVolume}),
			},
			{
				name: "sfListener_getGlobalVolume", results: []byte{f32},
				body: []byte{opGlobalGet, gVolume},
			},
			{
				// wrong signature: the table expects (i32) -> i64
				name: "sfClock_restart", results: []byte{i32},
				body: i32Const(0),
			},
			{
				name: "sfFont_createFromMemory", params: []byte{i32, i32}, results: []byte{i32},
				body: local(0),
			},
			{
				name: "sfFont_destroy", params: []byte{i32},
			},
			{
				name: "sfWindow_pollEvent", params: []byte{i32, i32}, results: []byte{i32},
				body: cat(
					local(1), i32Const(7), store(0),
					local(1), i32Const(42), store(4),
					i32Const(1),
				),
			},
			{
				// keeps the address; the bump allocator never reuses it
				name: "sfText_setUnicodeString", params: []byte{i32, i32},
				body: cat(local(1), []byte{opGlobalSet, gText}),
			},
			{
				name: "sfText_getUnicodeString", params: []byte{i32}, results: []byte{i32},
				body: []byte{opGlobalGet, gText},
			},
		},
	}
	return m.bytes()
}

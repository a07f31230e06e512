package wasm

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"
	"unsafe"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/ffi"
)

func openGuest(t *testing.T) *Backend {
	t.Helper()
	b, err := Open(context.Background(), testGuest(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func frees(t *testing.T, b *Backend) uint32 {
	t.Helper()
	g := b.module.ExportedGlobal("frees")
	if g == nil {
		t.Fatal("guest does not export frees")
	}
	return uint32(g.Get())
}

func TestOpen_BindsExports(t *testing.T) {
	b := openGuest(t)
	api := b.API()

	for _, name := range []string{"sfVideoMode_isValid", "sfFont_createFromMemory", "sfWindow_pollEvent"} {
		if api.IsMissing(name) {
			t.Errorf("%s reported missing", name)
		}
	}
	// absent from the guest
	if !api.IsMissing("sfText_create") {
		t.Error("sfText_create should be missing")
	}
	// exported with the wrong signature
	if !api.IsMissing("sfClock_restart") {
		t.Error("sfClock_restart should be missing")
	}
	if got := api.Graphics.Text.Create(); got != ffi.Null {
		t.Errorf("stubbed constructor returned %v", got)
	}
}

func TestCall_IndirectStruct(t *testing.T) {
	b := openGuest(t)
	api := b.API()

	if !api.Window.VideoMode.IsValid(csfml.VideoMode{Width: 800, Height: 600, BitsPerPixel: 32}).Go() {
		t.Error("800x600 should be valid")
	}
	if api.Window.VideoMode.IsValid(csfml.VideoMode{}).Go() {
		t.Error("zero mode should be invalid")
	}
	if n := frees(t, b); n != 2 {
		t.Errorf("frees = %d, want 2 (one copy per call)", n)
	}
}

func TestCall_StructResult(t *testing.T) {
	b := openGuest(t)
	got := b.API().Window.VideoMode.GetDesktopMode()
	want := csfml.VideoMode{Width: 1920, Height: 1080, BitsPerPixel: 32}
	if got != want {
		t.Errorf("GetDesktopMode = %+v, want %+v", got, want)
	}
}

func TestCall_SingleScalarStruct(t *testing.T) {
	b := openGuest(t)
	got := b.API().System.Clock.GetElapsedTime(ffi.Ptr(1234))
	if got.Microseconds != 1234 {
		t.Errorf("GetElapsedTime = %d, want 1234", got.Microseconds)
	}
}

func TestCall_Float(t *testing.T) {
	b := openGuest(t)
	l := b.API().Audio.Listener
	l.SetGlobalVolume(42.5)
	if got := l.GetGlobalVolume(); got != 42.5 {
		t.Errorf("GetGlobalVolume = %v, want 42.5", got)
	}
}

func TestCall_String(t *testing.T) {
	b := openGuest(t)
	if got := b.API().Graphics.Image.SaveToFile(ffi.Ptr(16), "out.png"); got != ffi.Bool('o') {
		t.Errorf("first path byte = %d, want %d", got, 'o')
	}
}

func TestCall_Buffer(t *testing.T) {
	b := openGuest(t)
	data := []byte("not really a png")
	p := b.API().Graphics.Image.CreateFromMemory(unsafe.Pointer(&data[0]), uintptr(len(data)))
	if p == ffi.Null {
		t.Fatal("CreateFromMemory returned null")
	}
	if got := b.API().Memory.ReadBytes(p, len(data)); !bytes.Equal(got, data) {
		t.Errorf("guest copy = %q, want %q", got, data)
	}
	if n := frees(t, b); n != 1 {
		t.Errorf("frees = %d, want 1", n)
	}
	if b.Retained() != 0 {
		t.Errorf("Retained = %d, want 0", b.Retained())
	}
}

func TestCall_RetainedBuffer(t *testing.T) {
	b := openGuest(t)
	font := b.API().Graphics.Font
	data := []byte("font bytes")

	p := font.CreateFromMemory(unsafe.Pointer(&data[0]), uintptr(len(data)))
	if p == ffi.Null {
		t.Fatal("CreateFromMemory returned null")
	}
	if b.Retained() != 1 {
		t.Fatalf("Retained = %d, want 1", b.Retained())
	}
	if n := frees(t, b); n != 0 {
		t.Errorf("frees before destroy = %d, want 0", n)
	}

	font.Destroy(p)
	if b.Retained() != 0 {
		t.Errorf("Retained after destroy = %d", b.Retained())
	}
	if n := frees(t, b); n != 1 {
		t.Errorf("frees after destroy = %d, want 1", n)
	}
}

func TestCall_OutPointer(t *testing.T) {
	b := openGuest(t)
	var ev csfml.Event
	if !b.API().Window.Window.PollEvent(ffi.Ptr(16), &ev).Go() {
		t.Fatal("PollEvent returned false")
	}
	if ev.Type != 7 || ev.Data[0] != 42 {
		t.Errorf("event = %+v", ev)
	}
}

func TestCall_UTF32(t *testing.T) {
	b := openGuest(t)
	text := b.API().Graphics.Text
	buf := ffi.UTF32("héllo")
	text.SetUnicodeString(ffi.Ptr(16), ffi.UTF32Ptr(buf))

	got := b.API().Memory.ReadUTF32(text.GetUnicodeString(ffi.Ptr(16)))
	if ffi.StringFromUTF32(got) != "héllo" {
		t.Errorf("round trip = %q", ffi.StringFromUTF32(got))
	}
}

func TestNewCallback_Unsupported(t *testing.T) {
	b := openGuest(t)
	_, err := b.API().NewCallback(csfml.ShapePointCountFunc(func(uintptr) uintptr { return 0 }))
	if !errors.Is(err, gerrors.ErrUnsupported) {
		t.Errorf("NewCallback: %v, want unsupported", err)
	}
}

func TestOpen_Strict(t *testing.T) {
	_, err := Open(context.Background(), testGuest(), &Config{Strict: true})
	var missing *gerrors.MissingSymbolsError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingSymbolsError", err)
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open(context.Background(), []byte("not wasm"), nil); err == nil {
		t.Error("expected compile error")
	}

	noAlloc := (&guestModule{funcs: []guestFunc{{name: "sfClock_create", results: []byte{i32}, body: i32Const(0)}}}).bytes()
	_, err := Open(context.Background(), noAlloc, nil)
	var e *gerrors.Error
	if !errors.As(err, &e) || e.Kind != gerrors.KindNotFound {
		t.Errorf("no allocator: got %v", err)
	}
}

func TestMismatch_DetailVerbatim(t *testing.T) {
	err := mismatch("sfImage_create", "want 100% of (i32 i32)")
	var e *gerrors.Error
	if !errors.As(err, &e) || e.Kind != gerrors.KindTypeMismatch {
		t.Fatalf("got %v", err)
	}
	if e.Detail != "want 100% of (i32 i32)" {
		t.Errorf("Detail = %q", e.Detail)
	}
	if e.Symbol != "sfImage_create" {
		t.Errorf("Symbol = %q", e.Symbol)
	}
}

func TestClose_StopsCalls(t *testing.T) {
	b, err := Open(context.Background(), testGuest(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := b.API().Window.VideoMode.GetDesktopMode(); got != (csfml.VideoMode{}) {
		t.Errorf("call after close = %+v", got)
	}
	var e *gerrors.Error
	if err := b.Err(); !errors.As(err, &e) || e.Kind != gerrors.KindClosed {
		t.Errorf("Err = %v, want closed", err)
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		v     any
		size  uint32
		align uint32
	}{
		{csfml.Color{}, 4, 1},
		{csfml.Time{}, 8, 8},
		{csfml.Transform{}, 36, 4},
		{csfml.RenderStates{}, 24 + 36 + 4 + 4, 4},
		{csfml.Event{}, 24, 4},
		{csfml.ContextSettings{}, 28, 4},
	}
	for _, tt := range tests {
		typ := reflect.TypeOf(tt.v)
		s, a := sizeAlign(typ)
		if s != tt.size || a != tt.align {
			t.Errorf("%s: size %d align %d, want %d %d", typ, s, a, tt.size, tt.align)
		}
	}

	states := csfml.RenderStates{Transform: csfml.IdentityTransform, Texture: 0x40}
	buf := make([]byte, 68)
	encode(buf, reflect.ValueOf(states))
	var back csfml.RenderStates
	decode(buf, reflect.ValueOf(&back).Elem())
	if back != states {
		t.Errorf("round trip = %+v", back)
	}
}

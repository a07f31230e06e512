package ffi

import (
	"testing"
)

func TestBool(t *testing.T) {
	if BoolOf(true) != True || BoolOf(false) != False {
		t.Fatal("BoolOf mismatch")
	}
	tests := []struct {
		in   Bool
		want bool
	}{
		{False, false},
		{True, true},
		{Bool(2), true},
		{Bool(-1), true},
	}
	for _, tt := range tests {
		if got := tt.in.Go(); got != tt.want {
			t.Errorf("Bool(%d).Go() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUTF32(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []uint32
	}{
		{"empty", "", []uint32{0}},
		{"ascii", "Hi", []uint32{'H', 'i', 0}},
		{"multibyte", "é€😀", []uint32{0xE9, 0x20AC, 0x1F600, 0}},
		{"invalid byte", "a\xffb", []uint32{'a', 0xFFFD, 'b', 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UTF32(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("unit %d = %#x, want %#x", i, got[i], tt.want[i])
				}
			}
			if UTF32Ptr(got) != &got[0] {
				t.Error("UTF32Ptr should point at the first unit")
			}
		})
	}
}

func TestStringFromUTF32(t *testing.T) {
	if got := StringFromUTF32(UTF32("héllo 😀")); got != "héllo 😀" {
		t.Errorf("round trip = %q", got)
	}
	if got := StringFromUTF32([]uint32{'a', 0, 'b'}); got != "a" {
		t.Errorf("should stop at terminator, got %q", got)
	}
	if got := StringFromUTF32([]uint32{'a', 0xD800, 0x110000, 'b'}); got != "ab" {
		t.Errorf("invalid units should be skipped, got %q", got)
	}
	if got := StringFromUTF32(nil); got != "" {
		t.Errorf("nil should decode to empty, got %q", got)
	}
}

func TestDecodeUTF32LE(t *testing.T) {
	b := []byte{
		'O', 0, 0, 0,
		'K', 0, 0, 0,
		0xAC, 0x20, 0, 0,
		0, 0, 0, 0,
		'x', 0, 0, 0,
	}
	got, err := DecodeUTF32LE(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != "OK€" {
		t.Errorf("got %q, want %q", got, "OK€")
	}
}

func TestCString(t *testing.T) {
	b := CString("a.png")
	if len(b) != 6 || b[5] != 0 {
		t.Fatalf("CString should append NUL: %v", b)
	}
	if got := GoString(b); got != "a.png" {
		t.Errorf("GoString = %q", got)
	}
	if got := GoString(nil); got != "" {
		t.Errorf("nil should decode to empty, got %q", got)
	}
	if got := GoString([]byte("no-nul")); got != "no-nul" {
		t.Errorf("unterminated = %q", got)
	}
}

func TestPtr(t *testing.T) {
	if !Null.IsNull() || Ptr(0x10).IsNull() {
		t.Fatal("IsNull mismatch")
	}
	if Null.String() != "null" || Ptr(0x10).String() != "0x10" {
		t.Errorf("String: %s %s", Null, Ptr(0x10))
	}
}

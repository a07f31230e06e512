package ffi

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode/utf32"
)

// UTF32 encodes s as a NUL-terminated sequence of code points.
// Invalid UTF-8 bytes are replaced with U+FFFD.
func UTF32(s string) []uint32 {
	buf := make([]uint32, 0, utf8.RuneCountInString(s)+1)
	for _, r := range s {
		buf = append(buf, uint32(r))
	}
	return append(buf, 0)
}

// UTF32Ptr returns the address of the first unit of buf.
// Buffers produced by UTF32 are never empty.
func UTF32Ptr(buf []uint32) *uint32 {
	if len(buf) == 0 {
		return nil
	}
	return &buf[0]
}

// StringFromUTF32 decodes units up to the first 0.
// Units that are not valid code points are skipped.
func StringFromUTF32(units []uint32) string {
	b := make([]byte, 0, len(units))
	for _, u := range units {
		if u == 0 {
			break
		}
		r := rune(u)
		if u > utf8.MaxRune || !utf8.ValidRune(r) {
			continue
		}
		b = utf8.AppendRune(b, r)
	}
	return string(b)
}

var utf32LE = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)

// DecodeUTF32LE decodes a little-endian byte image of a UTF-32 string,
// as read out of sandboxed guest memory. Decoding stops at the first
// 0 code unit; a trailing partial unit is an error.
func DecodeUTF32LE(b []byte) (string, error) {
	for i := 0; i+4 <= len(b); i += 4 {
		if b[i] == 0 && b[i+1] == 0 && b[i+2] == 0 && b[i+3] == 0 {
			b = b[:i]
			break
		}
	}
	out, err := utf32LE.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// CString returns s as NUL-terminated narrow bytes.
func CString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// GoString decodes a narrow C string, stopping at the first NUL.
// A nil or empty buffer decodes to "".
func GoString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

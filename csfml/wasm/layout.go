package wasm

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/tetratelabs/wazero/api"
)

// sizeAlign returns the wasm32 C layout of t. Pointers and uintptr are
// 32 bits wide in the guest.
func sizeAlign(t reflect.Type) (size, align uint32) {
	switch t.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1, 1
	case reflect.Int16, reflect.Uint16:
		return 2, 2
	case reflect.Int32, reflect.Uint32, reflect.Float32,
		reflect.Int, reflect.Uint, reflect.Uintptr,
		reflect.Pointer, reflect.UnsafePointer, reflect.String:
		return 4, 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8, 8
	case reflect.Array:
		s, a := sizeAlign(t.Elem())
		return s * uint32(t.Len()), a
	case reflect.Struct:
		var off, maxAlign uint32 = 0, 1
		for i := 0; i < t.NumField(); i++ {
			s, a := sizeAlign(t.Field(i).Type)
			off = alignTo(off, a)
			off += s
			maxAlign = max(maxAlign, a)
		}
		return alignTo(off, maxAlign), maxAlign
	}
	return 0, 1
}

func alignTo(off, align uint32) uint32 {
	return (off + align - 1) &^ (align - 1)
}

// scalarLeaf returns the only scalar inside t when t is a struct or array
// built around a single scalar. clang passes such aggregates as that scalar.
func scalarLeaf(t reflect.Type) (reflect.Type, bool) {
	switch t.Kind() {
	case reflect.Struct:
		if t.NumField() != 1 {
			return nil, false
		}
		return scalarLeaf(t.Field(0).Type)
	case reflect.Array:
		if t.Len() != 1 {
			return nil, false
		}
		return scalarLeaf(t.Elem())
	case reflect.Pointer, reflect.UnsafePointer, reflect.String,
		reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return nil, false
	}
	return t, true
}

// valueType maps a scalar Go type to its wasm value type.
func valueType(t reflect.Type) api.ValueType {
	switch t.Kind() {
	case reflect.Int64, reflect.Uint64:
		return api.ValueTypeI64
	case reflect.Float32:
		return api.ValueTypeF32
	case reflect.Float64:
		return api.ValueTypeF64
	}
	return api.ValueTypeI32
}

// lowerScalar encodes a scalar for the wasm stack.
func lowerScalar(v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int:
		return uint64(uint32(int32(v.Int())))
	case reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint, reflect.Uintptr:
		return uint64(uint32(v.Uint()))
	case reflect.Uint64:
		return v.Uint()
	case reflect.Float32:
		return api.EncodeF32(float32(v.Float()))
	case reflect.Float64:
		return api.EncodeF64(v.Float())
	}
	return 0
}

// liftScalar decodes a wasm stack value into a new value of type t.
func liftScalar(t reflect.Type, raw uint64) reflect.Value {
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		v.SetBool(uint32(raw) != 0)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int:
		v.SetInt(int64(int32(uint32(raw))))
	case reflect.Int64:
		v.SetInt(int64(raw))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint, reflect.Uintptr:
		v.SetUint(uint64(uint32(raw)))
	case reflect.Uint64:
		v.SetUint(raw)
	case reflect.Float32:
		v.SetFloat(float64(api.DecodeF32(raw)))
	case reflect.Float64:
		v.SetFloat(api.DecodeF64(raw))
	}
	return v
}

// liftLeaf wraps a scalar into the single-scalar aggregate t.
func liftLeaf(t reflect.Type, raw uint64) reflect.Value {
	switch t.Kind() {
	case reflect.Struct:
		v := reflect.New(t).Elem()
		v.Field(0).Set(liftLeaf(t.Field(0).Type, raw))
		return v
	case reflect.Array:
		v := reflect.New(t).Elem()
		v.Index(0).Set(liftLeaf(t.Elem(), raw))
		return v
	}
	return liftScalar(t, raw)
}

// lowerLeaf extracts the scalar of a single-scalar aggregate.
func lowerLeaf(v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Struct:
		return lowerLeaf(v.Field(0))
	case reflect.Array:
		return lowerLeaf(v.Index(0))
	}
	return lowerScalar(v)
}

// encode writes v into buf using the wasm32 layout. Pointer fields are
// written as null; they cannot refer to guest memory.
func encode(buf []byte, v reflect.Value) {
	le := binary.LittleEndian
	switch v.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		buf[0] = byte(lowerScalar(v))
	case reflect.Int16, reflect.Uint16:
		le.PutUint16(buf, uint16(lowerScalar(v)))
	case reflect.Int32, reflect.Uint32, reflect.Float32, reflect.Int, reflect.Uint, reflect.Uintptr:
		le.PutUint32(buf, uint32(lowerScalar(v)))
	case reflect.Int64, reflect.Uint64:
		le.PutUint64(buf, lowerScalar(v))
	case reflect.Float64:
		le.PutUint64(buf, math.Float64bits(v.Float()))
	case reflect.Pointer, reflect.UnsafePointer, reflect.String:
		le.PutUint32(buf, 0)
	case reflect.Array:
		s, _ := sizeAlign(v.Type().Elem())
		for i := 0; i < v.Len(); i++ {
			encode(buf[uint32(i)*s:], v.Index(i))
		}
	case reflect.Struct:
		var off uint32
		for i := 0; i < v.NumField(); i++ {
			s, a := sizeAlign(v.Field(i).Type())
			off = alignTo(off, a)
			encode(buf[off:], v.Field(i))
			off += s
		}
	}
}

// decode fills dst from buf using the wasm32 layout.
func decode(buf []byte, dst reflect.Value) {
	le := binary.LittleEndian
	switch dst.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		dst.Set(liftScalar(dst.Type(), uint64(buf[0])))
	case reflect.Int16:
		dst.SetInt(int64(int16(le.Uint16(buf))))
	case reflect.Uint16:
		dst.SetUint(uint64(le.Uint16(buf)))
	case reflect.Int32, reflect.Uint32, reflect.Float32, reflect.Int, reflect.Uint, reflect.Uintptr:
		dst.Set(liftScalar(dst.Type(), uint64(le.Uint32(buf))))
	case reflect.Int64, reflect.Uint64:
		dst.Set(liftScalar(dst.Type(), le.Uint64(buf)))
	case reflect.Float64:
		dst.SetFloat(math.Float64frombits(le.Uint64(buf)))
	case reflect.Array:
		s, _ := sizeAlign(dst.Type().Elem())
		for i := 0; i < dst.Len(); i++ {
			decode(buf[uint32(i)*s:], dst.Index(i))
		}
	case reflect.Struct:
		var off uint32
		for i := 0; i < dst.NumField(); i++ {
			s, a := sizeAlign(dst.Field(i).Type())
			off = alignTo(off, a)
			decode(buf[off:], dst.Field(i))
			off += s
		}
	}
}

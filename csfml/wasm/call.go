package wasm

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unsafe"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
)

type argKind uint8

const (
	argScalar   argKind = iota // integers, floats, handles
	argLeaf                    // aggregate around one scalar, passed as that scalar
	argIndirect                // aggregate passed by pointer to a copy
	argString                  // narrow NUL-terminated string
	argUTF32                   // *uint32, NUL-terminated UTF-32 text
	argInOut                   // pointer to a value copied in and back out
	argData                    // unsafe.Pointer to a sized byte buffer
)

type argPlan struct {
	t       reflect.Type
	kind    argKind
	sizeArg int    // argData: index of the element count, -1 for rgba
	elem    uint64 // argData: bytes per element
}

type resultKind uint8

const (
	resultNone resultKind = iota
	resultScalar
	resultLeaf
	resultSret
)

// plan is how one API field maps onto a guest export.
type plan struct {
	fn      api.Function
	name    string
	args    []argPlan
	out     reflect.Type
	params  []api.ValueType
	result  resultKind
	retain  bool
	destroy bool
}

// newPlan derives the guest signature of a field and checks it against the
// export.
func newPlan(sym csfml.Symbol, fn api.Function) (*plan, error) {
	ft := sym.Field.Type()
	p := &plan{
		fn:      fn,
		name:    sym.Name,
		retain:  sym.Tag.Get("retain") == "true",
		destroy: strings.HasSuffix(sym.Name, "_destroy"),
	}

	var results []api.ValueType
	switch ft.NumOut() {
	case 0:
	case 1:
		p.out = ft.Out(0)
		if leaf, ok := scalarLeaf(p.out); ok {
			if p.out.Kind() == reflect.Struct || p.out.Kind() == reflect.Array {
				p.result = resultLeaf
			} else {
				p.result = resultScalar
			}
			results = append(results, valueType(leaf))
		} else if p.out.Kind() == reflect.Struct || p.out.Kind() == reflect.Array {
			p.result = resultSret
			p.params = append(p.params, api.ValueTypeI32)
		} else {
			return nil, mismatch(sym.Name, "unsupported result type "+p.out.String())
		}
	default:
		return nil, mismatch(sym.Name, "more than one result")
	}

	elem := uint64(1)
	if e := sym.Tag.Get("elem"); e != "" {
		n, err := strconv.ParseUint(e, 10, 32)
		if err != nil {
			return nil, mismatch(sym.Name, "bad elem tag "+e)
		}
		elem = n
	}
	rgba := sym.Tag.Get("rgba") == "true"

	for i := 0; i < ft.NumIn(); i++ {
		t := ft.In(i)
		a := argPlan{t: t}
		vt := api.ValueTypeI32
		switch t.Kind() {
		case reflect.String:
			a.kind = argString
		case reflect.UnsafePointer:
			a.kind = argData
			a.elem = elem
			switch {
			case rgba:
				if i < 2 || !isInteger(ft.In(i-1)) || !isInteger(ft.In(i-2)) {
					return nil, mismatch(sym.Name, "rgba buffer without width and height")
				}
				a.sizeArg = -1
				a.elem = 4
			case i+1 < ft.NumIn() && isInteger(ft.In(i+1)):
				a.sizeArg = i + 1
			default:
				return nil, mismatch(sym.Name, "buffer without size")
			}
		case reflect.Pointer:
			if t.Elem().Kind() == reflect.Uint32 {
				a.kind = argUTF32
			} else {
				a.kind = argInOut
			}
		case reflect.Struct, reflect.Array:
			if leaf, ok := scalarLeaf(t); ok {
				a.kind = argLeaf
				vt = valueType(leaf)
			} else {
				a.kind = argIndirect
			}
		default:
			if _, ok := scalarLeaf(t); !ok {
				return nil, mismatch(sym.Name, "unsupported argument type "+t.String())
			}
			a.kind = argScalar
			vt = valueType(t)
		}
		p.args = append(p.args, a)
		p.params = append(p.params, vt)
	}

	def := fn.Definition()
	if !slices.Equal(def.ParamTypes(), p.params) || !slices.Equal(def.ResultTypes(), results) {
		return nil, mismatch(sym.Name, "export signature "+signature(def.ParamTypes(), def.ResultTypes())+
			", expected "+signature(p.params, results))
	}
	return p, nil
}

func isInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func mismatch(symbol, detail string) error {
	return gerrors.New(gerrors.PhaseLoad, gerrors.KindTypeMismatch).
		Symbol(symbol).
		Detail("%s", detail).
		Build()
}

func signature(params, results []api.ValueType) string {
	names := func(ts []api.ValueType) string {
		s := make([]string, len(ts))
		for i, t := range ts {
			s[i] = api.ValueTypeName(t)
		}
		return strings.Join(s, ",")
	}
	return "(" + names(params) + ")->(" + names(results) + ")"
}

// frame tracks guest memory used by one call.
type frame struct {
	temps  []uint32
	data   []uint32
	copies []copyBack
}

type copyBack struct {
	dst  reflect.Value
	ptr  uint32
	size uint32
}

// makeFunc builds the Go function installed into the API field.
func (b *Backend) makeFunc(p *plan, ft reflect.Type) reflect.Value {
	return reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		out, err := b.invoke(p, in)
		if err != nil {
			b.logger.Warn("guest call failed", zap.String("symbol", p.name), zap.Error(err))
			b.setErr(err)
			if p.out == nil {
				return nil
			}
			return []reflect.Value{reflect.Zero(p.out)}
		}
		return out
	})
}

func (b *Backend) invoke(p *plan, in []reflect.Value) ([]reflect.Value, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, gerrors.New(gerrors.PhaseCall, gerrors.KindClosed).Symbol(p.name).Build()
	}

	var f frame
	defer b.release(&f)

	stack := make([]uint64, max(len(p.params), 1))
	k := 0

	var sret uint32
	if p.result == resultSret {
		size, align := sizeAlign(p.out)
		ptr, err := b.alloc.Alloc(b.ctx, size, align)
		if err != nil {
			return nil, err
		}
		f.temps = append(f.temps, ptr)
		sret = ptr
		stack[k] = uint64(ptr)
		k++
	}

	for i, a := range p.args {
		raw, err := b.lower(&f, a, in, i)
		if err != nil {
			return nil, err
		}
		stack[k] = raw
		k++
	}

	if err := p.fn.CallWithStack(b.ctx, stack); err != nil {
		return nil, gerrors.New(gerrors.PhaseCall, gerrors.KindInvalidData).
			Symbol(p.name).
			Detail("guest trapped").
			Cause(err).
			Build()
	}

	for _, c := range f.copies {
		buf, ok := b.memory.Read(c.ptr, c.size)
		if !ok {
			return nil, outOfRange(p.name, c.ptr, c.size)
		}
		decode(buf, c.dst)
	}

	var out []reflect.Value
	switch p.result {
	case resultScalar:
		out = []reflect.Value{liftScalar(p.out, stack[0])}
	case resultLeaf:
		out = []reflect.Value{liftLeaf(p.out, stack[0])}
	case resultSret:
		size, _ := sizeAlign(p.out)
		buf, ok := b.memory.Read(sret, size)
		if !ok {
			return nil, outOfRange(p.name, sret, size)
		}
		v := reflect.New(p.out).Elem()
		decode(buf, v)
		out = []reflect.Value{v}
	}

	if p.retain && len(f.data) > 0 && p.result == resultScalar {
		if obj := uint32(stack[0]); obj != 0 {
			b.retained[obj] = append(b.retained[obj], f.data...)
			f.data = nil
		}
	}
	if p.destroy && len(in) == 1 {
		obj := uint32(in[0].Uint())
		for _, ptr := range b.retained[obj] {
			b.alloc.Free(b.ctx, ptr)
		}
		delete(b.retained, obj)
	}
	return out, nil
}

// lower converts argument i to its wasm stack value, copying indirect data
// into guest memory.
func (b *Backend) lower(f *frame, a argPlan, in []reflect.Value, i int) (uint64, error) {
	v := in[i]
	switch a.kind {
	case argScalar:
		return lowerScalar(v), nil
	case argLeaf:
		return lowerLeaf(v), nil
	case argIndirect:
		size, align := sizeAlign(a.t)
		buf := make([]byte, size)
		encode(buf, v)
		return b.put(&f.temps, buf, align)
	case argString:
		return b.put(&f.temps, append([]byte(v.String()), 0), 1)
	case argUTF32:
		if v.IsNil() {
			return 0, nil
		}
		base := v.UnsafePointer()
		var buf []byte
		for n := uintptr(0); n < maxScan; n++ {
			u := *(*uint32)(unsafe.Add(base, n*4))
			buf = append(buf, byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
			if u == 0 {
				break
			}
		}
		return b.put(&f.temps, buf, 4)
	case argInOut:
		if v.IsNil() {
			return 0, nil
		}
		size, align := sizeAlign(a.t.Elem())
		buf := make([]byte, size)
		encode(buf, v.Elem())
		raw, err := b.put(&f.temps, buf, align)
		if err != nil {
			return 0, err
		}
		f.copies = append(f.copies, copyBack{dst: v.Elem(), ptr: uint32(raw), size: size})
		return raw, nil
	case argData:
		src := v.UnsafePointer()
		if src == nil {
			return 0, nil
		}
		var n uint64
		if a.sizeArg < 0 {
			n = integer(in[i-2]) * integer(in[i-1]) * a.elem
		} else {
			n = integer(in[a.sizeArg]) * a.elem
		}
		if n > maxBuffer {
			return 0, gerrors.InvalidInput(gerrors.PhaseCall, "buffer larger than guest address space")
		}
		return b.put(&f.data, unsafe.Slice((*byte)(src), n), 8)
	}
	return 0, nil
}

// maxBuffer bounds a single copy into wasm32 memory.
const maxBuffer = 1<<32 - 1

func integer(v reflect.Value) uint64 {
	if v.CanInt() {
		return uint64(v.Int())
	}
	return v.Uint()
}

// put copies buf into a fresh guest block recorded in list.
func (b *Backend) put(list *[]uint32, buf []byte, align uint32) (uint64, error) {
	ptr, err := b.alloc.Alloc(b.ctx, uint32(len(buf)), align)
	if err != nil {
		return 0, err
	}
	*list = append(*list, ptr)
	if !b.memory.Write(ptr, buf) {
		return 0, outOfRange("", ptr, uint32(len(buf)))
	}
	return uint64(ptr), nil
}

func (b *Backend) release(f *frame) {
	for _, ptr := range f.temps {
		b.alloc.Free(b.ctx, ptr)
	}
	for _, ptr := range f.data {
		b.alloc.Free(b.ctx, ptr)
	}
}

func outOfRange(symbol string, ptr, size uint32) error {
	return gerrors.New(gerrors.PhaseCall, gerrors.KindInvalidData).
		Symbol(symbol).
		Detail("guest memory [%#x, +%d) out of range", ptr, size).
		Build()
}

package csfml

import (
	"reflect"
	"sort"
)

// Symbol describes one function field of the API table.
type Symbol struct {
	Library string
	Name    string
	Tag     reflect.StructTag
	Field   reflect.Value
}

// Key returns the "library#symbol" form used in missing-symbol reports.
func (s Symbol) Key() string {
	return s.Library + "#" + s.Name
}

// Symbols enumerates every function field of the table in declaration order.
// Field values are settable.
func (a *API) Symbols() []Symbol {
	var out []Symbol
	v := reflect.ValueOf(a).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		lib, ok := f.Tag.Lookup("lib")
		if !ok {
			continue
		}
		out = walk(v.Field(i), lib, f.Tag.Get("sym"), out)
	}
	return out
}

func walk(v reflect.Value, lib, prefix string, out []Symbol) []Symbol {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		switch f.Type.Kind() {
		case reflect.Struct:
			// embedded groups inherit the parent prefix
			p := prefix
			if !f.Anonymous {
				p = f.Tag.Get("sym")
			}
			out = walk(fv, lib, p, out)
		case reflect.Func:
			out = append(out, Symbol{
				Library: lib,
				Name:    prefix + f.Tag.Get("sym"),
				Tag:     f.Tag,
				Field:   fv,
			})
		}
	}
	return out
}

// Lookup returns the field bound to a C symbol name.
func (a *API) Lookup(name string) (Symbol, bool) {
	for _, s := range a.Symbols() {
		if s.Name == name {
			return s, true
		}
	}
	return Symbol{}, false
}

// StubMissing replaces every nil function field with a stub returning zero
// values and records it as missing. It returns the number of stubs installed.
func (a *API) StubMissing() int {
	n := 0
	for _, s := range a.Symbols() {
		if !s.Field.IsNil() {
			continue
		}
		s.Field.Set(ZeroFunc(s.Field.Type()))
		a.MarkMissing(s.Key())
		n++
	}
	if a.NewCallback == nil {
		a.NewCallback = func(any) (Callback, error) { return 0, errCallbacksUnsupported }
	}
	return n
}

// MarkMissing records a "library#symbol" key as unresolved.
func (a *API) MarkMissing(key string) {
	for _, k := range a.missing {
		if k == key {
			return
		}
	}
	a.missing = append(a.missing, key)
}

// Missing returns the sorted "library#symbol" keys of unresolved functions.
func (a *API) Missing() []string {
	out := append([]string(nil), a.missing...)
	sort.Strings(out)
	return out
}

// IsMissing reports whether a C symbol was replaced by a stub.
func (a *API) IsMissing(name string) bool {
	for _, k := range a.missing {
		if k == name || (len(k) > len(name) && k[len(k)-len(name)-1] == '#' && k[len(k)-len(name):] == name) {
			return true
		}
	}
	return false
}

// ZeroFunc builds a function of type t that ignores its arguments and
// returns zero values.
func ZeroFunc(t reflect.Type) reflect.Value {
	return reflect.MakeFunc(t, func([]reflect.Value) []reflect.Value {
		out := make([]reflect.Value, t.NumOut())
		for i := range out {
			out[i] = reflect.Zero(t.Out(i))
		}
		return out
	})
}

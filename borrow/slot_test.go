package borrow_test

import (
	"errors"
	"testing"

	"github.com/wippyai/gosfml/borrow"
	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/csfml/soft"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/foreign"
	"github.com/wippyai/gosfml/runtime"
)

func newTextures(t *testing.T, n int) (*runtime.Runtime, []*foreign.Handle[csfml.Texture]) {
	t.Helper()
	b, err := soft.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	rt, err := runtime.New(b)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = rt.Close() })

	out := make([]*foreign.Handle[csfml.Texture], n)
	for i := range out {
		out[i], err = foreign.Acquire[csfml.Texture](rt, rt.API().Graphics.Texture.Create(4, 4))
		if err != nil {
			t.Fatal(err)
		}
	}
	return rt, out
}

func borrows(t *testing.T, rt *runtime.Runtime, h *foreign.Handle[csfml.Texture]) uint32 {
	t.Helper()
	e, ok := rt.Resources().Get(h.ID())
	if !ok {
		t.Fatal("resource not in table")
	}
	return e.Borrows
}

func TestSlotSetGet(t *testing.T) {
	rt, tex := newTextures(t, 2)
	var s borrow.Slot[csfml.Texture]

	if _, ok := s.Get(); ok {
		t.Fatal("empty slot returned a resource")
	}
	if err := s.Set(tex[0]); err != nil {
		t.Fatal(err)
	}
	if got, ok := s.Get(); !ok || got != tex[0] {
		t.Fatalf("Get = %v, %v", got, ok)
	}

	if err := s.Set(tex[1]); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Get(); got != tex[1] {
		t.Error("rebind did not replace")
	}
	if n := borrows(t, rt, tex[0]); n != 0 {
		t.Errorf("old resource still has %d borrow(s)", n)
	}
	if n := borrows(t, rt, tex[1]); n != 1 {
		t.Errorf("new resource has %d borrow(s), want 1", n)
	}
}

func TestSlotRebindSame(t *testing.T) {
	rt, tex := newTextures(t, 1)
	var s borrow.Slot[csfml.Texture]

	s.Set(tex[0])
	s.Set(tex[0])
	if n := borrows(t, rt, tex[0]); n != 1 {
		t.Errorf("borrows = %d, want 1", n)
	}
}

func TestSlotBlocksClose(t *testing.T) {
	_, tex := newTextures(t, 1)
	var s borrow.Slot[csfml.Texture]
	s.Set(tex[0])

	if err := tex[0].Close(); !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Fatalf("Close = %v, want outstanding borrow", err)
	}
	s.Clear()
	if s.Bound() {
		t.Error("slot bound after Clear")
	}
	if _, ok := s.Get(); ok {
		t.Error("Get after Clear returned a resource")
	}
	if err := tex[0].Close(); err != nil {
		t.Fatal(err)
	}
}

func TestSlotClone(t *testing.T) {
	rt, tex := newTextures(t, 1)
	var s borrow.Slot[csfml.Texture]
	s.Set(tex[0])

	c, err := s.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Get(); got != tex[0] {
		t.Error("clone bound to a different resource")
	}
	if n := borrows(t, rt, tex[0]); n != 2 {
		t.Errorf("borrows = %d, want 2", n)
	}
	s.Release()
	c.Release()
	if n := borrows(t, rt, tex[0]); n != 0 {
		t.Errorf("borrows after release = %d", n)
	}

	var empty borrow.Slot[csfml.Texture]
	ec, err := empty.Clone()
	if err != nil || ec.Bound() {
		t.Errorf("clone of empty slot = %v, %v", ec, err)
	}
}

func TestSlotSetReleased(t *testing.T) {
	_, tex := newTextures(t, 1)
	tex[0].Close()

	var s borrow.Slot[csfml.Texture]
	if err := s.Set(tex[0]); !errors.Is(err, gerrors.ErrReleased) {
		t.Errorf("Set = %v, want released", err)
	}
	if s.Bound() {
		t.Error("failed Set bound the slot")
	}
}

// owner stands in for the facade that owns a texture handle.
type owner struct {
	name string
}

func TestBindingKeepsFacade(t *testing.T) {
	rt, tex := newTextures(t, 1)
	a := &owner{name: "a"}

	var b borrow.Binding[csfml.Texture, owner]
	if b.Get() != nil {
		t.Fatal("empty binding returned a facade")
	}
	if err := b.Set(tex[0], a); err != nil {
		t.Fatal(err)
	}
	if b.Get() != a {
		t.Error("Get did not return the bound facade")
	}

	var c borrow.Binding[csfml.Texture, owner]
	if err := b.CloneInto(&c); err != nil {
		t.Fatal(err)
	}
	if c.Get() != a || borrows(t, rt, tex[0]) != 2 {
		t.Errorf("clone = %v, borrows = %d", c.Get(), borrows(t, rt, tex[0]))
	}

	b.Clear()
	c.Clear()
	if b.Get() != nil || borrows(t, rt, tex[0]) != 0 {
		t.Error("binding not cleared")
	}
	if err := tex[0].Close(); err != nil {
		t.Fatal(err)
	}
}

package resource

import (
	"errors"
	"testing"

	gerrors "github.com/wippyai/gosfml/errors"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

func TestUnifiedTable_Basic(t *testing.T) {
	table := NewTable()

	// Insert
	h, err := table.Insert("sfFont", 0x1000, "owner")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	// Get
	e, ok := table.Get(h)
	if !ok {
		t.Fatal("Get failed")
	}
	if e.Value != "owner" || e.Kind != "sfFont" || e.Addr != 0x1000 {
		t.Fatalf("Unexpected entry %+v", e)
	}

	// Lookup by address
	got, ok := table.Lookup(0x1000)
	if !ok || got != h {
		t.Fatalf("Lookup = %d, %v", got, ok)
	}

	// Drop
	e, err = table.Drop(h)
	if err != nil {
		t.Fatalf("Drop failed: %v", err)
	}
	if e.Value != "owner" {
		t.Fatalf("Expected 'owner', got %v", e.Value)
	}

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Drop")
	}
	if _, ok := table.Lookup(0x1000); ok {
		t.Fatal("Lookup should fail after Drop")
	}

	// second drop is not found
	if _, err := table.Drop(h); err == nil {
		t.Fatal("second Drop should fail")
	}
}

func TestUnifiedTable_DuplicateAddress(t *testing.T) {
	table := NewTable()

	h, err := table.Insert("sfTexture", 0x2000, "first")
	if err != nil {
		t.Fatal(err)
	}

	_, err = table.Insert("sfTexture", 0x2000, "second")
	if !errors.Is(err, gerrors.ErrAlreadyOwned) {
		t.Fatalf("Expected already-owned error, got %v", err)
	}

	// the first owner is untouched
	e, _ := table.Get(h)
	if e.Value != "first" {
		t.Fatalf("Owner changed to %v", e.Value)
	}

	// the address can be reused once dropped
	if _, err := table.Drop(h); err != nil {
		t.Fatal(err)
	}
	if _, err := table.Insert("sfImage", 0x2000, "third"); err != nil {
		t.Fatalf("Reinsert failed: %v", err)
	}
}

func TestUnifiedTable_NullAddress(t *testing.T) {
	table := NewTable()
	if _, err := table.Insert("sfFont", 0, nil); err == nil {
		t.Fatal("Expected null address to be rejected")
	}
}

func TestUnifiedTable_Borrows(t *testing.T) {
	table := NewTable()
	h, _ := table.Insert("sfFont", 0x1000, nil)

	if err := table.Borrow(h); err != nil {
		t.Fatal(err)
	}
	if err := table.Borrow(h); err != nil {
		t.Fatal(err)
	}

	e, _ := table.Get(h)
	if e.Borrows != 2 {
		t.Fatalf("Expected 2 borrows, got %d", e.Borrows)
	}

	_, err := table.Drop(h)
	if !errors.Is(err, gerrors.ErrOutstandingBorrow) {
		t.Fatalf("Expected outstanding borrow error, got %v", err)
	}
	if table.Len() != 1 {
		t.Fatal("Refused drop must keep the entry")
	}

	if !table.ReturnBorrow(h) || !table.ReturnBorrow(h) {
		t.Fatal("ReturnBorrow failed")
	}
	if table.ReturnBorrow(h) {
		t.Fatal("ReturnBorrow below zero should fail")
	}
	if _, err := table.Drop(h); err != nil {
		t.Fatalf("Drop after returns failed: %v", err)
	}

	if err := table.Borrow(h); !errors.Is(err, gerrors.ErrReleased) {
		t.Fatalf("Borrow of dropped handle: %v", err)
	}
}

func TestUnifiedTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	h, _ := table.Insert("sfText", 0x1000, "a")
	table.Borrow(h)
	table.ReturnBorrow(h)
	table.Move(h, "b")
	table.Drop(h)

	want := []EventType{EventCreated, EventBorrowed, EventBorrowReturned, EventMoved, EventDropped}
	if len(obs.events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(obs.events))
	}
	for i, e := range obs.events {
		if e.Type != want[i] {
			t.Errorf("event %d = %s, want %s", i, e.Type, want[i])
		}
		if e.Handle != h || e.Kind != "sfText" || e.Addr != 0x1000 {
			t.Errorf("event %d has wrong identity: %+v", i, e)
		}
	}
	if obs.events[1].Borrows != 1 || obs.events[2].Borrows != 0 {
		t.Error("borrow counts not reported")
	}
	if obs.events[4].Value != "b" {
		t.Error("drop should report the moved-to owner")
	}

	// Unsubscribe
	table.Unsubscribe(obs)
	table.Insert("sfText", 0x2000, nil)
	if len(obs.events) != len(want) {
		t.Fatal("Should not receive events after Unsubscribe")
	}
}

func TestUnifiedTable_Each(t *testing.T) {
	table := NewTable()
	table.Insert("sfImage", 0x1000, nil)
	table.Insert("sfFont", 0x1010, nil)
	table.Insert("sfText", 0x1020, nil)

	var kinds []string
	table.Each(func(_ Handle, e Entry) bool {
		kinds = append(kinds, e.Kind)
		return true
	})
	if len(kinds) != 3 || kinds[0] != "sfImage" || kinds[2] != "sfText" {
		t.Fatalf("Each visited %v", kinds)
	}

	n := 0
	table.Each(func(Handle, Entry) bool {
		n++
		return false
	})
	if n != 1 {
		t.Fatalf("Each should stop early, visited %d", n)
	}
}

func TestUnifiedTable_HandleReuse(t *testing.T) {
	table := NewTable()
	h1, _ := table.Insert("sfClock", 0x1000, nil)
	table.Drop(h1)
	h2, _ := table.Insert("sfClock", 0x1010, nil)
	if h2 != h1 {
		t.Fatalf("Expected freed handle %d to be reused, got %d", h1, h2)
	}
}

func TestUnifiedTable_Close(t *testing.T) {
	table := NewTable()
	if err := table.Close(); err != nil {
		t.Fatalf("Close of empty table failed: %v", err)
	}

	table = NewTable()
	table.Insert("sfFont", 0x1000, nil)
	table.Insert("sfText", 0x1010, nil)

	err := table.Close()
	var gerr *gerrors.Error
	if !errors.As(err, &gerr) || gerr.Kind != gerrors.KindLeaked {
		t.Fatalf("Expected leak report, got %v", err)
	}
	if gerr.Value != 2 {
		t.Fatalf("Expected 2 leaked, got %v", gerr.Value)
	}

	// Insert should fail after Close
	if _, err := table.Insert("sfFont", 0x2000, nil); !errors.Is(err, ErrClosed) {
		t.Fatalf("Expected ErrClosed, got %v", err)
	}

	// Close is idempotent
	if err := table.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}
}

// Package resource records every live foreign resource of a runtime.
//
// Each foreign object owned by a Go handle has one entry, keyed by its
// address. The table rejects a second entry for a live address, which keeps
// ownership single even when the library hands the same pointer back twice:
//
//	table := resource.NewTable()
//	h, err := table.Insert("sfFont", addr, owner)
//	_, err = table.Insert("sfFont", addr, other) // already owned
//
// # Borrows
//
// Dependents that keep a reference into a resource register a borrow. Drop
// refuses while borrows are outstanding, so a resource cannot be destroyed
// under a text, sprite or sound still pointing at it:
//
//	table.Borrow(h)
//	_, err := table.Drop(h)  // outstanding borrow
//	table.ReturnBorrow(h)
//	_, err = table.Drop(h)   // ok
//
// # Observers
//
// Observers receive EventCreated, EventBorrowed, EventBorrowReturned,
// EventMoved and EventDropped synchronously, in the order the operations
// happen. They are used for logging and by tests counting lifecycle events.
//
// Close reports entries still live as a leak. The table never calls foreign
// destructors itself.
package resource

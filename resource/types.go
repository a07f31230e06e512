package resource

// Handle is an opaque reference to a live foreign resource in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Event types for resource lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
	EventBorrowed
	EventBorrowReturned
	EventMoved
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	case EventBorrowed:
		return "borrowed"
	case EventBorrowReturned:
		return "borrow-returned"
	case EventMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// Event represents a resource lifecycle event.
type Event struct {
	Value   any
	Kind    string
	Addr    uintptr
	Borrows uint32
	Handle  Handle
	Type    EventType
}

// Observer receives notifications about resource lifecycle events.
// Observers are called synchronously with no table lock held.
type Observer interface {
	OnResourceEvent(Event)
}

// Entry is a snapshot of one live resource.
type Entry struct {
	// Value is the current owner of the resource.
	Value   any
	Kind    string
	Addr    uintptr
	Borrows uint32
}

// Backend provides the underlying storage mechanism for resources.
type Backend interface {
	// Create records a live resource. It fails if addr is already live.
	Create(kind string, addr uintptr, value any) (Handle, error)

	// Get returns a snapshot of a live entry.
	Get(handle Handle) (Entry, bool)

	// Lookup finds the live entry holding addr.
	Lookup(addr uintptr) (Handle, bool)

	// Drop removes a resource and returns its last snapshot.
	// It fails if the handle is invalid or has outstanding borrows.
	Drop(handle Handle) (Entry, error)

	// Borrow increments the borrow count for a handle.
	Borrow(handle Handle) (uint32, bool)

	// ReturnBorrow decrements the borrow count for a handle.
	ReturnBorrow(handle Handle) (uint32, bool)

	// SetValue replaces the owner recorded for a handle.
	SetValue(handle Handle, value any) bool

	// Each iterates over all live resources.
	Each(fn func(Handle, Entry) bool)

	// Len returns the number of live resources.
	Len() int

	// Close stops accepting resources and forgets the ones still recorded.
	Close() error
}

// Table manages live resources with observer support.
type Table interface {
	Insert(kind string, addr uintptr, value any) (Handle, error)
	Get(handle Handle) (Entry, bool)
	Lookup(addr uintptr) (Handle, bool)
	Borrow(handle Handle) error
	ReturnBorrow(handle Handle) bool
	Move(handle Handle, value any) bool
	Drop(handle Handle) (Entry, error)
	Subscribe(Observer)
	Unsubscribe(Observer)
	Each(fn func(Handle, Entry) bool)
	Len() int
	Close() error
}

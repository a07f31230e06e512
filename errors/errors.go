package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Phase indicates where in the binding layer the error occurred
type Phase string

const (
	PhaseCreate   Phase = "create"   // foreign constructor calls
	PhaseDestroy  Phase = "destroy"  // release of owned resources
	PhaseCopy     Phase = "copy"     // foreign copy calls
	PhaseBorrow   Phase = "borrow"   // dependent -> resource references
	PhaseCallback Phase = "callback" // trampoline generation and contexts
	PhaseLoad     Phase = "load"     // backend loading and symbol binding
	PhaseCall     Phase = "call"     // plain foreign calls
	PhaseDecode   Phase = "decode"   // data read back from the library
	PhaseConfig   Phase = "config"   // configuration parsing
	PhaseRuntime  Phase = "runtime"  // runtime bookkeeping
)

// Kind categorizes the error
type Kind string

const (
	KindConstruction      Kind = "construction_failed"
	KindReleased          Kind = "released"
	KindOutstandingBorrow Kind = "outstanding_borrow"
	KindAlreadyOwned      Kind = "already_owned"
	KindUnsupported       Kind = "unsupported"
	KindNotFound          Kind = "not_found"
	KindInvalidInput      Kind = "invalid_input"
	KindInvalidData       Kind = "invalid_data"
	KindSymbolMissing     Kind = "symbol_missing"
	KindTypeMismatch      Kind = "type_mismatch"
	KindNilPointer        Kind = "nil_pointer"
	KindClaimed           Kind = "claimed"
	KindLeaked            Kind = "leaked"
	KindClosed            Kind = "closed"
	KindNotOwner          Kind = "not_owner"
)

// Error is the structured error type used throughout the bindings
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string
	Symbol   string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Resource != "" || e.Symbol != "" {
		b.WriteString(": ")
		if e.Resource != "" && e.Symbol != "" {
			b.WriteString(e.Resource)
			b.WriteString(" via ")
			b.WriteString(e.Symbol)
		} else if e.Resource != "" {
			b.WriteString(e.Resource)
		} else {
			b.WriteString(e.Symbol)
		}
	}

	if e.Detail != "" {
		if e.Resource != "" || e.Symbol != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase == "" {
			return e.Kind == t.Kind
		}
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is checks that only care about the category.
var (
	ErrConstruction      = &Error{Kind: KindConstruction}
	ErrReleased          = &Error{Kind: KindReleased}
	ErrOutstandingBorrow = &Error{Kind: KindOutstandingBorrow}
	ErrAlreadyOwned      = &Error{Kind: KindAlreadyOwned}
	ErrUnsupported       = &Error{Kind: KindUnsupported}
	ErrClaimed           = &Error{Kind: KindClaimed}
	ErrNotOwner          = &Error{Kind: KindNotOwner}
)

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Resource sets the foreign resource kind (e.g. "sfFont")
func (b *Builder) Resource(kind string) *Builder {
	b.err.Resource = kind
	return b
}

// Symbol sets the foreign symbol involved
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ConstructionFailed reports that a foreign constructor returned the null sentinel.
func ConstructionFailed(resource, symbol string) *Error {
	return &Error{
		Phase:    PhaseCreate,
		Kind:     KindConstruction,
		Resource: resource,
		Symbol:   symbol,
		Detail:   "foreign constructor returned null",
	}
}

// CopyFailed reports that a foreign copy returned the null sentinel.
func CopyFailed(resource string) *Error {
	return &Error{
		Phase:    PhaseCopy,
		Kind:     KindConstruction,
		Resource: resource,
		Detail:   "foreign copy returned null",
	}
}

// Released reports use of a handle after its resource was released or moved.
func Released(resource string) *Error {
	return &Error{
		Phase:    PhaseRuntime,
		Kind:     KindReleased,
		Resource: resource,
		Detail:   "handle no longer owns a resource",
	}
}

// OutstandingBorrow reports a release refused because dependents still reference the resource.
func OutstandingBorrow(resource string, count uint32) *Error {
	return &Error{
		Phase:    PhaseDestroy,
		Kind:     KindOutstandingBorrow,
		Resource: resource,
		Detail:   fmt.Sprintf("%d dependent(s) still borrow this resource", count),
		Value:    count,
	}
}

// AlreadyOwned reports a second acquisition of an address that is already owned.
func AlreadyOwned(resource string, addr uintptr) *Error {
	return &Error{
		Phase:    PhaseCreate,
		Kind:     KindAlreadyOwned,
		Resource: resource,
		Detail:   fmt.Sprintf("address %#x is already owned by a live handle", addr),
		Value:    addr,
	}
}

// NotOwner reports an attempt to release a resource through a view that
// does not own it.
func NotOwner(resource string) *Error {
	return &Error{
		Phase:    PhaseDestroy,
		Kind:     KindNotOwner,
		Resource: resource,
		Detail:   "resource is owned by another object",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Detail: what + " is nil",
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Claimed reports a singleton that is already claimed on a runtime.
func Claimed(name string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindClaimed,
		Detail: fmt.Sprintf("%s is already claimed", name),
	}
}

// Leaked reports resources still alive when their owner shut down.
func Leaked(what string, count int) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindLeaked,
		Detail: fmt.Sprintf("%d %s still alive", count, what),
		Value:  count,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a backend loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a configuration parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// MissingSymbol represents a single unresolved foreign symbol
type MissingSymbol struct {
	Library string // e.g., "graphics"
	Name    string // e.g., "sfText_create"
}

// MissingSymbolsError is returned when a backend cannot resolve symbols it was asked to bind
type MissingSymbolsError struct {
	Symbols []MissingSymbol
}

// NewMissingSymbolsError creates an error from a list of "library#symbol" strings
func NewMissingSymbolsError(symbols []string) *MissingSymbolsError {
	result := &MissingSymbolsError{
		Symbols: make([]MissingSymbol, 0, len(symbols)),
	}
	for _, s := range symbols {
		lib, name := parseSymbolKey(s)
		result.Symbols = append(result.Symbols, MissingSymbol{
			Library: lib,
			Name:    name,
		})
	}
	return result
}

func parseSymbolKey(key string) (library, name string) {
	lib, sym, found := strings.Cut(key, "#")
	if found {
		return lib, sym
	}
	return "", key
}

func (e *MissingSymbolsError) Error() string {
	if len(e.Symbols) == 0 {
		return "[load] symbol_missing: no symbols specified"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("missing %d foreign symbol(s):\n", len(e.Symbols)))

	// Group by library for cleaner output
	byLib := make(map[string][]string)
	var libOrder []string
	for _, s := range e.Symbols {
		lib := s.Library
		if lib == "" {
			lib = "(unknown)"
		}
		if _, exists := byLib[lib]; !exists {
			libOrder = append(libOrder, lib)
		}
		byLib[lib] = append(byLib[lib], s.Name)
	}

	for _, lib := range libOrder {
		names := byLib[lib]
		sort.Strings(names)
		b.WriteString("\n  ")
		b.WriteString(lib)
		b.WriteString(":\n")
		for _, name := range names {
			b.WriteString("    - ")
			b.WriteString(name)
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *MissingSymbolsError) Is(target error) bool {
	_, ok := target.(*MissingSymbolsError)
	return ok
}

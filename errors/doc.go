// Package errors provides structured error types for the gosfml bindings.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the foreign resource kind, the foreign symbol involved
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCreate, errors.KindConstruction).
//		Resource("sfFont").
//		Symbol("sfFont_createFromMemory").
//		Detail("empty buffer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ConstructionFailed("sfFont", "sfFont_createFromFile")
//	err := errors.OutstandingBorrow("sfTexture", 2)
//
// Category sentinels match any phase:
//
//	if errors.Is(err, gerrors.ErrConstruction) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

package wasm

import (
	"context"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	gerrors "github.com/wippyai/gosfml/errors"
)

// Allocator export names, tried in order.
const (
	cMalloc     = "malloc"
	cFree       = "free"
	cabiRealloc = "cabi_realloc"
	simpleAlloc = "alloc"
	simpleFree  = "dealloc"
)

// allocator calls the guest's heap functions.
type allocator struct {
	allocFn   api.Function
	freeFn    api.Function
	logger    *zap.Logger
	stackBuf  []uint64
	isRealloc bool
}

func newAllocator(mod api.Module, logger *zap.Logger) (*allocator, error) {
	a := &allocator{
		logger:   logger,
		stackBuf: make([]uint64, 4),
	}
	defs := mod.ExportedFunctionDefinitions()
	for _, name := range []string{cMalloc, simpleAlloc, cabiRealloc} {
		if def, ok := defs[name]; ok {
			a.allocFn = mod.ExportedFunction(name)
			a.isRealloc = len(def.ParamTypes()) == 4
			break
		}
	}
	if a.allocFn == nil {
		return nil, gerrors.NotFound(gerrors.PhaseLoad, "guest allocator export", cMalloc)
	}
	for _, name := range []string{cFree, simpleFree} {
		if fn := mod.ExportedFunction(name); fn != nil {
			a.freeFn = fn
			break
		}
	}
	return a, nil
}

// Alloc reserves size bytes in guest memory.
func (a *allocator) Alloc(ctx context.Context, size, align uint32) (uint32, error) {
	if size == 0 {
		size = 1
	}
	var err error
	if a.isRealloc {
		a.stackBuf[0] = 0
		a.stackBuf[1] = 0
		a.stackBuf[2] = uint64(align)
		a.stackBuf[3] = uint64(size)
		err = a.allocFn.CallWithStack(ctx, a.stackBuf[:4])
	} else {
		a.stackBuf[0] = uint64(size)
		err = a.allocFn.CallWithStack(ctx, a.stackBuf[:1])
	}
	if err != nil {
		return 0, gerrors.Wrap(gerrors.PhaseCall, gerrors.KindInvalidData, err, "guest allocation failed")
	}
	ptr := uint32(a.stackBuf[0])
	if ptr == 0 {
		return 0, gerrors.New(gerrors.PhaseCall, gerrors.KindInvalidData).
			Detail("guest allocator returned null for %d bytes", size).
			Value(size).
			Build()
	}
	return ptr, nil
}

// Free releases a block returned by Alloc. Guests without a free export
// leak the block.
func (a *allocator) Free(ctx context.Context, ptr uint32) {
	if a.freeFn == nil || ptr == 0 {
		return
	}
	a.stackBuf[0] = uint64(ptr)
	a.stackBuf[1] = 0
	a.stackBuf[2] = 0
	n := len(a.freeFn.Definition().ParamTypes())
	if err := a.freeFn.CallWithStack(ctx, a.stackBuf[:max(n, 1)]); err != nil {
		a.logger.Warn("guest free failed", zap.Uint32("ptr", ptr), zap.Error(err))
	}
}

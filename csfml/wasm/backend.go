package wasm

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
)

// Config holds configuration for the WebAssembly backend
type Config struct {
	// Logger receives load diagnostics and guest call failures.
	// Nil means no logging.
	Logger *zap.Logger

	// MemoryLimitPages caps guest memory in 64KiB pages. 0 means the wazero
	// default.
	MemoryLimitPages uint32

	// WASI instantiates wasi_snapshot_preview1 before the library.
	WASI bool

	// MountDir is mounted as the guest's root directory when WASI is
	// enabled, so createFromFile paths resolve against it.
	MountDir string

	// Strict makes Open fail when any symbol is unresolved.
	Strict bool
}

// Backend runs a WebAssembly build of CSFML under wazero. Every call copies
// its indirect arguments into guest memory through the guest's allocator.
// The library cannot call back into Go, so constructors that take callbacks
// report Unsupported.
type Backend struct {
	ctx      context.Context
	runtime  wazero.Runtime
	module   api.Module
	memory   api.Memory
	alloc    *allocator
	api      *csfml.API
	logger   *zap.Logger
	retained map[uint32][]uint32
	lastErr  error
	mu       sync.Mutex
	closed   bool
}

// Open compiles and instantiates a CSFML WebAssembly module and binds the
// function table to its exports. ctx is used for every later guest call.
func Open(ctx context.Context, wasmBytes []byte, cfg *Config) (*Backend, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if c.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(c.MemoryLimitPages)
	}
	r := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	b, err := open(ctx, r, wasmBytes, &c, logger)
	if err != nil {
		_ = r.Close(ctx)
		return nil, err
	}
	return b, nil
}

func open(ctx context.Context, r wazero.Runtime, wasmBytes []byte, c *Config, logger *zap.Logger) (*Backend, error) {
	modCfg := wazero.NewModuleConfig().
		WithName("csfml").
		WithStartFunctions("_initialize")

	if c.WASI {
		if err := instantiateWASI(ctx, r); err != nil {
			return nil, gerrors.Load("instantiate WASI", err)
		}
		if c.MountDir != "" {
			modCfg = modCfg.WithFSConfig(wazero.NewFSConfig().WithDirMount(c.MountDir, "/"))
		}
	}

	compiled, err := r.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, gerrors.Load("compile CSFML module", err)
	}
	mod, err := r.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		return nil, gerrors.Load("instantiate CSFML module", err)
	}
	mem := mod.Memory()
	if mem == nil {
		return nil, gerrors.NotFound(gerrors.PhaseLoad, "guest export", "memory")
	}
	alloc, err := newAllocator(mod, logger)
	if err != nil {
		return nil, err
	}

	b := &Backend{
		ctx:      ctx,
		runtime:  r,
		module:   mod,
		memory:   mem,
		alloc:    alloc,
		logger:   logger,
		retained: make(map[uint32][]uint32),
	}
	b.api = &csfml.API{
		Memory:      guestMemory{mem: mem},
		NewCallback: unsupportedCallback,
	}
	b.bind()

	if missing := b.api.Missing(); len(missing) > 0 {
		logger.Warn("csfml symbols unresolved", zap.Int("count", len(missing)))
		if c.Strict {
			return nil, gerrors.NewMissingSymbolsError(missing)
		}
	}
	b.api.StubMissing()
	return b, nil
}

// instantiateWASI registers wasi_snapshot_preview1 on r.
func instantiateWASI(ctx context.Context, r wazero.Runtime) error {
	if r.Module(wasi_snapshot_preview1.ModuleName) != nil {
		return nil
	}
	builder := r.NewHostModuleBuilder(wasi_snapshot_preview1.ModuleName)
	wasi_snapshot_preview1.NewFunctionExporter().ExportFunctions(builder)
	_, err := builder.Instantiate(ctx)
	return err
}

func (b *Backend) bind() {
	defs := b.module.ExportedFunctionDefinitions()
	for _, sym := range b.api.Symbols() {
		if _, ok := defs[sym.Name]; !ok {
			b.api.MarkMissing(sym.Key())
			continue
		}
		p, err := newPlan(sym, b.module.ExportedFunction(sym.Name))
		if err != nil {
			b.logger.Debug("symbol not bound", zap.String("symbol", sym.Name), zap.Error(err))
			b.api.MarkMissing(sym.Key())
			continue
		}
		sym.Field.Set(b.makeFunc(p, sym.Field.Type()))
	}
}

func unsupportedCallback(any) (csfml.Callback, error) {
	return 0, gerrors.Unsupported(gerrors.PhaseCallback, "WebAssembly guests cannot call back into Go")
}

// API returns the function table.
func (b *Backend) API() *csfml.API {
	return b.api
}

// Err returns the last guest call failure and clears it. Calls that fail
// return zero values.
func (b *Backend) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	err := b.lastErr
	b.lastErr = nil
	return err
}

func (b *Backend) setErr(err error) {
	b.mu.Lock()
	b.lastErr = err
	b.mu.Unlock()
}

// Retained returns the number of guest buffers kept alive for objects that
// read them after construction.
func (b *Backend) Retained() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, blocks := range b.retained {
		n += len(blocks)
	}
	return n
}

// Close tears down the guest and the wazero runtime.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	b.retained = nil
	return b.runtime.Close(b.ctx)
}

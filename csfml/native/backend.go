//go:build darwin || freebsd || linux || windows

package native

import (
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
)

type library struct {
	path   string
	handle uintptr
}

// Backend is the CSFML function table bound to the shared libraries of this
// process.
type Backend struct {
	api    *csfml.API
	libs   map[string]library
	logger *zap.Logger
	mu     sync.Mutex
	closed bool
}

// Open loads the CSFML libraries and binds the function table. Modules that
// fail to load leave their symbols missing; Open fails only when no module
// loads, or when cfg.Strict is set and any symbol is unresolved.
func Open(cfg *Config) (*Backend, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	c = c.withEnv()

	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	b := &Backend{
		libs:   make(map[string]library),
		logger: logger,
	}

	var loadErrs *multierror.Error
	handles := make(map[string]uintptr)
	for _, mod := range Modules {
		lib, err := load(&c, mod)
		if err != nil {
			loadErrs = multierror.Append(loadErrs, err)
			logger.Warn("csfml module not loaded", zap.String("module", mod), zap.Error(err))
			continue
		}
		logger.Info("csfml module loaded", zap.String("module", mod), zap.String("path", lib.path))
		b.libs[mod] = lib
		handles[mod] = lib.handle
	}
	if len(b.libs) == 0 {
		return nil, gerrors.Load("no CSFML library could be loaded", loadErrs.ErrorOrNil())
	}

	api := &csfml.API{
		Memory:      csfml.ProcessMemory{},
		NewCallback: newCallback,
	}
	bind(api, handles, logger)

	if missing := api.Missing(); len(missing) > 0 {
		logger.Warn("csfml symbols unresolved", zap.Int("count", len(missing)))
		if c.Strict {
			_ = b.closeLibraries()
			return nil, gerrors.NewMissingSymbolsError(missing)
		}
	}
	api.StubMissing()
	b.api = api
	return b, nil
}

// load tries every candidate path of a module until one opens.
func load(c *Config, module string) (library, error) {
	var errs *multierror.Error
	for _, path := range c.candidates(module) {
		h, err := openLibrary(path)
		if err == nil {
			return library{path: path, handle: h}, nil
		}
		errs = multierror.Append(errs, err)
	}
	return library{}, gerrors.New(gerrors.PhaseLoad, gerrors.KindNotFound).
		Resource("csfml-" + module).
		Detail("no candidate library could be opened").
		Cause(errs.ErrorOrNil()).
		Build()
}

// API returns the function table.
func (b *Backend) API() *csfml.API {
	return b.api
}

// Libraries returns the loaded file per module.
func (b *Backend) Libraries() map[string]string {
	out := make(map[string]string, len(b.libs))
	for mod, lib := range b.libs {
		out[mod] = filepath.Clean(lib.path)
	}
	return out
}

// Close unloads the libraries. Objects still alive become invalid.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	// calls after this point would jump into unloaded code
	for _, s := range b.api.Symbols() {
		s.Field.Set(csfml.ZeroFunc(s.Field.Type()))
	}
	return b.closeLibraries()
}

func (b *Backend) closeLibraries() error {
	var errs *multierror.Error
	// unload in reverse dependency order
	for i := len(Modules) - 1; i >= 0; i-- {
		lib, ok := b.libs[Modules[i]]
		if !ok {
			continue
		}
		if err := closeLibrary(lib.handle); err != nil {
			errs = multierror.Append(errs, err)
		}
		delete(b.libs, Modules[i])
	}
	return errs.ErrorOrNil()
}

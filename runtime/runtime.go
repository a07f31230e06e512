package runtime

import (
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/wippyai/gosfml/callback"
	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
	"github.com/wippyai/gosfml/resource"
)

// Backend supplies the CSFML function table.
type Backend interface {
	API() *csfml.API
	Close() error
}

// Config holds configuration for runtime creation
type Config struct {
	// Logger receives lifecycle and leak diagnostics. Nil means no logging.
	Logger *zap.Logger

	// StrictClose makes Close fail while foreign resources or callback
	// contexts are still alive. Otherwise they are logged and forgotten.
	StrictClose bool
}

// Runtime bundles a backend with the bookkeeping every handle shares:
// the live-resource table, the callback registry and the logger.
// The foreign library is not thread-safe; a Runtime and the objects created
// from it must be used from one goroutine at a time.
type Runtime struct {
	backend   Backend
	api       *csfml.API
	resources *resource.UnifiedTable
	callbacks *callback.Registry
	logger    *zap.Logger
	claims    map[string]struct{}
	strict    bool
	mu        sync.Mutex
	closed    bool
}

// New creates a runtime over b with the default configuration.
func New(b Backend) (*Runtime, error) {
	return NewWithConfig(b, nil)
}

// NewWithConfig creates a runtime over b.
func NewWithConfig(b Backend, cfg *Config) (*Runtime, error) {
	if b == nil {
		return nil, gerrors.NilPointer(gerrors.PhaseRuntime, "backend")
	}
	api := b.API()
	if api == nil {
		return nil, gerrors.NilPointer(gerrors.PhaseRuntime, "backend API")
	}
	api.StubMissing()

	logger := zap.NewNop()
	strict := false
	if cfg != nil {
		if cfg.Logger != nil {
			logger = cfg.Logger
		}
		strict = cfg.StrictClose
	}

	rt := &Runtime{
		backend:   b,
		api:       api,
		resources: resource.NewTable(),
		callbacks: callback.NewRegistry(callback.Factory(api.NewCallback), logger),
		logger:    logger,
		claims:    make(map[string]struct{}),
		strict:    strict,
	}
	rt.resources.Subscribe(&lifecycleLogger{logger: logger})

	if missing := api.Missing(); len(missing) > 0 {
		logger.Debug("backend has unresolved symbols", zap.Int("count", len(missing)))
	}
	return rt, nil
}

// API returns the function table.
func (r *Runtime) API() *csfml.API {
	return r.api
}

// Resources returns the live-resource table.
func (r *Runtime) Resources() *resource.UnifiedTable {
	return r.resources
}

// Callbacks returns the callback registry.
func (r *Runtime) Callbacks() *callback.Registry {
	return r.callbacks
}

// Logger returns the runtime's logger.
func (r *Runtime) Logger() *zap.Logger {
	return r.logger
}

// Backend returns the backend the runtime was created with.
func (r *Runtime) Backend() Backend {
	return r.backend
}

// Closed reports whether Close has been called.
func (r *Runtime) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Claim reserves a process-wide singleton such as the audio listener.
// The returned release function is idempotent.
func (r *Runtime) Claim(name string) (release func(), err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, gerrors.New(gerrors.PhaseRuntime, gerrors.KindClosed).Detail("runtime closed").Build()
	}
	if _, taken := r.claims[name]; taken {
		return nil, gerrors.Claimed(name)
	}
	r.claims[name] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.claims, name)
			r.mu.Unlock()
		})
	}, nil
}

// Close shuts the runtime down. Live resources and pinned callback contexts
// are reported; with StrictClose they make Close fail. The backend is always
// closed.
func (r *Runtime) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()

	var result *multierror.Error

	r.resources.Each(func(h resource.Handle, e resource.Entry) bool {
		r.logger.Warn("foreign resource still alive at runtime close",
			zap.String("kind", e.Kind),
			zap.Uintptr("addr", e.Addr),
			zap.Uint32("handle", uint32(h)),
			zap.Uint32("borrows", e.Borrows))
		return true
	})
	if err := r.resources.Close(); err != nil && r.strict {
		result = multierror.Append(result, err)
	}

	if err := r.callbacks.Close(); err != nil {
		r.logger.Warn("callback contexts still pinned at runtime close", zap.Error(err))
		if r.strict {
			result = multierror.Append(result, err)
		}
	}

	if err := r.backend.Close(); err != nil {
		result = multierror.Append(result, gerrors.Wrap(gerrors.PhaseRuntime, gerrors.KindInvalidData, err, "close backend"))
	}

	return result.ErrorOrNil()
}

//go:build darwin || freebsd || linux || windows

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/wippyai/gosfml/csfml"
)

// bind resolves every function field of api against the loaded libraries.
// Fields that cannot be resolved or registered stay nil and are recorded as
// missing.
func bind(api *csfml.API, libs map[string]uintptr, logger *zap.Logger) {
	for _, sym := range api.Symbols() {
		lib, ok := libs[sym.Library]
		if !ok {
			api.MarkMissing(sym.Key())
			continue
		}
		addr, err := lookupSymbol(lib, sym.Name)
		if err != nil || addr == 0 {
			logger.Debug("symbol not found", zap.String("library", sym.Library), zap.String("symbol", sym.Name))
			api.MarkMissing(sym.Key())
			continue
		}
		if err := register(sym, addr); err != nil {
			logger.Debug("symbol not bound", zap.String("symbol", sym.Name), zap.Error(err))
			api.MarkMissing(sym.Key())
		}
	}
}

// register installs a purego trampoline for addr into the field. purego
// panics on signatures it cannot pass on this platform.
func register(sym csfml.Symbol, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			sym.Field.SetZero()
			err = fmt.Errorf("%v", r)
		}
	}()
	purego.RegisterFunc(sym.Field.Addr().Interface(), addr)
	return nil
}

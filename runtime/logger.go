package runtime

import (
	"go.uber.org/zap"

	"github.com/wippyai/gosfml/resource"
)

// lifecycleLogger writes resource table events at debug level.
type lifecycleLogger struct {
	logger *zap.Logger
}

func (l *lifecycleLogger) OnResourceEvent(e resource.Event) {
	if ce := l.logger.Check(zap.DebugLevel, "resource "+e.Type.String()); ce != nil {
		ce.Write(
			zap.String("kind", e.Kind),
			zap.Uintptr("addr", e.Addr),
			zap.Uint32("handle", uint32(e.Handle)),
			zap.Uint32("borrows", e.Borrows),
		)
	}
}

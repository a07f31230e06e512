//go:build !(darwin || freebsd || linux || windows)

package native

import (
	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
)

// Backend is unavailable on this platform.
type Backend struct{}

// Open always fails on this platform.
func Open(*Config) (*Backend, error) {
	return nil, gerrors.Unsupported(gerrors.PhaseLoad, "dynamic loading is not available on this platform")
}

func (*Backend) API() *csfml.API              { return nil }
func (*Backend) Libraries() map[string]string { return nil }
func (*Backend) Close() error                 { return nil }

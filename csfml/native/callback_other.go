//go:build !(windows || ((darwin || freebsd || linux) && (amd64 || arm64)))

package native

import (
	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
)

func newCallback(fn any) (csfml.Callback, error) {
	if err := checkCallback(fn); err != nil {
		return 0, err
	}
	return 0, gerrors.Unsupported(gerrors.PhaseCallback, "callbacks need amd64 or arm64")
}

//go:build windows || ((darwin || freebsd || linux) && (amd64 || arm64))

package native

import (
	"github.com/ebitengine/purego"

	"github.com/wippyai/gosfml/csfml"
	gerrors "github.com/wippyai/gosfml/errors"
)

func newCallback(fn any) (cb csfml.Callback, err error) {
	if err := checkCallback(fn); err != nil {
		return 0, err
	}
	defer func() {
		if r := recover(); r != nil {
			err = gerrors.New(gerrors.PhaseCallback, gerrors.KindUnsupported).
				Detail("purego callback: %v", r).
				Build()
		}
	}()
	return csfml.Callback(purego.NewCallback(fn)), nil
}

package native

import (
	"reflect"

	gerrors "github.com/wippyai/gosfml/errors"
)

// checkCallback rejects functions whose signature cannot cross the C
// boundary as a plain function pointer: struct results (sfShape's point
// callback returns sfVector2f) and more than one result.
func checkCallback(fn any) error {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return gerrors.InvalidInput(gerrors.PhaseCallback, "callback is not a function")
	}
	if t.NumOut() > 1 {
		return gerrors.Unsupported(gerrors.PhaseCallback, "callback returns more than one value")
	}
	if t.NumOut() == 1 && t.Out(0).Kind() == reflect.Struct {
		return gerrors.New(gerrors.PhaseCallback, gerrors.KindUnsupported).
			Detail("callback returns struct %s", t.Out(0)).
			Value(t.String()).
			Build()
	}
	for i := 0; i < t.NumIn(); i++ {
		if t.In(i).Kind() == reflect.Struct {
			return gerrors.New(gerrors.PhaseCallback, gerrors.KindUnsupported).
				Detail("callback takes struct %s by value", t.In(i)).
				Value(t.String()).
				Build()
		}
	}
	return nil
}

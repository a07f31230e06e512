// Package native binds the CSFML shared libraries at run time with purego.
//
// Open loads csfml-system, csfml-window, csfml-graphics and csfml-audio,
// resolves every field of csfml.API by name and fills the rest with
// zero-returning stubs:
//
//	b, err := native.Open(nil)
//	if err != nil {
//		return err
//	}
//	rt, err := runtime.New(b)
//
// Library locations come from a YAML file (LoadConfig), the GOSFML_LIB_DIR
// environment variable and the per-OS default names, in that order.
//
// purego passes structs by value only on darwin. Elsewhere functions that
// take or return structs (sfColor, sfVector2f, sfTime, ...) are reported
// missing and behave as stubs.
package native

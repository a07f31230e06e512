package ffi

// Bool mirrors sfBool, an int-sized C boolean.
type Bool int32

const (
	False Bool = 0
	True  Bool = 1
)

// BoolOf converts a Go bool to its C encoding.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Go converts a C boolean to a Go bool. Any non-zero value is true.
func (b Bool) Go() bool { return b != False }

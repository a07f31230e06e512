package graphics

// TextStyle is a set of text style flags.
type TextStyle uint32

const (
	StyleRegular       TextStyle = 0
	StyleBold          TextStyle = 1 << 0
	StyleItalic        TextStyle = 1 << 1
	StyleUnderlined    TextStyle = 1 << 2
	StyleStrikeThrough TextStyle = 1 << 3
)

// Has reports whether every flag of f is set.
func (s TextStyle) Has(f TextStyle) bool {
	return s&f == f
}

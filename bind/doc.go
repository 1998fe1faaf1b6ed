// Package bind derives rgx patterns from struct tags, so a type's bindings
// can be declared next to its fields:
//
//	type Employee struct {
//		Name    *string `rgx:"name"`
//		Surname string  `rgx:"surname,borrow"`
//		Age     uint16  `rgx:"age"`
//		ID      string  `rgx:"id"`
//	}
//
// The tag names a group; a number binds a group by position. Flags follow a
// comma: "borrow" keeps strings as views into the input, "char" reads the
// first character into a rune. Untagged fields and fields tagged "-" are
// left alone. An empty name uses the field name with its first letter in
// lower case.
//
// Field types are resolved once, when the pattern is built: every
// primitive kind, time.Duration, time.Time (RFC 3339), pointers, types
// implementing capture.Unmarshaler or encoding.TextUnmarshaler, and types
// registered with WithNested.
//
// A pointer field marks its group optional: an absent group leaves it nil,
// as capture.Optional does. This differs from capture.Pointer, which only
// boxes its inner converter, so capture.Pointer(capture.Bool) yields a
// pointer to false for an absent group where a *bool field stays nil.
package bind

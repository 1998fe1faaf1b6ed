package capture

// Converter produces a value of type T from a captured group.
type Converter[T any] interface {
	FromMatch(c Cap) (T, error)
}

// Func adapts an ordinary function to a Converter. The resulting converter
// requires its group to be present.
type Func[T any] func(c Cap) (T, error)

func (f Func[T]) FromMatch(c Cap) (T, error) { return f(c) }

// Lenient adapts a function that handles absent groups itself.
type Lenient[T any] func(c Cap) (T, error)

func (f Lenient[T]) FromMatch(c Cap) (T, error) { return f(c) }

func (Lenient[T]) AcceptsAbsent() bool { return true }

// absentAware is implemented by converters that do not need a present group.
type absentAware interface {
	AcceptsAbsent() bool
}

// AcceptsAbsent reports whether conv can convert a group that did not
// participate in the match. Fields bound through such converters are
// optional; all the others are required.
func AcceptsAbsent(conv any) bool {
	aa, ok := conv.(absentAware)
	return ok && aa.AcceptsAbsent()
}

// Convert is the single conversion entry point of a capture.
func Convert[T any](c Cap, conv Converter[T]) (T, error) {
	return conv.FromMatch(c)
}

// Unmarshaler is implemented by types that know how to read themselves from
// a captured group.
type Unmarshaler interface {
	UnmarshalMatch(c Cap) error
}

func typeName[T any]() string {
	var zero T
	return sprintType(zero)
}

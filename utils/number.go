package utils

// Signed is satisfied by every signed integer type, named ones included.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is satisfied by every unsigned integer type, named ones included.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by both floating-point types.
type Float interface {
	~float32 | ~float64
}

type Number interface {
	Signed | Unsigned | Float
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T Number](min T, value T, max T) bool {
	return min <= value && value <= max
}

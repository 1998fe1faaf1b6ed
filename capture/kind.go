package capture

import (
	"errors"
	"fmt"
	"time"

	"github.com/AnickaBurova/regex-parsers/primitive"
)

var ErrNoKind = errors.New("kind has no converter")

type erased[V any] struct {
	inner Converter[V]
}

// Erase hides the result type of conv, for callers picking converters at
// run time.
func Erase[V any](conv Converter[V]) Converter[any] {
	return erased[V]{inner: conv}
}

func (e erased[V]) FromMatch(c Cap) (any, error) {
	v, err := e.inner.FromMatch(c)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (e erased[V]) AcceptsAbsent() bool { return AcceptsAbsent(e.inner) }

// ForKind returns the default converter of k. Strings are owned and times
// use RFC 3339.
func ForKind(k primitive.KindEnum) (Converter[any], error) {
	switch k {
	case primitive.KindInt:
		return Erase(Int[int]()), nil
	case primitive.KindInt8:
		return Erase(Int[int8]()), nil
	case primitive.KindInt16:
		return Erase(Int[int16]()), nil
	case primitive.KindInt32:
		return Erase(Int[int32]()), nil
	case primitive.KindInt64:
		return Erase(Int[int64]()), nil
	case primitive.KindUint:
		return Erase(Uint[uint]()), nil
	case primitive.KindUint8:
		return Erase(Uint[uint8]()), nil
	case primitive.KindUint16:
		return Erase(Uint[uint16]()), nil
	case primitive.KindUint32:
		return Erase(Uint[uint32]()), nil
	case primitive.KindUint64:
		return Erase(Uint[uint64]()), nil
	case primitive.KindUintptr:
		return Erase(Uint[uintptr]()), nil
	case primitive.KindFloat32:
		return Erase(Float[float32]()), nil
	case primitive.KindFloat64:
		return Erase(Float[float64]()), nil
	case primitive.KindBool:
		return Erase(Bool), nil
	case primitive.KindString:
		return Erase(String), nil
	case primitive.KindTime:
		return Erase(Time(time.RFC3339)), nil
	case primitive.KindDuration:
		return Erase(Duration), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoKind, k)
	}
}

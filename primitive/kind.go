package primitive

import (
	"maps"
	"math"
	"reflect"
	"slices"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies the leaf types a captured group can be converted into.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

// Bits returns the width used when parsing the textual form of a number kind.
// KindDuration counts as the int64 it is.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint, KindUintptr:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64, KindDuration:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// FromReflectType returns the kind of rtype. Named types resolve to the kind
// of their underlying type, so `type Colour uint8` is KindUint8. Zero is
// returned for anything that is not a leaf.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Uintptr:
		return KindUintptr
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}

// Of is FromReflectType for a static type.
func Of[T any]() KindEnum {
	return FromReflectType(reflect.TypeFor[T]())
}

var names = map[string]KindEnum{
	"int":      KindInt,
	"int8":     KindInt8,
	"int16":    KindInt16,
	"int32":    KindInt32,
	"int64":    KindInt64,
	"uint":     KindUint,
	"uint8":    KindUint8,
	"byte":     KindUint8,
	"uint16":   KindUint16,
	"uint32":   KindUint32,
	"uint64":   KindUint64,
	"uintptr":  KindUintptr,
	"float32":  KindFloat32,
	"float64":  KindFloat64,
	"bool":     KindBool,
	"string":   KindString,
	"time":     KindTime,
	"duration": KindDuration,
}

// FromName resolves a Go type name ("uint8", "string", "duration"...) to its kind.
func FromName(name string) (KindEnum, bool) {
	k, ok := names[name]
	return k, ok
}

// Names returns every name accepted by FromName, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(names))
}

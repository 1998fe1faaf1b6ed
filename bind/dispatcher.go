package bind

import (
	"encoding"
	"reflect"

	"github.com/AnickaBurova/regex-parsers/capture"
	"github.com/AnickaBurova/regex-parsers/primitive"
)

//go:generate go tool stringer -type=DispatcherEnum -output=dispatcher_string.go

// DispatcherEnum tells how a field type is converted.
type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherPrimitive
	DispatcherPointer
	DispatcherNested
	DispatcherUnmarshaler
	DispatcherText

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)

var (
	unmarshalerType     = reflect.TypeOf((*capture.Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Dispatch classifies t without any registered nested parsers.
func Dispatch(t reflect.Type) DispatcherEnum {
	return dispatch(t, nil)
}

func dispatch(t reflect.Type, nested map[reflect.Type]nestedParser) DispatcherEnum {
	if t == nil {
		return DispatcherUnknown
	}

	if _, ok := nested[t]; ok {
		return DispatcherNested
	}

	ptr := reflect.PointerTo(t)
	if ptr.Implements(unmarshalerType) {
		return DispatcherUnmarshaler
	}

	// time.Time is a TextUnmarshaler but is listed as a primitive kind
	if ptr.Implements(textUnmarshalerType) && primitive.FromReflectType(t) == 0 {
		return DispatcherText
	}

	if t.Kind() == reflect.Pointer {
		return DispatcherPointer
	}

	if primitive.FromReflectType(t) != 0 {
		return DispatcherPrimitive
	}

	return DispatcherUnknown
}

package maybe

import (
	"math"
	"reflect"
)

// Policy decides which values are considered absent when wrapped.
type Policy int

const (
	// Strict treats nil and every falsy value (false, 0, NaN, "") as absent.
	Strict Policy = iota
	// Lenient treats only nil values as absent.
	Lenient
)

func (p Policy) String() string {
	switch p {
	case Lenient:
		return "lenient"
	default:
		return "strict"
	}
}

func (p Policy) absent(value any) bool {
	if p == Lenient {
		return isNil(value)
	}
	return isFalsy(value)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// isFalsy reports nil values, false, zero numbers, NaN and the empty string.
// Structs and arrays are never falsy, neither are empty but allocated maps and slices.
func isFalsy(value any) bool {
	if isNil(value) {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return v.Complex() == 0
	case reflect.String:
		return v.Len() == 0
	default:
		return false
	}
}

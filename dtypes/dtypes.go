// Package dtypes defines DType, the element type of tensor-shaped values.
//
// It is a pure-Go subset of the PJRT primitive types: only what the
// legalization IR needs, no C dependencies.
package dtypes

import (
	"reflect"

	"github.com/x448/float16"
)

// DType is an enum of the supported element types of a tensor.
type DType int

//go:generate go tool enumer -type DType dtypes.go

const (
	InvalidDType DType = iota
	Bool
	S8
	S16
	S32
	S64
	U8
	U16
	U32
	U64
	F16
	BF16
	F32
	F64
)

// FromAny introspects the Go value and returns the corresponding DType.
// It returns InvalidDType if the value's type is not supported.
func FromAny(value any) DType {
	switch value.(type) {
	case bool:
		return Bool
	case int, int64:
		return S64
	case int8:
		return S8
	case int16:
		return S16
	case int32:
		return S32
	case uint8:
		return U8
	case uint16:
		return U16
	case uint32:
		return U32
	case uint, uint64:
		return U64
	case float16.Float16:
		return F16
	case float32:
		return F32
	case float64:
		return F64
	}
	return InvalidDType
}

// FromGoType returns the DType that stores values of the given Go type, or
// InvalidDType if there isn't one.
func FromGoType(t reflect.Type) DType {
	switch t.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int64:
		return S64
	case reflect.Int8:
		return S8
	case reflect.Int16:
		return S16
	case reflect.Int32:
		return S32
	case reflect.Uint8:
		return U8
	case reflect.Uint16:
		return U16
	case reflect.Uint32:
		return U32
	case reflect.Uint, reflect.Uint64:
		return U64
	case reflect.Float32:
		return F32
	case reflect.Float64:
		return F64
	default:
		if t == reflect.TypeOf(float16.Float16(0)) {
			return F16
		}
		return InvalidDType
	}
}

// Memory returns the number of bytes used to store one element of the DType.
func (dtype DType) Memory() uintptr {
	switch dtype {
	case Bool, S8, U8:
		return 1
	case S16, U16, F16, BF16:
		return 2
	case S32, U32, F32:
		return 4
	case S64, U64, F64:
		return 8
	}
	return 0
}

// IsFloat returns whether the DType is a floating point type.
func (dtype DType) IsFloat() bool {
	return dtype == F16 || dtype == BF16 || dtype == F32 || dtype == F64
}

// IsInt returns whether the DType is an integer type, signed or unsigned.
func (dtype DType) IsInt() bool {
	return dtype >= S8 && dtype <= U64
}

// IsUnsigned returns whether the DType is an unsigned integer type.
func (dtype DType) IsUnsigned() bool {
	return dtype >= U8 && dtype <= U64
}

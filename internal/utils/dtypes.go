package utils

import (
	"fmt"
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
)

// DTypeToStableHLO returns the StableHLO element type name of an integer dtype, the only
// kind of values an axis permutation can hold.
func DTypeToStableHLO(dtype dtypes.DType) string {
	switch dtype {
	case dtypes.S64:
		return "i64"
	case dtypes.S32:
		return "i32"
	case dtypes.S16:
		return "i16"
	case dtypes.S8:
		return "i8"
	case dtypes.U64:
		return "ui64"
	case dtypes.U32:
		return "ui32"
	case dtypes.U16:
		return "ui16"
	case dtypes.U8:
		return "ui8"
	default:
		return fmt.Sprintf("unknown_dtype<%s>", dtype.String())
	}
}

// DTypeOf returns the dtype of the Go type T, based on its kind, so named integer types
// (e.g. `type Axis int32`) map like their underlying type.
func DTypeOf[T any]() dtypes.DType {
	return dtypes.FromGoType(reflect.TypeOf((*T)(nil)).Elem())
}

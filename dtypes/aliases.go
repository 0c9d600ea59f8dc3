package dtypes

// Aliases to the short PJRT-style names.
const (
	Int8  = S8
	Int16 = S16
	Int32 = S32
	Int64 = S64

	Uint8  = U8
	Uint16 = U16
	Uint32 = U32
	Uint64 = U64

	Float16  = F16
	Float32  = F32
	Float64  = F64
	BFloat16 = BF16
)

// ToMLIR returns the MLIR builtin-type spelling of the DType, e.g. "f32",
// "si64" or "i1" for booleans.
func (dtype DType) ToMLIR() string {
	switch dtype {
	case Bool:
		return "i1"
	case S8:
		return "si8"
	case S16:
		return "si16"
	case S32:
		return "si32"
	case S64:
		return "si64"
	case U8:
		return "ui8"
	case U16:
		return "ui16"
	case U32:
		return "ui32"
	case U64:
		return "ui64"
	case F16:
		return "f16"
	case BF16:
		return "bf16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "invalid"
	}
}

// Package optypes defines OpType, an enum of the operations the IR can
// hold, and the Dialect each operation kind belongs to.
package optypes

// OpType is an enum of all operation kinds, across all dialects.
type OpType int

//go:generate go tool enumer -type OpType optypes.go

const (
	Invalid OpType = iota

	// HLO dialect: the source of the legalization.
	HLOConstant
	HLOAdd
	HLOSub
	HLOMul
	HLODiv
	HLOMax
	HLOMin
	HLOPow
	HLORem
	HLOAnd
	HLOOr
	HLOAbs
	HLOCeil
	HLOCos
	HLOExp
	HLOFloor
	HLOLog
	HLONeg
	HLORsqrt
	HLOSin
	HLOSqrt
	HLOTanh
	HLODot
	HLOReshape
	HLOSlice
	HLOTranspose
	HLOBroadcastInDim

	// TF dialect: the target of the legalization.
	TFConst
	TFAddV2
	TFSub
	TFMul
	TFDiv
	TFMaximum
	TFMinimum
	TFPow
	TFFloorMod
	TFBitwiseAnd
	TFBitwiseOr
	TFAbs
	TFCeil
	TFCos
	TFExp
	TFFloor
	TFLog
	TFNeg
	TFRsqrt
	TFSin
	TFSqrt
	TFTanh
	TFMatMul
	TFReshape
	TFSlice
	TFTranspose

	// Func dialect: structural operations, never legalized.
	FuncCall
	FuncReturn
	FuncConstant

	// Last should always be kept the last, it is used as a counter/marker.
	Last
)

// Dialect is the named set of operation kinds an OpType belongs to.
type Dialect int

const (
	DialectInvalid Dialect = iota
	HLO
	TF
	Func
)

// String implements fmt.Stringer.
func (d Dialect) String() string {
	switch d {
	case HLO:
		return "mhlo"
	case TF:
		return "tf"
	case Func:
		return "func"
	default:
		return "invalid"
	}
}

// Dialect returns the dialect the operation kind belongs to.
func (t OpType) Dialect() Dialect {
	switch {
	case t >= HLOConstant && t <= HLOBroadcastInDim:
		return HLO
	case t >= TFConst && t <= TFTranspose:
		return TF
	case t >= FuncCall && t <= FuncConstant:
		return Func
	default:
		return DialectInvalid
	}
}

package optypes

import "fmt"

// mlirNames maps every operation kind to its dialect-qualified MLIR name.
var mlirNames = map[OpType]string{
	HLOConstant:       "mhlo.constant",
	HLOAdd:            "mhlo.add",
	HLOSub:            "mhlo.subtract",
	HLOMul:            "mhlo.multiply",
	HLODiv:            "mhlo.divide",
	HLOMax:            "mhlo.maximum",
	HLOMin:            "mhlo.minimum",
	HLOPow:            "mhlo.power",
	HLORem:            "mhlo.remainder",
	HLOAnd:            "mhlo.and",
	HLOOr:             "mhlo.or",
	HLOAbs:            "mhlo.abs",
	HLOCeil:           "mhlo.ceil",
	HLOCos:            "mhlo.cosine",
	HLOExp:            "mhlo.exponential",
	HLOFloor:          "mhlo.floor",
	HLOLog:            "mhlo.log",
	HLONeg:            "mhlo.negate",
	HLORsqrt:          "mhlo.rsqrt",
	HLOSin:            "mhlo.sine",
	HLOSqrt:           "mhlo.sqrt",
	HLOTanh:           "mhlo.tanh",
	HLODot:            "mhlo.dot",
	HLOReshape:        "mhlo.reshape",
	HLOSlice:          "mhlo.slice",
	HLOTranspose:      "mhlo.transpose",
	HLOBroadcastInDim: "mhlo.broadcast_in_dim",

	TFConst:      "tf.Const",
	TFAddV2:      "tf.AddV2",
	TFSub:        "tf.Sub",
	TFMul:        "tf.Mul",
	TFDiv:        "tf.Div",
	TFMaximum:    "tf.Maximum",
	TFMinimum:    "tf.Minimum",
	TFPow:        "tf.Pow",
	TFFloorMod:   "tf.FloorMod",
	TFBitwiseAnd: "tf.BitwiseAnd",
	TFBitwiseOr:  "tf.BitwiseOr",
	TFAbs:        "tf.Abs",
	TFCeil:       "tf.Ceil",
	TFCos:        "tf.Cos",
	TFExp:        "tf.Exp",
	TFFloor:      "tf.Floor",
	TFLog:        "tf.Log",
	TFNeg:        "tf.Neg",
	TFRsqrt:      "tf.Rsqrt",
	TFSin:        "tf.Sin",
	TFSqrt:       "tf.Sqrt",
	TFTanh:       "tf.Tanh",
	TFMatMul:     "tf.MatMul",
	TFReshape:    "tf.Reshape",
	TFSlice:      "tf.Slice",
	TFTranspose:  "tf.Transpose",

	FuncCall:     "func.call",
	FuncReturn:   "func.return",
	FuncConstant: "func.constant",
}

// ToMLIR returns the dialect-qualified MLIR name of the operation kind,
// e.g. "mhlo.slice" or "tf.MatMul".
func (t OpType) ToMLIR() string {
	if name, ok := mlirNames[t]; ok {
		return name
	}
	return fmt.Sprintf("invalid.op_%d", t)
}

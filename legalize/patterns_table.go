package legalize

import (
	"github.com/gomlx/hlo2tf/ir"
	"github.com/gomlx/hlo2tf/ir/optypes"
	"github.com/gomlx/hlo2tf/rewrite"
)

// The tables below are the declarative counterpart of the hand-written
// patterns: simple kind-to-kind rules expanded into rewrite.Pattern values
// once, at startup. The table order (and, within a root kind, the slice
// order) is the documented precedence between patterns.

// binaryRules maps HLO binary elementwise operations to their TF
// equivalent. They only apply when the operands are guaranteed to be
// broadcast-compatible.
var binaryRules = []struct{ src, dst optypes.OpType }{
	{optypes.HLOAdd, optypes.TFAddV2},
	{optypes.HLOSub, optypes.TFSub},
	{optypes.HLOMul, optypes.TFMul},
	{optypes.HLODiv, optypes.TFDiv},
	{optypes.HLOMax, optypes.TFMaximum},
	{optypes.HLOMin, optypes.TFMinimum},
	{optypes.HLOPow, optypes.TFPow},
	{optypes.HLORem, optypes.TFFloorMod},
	{optypes.HLOAnd, optypes.TFBitwiseAnd},
	{optypes.HLOOr, optypes.TFBitwiseOr},
}

// unaryRules maps HLO unary elementwise operations to their TF equivalent.
var unaryRules = []struct{ src, dst optypes.OpType }{
	{optypes.HLOAbs, optypes.TFAbs},
	{optypes.HLOCeil, optypes.TFCeil},
	{optypes.HLOCos, optypes.TFCos},
	{optypes.HLOExp, optypes.TFExp},
	{optypes.HLOFloor, optypes.TFFloor},
	{optypes.HLOLog, optypes.TFLog},
	{optypes.HLONeg, optypes.TFNeg},
	{optypes.HLORsqrt, optypes.TFRsqrt},
	{optypes.HLOSin, optypes.TFSin},
	{optypes.HLOSqrt, optypes.TFSqrt},
	{optypes.HLOTanh, optypes.TFTanh},
}

// Patterns returns the full, ordered pattern list of the legalization:
// first the table-driven rules, then the hand-written converters. The
// order is the precedence between patterns sharing a root kind.
func Patterns() []rewrite.Pattern {
	patterns := []rewrite.Pattern{
		constantPattern{},
	}
	for _, rule := range binaryRules {
		patterns = append(patterns, binaryPattern{src: rule.src, dst: rule.dst})
	}
	for _, rule := range unaryRules {
		patterns = append(patterns, unaryPattern{src: rule.src, dst: rule.dst})
	}
	patterns = append(patterns,
		reshapePattern{},
		transposePattern{},
		dotPattern{},
		convertSliceOp{},
	)
	return patterns
}

// constantPattern rewrites mhlo.constant into tf.Const, carrying the value
// attribute over.
type constantPattern struct{}

func (constantPattern) Root() optypes.OpType { return optypes.HLOConstant }

func (constantPattern) MatchAndRewrite(op *ir.Operation, r *rewrite.Rewriter) (bool, error) {
	value := op.Attr("value")
	if value == nil {
		return false, nil
	}
	result := r.CreateConstant(optypes.TFConst, value, op.Result().Shape())
	return true, r.ReplaceOp(op, result)
}

// binaryPattern rewrites an HLO binary elementwise operation into its TF
// equivalent, when the operands are broadcast-compatible.
type binaryPattern struct {
	src, dst optypes.OpType
}

func (p binaryPattern) Root() optypes.OpType { return p.src }

func (p binaryPattern) MatchAndRewrite(op *ir.Operation, r *rewrite.Rewriter) (bool, error) {
	if len(op.Inputs) != 2 {
		return false, nil
	}
	if !AreBroadcastCompatible(op.Inputs[0], op.Inputs[1]) {
		return false, nil
	}
	newOp := r.Create(p.dst, op.Inputs, nil, op.Result().Shape())
	return true, r.ReplaceOp(op, newOp.Result())
}

// unaryPattern rewrites an HLO unary elementwise operation into its TF
// equivalent.
type unaryPattern struct {
	src, dst optypes.OpType
}

func (p unaryPattern) Root() optypes.OpType { return p.src }

func (p unaryPattern) MatchAndRewrite(op *ir.Operation, r *rewrite.Rewriter) (bool, error) {
	if len(op.Inputs) != 1 {
		return false, nil
	}
	newOp := r.Create(p.dst, op.Inputs, nil, op.Result().Shape())
	return true, r.ReplaceOp(op, newOp.Result())
}

// reshapePattern rewrites mhlo.reshape into tf.Reshape, materializing the
// target shape as a constant operand.
type reshapePattern struct{}

func (reshapePattern) Root() optypes.OpType { return optypes.HLOReshape }

func (reshapePattern) MatchAndRewrite(op *ir.Operation, r *rewrite.Rewriter) (bool, error) {
	result := op.Result()
	if !result.Shape().IsRanked() {
		return false, nil
	}
	shapeConst := ShapeToConst(r, result)
	newOp := r.Create(optypes.TFReshape,
		[]*ir.Value{op.Inputs[0], shapeConst}, nil, result.Shape())
	return true, r.ReplaceOp(op, newOp.Result())
}

// transposePattern rewrites mhlo.transpose into tf.Transpose, turning the
// permutation attribute into a constant operand.
type transposePattern struct{}

func (transposePattern) Root() optypes.OpType { return optypes.HLOTranspose }

func (transposePattern) MatchAndRewrite(op *ir.Operation, r *rewrite.Rewriter) (bool, error) {
	permutation, ok := op.DenseIntAttr("permutation")
	if !ok {
		return false, nil
	}
	permShape := shapesForDense(permutation)
	perm := r.CreateConstant(optypes.TFConst, permutation, permShape)
	newOp := r.Create(optypes.TFTranspose,
		[]*ir.Value{op.Inputs[0], perm}, nil, op.Result().Shape())
	return true, r.ReplaceOp(op, newOp.Result())
}

// dotPattern rewrites mhlo.dot through the convertDot helper.
type dotPattern struct{}

func (dotPattern) Root() optypes.OpType { return optypes.HLODot }

func (dotPattern) MatchAndRewrite(op *ir.Operation, r *rewrite.Rewriter) (bool, error) {
	if len(op.Inputs) != 2 {
		return false, nil
	}
	replacement, err := convertDot(r, op)
	if err != nil {
		return false, err
	}
	return true, r.ReplaceOp(op, replacement)
}

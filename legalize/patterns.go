package legalize

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/hlo2tf/dtypes"
	"github.com/gomlx/hlo2tf/ir"
	"github.com/gomlx/hlo2tf/ir/optypes"
	"github.com/gomlx/hlo2tf/rewrite"
	"github.com/gomlx/hlo2tf/shapes"
)

// AreBroadcastCompatible returns whether the two values are guaranteed to
// be broadcastable to the same shape; size-1 axes broadcast up to any
// size. If either value is unranked the compatibility cannot be disproved
// and it conservatively returns true.
func AreBroadcastCompatible(x, y *ir.Value) bool {
	xShape, yShape := x.Shape(), y.Shape()
	if !xShape.IsRanked() || !yShape.IsRanked() {
		return true
	}
	_, ok := shapes.Broadcast(xShape.Dimensions, yShape.Dimensions)
	return ok
}

// ShapeToConst materializes the ranked shape of the given value as a new
// rank-1 tf.Const of i64 elements and returns its result.
//
// Callers must guarantee the value is ranked; an unranked value is a
// defect in the caller and panics.
func ShapeToConst(r *rewrite.Rewriter, value *ir.Value) *ir.Value {
	shape := value.Shape()
	if !shape.Ok() || !shape.IsRanked() {
		exceptions.Panicf("ShapeToConst called on value without a concrete ranked shape (%s)", shape)
	}
	dims := make([]int64, shape.Rank())
	for i, dim := range shape.Dimensions {
		dims[i] = int64(dim)
	}
	attrShape := shapes.Make(dtypes.S64, shape.Rank())
	return r.CreateConstant(optypes.TFConst, ir.NewDenseIntAttr(dims...), attrShape)
}

// shapesForDense returns the rank-1 i64 shape matching a dense integer
// attribute materialized as a constant.
func shapesForDense(attr *ir.DenseIntAttr) shapes.Shape {
	return shapes.Make(dtypes.S64, attr.Len())
}

// convertSliceOp rewrites mhlo.slice into tf.Slice.
//
// tf.Slice takes start and size operands instead of start/limit/strides
// attributes, so the pattern only applies when all strides are 1; any
// other stride declines and leaves the operation for another pattern.
type convertSliceOp struct{}

func (convertSliceOp) Root() optypes.OpType { return optypes.HLOSlice }

func (convertSliceOp) MatchAndRewrite(op *ir.Operation, r *rewrite.Rewriter) (bool, error) {
	strides, ok := op.DenseIntAttr("strides")
	if !ok || strides.Len() == 0 {
		return false, nil
	}
	// Strides must be 1, otherwise we cannot legalize this mhlo.slice op.
	if !strides.IsSplat() || strides.SplatValue() != 1 {
		return false, nil
	}
	startIndices, ok := op.DenseIntAttr("start_indices")
	if !ok {
		return false, nil
	}
	limitIndices, ok := op.DenseIntAttr("limit_indices")
	if !ok || limitIndices.Len() != startIndices.Len() {
		return false, nil
	}

	sizeValues := make([]int64, startIndices.Len())
	for i := range sizeValues {
		sizeValues[i] = limitIndices.Value(i) - startIndices.Value(i)
	}

	r.SetInsertionPointAfter(op)
	vecShape := shapes.Make(dtypes.S64, startIndices.Len())
	start := r.CreateConstant(optypes.TFConst, startIndices, vecShape)
	size := r.CreateConstant(optypes.TFConst, ir.NewDenseIntAttr(sizeValues...), vecShape)
	slice := r.Create(optypes.TFSlice,
		[]*ir.Value{op.Inputs[0], start, size}, nil, op.Result().Shape())
	return true, r.ReplaceOp(op, slice.Result())
}

// convertDot converts mhlo.dot to tf.MatMul, inserting mhlo.reshape ops
// when necessary: tf.MatMul requires both operands to be at least rank 2.
// It returns the value replacing the dot's result.
//
// It is invoked from the dot table rule, which pre-filters by operation
// kind, so it has no match-failure path of its own.
func convertDot(r *rewrite.Rewriter, op *ir.Operation) (*ir.Value, error) {
	// Normalizes a shape to 2d if it is less than 2d, by inserting dummy
	// 1-sized axes at the beginning. Does nothing if the shape is already
	// 2d or higher.
	normalizeRank := func(shape shapes.Shape) shapes.Shape {
		if shape.Rank() >= 2 {
			return shape
		}
		dims := make([]int, 0, 2)
		for i := shape.Rank(); i < 2; i++ {
			dims = append(dims, 1)
		}
		dims = append(dims, shape.Dimensions...)
		return shapes.Make(shape.DType, dims...)
	}

	// Reshapes a value to 2d if it is 1d or scalar, otherwise returns it
	// unchanged with no new operation.
	reshapeTo2D := func(input *ir.Value) *ir.Value {
		if input.Shape().Rank() >= 2 {
			return input
		}
		reshape := r.Create(optypes.HLOReshape,
			[]*ir.Value{input}, nil, normalizeRank(input.Shape()))
		return reshape.Result()
	}

	lhs, rhs := op.Inputs[0], op.Inputs[1]
	a := reshapeTo2D(lhs)
	b := reshapeTo2D(rhs)
	// Operand b needs to be transposed if it was 1d: the dot contracts
	// over the only axis of a 1d rhs, which after padding to [1, n] lands
	// on the wrong side for a matrix-multiply.
	transposeB := rhs.Shape().Rank() == 1
	outputShape := op.Result().Shape()
	matmulShape := normalizeRank(outputShape)
	matmul := r.Create(optypes.TFMatMul,
		[]*ir.Value{a, b},
		map[string]ir.Attribute{
			"transpose_a": ir.BoolAttr(false),
			"transpose_b": ir.BoolAttr(transposeB),
		},
		matmulShape)
	if matmulShape.Equal(outputShape) {
		return matmul.Result(), nil
	}
	reshape := r.Create(optypes.HLOReshape,
		[]*ir.Value{matmul.Result()}, nil, outputShape)
	return reshape.Result(), nil
}

package legalize

import (
	"testing"

	"github.com/gomlx/hlo2tf/dtypes"
	"github.com/gomlx/hlo2tf/ir"
	"github.com/gomlx/hlo2tf/ir/optypes"
	"github.com/gomlx/hlo2tf/passes"
	"github.com/gomlx/hlo2tf/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalizeSliceEndToEnd(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	operand := fn.NewInput(shapes.Make(dtypes.F32, 2, 4), "")
	slice := fn.NewOp(optypes.HLOSlice, []*ir.Value{operand},
		map[string]ir.Attribute{
			"start_indices": ir.NewDenseIntAttr(0, 1),
			"limit_indices": ir.NewDenseIntAttr(2, 4),
			"strides":       ir.NewDenseIntAttr(1, 1),
		},
		shapes.Make(dtypes.F32, 2, 3))
	fn.Return(slice.Result())

	require.NoError(t, NewPass().Run(m))

	// Exactly one tf.Slice plus its two constants (start and size), and
	// zero remaining HLO ops.
	assert.Equal(t, 0, fn.CountDialect(optypes.HLO))
	assert.Equal(t, 1, fn.CountOps(optypes.TFSlice))
	assert.Equal(t, 2, fn.CountOps(optypes.TFConst))
	assert.Equal(t, 4, fn.NumOps()) // Slice, two consts, func.return.
	assert.Empty(t, fn.Diagnostics())
}

func TestLegalizeDotEndToEnd(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	lhs := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	rhs := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	dot := fn.NewOp(optypes.HLODot, []*ir.Value{lhs, rhs}, nil, shapes.Make(dtypes.F32))
	fn.Return(dot.Result())

	require.NoError(t, NewPass().Run(m))

	// The intermediate mhlo.reshape ops created by the dot converter were
	// themselves legalized into tf.Reshape.
	assert.Equal(t, 0, fn.CountDialect(optypes.HLO))
	assert.Equal(t, 1, fn.CountOps(optypes.TFMatMul))
	assert.Equal(t, 3, fn.CountOps(optypes.TFReshape))
}

func TestLegalizeElementwise(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	x := fn.NewInput(shapes.Make(dtypes.F32, 2, 3), "")
	y := fn.NewInput(shapes.Make(dtypes.F32, 3), "")
	add := fn.NewOp(optypes.HLOAdd, []*ir.Value{x, y}, nil, shapes.Make(dtypes.F32, 2, 3))
	tanh := fn.NewOp(optypes.HLOTanh, []*ir.Value{add.Result()}, nil, shapes.Make(dtypes.F32, 2, 3))
	fn.Return(tanh.Result())

	require.NoError(t, NewPass().Run(m))
	assert.Equal(t, 0, fn.CountDialect(optypes.HLO))
	assert.Equal(t, 1, fn.CountOps(optypes.TFAddV2))
	assert.Equal(t, 1, fn.CountOps(optypes.TFTanh))
}

func TestLegalizeConstantAndTranspose(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	c := fn.NewConstant(optypes.HLOConstant, ir.NewDenseIntAttr(1, 2, 3, 4, 5, 6), shapes.Make(dtypes.S64, 2, 3))
	transpose := fn.NewOp(optypes.HLOTranspose, []*ir.Value{c},
		map[string]ir.Attribute{"permutation": ir.NewDenseIntAttr(1, 0)},
		shapes.Make(dtypes.S64, 3, 2))
	fn.Return(transpose.Result())

	require.NoError(t, NewPass().Run(m))
	assert.Equal(t, 0, fn.CountDialect(optypes.HLO))
	assert.Equal(t, 1, fn.CountOps(optypes.TFTranspose))
	// One constant from mhlo.constant plus one for the permutation.
	assert.Equal(t, 2, fn.CountOps(optypes.TFConst))
}

func TestLegalizeFailureIsAtomic(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	x := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	// mhlo.slice with non-unit strides: the only pattern for it declines.
	slice := fn.NewOp(optypes.HLOSlice, []*ir.Value{x},
		map[string]ir.Attribute{
			"start_indices": ir.NewDenseIntAttr(0),
			"limit_indices": ir.NewDenseIntAttr(4),
			"strides":       ir.NewDenseIntAttr(2),
		},
		shapes.Make(dtypes.F32, 2))
	neg := fn.NewOp(optypes.HLONeg, []*ir.Value{slice.Result()}, nil, shapes.Make(dtypes.F32, 2))
	fn.Return(neg.Result())

	err := NewPass().Run(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mhlo.slice")
	assert.Contains(t, err.Error(), `function @main`)

	// The function was rejected atomically: both HLO ops survive
	// unchanged, including the convertible mhlo.negate.
	assert.Equal(t, 1, fn.CountOps(optypes.HLOSlice))
	assert.Equal(t, 1, fn.CountOps(optypes.HLONeg))
	assert.Equal(t, 0, fn.CountDialect(optypes.TF))

	// And a diagnostic was attached to the function.
	require.Len(t, fn.Diagnostics(), 1)
	assert.Contains(t, fn.Diagnostics()[0], "legalization failed")
}

func TestLegalizeUnsupportedOpFails(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	x := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	bcast := fn.NewOp(optypes.HLOBroadcastInDim, []*ir.Value{x},
		map[string]ir.Attribute{"broadcast_dimensions": ir.NewDenseIntAttr(1)},
		shapes.Make(dtypes.F32, 2, 4))
	fn.Return(bcast.Result())

	err := NewPass().Run(m)
	require.Error(t, err)
	assert.Equal(t, 1, fn.CountOps(optypes.HLOBroadcastInDim))
}

func TestLegalizeIsIdempotent(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	x := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	neg := fn.NewOp(optypes.TFNeg, []*ir.Value{x}, nil, shapes.Make(dtypes.F32, 4))
	fn.Return(neg.Result())

	pass := NewPass()
	require.NoError(t, pass.Run(m))
	before := m.String()
	require.NoError(t, pass.Run(m))
	assert.Equal(t, before, m.String())
}

func TestLegalizeLeavesOtherFunctionsIndependent(t *testing.T) {
	m := ir.NewModule("test")

	good := m.NewFunction("good", true)
	x := good.NewInput(shapes.Make(dtypes.F32, 4), "")
	neg := good.NewOp(optypes.HLONeg, []*ir.Value{x}, nil, shapes.Make(dtypes.F32, 4))
	good.Return(neg.Result())

	bad := m.NewFunction("bad", true)
	y := bad.NewInput(shapes.Make(dtypes.F32, 4), "")
	bcast := bad.NewOp(optypes.HLOBroadcastInDim, []*ir.Value{y}, nil, shapes.Make(dtypes.F32, 2, 4))
	bad.Return(bcast.Result())

	err := NewPass().Run(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `function @bad`)
	assert.NotContains(t, err.Error(), `function @good`)

	// The failing function does not prevent the other from legalizing.
	assert.Equal(t, 0, good.CountDialect(optypes.HLO))
	assert.Equal(t, 1, bad.CountOps(optypes.HLOBroadcastInDim))
	assert.Empty(t, good.Diagnostics())
	assert.Len(t, bad.Diagnostics(), 1)
}

func TestPassIsRegistered(t *testing.T) {
	reg, found := passes.Get(Name)
	require.True(t, found)
	assert.Equal(t, Description, reg.Description)
	pass := reg.New()
	assert.Equal(t, Name, pass.Name())
	assert.Contains(t, passes.Names(), Name)
}

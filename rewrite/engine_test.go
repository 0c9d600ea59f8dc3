package rewrite

import (
	"testing"

	"github.com/gomlx/hlo2tf/dtypes"
	"github.com/gomlx/hlo2tf/ir"
	"github.com/gomlx/hlo2tf/ir/optypes"
	"github.com/gomlx/hlo2tf/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renamePattern rewrites src into dst with the same inputs and result type.
type renamePattern struct {
	src, dst optypes.OpType
}

func (p renamePattern) Root() optypes.OpType { return p.src }

func (p renamePattern) MatchAndRewrite(op *ir.Operation, r *Rewriter) (bool, error) {
	newOp := r.Create(p.dst, op.Inputs, nil, op.Result().Shape())
	return true, r.ReplaceOp(op, newOp.Result())
}

// declinePattern never applies; optionally it creates a noise constant
// first, to exercise the engine's rollback of declined attempts.
type declinePattern struct {
	root        optypes.OpType
	createNoise bool
}

func (p declinePattern) Root() optypes.OpType { return p.root }

func (p declinePattern) MatchAndRewrite(op *ir.Operation, r *Rewriter) (bool, error) {
	if p.createNoise {
		r.CreateConstant(optypes.TFConst, ir.IntAttr(0), shapes.Make(dtypes.S64))
	}
	return false, nil
}

// dropInputPattern replaces the op with a fresh constant, orphaning the
// op's operands.
type dropInputPattern struct {
	root optypes.OpType
}

func (p dropInputPattern) Root() optypes.OpType { return p.root }

func (p dropInputPattern) MatchAndRewrite(op *ir.Operation, r *Rewriter) (bool, error) {
	c := r.CreateConstant(optypes.TFConst, ir.IntAttr(0), op.Result().Shape())
	return true, r.ReplaceOp(op, c)
}

// badPattern tries to replace the op with a value of a different type.
type badPattern struct {
	root optypes.OpType
}

func (p badPattern) Root() optypes.OpType { return p.root }

func (p badPattern) MatchAndRewrite(op *ir.Operation, r *Rewriter) (bool, error) {
	wrong := r.CreateConstant(optypes.TFConst, ir.IntAttr(0), shapes.Make(dtypes.S64, 17))
	if err := r.ReplaceOp(op, wrong); err != nil {
		return false, err
	}
	return true, nil
}

func testTarget() *Target {
	return NewTarget().
		AddLegalDialect(optypes.TF).
		AddIllegalDialect(optypes.HLO).
		AddLegalOp(optypes.FuncCall, optypes.FuncConstant)
}

func TestTargetLegality(t *testing.T) {
	target := testTarget()
	assert.True(t, target.IsLegal(optypes.TFAddV2))
	assert.True(t, target.IsLegal(optypes.FuncCall))
	assert.False(t, target.IsLegal(optypes.HLOAdd))
	assert.True(t, target.IsIllegal(optypes.HLOAdd))
	// func.return is neither legal nor illegal: unknown, allowed to stay.
	assert.False(t, target.IsLegal(optypes.FuncReturn))
	assert.False(t, target.IsIllegal(optypes.FuncReturn))
}

func TestConversionRewrites(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	x := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	neg := fn.NewOp(optypes.HLONeg, []*ir.Value{x}, nil, shapes.Make(dtypes.F32, 4))
	fn.Return(neg.Result())

	patterns := []Pattern{renamePattern{src: optypes.HLONeg, dst: optypes.TFNeg}}
	require.NoError(t, ApplyPartialConversion(fn, testTarget(), patterns))
	assert.Equal(t, 0, fn.CountDialect(optypes.HLO))
	assert.Equal(t, 1, fn.CountOps(optypes.TFNeg))
	assert.Equal(t, 1, fn.CountOps(optypes.FuncReturn))
}

func TestConversionIsIdempotentOnLegalGraph(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	x := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	neg := fn.NewOp(optypes.TFNeg, []*ir.Value{x}, nil, shapes.Make(dtypes.F32, 4))
	fn.Return(neg.Result())
	before := fn.String()

	patterns := []Pattern{renamePattern{src: optypes.HLONeg, dst: optypes.TFNeg}}
	require.NoError(t, ApplyPartialConversion(fn, testTarget(), patterns))
	assert.Equal(t, before, fn.String())
	require.NoError(t, ApplyPartialConversion(fn, testTarget(), patterns))
	assert.Equal(t, before, fn.String())
}

func TestFirstMatchWinsInRegistrationOrder(t *testing.T) {
	build := func() (*ir.Function, *ir.Module) {
		m := ir.NewModule("test")
		fn := m.NewFunction("main", true)
		x := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
		neg := fn.NewOp(optypes.HLONeg, []*ir.Value{x}, nil, shapes.Make(dtypes.F32, 4))
		fn.Return(neg.Result())
		return fn, m
	}

	// A declining first pattern hands over to the second.
	fn, _ := build()
	patterns := []Pattern{
		declinePattern{root: optypes.HLONeg, createNoise: true},
		renamePattern{src: optypes.HLONeg, dst: optypes.TFNeg},
	}
	require.NoError(t, ApplyPartialConversion(fn, testTarget(), patterns))
	assert.Equal(t, 1, fn.CountOps(optypes.TFNeg))
	assert.Equal(t, 0, fn.CountOps(optypes.TFAbs))
	// The declined attempt's noise constant was rolled back.
	assert.Equal(t, 0, fn.CountOps(optypes.TFConst))

	// With two applicable patterns, registration order decides.
	fn, _ = build()
	patterns = []Pattern{
		renamePattern{src: optypes.HLONeg, dst: optypes.TFAbs},
		renamePattern{src: optypes.HLONeg, dst: optypes.TFNeg},
	}
	require.NoError(t, ApplyPartialConversion(fn, testTarget(), patterns))
	assert.Equal(t, 1, fn.CountOps(optypes.TFAbs))
	assert.Equal(t, 0, fn.CountOps(optypes.TFNeg))
}

func TestConversionFailsAtomically(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	x := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	neg := fn.NewOp(optypes.HLONeg, []*ir.Value{x}, nil, shapes.Make(dtypes.F32, 4))
	// No pattern registered for mhlo.broadcast_in_dim.
	bcast := fn.NewOp(optypes.HLOBroadcastInDim, []*ir.Value{neg.Result()}, nil, shapes.Make(dtypes.F32, 2, 4))
	fn.Return(bcast.Result())
	before := fn.String()

	patterns := []Pattern{renamePattern{src: optypes.HLONeg, dst: optypes.TFNeg}}
	err := ApplyPartialConversion(fn, testTarget(), patterns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mhlo.broadcast_in_dim")

	// Even the convertible mhlo.negate was rolled back with everything else.
	assert.Equal(t, before, fn.String())
	assert.Equal(t, 1, fn.CountOps(optypes.HLONeg))
	assert.Equal(t, 0, fn.CountOps(optypes.TFNeg))
}

func TestReplacementMustPreserveTypes(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	x := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	neg := fn.NewOp(optypes.HLONeg, []*ir.Value{x}, nil, shapes.Make(dtypes.F32, 4))
	fn.Return(neg.Result())
	before := fn.String()

	err := ApplyPartialConversion(fn, testTarget(), []Pattern{badPattern{root: optypes.HLONeg}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type changed")
	assert.Equal(t, before, fn.String())
}

func TestGarbageCollectsOrphanedOperands(t *testing.T) {
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	c := fn.NewConstant(optypes.FuncConstant, ir.IntAttr(3), shapes.Make(dtypes.F32, 4))
	neg := fn.NewOp(optypes.HLONeg, []*ir.Value{c}, nil, shapes.Make(dtypes.F32, 4))
	fn.Return(neg.Result())

	patterns := []Pattern{dropInputPattern{root: optypes.HLONeg}}
	require.NoError(t, ApplyPartialConversion(fn, testTarget(), patterns))

	// The replacement dropped its use of the func.constant, so the
	// constant was garbage-collected.
	assert.Equal(t, 0, fn.CountOps(optypes.FuncConstant))
	assert.Equal(t, 1, fn.CountOps(optypes.TFConst))
	assert.Equal(t, 2, fn.NumOps())
}

func TestNewOpsAreProcessedTransitively(t *testing.T) {
	// mhlo.negate is rewritten into mhlo.abs, which is itself illegal and
	// must be rewritten in turn by the next pattern.
	m := ir.NewModule("test")
	fn := m.NewFunction("main", true)
	x := fn.NewInput(shapes.Make(dtypes.F32, 4), "")
	neg := fn.NewOp(optypes.HLONeg, []*ir.Value{x}, nil, shapes.Make(dtypes.F32, 4))
	fn.Return(neg.Result())

	patterns := []Pattern{
		renamePattern{src: optypes.HLONeg, dst: optypes.HLOAbs},
		renamePattern{src: optypes.HLOAbs, dst: optypes.TFAbs},
	}
	require.NoError(t, ApplyPartialConversion(fn, testTarget(), patterns))
	assert.Equal(t, 0, fn.CountDialect(optypes.HLO))
	assert.Equal(t, 1, fn.CountOps(optypes.TFAbs))
}

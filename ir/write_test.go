package ir

import (
	"testing"

	"github.com/gomlx/hlo2tf/dtypes"
	"github.com/gomlx/hlo2tf/ir/optypes"
	"github.com/gomlx/hlo2tf/shapes"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteModule(t *testing.T) {
	m := NewModule("example")
	fn := m.NewFunction("main", true)
	arg := fn.NewInput(shapes.Make(dtypes.F32, 2, 4), "")
	slice := fn.NewOp(optypes.HLOSlice, []*Value{arg},
		map[string]Attribute{
			"start_indices": NewDenseIntAttr(0, 1),
			"limit_indices": NewDenseIntAttr(2, 4),
			"strides":       NewDenseIntAttr(1, 1),
		},
		shapes.Make(dtypes.F32, 2, 3))
	fn.Return(slice.Result())

	want := `module @example {
  func.func public @main(%arg0: tensor<2x4xf32>) -> (tensor<2x3xf32>) {
    %1 = "mhlo.slice"(%arg0) {limit_indices = dense<[2, 4]> : tensor<2xi64>, start_indices = dense<[0, 1]> : tensor<2xi64>, strides = dense<1> : tensor<2xi64>} : (tensor<2x4xf32>) -> (tensor<2x3xf32>)
    "func.return"(%1) : (tensor<2x3xf32>) -> ()
  }
}`
	if diff := cmp.Diff(want, m.String()); diff != "" {
		t.Errorf("module text mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteOperation(t *testing.T) {
	m := NewModule("test")
	fn := m.NewFunction("f", false)
	c := fn.NewConstant(optypes.TFConst, NewDenseIntAttr(2, 3), shapes.Make(dtypes.S64, 2))
	op := c.DefiningOp()
	require.NotNil(t, op)
	assert.Equal(t,
		`    %0 = "tf.Const"() {value = dense<[2, 3]> : tensor<2xi64>} : () -> (tensor<2xi64>)`,
		op.String())
}

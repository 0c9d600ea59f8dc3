package ir

import (
	"fmt"
	"io"

	"github.com/gomlx/hlo2tf/shapes"
)

// Value represents one SSA result in a function, like `%0` or `%arg0`.
//
// Every Value has exactly one defining Operation, or is a function
// argument (DefiningOp() == nil). Consumers reference values, they never
// own them.
type Value struct {
	id    int
	shape shapes.Shape
	def   *Operation // nil for function arguments
	name  string     // Optional name composed of letters, digits and underscore
}

// Shape returns the shaped type of the value.
func (v *Value) Shape() shapes.Shape { return v.shape }

// DefiningOp returns the operation that produces this value, or nil if the
// value is a function argument.
func (v *Value) DefiningOp() *Operation { return v.def }

// IsFunctionArgument returns whether the value is a function argument.
func (v *Value) IsFunctionArgument() bool { return v.def == nil }

// Write writes the value reference in MLIR-like text format to the given
// writer.
func (v *Value) Write(w io.Writer) error {
	if v.name != "" {
		_, err := fmt.Fprintf(w, "%%%s", v.name)
		return err
	}
	_, err := fmt.Fprintf(w, "%%%d", v.id)
	return err
}

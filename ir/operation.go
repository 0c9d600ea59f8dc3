package ir

import (
	"github.com/gomlx/hlo2tf/ir/optypes"
)

// Operation is a single node of the program graph.
//
// The public fields can be introspected, but they should only be changed
// through the Function mutation methods, so the function's bookkeeping
// stays consistent.
type Operation struct {
	// Kind of the operation, which also determines its dialect.
	Kind optypes.OpType

	// Inputs consumed by the operation, in order.
	Inputs []*Value

	// Attrs maps attribute names to their constant values.
	Attrs map[string]Attribute

	// Outputs produced by the operation, in order. May be empty for
	// operations like func.return.
	Outputs []*Value
}

// Result returns the single output of the operation. It panics if the
// operation does not have exactly one output; use Outputs directly for
// multi-result operations.
func (op *Operation) Result() *Value {
	if len(op.Outputs) != 1 {
		panic("ir: Result() called on operation without exactly one output")
	}
	return op.Outputs[0]
}

// Attr returns the named attribute, or nil if not set.
func (op *Operation) Attr(name string) Attribute {
	if op.Attrs == nil {
		return nil
	}
	return op.Attrs[name]
}

// BoolAttr returns the named attribute if it is set and is a boolean.
func (op *Operation) BoolAttr(name string) (value, ok bool) {
	attr, isBool := op.Attr(name).(BoolAttr)
	return bool(attr), isBool
}

// IntAttr returns the named attribute if it is set and is an integer scalar.
func (op *Operation) IntAttr(name string) (int64, bool) {
	attr, isInt := op.Attr(name).(IntAttr)
	return int64(attr), isInt
}

// StringAttr returns the named attribute if it is set and is a string.
func (op *Operation) StringAttr(name string) (string, bool) {
	attr, isString := op.Attr(name).(StringAttr)
	return string(attr), isString
}

// DenseIntAttr returns the named attribute if it is set and is a dense
// integer array.
func (op *Operation) DenseIntAttr(name string) (*DenseIntAttr, bool) {
	attr, isDense := op.Attr(name).(*DenseIntAttr)
	return attr, isDense
}

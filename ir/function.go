package ir

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gomlx/hlo2tf/ir/optypes"
	"github.com/gomlx/hlo2tf/shapes"
	"github.com/pkg/errors"
)

// Function represents one `func.func` of a Module: its arguments and an
// ordered list of operations.
//
// Functions own their operations; operations own their output values. All
// mutation of the graph goes through the Function methods so value ids and
// ordering stay consistent.
type Function struct {
	// Name of the function. It should not include the "@" prefix.
	Name string

	// IsPublic marks the function as public, rendered as `func.func public @...`.
	IsPublic bool

	inputs []*Value
	ops    []*Operation

	// nextValueID numbers the values (e.g. %0, %1) created in the
	// function's scope.
	nextValueID int

	diagnostics []string
}

// NewInput appends a function argument with the given shape and optional
// name (defaults to "argN") and returns its value.
func (f *Function) NewInput(shape shapes.Shape, name string) *Value {
	if name == "" {
		name = fmt.Sprintf("arg%d", len(f.inputs))
	}
	v := f.newValue(shape, nil)
	v.name = name
	f.inputs = append(f.inputs, v)
	return v
}

// Inputs returns the function arguments.
func (f *Function) Inputs() []*Value { return f.inputs }

// Ops returns the operations of the function in program order. The
// returned slice must not be mutated.
func (f *Function) Ops() []*Operation { return f.ops }

// NumOps returns the number of operations in the function.
func (f *Function) NumOps() int { return len(f.ops) }

// newValue creates a new unique value within the function's scope.
func (f *Function) newValue(shape shapes.Shape, def *Operation) *Value {
	v := &Value{
		id:    f.nextValueID,
		shape: shape,
		def:   def,
	}
	f.nextValueID++
	return v
}

// newOp builds an operation and its output values without inserting it.
func (f *Function) newOp(kind optypes.OpType, inputs []*Value, attrs map[string]Attribute, results ...shapes.Shape) *Operation {
	op := &Operation{
		Kind:   kind,
		Inputs: slices.Clone(inputs),
		Attrs:  attrs,
	}
	for _, shape := range results {
		op.Outputs = append(op.Outputs, f.newValue(shape, op))
	}
	return op
}

// NewOp appends a new operation to the function and returns it. The result
// shapes are given explicitly, one per output value.
func (f *Function) NewOp(kind optypes.OpType, inputs []*Value, attrs map[string]Attribute, results ...shapes.Shape) *Operation {
	op := f.newOp(kind, inputs, attrs, results...)
	f.ops = append(f.ops, op)
	return op
}

// InsertOpAfter creates a new operation and inserts it immediately after
// the given operation, to preserve dominance of its inputs. A nil after
// inserts at the start of the function.
func (f *Function) InsertOpAfter(after *Operation, kind optypes.OpType, inputs []*Value, attrs map[string]Attribute, results ...shapes.Shape) *Operation {
	op := f.newOp(kind, inputs, attrs, results...)
	pos := 0
	if after != nil {
		i := slices.Index(f.ops, after)
		if i < 0 {
			// Not in this function anymore, append at the end.
			i = len(f.ops) - 1
		}
		pos = i + 1
	}
	f.ops = slices.Insert(f.ops, pos, op)
	return op
}

// NewConstant appends a constant operation of the given kind (e.g.
// optypes.HLOConstant, optypes.TFConst) holding value as its "value"
// attribute, and returns the resulting value.
func (f *Function) NewConstant(kind optypes.OpType, value Attribute, shape shapes.Shape) *Value {
	op := f.NewOp(kind, nil, map[string]Attribute{"value": value}, shape)
	return op.Outputs[0]
}

// Return appends a func.return operation with the given operands.
func (f *Function) Return(values ...*Value) {
	f.NewOp(optypes.FuncReturn, values, nil)
}

// Outputs returns the shapes returned by the function, taken from its
// func.return operation, if any.
func (f *Function) Outputs() []shapes.Shape {
	for _, op := range f.ops {
		if op.Kind == optypes.FuncReturn {
			outputs := make([]shapes.Shape, len(op.Inputs))
			for i, in := range op.Inputs {
				outputs[i] = in.Shape()
			}
			return outputs
		}
	}
	return nil
}

// HasUses returns whether any operation in the function consumes the value.
func (f *Function) HasUses(v *Value) bool {
	for _, op := range f.ops {
		if slices.Contains(op.Inputs, v) {
			return true
		}
	}
	return false
}

// ReplaceAllUsesWith redirects every consumer of oldValue to newValue.
func (f *Function) ReplaceAllUsesWith(oldValue, newValue *Value) {
	for _, op := range f.ops {
		for i, in := range op.Inputs {
			if in == oldValue {
				op.Inputs[i] = newValue
			}
		}
	}
}

// EraseOp removes the operation from the function. It fails if any of the
// operation's outputs still has consumers.
func (f *Function) EraseOp(op *Operation) error {
	for _, out := range op.Outputs {
		if f.HasUses(out) {
			return errors.Errorf("cannot erase %s: result %%%d still has uses", op.Kind.ToMLIR(), out.id)
		}
	}
	i := slices.Index(f.ops, op)
	if i < 0 {
		return errors.Errorf("cannot erase %s: not in function %q", op.Kind.ToMLIR(), f.Name)
	}
	f.ops = slices.Delete(f.ops, i, i+1)
	return nil
}

// CountOps returns the number of operations of the given kind.
func (f *Function) CountOps(kind optypes.OpType) int {
	count := 0
	for _, op := range f.ops {
		if op.Kind == kind {
			count++
		}
	}
	return count
}

// CountDialect returns the number of operations belonging to the dialect.
func (f *Function) CountDialect(dialect optypes.Dialect) int {
	count := 0
	for _, op := range f.ops {
		if op.Kind.Dialect() == dialect {
			count++
		}
	}
	return count
}

// Clone makes a deep copy of the function: new operations and values, with
// consumer edges remapped. Attribute values are shared, they are immutable.
func (f *Function) Clone() *Function {
	newF := &Function{
		Name:        f.Name,
		IsPublic:    f.IsPublic,
		nextValueID: f.nextValueID,
		diagnostics: slices.Clone(f.diagnostics),
	}
	valueMap := make(map[*Value]*Value, f.nextValueID)
	cloneValue := func(v *Value, def *Operation) *Value {
		nv := &Value{
			id:    v.id,
			shape: v.shape.Clone(),
			def:   def,
			name:  v.name,
		}
		valueMap[v] = nv
		return nv
	}
	for _, in := range f.inputs {
		newF.inputs = append(newF.inputs, cloneValue(in, nil))
	}
	for _, op := range f.ops {
		newOp := &Operation{
			Kind:  op.Kind,
			Attrs: maps.Clone(op.Attrs),
		}
		for _, in := range op.Inputs {
			newOp.Inputs = append(newOp.Inputs, valueMap[in])
		}
		for _, out := range op.Outputs {
			newOp.Outputs = append(newOp.Outputs, cloneValue(out, newOp))
		}
		newF.ops = append(newF.ops, newOp)
	}
	return newF
}

// RestoreFrom replaces the function's body (arguments, operations, values
// and diagnostics) with the snapshot's. Used to roll back a failed
// conversion atomically.
func (f *Function) RestoreFrom(snapshot *Function) {
	f.inputs = snapshot.inputs
	f.ops = snapshot.ops
	f.nextValueID = snapshot.nextValueID
	f.diagnostics = snapshot.diagnostics
}

// EmitError attaches a diagnostic message to the function.
func (f *Function) EmitError(format string, args ...any) {
	f.diagnostics = append(f.diagnostics, fmt.Sprintf(format, args...))
}

// Diagnostics returns the diagnostics attached to the function so far.
func (f *Function) Diagnostics() []string { return f.diagnostics }

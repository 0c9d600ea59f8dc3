package rewrite

import (
	"github.com/gomlx/hlo2tf/ir"
	"github.com/gomlx/hlo2tf/ir/optypes"
	"github.com/gomlx/hlo2tf/shapes"
	"github.com/pkg/errors"
)

// Pattern associates a root operation kind with a matcher/builder.
//
// MatchAndRewrite either declines -- returns (false, nil), the engine
// tries the next pattern -- or emits replacement operations through the
// Rewriter, replaces the matched operation and returns (true, nil). A
// non-nil error is a defect (malformed graph or pattern) and aborts the
// whole conversion. A pattern application is atomic: operations created
// before a declination are discarded by the engine.
type Pattern interface {
	// Root is the operation kind the pattern matches.
	Root() optypes.OpType

	// MatchAndRewrite tries to apply the pattern to op.
	MatchAndRewrite(op *ir.Operation, r *Rewriter) (applied bool, err error)
}

// Rewriter is handed to patterns to create replacement operations and
// replace the matched one. It records everything it creates so the engine
// can roll back declined attempts and process new operations transitively.
type Rewriter struct {
	fn             *ir.Function
	insertionPoint *ir.Operation

	created  []*ir.Operation
	replaced map[*ir.Operation]struct{}

	// orphans collects values whose consumer was replaced; their defining
	// operations are garbage-collected at the end of a successful
	// conversion if they end up with zero consumers.
	orphans []*ir.Value
}

// NewRewriter creates a rewriter over the function. ApplyPartialConversion
// creates its own; this is mostly useful to apply a single pattern, e.g.
// in tests.
func NewRewriter(fn *ir.Function) *Rewriter {
	return &Rewriter{
		fn:       fn,
		replaced: make(map[*ir.Operation]struct{}),
	}
}

// Func returns the function being rewritten.
func (r *Rewriter) Func() *ir.Function { return r.fn }

// SetInsertionPointAfter makes subsequent Create calls insert immediately
// after the given operation.
func (r *Rewriter) SetInsertionPointAfter(op *ir.Operation) {
	r.insertionPoint = op
}

// Create inserts a new operation at the insertion point and moves the
// insertion point past it, so consecutive creations keep their order.
func (r *Rewriter) Create(kind optypes.OpType, inputs []*ir.Value, attrs map[string]ir.Attribute, results ...shapes.Shape) *ir.Operation {
	op := r.fn.InsertOpAfter(r.insertionPoint, kind, inputs, attrs, results...)
	r.insertionPoint = op
	r.created = append(r.created, op)
	return op
}

// CreateConstant inserts a new constant operation of the given kind
// holding value, and returns its result.
func (r *Rewriter) CreateConstant(kind optypes.OpType, value ir.Attribute, shape shapes.Shape) *ir.Value {
	op := r.Create(kind, nil, map[string]ir.Attribute{"value": value}, shape)
	return op.Result()
}

// ReplaceOp replaces op: all consumers of its results are redirected to
// newResults, and op is erased. The replacement must preserve the number
// and the types of the original results.
func (r *Rewriter) ReplaceOp(op *ir.Operation, newResults ...*ir.Value) error {
	if len(newResults) != len(op.Outputs) {
		return errors.Errorf("replacing %s: %d replacement values for %d results",
			op.Kind.ToMLIR(), len(newResults), len(op.Outputs))
	}
	for i, newV := range newResults {
		if !newV.Shape().Equal(op.Outputs[i].Shape()) {
			return errors.Errorf("replacing %s: result #%d type changed from %s to %s",
				op.Kind.ToMLIR(), i, op.Outputs[i].Shape(), newV.Shape())
		}
	}
	for i, newV := range newResults {
		r.fn.ReplaceAllUsesWith(op.Outputs[i], newV)
	}
	r.orphans = append(r.orphans, op.Inputs...)
	if err := r.fn.EraseOp(op); err != nil {
		return err
	}
	r.replaced[op] = struct{}{}
	return nil
}

// beginAttempt marks the start of one pattern application on op.
func (r *Rewriter) beginAttempt(op *ir.Operation) {
	r.insertionPoint = op
	r.created = r.created[:0]
}

// rollbackAttempt discards the operations created by a declined pattern,
// in reverse creation order.
func (r *Rewriter) rollbackAttempt() error {
	for i := len(r.created) - 1; i >= 0; i-- {
		if err := r.fn.EraseOp(r.created[i]); err != nil {
			return errors.Wrap(err, "rolling back declined pattern")
		}
	}
	r.created = r.created[:0]
	return nil
}

// takeCreated returns the operations created by a successful pattern
// application and resets the record.
func (r *Rewriter) takeCreated() []*ir.Operation {
	created := r.created
	r.created = nil
	return created
}

func (r *Rewriter) wasReplaced(op *ir.Operation) bool {
	_, ok := r.replaced[op]
	return ok
}

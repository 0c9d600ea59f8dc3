package rewrite

import (
	"strings"

	"github.com/gomlx/hlo2tf/ir"
	"github.com/gomlx/hlo2tf/ir/optypes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ApplyPartialConversion rewrites fn until it contains no operation of an
// illegal kind, per target.
//
// Operations are visited in program order; operations created by patterns
// are visited transitively, since they may themselves be illegal. For each
// illegal operation the applicable patterns are tried in registration
// order and the first one that applies wins; the registration order is
// therefore the documented precedence between patterns sharing a root.
//
// Operations that are neither legal nor illegal do not need to match any
// pattern and are left as-is ("partial" conversion). If any illegal
// operation exhausts all patterns, the whole conversion fails and fn is
// rolled back to its pre-conversion state: no partially-converted output
// is ever produced.
func ApplyPartialConversion(fn *ir.Function, target *Target, patterns []Pattern) error {
	byRoot := make(map[optypes.OpType][]Pattern)
	for _, p := range patterns {
		byRoot[p.Root()] = append(byRoot[p.Root()], p)
	}

	snapshot := fn.Clone()
	r := NewRewriter(fn)
	worklist := make([]*ir.Operation, len(fn.Ops()))
	copy(worklist, fn.Ops())

	var unconverted []*ir.Operation
	for len(worklist) > 0 {
		op := worklist[0]
		worklist = worklist[1:]
		if r.wasReplaced(op) {
			continue
		}
		if target.IsLegal(op.Kind) {
			continue
		}
		if !target.IsIllegal(op.Kind) {
			// Unknown legality: allowed to stay in a partial conversion.
			continue
		}

		applied := false
		for _, pattern := range byRoot[op.Kind] {
			r.beginAttempt(op)
			ok, err := pattern.MatchAndRewrite(op, r)
			if err != nil {
				fn.RestoreFrom(snapshot)
				return errors.Wrapf(err, "pattern for %s failed", op.Kind.ToMLIR())
			}
			if !ok {
				if err := r.rollbackAttempt(); err != nil {
					fn.RestoreFrom(snapshot)
					return err
				}
				continue
			}
			created := r.takeCreated()
			klog.V(2).Infof("rewrote %s into %d new op(s)", op.Kind.ToMLIR(), len(created))
			worklist = append(worklist, created...)
			applied = true
			break
		}
		if !applied {
			unconverted = append(unconverted, op)
		}
	}

	if len(unconverted) > 0 {
		fn.RestoreFrom(snapshot)
		kinds := make([]string, len(unconverted))
		for i, op := range unconverted {
			kinds[i] = op.Kind.ToMLIR()
		}
		return errors.Errorf("failed to legalize %d operation(s): %s",
			len(unconverted), strings.Join(kinds, ", "))
	}

	collectGarbage(fn, r.orphans)
	return nil
}

// collectGarbage erases operations orphaned by replacements: defining
// operations of the given values that ended up with zero consumers,
// cascading to their own operands. Only side-effect-free operations are
// collected.
func collectGarbage(fn *ir.Function, candidates []*ir.Value) {
	for len(candidates) > 0 {
		v := candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
		def := v.DefiningOp()
		if def == nil || hasSideEffects(def.Kind) {
			continue
		}
		live := false
		for _, out := range def.Outputs {
			if fn.HasUses(out) {
				live = true
				break
			}
		}
		if live {
			continue
		}
		if err := fn.EraseOp(def); err != nil {
			// Already erased through another of its results.
			continue
		}
		klog.V(2).Infof("garbage-collected dead %s", def.Kind.ToMLIR())
		candidates = append(candidates, def.Inputs...)
	}
}

func hasSideEffects(kind optypes.OpType) bool {
	return kind == optypes.FuncCall || kind == optypes.FuncReturn
}

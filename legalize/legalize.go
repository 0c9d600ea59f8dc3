// Package legalize implements the tf-legalize-hlo pass: it rewrites
// HLO-dialect operations of a module into TF-dialect operations,
// preserving result types.
//
// The conversion is partial: only HLO operations must disappear, anything
// else (func dialect, already-legal TF operations) is left untouched. A
// function with an HLO operation no pattern can convert fails as a whole,
// with a diagnostic attached to it.
package legalize

import (
	"github.com/gomlx/hlo2tf/ir"
	"github.com/gomlx/hlo2tf/ir/optypes"
	"github.com/gomlx/hlo2tf/passes"
	"github.com/gomlx/hlo2tf/rewrite"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"k8s.io/klog/v2"
)

const (
	// Name identifies the pass in the registry and on command lines.
	Name = "tf-legalize-hlo"

	// Description is the one-line summary of the pass.
	Description = "Legalize from HLO to the TF dialect"
)

// Pass converts HLO operations to TF operations, function by function.
type Pass struct {
	patterns []rewrite.Pattern
}

// NewPass creates the legalization pass with its full pattern list.
func NewPass() *Pass {
	return &Pass{patterns: Patterns()}
}

// Name implements passes.Pass.
func (p *Pass) Name() string { return Name }

// Description implements passes.Pass.
func (p *Pass) Description() string { return Description }

// Run legalizes every function of the module. Functions are independent:
// each gets exactly one engine invocation, failures are not retried, and a
// failed function is left exactly as it was, with a diagnostic attached.
// The returned error aggregates the failures of all functions.
func (p *Pass) Run(m *ir.Module) error {
	target := rewrite.NewTarget().
		AddLegalDialect(optypes.TF).
		AddIllegalDialect(optypes.HLO).
		AddLegalOp(optypes.FuncCall, optypes.FuncConstant)

	var errs error
	for _, fn := range m.Functions {
		err := rewrite.ApplyPartialConversion(fn, target, p.patterns)
		if err != nil {
			fn.EmitError("mhlo to TF legalization failed: %v", err)
			errs = multierr.Append(errs, errors.Wrapf(err, "function @%s", fn.Name))
			continue
		}
		klog.V(1).Infof("legalized function @%s (%d ops)", fn.Name, fn.NumOps())
	}
	return errs
}

func init() {
	passes.Register(passes.Registration{
		Name:        Name,
		Description: Description,
		New:         func() passes.Pass { return NewPass() },
	})
}

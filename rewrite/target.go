// Package rewrite implements a pattern-based dialect-conversion engine
// over the ir graph.
//
// A conversion is driven by a Target, which declares which operation kinds
// are legal (must survive unchanged) and which dialects are illegal (must
// be eliminated), and an ordered list of Patterns that rewrite illegal
// operations into legal ones. Conversion is partial: operations that are
// neither legal nor illegal are left untouched.
package rewrite

import (
	"github.com/gomlx/hlo2tf/ir/optypes"
)

// Target describes the legality of operation kinds for a conversion.
//
// Legality is resolved in order: an explicitly legal op kind wins, then a
// legal dialect, then an illegal dialect. Kinds not covered by any of the
// three are "unknown" and allowed to stay in a partial conversion.
type Target struct {
	legalDialects   map[optypes.Dialect]struct{}
	illegalDialects map[optypes.Dialect]struct{}
	legalOps        map[optypes.OpType]struct{}
}

// NewTarget creates an empty conversion target.
func NewTarget() *Target {
	return &Target{
		legalDialects:   make(map[optypes.Dialect]struct{}),
		illegalDialects: make(map[optypes.Dialect]struct{}),
		legalOps:        make(map[optypes.OpType]struct{}),
	}
}

// AddLegalDialect marks every operation kind of the given dialects legal.
// It returns the target to allow chaining.
func (t *Target) AddLegalDialect(dialects ...optypes.Dialect) *Target {
	for _, d := range dialects {
		t.legalDialects[d] = struct{}{}
	}
	return t
}

// AddIllegalDialect marks every operation kind of the given dialects
// illegal: the conversion must eliminate them all.
func (t *Target) AddIllegalDialect(dialects ...optypes.Dialect) *Target {
	for _, d := range dialects {
		t.illegalDialects[d] = struct{}{}
	}
	return t
}

// AddLegalOp marks individual operation kinds legal, regardless of their
// dialect's legality.
func (t *Target) AddLegalOp(kinds ...optypes.OpType) *Target {
	for _, kind := range kinds {
		t.legalOps[kind] = struct{}{}
	}
	return t
}

// IsLegal returns whether operations of the kind may survive the
// conversion unchanged.
func (t *Target) IsLegal(kind optypes.OpType) bool {
	if _, ok := t.legalOps[kind]; ok {
		return true
	}
	_, ok := t.legalDialects[kind.Dialect()]
	return ok
}

// IsIllegal returns whether operations of the kind must be eliminated by
// the conversion.
func (t *Target) IsIllegal(kind optypes.OpType) bool {
	if t.IsLegal(kind) {
		return false
	}
	_, ok := t.illegalDialects[kind.Dialect()]
	return ok
}

// Package sat dispatches a formula to one of the solver families under
// a uniform contract. The families share only the formula and result
// types, so the dispatch is a tagged variant, not a type hierarchy.
package sat

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/msharpe248/bsat-sub001/cnf"
	"github.com/msharpe248/bsat-sub001/poly"
	"github.com/msharpe248/bsat-sub001/solver"
	"github.com/msharpe248/bsat-sub001/walksat"
)

// Kind names a solver family.
type Kind string

const (
	KindCDCL    Kind = "cdcl"
	KindTwoSat  Kind = "2sat"
	KindHorn    Kind = "horn"
	KindXor     Kind = "xor"
	KindWalkSAT Kind = "walksat"
)

// Kinds lists the recognized solver families.
func Kinds() []string {
	return lo.Map(
		[]Kind{KindCDCL, KindTwoSat, KindHorn, KindXor, KindWalkSAT},
		func(k Kind, _ int) string { return string(k) },
	)
}

// Solve runs the selected family on f. The config applies to the CDCL
// engine; the specialized solvers take no tunables, and WalkSAT maps
// the decision budget onto its flip budget.
func Solve(f *cnf.Formula, cfg solver.Config, kind Kind) (solver.Result, error) {
	switch kind {
	case KindCDCL:
		return solver.Solve(f, cfg)
	case KindTwoSat:
		return poly.SolveTwoSat(f)
	case KindHorn:
		return poly.SolveHorn(f)
	case KindXor:
		return poly.SolveXor(f)
	case KindWalkSAT:
		return walksat.Solve(f, walksat.Config{MaxFlips: int(cfg.MaxDecisions)})
	default:
		return solver.Result{Status: solver.StatusUnknown}, fmt.Errorf("unknown solver kind: %q", kind)
	}
}

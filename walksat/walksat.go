// Package walksat implements WalkSAT, an incomplete stochastic local
// search. It can find models of satisfiable formulas but can never
// prove unsatisfiability; a spent flip budget yields StatusUnknown.
package walksat

import (
	"math/rand"

	"github.com/msharpe248/bsat-sub001/cnf"
	"github.com/msharpe248/bsat-sub001/solver"
)

// ReasonFlipBudget is the Reason reported when the flip budget ran out
// without finding a model.
const ReasonFlipBudget = "flip-budget-exhausted"

// Config holds the local-search tunables.
type Config struct {
	MaxFlips int     // flip budget, 0 means DefaultMaxFlips
	Noise    float64 // probability of a random walk move instead of a greedy one
	Seed     int64   // RNG seed; runs with the same seed are reproducible
}

const (
	DefaultMaxFlips = 100000
	DefaultNoise    = 0.5
)

// Solve searches for a model of f by flipping variables of unsatisfied
// clauses, greedily minimizing the number of clauses broken, with a
// random walk step taken with probability Noise.
func Solve(f *cnf.Formula, cfg Config) (solver.Result, error) {
	if err := f.Validate(); err != nil {
		return solver.Result{Status: solver.StatusUnknown}, err
	}
	if f.HasEmptyClause() {
		return solver.Result{Status: solver.StatusUnsatisfiable}, nil
	}
	maxFlips := cfg.MaxFlips
	if maxFlips <= 0 {
		maxFlips = DefaultMaxFlips
	}
	noise := cfg.Noise
	if noise <= 0 {
		noise = DefaultNoise
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	assignment := make(cnf.Assignment, f.NumVars)
	for i := range assignment {
		assignment[i] = rng.Intn(2) == 1
	}

	for flip := 0; flip < maxFlips; flip++ {
		unsat := unsatClauses(f, assignment)
		if len(unsat) == 0 {
			return solver.Result{Status: solver.StatusSatisfiable, Model: assignment}, nil
		}
		c := f.Clauses[unsat[rng.Intn(len(unsat))]]
		var v cnf.Var
		if rng.Float64() < noise {
			v = c[rng.Intn(len(c))].Var()
		} else {
			v = greedyPick(f, assignment, c, rng)
		}
		assignment[v] = !assignment[v]
	}
	return solver.Result{Status: solver.StatusUnknown, Reason: ReasonFlipBudget}, nil
}

func unsatClauses(f *cnf.Formula, a cnf.Assignment) []int {
	var out []int
	for i, c := range f.Clauses {
		sat := false
		for _, p := range c {
			if a.Lit(p) {
				sat = true
				break
			}
		}
		if !sat {
			out = append(out, i)
		}
	}
	return out
}

// greedyPick flips each candidate in turn and keeps the one leaving
// the fewest unsatisfied clauses, breaking ties at random.
func greedyPick(f *cnf.Formula, a cnf.Assignment, c cnf.Clause, rng *rand.Rand) cnf.Var {
	best := c[0].Var()
	bestCount := -1
	ties := 0
	for _, p := range c {
		v := p.Var()
		a[v] = !a[v]
		count := len(unsatClauses(f, a))
		a[v] = !a[v]
		switch {
		case bestCount == -1 || count < bestCount:
			best, bestCount, ties = v, count, 1
		case count == bestCount:
			ties++
			if rng.Intn(ties) == 0 {
				best = v
			}
		}
	}
	return best
}

package walksat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msharpe248/bsat-sub001/cnf"
	"github.com/msharpe248/bsat-sub001/solver"
)

func buildFormula(numVars int, clauses [][]int) *cnf.Formula {
	f := cnf.New(numVars)
	for _, c := range clauses {
		lits := make([]cnf.Lit, len(c))
		for i, v := range c {
			lits[i] = cnf.IntToLit(v)
		}
		f.AddClause(lits...)
	}
	return f
}

func TestSolveFindsModel(t *testing.T) {
	f := buildFormula(3, [][]int{{1, 2, 3}, {-1, -2}, {-1, -3}, {-2, -3}})
	res, err := Solve(f, Config{Seed: 42})
	require.NoError(t, err)
	require.Equal(t, solver.StatusSatisfiable, res.Status)
	assert.True(t, f.Satisfied(res.Model))
}

func TestSolveIsReproducible(t *testing.T) {
	f := buildFormula(4, [][]int{{1, 2}, {-2, 3}, {-3, 4}, {-1, -4, 2}})
	a, err := Solve(f, Config{Seed: 7})
	require.NoError(t, err)
	b, err := Solve(f, Config{Seed: 7})
	require.NoError(t, err)
	assert.Equal(t, a.Model, b.Model)
}

func TestSolveCannotRefute(t *testing.T) {
	// (x1) & (!x1) has no model; the search must give up, not claim
	// unsatisfiability.
	f := buildFormula(1, [][]int{{1}, {-1}})
	res, err := Solve(f, Config{MaxFlips: 100, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, solver.StatusUnknown, res.Status)
	assert.Equal(t, ReasonFlipBudget, res.Reason)
}

func TestSolveEmptyClause(t *testing.T) {
	f := buildFormula(1, [][]int{{1}})
	f.AddClause()
	res, err := Solve(f, Config{Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, solver.StatusUnsatisfiable, res.Status)
}

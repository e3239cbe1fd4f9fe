package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msharpe248/bsat-sub001/cnf"
	"github.com/msharpe248/bsat-sub001/solver"
)

func TestDispatch(t *testing.T) {
	// (x1 v x2) & (!x1 v x2): every complete family agrees on
	// satisfiability, and 2-SAT accepts the clause widths.
	f := cnf.New(2)
	f.AddClause(cnf.IntToLit(1), cnf.IntToLit(2))
	f.AddClause(cnf.IntToLit(-1), cnf.IntToLit(2))

	for _, kind := range []Kind{KindCDCL, KindTwoSat, KindWalkSAT} {
		res, err := Solve(f, solver.DefaultConfig(), kind)
		require.NoError(t, err, kind)
		require.Equal(t, solver.StatusSatisfiable, res.Status, kind)
		assert.True(t, f.Satisfied(res.Model), kind)
	}
}

func TestDispatchHorn(t *testing.T) {
	f := cnf.New(2)
	f.AddClause(cnf.IntToLit(1))
	f.AddClause(cnf.IntToLit(-1), cnf.IntToLit(2))

	res, err := Solve(f, solver.DefaultConfig(), KindHorn)
	require.NoError(t, err)
	assert.Equal(t, solver.StatusSatisfiable, res.Status)
}

func TestDispatchUnknownKind(t *testing.T) {
	f := cnf.New(1)
	_, err := Solve(f, solver.DefaultConfig(), Kind("bogus"))
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	assert.Contains(t, Kinds(), "cdcl")
	assert.Contains(t, Kinds(), "walksat")
}

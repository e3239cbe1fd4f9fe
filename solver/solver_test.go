package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msharpe248/bsat-sub001/cnf"
)

// buildFormula makes a formula from DIMACS-style clauses.
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

// pigeonhole encodes pigeons > holes: every pigeon gets a hole, no two
// pigeons share one. Unsatisfiable whenever pigeons > holes.
func pigeonhole(pigeons, holes int) *cnf.Formula {
	f := cnf.New(pigeons * holes)
	x := func(p, h int) cnf.Lit {
		return cnf.NewLit(cnf.Var(p*holes+h), false)
	}
	for p := 0; p < pigeons; p++ {
		var c []cnf.Lit
		for h := 0; h < holes; h++ {
			c = append(c, x(p, h))
		}
		f.AddClause(c...)
	}
	for h := 0; h < holes; h++ {
		for p := 0; p < pigeons; p++ {
			for q := p + 1; q < pigeons; q++ {
				f.AddClause(x(p, h).Flip(), x(q, h).Flip())
			}
		}
	}
	return f
}

// bruteForceSat checks satisfiability by enumeration. Only usable for
// small variable counts.
func bruteForceSat(f *cnf.Formula) bool {
	n := f.NumVars
	a := make(cnf.Assignment, n)
	for bits := 0; bits < 1<<uint(n); bits++ {
		for i := 0; i < n; i++ {
			a[i] = bits&(1<<uint(i)) != 0
		}
		if f.Satisfied(a) {
			return true
		}
	}
	return false
}

func solve(t *testing.T, f *cnf.Formula) Result {
	t.Helper()
	res, err := Solve(f, DefaultConfig())
	require.NoError(t, err)
	return res
}

func TestSimpleSat(t *testing.T) {
	// (x1 v x2) & (!x1 v x2)
	f := buildFormula(2, [][]int{{1, 2}, {-1, 2}})
	res := solve(t, f)
	require.Equal(t, StatusSatisfiable, res.Status)
	assert.True(t, res.Model[1], "x2 must be true")
	assert.True(t, f.Satisfied(res.Model))
}

func TestPigeonholeUnsat(t *testing.T) {
	res := solve(t, pigeonhole(5, 4))
	require.Equal(t, StatusUnsatisfiable, res.Status)
	assert.Greater(t, res.Stats.Conflicts, uint64(0))
	assert.Greater(t, res.Stats.LearntClauses, uint64(0))
}

func TestEmptyClauseUnsat(t *testing.T) {
	f := cnf.New(2)
	f.AddClause(cnf.NewLit(0, false))
	f.AddClause()
	res := solve(t, f)
	require.Equal(t, StatusUnsatisfiable, res.Status)
	assert.Equal(t, uint64(0), res.Stats.Decisions)
}

func TestUnitClauseSat(t *testing.T) {
	f := buildFormula(1, [][]int{{1}})
	res := solve(t, f)
	require.Equal(t, StatusSatisfiable, res.Status)
	assert.True(t, res.Model[0], "x1 must be true")
	assert.GreaterOrEqual(t, res.Stats.Propagations, uint64(1))
}

func TestExactlyOneOfThree(t *testing.T) {
	f := buildFormula(3, [][]int{{1, 2, 3}, {-1, -2}, {-1, -3}, {-2, -3}})
	res := solve(t, f)
	require.Equal(t, StatusSatisfiable, res.Status)
	require.True(t, f.Satisfied(res.Model))
	count := 0
	for _, v := range res.Model {
		if v {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTotalModel(t *testing.T) {
	// x3 is unconstrained but must still get a value.
	f := buildFormula(3, [][]int{{1, 2}, {-1, 2}})
	res := solve(t, f)
	require.Equal(t, StatusSatisfiable, res.Status)
	assert.Len(t, res.Model, 3)
}

func TestOutOfRangeLiteral(t *testing.T) {
	f := cnf.New(1)
	f.AddClause(cnf.NewLit(4, false))
	_, err := Solve(f, DefaultConfig())
	require.Error(t, err)
}

func TestBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VarDecay = 1.5
	_, err := Solve(buildFormula(1, [][]int{{1}}), cfg)
	require.Error(t, err)
}

func TestDeadlineUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDecisions = 1
	res, err := Solve(pigeonhole(6, 5), cfg)
	require.NoError(t, err)
	require.Equal(t, StatusUnknown, res.Status)
	assert.Equal(t, ReasonDeadline, res.Reason)
	assert.GreaterOrEqual(t, res.Stats.Decisions, uint64(1))
}

func TestSolveAgainstBruteForce(t *testing.T) {
	cases := [][][]int{
		{{1, 2, 3}, {-1, -2}, {-2, -3}, {3}},
		{{1}, {-1}},
		{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}},
		{{1, -2}, {2, -3}, {3, -1}, {1, 2, 3}},
		{{-1, -2, -3}, {1}, {2}, {3}},
		{{1, 2}, {2, 3}, {3, 1}, {-1, -2}, {-2, -3}, {-3, -1}},
		{{1, 2, -3}, {-1, 3}, {2, 3}, {-2, -3}, {1, -2}},
	}
	for i, clauses := range cases {
		maxVar := 0
		for _, c := range clauses {
			for _, v := range c {
				if v < 0 {
					v = -v
				}
				if v > maxVar {
					maxVar = v
				}
			}
		}
		f := buildFormula(maxVar, clauses)
		res := solve(t, f)
		want := bruteForceSat(f)
		if want {
			require.Equal(t, StatusSatisfiable, res.Status, "case %d", i)
			assert.True(t, f.Satisfied(res.Model), "case %d: model falsifies a clause", i)
		} else {
			require.Equal(t, StatusUnsatisfiable, res.Status, "case %d", i)
		}
	}
}

func TestPolarityModes(t *testing.T) {
	f := buildFormula(2, [][]int{{1, 2}})
	for _, mode := range []PolarityMode{PolarityTrue, PolarityFalse, PolaritySaved} {
		cfg := DefaultConfig()
		cfg.Polarity = mode
		res, err := Solve(f, cfg)
		require.NoError(t, err)
		require.Equal(t, StatusSatisfiable, res.Status, "mode %s", mode)
		assert.True(t, f.Satisfied(res.Model), "mode %s", mode)
	}
}

func TestRestartStrategies(t *testing.T) {
	for _, strategy := range []RestartStrategy{RestartGeometric, RestartLuby} {
		cfg := DefaultConfig()
		cfg.RestartStrategy = strategy
		cfg.RestartFirst = 1 // force frequent restarts
		res, err := Solve(pigeonhole(5, 4), cfg)
		require.NoError(t, err)
		require.Equal(t, StatusUnsatisfiable, res.Status, "strategy %s", strategy)
		assert.Greater(t, res.Stats.Restarts, uint64(0), "strategy %s", strategy)
	}
}

func TestAnalyzeBackjumpsBelowConflictLevel(t *testing.T) {
	// Deciding x1 forces a conflict between (!x1 v x2) and (!x1 v !x2).
	f := buildFormula(2, [][]int{{-1, 2}, {-1, -2}})
	s, err := New(f, DefaultConfig())
	require.NoError(t, err)

	s.newDecisionLevel()
	s.uncheckedEnqueue(cnf.NewLit(0, false), ClaRefUndef)
	confl := s.propagate()
	require.NotEqual(t, ClaRefUndef, confl)

	learnt, backLevel := s.analyze(confl)
	assert.Less(t, backLevel, s.decisionLevel())
	require.Len(t, learnt, 1)
	assert.Equal(t, cnf.NewLit(0, true), learnt[0])
}

func TestWatchInvariantAfterPropagation(t *testing.T) {
	f := buildFormula(4, [][]int{{1, 2, 3}, {-1, 2, 4}, {-2, 3, 4}, {1, -3, -4}})
	s, err := New(f, DefaultConfig())
	require.NoError(t, err)

	s.newDecisionLevel()
	s.uncheckedEnqueue(cnf.NewLit(0, true), ClaRefUndef) // !x1
	confl := s.propagate()
	require.Equal(t, ClaRefUndef, confl)

	for cref, c := range s.allocator.clauses {
		if c.Size() < 2 {
			continue
		}
		bothFalse := s.ValueLit(c.At(0)) == LitBoolFalse && s.ValueLit(c.At(1)) == LitBoolFalse
		assert.False(t, bothFalse, "clause %d has both watched literals false", cref)
	}
}

func TestRestartPreservesLearntsAndActivity(t *testing.T) {
	s, err := New(pigeonhole(5, 4), DefaultConfig())
	require.NoError(t, err)

	// Absorb one conflict, then restart.
	status := s.search(0)
	require.Equal(t, LitBoolUndef, status)
	require.NotEmpty(t, s.learnts)

	learntsBefore := make([]ClauseReference, len(s.learnts))
	copy(learntsBefore, s.learnts)
	activityBefore := make([]float64, len(s.varOrder.activity))
	copy(activityBefore, s.varOrder.activity)

	s.cancelUntil(0)
	assert.Equal(t, learntsBefore, s.learnts)
	assert.Equal(t, activityBefore, s.varOrder.activity)
	assert.Equal(t, 0, s.decisionLevel())
}

func TestReduceDBKeepsLockedClauses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReduceInterval = 1
	cfg.ReduceFraction = 1.0
	res, err := Solve(pigeonhole(6, 5), cfg)
	require.NoError(t, err)
	// Aggressive reduction must not break correctness.
	require.Equal(t, StatusUnsatisfiable, res.Status)
	assert.Greater(t, res.Stats.ReduceDBs, uint64(0))
}

func TestLearntClausesAreConsequences(t *testing.T) {
	// Every learnt clause must be falsified by no satisfying
	// assignment of the original formula. Four pigeons in four holes
	// is satisfiable but forces plenty of conflicts on the way.
	f := pigeonhole(4, 4)
	s, err := New(f, DefaultConfig())
	require.NoError(t, err)
	res := s.Solve()
	require.Equal(t, StatusSatisfiable, res.Status)
	require.True(t, f.Satisfied(res.Model))

	var learnt []cnf.Clause
	for _, cref := range s.learnts {
		c := s.allocator.Get(cref)
		learnt = append(learnt, append(cnf.Clause{}, c.Lits()...))
	}
	n := f.NumVars
	a := make(cnf.Assignment, n)
	for bits := 0; bits < 1<<uint(n); bits++ {
		for i := 0; i < n; i++ {
			a[i] = bits&(1<<uint(i)) != 0
		}
		if !f.Satisfied(a) {
			continue
		}
		for _, c := range learnt {
			sat := false
			for _, p := range c {
				if a.Lit(p) {
					sat = true
					break
				}
			}
			assert.True(t, sat, "learnt clause %v falsified by a model of the input", c)
		}
	}
}

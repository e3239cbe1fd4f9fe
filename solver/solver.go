// Package solver implements a conflict-driven clause-learning (CDCL)
// decision procedure for CNF formulas: two-watched-literal unit
// propagation, first-UIP clause learning with non-chronological
// backtracking, VSIDS branching, learnt-clause database reduction and
// configurable restarts.
package solver

import (
	"log/slog"
	"time"

	"github.com/msharpe248/bsat-sub001/cnf"
)

// Solver is the state of one solve invocation. It owns its trail,
// clause database, watch lists and activity table exclusively; a
// Solver must not be shared between goroutines and is not reusable
// across formulas.
type Solver struct {
	cfg    Config
	logger *slog.Logger

	allocator *clauseAllocator
	clauses   []ClauseReference // problem clauses
	learnts   []ClauseReference // learnt clauses
	watches   *watches

	assigns  []LitBool
	polarity []bool // saved phase per variable
	varData  []varData
	trail    []cnf.Lit
	trailLim []int // trail index of each decision level's start
	qhead    int   // propagation queue head, an index into trail

	varOrder  *activityHeap
	varInc    float64
	clauseInc float32

	seen     []bool
	lbdSeen  []uint64
	lbdStamp uint64

	// ok is false once the clause set is known unsatisfiable at level
	// 0; no further search state may be trusted after that.
	ok      bool
	aborted bool

	conflictsSinceReduce uint64
	deadline             time.Time

	numVars int
	stats   Stats
}

// New builds a solver for f. It validates the formula, loads the
// clauses and runs level-0 propagation of the unit clauses. An empty
// clause in the input is not an error: the solver is created with the
// unsatisfiable verdict already established.
func New(f *cnf.Formula, cfg Config) (*Solver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	n := f.NumVars
	s := &Solver{
		cfg:       cfg,
		logger:    cfg.logger(),
		allocator: newClauseAllocator(),
		watches:   newWatches(n),
		assigns:   make([]LitBool, n),
		polarity:  make([]bool, n),
		varData:   make([]varData, n),
		varOrder:  newActivityHeap(n),
		seen:      make([]bool, n),
		lbdSeen:   make([]uint64, n+1),
		varInc:    cfg.VarInc,
		clauseInc: float32(cfg.ClauseInc),
		ok:        true,
		numVars:   n,
	}
	for i := range s.assigns {
		s.assigns[i] = LitBoolUndef
		s.varData[i] = varData{reason: ClaRefUndef}
		s.insertVarOrder(cnf.Var(i))
	}
	for _, c := range f.Clauses {
		lits, tautology := c.Normalized()
		if tautology {
			continue
		}
		if !s.addClause(lits) {
			break
		}
	}
	return s, nil
}

// NumVars returns the number of variables of the loaded formula.
func (s *Solver) NumVars() int {
	return s.numVars
}

// Statistics returns the counters accumulated so far.
func (s *Solver) Statistics() Stats {
	return s.stats
}

// addClause loads one problem clause at decision level 0, dropping
// already-false literals and skipping already-satisfied clauses. It
// returns false once the clause set is unsatisfiable.
func (s *Solver) addClause(lits []cnf.Lit) bool {
	if s.decisionLevel() != 0 {
		panic("problem clause added above decision level 0")
	}
	if !s.ok {
		return false
	}
	copiedIdx := 0
	for _, p := range lits {
		switch s.ValueLit(p) {
		case LitBoolTrue:
			return true
		case LitBoolUndef:
			lits[copiedIdx] = p
			copiedIdx++
		}
	}
	lits = lits[:copiedIdx]

	switch len(lits) {
	case 0:
		s.ok = false
	case 1:
		s.uncheckedEnqueue(lits[0], ClaRefUndef)
		if confl := s.propagate(); confl != ClaRefUndef {
			s.ok = false
		}
	default:
		cref := s.allocator.Allocate(lits, false)
		s.clauses = append(s.clauses, cref)
		s.attachClause(cref)
	}
	return s.ok
}

func (s *Solver) varDecayActivity() {
	s.varInc *= 1 / s.cfg.VarDecay
}

func (s *Solver) varBumpActivity(v cnf.Var) {
	s.varOrder.activity[v] += s.varInc
	if s.varOrder.Activity(v) > 1e100 {
		for i := 0; i < s.numVars; i++ {
			s.varOrder.activity[i] *= 1e-100
		}
		s.varInc *= 1e-100
	}
	if s.varOrder.InHeap(v) {
		s.varOrder.Decrease(v)
	}
}

func (s *Solver) clauseDecayActivity() {
	s.clauseInc *= float32(1 / s.cfg.ClauseDecay)
}

func (s *Solver) clauseBumpActivity(c *clause) {
	c.act += s.clauseInc
	if c.Activity() > 1e20 {
		for _, cref := range s.learnts {
			s.allocator.Get(cref).act *= 1e-20
		}
		s.clauseInc *= 1e-20
	}
}

// pickBranchLit pops the highest-activity unassigned variable and
// applies the configured polarity. It returns cnf.LitUndef when every
// variable is assigned, which means a model has been found.
func (s *Solver) pickBranchLit() cnf.Lit {
	next := cnf.VarUndef
	for next == cnf.VarUndef || s.ValueVar(next) != LitBoolUndef {
		if s.varOrder.Empty() {
			return cnf.LitUndef
		}
		next = s.varOrder.RemoveMin()
	}
	switch s.cfg.Polarity {
	case PolarityTrue:
		return cnf.NewLit(next, false)
	case PolarityFalse:
		return cnf.NewLit(next, true)
	default:
		return cnf.NewLit(next, !s.polarity[next])
	}
}

func (s *Solver) budgetExhausted() bool {
	if s.cfg.MaxDecisions > 0 && s.stats.Decisions >= s.cfg.MaxDecisions {
		return true
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return true
	}
	return false
}

// search runs the decide/propagate/analyze/backjump loop until a
// verdict is reached or maxConflicts conflicts have been absorbed
// (LitBoolUndef, signalling a restart). The deadline is checked once
// per decision only, so the watch invariant is never left half
// restored.
func (s *Solver) search(maxConflicts int) LitBool {
	if !s.ok {
		panic("search on a solver in the unsat state")
	}
	conflicts := 0

	for {
		confl := s.propagate()
		if confl != ClaRefUndef {
			s.stats.Conflicts++
			s.conflictsSinceReduce++
			conflicts++

			if s.decisionLevel() == 0 {
				// The empty clause is derivable.
				return LitBoolFalse
			}

			learnt, backLevel := s.analyze(confl)
			s.cancelUntil(backLevel)
			s.addLearnt(learnt)

			s.varDecayActivity()
			s.clauseDecayActivity()
			continue
		}

		if maxConflicts >= 0 && conflicts > maxConflicts {
			s.cancelUntil(0)
			return LitBoolUndef
		}
		if s.budgetExhausted() {
			s.aborted = true
			s.cancelUntil(0)
			return LitBoolUndef
		}
		if s.cfg.ReduceInterval > 0 && s.conflictsSinceReduce >= s.cfg.ReduceInterval {
			s.conflictsSinceReduce = 0
			s.reduceDB()
		}

		next := s.pickBranchLit()
		if next == cnf.LitUndef {
			return LitBoolTrue
		}
		s.stats.Decisions++
		s.newDecisionLevel()
		s.uncheckedEnqueue(next, ClaRefUndef)
	}
}

// Solve runs the search to a verdict. On StatusSatisfiable the result
// carries a total model; on StatusUnknown the deadline expired and the
// statistics cover the work done up to that point.
func (s *Solver) Solve() Result {
	if !s.ok {
		return Result{Status: StatusUnsatisfiable, Stats: s.stats}
	}
	if s.cfg.TimeLimit > 0 {
		s.deadline = time.Now().Add(s.cfg.TimeLimit)
	}

	status := LitBoolUndef
	for run := 0; status == LitBoolUndef && !s.aborted; run++ {
		if run > 0 {
			s.stats.Restarts++
			if s.cfg.Verbose {
				s.logger.Info("restart",
					"run", run,
					"conflicts", s.stats.Conflicts,
					"learnts", len(s.learnts),
					"decisions", s.stats.Decisions)
			}
		}
		status = s.search(s.restartLimit(run))
	}

	var res Result
	switch {
	case status == LitBoolTrue:
		model := make(cnf.Assignment, s.numVars)
		for i := range model {
			model[i] = s.assigns[i] == LitBoolTrue
		}
		res = Result{Status: StatusSatisfiable, Model: model, Stats: s.stats}
	case status == LitBoolFalse:
		s.ok = false
		res = Result{Status: StatusUnsatisfiable, Stats: s.stats}
	default:
		res = Result{Status: StatusUnknown, Reason: ReasonDeadline, Stats: s.stats}
	}
	s.cancelUntil(0)
	return res
}

// Solve builds a solver for f and runs it to a verdict. Input errors
// (an out-of-range literal, a bad config) are reported as an error,
// never as a verdict.
func Solve(f *cnf.Formula, cfg Config) (Result, error) {
	s, err := New(f, cfg)
	if err != nil {
		return Result{Status: StatusUnknown}, err
	}
	return s.Solve(), nil
}

package solver

import (
	"fmt"
	"sort"

	"github.com/msharpe248/bsat-sub001/cnf"
)

func (s *Solver) attachClause(cref ClauseReference) {
	c := s.allocator.Get(cref)
	if c.Size() < 2 {
		panic(fmt.Errorf("attach of a clause smaller than 2: %d", c.Size()))
	}
	first := c.At(0)
	second := c.At(1)
	s.watches.Append(first.Flip(), watcher{cref: cref, blocker: second})
	s.watches.Append(second.Flip(), watcher{cref: cref, blocker: first})
	if c.Learnt() {
		s.stats.NumLearnts++
	} else {
		s.stats.NumClauses++
	}
}

func (s *Solver) detachClause(cref ClauseReference) {
	c := s.allocator.Get(cref)
	if c.Size() <= 1 {
		panic(fmt.Errorf("detach of a clause smaller than 2: %d", c.Size()))
	}
	s.watches.Remove(c.At(0).Flip(), cref)
	s.watches.Remove(c.At(1).Flip(), cref)
	if c.Learnt() {
		s.stats.NumLearnts--
	} else {
		s.stats.NumClauses--
	}
}

// locked reports whether c is the antecedent of its first literal on
// the trail. Locked clauses must not be deleted.
func (s *Solver) locked(cref ClauseReference, c *clause) bool {
	first := c.At(0)
	return s.ValueLit(first) == LitBoolTrue && s.reason(first.Var()) == cref
}

func (s *Solver) removeClause(cref ClauseReference) {
	c := s.allocator.Get(cref)
	if s.locked(cref, c) {
		panic(fmt.Errorf("remove of a clause still serving as an antecedent: %d", cref))
	}
	s.detachClause(cref)
	c.SetMark(deletedMark)
	s.allocator.Free(cref)
}

// addLearnt stores the clause produced by conflict analysis, scores it
// and enqueues the asserting literal. Unit learnt clauses carry no
// watches; they become level-0 facts.
func (s *Solver) addLearnt(lits []cnf.Lit) {
	s.stats.LearntClauses++
	if len(lits) == 1 {
		s.uncheckedEnqueue(lits[0], ClaRefUndef)
		return
	}
	cref := s.allocator.Allocate(lits, true)
	c := s.allocator.Get(cref)
	c.SetLBD(s.computeLBD(lits))
	s.learnts = append(s.learnts, cref)
	s.attachClause(cref)
	s.clauseBumpActivity(c)
	s.uncheckedEnqueue(lits[0], cref)
}

// reduceDB removes the configured fraction of the learnt clauses,
// worst quality first: highest LBD, then lowest activity. Binary
// clauses and clauses locked as trail antecedents survive.
func (s *Solver) reduceDB() {
	s.stats.ReduceDBs++
	sort.Slice(s.learnts, func(i, j int) bool {
		x := s.allocator.Get(s.learnts[i])
		y := s.allocator.Get(s.learnts[j])
		if x.LBD() != y.LBD() {
			return x.LBD() > y.LBD()
		}
		return x.Activity() < y.Activity()
	})
	limit := int(float64(len(s.learnts)) * s.cfg.ReduceFraction)
	copiedIdx := 0
	for i, cref := range s.learnts {
		c := s.allocator.Get(cref)
		if i < limit && c.Size() > 2 && !s.locked(cref, c) {
			s.stats.RemovedClauses++
			s.removeClause(cref)
		} else {
			s.learnts[copiedIdx] = cref
			copiedIdx++
		}
	}
	s.learnts = s.learnts[:copiedIdx]
}

package solver

import (
	"github.com/k0kubun/pp"

	"github.com/msharpe248/bsat-sub001/cnf"
)

// analyze derives a learnt clause from the conflicting clause via
// first-UIP resolution and returns it together with the backjump
// level. The walk is iterative: pathConflict counts the working
// clause's literals still at the current decision level, and the trail
// is scanned backward once instead of recursing through antecedents.
// The UIP negation ends up at index 0 and the assertion literal (the
// second-highest level in the clause) at index 1, so both watched
// positions become true right after the backjump.
//
// Callers must not invoke analyze with the decision level at 0; that
// conflict is a refutation and the driver reports it directly.
func (s *Solver) analyze(confl ClauseReference) (learnt []cnf.Lit, backLevel int) {
	p := cnf.LitUndef
	pathConflict := 0
	idx := len(s.trail) - 1

	learnt = append(learnt, p) // slot for the asserting literal
	for {
		if confl == ClaRefUndef {
			pp.Println(s.varData[p.Var()], p.Var(), s.decisionLevel(), s.ValueLit(p), pathConflict)
			panic("conflict resolution walked past a literal with no antecedent")
		}
		c := s.allocator.Get(confl)
		if c.Learnt() {
			s.clauseBumpActivity(c)
		}
		startIdx := 0
		if p != cnf.LitUndef {
			startIdx = 1
		}
		for i := startIdx; i < c.Size(); i++ {
			q := c.At(i)
			if s.seen[q.Var()] || s.level(q.Var()) == 0 {
				continue
			}
			s.varBumpActivity(q.Var())
			s.seen[q.Var()] = true
			if s.level(q.Var()) > s.decisionLevel() {
				panic("trail literal above the current decision level")
			}
			if s.level(q.Var()) == s.decisionLevel() {
				pathConflict++
			} else {
				learnt = append(learnt, q)
			}
		}
		// Select the next clause to look at.
		for {
			p = s.trail[idx]
			idx--
			if s.seen[p.Var()] {
				break
			}
		}
		confl = s.reason(p.Var())
		s.seen[p.Var()] = false
		pathConflict--
		if pathConflict <= 0 {
			break
		}
	}
	learnt[0] = p.Flip()

	toClear := make([]cnf.Lit, len(learnt))
	copy(toClear, learnt)

	// Conflict clause minimization: drop literals whose antecedent is
	// fully subsumed by the rest of the clause.
	copiedIdx := 1
	for i := 1; i < len(learnt); i++ {
		x := learnt[i].Var()
		if s.reason(x) == ClaRefUndef {
			learnt[copiedIdx] = learnt[i]
			copiedIdx++
			continue
		}
		c := s.allocator.Get(s.reason(x))
		for k := 1; k < c.Size(); k++ {
			v := c.At(k).Var()
			if !s.seen[v] && s.level(v) > 0 {
				learnt[copiedIdx] = learnt[i]
				copiedIdx++
				break
			}
		}
	}
	learnt = learnt[:copiedIdx]

	if len(learnt) == 1 {
		backLevel = 0
	} else {
		// Find the literal assigned at the next-highest level and
		// swap it into the second watched slot.
		maxIdx := 1
		for i := 2; i < len(learnt); i++ {
			if s.level(learnt[i].Var()) > s.level(learnt[maxIdx].Var()) {
				maxIdx = i
			}
		}
		backLevel = s.level(learnt[maxIdx].Var())
		learnt[maxIdx], learnt[1] = learnt[1], learnt[maxIdx]
	}

	for _, q := range toClear {
		s.seen[q.Var()] = false
	}

	return learnt, backLevel
}

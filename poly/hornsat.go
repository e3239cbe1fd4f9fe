package poly

import (
	"fmt"

	"github.com/msharpe248/bsat-sub001/cnf"
	"github.com/msharpe248/bsat-sub001/solver"
)

// SolveHorn decides a Horn formula (at most one positive literal per
// clause) by running unit propagation to fixpoint from the all-false
// assignment. The model returned is the minimal one. It errors on
// non-Horn input.
func SolveHorn(f *cnf.Formula) (solver.Result, error) {
	if err := f.Validate(); err != nil {
		return solver.Result{Status: solver.StatusUnknown}, err
	}
	n := f.NumVars

	type hornClause struct {
		head      cnf.Var // positive literal's variable, or cnf.VarUndef
		remaining int     // negative literals whose variable is still false
	}
	clauses := make([]hornClause, len(f.Clauses))
	// occurs[v] lists the clauses where ¬v appears.
	occurs := make([][]int, n)
	value := make([]bool, n)
	var queue []cnf.Var

	for i, c := range f.Clauses {
		lits, tautology := c.Normalized()
		if tautology {
			// Always satisfied; no occurrence entries point here, so
			// remaining never reaches zero.
			clauses[i] = hornClause{head: cnf.VarUndef, remaining: 1}
			continue
		}
		hc := hornClause{head: cnf.VarUndef}
		for _, p := range lits {
			if p.Neg() {
				hc.remaining++
				occurs[p.Var()] = append(occurs[p.Var()], i)
				continue
			}
			if hc.head != cnf.VarUndef {
				return solver.Result{Status: solver.StatusUnknown},
					fmt.Errorf("clause %d has two positive literals, not a Horn clause", i)
			}
			hc.head = p.Var()
		}
		clauses[i] = hc
		if hc.remaining == 0 {
			if hc.head == cnf.VarUndef {
				// Empty clause.
				return solver.Result{Status: solver.StatusUnsatisfiable}, nil
			}
			if !value[hc.head] {
				value[hc.head] = true
				queue = append(queue, hc.head)
			}
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, i := range occurs[v] {
			clauses[i].remaining--
			if clauses[i].remaining > 0 {
				continue
			}
			head := clauses[i].head
			if head == cnf.VarUndef {
				// All body literals forced true, no head to save it.
				return solver.Result{Status: solver.StatusUnsatisfiable}, nil
			}
			if !value[head] {
				value[head] = true
				queue = append(queue, head)
			}
		}
	}

	model := make(cnf.Assignment, n)
	copy(model, value)
	return solver.Result{Status: solver.StatusSatisfiable, Model: model}, nil
}

package poly

import (
	"github.com/msharpe248/bsat-sub001/cnf"
	"github.com/msharpe248/bsat-sub001/solver"
)

// xorRow is one XOR constraint as a bitset over variables plus a
// right-hand-side parity bit.
type xorRow struct {
	bits []uint64
	rhs  bool
}

func newXorRow(n int) *xorRow {
	return &xorRow{bits: make([]uint64, (n+63)/64)}
}

func (r *xorRow) toggle(v cnf.Var) {
	r.bits[v/64] ^= 1 << (uint(v) % 64)
}

func (r *xorRow) has(v cnf.Var) bool {
	return r.bits[v/64]&(1<<(uint(v)%64)) != 0
}

func (r *xorRow) xorWith(o *xorRow) {
	for i := range r.bits {
		r.bits[i] ^= o.bits[i]
	}
	r.rhs = r.rhs != o.rhs
}

func (r *xorRow) empty() bool {
	for _, w := range r.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// SolveXor decides a system where every clause is read as the
// exclusive-or of its literals being true, by Gaussian elimination
// over GF(2). A negated literal flips the row's parity; a repeated
// literal cancels out. Free variables are set false in the model.
func SolveXor(f *cnf.Formula) (solver.Result, error) {
	if err := f.Validate(); err != nil {
		return solver.Result{Status: solver.StatusUnknown}, err
	}
	n := f.NumVars

	rows := make([]*xorRow, 0, len(f.Clauses))
	for _, c := range f.Clauses {
		row := newXorRow(n)
		row.rhs = true
		for _, p := range c {
			row.toggle(p.Var())
			if p.Neg() {
				row.rhs = !row.rhs
			}
		}
		rows = append(rows, row)
	}

	// Forward elimination.
	pivotOf := make([]int, n) // row index per pivot variable
	for i := range pivotOf {
		pivotOf[i] = -1
	}
	rank := 0
	for v := 0; v < n && rank < len(rows); v++ {
		pivot := -1
		for i := rank; i < len(rows); i++ {
			if rows[i].has(cnf.Var(v)) {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for i := 0; i < len(rows); i++ {
			if i != rank && rows[i].has(cnf.Var(v)) {
				rows[i].xorWith(rows[rank])
			}
		}
		pivotOf[v] = rank
		rank++
	}
	for _, row := range rows {
		if row.empty() && row.rhs {
			// 0 = 1: the system is inconsistent.
			return solver.Result{Status: solver.StatusUnsatisfiable}, nil
		}
	}

	model := make(cnf.Assignment, n)
	for v := n - 1; v >= 0; v-- {
		if pivotOf[v] == -1 {
			continue
		}
		row := rows[pivotOf[v]]
		val := row.rhs
		for w := v + 1; w < n; w++ {
			if row.has(cnf.Var(w)) && model[w] {
				val = !val
			}
		}
		model[v] = val
	}
	return solver.Result{Status: solver.StatusSatisfiable, Model: model}, nil
}

package cnf

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Clause is a disjunction of literals.
type Clause []Lit

// Normalized returns a duplicate-free copy of c and reports whether c
// is a tautology (contains a literal and its complement).
func (c Clause) Normalized() (Clause, bool) {
	lits := Clause(lo.Uniq(c))
	for _, p := range lits {
		if lo.Contains(lits, p.Flip()) {
			return nil, true
		}
	}
	return lits, false
}

func (c Clause) String() string {
	strs := lo.Map(c, func(p Lit, _ int) string { return p.String() })
	return "(" + strings.Join(strs, " ") + ")"
}

// Formula is a CNF formula: a conjunction of clauses over NumVars
// variables. It is built once and not mutated during solving.
type Formula struct {
	NumVars int
	Clauses []Clause
}

// New returns an empty formula over numVars variables.
func New(numVars int) *Formula {
	return &Formula{NumVars: numVars}
}

// AddClause appends the disjunction of lits to the formula.
func (f *Formula) AddClause(lits ...Lit) {
	c := make(Clause, len(lits))
	copy(c, lits)
	f.Clauses = append(f.Clauses, c)
}

// Validate checks that every literal references a declared variable.
// An empty clause is legal input; the solver reports it as immediately
// unsatisfiable rather than as a malformed formula.
func (f *Formula) Validate() error {
	if f.NumVars < 0 {
		return fmt.Errorf("negative variable count: %d", f.NumVars)
	}
	for i, c := range f.Clauses {
		for _, p := range c {
			if v := p.Var(); v < 0 || int(v) >= f.NumVars {
				return fmt.Errorf("clause %d: literal %s references undeclared variable %d", i, p, v)
			}
		}
	}
	return nil
}

// HasEmptyClause reports whether some clause has no literals.
func (f *Formula) HasEmptyClause() bool {
	return lo.SomeBy(f.Clauses, func(c Clause) bool { return len(c) == 0 })
}

// Assignment maps each variable to a truth value, indexed by Var.
type Assignment []bool

// Lit returns the truth value of p under a.
func (a Assignment) Lit(p Lit) bool {
	return a[p.Var()] != p.Neg()
}

// Satisfied reports whether every clause of f evaluates true under a.
// The assignment must be total.
func (f *Formula) Satisfied(a Assignment) bool {
	if len(a) < f.NumVars {
		return false
	}
	for _, c := range f.Clauses {
		ok := false
		for _, p := range c {
			if a.Lit(p) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

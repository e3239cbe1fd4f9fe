package cnf

import "fmt"

// Var is a propositional variable. Variables are numbered from 0.
type Var int32

const VarUndef Var = -1

// Lit is a literal packed as 2*v for the positive literal of v and
// 2*v+1 for the negated one, so a literal and its complement differ
// only in the lowest bit.
type Lit int32

const LitUndef Lit = -2

// NewLit returns the literal of v, negated when neg is true.
func NewLit(v Var, neg bool) Lit {
	l := Lit(2 * v)
	if neg {
		l++
	}
	return l
}

// IntToLit converts a DIMACS-style non-zero integer (1-based, sign
// means negation) into a Lit.
func IntToLit(i int) Lit {
	if i > 0 {
		return NewLit(Var(i-1), false)
	}
	return NewLit(Var(-i-1), true)
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	return Var(l >> 1)
}

// Neg reports whether l is a negated literal.
func (l Lit) Neg() bool {
	return l&1 == 1
}

// Flip returns the complement of l.
func (l Lit) Flip() Lit {
	return l ^ 1
}

// Int returns the DIMACS-style integer for l.
func (l Lit) Int() int {
	v := int(l.Var()) + 1
	if l.Neg() {
		return -v
	}
	return v
}

func (l Lit) String() string {
	return fmt.Sprintf("%d", l.Int())
}

package solver

import "github.com/msharpe248/bsat-sub001/cnf"

const (
	existMark uint = iota
	deletedMark
)

type header struct {
	mark   uint
	learnt bool
	lbd    int
	size   int
}

// clause is the solver-internal clause storage. The first two literal
// slots are the watched positions.
type clause struct {
	header header
	data   []cnf.Lit
	act    float32
}

func newClause(ps []cnf.Lit, learnt bool) *clause {
	var c clause
	c.header.mark = existMark
	c.header.learnt = learnt
	c.header.size = len(ps)
	c.data = make([]cnf.Lit, len(ps))
	copy(c.data, ps)
	return &c
}

func (c *clause) Size() int {
	return c.header.size
}

func (c *clause) Learnt() bool {
	return c.header.learnt
}

func (c *clause) At(i int) cnf.Lit {
	return c.data[i]
}

func (c *clause) SetMark(mark uint) {
	c.header.mark = mark
}

func (c *clause) Mark() uint {
	return c.header.mark
}

func (c *clause) Activity() float32 {
	return c.act
}

// LBD returns the literal block distance recorded for the clause.
func (c *clause) LBD() int {
	return c.header.lbd
}

func (c *clause) SetLBD(lbd int) {
	c.header.lbd = lbd
}

func (c *clause) Lits() []cnf.Lit {
	return c.data[:c.Size()]
}

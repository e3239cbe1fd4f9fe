package solver

import (
	"fmt"
	"math"

	"github.com/msharpe248/bsat-sub001/cnf"
)

// ClauseReference is a stable handle into the clause allocator. Watch
// lists and trail antecedents hold references, never clause pointers,
// so a reference stays meaningful across database reductions.
type ClauseReference uint32

const ClaRefUndef ClauseReference = math.MaxUint32

type clauseAllocator struct {
	next    ClauseReference
	clauses map[ClauseReference]*clause
}

func newClauseAllocator() *clauseAllocator {
	return &clauseAllocator{next: 0, clauses: make(map[ClauseReference]*clause)}
}

// Allocate stores a new clause and returns its reference.
func (a *clauseAllocator) Allocate(lits []cnf.Lit, learnt bool) ClauseReference {
	cref := a.next
	a.clauses[cref] = newClause(lits, learnt)
	a.next++
	return cref
}

// Get resolves a reference. Resolving a freed reference is an engine
// defect, not an input condition.
func (a *clauseAllocator) Get(cref ClauseReference) *clause {
	if c, ok := a.clauses[cref]; ok {
		return c
	}
	panic(fmt.Errorf("clause is not allocated: %d", cref))
}

// Free releases the slot. The caller must have detached the clause and
// confirmed it is not a live trail antecedent.
func (a *clauseAllocator) Free(cref ClauseReference) {
	delete(a.clauses, cref)
}

func (a *clauseAllocator) Len() int {
	return len(a.clauses)
}

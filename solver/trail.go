package solver

import (
	"fmt"

	"github.com/msharpe248/bsat-sub001/cnf"
)

// LitBool is a three-valued assignment state.
type LitBool int

const (
	LitBoolTrue LitBool = iota
	LitBoolFalse
	LitBoolUndef
)

// varData records, per assigned variable, the clause that forced it
// (ClaRefUndef for a decision) and the decision level it was set at.
type varData struct {
	reason ClauseReference
	level  int
}

// ValueVar returns the current assignment of v.
func (s *Solver) ValueVar(v cnf.Var) LitBool {
	return s.assigns[v]
}

// ValueLit returns the truth value of p under the current assignment.
func (s *Solver) ValueLit(p cnf.Lit) LitBool {
	switch s.assigns[p.Var()] {
	case LitBoolUndef:
		return LitBoolUndef
	case LitBoolTrue:
		if !p.Neg() {
			return LitBoolTrue
		}
	case LitBoolFalse:
		if p.Neg() {
			return LitBoolTrue
		}
	}
	return LitBoolFalse
}

func (s *Solver) reason(v cnf.Var) ClauseReference {
	return s.varData[v].reason
}

func (s *Solver) level(v cnf.Var) int {
	return s.varData[v].level
}

func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

func (s *Solver) newDecisionLevel() {
	s.trailLim = append(s.trailLim, len(s.trail))
}

func (s *Solver) numAssigns() int {
	return len(s.trail)
}

// uncheckedEnqueue pushes p onto the trail. Callers guarantee p is
// currently unassigned; hitting an assigned variable here means the
// engine itself is broken, so it fails fast rather than continuing
// toward an unsound verdict.
func (s *Solver) uncheckedEnqueue(p cnf.Lit, from ClauseReference) {
	if s.ValueLit(p) != LitBoolUndef {
		panic(fmt.Sprintf("assign of an already assigned literal: ValueLit(%d) = %v", p, s.ValueLit(p)))
	}
	if !p.Neg() {
		s.assigns[p.Var()] = LitBoolTrue
	} else {
		s.assigns[p.Var()] = LitBoolFalse
	}
	s.varData[p.Var()] = varData{reason: from, level: s.decisionLevel()}
	s.trail = append(s.trail, p)
}

// cancelUntil undoes every assignment above level in reverse trail
// order, saving phases and returning the variables to the order heap.
func (s *Solver) cancelUntil(level int) {
	if s.decisionLevel() <= level {
		return
	}
	for c := len(s.trail) - 1; c >= s.trailLim[level]; c-- {
		x := s.trail[c].Var()
		s.polarity[x] = s.assigns[x] == LitBoolTrue
		s.assigns[x] = LitBoolUndef
		s.insertVarOrder(x)
	}
	s.qhead = s.trailLim[level]
	s.trail = s.trail[:s.qhead]
	s.trailLim = s.trailLim[:level]
}

func (s *Solver) insertVarOrder(x cnf.Var) {
	if !s.varOrder.InHeap(x) {
		s.varOrder.PushBack(x)
	}
}

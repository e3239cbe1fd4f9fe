// Package poly holds the specialized polynomial-time decision
// procedures for restricted CNF classes: 2-SAT, Horn-SAT and XOR-SAT.
// They are self-contained and share only the formula and result types
// with the CDCL engine.
package poly

import (
	"fmt"

	"github.com/msharpe248/bsat-sub001/cnf"
	"github.com/msharpe248/bsat-sub001/solver"
)

// SolveTwoSat decides a formula whose clauses have at most two
// literals, by strongly-connected-component analysis of the
// implication graph. It errors on wider clauses.
func SolveTwoSat(f *cnf.Formula) (solver.Result, error) {
	if err := f.Validate(); err != nil {
		return solver.Result{Status: solver.StatusUnknown}, err
	}
	n := f.NumVars
	adj := make([][]int32, 2*n)
	addEdge := func(from, to cnf.Lit) {
		adj[int(from)] = append(adj[int(from)], int32(to))
	}
	for i, c := range f.Clauses {
		switch len(c) {
		case 0:
			return solver.Result{Status: solver.StatusUnsatisfiable}, nil
		case 1:
			addEdge(c[0].Flip(), c[0])
		case 2:
			addEdge(c[0].Flip(), c[1])
			addEdge(c[1].Flip(), c[0])
		default:
			return solver.Result{Status: solver.StatusUnknown},
				fmt.Errorf("clause %d has %d literals, 2-SAT accepts at most 2", i, len(c))
		}
	}

	comp := tarjanSCC(adj)
	model := make(cnf.Assignment, n)
	for v := 0; v < n; v++ {
		pos := int(cnf.NewLit(cnf.Var(v), false))
		neg := int(cnf.NewLit(cnf.Var(v), true))
		if comp[pos] == comp[neg] {
			return solver.Result{Status: solver.StatusUnsatisfiable}, nil
		}
		// Components come out of Tarjan in reverse topological
		// order, so the smaller id is the one safe to make true.
		model[v] = comp[pos] < comp[neg]
	}
	return solver.Result{Status: solver.StatusSatisfiable, Model: model}, nil
}

// tarjanSCC computes strongly connected components iteratively and
// returns the component id per node.
func tarjanSCC(adj [][]int32) []int32 {
	n := len(adj)
	const unvisited = -1
	index := make([]int32, n)
	low := make([]int32, n)
	comp := make([]int32, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = unvisited
		comp[i] = unvisited
	}
	var stack []int32
	var next, nComp int32

	type frame struct {
		v     int32
		child int
	}
	var frames []frame

	for root := 0; root < n; root++ {
		if index[root] != unvisited {
			continue
		}
		frames = append(frames[:0], frame{v: int32(root)})
		for len(frames) > 0 {
			fr := &frames[len(frames)-1]
			v := fr.v
			if fr.child == 0 {
				index[v] = next
				low[v] = next
				next++
				stack = append(stack, v)
				onStack[v] = true
			}
			recursed := false
			for fr.child < len(adj[v]) {
				w := adj[v][fr.child]
				fr.child++
				if index[w] == unvisited {
					frames = append(frames, frame{v: w})
					recursed = true
					break
				}
				if onStack[w] && index[w] < low[v] {
					low[v] = index[w]
				}
			}
			if recursed {
				continue
			}
			if low[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = nComp
					if w == v {
						break
					}
				}
				nComp++
			}
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1].v
				if low[v] < low[parent] {
					low[parent] = low[v]
				}
			}
		}
	}
	return comp
}

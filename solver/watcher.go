package solver

import "github.com/msharpe248/bsat-sub001/cnf"

// watcher pairs a watching clause with a blocker literal. If the
// blocker is already true the clause cannot be conflicting and
// propagation skips it without touching the clause at all.
type watcher struct {
	cref    ClauseReference
	blocker cnf.Lit
}

// watches indexes, for every literal, the clauses watching it.
type watches struct {
	occs [][]watcher
}

func newWatches(numVars int) *watches {
	return &watches{occs: make([][]watcher, 2*numVars)}
}

// Lookup returns the watcher list of p for in-place compaction.
func (w *watches) Lookup(p cnf.Lit) *[]watcher {
	return &w.occs[int(p)]
}

func (w *watches) Append(p cnf.Lit, wt watcher) {
	w.occs[int(p)] = append(w.occs[int(p)], wt)
}

// Remove drops the watcher of cref from the list of p. The watcher
// must be present; a miss means the watch bookkeeping is broken.
func (w *watches) Remove(p cnf.Lit, cref ClauseReference) {
	ws := &w.occs[int(p)]
	at := -1
	for i := range *ws {
		if (*ws)[i].cref == cref {
			at = i
			break
		}
	}
	if at == -1 {
		panic("watcher is not found")
	}
	copy((*ws)[at:], (*ws)[at+1:])
	*ws = (*ws)[:len(*ws)-1]
}

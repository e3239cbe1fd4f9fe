package solver

// propagate runs unit propagation to fixpoint, draining the trail from
// qhead. It returns the conflicting clause, or ClaRefUndef when the
// watch lists are quiescent again. This is the hot path: work is
// proportional to the watcher entries touched, not to clause sizes.
func (s *Solver) propagate() ClauseReference {
	confl := ClaRefUndef

	for s.qhead < len(s.trail) {
		p := s.trail[s.qhead]
		s.qhead++
		s.stats.Propagations++
		ws := s.watches.Lookup(p)
		lastIdx := 0
		copiedIdx := 0
		for lastIdx < len(*ws) {
			w := (*ws)[lastIdx]

			// Try to avoid inspecting the clause.
			if s.ValueLit(w.blocker) == LitBoolTrue {
				(*ws)[copiedIdx] = (*ws)[lastIdx]
				lastIdx++
				copiedIdx++
				continue
			}

			// Make sure the false literal is data[1].
			cref := w.cref
			c := s.allocator.Get(cref)
			falseLit := p.Flip()
			if c.At(0) == falseLit {
				c.data[0], c.data[1] = c.data[1], falseLit
			}
			if c.At(1) != falseLit {
				panic("watched slot 1 does not hold the false literal")
			}
			lastIdx++

			// If the other watch is true, the clause is satisfied.
			first := c.At(0)
			nw := watcher{cref: cref, blocker: first}
			if first != w.blocker && s.ValueLit(first) == LitBoolTrue {
				(*ws)[copiedIdx] = nw
				copiedIdx++
				continue
			}

			// Look for a new literal to watch.
			moved := false
			for i := 2; i < c.Size(); i++ {
				if s.ValueLit(c.At(i)) != LitBoolFalse {
					c.data[1], c.data[i] = c.data[i], falseLit
					s.watches.Append(c.At(1).Flip(), nw)
					moved = true
					break
				}
			}
			if moved {
				continue
			}

			// No new watch: clause is unit under the assignment.
			(*ws)[copiedIdx] = nw
			copiedIdx++
			if s.ValueLit(first) == LitBoolFalse {
				confl = cref
				s.qhead = len(s.trail)
				// Copy the remaining watchers.
				for lastIdx < len(*ws) {
					(*ws)[copiedIdx] = (*ws)[lastIdx]
					lastIdx++
					copiedIdx++
				}
			} else {
				s.uncheckedEnqueue(first, cref)
			}
		}
		*ws = (*ws)[:copiedIdx]
	}

	return confl
}

package solver

import "github.com/msharpe248/bsat-sub001/cnf"

// computeLBD returns the literal block distance of lits: the number of
// distinct decision levels among them. Lower is better; a learnt
// clause spanning few levels tends to stay useful.
func (s *Solver) computeLBD(lits []cnf.Lit) int {
	s.lbdStamp++
	lbd := 0
	for _, p := range lits {
		lvl := s.level(p.Var())
		if s.lbdSeen[lvl] != s.lbdStamp {
			s.lbdSeen[lvl] = s.lbdStamp
			lbd++
		}
	}
	return lbd
}

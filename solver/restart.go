package solver

import "math"

// luby returns the i-th term of the Luby sequence scaled by y.
func luby(y float64, x int) float64 {
	var seq, size int
	for size, seq = 1, 0; size < x+1; seq, size = seq+1, 2*size+1 {
	}
	for size-1 != x {
		size = (size - 1) >> 1
		seq--
		x = x % size
	}
	return math.Pow(y, float64(seq))
}

// restartLimit returns the conflict budget of the numRestarts-th run.
// Restarts abandon the current branch but keep the learnt clauses and
// the activity table.
func (s *Solver) restartLimit(numRestarts int) int {
	switch s.cfg.RestartStrategy {
	case RestartLuby:
		return int(luby(s.cfg.RestartInc, numRestarts)) * s.cfg.RestartFirst
	default:
		return int(float64(s.cfg.RestartFirst) * math.Pow(s.cfg.RestartInc, float64(numRestarts)))
	}
}

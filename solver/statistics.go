package solver

// Stats counts the work done by one solve invocation.
type Stats struct {
	Decisions      uint64
	Conflicts      uint64
	Propagations   uint64
	LearntClauses  uint64
	Restarts       uint64
	RemovedClauses uint64
	ReduceDBs      uint64
	NumClauses     uint64
	NumLearnts     uint64
}

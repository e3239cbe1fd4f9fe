package solver

import "github.com/msharpe248/bsat-sub001/cnf"

// Status is the verdict of a solve invocation.
type Status int

const (
	StatusSatisfiable Status = iota
	StatusUnsatisfiable
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusSatisfiable:
		return "SATISFIABLE"
	case StatusUnsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// ReasonDeadline is the Reason reported when the decision or wall-clock
// budget ran out before the search finished.
const ReasonDeadline = "deadline-exceeded"

// Result is the outcome of a solve invocation. Model is a total
// assignment when Status is StatusSatisfiable and nil otherwise.
// Stats is populated in every case, including StatusUnknown.
type Result struct {
	Status Status
	Model  cnf.Assignment
	Stats  Stats
	Reason string
}

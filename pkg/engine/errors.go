package engine

import "fmt"

// InvariantCheckFailureError is the panic value raised when the §4.8
// post-proof verification of a candidate invariant fails: the engine
// claimed a fixpoint but one of the three SAT checks disagreed. This is a
// fatal engine bug, never a returned error.
type InvariantCheckFailureError struct {
	// Check names which of the three §4.8 conditions failed:
	// "initial-implication", "inductiveness", or "safety".
	Check string
	Frame int
}

func (e *InvariantCheckFailureError) Error() string {
	return fmt.Sprintf("engine: invariant check failed (%s) at frame %d", e.Check, e.Frame)
}

// SolverDisagreementError is the panic value for two SAT queries that
// must agree by construction (e.g. a clause reported inductive relative
// to F[i] that a later query finds falsified) returning contradictory
// answers, which indicates solver or bookkeeping corruption. No code in
// this package raises it: the engine does not cross-check its queries.
type SolverDisagreementError struct {
	Query    string
	Expected bool
	Actual   bool
}

func (e *SolverDisagreementError) Error() string {
	return fmt.Sprintf("engine: solver disagreement on %q: expected sat=%v, got sat=%v", e.Query, e.Expected, e.Actual)
}

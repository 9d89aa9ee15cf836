package engine

import "github.com/sirandreww/ic3pdr/pkg/formula"

// Result is the outcome of a Run: exactly one of Proof or CTX is set,
// distinguished by IsProof.
type Result struct {
	IsProof bool

	// Invariant holds I = F[i] over state variables only, valid when
	// IsProof is true.
	Invariant *formula.CNF

	// Depth is the smallest k at which a bad state was proved reachable,
	// valid when IsProof is false.
	Depth int
}

// proof builds a Proof result.
func proof(invariant *formula.CNF) Result {
	return Result{IsProof: true, Invariant: invariant}
}

// ctx builds a CTX result at the given depth.
func ctx(depth int) Result {
	return Result{IsProof: false, Depth: depth}
}

// Package bmctest is a small bounded-model-checking oracle used only by
// tests to cross-check the IC3/PDR engine's CTX depths, grounded on
// original_source's algorithms::bmc module. It is not a production BMC
// solver: no incremental unrolling reuse, no k-induction, no CLI.
package bmctest

import (
	"github.com/sirandreww/ic3pdr/pkg/formula"
	"github.com/sirandreww/ic3pdr/pkg/fsts"
	"github.com/sirandreww/ic3pdr/pkg/satsolver"
)

// Unroll builds initialCube ∧ ⋀ᵢ T[i-1→i] ∧ unsafety[depth], the
// depth-step unrolled reachability query, generalizing the 1-step tag
// the engine uses via System.AddTagsToRelation/UnsafetyAtTag to
// arbitrary depth exactly as spec.md §4.4 anticipates ("higher tags are
// reserved for BMC-style consumers").
func Unroll(sys *fsts.System, depth int) *formula.CNF {
	cnf := sys.InitialCube.ToCNF()
	for i := 1; i <= depth; i++ {
		cnf.Append(sys.AddTagsToRelation(sys.TransitionCNF, i-1))
	}
	cnf.Append(sys.UnsafetyAtTag(depth))
	return cnf
}

// Reachable reports whether a bad state is reachable in exactly depth
// steps.
func Reachable(sys *fsts.System, depth int) bool {
	cnf := Unroll(sys, depth)
	return satsolver.StatelessGini{}.SolveCNF(cnf).Sat
}

// Search returns the smallest depth in [0, maxDepth] at which a bad
// state is reachable, or (-1, false) if none is found within the bound.
func Search(sys *fsts.System, maxDepth int) (int, bool) {
	for d := 0; d <= maxDepth; d++ {
		if Reachable(sys, d) {
			return d, true
		}
	}
	return -1, false
}

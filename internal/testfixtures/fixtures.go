// Package testfixtures builds small, hand-verified AIG circuits for the
// seed scenarios of the reachability-engine tests (fsts, engine, bmctest).
// It is test-only scaffolding, not a production API.
package testfixtures

import "github.com/sirandreww/ic3pdr/pkg/aig"

// chainCounter builds a 3-latch "ripple" chain: L0 is forced to 1 on the
// first cycle and stays there; L1 copies L0's previous value; L2 copies
// L1's previous value. Starting from (0,0,0) the state sequence is
// (0,0,0) -> (1,0,0) -> (1,1,0) -> (1,1,1) -> (1,1,1) -> ..., i.e. all
// three latches become 1 simultaneously for the first time at step 3, and
// L1 becomes 1 for the first time at step 2. No AND gates are needed.
// maxVar is at least 3; callers that add gates on top pass a larger one.
func chainCounter(maxVar int) *aig.AIG {
	a := aig.New(maxVar)
	a.AddLatch(aig.Latch{Lit: 2, Next: 1, Reset: 0}) // L0' = true
	a.AddLatch(aig.Latch{Lit: 4, Next: 2, Reset: 0}) // L1' = L0
	a.AddLatch(aig.Latch{Lit: 6, Next: 4, Reset: 0}) // L2' = L1
	return a
}

// ThreeBitCounterNoBad is seed scenario 1: the chain counter with no bad
// literal. Expected: Proof, invariant equivalent to true, in one outer
// iteration.
func ThreeBitCounterNoBad() *aig.AIG {
	return chainCounter(3)
}

// ThreeBitCounterBadL2 is seed scenario 2: bad = L2, which first becomes
// true at step 3 (the same step all three latches first read 1).
// Expected: CTX{depth: 3}.
func ThreeBitCounterBadL2() *aig.AIG {
	a := chainCounter(3)
	a.AddBad(6) // L2
	return a
}

// ThreeBitCounterBadL1OrL2 is seed scenario 3: bad = L1 | L2, which first
// becomes true at step 2 (when L1 first reads 1). Expected: CTX{depth: 2}.
func ThreeBitCounterBadL1OrL2() *aig.AIG {
	// maxVar 4: variable 4 is the AND gate below.
	a := chainCounter(4)
	a.AddAnd(aig.And{Lhs: 8, Rhs0: 7, Rhs1: 5}) // !L2 & !L1
	a.AddBad(9)                                 // !(!L2 & !L1) = L1 | L2
	return a
}

// RegisterEqualityChecker is seed scenario 4: two 1-bit latches L0, L1
// updated each cycle directly from inputs i0, i1; bad = L0 xor L1.
// Both latches reset to 0.
func RegisterEqualityChecker() *aig.AIG {
	a := aig.New(7)
	a.AddInput(6) // i0
	a.AddInput(8) // i1
	a.AddLatch(aig.Latch{Lit: 2, Next: 6, Reset: 0}) // L0' = i0
	a.AddLatch(aig.Latch{Lit: 4, Next: 8, Reset: 0}) // L1' = i1

	a.AddAnd(aig.And{Lhs: 10, Rhs0: 4, Rhs1: 2})   // and1 = L1 & L0
	a.AddAnd(aig.And{Lhs: 12, Rhs0: 5, Rhs1: 3})   // and2 = !L1 & !L0
	a.AddAnd(aig.And{Lhs: 14, Rhs0: 13, Rhs1: 11}) // xor = !and2 & !and1 = L0 xor L1
	a.AddBad(14)
	return a
}

// MutexToggle is seed scenario 5: two latches, always at most one high,
// initialized to (1, 0), transition swaps them; bad = L0 & L1.
func MutexToggle() *aig.AIG {
	a := aig.New(3)
	a.AddLatch(aig.Latch{Lit: 2, Next: 4, Reset: 1}) // L0' = L1, init 1
	a.AddLatch(aig.Latch{Lit: 4, Next: 2, Reset: 0}) // L1' = L0, init 0
	a.AddAnd(aig.And{Lhs: 6, Rhs0: 4, Rhs1: 2})      // L0 & L1
	a.AddBad(6)
	return a
}

// ThreeLatchGuardFSM is seed scenario 6: a genuine 3-bit binary ripple
// counter (L0' = !L0, L1' = L0 xor L1, L2' = (L0 & L1) xor L2, all reset
// to 0) with bad = L0 & !L1 & L2. Starting from (0,0,0) the state after n
// steps is the binary encoding of n (L0 = LSB), a strictly increasing
// sequence over 0..7, so the pattern (1,0,1) = 5 is reachable first, and
// only, at step 5.
func ThreeLatchGuardFSM() *aig.AIG {
	a := aig.New(11)
	a.AddLatch(aig.Latch{Lit: 2, Next: 3, Reset: 0})  // L0' = !L0
	a.AddLatch(aig.Latch{Lit: 4, Next: 12, Reset: 0}) // L1' = L0 xor L1
	a.AddLatch(aig.Latch{Lit: 6, Next: 18, Reset: 0}) // L2' = (L0&L1) xor L2

	a.AddAnd(aig.And{Lhs: 8, Rhs0: 4, Rhs1: 2})   // and1 = L1 & L0
	a.AddAnd(aig.And{Lhs: 10, Rhs0: 5, Rhs1: 3})  // and2 = !L1 & !L0
	a.AddAnd(aig.And{Lhs: 12, Rhs0: 11, Rhs1: 9}) // xor1 = !and2 & !and1 = L0 xor L1

	a.AddAnd(aig.And{Lhs: 14, Rhs0: 8, Rhs1: 6})   // and3 = and1 & L2
	a.AddAnd(aig.And{Lhs: 16, Rhs0: 9, Rhs1: 7})   // and4 = !and1 & !L2
	a.AddAnd(aig.And{Lhs: 18, Rhs0: 17, Rhs1: 15}) // xor2 = !and4 & !and3 = and1 xor L2

	a.AddAnd(aig.And{Lhs: 20, Rhs0: 5, Rhs1: 2})  // L0 & !L1
	a.AddAnd(aig.And{Lhs: 22, Rhs0: 20, Rhs1: 6}) // (L0 & !L1) & L2
	a.AddBad(22)
	return a
}

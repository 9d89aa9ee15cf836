package engine

import "github.com/sirandreww/ic3pdr/pkg/formula"

// blockIC3 implements §4.6.5 (push-generalization): a single shared
// min-heap seeded with (s0, k). Popping always returns the smallest
// frame index first, which is what turns the "recursively block the
// predecessor at frame n-1" step of the prose into a second push onto
// the same queue rather than a call-stack recursion: the predecessor
// obligation necessarily pops before the re-pushed (s, n) obligation.
//
// k is the outer driver's current top frame (the "n > k" bound named in
// §4.6.5). F[k+1] is already allocated at this point (the frontier
// container generalized clauses land in when pushed all the way
// forward), so pushForward may test relative induction up through F[k]
// and add the result at F[k+1] without exceeding the allocated range.
func (e *Engine) blockIC3(s0 formula.Cube, k int) bool {
	q := newObligationQueue()
	q.push(obligation{cube: s0, frame: k})

	for !q.empty() {
		ob := q.pop()
		s, n := ob.cube, ob.frame
		if n > k {
			// pushed past the current top frame: satisfied.
			continue
		}

		sTagged := e.sys.AddTagsToCube(s, 1)
		resp := e.store.SolveFiAndT(n, &sTagged, nil)
		if !resp.Sat {
			c := e.generalize(s, n)
			m := e.pushForward(c, n, k)
			e.store.AddClause(m+1, c)
			if m+1 <= k {
				q.push(obligation{cube: s, frame: m + 1})
			}
			continue
		}

		if n == 0 {
			return false
		}
		p := extractPredecessor(e.sys.StateVars, resp.Model)
		q.push(obligation{cube: p, frame: n - 1})
		q.push(obligation{cube: s, frame: n})
	}
	return true
}

// pushForward finds the highest frame m in [n, k] such that c still
// holds inductive relative to F[m], so the caller can add c at F[m+1]
// (which exists: F[k+1] is always pre-allocated) instead of just
// F[n+1], tightening frames beyond n.
func (e *Engine) pushForward(c formula.Clause, n, k int) int {
	m := n
	for m < k && e.isInductiveRelativeTo(c, m+1) {
		m++
	}
	return m
}

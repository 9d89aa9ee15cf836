package engine

import "github.com/sirandreww/ic3pdr/pkg/formula"

// blockPDR implements rec_block_cube (§4.6.6), the alternative control
// flavor sharing the same frame store, SAT abstraction, and
// generalization routine as blockIC3.
func (e *Engine) blockPDR(s0 formula.Cube, k int) bool {
	q := newObligationQueue()
	q.push(obligation{cube: s0, frame: k})

	for !q.empty() {
		ob := q.pop()
		s, j := ob.cube, ob.frame
		if j == 0 {
			return false
		}
		if e.alreadyBlocked(s, j, e.store.Top()) {
			continue
		}

		sTagged := e.sys.AddTagsToCube(s, 1)
		notS := s.Not()
		resp := e.store.SolveFiAndT(j-1, &sTagged, &notS)
		if !resp.Sat {
			notZ := e.generalize(s, j-1)
			m := e.pushForward(notZ, j-1, k)
			e.store.AddClause(m+1, notZ)
			if j < k {
				q.push(obligation{cube: s, frame: j + 1})
			}
			continue
		}

		p := extractPredecessor(e.sys.StateVars, resp.Model)
		q.push(obligation{cube: p, frame: j - 1})
		q.push(obligation{cube: s, frame: j})
	}
	return true
}

// alreadyBlocked reports whether some clause already recorded at a
// frame >= j forbids s: c forbids s when every literal of ¬c also
// appears in s, i.e. ¬c (as a cube) is a sub-cube of s.
func (e *Engine) alreadyBlocked(s formula.Cube, j, top int) bool {
	for i := j; i <= top; i++ {
		for _, c := range e.store.Clauses(i) {
			if c.Not().Subset(s) {
				return true
			}
		}
	}
	return false
}

package engine

import (
	"github.com/sirandreww/ic3pdr/pkg/formula"
	"github.com/sirandreww/ic3pdr/pkg/frames"
	"github.com/sirandreww/ic3pdr/pkg/fsts"
	"github.com/sirandreww/ic3pdr/pkg/satsolver"
)

// Engine owns the frame store, a stateless solver for one-shot checks,
// and the options governing a single Run. Per spec.md §5, an Engine is
// single-threaded and synchronous and is never shared across goroutines.
type Engine struct {
	sys       *fsts.System
	store     *frames.Store
	stateless satsolver.Stateless
	opts      Options
}

// New builds an Engine over sys. The frame store's solvers are sized to
// 2*MaxVar so that 1-step-primed variables (shifted by MaxVar) never
// collide with the activation literals Stateful.Solve allocates above
// the declared maximum.
func New(sys *fsts.System, opts Options) *Engine {
	newSolver := func() satsolver.Stateful {
		return satsolver.NewGini(sys.MaxVar * 2)
	}
	return &Engine{
		sys:       sys,
		store:     frames.New(sys, newSolver),
		stateless: satsolver.StatelessGini{},
		opts:      opts,
	}
}

// Run implements the frame-advance driver of §4.7.
func (e *Engine) Run() Result {
	if e.depthZeroReachable() {
		e.opts.Logger.Debugf("bad state reachable at depth 0")
		return ctx(0)
	}
	if e.depthOneReachable() {
		e.opts.Logger.Debugf("bad state reachable at depth 1")
		return ctx(1)
	}

	e.store.NewFrame() // F[0]
	e.store.NewFrame() // F[1]

	for k := 1; ; k++ {
		e.store.NewFrame() // F[k+1]
		e.opts.Logger.Debugf("frame %d allocated", k+1)

		if !e.strengthen(k) {
			e.opts.Logger.Infof("counterexample found at depth %d", k)
			return ctx(k)
		}
		e.propagate(k)

		if inv, i, ok := e.checkFixpoint(k); ok {
			e.opts.Logger.Infof("fixpoint reached at frame %d (%d clauses)", i, inv.Len())
			e.verifyInvariant(inv, i)
			return proof(inv)
		}
	}
}

// strengthen implements §4.7's strengthen(k): repeatedly extract a
// bad-reaching predecessor of F[k] and block it, until none remains.
func (e *Engine) strengthen(k int) bool {
	for {
		resp := e.store.SolveBadCube(k)
		if !resp.Sat {
			return true
		}
		p := extractPredecessor(e.sys.StateVars, resp.Model)
		if !e.blockAtTop(p, k) {
			return false
		}
	}
}

// blockAtTop dispatches to the configured blocking-loop flavor.
func (e *Engine) blockAtTop(s formula.Cube, k int) bool {
	if e.opts.Algorithm == PDR {
		return e.blockPDR(s, k)
	}
	return e.blockIC3(s, k)
}

// propagate implements §4.7's propagate(k): push every clause of F[i]
// (1 <= i <= k) into F[i+1] when it remains relatively inductive there.
func (e *Engine) propagate(k int) {
	for i := 1; i <= k; i++ {
		for _, c := range e.store.Clauses(i) {
			notCTagged := e.sys.AddTagsToCube(c.Not(), 1)
			resp := e.store.SolveFiAndT(i, &notCTagged, nil)
			if !resp.Sat {
				e.store.AddClause(i+1, c)
			}
		}
	}
}

// checkFixpoint implements §4.7's cardinality shortcut: equal clause
// counts between adjacent frames, combined with the store's
// monotonicity invariant, imply set equality.
func (e *Engine) checkFixpoint(k int) (*formula.CNF, int, bool) {
	for i := 1; i <= k; i++ {
		if e.store.Len(i) == e.store.Len(i+1) {
			return cnfOfClauses(e.store.Clauses(i)), i, true
		}
	}
	return nil, 0, false
}

// depthZeroReachable checks the §4.7 pre-check "initialCube ∧ ¬P is SAT".
func (e *Engine) depthZeroReachable() bool {
	cnf := e.sys.InitialCube.ToCNF()
	cnf.Append(e.sys.UnsafetyAtTag(0))
	return e.stateless.SolveCNF(cnf).Sat
}

// depthOneReachable checks the §4.7 pre-check
// "initialCube ∧ T ∧ ¬P′ is SAT".
func (e *Engine) depthOneReachable() bool {
	cnf := e.sys.InitialCube.ToCNF()
	cnf.Append(e.sys.TransitionCNF)
	cnf.Append(e.sys.UnsafetyAtTag(1))
	return e.stateless.SolveCNF(cnf).Sat
}

// verifyInvariant implements §4.8's three-condition post-proof check,
// panicking with InvariantCheckFailureError if any disagrees with the
// frame-advance driver's claim of a fixpoint.
func (e *Engine) verifyInvariant(inv *formula.CNF, frameIdx int) {
	for _, c := range inv.Clauses() {
		if !e.initialImplies(c) {
			e.opts.Logger.Errorf("invariant check failed: initial states violate a learned clause")
			panic(&InvariantCheckFailureError{Check: "initial-implication", Frame: frameIdx})
		}
	}

	for _, c := range inv.Clauses() {
		combined := inv.Clone()
		combined.Append(e.sys.TransitionCNF)
		notCTagged := e.sys.AddTagsToCube(c.Not(), 1)
		combined.Append(notCTagged.ToCNF())
		if e.stateless.SolveCNF(combined).Sat {
			e.opts.Logger.Errorf("invariant check failed: candidate invariant is not inductive")
			panic(&InvariantCheckFailureError{Check: "inductiveness", Frame: frameIdx})
		}
	}

	safety := inv.Clone()
	safety.Append(e.sys.UnsafetyAtTag(0))
	if e.stateless.SolveCNF(safety).Sat {
		e.opts.Logger.Errorf("invariant check failed: candidate invariant admits a bad state")
		panic(&InvariantCheckFailureError{Check: "safety", Frame: frameIdx})
	}
}

func cnfOfClauses(clauses []formula.Clause) *formula.CNF {
	out := formula.NewCNF()
	for _, c := range clauses {
		out.AddClause(c)
	}
	return out
}

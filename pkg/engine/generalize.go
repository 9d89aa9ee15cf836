package engine

import (
	"github.com/sirandreww/ic3pdr/pkg/formula"
	"github.com/sirandreww/ic3pdr/pkg/satsolver"
)

// extractPredecessor implements §4.6.1: given a model satisfying
// F[i] ∧ T ∧ target, build the predecessor cube = conjunction over
// stateVars of v ↔ M(v). Inputs are not included.
func extractPredecessor(stateVars []formula.VariableType, model satsolver.Model) formula.Cube {
	lits := make([]formula.Literal, 0, len(stateVars))
	for _, v := range stateVars {
		l := formula.NewLiteral(v)
		if !model.Value(v) {
			l = l.Not()
		}
		lits = append(lits, l)
	}
	return formula.NewCube(lits)
}

// initialImplies answers §4.6.2(a): initialCube ⇒ d, checked as
// initialCube ∧ ¬d UNSAT via the frame-0 solver (which holds exactly
// initialCube, per spec.md §4.5).
func (e *Engine) initialImplies(d formula.Clause) bool {
	notD := d.Not()
	resp := e.store.SolveFi(0, &notD, nil)
	return !resp.Sat
}

// isInductiveRelativeTo implements §4.6.2: d is inductive relative to
// F[i] iff initialCube ⇒ d and F[i] ∧ d ∧ T ∧ ¬d′ is UNSAT. The second
// check runs against the F[i] ∧ T solver with assumption clause d and
// assumption cube ¬d′.
func (e *Engine) isInductiveRelativeTo(d formula.Clause, i int) bool {
	if !e.initialImplies(d) {
		return false
	}
	notDTagged := e.sys.AddTagsToCube(d.Not(), 1)
	resp := e.store.SolveFiAndT(i, &notDTagged, &d)
	return !resp.Sat
}

// generalize implements §4.6.3: compute c = ¬s and, in randomized order,
// tentatively drop each literal of c, keeping the drop only when the
// resulting clause is still inductive relative to F[i]. One pass over the
// literals suffices for correctness.
func (e *Engine) generalize(s formula.Cube, i int) formula.Clause {
	lits := s.Not().Literals()
	order := e.opts.Rand.Perm(len(lits))
	dropped := make([]bool, len(lits))

	for _, idx := range order {
		trial := make([]formula.Literal, 0, len(lits)-1)
		for j, l := range lits {
			if j == idx || dropped[j] {
				continue
			}
			trial = append(trial, l)
		}
		if e.isInductiveRelativeTo(formula.NewClause(trial), i) {
			dropped[idx] = true
		}
	}

	out := make([]formula.Literal, 0, len(lits))
	for j, l := range lits {
		if !dropped[j] {
			out = append(out, l)
		}
	}
	return formula.NewClause(out)
}

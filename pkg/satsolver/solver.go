// Package satsolver gives the reachability engine a uniform incremental,
// assumption-based SAT interface, the same shape as the teacher's
// litMapping + solver.Solve pattern: a small struct translating domain
// types (formula.Cube, formula.Clause) to and from a backend solver, never
// letting the backend leak into the caller.
package satsolver

import "github.com/sirandreww/ic3pdr/pkg/formula"

// Model is a satisfying assignment returned alongside a SAT result. It must
// assign every variable the caller queries via Value; variables absent
// from the solver's permanent formula may report either polarity.
type Model interface {
	Value(v formula.VariableType) bool
}

// Response is the result of a SAT query: either Sat (with a Model) or
// Unsat.
type Response struct {
	Sat   bool
	Model Model
}

// ValueOfLiteral resolves l's truth value under r.Model, honoring polarity.
// Callers must only call this when r.Sat is true.
func (r Response) ValueOfLiteral(l formula.Literal) bool {
	v := r.Model.Value(l.Var())
	if l.IsNegated() {
		return !v
	}
	return v
}

// Stateless is a one-shot solver: translate a CNF, solve it, and discard
// the backend. Convenience wrapper over Stateful for callers with no need
// to reuse solver state.
type Stateless interface {
	SolveCNF(f *formula.CNF) Response
}

// Stateful is the primary mechanism used by the blocking engine: a solver
// whose permanent clause set only grows, queried repeatedly under
// temporary assumptions.
//
// AddCNF monotonically extends the permanent formula; it must never be
// asked to remove or alter a clause once added. Solve accepts an optional
// assumption cube (every literal must be true) and an optional assumption
// clause (its disjunction must be true), realizing the clause via a fresh
// activation literal that is never reused across unrelated queries.
type Stateful interface {
	AddCNF(f *formula.CNF)
	Solve(assumeCube *formula.Cube, assumeClause *formula.Clause) Response
}

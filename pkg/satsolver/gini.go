package satsolver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/sirandreww/ic3pdr/pkg/formula"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// ErrSolverUnknown is the (wrapped) panic value Gini.Solve raises when the
// backend returns neither a satisfiable nor an unsatisfiable verdict. It is
// a fatal condition; the engine does not recover from it.
var ErrSolverUnknown = errors.New("sat solver: backend returned an unknown result")

// toZLit reinterprets a formula.Literal as a gini z.Lit. No translation
// table is needed: both encode 2*variable+polarity and negate via the same
// single-bit XOR.
func toZLit(l formula.Literal) z.Lit {
	return z.Lit(l)
}

func fromZLit(m z.Lit) formula.Literal {
	return formula.Literal(m)
}

// giniModel adapts an inter.S's Value method to the Model interface.
type giniModel struct {
	g inter.S
}

func (m giniModel) Value(v formula.VariableType) bool {
	return m.g.Value(toZLit(formula.NewLiteral(v)))
}

// Gini is a Stateful SAT solver backed by github.com/go-air/gini, the same
// library the teacher vendors for its own constraint solver.
type Gini struct {
	g          *gini.Gini
	nextActLit formula.VariableType
}

// NewGini returns a Stateful solver with no permanent clauses. maxVar
// bounds the variable ids the caller will add via AddCNF/Solve; fresh
// activation literals for assumption clauses are allocated above it so
// they can never collide with a real problem variable.
func NewGini(maxVar formula.VariableType) *Gini {
	return &Gini{g: gini.New(), nextActLit: maxVar + 1}
}

func (s *Gini) addClause(c formula.Clause) {
	for _, l := range c.Literals() {
		s.g.Add(toZLit(l))
	}
	s.g.Add(z.LitNull)
}

// AddCNF implements Stateful.
func (s *Gini) AddCNF(f *formula.CNF) {
	for _, c := range f.Clauses() {
		s.addClause(c)
	}
}

// Solve implements Stateful. The assumption clause, when present, is
// realized via a fresh activation literal a: the clause "assumeClause ∪
// {¬a}" is added permanently and a is assumed only for this call.
func (s *Gini) Solve(assumeCube *formula.Cube, assumeClause *formula.Clause) Response {
	var assumed []z.Lit
	if assumeCube != nil {
		for _, l := range assumeCube.Literals() {
			assumed = append(assumed, toZLit(l))
		}
	}
	if assumeClause != nil {
		act := formula.NewLiteral(s.nextActLit)
		s.nextActLit++
		lits := append(assumeClause.Literals(), act.Not())
		s.addClause(formula.NewClause(lits))
		assumed = append(assumed, toZLit(act))
	}
	if len(assumed) > 0 {
		s.g.Assume(assumed...)
	}
	switch s.g.Solve() {
	case satisfiable:
		return Response{Sat: true, Model: giniModel{g: s.g}}
	case unsatisfiable:
		return Response{Sat: false}
	default:
		panic(errors.Wrap(ErrSolverUnknown, "Gini.Solve"))
	}
}

// StatelessGini is a Stateless solver that spins up a fresh Gini instance
// per query.
type StatelessGini struct{}

// SolveCNF implements Stateless.
func (StatelessGini) SolveCNF(f *formula.CNF) Response {
	s := NewGini(f.MaxVar())
	s.AddCNF(f)
	return s.Solve(nil, nil)
}

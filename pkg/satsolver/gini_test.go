package satsolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirandreww/ic3pdr/pkg/formula"
)

func lit(v uint32) formula.Literal { return formula.NewLiteral(formula.VariableType(v)) }

func TestGiniSolvesSatisfiableCNF(t *testing.T) {
	f := formula.NewCNF()
	f.AddClause(formula.NewClause([]formula.Literal{lit(1), lit(2)}))
	f.AddClause(formula.NewClause([]formula.Literal{lit(1).Not(), lit(2)}))

	s := NewGini(2)
	s.AddCNF(f)
	resp := s.Solve(nil, nil)
	require.True(t, resp.Sat)
	assert.True(t, resp.ValueOfLiteral(lit(2)))
}

func TestGiniDetectsUnsatisfiableCNF(t *testing.T) {
	f := formula.NewCNF()
	f.AddClause(formula.NewClause([]formula.Literal{lit(1)}))
	f.AddClause(formula.NewClause([]formula.Literal{lit(1).Not()}))

	s := NewGini(1)
	s.AddCNF(f)
	resp := s.Solve(nil, nil)
	assert.False(t, resp.Sat)
}

func TestGiniAssumptionCubeForcesLiterals(t *testing.T) {
	f := formula.NewCNF()
	f.AddClause(formula.NewClause([]formula.Literal{lit(1), lit(2)}))

	s := NewGini(2)
	s.AddCNF(f)
	resp := s.Solve(&[]formula.Cube{formula.NewCube([]formula.Literal{lit(1).Not()})}[0], nil)
	require.True(t, resp.Sat)
	assert.True(t, resp.ValueOfLiteral(lit(2)), "clause forces lit 2 true when lit 1 is assumed false")
}

func TestGiniAssumptionClauseIsTemporary(t *testing.T) {
	s := NewGini(2)
	// No permanent clauses: assumption clause (1 | 2) should be satisfiable,
	// and a later call without it must not still require it.
	resp := s.Solve(nil, &[]formula.Clause{formula.NewClause([]formula.Literal{lit(1), lit(2)})}[0])
	require.True(t, resp.Sat)

	resp2 := s.Solve(&[]formula.Cube{formula.NewCube([]formula.Literal{lit(1).Not(), lit(2).Not()})}[0], nil)
	assert.True(t, resp2.Sat, "activation literal must not force the clause on later calls")
}

func TestStatelessGiniSolveCNF(t *testing.T) {
	f := formula.NewCNF()
	f.AddClause(formula.NewClause([]formula.Literal{lit(1)}))
	resp := StatelessGini{}.SolveCNF(f)
	require.True(t, resp.Sat)
	assert.True(t, resp.ValueOfLiteral(lit(1)))
}

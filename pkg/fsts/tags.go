package fsts

import "github.com/sirandreww/ic3pdr/pkg/formula"

// AddTagsToRelation returns relation with every variable id v replaced by
// v + n*MaxVar (constant 0 never shifts). n = 1 is one-step unrolling;
// higher tags are reserved for BMC-style consumers (internal/bmctest).
func (s *System) AddTagsToRelation(relation *formula.CNF, n int) *formula.CNF {
	out := formula.NewCNF()
	for _, c := range relation.Clauses() {
		out.AddClause(formula.NewClause(tagLiterals(c.Literals(), n, s.MaxVar)))
	}
	return out
}

// AddTagsToCube tags a cube the same way AddTagsToRelation tags a CNF.
func (s *System) AddTagsToCube(c formula.Cube, n int) formula.Cube {
	return formula.NewCube(tagLiterals(c.Literals(), n, s.MaxVar))
}

// AddTagsToClause tags a clause the same way AddTagsToRelation tags a CNF.
func (s *System) AddTagsToClause(c formula.Clause, n int) formula.Clause {
	return formula.NewClause(tagLiterals(c.Literals(), n, s.MaxVar))
}

func tagLiterals(lits []formula.Literal, n int, maxVar formula.VariableType) []formula.Literal {
	out := make([]formula.Literal, len(lits))
	shift := formula.VariableType(n) * maxVar
	for i, l := range lits {
		nl := formula.NewLiteral(l.Var() + shift)
		out[i] = nl.NegateIfTrue(l.IsNegated())
	}
	return out
}

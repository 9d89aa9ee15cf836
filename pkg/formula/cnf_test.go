package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCNFAppendIsSetUnion(t *testing.T) {
	a := NewCNF()
	a.AddClause(NewClause([]Literal{NewLiteral(1)}))
	b := NewCNF()
	b.AddClause(NewClause([]Literal{NewLiteral(2)}))
	b.AddClause(NewClause([]Literal{NewLiteral(1)}))

	a.Append(b)
	assert.Equal(t, 2, a.Len())
	assert.True(t, a.Contains(NewClause([]Literal{NewLiteral(2)})))
}

func TestCNFContainsIsSetMembership(t *testing.T) {
	f := NewCNF()
	c := NewClause([]Literal{NewLiteral(1), NewLiteral(2)})
	assert.False(t, f.Contains(c))
	f.AddClause(c)
	assert.True(t, f.Contains(c))
	// insertion order of literals must not matter
	assert.True(t, f.Contains(NewClause([]Literal{NewLiteral(2), NewLiteral(1)})))
}

func TestCNFMaxVar(t *testing.T) {
	f := NewCNF()
	assert.Equal(t, VariableType(0), f.MaxVar())
	f.AddClause(NewClause([]Literal{NewLiteral(5), NewLiteral(2)}))
	assert.Equal(t, VariableType(5), f.MaxVar())
}

func TestCNFEqualIgnoresInsertionOrder(t *testing.T) {
	a := NewCNF()
	a.AddClause(NewClause([]Literal{NewLiteral(1)}))
	a.AddClause(NewClause([]Literal{NewLiteral(2)}))

	b := NewCNF()
	b.AddClause(NewClause([]Literal{NewLiteral(2)}))
	b.AddClause(NewClause([]Literal{NewLiteral(1)}))

	assert.True(t, a.Equal(b))
}

// Package formula implements the Boolean-formula kernel the reachability
// engine is built on: literals, clauses, cubes and CNF sets, sharing the
// same 2v+polarity literal encoding as the gini SAT solver so no
// translation table is needed between the two.
package formula

import "strconv"

// VariableType is a variable identifier. Variable 0 is reserved and never
// appears in a constructed Literal.
type VariableType uint32

// Literal is a (variable, polarity) pair encoded as 2*variable + polarity,
// matching github.com/go-air/gini/z.Lit bit for bit so the solver package
// can reinterpret a Literal as a z.Lit without any lookup.
type Literal uint32

// NewLiteral returns the positive literal for v. It panics if v is 0:
// referencing the reserved variable is a programming error.
func NewLiteral(v VariableType) Literal {
	if v == 0 {
		panic("formula: variable 0 is reserved")
	}
	return Literal(v << 1)
}

// Not returns the negation of l.
func (l Literal) Not() Literal {
	return l ^ 1
}

// Var returns the variable l refers to.
func (l Literal) Var() VariableType {
	return VariableType(l >> 1)
}

// IsNegated reports whether l is the negative polarity of its variable.
func (l Literal) IsNegated() bool {
	return l&1 == 1
}

// NegateIfTrue returns !l when negate is true, else l unchanged.
func (l Literal) NegateIfTrue(negate bool) Literal {
	if negate {
		return l.Not()
	}
	return l
}

// Dimacs returns the signed-integer Dimacs form of l (negative for negated
// literals), matching gini's z.Lit.Dimacs().
func (l Literal) Dimacs() int {
	v := int(l.Var())
	if l.IsNegated() {
		return -v
	}
	return v
}

// FromDimacs builds a Literal from a signed Dimacs integer. It panics on 0.
func FromDimacs(d int) Literal {
	if d == 0 {
		panic("formula: dimacs literal 0 is reserved")
	}
	if d < 0 {
		return NewLiteral(VariableType(-d)).Not()
	}
	return NewLiteral(VariableType(d))
}

// String renders l in signed Dimacs notation, e.g. "3" or "-3".
func (l Literal) String() string {
	return strconv.Itoa(l.Dimacs())
}

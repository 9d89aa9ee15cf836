package formula

import "strings"

// Cube is a sorted, deduplicated set of literals interpreted as a
// conjunction. The empty cube is satisfiable (true).
type Cube struct {
	lits []Literal
}

// NewCube builds a Cube from lits, sorting and deduplicating them.
func NewCube(lits []Literal) Cube {
	return Cube{lits: canonicalize(lits)}
}

// Literals returns a copy of c's literals in canonical (sorted) order.
func (c Cube) Literals() []Literal {
	out := make([]Literal, len(c.lits))
	copy(out, c.lits)
	return out
}

// Len reports the number of distinct literals in c.
func (c Cube) Len() int {
	return len(c.lits)
}

// IsEmpty reports whether c is the empty (trivially true) cube.
func (c Cube) IsEmpty() bool {
	return len(c.lits) == 0
}

// Not returns the clause !c. Negation of a cube is always a clause and is
// an involution together with Clause.Not.
func (c Cube) Not() Clause {
	lits := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		lits[i] = l.Not()
	}
	return NewClause(lits)
}

// ToCNF returns one unit clause per literal of c.
func (c Cube) ToCNF() *CNF {
	out := NewCNF()
	for _, l := range c.lits {
		out.AddClause(NewClause([]Literal{l}))
	}
	return out
}

// Subset reports whether every literal of c is also a literal of d.
func (c Cube) Subset(d Cube) bool {
	if len(c.lits) > len(d.lits) {
		return false
	}
	dset := make(map[Literal]struct{}, len(d.lits))
	for _, l := range d.lits {
		dset[l] = struct{}{}
	}
	for _, l := range c.lits {
		if _, ok := dset[l]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether c and d contain exactly the same literals.
func (c Cube) Equal(d Cube) bool {
	return c.key() == d.key()
}

func (c Cube) key() string {
	return Clause(c).key()
}

// String renders c as "l1 & l2 & ...".
func (c Cube) String() string {
	if len(c.lits) == 0 {
		return "true"
	}
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " & ")
}

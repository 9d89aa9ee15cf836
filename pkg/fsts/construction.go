package fsts

import (
	"math"

	"github.com/sirandreww/ic3pdr/pkg/aig"
	"github.com/sirandreww/ic3pdr/pkg/formula"
)

// Build compiles a into a System. assumeOutputsBad treats a's primary
// outputs as additional bad signals alongside its bad literals. Build
// rejects AIGs carrying invariant-constraint literals (out of scope) and
// AIGs whose maxVar is too large to prime safely.
func Build(a *aig.AIG, assumeOutputsBad bool) (*System, error) {
	if n := len(a.Constraints()); n > 0 {
		return nil, &UnsupportedFeatureError{Feature: "invariant constraints", Count: n}
	}

	maxVar := formula.VariableType(a.MaxVar())
	const limit = uint64(math.MaxUint32) >> 1
	if uint64(a.MaxVar()) > limit {
		return nil, &IntegerOverflowError{MaxVar: uint64(a.MaxVar()), Limit: limit}
	}

	unsafetyWires := append([]int(nil), a.Bad()...)
	if assumeOutputsBad {
		unsafetyWires = append(unsafetyWires, a.Outputs()...)
	}

	initialCube := buildInitialCube(a)
	transitionCNF := buildTransitionCNF(a, maxVar)
	stateToSafetyCNF := tseitinCNF(a, unsafetyWires)
	unsafetyClause := buildUnsafetyClause(unsafetyWires)

	stateVars := make([]formula.VariableType, 0, len(a.Latches()))
	for _, l := range a.Latches() {
		stateVars = append(stateVars, literalFromAIG(l.Lit).Var())
	}
	inputVars := make([]formula.VariableType, 0, len(a.Inputs()))
	for _, in := range a.Inputs() {
		inputVars = append(inputVars, literalFromAIG(in).Var())
	}

	return &System{
		MaxVar:           maxVar,
		InitialCube:      initialCube,
		TransitionCNF:    transitionCNF,
		StateToSafetyCNF: stateToSafetyCNF,
		UnsafetyClause:   unsafetyClause,
		StateVars:        stateVars,
		InputVars:        inputVars,
	}, nil
}

// literalFromAIG converts an AIGER-encoded literal (2v+polarity, over
// plain ints) into a formula.Literal.
func literalFromAIG(aigLit int) formula.Literal {
	v := formula.VariableType(aigLit >> 1)
	lit := formula.NewLiteral(v)
	if aigLit&1 == 1 {
		lit = lit.Not()
	}
	return lit
}

// primedLiteralFromAIG converts aigLit to its "next-state" (primed) copy,
// whose variable is shifted by maxVar.
func primedLiteralFromAIG(aigLit int, maxVar formula.VariableType) formula.Literal {
	l := literalFromAIG(aigLit)
	primed := formula.NewLiteral(l.Var() + maxVar)
	return primed.NegateIfTrue(l.IsNegated())
}

// tseitinCNF returns the Tseitin encoding of every AND gate in the
// cone-of-influence of wires: the minimum equisatisfiable 3-clause
// encoding per gate. A constant-false input collapses it to the unit
// clause ¬out, two constant-true inputs to the unit clause out, and one
// constant-true input to the two clauses of out ↔ (the other input).
func tseitinCNF(a *aig.AIG, wires []int) *formula.CNF {
	cnf := formula.NewCNF()
	for _, g := range a.AndGatesInCOI(wires) {
		out := literalFromAIG(g.Lhs)
		switch {
		case g.Rhs0 == 0 || g.Rhs1 == 0:
			// one input is constant-false: output is forced false.
			cnf.AddClause(formula.NewClause([]formula.Literal{out.Not()}))
		case g.Rhs0 == 1 && g.Rhs1 == 1:
			// both inputs constant-true: output is forced true.
			cnf.AddClause(formula.NewClause([]formula.Literal{out}))
		case g.Rhs0 == 1:
			in1 := literalFromAIG(g.Rhs1)
			cnf.AddClause(formula.NewClause([]formula.Literal{in1.Not(), out}))
			cnf.AddClause(formula.NewClause([]formula.Literal{in1, out.Not()}))
		case g.Rhs1 == 1:
			in0 := literalFromAIG(g.Rhs0)
			cnf.AddClause(formula.NewClause([]formula.Literal{in0.Not(), out}))
			cnf.AddClause(formula.NewClause([]formula.Literal{in0, out.Not()}))
		default:
			in0 := literalFromAIG(g.Rhs0)
			in1 := literalFromAIG(g.Rhs1)
			cnf.AddClause(formula.NewClause([]formula.Literal{out.Not(), in0}))
			cnf.AddClause(formula.NewClause([]formula.Literal{out.Not(), in1}))
			cnf.AddClause(formula.NewClause([]formula.Literal{out, in0.Not(), in1.Not()}))
		}
	}
	return cnf
}

// buildInitialCube appends a unit literal per latch with a fixed reset
// value; unconstrained (self-literal) latches contribute nothing.
func buildInitialCube(a *aig.AIG) formula.Cube {
	var lits []formula.Literal
	for _, l := range a.Latches() {
		if l.Uninitialized() {
			continue
		}
		lit := literalFromAIG(l.Lit)
		switch l.Reset {
		case 0:
			lits = append(lits, lit.Not())
		case 1:
			lits = append(lits, lit)
		}
	}
	return formula.NewCube(lits)
}

// buildTransitionCNF emits the primed-latch equivalence clauses plus the
// Tseitin encoding of the cone feeding the next-state wires.
func buildTransitionCNF(a *aig.AIG, maxVar formula.VariableType) *formula.CNF {
	cnf := formula.NewCNF()
	var wires []int
	for _, l := range a.Latches() {
		primed := primedLiteralFromAIG(l.Lit, maxVar)
		switch l.Next {
		case 0:
			cnf.AddClause(formula.NewClause([]formula.Literal{primed.Not()}))
		case 1:
			cnf.AddClause(formula.NewClause([]formula.Literal{primed}))
		default:
			next := literalFromAIG(l.Next)
			cnf.AddClause(formula.NewClause([]formula.Literal{primed.Not(), next}))
			cnf.AddClause(formula.NewClause([]formula.Literal{primed, next.Not()}))
			wires = append(wires, l.Next)
		}
	}
	cnf.Append(tseitinCNF(a, wires))
	return cnf
}

// buildUnsafetyClause is the disjunction of the unsafety wires; an empty
// set yields the empty (unsatisfiable) clause, making P trivially true.
func buildUnsafetyClause(wires []int) formula.Clause {
	lits := make([]formula.Literal, 0, len(wires))
	for _, w := range wires {
		lits = append(lits, literalFromAIG(w))
	}
	return formula.NewClause(lits)
}

// Package fsts translates an in-memory And-Inverter Graph (pkg/aig) into a
// finite-state transition system in CNF: a Tseitin-style encoding grounded
// on original_source's FiniteStateTransitionSystem::construction module.
package fsts

import "github.com/sirandreww/ic3pdr/pkg/formula"

// System holds the compiled artifacts of an AIG, all sharing one variable
// space bounded by MaxVar. None of these are mutated after construction.
type System struct {
	MaxVar           formula.VariableType
	InitialCube      formula.Cube
	TransitionCNF    *formula.CNF
	StateToSafetyCNF *formula.CNF
	UnsafetyClause   formula.Clause
	StateVars        []formula.VariableType
	InputVars        []formula.VariableType
}

// SafetyPropertyCNF returns P, the safety property, as CNF: the negation
// of UnsafetyClause converted via the clause/cube duality (cube.ToCNF
// yields one unit clause per literal). When UnsafetyClause is empty, P is
// trivially true (SafetyPropertyCNF returns an empty CNF).
func (s *System) SafetyPropertyCNF() *formula.CNF {
	return s.UnsafetyClause.Not().ToCNF()
}

// UnsafetyAtTag returns ¬P tagged n steps forward: stateToSafetyCNF and
// unsafetyClause both shifted by AddTags, so n=0 yields ¬P over the
// present state and n=1 yields ¬P′ as used by the frame store's third
// solver and by the depth-1 pre-check of the frame-advance driver.
func (s *System) UnsafetyAtTag(n int) *formula.CNF {
	out := s.AddTagsToRelation(s.StateToSafetyCNF, n)
	out.AddClause(s.AddTagsToClause(s.UnsafetyClause, n))
	return out
}

// Package frames is the reachability frame store (spec component C5): an
// ordered sequence F[0..top] of learned blocking clauses, each frame
// backed by three incremental SAT solver instances loaded with,
// respectively, F[i], F[i] ∧ T, and F[i] ∧ T ∧ ¬P′ — grounded on
// original_source's proof::pdr module (ri_solvers / ri_and_t_solvers /
// ri_and_not_p_solvers) but computing each solver's permanent content
// directly from spec.md §4.5's formulas rather than mirroring that
// module's (inconsistent) incremental wiring.
package frames

import (
	"github.com/sirandreww/ic3pdr/pkg/formula"
	"github.com/sirandreww/ic3pdr/pkg/fsts"
	"github.com/sirandreww/ic3pdr/pkg/satsolver"
)

// NewSolverFunc constructs a fresh Stateful solver. The frame store never
// constructs solvers directly, mirroring the teacher's practice of taking
// solver construction as an injectable capability rather than a hardcoded
// backend.
type NewSolverFunc func() satsolver.Stateful

// Store owns a contiguous vector of per-frame solver triples and the
// delta-less clause bookkeeping used for propagation and fixpoint
// detection.
type Store struct {
	sys       *fsts.System
	newSolver NewSolverFunc

	// clauses[i] holds every clause currently loaded into solver-triple i,
	// i.e. the clauses belonging to F[i] under the delta-less layout.
	clauses []*formula.CNF

	fi            []satsolver.Stateful // F[i]
	fiAndT        []satsolver.Stateful // F[i] ∧ T
	fiAndTNotPOne []satsolver.Stateful // F[i] ∧ T ∧ ¬P′ (queried without assumptions)
}

// New returns a Store with no frames allocated yet; callers must call
// NewFrame to allocate F[0].
func New(sys *fsts.System, newSolver NewSolverFunc) *Store {
	return &Store{sys: sys, newSolver: newSolver}
}

// Top returns the index of the highest allocated frame, or -1 if none.
func (s *Store) Top() int {
	return len(s.clauses) - 1
}

// pAndStateToSafetyCNF returns P ∧ stateToSafetyCNF, the fixed base every
// frame i ≥ 1 starts from.
func (s *Store) pAndStateToSafetyCNF() *formula.CNF {
	out := s.sys.SafetyPropertyCNF().Clone()
	out.Append(s.sys.StateToSafetyCNF)
	return out
}

// notPTagOneCNF returns ¬P′ (the 1-step-primed negation of the safety
// property): the primed Tseitin cone feeding the bad wires, plus the
// primed unsafety clause asserting one of them true.
func (s *Store) notPTagOneCNF() *formula.CNF {
	return s.sys.UnsafetyAtTag(1)
}

// NewFrame allocates the next frame (F[0] on the first call) and
// initializes its three solvers per spec.md §4.5: initialCube for frame 0,
// P ∧ stateToSafetyCNF ∧ clauses(F[i]) for frame i ≥ 1 — plus T, plus
// ¬P′, respectively, for the second and third solver.
func (s *Store) NewFrame() {
	i := len(s.clauses)

	base := formula.NewCNF()
	if i == 0 {
		base.Append(s.sys.InitialCube.ToCNF())
	} else {
		base.Append(s.pAndStateToSafetyCNF())
	}

	fi := s.newSolver()
	fi.AddCNF(base)

	fiAndT := s.newSolver()
	fiAndT.AddCNF(base)
	fiAndT.AddCNF(s.sys.TransitionCNF)

	fiAndTNotP := s.newSolver()
	fiAndTNotP.AddCNF(base)
	fiAndTNotP.AddCNF(s.sys.TransitionCNF)
	fiAndTNotP.AddCNF(s.notPTagOneCNF())

	s.clauses = append(s.clauses, formula.NewCNF())
	s.fi = append(s.fi, fi)
	s.fiAndT = append(s.fiAndT, fiAndT)
	s.fiAndTNotPOne = append(s.fiAndTNotPOne, fiAndTNotP)
}

// AddClause adds c to frame i and, per the delta-less layout, to every
// frame 1..i: c is implied by the stronger (lower-index) frames too. F[0]
// holds only the initial cube and never receives learned clauses.
// Subsumption bookkeeping (removing clauses d with c ⊆ d) only trims the
// logical clause-set view used for iteration and fixpoint cardinality
// comparisons — already-submitted solver clauses are never retracted.
func (s *Store) AddClause(i int, c formula.Clause) {
	for t := 1; t <= i; t++ {
		if s.clauses[t].Contains(c) {
			continue
		}
		s.subsume(t, c)
		s.clauses[t].AddClause(c)
		s.fi[t].AddCNF(singleClauseCNF(c))
		s.fiAndT[t].AddCNF(singleClauseCNF(c))
		s.fiAndTNotPOne[t].AddCNF(singleClauseCNF(c))
	}
}

func (s *Store) subsume(i int, c formula.Clause) {
	for _, d := range s.clauses[i].Clauses() {
		if c.Subset(d) {
			s.clauses[i].Remove(d)
		}
	}
}

func singleClauseCNF(c formula.Clause) *formula.CNF {
	out := formula.NewCNF()
	out.AddClause(c)
	return out
}

// Clauses returns the clauses currently recorded in frame i's bookkeeping
// (the Store's view of F[i], for i ≥ 1).
func (s *Store) Clauses(i int) []formula.Clause {
	return s.clauses[i].Clauses()
}

// Len reports the number of clauses recorded in frame i.
func (s *Store) Len(i int) int {
	return s.clauses[i].Len()
}

// Equal reports whether frames i and j have the same clause set. The
// engine's fixpoint detection does not call it: it compares Len instead
// (the cardinality shortcut in spec.md §4.7).
func (s *Store) Equal(i, j int) bool {
	return s.clauses[i].Equal(s.clauses[j])
}

// SolveFi queries solver1 of frame i (F[i]) under the given optional
// assumption cube/clause.
func (s *Store) SolveFi(i int, assumeCube *formula.Cube, assumeClause *formula.Clause) satsolver.Response {
	return s.fi[i].Solve(assumeCube, assumeClause)
}

// SolveFiAndT queries solver2 of frame i (F[i] ∧ T) under the given
// optional assumption cube/clause.
func (s *Store) SolveFiAndT(i int, assumeCube *formula.Cube, assumeClause *formula.Clause) satsolver.Response {
	return s.fiAndT[i].Solve(assumeCube, assumeClause)
}

// SolveBadCube queries solver3 of frame i (F[i] ∧ T ∧ ¬P′), which holds
// ¬P′ permanently alongside F[i]'s learned clauses — no assumptions are
// needed to ask "is a bad-reaching predecessor present".
func (s *Store) SolveBadCube(i int) satsolver.Response {
	return s.fiAndTNotPOne[i].Solve(nil, nil)
}

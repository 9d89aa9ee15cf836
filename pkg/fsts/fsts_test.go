package fsts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirandreww/ic3pdr/pkg/aig"
	"github.com/sirandreww/ic3pdr/pkg/formula"
	"github.com/sirandreww/ic3pdr/internal/testfixtures"
)

func lit(v uint32) formula.Literal { return formula.NewLiteral(formula.VariableType(v)) }

func TestBuildRejectsInvariantConstraints(t *testing.T) {
	a := aig.New(2)
	a.AddLatch(aig.Latch{Lit: 2, Next: 2, Reset: 2})
	a.AddConstraint(2)

	_, err := Build(a, false)
	require.Error(t, err)
	var target *UnsupportedFeatureError
	assert.ErrorAs(t, err, &target)
}

func TestBuildInitialCubeSkipsUnconstrainedLatches(t *testing.T) {
	a := aig.New(1)
	a.AddLatch(aig.Latch{Lit: 2, Next: 2, Reset: 2}) // self-literal: unconstrained
	sys, err := Build(a, false)
	require.NoError(t, err)
	assert.True(t, sys.InitialCube.IsEmpty())
}

func TestBuildInitialCubeFixesResetLatches(t *testing.T) {
	a := testfixtures.MutexToggle()
	sys, err := Build(a, false)
	require.NoError(t, err)

	want := formula.NewCube([]formula.Literal{lit(1), lit(2).Not()})
	assert.True(t, sys.InitialCube.Equal(want))
}

func TestBuildUnsafetyClauseEmptyWhenNoBadLiterals(t *testing.T) {
	sys, err := Build(testfixtures.ThreeBitCounterNoBad(), false)
	require.NoError(t, err)
	assert.True(t, sys.UnsafetyClause.IsEmpty())
	assert.True(t, sys.SafetyPropertyCNF().IsEmpty(), "P trivially true has no clauses")
}

func TestBuildTransitionCNFHasLatchEquivalenceClauses(t *testing.T) {
	sys, err := Build(testfixtures.MutexToggle(), false)
	require.NoError(t, err)

	// L0' = L1 -> {!L0', L1}, {L0', !L1}
	primedL0 := formula.NewLiteral(1 + sys.MaxVar)
	assert.True(t, sys.TransitionCNF.Contains(formula.NewClause([]formula.Literal{primedL0.Not(), lit(2)})))
	assert.True(t, sys.TransitionCNF.Contains(formula.NewClause([]formula.Literal{primedL0, lit(2).Not()})))
}

func TestAddTagsToCubeShiftsVariablesAboveMaxVar(t *testing.T) {
	sys, err := Build(testfixtures.MutexToggle(), false)
	require.NoError(t, err)

	tagged := sys.AddTagsToCube(sys.InitialCube, 1)
	for _, l := range tagged.Literals() {
		assert.Greater(t, uint32(l.Var()), uint32(sys.MaxVar))
	}
}

func TestAddTagsToEmptyRelationStaysEmpty(t *testing.T) {
	sys, err := Build(testfixtures.MutexToggle(), false)
	require.NoError(t, err)
	empty := formula.NewCNF()
	tagged := sys.AddTagsToRelation(empty, 3)
	assert.True(t, tagged.IsEmpty())
}

func TestStateAndInputVarsPartitionCorrectly(t *testing.T) {
	sys, err := Build(testfixtures.RegisterEqualityChecker(), false)
	require.NoError(t, err)
	assert.Len(t, sys.StateVars, 2)
	assert.Len(t, sys.InputVars, 2)
}

func TestCompilingSameAIGTwiceProducesEqualArtifacts(t *testing.T) {
	a := testfixtures.ThreeLatchGuardFSM()
	s1, err := Build(a, false)
	require.NoError(t, err)
	s2, err := Build(a, false)
	require.NoError(t, err)

	assert.True(t, s1.InitialCube.Equal(s2.InitialCube))
	assert.True(t, s1.TransitionCNF.Equal(s2.TransitionCNF))
	assert.True(t, s1.StateToSafetyCNF.Equal(s2.StateToSafetyCNF))
	assert.True(t, s1.UnsafetyClause.Equal(s2.UnsafetyClause))
}

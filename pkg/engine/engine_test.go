package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirandreww/ic3pdr/internal/ic3log"
	"github.com/sirandreww/ic3pdr/internal/testfixtures"
	"github.com/sirandreww/ic3pdr/pkg/aig"
	"github.com/sirandreww/ic3pdr/pkg/fsts"
)

func newTestEngine(t *testing.T, a *aig.AIG, assumeOutputsBad bool, alg Algorithm) *Engine {
	t.Helper()
	sys, err := fsts.Build(a, assumeOutputsBad)
	require.NoError(t, err)
	opts := NewOptions(
		WithLogger(ic3log.Discard()),
		WithAlgorithm(alg),
		WithRand(rand.New(rand.NewSource(1))),
	)
	return New(sys, opts)
}

func TestSeedThreeBitCounterNoBad(t *testing.T) {
	for _, alg := range []Algorithm{IC3, PDR} {
		e := newTestEngine(t, testfixtures.ThreeBitCounterNoBad(), false, alg)
		res := e.Run()
		assert.True(t, res.IsProof, "algorithm %v", alg)
		assert.True(t, res.Invariant.IsEmpty(), "invariant should be trivially true")
	}
}

func TestSeedThreeBitCounterBadL2(t *testing.T) {
	for _, alg := range []Algorithm{IC3, PDR} {
		e := newTestEngine(t, testfixtures.ThreeBitCounterBadL2(), false, alg)
		res := e.Run()
		require.False(t, res.IsProof, "algorithm %v", alg)
		assert.Equal(t, 3, res.Depth)
	}
}

func TestSeedThreeBitCounterBadL1OrL2(t *testing.T) {
	for _, alg := range []Algorithm{IC3, PDR} {
		e := newTestEngine(t, testfixtures.ThreeBitCounterBadL1OrL2(), false, alg)
		res := e.Run()
		require.False(t, res.IsProof, "algorithm %v", alg)
		assert.Equal(t, 2, res.Depth)
	}
}

func TestSeedRegisterEqualityChecker(t *testing.T) {
	for _, alg := range []Algorithm{IC3, PDR} {
		e := newTestEngine(t, testfixtures.RegisterEqualityChecker(), false, alg)
		res := e.Run()
		require.False(t, res.IsProof, "algorithm %v", alg)
		assert.Equal(t, 1, res.Depth)
	}
}

func TestSeedMutexToggle(t *testing.T) {
	for _, alg := range []Algorithm{IC3, PDR} {
		e := newTestEngine(t, testfixtures.MutexToggle(), false, alg)
		res := e.Run()
		require.True(t, res.IsProof, "algorithm %v", alg)
		assert.Equal(t, 1, res.Invariant.Len(), "exactly one clause: !(L0 & L1)")
	}
}

func TestSeedThreeLatchGuardFSM(t *testing.T) {
	for _, alg := range []Algorithm{IC3, PDR} {
		e := newTestEngine(t, testfixtures.ThreeLatchGuardFSM(), false, alg)
		res := e.Run()
		require.False(t, res.IsProof, "algorithm %v", alg)
		assert.Equal(t, 5, res.Depth)
	}
}

func TestRunDoesNotPanicWhenInvariantVerifies(t *testing.T) {
	sys, err := fsts.Build(testfixtures.MutexToggle(), false)
	require.NoError(t, err)
	e := New(sys, NewOptions(WithLogger(ic3log.Discard()), WithRand(rand.New(rand.NewSource(1)))))

	assert.NotPanics(t, func() { e.Run() })
}

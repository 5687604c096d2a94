package apsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/matrix"
)

const ninf = matrix.NegInf

func TestNegativeLoopCheck_TwoCycleIsolatedVertex(t *testing.T) {
	t.Parallel()

	want := [][]int64{
		{ninf, ninf, inf},
		{ninf, ninf, inf},
		{inf, inf, 0},
	}
	for _, e := range engines {
		res, err := e.run(twoCycle(t))
		require.NoError(t, err)

		neg, err := apsp.NegativeLoopCheck(res.Dist)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1}, neg, e.name)
		requireRows(t, want, res.Dist)
	}
}

func TestNegativeLoopCheck_ReachThroughCycle(t *testing.T) {
	t.Parallel()

	// 0 → 1 ⇄ 2 (cycle weight -1) → 3; 4 → 0 only; 5 isolated; 3 → 5 missing.
	d0 := mustRows(t, [][]int64{
		{0, 5, inf, inf, inf, inf},
		{inf, 0, 1, inf, inf, inf},
		{inf, -2, 0, 4, inf, inf},
		{inf, inf, inf, 0, inf, inf},
		{3, inf, inf, inf, 0, inf},
		{inf, inf, inf, inf, inf, 0},
	})
	want := [][]int64{
		{0, ninf, ninf, ninf, inf, inf},
		{inf, ninf, ninf, ninf, inf, inf},
		{inf, ninf, ninf, ninf, inf, inf},
		{inf, inf, inf, 0, inf, inf},
		{3, ninf, ninf, ninf, 0, inf},
		{inf, inf, inf, inf, inf, 0},
	}
	for _, e := range engines {
		res, err := e.run(d0)
		require.NoError(t, err)
		neg, err := apsp.NegativeLoopCheck(res.Dist)
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, neg, e.name)
		requireRows(t, want, res.Dist)
	}
}

func TestNegativeLoopCheck_CycleFreeUnchanged(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(11))
	for round := 0; round < 30; round++ {
		res, err := apsp.Floyd(randomPotential(t, r, 6, 0.5))
		require.NoError(t, err)
		before := res.Dist.ToRows()

		neg, err := apsp.NegativeLoopCheck(res.Dist)
		require.NoError(t, err)
		require.Empty(t, neg)
		require.Equal(t, before, res.Dist.ToRows())
	}

	// The triangle is cycle-free too.
	res, err := apsp.Floyd(clrs(t))
	require.NoError(t, err)
	_, err = apsp.NegativeLoopCheck(res.Dist)
	require.NoError(t, err)
	requireRows(t, clrsDist, res.Dist)
}

func TestNegativeLoopCheck_Idempotent(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(5))
	for round := 0; round < 50; round++ {
		res, err := apsp.Dantzig(randomNoisy(t, r, 7, 0.35, -4, 10))
		require.NoError(t, err)

		_, err = apsp.NegativeLoopCheck(res.Dist)
		require.NoError(t, err)
		once := res.Dist.ToRows()

		_, err = apsp.NegativeLoopCheck(res.Dist)
		require.NoError(t, err)
		require.Equal(t, once, res.Dist.ToRows(), "round %d", round)
	}
}

func TestNegativeLoopCheck_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(9))
	for round := 0; round < 20; round++ {
		res, err := apsp.Floyd(randomNoisy(t, r, 6, 0.4, -5, 8))
		require.NoError(t, err)
		fast := res.Dist
		slow, ok := fast.Clone().(*matrix.Dense)
		require.True(t, ok)

		negFast, err := apsp.NegativeLoopCheck(fast)
		require.NoError(t, err)
		negSlow, err := apsp.NegativeLoopCheck(hide{slow})
		require.NoError(t, err)

		if len(negFast) == 0 {
			require.Empty(t, negSlow)
		} else {
			require.Equal(t, negFast, negSlow)
		}
		require.True(t, fast.Equal(slow), "round %d", round)
	}
}

// After correction, both engines agree even when negative cycles exist.
func TestNegativeLoopCheck_EnginesAgreeAfterCorrection(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(2024))
	for round := 0; round < 100; round++ {
		d0 := randomNoisy(t, r, 1+r.Intn(7), 0.4, -4, 10)

		f, err := apsp.Solve(d0, apsp.WithAlgorithm(apsp.AlgorithmFloyd))
		require.NoError(t, err)
		dz, err := apsp.Solve(d0, apsp.WithAlgorithm(apsp.AlgorithmDantzig))
		require.NoError(t, err)
		require.Equal(t, f.Dist.ToRows(), dz.Dist.ToRows(), "round %d\n%v", round, d0)
	}
}

func TestNegativeLoopCheck_Errors(t *testing.T) {
	t.Parallel()

	_, err := apsp.NegativeLoopCheck(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, _ := matrix.NewDense(3, 2)
	_, err = apsp.NegativeLoopCheck(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

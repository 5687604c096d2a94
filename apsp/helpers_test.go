// SPDX-License-Identifier: MIT
// Package apsp_test contains shared fixtures and generators.
//
// Purpose:
//   • Small hand-checked graphs (triangle, CLRS 5×5, two-cycle).
//   • Seeded random generators: potential-shifted graphs carry negative edges
//     but no negative cycle; "noisy" graphs usually contain negative cycles.

package apsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/matrix"
)

// inf is a short alias for the "no edge" sentinel in fixtures.
const inf = matrix.NoEdge

// hide masks *matrix.Dense so the generic Matrix code paths run.
type hide struct{ matrix.Matrix }

// mustRows builds a Dense from literal rows.
func mustRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// triangle: 0→1 (1), 1→2 (2), 0→2 (4). Shortest 0→2 is 3 via 1.
func triangle(t testing.TB) *matrix.Dense {
	return mustRows(t, [][]int64{
		{0, 1, 4},
		{inf, 0, 2},
		{inf, inf, 0},
	})
}

// clrs is the 5-vertex directed example with negative edges and no negative cycle.
func clrs(t testing.TB) *matrix.Dense {
	return mustRows(t, [][]int64{
		{0, 3, 8, inf, -4},
		{inf, 0, inf, 1, 7},
		{inf, 4, 0, inf, inf},
		{2, inf, -5, 0, inf},
		{inf, inf, inf, 6, 0},
	})
}

// clrsDist is the expected all-pairs distance matrix of clrs.
var clrsDist = [][]int64{
	{0, 1, -3, 2, -4},
	{3, 0, -4, 1, -1},
	{7, 4, 0, 5, 3},
	{2, -1, -5, 0, -2},
	{8, 5, 1, 6, 0},
}

// twoCycle: vertices {0,1} form the cycle 0→1→0 of weight -2; 2 is isolated.
func twoCycle(t testing.TB) *matrix.Dense {
	return mustRows(t, [][]int64{
		{0, -1, inf},
		{-1, 0, inf},
		{inf, inf, 0},
	})
}

// randomPotential builds an n-vertex graph whose edge weights are
// base(u,v) + pot[v] - pot[u] with base ≥ 1. Every cycle weighs Σ base > 0,
// so negative edges appear but negative cycles never do.
func randomPotential(t testing.TB, r *rand.Rand, n int, density float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewFilled(n, n, inf)
	require.NoError(t, err)

	pot := make([]int64, n)
	for i := range pot {
		pot[i] = int64(r.Intn(21) - 10)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				require.NoError(t, d.Set(i, j, 0))
				continue
			}
			if r.Float64() < density {
				require.NoError(t, d.Set(i, j, r.Int63n(10)+1+pot[j]-pot[i]))
			}
		}
	}

	return d
}

// randomNoisy builds an n-vertex graph with weights in [lo, hi]; negative
// cycles are likely when lo < 0.
func randomNoisy(t testing.TB, r *rand.Rand, n int, density float64, lo, hi int64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewFilled(n, n, inf)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				require.NoError(t, d.Set(i, j, 0))
				continue
			}
			if r.Float64() < density {
				require.NoError(t, d.Set(i, j, lo+r.Int63n(hi-lo+1)))
			}
		}
	}

	return d
}

// requireRows compares a Dense against literal rows cell by cell.
func requireRows(t *testing.T, want [][]int64, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, want, got.ToRows())
}

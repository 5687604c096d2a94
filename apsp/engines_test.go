package apsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/matrix"
)

// engines under test; both share the same contract.
var engines = []struct {
	name string
	algo apsp.Algorithm
	run  func(matrix.Matrix) (*apsp.Result, error)
}{
	{"Floyd", apsp.AlgorithmFloyd, apsp.Floyd},
	{"Dantzig", apsp.AlgorithmDantzig, apsp.Dantzig},
}

func TestEngines_Triangle(t *testing.T) {
	t.Parallel()

	for _, e := range engines {
		res, err := e.run(triangle(t))
		require.NoError(t, err, e.name)
		require.Equal(t, e.algo, res.Algorithm)

		d02, _ := res.Dist.At(0, 2)
		require.Equal(t, int64(3), d02, "%s: D[0][2]", e.name)
		p02, _ := res.Pred.At(0, 2)
		require.Equal(t, int64(1), p02, "%s: P[0][2]", e.name)

		requireRows(t, [][]int64{{0, 1, 3}, {inf, 0, 2}, {inf, inf, 0}}, res.Dist)
		require.Equal(t, 1, res.Relaxations, e.name)
	}
}

func TestEngines_CLRS(t *testing.T) {
	t.Parallel()

	for _, e := range engines {
		res, err := e.run(clrs(t))
		require.NoError(t, err, e.name)
		requireRows(t, clrsDist, res.Dist)
	}
}

func TestEngines_InputUntouched(t *testing.T) {
	t.Parallel()

	for _, e := range engines {
		d0 := clrs(t)
		before := d0.ToRows()
		res, err := e.run(d0)
		require.NoError(t, err)
		require.Equal(t, before, d0.ToRows(), "%s must not mutate its input", e.name)

		res.Dist.RawData()[0] = 42
		require.Equal(t, before, d0.ToRows(), "%s result must not alias its input", e.name)
	}
}

func TestEngines_FallbackInput(t *testing.T) {
	t.Parallel()

	for _, e := range engines {
		fast, err := e.run(clrs(t))
		require.NoError(t, err)
		slow, err := e.run(hide{clrs(t)})
		require.NoError(t, err)
		require.True(t, fast.Dist.Equal(slow.Dist), e.name)
		require.True(t, fast.Pred.Equal(slow.Pred), e.name)
	}
}

func TestEngines_SingleVertex(t *testing.T) {
	t.Parallel()

	for _, e := range engines {
		res, err := e.run(mustRows(t, [][]int64{{0}}))
		require.NoError(t, err)
		requireRows(t, [][]int64{{0}}, res.Dist)
		requireRows(t, [][]int64{{-1}}, res.Pred)
	}
}

func TestEngines_Unreachable(t *testing.T) {
	t.Parallel()

	// {0,1,2} undirected component, 3→4 directed, 5 isolated.
	d0 := mustRows(t, [][]int64{
		{0, 2, 10, inf, inf, inf},
		{2, 0, 3, inf, inf, inf},
		{10, 3, 0, inf, inf, inf},
		{inf, inf, inf, 0, 7, inf},
		{inf, inf, inf, inf, 0, inf},
		{inf, inf, inf, inf, inf, 0},
	})
	want := [][]int64{
		{0, 2, 5, inf, inf, inf},
		{2, 0, 3, inf, inf, inf},
		{5, 3, 0, inf, inf, inf},
		{inf, inf, inf, 0, 7, inf},
		{inf, inf, inf, inf, 0, inf},
		{inf, inf, inf, inf, inf, 0},
	}
	for _, e := range engines {
		res, err := e.run(d0)
		require.NoError(t, err)
		requireRows(t, want, res.Dist)
	}
}

func TestEngines_Errors(t *testing.T) {
	t.Parallel()

	rect, _ := matrix.NewDense(2, 3)
	var nilDense *matrix.Dense
	for _, e := range engines {
		_, err := e.run(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, e.name)

		_, err = e.run(nilDense)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, e.name)

		_, err = e.run(rect)
		require.ErrorIs(t, err, matrix.ErrNonSquare, e.name)
	}
}

// After one full run no triple can be relaxed any further.
func TestEngines_FixedPoint(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		d0 := randomPotential(t, r, 7, 0.5)
		for _, e := range engines {
			res, err := e.run(d0)
			require.NoError(t, err)
			n := res.Order()
			for k := 0; k < n; k++ {
				for i := 0; i < n; i++ {
					for j := 0; j < n; j++ {
						changed, err := apsp.RelaxPath(i, k, j, res.Dist, res.Pred)
						require.NoError(t, err)
						require.False(t, changed, "%s round %d: (%d,%d,%d) still relaxes", e.name, round, i, k, j)
					}
				}
			}
		}
	}
}

// On cycle-free inputs both engines agree on every distance.
func TestEngines_Equivalence_NoNegativeCycles(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(42))
	for round := 0; round < 100; round++ {
		n := 1 + r.Intn(9)
		d0 := randomPotential(t, r, n, 0.1+0.8*r.Float64())

		f, err := apsp.Floyd(d0)
		require.NoError(t, err)
		dz, err := apsp.Dantzig(d0)
		require.NoError(t, err)
		require.Equal(t, f.Dist.ToRows(), dz.Dist.ToRows(), "round %d\n%v", round, d0)

		// Cycle-free: the diagonal never becomes negative.
		for v := 0; v < n; v++ {
			dv, _ := f.Dist.At(v, v)
			require.Zero(t, dv)
		}
	}
}

// Monotonic non-increase: no engine output exceeds the direct edge.
func TestEngines_NeverExceedDirectEdge(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(3))
	d0 := randomNoisy(t, r, 8, 0.4, -3, 9)
	for _, e := range engines {
		res, err := e.run(d0)
		require.NoError(t, err)
		for i, w := range d0.RawData() {
			require.LessOrEqual(t, res.Dist.RawData()[i], w, "%s cell %d", e.name, i)
		}
	}
}

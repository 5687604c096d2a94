// Package apsp computes all-pairs shortest paths on dense integer distance
// matrices that may contain negative edges and negative-weight cycles.
//
// Overview:
//
//   - Floyd runs the classic k → i → j relaxation (intermediate vertex outermost).
//   - Dantzig grows the solved submatrix one bordering row/column at a time.
//   - Both start from matrix.CopyOf(d0) and matrix.PrepareRenewMatrix(n), relax
//     through the shared RelaxPath primitive (saturating, strict <), and return
//     the raw distance matrix plus a renewal (predecessor) matrix.
//   - NegativeLoopCheck turns every distance routed through a negative cycle
//     into matrix.NegInf; on cycle-free input it changes nothing.
//   - Solve composes an engine with the optional check via functional options.
//
// Cell conventions:
//
//   - matrix.NoEdge (math.MaxInt64): no edge / unreachable.
//   - matrix.NegInf (math.MinInt64): unbounded below (after the check).
//   - matrix.NoPredecessor (-1): the direct edge is still optimal.
//
// Path reconstruction:
//
//	route(i,j) = [i, j]                        if Pred[i][j] == NoPredecessor
//	route(i,j) = route(i,k) ++ route(k,j)[1:]  if Pred[i][j] == k
//
// See ReconstructPath and Result.Path.
//
// Example usage:
//
//	d0, _ := matrix.FromRows([][]int64{
//	    {0, 1, 4},
//	    {matrix.NoEdge, 0, 2},
//	    {matrix.NoEdge, matrix.NoEdge, 0},
//	})
//	res, err := apsp.Solve(d0, apsp.WithAlgorithm(apsp.AlgorithmDantzig))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, _ := res.Path(0, 2) // [0 1 2], cost 3
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrNonSquare:
//     invalid argument; no partial result is returned.
//   - matrix.ErrAllocation: the n×n buffers could not be obtained.
//   - ErrNoPath, ErrNegativeCycle, ErrPathLoop: path queries only.
//
// Thread safety:
//
//   - Every call is synchronous and owns its output. The input matrix must not
//     be mutated concurrently while an engine copies it.
package apsp

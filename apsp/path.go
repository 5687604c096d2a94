// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Expand a renewal matrix into an explicit vertex route.
//
// Contract:
//   - p[i][j] == NoPredecessor → the direct edge (i,j) completes the route.
//   - p[i][j] == k             → route(i,k) followed by route(k,j).
//   - Repeated vertices of the expanded walk close zero-cost loops, which are
//     erased; a negative loop means the result was not cycle-corrected.

package apsp

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const opReconstructPath = "ReconstructPath"

// segment is a pending (from,to) pair on the expansion stack. A closing
// segment pops (from,to) off the set of segments under expansion.
type segment struct {
	from, to int
	closing  bool
}

// ReconstructPath returns the vertices of a shortest from → to route,
// both endpoints included.
//
// The renewal chain is expanded iteratively into a walk. Zero-cost detours
// (a walk may revisit a vertex when the graph has zero-weight cycles) are
// erased as the walk is streamed, so for from != to the route is a simple
// path whose edge weights sum to d[from][to].
//
// For from == to:
//   - d[i][i] == 0 yields [i];
//   - d[i][i] > 0 yields the cheapest closed walk: [i, i] for an unimproved
//     self-loop, otherwise the expanded cycle.
//
// Errors:
//   - matrix.ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch for malformed inputs.
//   - matrix.ErrOutOfRange for a bad vertex index.
//   - ErrNoPath if d[from][to] == NoEdge.
//   - ErrNegativeCycle if d[from][to] == NegInf, from == to with a negative
//     diagonal, or the walk closes a negative loop (uncorrected results only).
//   - ErrPathLoop if a segment reappears inside its own expansion, i.e. the
//     chain does not terminate (uncorrected results only).
//
// Complexity: O(L) time where L is the length of the expanded walk; O(n)
// space for the route plus the expansion depth.
func ReconstructPath(d, p *matrix.Dense, from, to int) ([]int, error) {
	if err := matrix.ValidateSameOrder(d, p); err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstructPath, err)
	}
	n := d.Rows()
	if err := matrix.ValidateIndex(from, n); err != nil {
		return nil, fmt.Errorf("%s: from: %w", opReconstructPath, err)
	}
	if err := matrix.ValidateIndex(to, n); err != nil {
		return nil, fmt.Errorf("%s: to: %w", opReconstructPath, err)
	}

	dist := d.RawData()
	pred := p.RawData()
	w := dist[from*n+to]
	switch {
	case w == matrix.NoEdge:
		return nil, fmt.Errorf("%s: %d→%d: %w", opReconstructPath, from, to, ErrNoPath)
	case w == matrix.NegInf, from == to && w < 0:
		return nil, fmt.Errorf("%s: %d→%d: %w", opReconstructPath, from, to, ErrNegativeCycle)
	}
	closed := from == to
	if closed && w == 0 {
		return []int{from}, nil
	}
	if closed && pred[from*n+to] == matrix.NoPredecessor {
		return []int{from, to}, nil // positive self-loop is the whole cycle
	}

	var (
		route = []int{from}
		cost  = []int64{0} // cost[x] = weight of route[:x+1]
		pos   = make(map[int]int, n)
		open  = make(map[segment]struct{})
		stack = []segment{{from: from, to: to}}
		s     segment
		k     int64
		last  int64
	)
	if !closed {
		pos[from] = 0 // a closed walk must be allowed to return to its start
	}
	for len(stack) > 0 {
		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.closing {
			delete(open, segment{from: s.from, to: s.to})
			continue
		}

		k = pred[s.from*n+s.to]
		if k != matrix.NoPredecessor {
			if _, dup := open[s]; dup {
				return nil, fmt.Errorf("%s: %d→%d: %w", opReconstructPath, from, to, ErrPathLoop)
			}
			open[s] = struct{}{}
			// Left segment must be expanded first, so push it last.
			stack = append(stack,
				segment{from: s.from, to: s.to, closing: true},
				segment{from: int(k), to: s.to},
				segment{from: s.from, to: int(k)},
			)
			continue
		}

		// Direct edge s.from → s.to; s.from is the current end of the route.
		last = matrix.Sum(cost[len(cost)-1], dist[s.from*n+s.to])
		if at, seen := pos[s.to]; seen {
			if last < cost[at] {
				return nil, fmt.Errorf("%s: %d→%d: %w", opReconstructPath, from, to, ErrNegativeCycle)
			}
			for _, v := range route[at+1:] {
				delete(pos, v)
			}
			route, cost = route[:at+1], cost[:at+1] // erase the zero-cost detour
			continue
		}
		pos[s.to] = len(route)
		route = append(route, s.to)
		cost = append(cost, last)
	}

	return route, nil
}

// PathCost sums the direct edge weights of route in d0 with saturation.
// Useful to check a reconstructed route against the reported distance.
//
// Errors: matrix.ErrOutOfRange for an index outside d0, ErrNoPath when a hop
// has no direct edge.
func PathCost(d0 matrix.Matrix, route []int) (int64, error) {
	if err := matrix.ValidateSquare(d0); err != nil {
		return 0, fmt.Errorf("PathCost: %w", err)
	}

	var (
		total int64
		w     int64
		err   error
	)
	for h := 1; h < len(route); h++ {
		if w, err = d0.At(route[h-1], route[h]); err != nil {
			return 0, fmt.Errorf("PathCost: hop %d: %w", h, err)
		}
		if w == matrix.NoEdge {
			return 0, fmt.Errorf("PathCost: hop %d→%d: %w", route[h-1], route[h], ErrNoPath)
		}
		total = matrix.Sum(total, w)
	}

	return total, nil
}

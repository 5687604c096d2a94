// SPDX-License-Identifier: MIT

// Package matrix: domain types and reserved cell values.
// This file contains ONLY the weight sentinels and the public Matrix
// interface. Errors live in errors.go, storage in dense.go.
package matrix

import "math"

// Reserved cell values. They sit at the extremes of int64 so that no
// legitimate finite weight of a bounded graph can collide with them.
const (
	// NoEdge marks the absence of a direct edge (and, after an engine run,
	// "no path"). A sum that saturates to math.MaxInt64 collapses into
	// NoEdge on purpose: the route is treated as unreachable.
	NoEdge int64 = math.MaxInt64

	// NegInf marks a distance that is unbounded below because the route
	// can be looped through a negative-weight cycle.
	NegInf int64 = math.MinInt64

	// NoPredecessor marks a renewal cell whose direct edge is still optimal
	// (or whose pair has no path at all). Vertex indices are never negative.
	NoPredecessor int64 = -1
)

// Matrix is a two-dimensional mutable array of int64 weights.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v int64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// IsFinite reports whether w is an ordinary weight, i.e. neither NoEdge
// nor NegInf.
func IsFinite(w int64) bool {
	return w != NoEdge && w != NegInf
}

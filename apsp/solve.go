// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Compose an engine with the optional negative-cycle correction.
//     Solve(d0)                                 ≡ engine + NegativeLoopCheck
//     Solve(d0, WithNegativeLoopCheck(false))   ≡ raw engine

package apsp

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

const opSolve = "Solve"

// engine is the common shape of Floyd and Dantzig.
type engine func(d0 matrix.Matrix) (*Result, error)

// engineFor resolves the engine of an Algorithm.
func engineFor(a Algorithm) (engine, error) {
	switch a {
	case AlgorithmFloyd:
		return Floyd, nil
	case AlgorithmDantzig:
		return Dantzig, nil
	default:
		return nil, fmt.Errorf("%v: %w", a, ErrUnknownAlgorithm)
	}
}

// Solve computes all-pairs shortest paths of d0.
//
// Defaults (see DefaultOptions): Floyd engine, negative-cycle check on.
//
// Returns:
//   - *Result with newly allocated Dist and Pred (d0 is left untouched).
//     With the check on, Result.Checked is true and NegativeVertices lists the
//     vertices with a negative diagonal in the raw result.
//
// Errors: everything Floyd/Dantzig return, plus ErrUnknownAlgorithm.
// A negative cycle is never an error.
//
// Complexity: Time O(n³), Space O(n²).
func Solve(d0 matrix.Matrix, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	run, err := engineFor(cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	res, err := run(d0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if !cfg.NegativeLoopCheck {
		return res, nil
	}

	neg, err := NegativeLoopCheck(res.Dist)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	res.Checked = true
	res.NegativeVertices = neg
	if res.NegativeVertices == nil {
		res.NegativeVertices = []int{}
	}

	return res, nil
}

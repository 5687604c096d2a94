// Package apsp defines core types and configuration options for the
// all-pairs shortest-path engines.
//
// Options:
//
//	– Algorithm:          which dynamic program computes the raw result (Floyd or Dantzig).
//	– NegativeLoopCheck:  whether Solve post-processes the raw distances with
//	                      NegativeLoopCheck (default true).
//
// Errors (sentinel):
//
//	– ErrUnknownAlgorithm if an Algorithm value or name is not recognised.
//	– ErrNoPath           if a path is requested between unconnected vertices.
//	– ErrNegativeCycle    if a path is requested for a pair whose distance is NegInf.
//	– ErrPathLoop         if the renewal chain of a pair does not terminate.
//
// Argument and allocation errors come from package matrix (ErrNilMatrix,
// ErrInvalidDimensions, ErrNonSquare, ErrAllocation).
package apsp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/apsp/matrix"
)

// Sentinel errors returned by the apsp package.
var (
	// ErrUnknownAlgorithm indicates an Algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("apsp: unknown algorithm")

	// ErrNoPath indicates that the destination is unreachable from the source.
	ErrNoPath = errors.New("apsp: no path between vertices")

	// ErrNegativeCycle indicates that the pair's distance is unbounded below,
	// so no finite shortest path exists.
	ErrNegativeCycle = errors.New("apsp: path runs through a negative cycle")

	// ErrPathLoop indicates that expanding the renewal matrix did not terminate:
	// a segment reappeared inside its own expansion (uncorrected negative cycles).
	ErrPathLoop = errors.New("apsp: renewal chain does not terminate")
)

// Algorithm selects the dynamic program used by Solve.
type Algorithm int

const (
	// AlgorithmFloyd runs the Floyd–Warshall triple loop (intermediate vertex outermost).
	AlgorithmFloyd Algorithm = iota

	// AlgorithmDantzig grows the solved vertex set one vertex at a time.
	AlgorithmDantzig
)

// String returns the lower-case name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmFloyd:
		return "floyd"
	case AlgorithmDantzig:
		return "dantzig"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a is a supported algorithm.
func (a Algorithm) Valid() bool {
	return a == AlgorithmFloyd || a == AlgorithmDantzig
}

// ParseAlgorithm maps "floyd" / "dantzig" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "floyd", "floyd-warshall", "fw":
		return AlgorithmFloyd, nil
	case "dantzig":
		return AlgorithmDantzig, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
	}
}

// Options configures Solve.
//
// Algorithm          – engine computing the raw result (default AlgorithmFloyd).
// NegativeLoopCheck  – run NegativeLoopCheck on the raw distances (default true).
type Options struct {
	Algorithm         Algorithm
	NegativeLoopCheck bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithAlgorithm selects the engine. Panics on an unsupported value, since
// that is a programming error rather than a data error.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if !a.Valid() {
			panic(ErrUnknownAlgorithm.Error())
		}
		o.Algorithm = a
	}
}

// WithNegativeLoopCheck toggles the negative-cycle post-processing.
// WithNegativeLoopCheck(false) reproduces the "without negative loop check"
// entry points: the raw engine result is returned as is.
func WithNegativeLoopCheck(enabled bool) Option {
	return func(o *Options) {
		o.NegativeLoopCheck = enabled
	}
}

// DefaultOptions returns Floyd with the negative-cycle check enabled.
func DefaultOptions() Options {
	return Options{
		Algorithm:         AlgorithmFloyd,
		NegativeLoopCheck: true,
	}
}

// Result is the outcome of one engine invocation. Ownership of both matrices
// transfers to the caller.
type Result struct {
	// Dist holds shortest distances; NoEdge for unreachable pairs and, once
	// checked, NegInf for pairs routed through a negative cycle.
	Dist *matrix.Dense

	// Pred is the renewal matrix: the last intermediate vertex that improved
	// Dist[i][j], or matrix.NoPredecessor if the direct edge is still optimal.
	Pred *matrix.Dense

	// Algorithm that produced the result.
	Algorithm Algorithm

	// Relaxations counts the strictly improving relaxation steps.
	Relaxations int

	// Checked reports whether NegativeLoopCheck ran over Dist.
	Checked bool

	// NegativeVertices lists (ascending) the vertices found with a negative
	// diagonal by NegativeLoopCheck. Nil when Checked is false.
	NegativeVertices []int
}

// Order returns the number of vertices.
func (r *Result) Order() int { return r.Dist.Rows() }

// HasNegativeCycle reports whether the check found any negative cycle.
func (r *Result) HasNegativeCycle() bool { return len(r.NegativeVertices) > 0 }

// Distance returns Dist[from][to].
func (r *Result) Distance(from, to int) (int64, error) {
	return r.Dist.At(from, to)
}

// Path reconstructs the vertex sequence from → to. See ReconstructPath.
func (r *Result) Path(from, to int) ([]int, error) {
	return ReconstructPath(r.Dist, r.Pred, from, to)
}

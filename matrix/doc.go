// Package matrix provides the dense int64 container behind the apsp engines.
//
// The matrix package provides:
//
//   - Dense: a row-major n×m buffer with explicit stride and bounds-checked
//     At/Set, so ownership is a single value instead of a matrix of pointers.
//   - Reserved cell values: NoEdge (math.MaxInt64) for a missing edge,
//     NegInf (math.MinInt64) for a distance unbounded below, and
//     NoPredecessor (-1) for an untouched renewal cell.
//   - Sum: saturating int64 addition used by every relaxation step.
//   - CopyOf / PrepareRenewMatrix: the allocation plumbing both engines start from.
//   - ToGonum / FromGonum: interop with gonum.org/v1/gonum/mat.
//
// Errors are package-level sentinels (see errors.go) wrapped with call-site
// context; match them with errors.Is.
//
// Matrices are not safe for concurrent mutation; synchronize externally.
package matrix

// Package distance provides the Euclidean distance used by the clustering
// loop.
//
// Distances are computed with gonum's floats package. The unchecked
// functions panic on length mismatch, the same as gonum; use Checked when
// the operands come from callers.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	d, err := distance.Checked(a, b)
package distance

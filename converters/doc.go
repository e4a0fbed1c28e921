// Package converters provides two-way adapters between matrix.Dense and
// gonum.org/v1/gonum/mat:
//   - ToGonum copies any matrix.Matrix into a *mat.Dense,
//   - FromGonum copies any mat.Matrix into an immutable *matrix.Dense.
//
// Both directions copy; neither side ever aliases the other's storage, so
// the immutability guarantee of matrix.Dense survives the round trip.
// Shapes are validated on entry with the matrix package sentinels.
package converters

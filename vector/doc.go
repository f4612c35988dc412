// Package vector provides a fixed-dimension numeric Vector with the usual
// linear-algebra operations and the utilities built around it:
//   - Vector[T] over any integer or floating-point element type
//   - Add, Sub, Neg, Scale/Mul, Dot, Cross (2D/3D), Magnitude, Normalize,
//     Project and Angle, with typed errors for mismatched operands
//   - Debug and simplified text forms selected per call
//   - BLOB encoding tagged with the element kind
//   - Store interface and SQLiteStore for named vectors
//
// Vectors are mutable through Set and Convert and are not safe for
// concurrent mutation.
package vector

// Package interleave computes z-order (Morton) indexes by interleaving the
// bits of several dimensions round-robin.
//
// # Algorithm
//
// Dimensions are taken in input order; position 0 is the most significant
// dimension. Round k appends bit k of every dimension whose width exceeds k,
// so the first round takes each dimension's most significant bit:
//
//	x = 0011, y = 1111
//	round 0: x0 y0 = 0 1
//	round 1: x1 y1 = 0 1
//	round 2: x2 y2 = 1 1
//	round 3: x3 y3 = 1 1
//	z = 01011111
//
// A dimension that runs out of bits simply stops contributing; no padding is
// ever emitted. The output length is always the sum of the input widths.
//
// # Entry Points
//
//   - Interleave: a slice of dimension.Dimension values.
//   - Slice / Seq: a runtime-length collection of one concrete dimension type.
//   - Tuple1 .. Tuple8: a fixed number of dimensions of possibly different
//     concrete types. There is no TupleN beyond MaxTupleArity; use Slice or
//     Interleave for more dimensions.
//
// Every entry point runs the same algorithm.
//
// # Ordering
//
// For inputs with the same arity and the same width at each position the
// z-index is a fixed permutation of the concatenated bits, so comparing two
// z-indexes is exact. When widths or arities differ the comparison is only a
// locality heuristic.
//
// # Errors
//
// When a dimension's Width or BitAt fails the whole call fails with an
// *AccessError matching ErrAccess, and no z-index is returned. The package
// never retries.
//
// # Thread Safety
//
// Calls share no mutable state and may run concurrently, provided no
// dimension is mutated while a call reads it.
package interleave

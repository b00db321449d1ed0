// Package dimension defines the capability a value needs to take part in a
// z-order index, plus built-in dimensions for common Go types.
//
// A dimension is an ordered, fixed-width bit sequence. Bit 0 is the most
// significant bit, so reading bits 0..Width()-1 in order reproduces the
// value from its top bit down:
//
//	d := dimension.Uint(uint8(0b1000_0101))
//	// BitAt(0) == true, BitAt(1..4) == false, BitAt(5) == true, ...
//
// # Built-in Dimensions
//
//   - Uint / Int: any Go integer type, width = size of the type in bits.
//     Signed values have their sign bit flipped so bit order equals numeric order.
//   - Float64 / Float32: IEEE-754 values mapped to an order-preserving bit pattern.
//   - Uint128: a 128-bit unsigned value split into high and low halves.
//   - UintN: the low N bits of a uint64, for coordinates narrower than a Go type.
//   - Bits: raw MSB-first bytes with an explicit bit width.
//   - Facet: a categorical string hashed to 64 bits. Equality survives, order does not.
//   - Empty: a zero-width dimension.
//   - Func: an adapter for dynamically backed, fallible dimensions.
//
// # Errors
//
// Width and BitAt return errors so that dimensions backed by external state
// can report that the state became unreadable. The built-in value types
// never fail for in-range bit indices.
//
// # Thread Safety
//
// The built-in value types are immutable and safe for concurrent use. Bits
// references the caller's byte slice, which must not be mutated while an
// index is being built from it.
package dimension

package dimension

import "math"

// Float64Value is a 64-bit floating point dimension.
//
// The IEEE-754 bits are transformed so that lexicographic bit order equals
// numeric order: negative values have every bit inverted, non-negative
// values have only the sign bit set. -0 sorts immediately below +0 and NaNs
// sort by their bit pattern at the extremes.
type Float64Value struct {
	bits uint64
	v    float64
}

var _ Dimension = Float64Value{}

// Float64 returns an order-preserving dimension over v.
func Float64(v float64) Float64Value {
	return Float64Value{bits: orderedFloatBits(math.Float64bits(v), 64), v: v}
}

// Value returns the wrapped float.
func (f Float64Value) Value() float64 { return f.v }

func (Float64Value) Width() (uint, error) { return 64, nil }

func (f Float64Value) BitAt(i uint) (bool, error) {
	if i >= 64 {
		return false, outOfRange(i, 64)
	}

	return (f.bits>>(63-i))&1 == 1, nil
}

// Float32Value is the 32-bit counterpart of Float64Value.
type Float32Value struct {
	bits uint64
	v    float32
}

var _ Dimension = Float32Value{}

// Float32 returns an order-preserving dimension over v.
func Float32(v float32) Float32Value {
	return Float32Value{bits: orderedFloatBits(uint64(math.Float32bits(v)), 32), v: v}
}

// Value returns the wrapped float.
func (f Float32Value) Value() float32 { return f.v }

func (Float32Value) Width() (uint, error) { return 32, nil }

func (f Float32Value) BitAt(i uint) (bool, error) {
	if i >= 32 {
		return false, outOfRange(i, 32)
	}

	return (f.bits>>(31-i))&1 == 1, nil
}

func orderedFloatBits(raw uint64, width uint) uint64 {
	sign := uint64(1) << (width - 1)
	mask := sign | (sign - 1)
	if raw&sign != 0 {
		return ^raw & mask
	}

	return raw | sign
}

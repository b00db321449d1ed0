package dimension

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// UintValue is an unsigned integer dimension. Its width is the size of T in bits.
type UintValue[T constraints.Unsigned] struct {
	v T
}

// Uint returns a dimension over the bits of v.
func Uint[T constraints.Unsigned](v T) UintValue[T] {
	return UintValue[T]{v: v}
}

// Value returns the wrapped integer.
func (u UintValue[T]) Value() T { return u.v }

func (u UintValue[T]) Width() (uint, error) {
	return uint(unsafe.Sizeof(u.v)) * 8, nil
}

func (u UintValue[T]) BitAt(i uint) (bool, error) {
	width := uint(unsafe.Sizeof(u.v)) * 8
	if i >= width {
		return false, outOfRange(i, width)
	}

	return (uint64(u.v)>>(width-1-i))&1 == 1, nil
}

// IntValue is a signed integer dimension. Its width is the size of T in bits.
//
// The sign bit is inverted so that the bit sequence of a smaller number
// compares lexicographically below that of a larger one: math.MinInt8 reads
// as 0000_0000 and math.MaxInt8 as 1111_1111.
type IntValue[T constraints.Signed] struct {
	v T
}

// Int returns an order-preserving dimension over the bits of v.
func Int[T constraints.Signed](v T) IntValue[T] {
	return IntValue[T]{v: v}
}

// Value returns the wrapped integer.
func (s IntValue[T]) Value() T { return s.v }

func (s IntValue[T]) Width() (uint, error) {
	return uint(unsafe.Sizeof(s.v)) * 8, nil
}

func (s IntValue[T]) BitAt(i uint) (bool, error) {
	width := uint(unsafe.Sizeof(s.v)) * 8
	if i >= width {
		return false, outOfRange(i, width)
	}

	bit := (uint64(s.v)>>(width-1-i))&1 == 1 //nolint:gosec // two's complement bits are wanted here
	if i == 0 {
		bit = !bit
	}

	return bit, nil
}

// Uint128 is a 128-bit unsigned dimension.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

var _ Dimension = Uint128{}

func (Uint128) Width() (uint, error) { return 128, nil }

func (u Uint128) BitAt(i uint) (bool, error) {
	switch {
	case i < 64:
		return (u.Hi>>(63-i))&1 == 1, nil
	case i < 128:
		return (u.Lo>>(127-i))&1 == 1, nil
	default:
		return false, outOfRange(i, 128)
	}
}

// UintN is an unsigned dimension of an arbitrary width up to 64 bits.
//
// It is the usual choice for coordinates quantized to fewer bits than a Go
// integer type, e.g. a 21-bit grid cell.
type UintN struct {
	v     uint64
	width uint
}

var _ Dimension = UintN{}

// NewUintN returns a width-bit dimension over v.
//
// It returns ErrWidthOverflow if width > 64 and ErrValueOverflow if v needs
// more than width bits.
func NewUintN(v uint64, width uint) (UintN, error) {
	if width > 64 {
		return UintN{}, fmt.Errorf("%w: %d > 64", ErrWidthOverflow, width)
	}
	if width < 64 && v>>width != 0 {
		return UintN{}, fmt.Errorf("%w: %#x in %d bits", ErrValueOverflow, v, width)
	}

	return UintN{v: v, width: width}, nil
}

// MustUintN is like NewUintN but panics on error.
func MustUintN(v uint64, width uint) UintN {
	u, err := NewUintN(v, width)
	if err != nil {
		panic(err)
	}

	return u
}

// Value returns the wrapped integer.
func (u UintN) Value() uint64 { return u.v }

func (u UintN) Width() (uint, error) { return u.width, nil }

func (u UintN) BitAt(i uint) (bool, error) {
	if i >= u.width {
		return false, outOfRange(i, u.width)
	}

	return (u.v>>(u.width-1-i))&1 == 1, nil
}

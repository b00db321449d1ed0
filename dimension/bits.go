package dimension

import "fmt"

// Bits is a dimension over raw bytes, most significant bit of data[0] first.
//
// Only the first width bits are part of the dimension; trailing bits of the
// last byte are ignored.
type Bits struct {
	data  []byte
	width uint
}

var _ Dimension = Bits{}

// NewBits returns a width-bit dimension over data.
//
// The slice is referenced, not copied. It returns ErrWidthOverflow if data
// holds fewer than width bits.
func NewBits(data []byte, width uint) (Bits, error) {
	if width > uint(len(data))*8 {
		return Bits{}, fmt.Errorf("%w: %d bits from %d bytes", ErrWidthOverflow, width, len(data))
	}

	return Bits{data: data, width: width}, nil
}

// BytesOf returns a dimension over every bit of data.
func BytesOf(data []byte) Bits {
	return Bits{data: data, width: uint(len(data)) * 8}
}

func (b Bits) Width() (uint, error) { return b.width, nil }

func (b Bits) BitAt(i uint) (bool, error) {
	if i >= b.width {
		return false, outOfRange(i, b.width)
	}

	return (b.data[i/8]>>(7-i%8))&1 == 1, nil
}

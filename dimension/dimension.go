package dimension

import (
	"errors"
	"fmt"
)

var (
	// ErrBitOutOfRange is returned by BitAt for an index >= Width().
	ErrBitOutOfRange = errors.New("dimension: bit index out of range")
	// ErrWidthOverflow is returned when a requested width exceeds the backing storage.
	ErrWidthOverflow = errors.New("dimension: width exceeds backing storage")
	// ErrValueOverflow is returned when a value does not fit in the requested width.
	ErrValueOverflow = errors.New("dimension: value does not fit in width")
	// ErrNotReadable is returned by Func when one of its accessors is missing.
	ErrNotReadable = errors.New("dimension: not readable")
)

// Dimension is a readable, ordered bit sequence of known width.
//
// Implementations must return consistent results across repeated calls while
// an index is being built from them. BitAt is only called with
// 0 <= i < Width().
type Dimension interface {
	// Width returns the number of bits in the dimension.
	Width() (uint, error)
	// BitAt returns bit i, where bit 0 is the most significant.
	BitAt(i uint) (bool, error)
}

func outOfRange(i, width uint) error {
	return fmt.Errorf("%w: bit %d, width %d", ErrBitOutOfRange, i, width)
}

// Empty is a zero-width dimension. It contributes no bits to an index.
type Empty struct{}

var _ Dimension = Empty{}

func (Empty) Width() (uint, error) { return 0, nil }

func (Empty) BitAt(i uint) (bool, error) { return false, outOfRange(i, 0) }

// Func adapts a pair of functions to the Dimension interface.
//
// It is meant for dimensions whose bits live outside the process or behind a
// lock, where reading can fail. Errors returned by WidthFn or BitFn are passed
// through unchanged.
type Func struct {
	WidthFn func() (uint, error)
	BitFn   func(i uint) (bool, error)
}

var _ Dimension = Func{}

// Width calls WidthFn.
func (f Func) Width() (uint, error) {
	if f.WidthFn == nil {
		return 0, fmt.Errorf("%w: nil width function", ErrNotReadable)
	}

	return f.WidthFn()
}

// BitAt calls BitFn.
func (f Func) BitAt(i uint) (bool, error) {
	if f.BitFn == nil {
		return false, fmt.Errorf("%w: nil bit function", ErrNotReadable)
	}

	return f.BitFn(i)
}

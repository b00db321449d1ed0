package interleave

import (
	"errors"
	"fmt"
)

// ErrAccess matches every *AccessError under errors.Is.
var ErrAccess = errors.New("interleave: dimension access failed")

// Access operations reported in AccessError.Op.
const (
	OpWidth = "width"
	OpBit   = "bit"
)

// AccessError reports a failed read from a dimension.
//
// The underlying error returned by the dimension is available via errors.Unwrap.
type AccessError struct {
	// Dimension is the failing dimension's position in the input order.
	Dimension int
	// Op is OpWidth or OpBit.
	Op string
	// Bit is the bit index being read when Op is OpBit.
	Bit uint
	// Err is the error returned by the dimension.
	Err error
}

func (e *AccessError) Error() string {
	if e.Op == OpBit {
		return fmt.Sprintf("interleave: dimension %d: read bit %d: %v", e.Dimension, e.Bit, e.Err)
	}

	return fmt.Sprintf("interleave: dimension %d: read %s: %v", e.Dimension, e.Op, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// Is reports whether target is ErrAccess.
func (e *AccessError) Is(target error) bool {
	return target == ErrAccess
}

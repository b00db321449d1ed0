// Package zdex computes z-order (Morton) indexes: it interleaves the bits of
// several dimensions into one bit sequence so that a one-dimensional range
// scan over the sequence approximates a multi-dimensional range query over
// the original values.
//
// zdex is an in-process algorithm library. It does not store indexes or run
// range queries; callers convert a z-index to a key and keep it in an
// ordered map of their own.
//
// # Core Features
//
//   - Round-robin interleave of any number of dimensions of unequal widths,
//     without padding bits
//   - Built-in dimensions for Go integers, floats, 128-bit values, raw bytes
//     and hashed categorical facets
//   - Fallible dimensions for dynamically backed data, with a single error kind
//   - Dense, immutable output with lazy set/unset bit scans
//   - Conversion to and from k-bit storage words and sortable byte keys
//
// # Basic Usage
//
//	import "github.com/arloliu/zdex"
//	import "github.com/arloliu/zdex/dimension"
//
//	z, err := zdex.Index(
//	    dimension.Uint(uint32(lat)),
//	    dimension.Uint(uint32(lon)),
//	)
//	if err != nil {
//	    return err
//	}
//	key := z.Key() // big-endian, sorts like the z-index
//
// # Package Structure
//
// This package provides thin top-level wrappers. The dimension, interleave
// and zindex packages hold the full API, including the fixed-arity
// interleave.Tuple1 .. interleave.Tuple8 entry points for dimensions of
// different concrete types.
package zdex

import (
	"iter"

	"github.com/arloliu/zdex/dimension"
	"github.com/arloliu/zdex/interleave"
	"github.com/arloliu/zdex/zindex"
)

type (
	// Dimension is the capability a value needs to be interleaved.
	Dimension = dimension.Dimension
	// ZIndex is an interleaved, immutable bit sequence.
	ZIndex = zindex.ZIndex
	// Option configures an interleave call.
	Option = interleave.Option
	// AccessError reports a failed read from a dimension.
	AccessError = interleave.AccessError
)

// ErrAccess matches every error caused by a failing dimension.
var ErrAccess = interleave.ErrAccess

// Index returns the z-order index of dims, the first being the most
// significant dimension.
//
// Example:
//
//	z, err := zdex.Index(dimension.Uint(uint8(0b0011)), dimension.Uint(uint8(0b1111)))
func Index(dims ...Dimension) (*ZIndex, error) {
	return interleave.Interleave(dims)
}

// IndexWith is Index with options.
func IndexWith(dims []Dimension, opts ...Option) (*ZIndex, error) {
	return interleave.Interleave(dims, opts...)
}

// IndexSlice returns the z-order index of a runtime-length collection of
// same-typed dimensions.
func IndexSlice[T Dimension](dims []T, opts ...Option) (*ZIndex, error) {
	return interleave.Slice(dims, opts...)
}

// IndexSeq returns the z-order index of the dimensions yielded by seq.
func IndexSeq[T Dimension](seq iter.Seq[T], opts ...Option) (*ZIndex, error) {
	return interleave.Seq(seq, opts...)
}

// Parse builds a z-index from a string of '0' and '1' characters.
func Parse(s string) (*ZIndex, error) {
	return zindex.Parse(s)
}

// FromKey rebuilds a length-bit z-index from a key produced by ZIndex.Key.
func FromKey(key []byte, length uint) (*ZIndex, error) {
	return zindex.FromKey(key, length)
}

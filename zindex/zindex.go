package zindex

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/arloliu/zdex/dimension"
)

var (
	// ErrInvalidWordWidth is returned for a storage word width outside [1, 64].
	ErrInvalidWordWidth = errors.New("zindex: word width must be between 1 and 64")
	// ErrShortWords is returned when there are too few words (or key bytes) for the length.
	ErrShortWords = errors.New("zindex: not enough words for length")
	// ErrTrailingWords is returned when there are more words (or key bytes) than the length needs.
	ErrTrailingWords = errors.New("zindex: more words than length needs")
	// ErrWordOverflow is returned when a word has bits set outside its width,
	// including the zero padding of a final partial word.
	ErrWordOverflow = errors.New("zindex: word has bits outside its width")
	// ErrInvalidKeyLength is returned when a key is not a whole number of 64-bit words.
	ErrInvalidKeyLength = errors.New("zindex: key length is not a multiple of 8 bytes")
	// ErrInvalidBitString is returned by Parse for characters other than '0' and '1'.
	ErrInvalidBitString = errors.New("zindex: invalid bit string")
)

// ZIndex is an immutable, densely packed bit sequence.
//
// The zero value is not usable; z-indexes come from a Builder, Parse,
// FromWords, or FromBytes. Bits past the logical length are always zero.
type ZIndex struct {
	bits *bitset.BitSet
	n    uint
}

// Empty returns a zero-length z-index.
func Empty() *ZIndex {
	return NewBuilder(0).Finish()
}

// Parse builds a z-index from a string of '0' and '1' characters.
// Underscores are ignored so long literals can be grouped.
func Parse(s string) (*ZIndex, error) {
	n := uint(len(s) - strings.Count(s, "_"))
	b := NewBuilder(n)
	for i, c := range s {
		switch c {
		case '0':
			b.AppendBit(false)
		case '1':
			b.AppendBit(true)
		case '_':
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidBitString, c, i)
		}
	}

	return b.Finish(), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *ZIndex {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return z
}

// Len returns the number of bits.
func (z *ZIndex) Len() uint {
	return z.n
}

// BitAt returns bit i. It panics if i >= Len(), like indexing a slice.
func (z *ZIndex) BitAt(i uint) bool {
	if i >= z.n {
		panic(fmt.Sprintf("zindex: bit %d out of range [0,%d)", i, z.n))
	}

	return z.bits.Test(i)
}

// Count returns the number of set bits.
func (z *ZIndex) Count() uint {
	return z.bits.Count()
}

// Ones returns the positions of set bits in [lo, hi), in increasing order.
//
// hi is clamped to Len(). The sequence is computed lazily and may be ranged
// over any number of times.
func (z *ZIndex) Ones(lo, hi uint) iter.Seq[uint] {
	hi = min(hi, z.n)

	return func(yield func(uint) bool) {
		for i, ok := z.bits.NextSet(lo); ok && i < hi; i, ok = z.bits.NextSet(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}

// Zeros returns the positions of unset bits in [lo, hi), in increasing order.
//
// hi is clamped to Len(). The sequence is computed lazily and may be ranged
// over any number of times.
func (z *ZIndex) Zeros(lo, hi uint) iter.Seq[uint] {
	hi = min(hi, z.n)

	return func(yield func(uint) bool) {
		for i, ok := z.bits.NextClear(lo); ok && i < hi; i, ok = z.bits.NextClear(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}

// Compare compares z and o bit-lexicographically from position 0.
//
// It returns -1 if z sorts first, 1 if o sorts first, and 0 if they are
// equal. When one is a strict prefix of the other the shorter sorts first.
// The result reflects spatial order exactly only when both z-indexes were
// built from dimensions with the same arity and per-position widths.
func (z *ZIndex) Compare(o *ZIndex) int {
	n := min(z.n, o.n)

	diff := z.bits.SymmetricDifference(o.bits)
	if i, ok := diff.NextSet(0); ok && i < n {
		if z.bits.Test(i) {
			return 1
		}

		return -1
	}

	switch {
	case z.n < o.n:
		return -1
	case z.n > o.n:
		return 1
	default:
		return 0
	}
}

// Equal reports whether z and o hold the same bit sequence.
func (z *ZIndex) Equal(o *ZIndex) bool {
	return z.n == o.n && z.Compare(o) == 0
}

// String renders the bits as '0' and '1' characters, position 0 first.
func (z *ZIndex) String() string {
	var sb strings.Builder
	sb.Grow(int(z.n)) //nolint:gosec // bounded by memory already held

	for i := range z.n {
		if z.bits.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Dimension adapts z to the dimension.Dimension interface so a finished
// z-index can be interleaved again with other dimensions.
func (z *ZIndex) Dimension() dimension.Dimension {
	return indexDimension{z: z}
}

type indexDimension struct {
	z *ZIndex
}

func (d indexDimension) Width() (uint, error) {
	return d.z.n, nil
}

func (d indexDimension) BitAt(i uint) (bool, error) {
	if i >= d.z.n {
		return false, fmt.Errorf("%w: bit %d, width %d", dimension.ErrBitOutOfRange, i, d.z.n)
	}

	return d.z.bits.Test(i), nil
}

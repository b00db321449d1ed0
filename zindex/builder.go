package zindex

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Builder appends bits, most significant first, into a fixed-capacity
// z-index.
//
// The capacity is fixed at construction so a build performs a single
// allocation for the bit storage.
type Builder struct {
	bits *bitset.BitSet
	size uint
	pos  uint
}

// NewBuilder returns a builder that can hold exactly n bits.
func NewBuilder(n uint) *Builder {
	return &Builder{
		bits: bitset.New(n),
		size: n,
	}
}

// AppendBit appends one bit. It panics if the builder is full or finished.
func (b *Builder) AppendBit(bit bool) {
	if b.bits == nil {
		panic("zindex: builder already finished")
	}
	if b.pos >= b.size {
		panic(fmt.Sprintf("zindex: builder full (%d bits)", b.size))
	}

	if bit {
		b.bits.Set(b.pos)
	}
	b.pos++
}

// AppendUint appends the low width bits of v, most significant first.
func (b *Builder) AppendUint(v uint64, width uint) {
	if width > 64 {
		panic(fmt.Sprintf("zindex: cannot append %d bits from a uint64", width))
	}

	for i := width; i > 0; i-- {
		b.AppendBit((v>>(i-1))&1 == 1)
	}
}

// Len returns the number of bits appended so far.
func (b *Builder) Len() uint {
	return b.pos
}

// Cap returns the capacity given to NewBuilder.
func (b *Builder) Cap() uint {
	return b.size
}

// Finish returns the z-index holding the appended bits.
//
// The builder becomes unusable; further appends panic. Appending fewer than
// Cap bits is allowed and yields a shorter z-index.
func (b *Builder) Finish() *ZIndex {
	if b.bits == nil {
		panic("zindex: builder already finished")
	}

	z := &ZIndex{bits: b.bits, n: b.pos}
	b.bits = nil

	return z
}

// Package zindex provides ZIndex, the packed bit sequence produced by a
// z-order interleave, and the conversions callers need to use it as a key
// in an ordered map.
//
// # Bit Order
//
// Position 0 is the most significant position. Comparing two z-indexes
// with Compare walks positions from 0 upward, exactly like comparing two
// "0101" strings.
//
// # Storage
//
// Bits are held in a github.com/bits-and-blooms/bitset word array sized to
// the index length, so memory is proportional to the bit count. A ZIndex is
// immutable once built; Builder is the only way to write bits.
//
// # Storage Words
//
// Words splits the sequence into k-bit unsigned words (1 <= k <= 64), most
// significant bit first. When the length is not a multiple of k the final
// word holds the remaining r bits right-aligned, with its high k-r bits zero.
// FromWords reverses the split and rejects words that carry bits outside
// their width, so a round trip always reproduces the original sequence.
//
//	words, _ := z.Words(16)
//	back, _ := zindex.FromWords(words, 16, z.Len())
//	// back.Equal(z) == true
//
// Key lays the 64-bit words out big-endian. For z-indexes of equal length,
// bytes.Compare on keys agrees with Compare on the z-indexes.
//
// # Thread Safety
//
// A finished ZIndex is safe for concurrent reads. Builder is not safe for
// concurrent use.
package zindex

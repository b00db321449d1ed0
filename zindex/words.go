package zindex

import (
	"fmt"
	"unsafe"
)

// Word is the set of unsigned integer types usable as storage words.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// WordCount returns how many k-bit words hold length bits.
func WordCount(length, k uint) uint {
	if k == 0 {
		return 0
	}

	return (length + k - 1) / k
}

// Words splits z into k-bit storage words, most significant bit first.
//
// The final word holds the remaining bits right-aligned when Len() is not a
// multiple of k. A zero-length z-index yields an empty slice.
func (z *ZIndex) Words(k uint) ([]uint64, error) {
	if k == 0 || k > 64 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWordWidth, k)
	}

	words := make([]uint64, WordCount(z.n, k))
	for i := range z.Ones(0, z.n) {
		w := i / k
		width := min(k, z.n-w*k)
		words[w] |= 1 << (width - 1 - i%k)
	}

	return words, nil
}

// FromWords rebuilds a length-bit z-index from k-bit storage words produced
// by Words.
func FromWords(words []uint64, k, length uint) (*ZIndex, error) {
	if k == 0 || k > 64 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWordWidth, k)
	}

	need := WordCount(length, k)
	switch {
	case uint(len(words)) < need:
		return nil, fmt.Errorf("%w: have %d, need %d", ErrShortWords, len(words), need)
	case uint(len(words)) > need:
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTrailingWords, len(words), need)
	}

	b := NewBuilder(length)
	for w, word := range words {
		width := min(k, length-uint(w)*k)
		if width < 64 && word>>width != 0 {
			return nil, fmt.Errorf("%w: word %d = %#x, width %d", ErrWordOverflow, w, word, width)
		}
		b.AppendUint(word, width)
	}

	return b.Finish(), nil
}

// WordsOf splits z into storage words of type W, whose bit size is the word width.
func WordsOf[W Word](z *ZIndex) []W {
	var zero W
	words, err := z.Words(uint(unsafe.Sizeof(zero)) * 8)
	if err != nil {
		// W is 8, 16, 32 or 64 bits wide, all valid widths.
		panic(err)
	}

	out := make([]W, len(words))
	for i, w := range words {
		out[i] = W(w)
	}

	return out
}

// FromWordsOf rebuilds a length-bit z-index from storage words of type W.
func FromWordsOf[W Word](words []W, length uint) (*ZIndex, error) {
	var zero W
	wide := make([]uint64, len(words))
	for i, w := range words {
		wide[i] = uint64(w)
	}

	return FromWords(wide, uint(unsafe.Sizeof(zero))*8, length)
}

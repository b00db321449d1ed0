package zindex

import (
	"fmt"

	"github.com/arloliu/zdex/endian"
	"github.com/arloliu/zdex/internal/hash"
	"github.com/arloliu/zdex/internal/pool"
)

// Key returns z as big-endian 64-bit storage words.
//
// Keys of equal-length z-indexes sort under bytes.Compare exactly as the
// z-indexes sort under Compare, which makes them suitable as keys in a
// byte-ordered map.
func (z *ZIndex) Key() []byte {
	return z.AppendBytes(nil, endian.GetBigEndianEngine())
}

// AppendBytes appends z's 64-bit storage words to dst using engine and
// returns the extended slice.
func (z *ZIndex) AppendBytes(dst []byte, engine endian.EndianEngine) []byte {
	words, _ := z.Words(64)
	for _, w := range words {
		dst = engine.AppendUint64(dst, w)
	}

	return dst
}

// FromKey rebuilds a length-bit z-index from a key produced by Key.
func FromKey(key []byte, length uint) (*ZIndex, error) {
	return FromBytes(key, length, endian.GetBigEndianEngine())
}

// FromBytes rebuilds a length-bit z-index from bytes produced by
// AppendBytes with the same engine.
func FromBytes(data []byte, length uint, engine endian.EndianEngine) (*ZIndex, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, len(data))
	}

	words := make([]uint64, len(data)/8)
	for i := range words {
		words[i] = engine.Uint64(data[i*8:])
	}

	return FromWords(words, 64, length)
}

// Sum64 returns a 64-bit fingerprint of z.
//
// The fingerprint covers the length as well as the bits, so "0" and "00"
// differ. It is intended for partitioning or deduplicating keys, never for
// ordering them.
func (z *ZIndex) Sum64() uint64 {
	engine := endian.GetBigEndianEngine()

	buf := pool.GetKeyBuffer()
	defer pool.PutKeyBuffer(buf)

	buf.B = engine.AppendUint64(buf.B, uint64(z.n))
	buf.B = z.AppendBytes(buf.B, engine)

	return hash.Sum64(buf.B)
}

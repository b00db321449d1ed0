// Package endian provides the byte orders used when z-index storage words
// are laid out as bytes.
//
// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder so a
// single value can both append and read words:
//
//	engine := endian.GetBigEndianEngine()
//	key := z.AppendBytes(nil, engine)
//
// Only big-endian layout keeps the byte-wise order of keys equal to the bit
// order of the z-index. Little-endian layout is useful when the bytes feed
// native-order word arrays, not sorted maps.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's native byte order.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// PreservesOrder reports whether byte-wise comparison of words written with
// engine agrees with numeric comparison of the words.
func PreservesOrder(engine EndianEngine) bool {
	return engine == EndianEngine(binary.BigEndian)
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

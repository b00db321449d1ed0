package endian

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	var probe uint16 = 0x0102
	raw := (*[2]byte)(unsafe.Pointer(&probe))

	switch raw[0] {
	case 0x01:
		require.Equal(t, binary.BigEndian, CheckEndianness())
		require.False(t, IsNativeLittleEndian())
	case 0x02:
		require.Equal(t, binary.LittleEndian, CheckEndianness())
		require.True(t, IsNativeLittleEndian())
	default:
		require.Failf(t, "unexpected byte value", "got: %v", raw[0])
	}
}

func TestPreservesOrder(t *testing.T) {
	require.True(t, PreservesOrder(GetBigEndianEngine()))
	require.False(t, PreservesOrder(GetLittleEndianEngine()))
}

func TestBigEndianKeysSortNumerically(t *testing.T) {
	engine := GetBigEndianEngine()
	values := []uint64{0, 1, 0xff, 0x100, 0xdeadbeef, 1 << 63, ^uint64(0)}

	for i := 1; i < len(values); i++ {
		prev := engine.AppendUint64(nil, values[i-1])
		cur := engine.AppendUint64(nil, values[i])
		require.Equal(t, -1, bytes.Compare(prev, cur), "%#x should sort before %#x", values[i-1], values[i])
	}
}

func TestLittleEndianKeysDoNotSort(t *testing.T) {
	engine := GetLittleEndianEngine()
	low := engine.AppendUint64(nil, 0x100)
	high := engine.AppendUint64(nil, 0x01)

	// 0x100 > 0x01 numerically but its first byte is smaller.
	require.Equal(t, -1, bytes.Compare(low, high))
}

func TestEngineRoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()} {
		buf := engine.AppendUint64(nil, 0x0123456789abcdef)
		require.Len(t, buf, 8)
		require.Equal(t, uint64(0x0123456789abcdef), engine.Uint64(buf))
	}
}

package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(KeyBufferDefaultSize)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, KeyBufferDefaultSize, bb.Cap())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, 0xde, 0xad, 0xbe, 0xef)
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, 1, 2, 3)

	out := bb.Bytes()
	assert.Equal(t, []byte{1, 2, 3}, out)
	assert.True(t, &bb.B[0] == &out[0], "Bytes() should return the same underlying slice")
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, 1, 2, 3)
	p.Put(bb)

	again := p.Get()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len(), "pooled buffers come back empty")
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	bb.B = make([]byte, 0, 1024)
	bb.B = append(bb.B, 42)
	p.Put(bb)

	// The oversized buffer was discarded, so it was not reset either.
	assert.Equal(t, 1, bb.Len())
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(8, 16)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestKeyBufferPool_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(seed byte) {
			defer wg.Done()
			for range 100 {
				bb := GetKeyBuffer()
				bb.B = append(bb.B, seed)
				if bb.Len() != 1 || bb.B[0] != seed {
					t.Errorf("unexpected buffer contents: %v", bb.B)
				}
				PutKeyBuffer(bb)
			}
		}(byte(i))
	}
	wg.Wait()
}
